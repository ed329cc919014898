package schema

import (
	"errors"
	"fmt"
	"sort"
)

// CRC32Version is the first firmware version whose images carry the CRC-32
// in the trailing 4 bytes; older images use the 16-bit weighted checksum
// at offset 14.
const CRC32Version uint32 = 0x0606000B

// ErrUnsupportedVersion reports a binary older than the oldest known layout.
var ErrUnsupportedVersion = errors.New("schema: unsupported version")

// Entry binds a firmware version to its image size and layout snapshot.
type Entry struct {
	Version uint32
	Size    int
	Fields  *Schema
}

// Registry holds the known layout snapshots, newest first. It is built once
// at startup and never mutated afterwards.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a registry from entries in any order.
func NewRegistry(entries []Entry) *Registry {
	es := make([]Entry, len(entries))
	copy(es, entries)
	sort.Slice(es, func(i, j int) bool { return es[i].Version > es[j].Version })
	return &Registry{entries: es}
}

// Resolve returns the newest entry whose version does not exceed v. A binary
// produced by an intermediate release uses the layout of the latest release
// at or below it.
func (r *Registry) Resolve(v uint32) (Entry, error) {
	for _, e := range r.entries {
		if e.Version <= v {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: 0x%08x", ErrUnsupportedVersion, v)
}

// Newest returns the most recent entry.
func (r *Registry) Newest() Entry {
	return r.entries[0]
}

// Oldest returns the earliest supported entry.
func (r *Registry) Oldest() Entry {
	return r.entries[len(r.entries)-1]
}

// Sizes returns the distinct image sizes across all entries, ascending.
// The file classifier uses them to recognize candidate .dmp images.
func (r *Registry) Sizes() []int {
	seen := map[int]bool{}
	var sizes []int
	for _, e := range r.entries {
		if !seen[e.Size] {
			seen[e.Size] = true
			sizes = append(sizes, e.Size)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// Entries returns the snapshots newest first. The slice is shared; callers
// must not modify it.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// VersionString renders a firmware version number the way the firmware
// prints it. 6.x and later append a nonzero sub-release as a fourth dotted
// part, 5.x releases used a letter suffix instead.
func VersionString(v uint32) string {
	major := v >> 24
	minor := v >> 16 & 0xff
	patch := v >> 8 & 0xff
	sub := v & 0xff
	switch {
	case sub == 0:
		return fmt.Sprintf("%d.%d.%d", major, minor, patch)
	case major >= 6:
		return fmt.Sprintf("%d.%d.%d.%d", major, minor, patch, sub)
	}
	return fmt.Sprintf("%d.%d.%d%c", major, minor, patch, 'a'+sub-1)
}
