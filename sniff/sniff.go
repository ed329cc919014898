// Package sniff classifies configuration files by content: a JSON backup,
// a raw binary dump, or a magic-wrapped binary file.
package sniff

import (
	"encoding/json"

	"github.com/tasconf/tasconf/integrity"
	"github.com/tasconf/tasconf/internal/buf"
)

// Kind is the detected file format.
type Kind int

const (
	Invalid Kind = iota
	// JSONFile is any document that parses as JSON.
	JSONFile
	// RawDump is an unwrapped binary image whose size matches a known
	// layout exactly.
	RawDump
	// BinaryDump is an image wrapped with the 4-byte binary marker, either
	// prepended (legacy) or appended (current).
	BinaryDump
	// InvalidBinary has a plausible wrapped size but no marker.
	InvalidBinary
)

func (k Kind) String() string {
	switch k {
	case JSONFile:
		return "json"
	case RawDump:
		return "dmp"
	case BinaryDump:
		return "bin"
	case InvalidBinary:
		return "invalid bin"
	}
	return "invalid"
}

// Classify detects the format of content. sizes is the set of known image
// sizes from the layout registry.
func Classify(content []byte, sizes []int) Kind {
	// Any document that parses as JSON is a JSON file; whether it is a
	// usable backup is decided later.
	if json.Valid(content) {
		return JSONFile
	}

	known := func(n int) bool {
		for _, s := range sizes {
			if s == n {
				return true
			}
		}
		return false
	}

	if known(len(content)) {
		return RawDump
	}
	if known(len(content) - 4) {
		head := buf.U32LE(content)
		tail := buf.U32LE(content[len(content)-4:])
		if head == integrity.BinaryMagic || tail == integrity.BinaryMagic {
			return BinaryDump
		}
		return InvalidBinary
	}
	return Invalid
}

// Strip removes the binary marker from a BinaryDump, returning the bare
// image. Content classified any other way passes through unchanged.
func Strip(content []byte, kind Kind) []byte {
	if kind != BinaryDump || len(content) < 4 {
		return content
	}
	if buf.U32LE(content) == integrity.BinaryMagic {
		return content[4:]
	}
	return content[:len(content)-4]
}
