package codec

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/tasconf/tasconf/internal/buf"
	"github.com/tasconf/tasconf/schema"
)

// Decode maps an image onto the schema, returning the nested value tree.
// Group filtering and password masking follow the policy; empty containers
// are pruned so a filtered tree has no hollow branches.
func Decode(data []byte, sch *schema.Schema, pol *Policy) map[string]any {
	return decodeSchema(data, sch, 0, pol)
}

// DecodeField decodes one named field from the schema root, bypassing the
// group filter. Version sniffing uses it before any policy exists.
func DecodeField(data []byte, sch *schema.Schema, name string) any {
	d := sch.Get(name)
	if d == nil {
		return nil
	}
	raw := Policy{Raw: true}
	return decodeField(data, d, 0, &raw)
}

func decodeSchema(data []byte, sch *schema.Schema, addroff int, pol *Policy) map[string]any {
	tree := make(map[string]any)
	for _, name := range sch.Names() {
		d := sch.Get(name)
		if d.Platform&pol.platform() == 0 {
			continue
		}
		if !pol.wants(d.Group) && d.Sub == nil {
			continue
		}
		v := decodeField(data, d, addroff, pol)
		if m, ok := v.(map[string]any); ok && len(m) == 0 {
			continue
		}
		if a, ok := v.([]any); ok && len(a) == 0 {
			continue
		}
		tree[name] = v
	}
	return tree
}

func decodeField(data []byte, d *schema.FieldDef, addroff int, pol *Policy) any {
	if len(d.Array) > 0 {
		elem := d.Elem()
		step := elem.ByteLen()
		out := make([]any, 0, d.Array[0])
		for i := 0; i < d.Array[0]; i++ {
			eoff := addroff + i*step
			if d.Addr.Indexed() {
				// Pool slots advance by index, not by byte offset.
				e := *elem
				e.Addr.Slot = d.Addr.Slot + i
				out = append(out, decodeField(data, &e, addroff, pol))
				continue
			}
			out = append(out, decodeField(data, elem, eoff, pol))
		}
		return out
	}
	if d.Sub != nil {
		sub := decodeSchema(data, d.Sub, addroff, pol)
		return sub
	}
	return decodeScalar(data, d, addroff, pol)
}

func decodeScalar(data []byte, d *schema.FieldDef, addroff int, pol *Policy) any {
	off := d.Addr.Off + addroff

	var v any
	switch {
	case d.Addr.Indexed():
		v = poolString(data, off, d.Format.Count, d.Addr.Slot)
	case d.Format.Kind == schema.KindString:
		v = fixedString(data, off, d.Format.Count)
	default:
		v = readInt(data, d, off)
	}

	// Masking outranks raw mode: a raw dump must never carry a readable
	// secret. The mask replaces whatever is stored, empty or not.
	if d.Password && pol.HidePasswords {
		if _, ok := v.(string); ok {
			return schema.HiddenPassword
		}
	}
	if pol.Raw {
		return v
	}
	if d.Read != nil {
		return d.Read(v)
	}
	return v
}

// readInt reads one (possibly multi-unit, possibly bit-packed) integer
// field. Multi-unit values accumulate most significant element first.
func readInt(data []byte, d *schema.FieldDef, off int) any {
	unit := d.Format.Unit()
	count := d.Format.Count
	if count < 1 {
		count = 1
	}

	var acc uint64
	for i := 0; i < count; i++ {
		if !buf.Has(data, off+i*unit, unit) {
			return int64(0)
		}
		acc = acc<<(unit*8) | readUnit(data, off+i*unit, unit)
	}

	if d.Addr.Packed() {
		if d.Addr.Shift >= 0 {
			acc >>= uint(d.Addr.Shift)
		} else {
			acc <<= uint(-d.Addr.Shift)
		}
		acc &= 1<<uint(d.Addr.Bits) - 1
		return int64(acc)
	}
	if d.Format.Signed() {
		return signExtend(acc, unit*8*count)
	}
	return int64(acc)
}

func readUnit(data []byte, off, unit int) uint64 {
	switch unit {
	case 1:
		return uint64(data[off])
	case 2:
		return uint64(buf.U16LE(data[off:]))
	case 4:
		return uint64(buf.U32LE(data[off:]))
	default:
		return buf.U64LE(data[off:])
	}
}

func signExtend(v uint64, bits int) int64 {
	if bits >= 64 {
		return int64(v)
	}
	shift := uint(64 - bits)
	return int64(v<<shift) >> shift
}

// fixedString reads a fixed-capacity embedded string: bytes up to the first
// NUL, stripped of unprintable characters.
func fixedString(data []byte, off, capacity int) string {
	raw, ok := buf.Slice(data, off, capacity)
	if !ok {
		return ""
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return sanitize(string(raw))
}

// poolString reads slot n of the NUL-delimited string pool at off.
func poolString(data []byte, off, capacity, slot int) string {
	raw, ok := buf.Slice(data, off, capacity)
	if !ok {
		return ""
	}
	parts := bytes.Split(raw, []byte{0})
	if slot < 0 || slot >= len(parts) {
		return ""
	}
	return sanitize(string(parts[slot]))
}

var printable = runes.Remove(runes.Predicate(func(r rune) bool {
	return !unicode.IsPrint(r)
}))

func sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	out, _, err := transform.String(printable, s)
	if err != nil {
		return s
	}
	return out
}
