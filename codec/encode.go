package codec

import (
	"bytes"
	"fmt"
	"math"

	"github.com/tasconf/tasconf/internal/buf"
	"github.com/tasconf/tasconf/schema"
	"github.com/tasconf/tasconf/status"
)

// Names never written through the tree even when present: the integrity
// fields are recomputed after encoding, and timestamps are display-only.
func skipName(name string) bool {
	switch name {
	case "cfg_crc", "cfg_crc32", "cfg_timestamp":
		return true
	}
	return false
}

// Encode writes the values of tree into data in place. Fields absent from
// the tree keep their current bytes, which makes a partial restore merge
// into the existing image. Read-only fields and the integrity fields are
// skipped. Per-field validation failures are fatal unless the policy is
// lenient, in which case they are reported and the field is skipped.
func Encode(data []byte, sch *schema.Schema, tree map[string]any, pol *Policy) error {
	for _, name := range sch.Names() {
		v, ok := tree[name]
		if !ok {
			continue
		}
		if err := encodeField(data, name, sch.Get(name), v, 0, pol); err != nil {
			return err
		}
	}
	// Anything left in the tree but absent from the layout comes from an
	// older or newer release.
	for name := range tree {
		if sch.Has(name) || skipName(name) {
			continue
		}
		err := pol.fail(status.Warnf(status.RestoreDataError,
			"restore data contains obsolete name '%s', skipped", name))
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeField(data []byte, name string, d *schema.FieldDef, v any, addroff int, pol *Policy) error {
	if d.Platform&pol.platform() == 0 {
		return nil
	}
	if d.ReadOnly {
		return nil
	}
	if skipName(name) {
		return nil
	}

	if len(d.Array) > 0 {
		arr, ok := v.([]any)
		if !ok {
			return pol.fail(status.Warnf(status.RestoreDataError,
				"field '%s' expects an array", name))
		}
		if len(arr) > d.Array[0] {
			err := pol.fail(status.Warnf(status.RestoreDataError,
				"array '%s[%d]' exceeds max number of elements [%d]",
				name, len(arr), d.Array[0]))
			if err != nil {
				return err
			}
		}
		elem := d.Elem()
		step := elem.ByteLen()
		for i := 0; i < d.Array[0] && i < len(arr); i++ {
			if d.Addr.Indexed() {
				e := *elem
				e.Addr.Slot = d.Addr.Slot + i
				if err := encodeField(data, name, &e, arr[i], addroff, pol); err != nil {
					return err
				}
				continue
			}
			if err := encodeField(data, name, elem, arr[i], addroff+i*step, pol); err != nil {
				return err
			}
		}
		return nil
	}

	if d.Sub != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return pol.fail(status.Warnf(status.RestoreDataError,
				"field '%s' expects an object", name))
		}
		for _, sub := range d.Sub.Names() {
			sv, ok := m[sub]
			if !ok {
				continue
			}
			if err := encodeField(data, sub, d.Sub.Get(sub), sv, addroff, pol); err != nil {
				return err
			}
		}
		return nil
	}

	return encodeScalar(data, name, d, v, addroff, pol)
}

func encodeScalar(data []byte, name string, d *schema.FieldDef, v any, addroff int, pol *Policy) error {
	// A masked password from a hidden-password backup must never replace
	// the stored secret.
	if d.Password {
		if s, ok := v.(string); ok && s == schema.HiddenPassword {
			return nil
		}
	}
	if d.Write != nil && !pol.Raw {
		var ok bool
		v, ok = d.Write(v)
		if !ok {
			return nil
		}
	}

	if d.Addr.Indexed() {
		return encodePoolString(data, name, d, v, pol)
	}
	if d.Format.Kind == schema.KindString {
		return encodeFixedString(data, name, d, v, addroff, pol)
	}
	return encodeInt(data, name, d, v, addroff, pol)
}

func encodeInt(data []byte, name string, d *schema.FieldDef, v any, addroff int, pol *Policy) error {
	n := schema.AsInt(v)

	// Zero always passes: images ship uninitialized zeroes that range rules
	// would otherwise reject.
	if d.Validate != nil && n != 0 && !d.Validate(n) {
		return pol.fail(status.Warnf(status.RestoreDataError,
			"value %d for '%s' exceeds valid range, skipped", n, name))
	}

	off := d.Addr.Off + addroff
	unit := d.Format.Unit()
	count := d.Format.Count
	if count < 1 {
		count = 1
	}

	if d.Addr.Packed() {
		mask := uint64(1)<<uint(d.Addr.Bits) - 1
		bv := uint64(n)
		if bv > mask {
			return pol.fail(status.Warnf(status.RestoreDataError,
				"value %d for '%s' exceeds %d-bit field, skipped", n, name, d.Addr.Bits))
		}
		if d.Addr.Shift >= 0 {
			bv <<= uint(d.Addr.Shift)
			mask <<= uint(d.Addr.Shift)
		} else {
			bv >>= uint(-d.Addr.Shift)
			mask >>= uint(-d.Addr.Shift)
		}
		if !buf.Has(data, off, unit) {
			return pol.fail(status.Warnf(status.RestoreDataError,
				"field '%s' lies outside the image", name))
		}
		word := readUnit(data, off, unit)
		word = word&^mask | bv
		writeUnit(data, off, unit, word)
		return nil
	}

	// Full-width fields are bounded by the primitive's natural range even
	// without an explicit validator.
	if d.Format.Numeric() {
		if lo, hi := typeRange(d.Format, count); n < lo || n > hi {
			return pol.fail(status.Warnf(status.RestoreDataError,
				"value %d for '%s' exceeds type range [%d,%d], skipped", n, name, lo, hi))
		}
	}

	if !buf.Has(data, off, unit*count) {
		return pol.fail(status.Warnf(status.RestoreDataError,
			"field '%s' lies outside the image", name))
	}
	// Multi-unit values spread out most significant element first, so the
	// low units land at the tail.
	acc := uint64(n)
	for i := count - 1; i >= 0; i-- {
		writeUnit(data, off+i*unit, unit, acc&(1<<uint(unit*8)-1))
		acc >>= uint(unit * 8)
	}
	return nil
}

// typeRange returns the natural value range of a full-width integer field.
func typeRange(f schema.Format, count int) (int64, int64) {
	bits := uint(f.Unit() * 8 * count)
	if f.Signed() {
		if bits >= 64 {
			return math.MinInt64, math.MaxInt64
		}
		return -(int64(1) << (bits - 1)), int64(1)<<(bits-1) - 1
	}
	if bits >= 64 {
		return 0, math.MaxInt64
	}
	return 0, int64(1)<<bits - 1
}

func writeUnit(data []byte, off, unit int, v uint64) {
	switch unit {
	case 1:
		data[off] = byte(v)
	case 2:
		buf.PutU16LE(data, off, uint16(v))
	case 4:
		buf.PutU32LE(data, off, uint32(v))
	default:
		buf.PutU64LE(data, off, v)
	}
}

func encodeFixedString(data []byte, name string, d *schema.FieldDef, v any, addroff int, pol *Policy) error {
	s := asString(v)
	capacity := d.Format.Count
	if len(s) > capacity-1 {
		return pol.fail(status.Warnf(status.RestoreDataError,
			"string length %d for '%s' exceeds capacity %d, skipped", len(s), name, capacity-1))
	}
	off := d.Addr.Off + addroff
	dst, ok := buf.Slice(data, off, capacity)
	if !ok {
		return pol.fail(status.Warnf(status.RestoreDataError,
			"field '%s' lies outside the image", name))
	}
	n := copy(dst, s)
	for i := n; i < capacity; i++ {
		dst[i] = 0
	}
	return nil
}

// encodePoolString rewrites one slot of the shared text pool: split the
// current pool on NUL, replace the slot, rejoin, and write the stream back.
// The rejoined stream truncates to the pool capacity, which sheds trailing
// NUL padding displaced by a longer slot value.
func encodePoolString(data []byte, name string, d *schema.FieldDef, v any, pol *Policy) error {
	s := asString(v)
	capacity := d.Format.Count
	if len(s) > capacity-1 {
		return pol.fail(status.Warnf(status.RestoreDataError,
			"string length %d for '%s' exceeds capacity %d, skipped", len(s), name, capacity-1))
	}
	pool, ok := buf.Slice(data, d.Addr.Off, capacity)
	if !ok {
		return pol.fail(status.Warnf(status.RestoreDataError,
			"field '%s' lies outside the image", name))
	}
	parts := bytes.Split(pool, []byte{0})
	if d.Addr.Slot >= len(parts) {
		return pol.fail(status.Warnf(status.RestoreDataError,
			"text slot %d for '%s' lies outside the pool", d.Addr.Slot, name))
	}
	parts[d.Addr.Slot] = []byte(s)
	joined := bytes.Join(parts, []byte{0})
	n := copy(pool, joined)
	for i := n; i < capacity; i++ {
		pool[i] = 0
	}
	return nil
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
