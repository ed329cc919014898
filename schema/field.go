// Package schema declares the binary layout of every supported firmware
// configuration version: field definitions with byte/bit addressing, the
// per-version layout tables, and the registry that resolves a binary's
// embedded version number to its layout.
package schema

import "slices"

// Platform is a bitmask of the hardware families a field applies to.
type Platform uint8

const (
	ESP82 Platform = 0x01
	ESP32 Platform = 0x02
	All   Platform = 0x0f
)

// Names of the selectable platforms, indexed by the config_version value
// stored in newer images.
var PlatformNames = []string{"ESP82xx", "ESP32"}

func (p Platform) String() string {
	switch p {
	case ESP82:
		return PlatformNames[0]
	case ESP32:
		return PlatformNames[1]
	}
	return "All"
}

// Display-group sentinels. Internal fields are processed but hidden from
// grouped output; Virtual marks pure nesting containers that are never
// themselves emitted.
const (
	Internal = "Internal"
	Virtual  = "*"
)

// HiddenPassword is the mask substituted for password values when hiding is
// enabled. It is also recognized on restore so a masked backup never
// overwrites the stored secret with literal asterisks.
const HiddenPassword = "********"

// Kind tags a primitive field format.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindU8
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindF32
	KindF64
	KindBool
	KindString
)

// Format is a primitive field format: a kind plus a repeat count. For
// KindString the count is the byte capacity of the embedded string; for
// numeric kinds a count > 1 means the value spans count consecutive units,
// accumulated most-significant-first (the "3B" 24-bit color idiom).
type Format struct {
	Kind  Kind
	Count int
}

// Shorthand formats used by the layout tables. Multi-byte values are
// little-endian.
var (
	U8   = Format{KindU8, 1}
	I8   = Format{KindI8, 1}
	U16  = Format{KindU16, 1}
	I16  = Format{KindI16, 1}
	U32  = Format{KindU32, 1}
	I32  = Format{KindI32, 1}
	U64  = Format{KindU64, 1}
	I64  = Format{KindI64, 1}
	F32  = Format{KindF32, 1}
	F64  = Format{KindF64, 1}
	Bool = Format{KindBool, 1}
)

// Str returns a fixed-capacity embedded string format of n bytes.
func Str(n int) Format { return Format{KindString, n} }

// U8n returns an n-unit u8 format accumulated into one integer value.
func U8n(n int) Format { return Format{KindU8, n} }

// Unit returns the byte size of one element of the format.
func (f Format) Unit() int {
	switch f.Kind {
	case KindU8, KindI8, KindBool, KindString:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32:
		return 4
	case KindU64, KindI64, KindF64:
		return 8
	}
	return 0
}

// Len returns the total byte length of the format.
func (f Format) Len() int {
	if f.Kind == KindString {
		return f.Count
	}
	n := f.Count
	if n < 1 {
		n = 1
	}
	return f.Unit() * n
}

// Bits returns the bit width of one element.
func (f Format) Bits() int { return f.Unit() * 8 }

// Signed reports whether the format holds a signed integer.
func (f Format) Signed() bool {
	switch f.Kind {
	case KindI8, KindI16, KindI32, KindI64:
		return true
	}
	return false
}

// Numeric reports whether the format holds an integer or boolean value.
func (f Format) Numeric() bool {
	switch f.Kind {
	case KindU8, KindI8, KindU16, KindI16, KindU32, KindI32, KindU64, KindI64, KindBool:
		return true
	}
	return false
}

// Float reports whether the format holds a floating point value.
func (f Format) Float() bool { return f.Kind == KindF32 || f.Kind == KindF64 }

// Address locates a field inside the raw image. Three flavors exist:
// a plain byte offset, a bit-packed sub-range of the word at the offset,
// and a slot inside the shared NUL-delimited text pool at the offset.
type Address struct {
	Off   int
	Bits  int // >0: field is a Bits-wide bit range of the word at Off
	Shift int // bit position; negative means the raw word is left-shifted
	Slot  int // >=0: index into the shared text pool
}

// At addresses a field at a plain byte offset.
func At(off int) Address { return Address{Off: off, Slot: -1} }

// BitsAt addresses a bit-packed field inside the word at off.
func BitsAt(off, bits, shift int) Address {
	return Address{Off: off, Bits: bits, Shift: shift, Slot: -1}
}

// TextAt addresses the slot-th NUL-delimited string of the text pool at off.
func TextAt(off, slot int) Address { return Address{Off: off, Slot: slot} }

// Packed reports whether the address is bit-packed.
func (a Address) Packed() bool { return a.Bits > 0 }

// Indexed reports whether the address selects a text pool slot.
func (a Address) Indexed() bool { return a.Slot >= 0 }

// Validate checks a value on the write path. Zero is accepted before the
// predicate ever runs: devices ship uninitialized zeroes that legitimate
// range rules would reject.
type Validate func(v int64) bool

// Between returns a closed-interval validator.
func Between(lo, hi int64) Validate {
	return func(v int64) bool { return lo <= v && v <= hi }
}

// OneOf accepts a value matching any of the given validators.
func OneOf(vs ...Validate) Validate {
	return func(v int64) bool {
		for _, fn := range vs {
			if fn(v) {
				return true
			}
		}
		return false
	}
}

// Eq accepts exactly n.
func Eq(n int64) Validate {
	return func(v int64) bool { return v == n }
}

// FieldDef describes one named field of a layout.
type FieldDef struct {
	Platform Platform
	Format   Format
	Sub      *Schema // non-nil for nested groups; Format is ignored
	Addr     Address
	Array    []int // dimension sizes, outermost first; nil for scalars
	Validate Validate
	Group    string
	Cmnds    []Cmnd
	Read     ReadConv
	Write    WriteConv
	ReadOnly bool // skip silently on the encode path
	Password bool // mask on read when hiding is on, never emit as command
}

// F declares a primitive field.
func F(p Platform, f Format, a Address, group string) *FieldDef {
	return &FieldDef{Platform: p, Format: f, Addr: a, Group: group}
}

// G declares a nested group container.
func G(p Platform, a Address, sub *Schema, group string) *FieldDef {
	return &FieldDef{Platform: p, Sub: sub, Addr: a, Group: group}
}

// Arr declares the field as an array with the given dimension sizes.
func (d *FieldDef) Arr(dims ...int) *FieldDef {
	d.Array = dims
	return d
}

// Valid attaches a write-path validator.
func (d *FieldDef) Valid(fn Validate) *FieldDef {
	d.Validate = fn
	return d
}

// Cmd attaches one or more command emitters.
func (d *FieldDef) Cmd(c ...Cmnd) *FieldDef {
	d.Cmnds = c
	return d
}

// Conv attaches read/write value converters. Either may be nil.
func (d *FieldDef) Conv(r ReadConv, w WriteConv) *FieldDef {
	d.Read = r
	d.Write = w
	return d
}

// RO marks the field read-only for the encode direction.
func (d *FieldDef) RO() *FieldDef {
	d.ReadOnly = true
	return d
}

// Pw marks the field as a password.
func (d *FieldDef) Pw() *FieldDef {
	d.Password = true
	return d
}

// Elem returns the definition of one array element: same field with the
// outermost dimension stripped.
func (d *FieldDef) Elem() *FieldDef {
	e := d.clone()
	if len(d.Array) > 1 {
		e.Array = slices.Clone(d.Array[1:])
	} else {
		e.Array = nil
	}
	return e
}

// ByteLen returns the total byte length of the field, arrays and nested
// groups included. Sibling bit-fields sharing one word are counted once.
func (d *FieldDef) ByteLen() int {
	if len(d.Array) > 0 {
		return d.Array[0] * d.Elem().ByteLen()
	}
	if d.Sub != nil {
		length := 0
		last := -1
		for _, name := range d.Sub.Names() {
			c := d.Sub.Get(name)
			if c.Addr.Off != last {
				last = c.Addr.Off
				length += c.ByteLen()
			}
		}
		return length
	}
	return d.Format.Len()
}

func (d *FieldDef) clone() *FieldDef {
	nd := *d
	nd.Array = slices.Clone(d.Array)
	nd.Cmnds = slices.Clone(d.Cmnds)
	if d.Sub != nil {
		nd.Sub = d.Sub.Clone()
	}
	return &nd
}
