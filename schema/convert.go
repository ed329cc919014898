package schema

import (
	"fmt"
	"math"
	"net"
	"strconv"
	"time"
)

// ReadConv transforms a decoded raw value into its mapped form (scaling,
// hex rendering, address formatting). A nil converter is the identity.
type ReadConv func(v any) any

// WriteConv transforms a mapped value back into its raw form. ok = false
// drops the value from the write entirely, which is how display-only
// renderings opt out of the restore path.
type WriteConv func(v any) (any, bool)

// Cmnd renders a mapped value as one or more device console commands.
// idx is the 1-based array index (0 for scalars) and tree is the full
// mapped document for emitters that combine sibling fields.
type Cmnd struct {
	Group string
	Emit  func(v any, idx int, tree map[string]any) []string
}

// CmdFmt emits a single command "Name value".
func CmdFmt(group, format string) Cmnd {
	return Cmnd{group, func(v any, _ int, _ map[string]any) []string {
		return []string{fmt.Sprintf(format, v)}
	}}
}

// CmdIdx emits "Name<idx+off> value", the SetOption / indexed-setting shape.
func CmdIdx(group, format string, off int) Cmnd {
	return Cmnd{group, func(v any, idx int, _ map[string]any) []string {
		return []string{fmt.Sprintf(format, idx+off, v)}
	}}
}

// CmdStr emits "Name value" quoting the empty string as `"`, which is how
// the console clears a text setting.
func CmdStr(group, format string) Cmnd {
	return Cmnd{group, func(v any, _ int, _ map[string]any) []string {
		return []string{fmt.Sprintf(format, quoteEmpty(v))}
	}}
}

// CmdStrIdx is CmdStr for indexed text settings.
func CmdStrIdx(group, format string, off int) Cmnd {
	return Cmnd{group, func(v any, idx int, _ map[string]any) []string {
		return []string{fmt.Sprintf(format, idx+off, quoteEmpty(v))}
	}}
}

// CmdFn wraps a custom emitter.
func CmdFn(group string, fn func(v any, idx int, tree map[string]any) []string) Cmnd {
	return Cmnd{group, fn}
}

func quoteEmpty(v any) any {
	if s, ok := v.(string); ok && s == "" {
		return `"`
	}
	return v
}

// Div scales a raw integer down by n on read, yielding a float.
func Div(n int64) ReadConv {
	return func(v any) any {
		return float64(AsInt(v)) / float64(n)
	}
}

// Mul scales a mapped value up by n on write, rounding to an integer.
func Mul(n int64) WriteConv {
	return func(v any) (any, bool) {
		switch x := v.(type) {
		case float64:
			return int64(math.Round(x * float64(n))), true
		default:
			return AsInt(v) * n, true
		}
	}
}

// MulRead scales a raw integer up by n on read, the inverse of DivWrite.
// Baud rates store as multiples of 1200 in a single byte.
func MulRead(n int64) ReadConv {
	return func(v any) any { return AsInt(v) * n }
}

// DivWrite scales a mapped value down by n on write.
func DivWrite(n int64) WriteConv {
	return func(v any) (any, bool) { return AsInt(v) / n, true }
}

// Hex renders a raw integer as a fixed-width 0x-prefixed string.
func Hex(digits int) ReadConv {
	return func(v any) any {
		return fmt.Sprintf("0x%0*x", digits, uint64(AsInt(v)))
	}
}

// ParseNum reverses Hex and plain numeric renderings: strings parse with
// strconv base-0 so both "0x1a2b" and "123" restore.
func ParseNum() WriteConv {
	return func(v any) (any, bool) {
		if s, ok := v.(string); ok {
			n, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				return nil, false
			}
			return n, true
		}
		return v, true
	}
}

// IPv4 renders a raw little-endian u32 as dotted-quad.
func IPv4() ReadConv {
	return func(v any) any {
		n := uint32(AsInt(v))
		return net.IPv4(byte(n), byte(n>>8), byte(n>>16), byte(n>>24)).String()
	}
}

// ParseIPv4 reverses IPv4.
func ParseIPv4() WriteConv {
	return func(v any) (any, bool) {
		s, ok := v.(string)
		if !ok {
			return v, true
		}
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, false
		}
		ip = ip.To4()
		if ip == nil {
			return nil, false
		}
		return int64(ip[0]) | int64(ip[1])<<8 | int64(ip[2])<<16 | int64(ip[3])<<24, true
	}
}

// UnixTime renders a raw epoch value as a local timestamp. Timestamp fields
// are display-only, so no inverse exists; pair with RO.
func UnixTime() ReadConv {
	return func(v any) any {
		return time.Unix(AsInt(v), 0).Format("2006-01-02T15:04:05")
	}
}

// Drop discards the value on write. Used for raw mirrors of fields that
// restore through another name.
func Drop() WriteConv {
	return func(any) (any, bool) { return nil, false }
}

// AsInt coerces the dynamic values flowing through the mapper (decoded
// int64, JSON float64, bools, numeric strings) to int64.
func AsInt(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case uint64:
		return int64(x)
	case float64:
		return int64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		n, err := strconv.ParseInt(x, 0, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
