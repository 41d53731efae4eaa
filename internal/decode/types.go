// internal/decode/types.go
package decode

import (
	"fmt"
	"strconv"
	"strings"
)

// DataType selects how a group of registers is interpreted.
type DataType uint8

const (
	Int16 DataType = iota
	Int32
	Float32
	Float64
	Bitmap
)

// dataTypes lists every supported type in canonical order.
var dataTypes = []DataType{Int16, Int32, Float32, Float64, Bitmap}

// WordWidth is the number of registers one value of t spans.
// Unknown types report 0.
func (t DataType) WordWidth() int {
	switch t {
	case Int16, Bitmap:
		return 1
	case Int32, Float32:
		return 2
	case Float64:
		return 4
	default:
		return 0
	}
}

func (t DataType) String() string {
	switch t {
	case Int16:
		return "INT16"
	case Int32:
		return "INT32"
	case Float32:
		return "FLOAT32"
	case Float64:
		return "FLOAT64"
	case Bitmap:
		return "BITMAP"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the supported types.
func (t DataType) Valid() bool {
	return t.WordWidth() > 0
}

// ParseDataType maps a case-insensitive type name to a DataType.
func ParseDataType(name string) (DataType, error) {
	up := strings.ToUpper(strings.TrimSpace(name))
	for _, t := range dataTypes {
		if t.String() == up {
			return t, nil
		}
	}
	return 0, unsupportedType(name)
}

// SupportedTypeNames returns the canonical names of all supported types.
func SupportedTypeNames() []string {
	out := make([]string, 0, len(dataTypes))
	for _, t := range dataTypes {
		out = append(out, t.String())
	}
	return out
}

// ByteOrder selects which register of a multi-register group holds the
// most significant bits. The zero value is Big.
type ByteOrder uint8

const (
	Big ByteOrder = iota
	Little
)

func (o ByteOrder) String() string {
	if o == Little {
		return "little"
	}
	return "big"
}

// ParseByteOrder accepts "big" or "little" in any case. Empty means Big.
func ParseByteOrder(name string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "big":
		return Big, nil
	case "little":
		return Little, nil
	default:
		return Big, fmt.Errorf("decode: unsupported byte order %q (supported: big, little)", name)
	}
}

// Options carries the per-type knobs of the dispatch operations.
// The zero value decodes INT16 as signed and multi-register types big-endian.
type Options struct {
	Order    ByteOrder
	Unsigned bool // INT16 only
}

// Value is one decoded register value, tagged with the type that produced it.
// Exactly one of Int, Float or Bits is meaningful, depending on Type.
type Value struct {
	Type  DataType
	Int   int64
	Float float64
	Bits  [16]bool
}

// Interface returns the payload as a plain Go value: int64, float64 or []bool.
func (v Value) Interface() any {
	switch v.Type {
	case Int16, Int32:
		return v.Int
	case Float32, Float64:
		return v.Float
	case Bitmap:
		return v.Bits[:]
	default:
		return nil
	}
}

// String formats the value for reports. Bitmaps print bit 0 first.
func (v Value) String() string {
	switch v.Type {
	case Int16, Int32:
		return fmt.Sprintf("%d", v.Int)
	case Float32:
		return strconv.FormatFloat(v.Float, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case Bitmap:
		var b strings.Builder
		for _, set := range v.Bits {
			if set {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		return b.String()
	default:
		return ""
	}
}

// Unwrap returns the only element of values when there is exactly one.
func Unwrap(values []Value) (Value, bool) {
	if len(values) != 1 {
		return Value{}, false
	}
	return values[0], true
}
