// internal/decode/decode.go
package decode

import "math"

// Every decoder checks the word count first and always returns exactly
// count values. Words are in the order the transport returned them
// (ascending register address).

// DecodeInt16 decodes one value per register. When signed is set the
// register is reinterpreted as two's complement.
func DecodeInt16(words []uint16, count int, signed bool) ([]Value, error) {
	if err := checkLen(Int16, words, count); err != nil {
		return nil, err
	}
	out := make([]Value, count)
	for i, w := range words {
		v := int64(w)
		if signed {
			v = int64(int16(w))
		}
		out[i] = Value{Type: Int16, Int: v}
	}
	return out, nil
}

// DecodeInt32 decodes signed 32-bit integers from register pairs.
// Big: the first register is the high word. Little: the second one is.
func DecodeInt32(words []uint16, count int, order ByteOrder) ([]Value, error) {
	if err := checkLen(Int32, words, count); err != nil {
		return nil, err
	}
	out := make([]Value, count)
	for i := range out {
		u := combine32(words[2*i:2*i+2], order)
		out[i] = Value{Type: Int32, Int: int64(int32(u))}
	}
	return out, nil
}

// DecodeFloat32 decodes IEEE-754 single precision values from register
// pairs, using the same word order rule as DecodeInt32.
func DecodeFloat32(words []uint16, count int, order ByteOrder) ([]Value, error) {
	if err := checkLen(Float32, words, count); err != nil {
		return nil, err
	}
	out := make([]Value, count)
	for i := range out {
		u := combine32(words[2*i:2*i+2], order)
		out[i] = Value{Type: Float32, Float: float64(math.Float32frombits(u))}
	}
	return out, nil
}

// DecodeFloat64 decodes IEEE-754 double precision values from groups of
// four registers. Big: the first register holds the most significant
// word. Little: the group is reversed, the fourth register holds it.
func DecodeFloat64(words []uint16, count int, order ByteOrder) ([]Value, error) {
	if err := checkLen(Float64, words, count); err != nil {
		return nil, err
	}
	out := make([]Value, count)
	for i := range out {
		g := words[4*i : 4*i+4]
		var u uint64
		if order == Little {
			u = uint64(g[3])<<48 | uint64(g[2])<<32 | uint64(g[1])<<16 | uint64(g[0])
		} else {
			u = uint64(g[0])<<48 | uint64(g[1])<<32 | uint64(g[2])<<16 | uint64(g[3])
		}
		out[i] = Value{Type: Float64, Float: math.Float64frombits(u)}
	}
	return out, nil
}

// DecodeBitmap expands every register into 16 flags, bit 0 first.
func DecodeBitmap(words []uint16, count int) ([]Value, error) {
	if err := checkLen(Bitmap, words, count); err != nil {
		return nil, err
	}
	out := make([]Value, count)
	for i, w := range words {
		v := Value{Type: Bitmap}
		for b := 0; b < 16; b++ {
			v.Bits[b] = (w>>b)&1 == 1
		}
		out[i] = v
	}
	return out, nil
}

func checkLen(t DataType, words []uint16, count int) error {
	if count < 1 || len(words) != count*t.WordWidth() {
		return malformed(t, count, len(words))
	}
	return nil
}

func combine32(pair []uint16, order ByteOrder) uint32 {
	hi, lo := pair[0], pair[1]
	if order == Little {
		hi, lo = lo, hi
	}
	return uint32(hi)<<16 | uint32(lo)
}
