// internal/decode/dispatch.go
package decode

import "fmt"

type decoderFunc func(words []uint16, count int, opts Options) ([]Value, error)

// decoders is keyed by DataType. TestDecodersCoverAllTypes keeps it in
// step with dataTypes.
var decoders = map[DataType]decoderFunc{
	Int16: func(w []uint16, n int, o Options) ([]Value, error) {
		return DecodeInt16(w, n, !o.Unsigned)
	},
	Int32: func(w []uint16, n int, o Options) ([]Value, error) {
		return DecodeInt32(w, n, o.Order)
	},
	Float32: func(w []uint16, n int, o Options) ([]Value, error) {
		return DecodeFloat32(w, n, o.Order)
	},
	Float64: func(w []uint16, n int, o Options) ([]Value, error) {
		return DecodeFloat64(w, n, o.Order)
	},
	Bitmap: func(w []uint16, n int, _ Options) ([]Value, error) {
		return DecodeBitmap(w, n)
	},
}

// Decode runs the decoder registered for t.
func Decode(t DataType, words []uint16, count int, opts Options) ([]Value, error) {
	fn, ok := decoders[t]
	if !ok {
		return nil, unsupportedType(fmt.Sprint(t))
	}
	return fn(words, count, opts)
}

// DecodeByTypeName resolves a case-insensitive type name and decodes.
func DecodeByTypeName(name string, words []uint16, count int, opts Options) ([]Value, error) {
	t, err := ParseDataType(name)
	if err != nil {
		return nil, err
	}
	return Decode(t, words, count, opts)
}
