// internal/decode/errors.go
package decode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedInput means the word slice does not match count*width.
	ErrMalformedInput = errors.New("decode: malformed input")

	// ErrUnsupportedType means a type name matched none of the known types.
	ErrUnsupportedType = errors.New("decode: unsupported data type")
)

func malformed(t DataType, count, got int) error {
	if count < 1 {
		return fmt.Errorf("%w: %s count must be >= 1, got %d", ErrMalformedInput, t, count)
	}
	return fmt.Errorf(
		"%w: %s count=%d needs %d words, got %d",
		ErrMalformedInput, t, count, count*t.WordWidth(), got,
	)
}

func unsupportedType(name string) error {
	return fmt.Errorf(
		"%w %q (supported: %s)",
		ErrUnsupportedType, name, strings.Join(SupportedTypeNames(), ", "),
	)
}
