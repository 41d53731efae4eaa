// internal/status/summarize.go
package status

import (
	"errors"

	"github.com/tamzrod/modbus-reader/internal/reading"
)

// Summarize derives the batch health from its rows.
func Summarize(rows []reading.Reading) Snapshot {
	s := Snapshot{Health: HealthUnknown, Total: len(rows)}
	if len(rows) == 0 {
		return s
	}

	for _, r := range rows {
		if r.Failed() {
			s.Failed++
			s.LastErrorCode = ErrorCode(r.Err)
		}
	}

	switch {
	case s.Failed == 0:
		s.Health = HealthOK
	case s.Failed == s.Total:
		s.Health = HealthError
	default:
		s.Health = HealthPartial
	}
	return s
}

// ErrorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns 1 (generic error).
func ErrorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coderA interface{ Code() uint16 }
	type coderB interface{ ErrorCode() uint16 }

	var a coderA
	if errors.As(err, &a) {
		return a.Code()
	}
	var b coderB
	if errors.As(err, &b) {
		return b.ErrorCode()
	}

	return 1
}
