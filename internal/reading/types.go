// internal/reading/types.go
package reading

import (
	"fmt"
	"time"

	"github.com/tamzrod/modbus-reader/internal/decode"
)

// Descriptor names one holding-register value (or run of values) to read.
type Descriptor struct {
	Name        string
	Address     uint16
	Type        decode.DataType
	Count       int              // values to read; 0 is treated as 1
	Order       decode.ByteOrder // multi-register types only
	Unsigned    bool             // INT16 only
	Unit        string
	Description string
}

func (d Descriptor) count() int {
	if d.Count < 1 {
		return 1
	}
	return d.Count
}

// WordCount is the number of registers the descriptor spans.
func (d Descriptor) WordCount() int {
	return d.count() * d.Type.WordWidth()
}

// Reading is one row of the report.
// Err non-nil marks a row whose value could not be obtained.
type Reading struct {
	Timestamp   time.Time
	Name        string
	Address     uint16
	Type        decode.DataType
	Value       decode.Value
	Err         error
	Unit        string
	Description string
}

// Failed reports whether the row carries the error marker.
func (r Reading) Failed() bool {
	return r.Err != nil
}

// ValueString is Value formatted for reports, or "Error".
func (r Reading) ValueString() string {
	if r.Err != nil {
		return "Error"
	}
	return r.Value.String()
}

// Batch is the output of one Assemble call.
type Batch struct {
	At       time.Time
	Readings []Reading
}

func indexedName(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}
