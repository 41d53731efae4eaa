// internal/report/report.go
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tamzrod/modbus-reader/internal/decode"
	"github.com/tamzrod/modbus-reader/internal/reading"
)

// Format selects the report layout.
type Format string

const (
	Table  Format = "table"
	Pretty Format = "pretty"
	CSV    Format = "csv"
	JSON   Format = "json"
)

// Columns is the report header, in order.
var Columns = []string{"Timestamp", "Name", "Address", "Data Type", "Value", "Unit", "Description"}

const timeLayout = "2006-01-02 15:04:05.000"

// ParseFormat accepts a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Table, Pretty, CSV, JSON:
		return f, nil
	case "":
		return Table, nil
	default:
		return "", fmt.Errorf("report: unknown format %q (table, pretty, csv, json)", s)
	}
}

// Render writes rows to w in the given format.
func Render(w io.Writer, f Format, rows []reading.Reading) error {
	switch f {
	case Table:
		return renderTable(w, rows)
	case Pretty:
		return renderPretty(w, rows)
	case CSV:
		return renderCSV(w, rows)
	case JSON:
		return renderJSON(w, rows)
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}

// Record flattens one reading into report cells, in Columns order.
func Record(r reading.Reading) []string {
	return []string{
		r.Timestamp.Format(timeLayout),
		r.Name,
		strconv.Itoa(int(r.Address)),
		r.Type.String(),
		r.ValueString(),
		r.Unit,
		r.Description,
	}
}

func renderTable(w io.Writer, rows []reading.Reading) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(Columns, "\t")+"\t")
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(Record(r), "\t")+"\t")
	}
	return tw.Flush()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = cellStyle.Foreground(lipgloss.Color("9"))
)

func renderPretty(w io.Writer, rows []reading.Reading) error {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = Record(r)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(Columns...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row].Failed():
				return errorStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderCSV(w io.Writer, rows []reading.Reading) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(Record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonRow struct {
	Timestamp   time.Time `json:"timestamp"`
	Name        string    `json:"name"`
	Address     uint16    `json:"address"`
	DataType    string    `json:"data_type"`
	Value       any       `json:"value"`
	Error       string    `json:"error,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description,omitempty"`
}

func renderJSON(w io.Writer, rows []reading.Reading) error {
	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		jr := jsonRow{
			Timestamp:   r.Timestamp,
			Name:        r.Name,
			Address:     r.Address,
			DataType:    r.Type.String(),
			Unit:        r.Unit,
			Description: r.Description,
		}
		if r.Failed() {
			jr.Error = r.Err.Error()
		} else {
			jr.Value = jsonValue(r.Value)
		}
		out[i] = jr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// jsonValue keeps NaN and Inf encodable by emitting them as strings.
func jsonValue(v decode.Value) any {
	if f, ok := v.Interface().(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return v.String()
	}
	return v.Interface()
}
