// Package csvtable parses comma-separated values into a header/row table
// and renders it as an aligned text table.
//
// The first CSV record is the header row; every record after it is a
// data row. Fields are trimmed of surrounding whitespace, blank lines
// are skipped, and rows may carry fewer fields than the header (missing
// cells render empty).
package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

var (
	// ErrNoHeaders indicates the input contained no CSV records at all.
	ErrNoHeaders = errors.New("CSV has no headers")

	// ErrNoRows indicates the input contained a header record but no data rows.
	ErrNoRows = errors.New("CSV has no data rows")
)

// Table is parsed CSV data: one header record and the data rows that
// followed it.
type Table struct {
	// Headers holds the fields of the first CSV record.
	Headers []string `json:"headers" yaml:"headers"`
	// Rows holds the fields of every record after the first.
	Rows [][]string `json:"rows" yaml:"rows"`
}

// Parse reads CSV from r into a Table. The first record becomes the
// header row and the rest become data rows. Records may have varying
// field counts; every field is trimmed of surrounding whitespace.
//
// Returns ErrNoHeaders when r holds no records and ErrNoRows when it
// holds only a header record.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	for _, record := range records {
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
	}

	if len(records) == 0 {
		return nil, ErrNoHeaders
	}
	if len(records) == 1 {
		return nil, ErrNoRows
	}
	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// ParseLines parses CSV supplied as individual lines, as collected from
// interactive input. Blank lines are skipped, so trailing empty entries
// are harmless.
func ParseLines(lines []string) (*Table, error) {
	return Parse(strings.NewReader(strings.Join(lines, "\n")))
}

// Render writes the table to w as an aligned text table with centered
// cells. Header text is rendered exactly as parsed and rows shorter
// than the header are padded with empty cells.
func (t *Table) Render(w io.Writer) {
	out := tablewriter.NewWriter(w)
	out.SetHeader(t.Headers)
	out.SetAutoFormatHeaders(false)
	out.SetAlignment(tablewriter.ALIGN_CENTER)
	for _, row := range t.Rows {
		out.Append(t.pad(row))
	}
	out.Render()
}

// String returns the rendered table as a string.
func (t *Table) String() string {
	var b strings.Builder
	t.Render(&b)
	return b.String()
}

func (t *Table) pad(row []string) []string {
	if len(row) >= len(t.Headers) {
		return row
	}
	padded := make([]string, len(t.Headers))
	copy(padded, row)
	return padded
}
