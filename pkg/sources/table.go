package sources

import (
	"strings"

	"github.com/agentstation/pricemap/pkg/errors"
)

// Table is a header row plus data rows of raw cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable builds a table from records whose first entry is the header.
func NewTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, &errors.ValidationError{
			Field:   "records",
			Message: "header row is required",
		}
	}
	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// Column returns the index of a header, matched case-insensitively after
// trimming.
func (t *Table) Column(name string) (int, bool) {
	want := strings.TrimSpace(name)
	for i, h := range t.Headers {
		if strings.EqualFold(strings.TrimSpace(h), want) {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// cell returns a trimmed cell, or "" when the row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
