package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is an exported sheet held in memory. It is never modified after
// ReadTable returns, so it can be shared between goroutines.
type Table struct {
	Name    string
	Path    string
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a table from a header and rows. Rows shorter than the
// header are padded with empty cells.
func NewTable(name string, columns []string, rows [][]string) *Table {
	t := &Table{
		Name:    name,
		Columns: make([]string, len(columns)),
		Rows:    make([][]string, 0, len(rows)),
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		col = strings.TrimSpace(col)
		t.Columns[i] = col
		if _, dup := t.index[col]; !dup {
			t.index[col] = i
		}
	}

	for _, row := range rows {
		if len(row) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, row)
			row = padded
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// ReadTable loads a CSV table written by the ingestor
func ReadTable(name, path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse table file: %w", err)
	}

	var table *Table
	if len(records) == 0 {
		table = NewTable(name, nil, nil)
	} else {
		table = NewTable(name, records[0], records[1:])
	}
	table.Path = path

	return table, nil
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column named name
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns every value of the named column in row order, or nil if
// the column does not exist.
func (t *Table) Column(name string) []string {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values
}

// Value returns the cell at row for the named column
func (t *Table) Value(row int, column string) (string, bool) {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][i], true
}

// Require checks that all named columns are present
func (t *Table) Require(columns ...string) error {
	var missing []string
	for _, col := range columns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %q is missing required columns %q", t.Name, missing)
	}
	return nil
}
