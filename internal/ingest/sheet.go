package ingest

import (
	"strconv"
	"strings"
)

// Sheet is one workbook tab after cleaning
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]string
	// Dropped counts the fully empty rows that were removed
	Dropped int
}

// CleanSheet turns the raw rows of a sheet into a rectangular table. The
// first non-empty row is the header; column names are trimmed and blank ones
// become "Unnamed: <index>". Rows whose cells are all empty are dropped, every
// other row is kept as is and padded to the table width.
func CleanSheet(name string, raw [][]string) Sheet {
	sheet := Sheet{Name: name}

	for len(raw) > 0 && isEmptyRow(raw[0]) {
		raw = raw[1:]
		sheet.Dropped++
	}
	if len(raw) == 0 {
		return sheet
	}

	width := 0
	for _, row := range raw {
		if len(row) > width {
			width = len(row)
		}
	}

	sheet.Columns = make([]string, width)
	for i := range sheet.Columns {
		var header string
		if i < len(raw[0]) {
			header = strings.TrimSpace(raw[0][i])
		}
		if header == "" {
			header = "Unnamed: " + strconv.Itoa(i)
		}
		sheet.Columns[i] = header
	}

	for _, row := range raw[1:] {
		if isEmptyRow(row) {
			sheet.Dropped++
			continue
		}
		record := make([]string, width)
		copy(record, row)
		sheet.Rows = append(sheet.Rows, record)
	}

	return sheet
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
