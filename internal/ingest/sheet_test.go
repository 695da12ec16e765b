package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSheet(t *testing.T) {
	tests := []struct {
		name        string
		raw         [][]string
		wantColumns []string
		wantRows    [][]string
		wantDropped int
	}{
		{
			name:        "empty sheet",
			raw:         nil,
			wantColumns: nil,
			wantRows:    nil,
		},
		{
			name:        "header only",
			raw:         [][]string{{"brand", "model"}},
			wantColumns: []string{"brand", "model"},
			wantRows:    nil,
		},
		{
			name: "trims header names",
			raw: [][]string{
				{"  Sale Price ", "Star Rating\t"},
				{"100", "4.5"},
			},
			wantColumns: []string{"Sale Price", "Star Rating"},
			wantRows:    [][]string{{"100", "4.5"}},
		},
		{
			name: "drops fully empty rows only",
			raw: [][]string{
				{"a", "b"},
				{"1", "2"},
				{},
				{"", ""},
				{"", "3"},
				{"4", "5"},
			},
			wantColumns: []string{"a", "b"},
			wantRows:    [][]string{{"1", "2"}, {"", "3"}, {"4", "5"}},
			wantDropped: 2,
		},
		{
			name: "leading empty rows are skipped before the header",
			raw: [][]string{
				nil,
				{"", ""},
				{"Year", "Revenue ($bn)"},
				{"2019", "260.2"},
				nil,
				{"2020", "274.5"},
			},
			wantColumns: []string{"Year", "Revenue ($bn)"},
			wantRows:    [][]string{{"2019", "260.2"}, {"2020", "274.5"}},
			wantDropped: 3,
		},
		{
			name:        "only empty rows",
			raw:         [][]string{nil, {""}},
			wantColumns: nil,
			wantRows:    nil,
			wantDropped: 2,
		},
		{
			name: "whitespace cell keeps the row",
			raw: [][]string{
				{"a"},
				{" "},
			},
			wantColumns: []string{"a"},
			wantRows:    [][]string{{" "}},
		},
		{
			name: "pads ragged rows",
			raw: [][]string{
				{"a", "b", "c"},
				{"1"},
			},
			wantColumns: []string{"a", "b", "c"},
			wantRows:    [][]string{{"1", "", ""}},
		},
		{
			name: "names blank and missing headers",
			raw: [][]string{
				{"a", " "},
				{"1", "2", "3"},
			},
			wantColumns: []string{"a", "Unnamed: 1", "Unnamed: 2"},
			wantRows:    [][]string{{"1", "2", "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := CleanSheet("test", tt.raw)

			assert.Equal(t, "test", sheet.Name)
			assert.Equal(t, tt.wantColumns, sheet.Columns)
			assert.Equal(t, tt.wantRows, sheet.Rows)
			assert.Equal(t, tt.wantDropped, sheet.Dropped)
		})
	}
}
