package files

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetFileName(t *testing.T) {
	tests := []struct {
		sheet string
		want  string
	}{
		{"Market penetration (iPhone)", "Market_penetration_iPhone.csv"},
		{"apple_products", "apple_products.csv"},
		{"Annual revenue", "Annual_revenue.csv"},
		{"Country wise share", "Country_wise_share.csv"},
		{"Quarterly-share", "Quarterly-share.csv"},
		{"(a) (b)", "a_b.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.sheet, func(t *testing.T) {
			assert.Equal(t, tt.want, SheetFileName(tt.sheet))
			assert.Equal(t, SheetFileName(tt.sheet), SheetFileName(tt.sheet))
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "book.xlsx")

	n, err := WriteFileAtomic(path, strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.True(t, FileExists(path))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteFileAtomic_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.xlsx")

	_, err := WriteFileAtomic(path, failingReader{})
	require.Error(t, err)

	assert.False(t, FileExists(path))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileExists_Directory(t *testing.T) {
	assert.False(t, FileExists(t.TempDir()))
	assert.False(t, FileExists(filepath.Join(t.TempDir(), "missing")))
}

func TestFindTables(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "book.xlsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))

	tables, err := FindTables(dir)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "a.csv", tables[0].Name)
	assert.Equal(t, "b.csv", tables[1].Name)

	none, err := FindTables(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, none)
}
