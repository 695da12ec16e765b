package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWorkbookFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("PK"), 0644))
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "workbook", path: write("apple_products.xlsx")},
		{name: "upper case extension", path: write("BOOK.XLSX")},
		{name: "missing", path: filepath.Join(dir, "missing.xlsx"), wantErr: true},
		{name: "directory", path: dir, wantErr: true},
		{name: "csv", path: write("table.csv"), wantErr: true},
		{name: "lock file", path: write("~$apple_products.xlsx"), wantErr: true},
	}

	v := NewFileValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateWorkbookFile(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	require.NoError(t, NewFileValidator(nil).ValidateOutputDirectory(dir))

	assert.DirExists(t, dir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
