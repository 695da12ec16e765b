package files

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileExists checks if a regular file exists at path
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteFileAtomic streams r into path. Data goes to a temporary file in the
// destination directory first and is renamed into place once complete, so a
// failed write never leaves a truncated file at path.
func WriteFileAtomic(path string, r io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	n, err := io.Copy(tmp, r)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return n, fmt.Errorf("failed to write file content: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return n, fmt.Errorf("failed to move file into place: %w", err)
	}

	slog.Debug("Wrote file",
		slog.String("path", path),
		slog.Int64("size_bytes", n))

	return n, nil
}
