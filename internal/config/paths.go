package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"irevolution/internal/files"
)

// Paths contains the resolved on-disk locations shared by the ingestor
// and the server.
type Paths struct {
	BaseDir      string
	DataDir      string
	LogsDir      string
	WorkbookFile string
}

// NewPaths resolves cfg against its base directory
func NewPaths(cfg PathsConfig, workbookFile string) (*Paths, error) {
	base := cfg.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}

	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	dataDir := resolve(base, cfg.DataDir)

	return &Paths{
		BaseDir:      base,
		DataDir:      dataDir,
		LogsDir:      resolve(base, cfg.LogsDir),
		WorkbookFile: resolve(dataDir, workbookFile),
	}, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		slog.Debug("Ensured directory exists", slog.String("directory", dir))
	}
	return nil
}

// TablePath returns the CSV location of the table exported from sheet
func (p *Paths) TablePath(sheet string) string {
	return filepath.Join(p.DataDir, files.SheetFileName(sheet))
}

// LogPath returns the path of a log file in the logs directory
func (p *Paths) LogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// LogValue reports the resolved paths as a single structured attribute group
func (p *Paths) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_dir", p.BaseDir),
		slog.String("data_dir", p.DataDir),
		slog.String("logs_dir", p.LogsDir),
		slog.String("workbook", p.WorkbookFile),
	)
}
