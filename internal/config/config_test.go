package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults with no env vars or file",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultPort, cfg.Server.Port)
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "console", cfg.Logging.Output)
				assert.Equal(t, DefaultWorkbookURL, cfg.Source.WorkbookURL)
				assert.Equal(t, 60*time.Second, cfg.Source.FetchTimeout)
				assert.Equal(t, "apple_products", cfg.Dataset.ProductsSheet)
				assert.Equal(t, "Market penetration (iPhone)", cfg.Dataset.PenetrationSheet)
			},
		},
		{
			name: "environment overrides defaults",
			env: map[string]string{
				"IREV_SERVER_PORT":            "9090",
				"IREV_SOURCE_FETCH_TIMEOUT":   "5s",
				"IREV_DATASET_REVENUE_SHEET":  "Revenue",
				"IREV_LOGGING_LEVEL":          "debug",
				"IREV_SECURITY_RATE_LIMIT_RPS": "10",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5*time.Second, cfg.Source.FetchTimeout)
				assert.Equal(t, "Revenue", cfg.Dataset.RevenueSheet)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, 10.0, cfg.Security.RateLimit.RPS)
			},
		},
		{
			name: "file values keep unspecified defaults",
			file: "server:\n  port: 7000\npaths:\n  data_dir: /srv/data\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7000, cfg.Server.Port)
				assert.Equal(t, "/srv/data", cfg.Paths.DataDir)
				assert.Equal(t, DefaultLogsDir, cfg.Paths.LogsDir)
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
			},
		},
		{
			name: "environment wins over file",
			file: "server:\n  port: 7000\n",
			env:  map[string]string{"IREV_SERVER_PORT": "7100"},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7100, cfg.Server.Port)
			},
		},
		{
			name:    "invalid port",
			env:     map[string]string{"IREV_SERVER_PORT": "70000"},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			env:     map[string]string{"IREV_LOGGING_LEVEL": "verbose"},
			wantErr: true,
		},
		{
			name:    "empty sheet name",
			file:    "dataset:\n  products_sheet: \"\"\n",
			wantErr: true,
		},
		{
			name:    "malformed file",
			file:    "server: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0644))
			}

			cfg, err := LoadFrom(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestResolveLogFile(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.BaseDir = base
	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)

	cfg.ResolveLogFile(paths, "web.log")
	assert.Empty(t, cfg.Logging.FilePath, "console output needs no file")

	cfg.Logging.Output = "both"
	cfg.ResolveLogFile(paths, "web.log")
	assert.Equal(t, filepath.Join(base, "logs", "web.log"), cfg.Logging.FilePath)

	cfg.Logging.FilePath = "/var/log/custom.log"
	cfg.ResolveLogFile(paths, "web.log")
	assert.Equal(t, "/var/log/custom.log", cfg.Logging.FilePath)
}

func TestNewPaths(t *testing.T) {
	base := t.TempDir()

	paths, err := NewPaths(PathsConfig{BaseDir: base, DataDir: "data", LogsDir: "logs"}, "book.xlsx")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)
	assert.Equal(t, filepath.Join(base, "data", "book.xlsx"), paths.WorkbookFile)
	assert.Equal(t, filepath.Join(base, "data", "Market_penetration_iPhone.csv"), paths.TablePath("Market penetration (iPhone)"))
	assert.Equal(t, filepath.Join(base, "logs", "ingest.log"), paths.LogPath("ingest.log"))

	require.NoError(t, paths.EnsureDirectories())
	assert.DirExists(t, paths.DataDir)
	assert.DirExists(t, paths.LogsDir)
}

func TestNewPaths_AbsoluteDirsAreKept(t *testing.T) {
	dataDir := t.TempDir()

	paths, err := NewPaths(PathsConfig{BaseDir: "/elsewhere", DataDir: dataDir, LogsDir: "logs"}, "book.xlsx")
	require.NoError(t, err)

	assert.Equal(t, dataDir, paths.DataDir)
	assert.Equal(t, filepath.Join(dataDir, "book.xlsx"), paths.WorkbookFile)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("IREV_SERVER_PORT=6001\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("IREV_SERVER_PORT")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6001, cfg.Server.Port)
}
