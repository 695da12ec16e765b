package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the namespace of every environment variable read by Load.
const EnvPrefix = "IREV"

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Source   SourceConfig   `yaml:"source" envconfig:"SOURCE"`
	Dataset  DatasetConfig  `yaml:"dataset" envconfig:"DATASET"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"gte=0"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" validate:"min=1"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gt=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration.
// Relative directories are resolved against BaseDir, or the working
// directory when BaseDir is empty.
type PathsConfig struct {
	BaseDir string `yaml:"base_dir" envconfig:"BASE_DIR"`
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	LogsDir string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// SourceConfig describes where the workbook comes from and where it is cached.
type SourceConfig struct {
	WorkbookURL  string        `yaml:"workbook_url" envconfig:"WORKBOOK_URL" validate:"required,url"`
	WorkbookFile string        `yaml:"workbook_file" envconfig:"WORKBOOK_FILE" validate:"required"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT" validate:"gt=0"`
}

// DatasetConfig names the sheets whose exported tables the server loads.
// Table file names are derived from these with files.SheetFileName.
type DatasetConfig struct {
	ProductsSheet    string `yaml:"products_sheet" envconfig:"PRODUCTS_SHEET" validate:"required"`
	CompetitorsSheet string `yaml:"competitors_sheet" envconfig:"COMPETITORS_SHEET" validate:"required"`
	RevenueSheet     string `yaml:"revenue_sheet" envconfig:"REVENUE_SHEET" validate:"required"`
	PenetrationSheet string `yaml:"penetration_sheet" envconfig:"PENETRATION_SHEET" validate:"required"`
}

// Load loads configuration from defaults, the first config file found and
// environment variables, in increasing order of precedence. A .env file in
// the working directory seeds variables that are not already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return LoadFrom(getConfigFilePath())
}

// LoadFrom is like Load but reads the given YAML file. An empty path skips
// the file layer.
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Unset variables leave file and default values untouched
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// ResolvePaths resolves the configured directories
func (c *Config) ResolvePaths() (*Paths, error) {
	return NewPaths(c.Paths, c.Source.WorkbookFile)
}

// ResolveLogFile points file logging at name inside the logs directory when
// file output is enabled without an explicit path.
func (c *Config) ResolveLogFile(paths *Paths, name string) {
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		c.Logging.FilePath = paths.LogPath(name)
	}
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return path
	}

	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20, // 1MB
			ShutdownTimeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:5000"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "console",
		},
		Paths: PathsConfig{
			DataDir: DefaultDataDir,
			LogsDir: DefaultLogsDir,
		},
		Source: SourceConfig{
			WorkbookURL:  DefaultWorkbookURL,
			WorkbookFile: DefaultWorkbookFile,
			FetchTimeout: DefaultFetchTimeout,
		},
		Dataset: DatasetConfig{
			ProductsSheet:    SheetProducts,
			CompetitorsSheet: SheetCompetitors,
			RevenueSheet:     SheetAnnualRevenue,
			PenetrationSheet: SheetMarketPenetration,
		},
	}
}
