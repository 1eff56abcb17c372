package common

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Export   ExportConfig   `yaml:"export"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"`
	MaxConns         int32         `yaml:"max_conns"`
	MinConns         int32         `yaml:"min_conns"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time"`
	DialTimeout      time.Duration `yaml:"dial_timeout"`
	StatementTimeout time.Duration `yaml:"statement_timeout"`
}

// PipelineConfig holds pipeline-related configuration
type PipelineConfig struct {
	Pattern   string `yaml:"pattern"`
	StateFile string `yaml:"state_file"`
	Pdftotext string `yaml:"pdftotext"`
	MaxPages  int    `yaml:"max_pages"`
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	CSVDir   string `yaml:"csv_dir"`
	XLSXPath string `yaml:"xlsx_path"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DATABASE_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Pipeline: PipelineConfig{
			Pattern:   getEnv("PIPELINE_PATTERN", "**/*.pdf"),
			StateFile: getEnv("PIPELINE_STATE_FILE", ""),
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			MaxPages:  getEnvAsInt("PIPELINE_MAX_PAGES", 0),
		},
		Export: ExportConfig{
			CSVDir:   getEnv("EXPORT_CSV_DIR", ""),
			XLSXPath: getEnv("EXPORT_XLSX_PATH", ""),
		},
	}
}

// LoadConfigFile overlays values from a YAML file onto cfg. Zero values in
// the file leave the existing value untouched.
func LoadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return WrapError(err, "parse config file")
	}

	if file.Database.DSN != "" {
		cfg.Database.DSN = file.Database.DSN
	}
	if file.Database.MaxConns > 0 {
		cfg.Database.MaxConns = file.Database.MaxConns
	}
	if file.Database.MinConns > 0 {
		cfg.Database.MinConns = file.Database.MinConns
	}
	if file.Pipeline.Pattern != "" {
		cfg.Pipeline.Pattern = file.Pipeline.Pattern
	}
	if file.Pipeline.StateFile != "" {
		cfg.Pipeline.StateFile = file.Pipeline.StateFile
	}
	if file.Pipeline.Pdftotext != "" {
		cfg.Pipeline.Pdftotext = file.Pipeline.Pdftotext
	}
	if file.Pipeline.MaxPages > 0 {
		cfg.Pipeline.MaxPages = file.Pipeline.MaxPages
	}
	if file.Export.CSVDir != "" {
		cfg.Export.CSVDir = file.Export.CSVDir
	}
	if file.Export.XLSXPath != "" {
		cfg.Export.XLSXPath = file.Export.XLSXPath
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks configuration needed before a database-backed run.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DATABASE_URL is required", ErrInvalidInput)
	}
	return nil
}
