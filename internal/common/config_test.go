package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Empty values read as unset, pinning the defaults under any shell.
	t.Setenv("PIPELINE_PATTERN", "")
	t.Setenv("PDFTOTEXT_BIN", "")
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_MIN_CONNS", "")

	cfg := LoadConfig()
	if cfg.Pipeline.Pattern != "**/*.pdf" {
		t.Errorf("pattern = %q, want **/*.pdf", cfg.Pipeline.Pattern)
	}
	if cfg.Pipeline.Pdftotext != "pdftotext" {
		t.Errorf("pdftotext = %q", cfg.Pipeline.Pdftotext)
	}
	if cfg.Database.MaxConns != 20 || cfg.Database.MinConns != 5 {
		t.Errorf("pool defaults = %d/%d", cfg.Database.MaxConns, cfg.Database.MinConns)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bids")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("DB_DIAL_TIMEOUT", "9s")
	t.Setenv("PIPELINE_PATTERN", "*.pdf")

	cfg := LoadConfig()
	if cfg.Database.DSN != "postgres://localhost/bids" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 7 {
		t.Errorf("max conns = %d, want 7", cfg.Database.MaxConns)
	}
	if cfg.Database.DialTimeout != 9*time.Second {
		t.Errorf("dial timeout = %v, want 9s", cfg.Database.DialTimeout)
	}
	if cfg.Pipeline.Pattern != "*.pdf" {
		t.Errorf("pattern = %q, want *.pdf", cfg.Pipeline.Pattern)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `database:
  dsn: postgres://filehost/bids
pipeline:
  pattern: "da*.pdf"
  max_pages: 4
export:
  csv_dir: /tmp/exports
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	cfg.Pipeline.Pdftotext = "custom-pdftotext"
	if err := LoadConfigFile(cfg, path); err != nil {
		t.Fatal(err)
	}

	if cfg.Database.DSN != "postgres://filehost/bids" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Pipeline.Pattern != "da*.pdf" {
		t.Errorf("pattern = %q", cfg.Pipeline.Pattern)
	}
	if cfg.Pipeline.MaxPages != 4 {
		t.Errorf("max pages = %d", cfg.Pipeline.MaxPages)
	}
	if cfg.Export.CSVDir != "/tmp/exports" {
		t.Errorf("csv dir = %q", cfg.Export.CSVDir)
	}
	// Values absent from the file keep their previous setting.
	if cfg.Pipeline.Pdftotext != "custom-pdftotext" {
		t.Errorf("pdftotext = %q, want custom-pdftotext", cfg.Pipeline.Pdftotext)
	}

	if err := LoadConfigFile(cfg, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty DSN must not validate")
	}
	cfg.Database.DSN = "postgres://localhost/bids"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
