package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromMap_Defaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	if err != nil {
		t.Fatalf("FromMap returned unexpected error: %v", err)
	}

	if cfg.DataDir != DefaultDataDir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, DefaultDataDir)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development environment, got %q", cfg.Environment)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.RateLimit != 5 || cfg.RateBurst != 10 {
		t.Errorf("unexpected rate limit %v/%d", cfg.RateLimit, cfg.RateBurst)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log settings %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.LogFilePath() != filepath.Join(os.TempDir(), "sitelink.log") {
		t.Errorf("unexpected default log file %q", cfg.LogFilePath())
	}
}

func TestFromMap_Overrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"SITELINK_DATA_DIR":         "/srv/content",
		"SITELINK_ENV":              "production",
		"SITELINK_HTTP_ADDR":        "127.0.0.1:9000",
		"SITELINK_RATE_LIMIT":       "0.5",
		"SITELINK_SHUTDOWN_TIMEOUT": "3s",
		"SITELINK_LOG_FORMAT":       "json",
		"SITELINK_LOG_FILE":         "/tmp/custom.log",
	})
	if err != nil {
		t.Fatalf("FromMap returned unexpected error: %v", err)
	}

	if cfg.DataDir != "/srv/content" || cfg.IsDevelopment() {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.RateLimit != 0.5 || cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("unexpected numeric settings: %+v", cfg)
	}
	if cfg.LogFilePath() != "/tmp/custom.log" {
		t.Errorf("unexpected log file %q", cfg.LogFilePath())
	}
}

func TestFromMap_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		errMsg  string
	}{
		{"unknown environment", map[string]string{"SITELINK_ENV": "staging"}, "SITELINK_ENV"},
		{"unknown log format", map[string]string{"SITELINK_LOG_FORMAT": "xml"}, "SITELINK_LOG_FORMAT"},
		{"zero rate", map[string]string{"SITELINK_RATE_LIMIT": "0"}, "rate limit"},
		{"not a number", map[string]string{"SITELINK_RATE_BURST": "many"}, "failed to parse"},
		{"bad duration", map[string]string{"SITELINK_SHUTDOWN_TIMEOUT": "soon"}, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.environ)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("SITELINK_DATA_DIR", "")
	if got := DataDir(); got != DefaultDataDir {
		t.Errorf("DataDir() = %q, want %q", got, DefaultDataDir)
	}

	t.Setenv("SITELINK_DATA_DIR", "/content")
	if got := DataDir(); got != "/content" {
		t.Errorf("DataDir() = %q, want /content", got)
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	t.Setenv("SITELINK_HTTP_ADDR", "")
	os.Unsetenv("SITELINK_HTTP_ADDR")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SITELINK_HTTP_ADDR=:7070\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Errorf("HTTPAddr = %q, want :7070", cfg.HTTPAddr)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing dotenv file should be ignored, got %v", err)
	}
}
