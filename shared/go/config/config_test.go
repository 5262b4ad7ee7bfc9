package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PLACEHOUND_API_URL", "")
	t.Setenv("PLACEHOUND_API_TIMEOUT_SECONDS", "")
	t.Setenv("PLACEHOUND_TOKEN_PATH", filepath.Join(t.TempDir(), "token"))
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:5000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.API.Timeout)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("logging = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PLACEHOUND_API_URL", "https://places.example.org")
	t.Setenv("PLACEHOUND_API_TIMEOUT_SECONDS", "5")
	t.Setenv("PLACEHOUND_TOKEN_PATH", filepath.Join(t.TempDir(), "token"))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "https://places.example.org" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.API.Timeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("PLACEHOUND_API_URL", "")
	t.Setenv("PLACEHOUND_API_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("PLACEHOUND_TOKEN_PATH", filepath.Join(t.TempDir(), "token"))
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want fallback 30s", cfg.API.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, "PLACEHOUND_API_URL"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"missing token path", func(c *Config) { c.Session.TokenPath = "" }, "PLACEHOUND_TOKEN_PATH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				API:     APIConfig{BaseURL: "http://127.0.0.1:5000", Timeout: 30 * time.Second},
				Session: SessionConfig{TokenPath: "/tmp/token"},
				Logging: LoggingConfig{Level: "info", Format: "text"},
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("baseline Validate() error = %v", err)
			}

			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
