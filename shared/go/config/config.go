package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all client configuration
type Config struct {
	// API configuration
	API APIConfig

	// Session configuration
	Session SessionConfig

	// Logging configuration
	Logging LoggingConfig
}

// APIConfig holds backend connection settings
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds session persistence settings
type SessionConfig struct {
	TokenPath string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.loadAPI()
	if err := cfg.loadSession(); err != nil {
		return nil, fmt.Errorf("load session config: %w", err)
	}
	cfg.loadLogging()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadAPI() {
	c.API.BaseURL = getEnvOrDefault("PLACEHOUND_API_URL", "http://127.0.0.1:5000")

	timeoutStr := getEnvOrDefault("PLACEHOUND_API_TIMEOUT_SECONDS", "30")
	seconds, err := strconv.Atoi(timeoutStr)
	if err != nil || seconds <= 0 {
		seconds = 30
	}
	c.API.Timeout = time.Duration(seconds) * time.Second
}

func (c *Config) loadSession() error {
	c.Session.TokenPath = os.Getenv("PLACEHOUND_TOKEN_PATH")
	if c.Session.TokenPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		c.Session.TokenPath = filepath.Join(configDir, "placehound", "token")
	}
	return nil
}

func (c *Config) loadLogging() {
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", "text")
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	if c.API.BaseURL == "" {
		errors = append(errors, "PLACEHOUND_API_URL is required")
	} else if _, err := url.Parse(c.API.BaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("PLACEHOUND_API_URL is not a valid URL: %v", err))
	}

	if c.Session.TokenPath == "" {
		errors = append(errors, "PLACEHOUND_TOKEN_PATH could not be resolved")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
