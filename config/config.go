// Package config loads the process configuration: built-in defaults, an
// optional YAML file, then environment-variable overrides. The resulting
// struct is read-only after startup and passed by handle into every
// component.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/officepipe/oferr"
)

// Config holds all tunables. Numeric limits are configuration, not
// protocol: every instance may override them.
type Config struct {
	GoogleCredentialsPath string `yaml:"google_credentials_path"`
	OutputDirectory       string `yaml:"output_directory"`
	MaxFileSizeMB         int    `yaml:"max_file_size_mb"`
	MaxSheets             int    `yaml:"max_sheets"`
	MaxSlides             int    `yaml:"max_slides"`
	APITimeoutSeconds     int    `yaml:"api_timeout_seconds"`
	MaxRetries            int    `yaml:"max_retries"`
	EnableGoogleWorkspace bool   `yaml:"enable_google_workspace"`
	LogLevel              string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		GoogleCredentialsPath: "~/.config/officepipe/google-credentials.json",
		OutputDirectory:       "~/Documents/officepipe-output",
		MaxFileSizeMB:         100,
		MaxSheets:             100,
		MaxSlides:             500,
		APITimeoutSeconds:     60,
		MaxRetries:            3,
		EnableGoogleWorkspace: true,
		LogLevel:              "info",
	}
}

// Load builds the effective configuration. path may be empty, in which
// case only defaults and environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(ExpandHome(path))
		if err != nil {
			return nil, oferr.New(oferr.ConfigurationError,
				fmt.Sprintf("configuration file not found: %s", path),
				map[string]any{"path": path, "error": err.Error()})
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, oferr.New(oferr.ConfigurationError,
				fmt.Sprintf("invalid YAML in configuration file: %s", path),
				map[string]any{"path": path, "error": err.Error()})
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.GoogleCredentialsPath = ExpandHome(cfg.GoogleCredentialsPath)
	cfg.OutputDirectory = ExpandHome(cfg.OutputDirectory)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		c.GoogleCredentialsPath = v
	}
	if v := os.Getenv("OFFICEPIPE_OUTPUT_DIR"); v != "" {
		c.OutputDirectory = v
	}
	if v := os.Getenv("OFFICEPIPE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	for _, e := range []struct {
		name string
		dst  *int
	}{
		{"OFFICEPIPE_MAX_FILE_SIZE_MB", &c.MaxFileSizeMB},
		{"OFFICEPIPE_API_TIMEOUT", &c.APITimeoutSeconds},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return oferr.New(oferr.ConfigurationError,
				fmt.Sprintf("invalid value for %s: %s", e.name, v),
				map[string]any{"env_var": e.name, "value": v})
		}
		*e.dst = n
	}
	return nil
}

func (c *Config) validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"max_file_size_mb", c.MaxFileSizeMB},
		{"max_sheets", c.MaxSheets},
		{"max_slides", c.MaxSlides},
		{"api_timeout_seconds", c.APITimeoutSeconds},
		{"max_retries", c.MaxRetries},
	} {
		if f.value <= 0 {
			return oferr.Newf(oferr.ConfigurationError, "%s must be positive", f.name)
		}
	}
	if err := os.MkdirAll(c.OutputDirectory, 0o755); err != nil {
		return oferr.New(oferr.ConfigurationError,
			fmt.Sprintf("failed to create output directory: %s", c.OutputDirectory),
			map[string]any{"error": err.Error()})
	}
	return nil
}

// MaxFileSize returns the file size cap in bytes.
func (c *Config) MaxFileSize() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// APITimeout returns the per-call remote timeout.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

// SlogLevel maps the configured log level onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ExpandHome resolves a leading ~ against the current user's home
// directory. Paths that do not start with ~ pass through unchanged.
func ExpandHome(path string) string {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
