package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hazyhaar/officepipe/oferr"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxFileSizeMB != 100 || cfg.MaxSheets != 100 || cfg.MaxSlides != 500 {
		t.Errorf("limits = %d/%d/%d", cfg.MaxFileSizeMB, cfg.MaxSheets, cfg.MaxSlides)
	}
	if cfg.APITimeoutSeconds != 60 || cfg.MaxRetries != 3 {
		t.Errorf("api settings = %d/%d", cfg.APITimeoutSeconds, cfg.MaxRetries)
	}
	if !cfg.EnableGoogleWorkspace {
		t.Error("google workspace must default on")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("OFFICEPIPE_OUTPUT_DIR", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxFileSizeMB != 100 {
		t.Errorf("max_file_size_mb = %d, want default 100", cfg.MaxFileSizeMB)
	}
	if _, err := os.Stat(cfg.OutputDirectory); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
output_directory: ` + dir + `
max_file_size_mb: 5
max_sheets: 10
log_level: debug
enable_google_workspace: false
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxFileSizeMB != 5 || cfg.MaxSheets != 10 {
		t.Errorf("limits = %d/%d", cfg.MaxFileSizeMB, cfg.MaxSheets)
	}
	if cfg.EnableGoogleWorkspace {
		t.Error("enable_google_workspace=false ignored")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("slog level = %v", cfg.SlogLevel())
	}
	// Unset keys keep their defaults.
	if cfg.MaxSlides != 500 {
		t.Errorf("max_slides = %d, want default 500", cfg.MaxSlides)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !oferr.IsKind(err, oferr.ConfigurationError) {
		t.Fatalf("error kind = %v, want ConfigurationError", oferr.KindOf(err))
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_sheets: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !oferr.IsKind(err, oferr.ConfigurationError) {
		t.Fatalf("error kind = %v, want ConfigurationError", oferr.KindOf(err))
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OFFICEPIPE_OUTPUT_DIR", t.TempDir())
	t.Setenv("OFFICEPIPE_MAX_FILE_SIZE_MB", "7")
	t.Setenv("OFFICEPIPE_API_TIMEOUT", "15")
	t.Setenv("OFFICEPIPE_LOG_LEVEL", "warn")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxFileSizeMB != 7 {
		t.Errorf("max_file_size_mb = %d, want 7", cfg.MaxFileSizeMB)
	}
	if cfg.APITimeout() != 15*time.Second {
		t.Errorf("api timeout = %v, want 15s", cfg.APITimeout())
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("slog level = %v", cfg.SlogLevel())
	}
	if cfg.GoogleCredentialsPath != "/tmp/creds.json" {
		t.Errorf("credentials path = %q", cfg.GoogleCredentialsPath)
	}
}

func TestLoad_BadEnvNumber(t *testing.T) {
	t.Setenv("OFFICEPIPE_OUTPUT_DIR", t.TempDir())
	t.Setenv("OFFICEPIPE_MAX_FILE_SIZE_MB", "lots")

	_, err := Load("")
	if !oferr.IsKind(err, oferr.ConfigurationError) {
		t.Fatalf("error kind = %v, want ConfigurationError", oferr.KindOf(err))
	}
}

func TestLoad_RejectsNonPositiveLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("output_directory: "+dir+"\nmax_retries: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !oferr.IsKind(err, oferr.ConfigurationError) {
		t.Fatalf("error kind = %v, want ConfigurationError", oferr.KindOf(err))
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/docs/out", filepath.Join(home, "docs/out")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/path", "~user/path"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaxFileSize(t *testing.T) {
	cfg := &Config{MaxFileSizeMB: 2}
	if cfg.MaxFileSize() != 2*1024*1024 {
		t.Errorf("MaxFileSize = %d", cfg.MaxFileSize())
	}
}
