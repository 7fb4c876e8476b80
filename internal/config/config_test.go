package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Backend != "local://" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "local://")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "text")
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled should be true by default")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hostspec.yaml")

	yaml := `
backend: local://
log_level: debug
output:
  format: json
  color: false
history:
  enabled: false
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled should be false")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/hostspec.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Backend != "local://" {
		t.Errorf("Backend = %q, want default %q", cfg.Backend, "local://")
	}
}

func TestLoadConfigEnvInterpolation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hostspec.yaml")

	t.Setenv("TEST_GH_TOKEN", "ghp_test123")

	yaml := `
github:
  token: "${TEST_GH_TOKEN}"
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GitHub.Token != "ghp_test123" {
		t.Errorf("GitHub.Token = %q, want interpolated value", cfg.GitHub.Token)
	}
}

func TestGitHubTokenEnvOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GitHub.Token = "from-file"

	t.Setenv("HOSTSPEC_GITHUB_TOKEN", "from-env")
	if got := cfg.GitHubToken(); got != "from-env" {
		t.Errorf("GitHubToken() = %q, want env override", got)
	}

	t.Setenv("HOSTSPEC_GITHUB_TOKEN", "")
	if got := cfg.GitHubToken(); got != "from-file" {
		t.Errorf("GitHubToken() = %q, want file value", got)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
