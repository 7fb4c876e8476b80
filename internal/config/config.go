package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the runtime configuration from hostspec.yaml.
type Config struct {
	Backend  string        `yaml:"backend"`
	LogLevel string        `yaml:"log_level"`
	Output   OutputConfig  `yaml:"output"`
	History  HistoryConfig `yaml:"history"`
	GitHub   GitHubConfig  `yaml:"github"`
}

// OutputConfig defines report rendering defaults.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
	Color  bool   `yaml:"color"`
}

// HistoryConfig defines run history settings.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// GitHubConfig holds credentials for github:// suite locations.
// The token value supports ${VAR} environment interpolation.
type GitHubConfig struct {
	Token string `yaml:"token"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend:  "local://",
		LogLevel: "info",
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
	}
}

// LoadConfig reads and parses a runtime config YAML file.
// Returns default config if the file doesn't exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	// Interpolate environment variables before parsing so credentials can
	// stay out of the file.
	interpolated := interpolateEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(interpolated), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel maps the configured log level onto slog's levels. Unknown
// values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GitHubToken returns the configured token, preferring the HOSTSPEC_GITHUB_TOKEN
// environment variable when set.
func (c Config) GitHubToken() string {
	if tok := os.Getenv("HOSTSPEC_GITHUB_TOKEN"); tok != "" {
		return tok
	}
	return c.GitHub.Token
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hostspec-history.db"
	}
	return filepath.Join(home, ".hostspec", "history.db")
}

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// interpolateEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func interpolateEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match // Leave unresolved if not set.
	})
}
