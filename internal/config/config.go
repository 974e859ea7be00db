// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete lendbench configuration.
type Config struct {
	Version string `toml:"version"`

	// Server is the backend the client talks to.
	Server ServerConfig `toml:"server"`

	// UI configuration.
	UI UIConfig `toml:"ui"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig locates the workbench backend.
type ServerConfig struct {
	// BaseURL is the backend base URL; API paths are formed by appending
	// "/api" to it.
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme is "dark", "light", or "auto".
	Theme string `toml:"theme"`
	// CompactMode reduces row padding in the applications table.
	CompactMode bool `toml:"compact_mode"`
	// SearchDebounceMs is how long after the last keystroke a list
	// refetch fires. 0 uses the default.
	SearchDebounceMs int `toml:"search_debounce_ms"`
}

// SearchDebounce returns the debounce window as a duration.
func (u UIConfig) SearchDebounce() time.Duration {
	if u.SearchDebounceMs <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(u.SearchDebounceMs) * time.Millisecond
}

// Timeout returns the per-request timeout as a duration.
func (s ServerConfig) Timeout() time.Duration {
	if s.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.TimeoutSecs) * time.Second
}

// LoggingConfig controls the file-backed observability sink. A
// full-screen TUI owns the terminal, so logs always go to a file.
type LoggingConfig struct {
	// Path to the log file (empty = <config dir>/lendbench.log).
	Path string `toml:"path"`
	// Level is "debug", "info", "warn", or "error".
	Level string `toml:"level"`
	// MaxSizeMB is the size at which the log file rotates.
	MaxSizeMB int `toml:"max_size_mb"`
	// MaxBackups is how many rotated files to keep.
	MaxBackups int `toml:"max_backups"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Server: ServerConfig{
			BaseURL:     "http://127.0.0.1:8000",
			TimeoutSecs: 30,
		},
		UI: UIConfig{
			Theme:            "auto",
			CompactMode:      false,
			SearchDebounceMs: 250,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the lendbench configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".lendbench"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// =============================================================================
// LOADING
// =============================================================================

// Load resolves the configuration from defaults, the config file, and the
// environment. A missing config file is not an error.
func Load() (*Config, error) {
	// Best effort: the hosted workbench supplies its backend URL via a
	// .env file, so honor one here too.
	_ = godotenv.Load()

	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if err := loadTOML(cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Used by tests and the --config flag.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := loadTOML(cfg, path); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTOML overlays the file at path onto cfg.
func loadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("could not parse %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies LENDBENCH_* environment variables on top of
// file and default values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LENDBENCH_BACKEND_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("LENDBENCH_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Server.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("LENDBENCH_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("LENDBENCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LENDBENCH_LOG_PATH"); v != "" {
		cfg.Logging.Path = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.base_url %q is not a valid URL", c.Server.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.base_url scheme %q must be http or https", u.Scheme)
	}

	if c.Server.TimeoutSecs <= 0 {
		return fmt.Errorf("server.timeout_secs must be positive, got %d", c.Server.TimeoutSecs)
	}

	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme %q must be dark, light, or auto", c.UI.Theme)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}

	return nil
}

// LogPath resolves the log file path, falling back to the config dir.
func (c *Config) LogPath() string {
	if c.Logging.Path != "" {
		return c.Logging.Path
	}
	dir, err := ConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lendbench.log")
	}
	return filepath.Join(dir, "lendbench.log")
}
