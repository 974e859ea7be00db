// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Server.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.SearchDebounce())
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout())
}

func TestLoadFromPathOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
[server]
base_url = "http://bench.internal:9000"
timeout_secs = 10

[ui]
theme = "dark"
search_debounce_ms = 500
`)

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "http://bench.internal:9000", cfg.Server.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout())
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.SearchDebounce())
	// Untouched sections keep defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := writeConfig(t, `
[server]
base_url = "http://from-file:8000"
`)
	t.Setenv("LENDBENCH_BACKEND_URL", "http://from-env:8000")
	t.Setenv("LENDBENCH_LOG_LEVEL", "debug")

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.Server.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad url", func(c *Config) { c.Server.BaseURL = "not a url" }},
		{"bad scheme", func(c *Config) { c.Server.BaseURL = "ftp://host:21" }},
		{"zero timeout", func(c *Config) { c.Server.TimeoutSecs = 0 }},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromPathRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `server = not toml at all [`)

	_, err := LoadFromPath(path)

	assert.Error(t, err)
}

func TestIgnoresInvalidTimeoutEnv(t *testing.T) {
	path := writeConfig(t, ``)
	t.Setenv("LENDBENCH_TIMEOUT_SECS", "banana")

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Server.TimeoutSecs)
}
