// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgParserFlagFormats(t *testing.T) {
	p := NewArgParser([]string{"chat", "--app", "42", "--backend=http://host:9000", "--json", "-q"})

	assert.Equal(t, "chat", p.Subcommand())
	assert.Equal(t, "42", p.Flag("app"))
	assert.Equal(t, "http://host:9000", p.Flag("backend"))
	assert.True(t, p.BoolFlag("json"))
	assert.True(t, p.BoolFlag("q"))
	assert.Equal(t, "", p.Flag("missing"))
	assert.False(t, p.BoolFlag("missing"))
}

func TestArgParserExplicitBoolValues(t *testing.T) {
	p := NewArgParser([]string{"status", "--json=false", "--verbose=true"})

	assert.False(t, p.BoolFlag("json"))
	assert.True(t, p.BoolFlag("verbose"))
}

func TestArgParserDefaults(t *testing.T) {
	p := NewArgParser([]string{"status"})

	assert.Equal(t, "fallback", p.FlagOrDefault("format", "fallback"))
	assert.Equal(t, 7, p.FlagIntOrDefault("limit", 7))
}

func TestArgParserFlagInt(t *testing.T) {
	p := NewArgParser([]string{"--limit", "25"})

	n, err := p.FlagInt("limit")
	assert.NoError(t, err)
	assert.Equal(t, 25, n)

	_, err = p.FlagInt("missing")
	assert.Error(t, err)
}

func TestParseArgsCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"no args starts tui", nil, CmdTUI},
		{"flags only starts tui", []string{"--backend", "http://host:8000"}, CmdTUI},
		{"chat", []string{"chat"}, CmdChat},
		{"seed", []string{"seed"}, CmdSeed},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"--help"}, CmdHelp},
		{"version flag", []string{"--version"}, CmdVersion},
		{"unknown falls back to help", []string{"frobnicate"}, CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := ParseArgs(tt.argv)
			assert.Equal(t, tt.want, cmd)
		})
	}
}

func TestParseArgsExtractsFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"chat", "--app", "42", "--backend", "http://host:9000", "-q"})

	assert.Equal(t, CmdChat, cmd)
	assert.Equal(t, "42", args.ApplicationID)
	assert.Equal(t, "http://host:9000", args.Backend)
	assert.True(t, args.Quiet)
}

func TestParseArgsChatPositionalScopesApplication(t *testing.T) {
	cmd, args := ParseArgs([]string{"chat", "LN-1001"})

	assert.Equal(t, CmdChat, cmd)
	assert.Equal(t, "LN-1001", args.ApplicationID)
}

func TestParseArgsAppFlagWinsOverPositional(t *testing.T) {
	_, args := ParseArgs([]string{"chat", "LN-1001", "--app", "LN-2002"})

	assert.Equal(t, "LN-2002", args.ApplicationID)
}

func TestParseArgsKeepsRawArguments(t *testing.T) {
	argv := []string{"status", "--json"}
	_, args := ParseArgs(argv)

	assert.Equal(t, argv, args.Raw)
}

func TestParseArgsConfigFlag(t *testing.T) {
	_, args := ParseArgs([]string{"--config", "/tmp/lendbench.toml"})

	assert.Equal(t, "/tmp/lendbench.toml", args.ConfigPath)
}
