// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for lendbench.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota // Default: full-screen workbench
	CmdChat
	CmdSeed
	CmdStatus
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Backend    string // Backend base URL override
	ConfigPath string // Alternate config file
	Quiet      bool
	Verbose    bool
	JSON       bool

	// Command-specific
	ApplicationID string // chat --app: scope the assistant to one application
	Subcommand    string

	// Raw args remaining after command extraction
	Raw []string
}

const usageText = `lendbench - terminal workbench for loan underwriting

Lendbench is a terminal client for an AI-assisted underwriting backend.

It provides:
  - A live pipeline view with review-status workflow
  - Per-application detail with AI analysis tabs
  - An assistant chat, workbench-wide or per application
  - One-command demo data seeding

Usage:
  lendbench                  Start the workbench TUI (default)
  lendbench chat [ID]        Interactive assistant chat, optionally scoped to one application
  lendbench seed             Seed the backend with demo data
  lendbench status, s        Show backend and pipeline status
  lendbench version, -v      Show version information
  lendbench help, -h         Show this help

Flags:
  --backend URL              Backend base URL (default from config / LENDBENCH_BACKEND_URL)
  --config PATH              Alternate config file (default ~/.lendbench/config.toml)
  --app ID                   chat: scope the assistant to one application
  --json                     status: output JSON
  -q, --quiet                Minimal output
  --verbose                  Verbose output

Interactive Commands (during chat):
  /help, /h                  Show available commands
  /history                   Show server-side history for this session
  /new                       Start a fresh session
  /quit, /q                  Exit chat
  Ctrl+D                     Exit chat

Configuration:
  ~/.lendbench/config.toml   TOML configuration
  .env                       LENDBENCH_* environment overrides
`

// ParseArgs parses os.Args-style arguments into a command and Args.
func ParseArgs(argv []string) (Command, Args) {
	args := Args{}
	if len(argv) == 0 {
		return CmdTUI, args
	}

	parser := NewArgParser(argv)
	args.Raw = parser.Raw()
	args.Backend = parser.Flag("backend")
	args.ConfigPath = parser.Flag("config")
	args.ApplicationID = parser.Flag("app")
	args.JSON = parser.BoolFlag("json")
	args.Quiet = parser.BoolFlag("quiet") || parser.BoolFlag("q")
	args.Verbose = parser.BoolFlag("verbose")
	args.Subcommand = parser.Positional(1)

	switch strings.ToLower(parser.Subcommand()) {
	case "":
		// Flags only, e.g. "lendbench --backend http://host:8000"
		if parser.BoolFlag("help") || parser.BoolFlag("h") {
			return CmdHelp, args
		}
		if parser.BoolFlag("version") || parser.BoolFlag("v") {
			return CmdVersion, args
		}
		return CmdTUI, args
	case "chat":
		// "lendbench chat LN-1001" scopes the assistant like --app does.
		if args.ApplicationID == "" && parser.PositionalCount() > 1 {
			args.ApplicationID = parser.Positional(1)
		}
		return CmdChat, args
	case "seed":
		return CmdSeed, args
	case "status", "s":
		return CmdStatus, args
	case "version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", parser.Subcommand())
		return CmdHelp, args
	}
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("lendbench %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
