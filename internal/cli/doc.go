// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the lendbench command line: argument parsing,
// the non-TUI subcommands (chat, seed, status, version), and the shared
// terminal helpers they use.
package cli
