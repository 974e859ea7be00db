// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the shared UI components for the lendbench TUI:
// the header bar, stat cards, loading spinner, toast notifications, markdown
// rendering for assistant replies, and the bottom status bar. Components hold
// no workflow state of their own; screens own the state and pass it in.
package components
