// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for the workbench screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Expand     key.Binding
	Search     key.Binding
	Chat       key.Binding
	Back       key.Binding
	Refresh    key.Binding
	SetPending key.Binding
	Approve    key.Binding
	Await      key.Binding
	Reject     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings, vim-style navigation included.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next row"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open detail"),
		),
		Expand: key.NewBinding(
			key.WithKeys("tab", " "),
			key.WithHelp("Tab", "expand row"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Chat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "assistant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back to table"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R", "ctrl+r"),
			key.WithHelp("R", "refresh"),
		),
		SetPending: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "mark pending"),
		),
		Approve: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "approve"),
		),
		Await: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "await instructions"),
		),
		Reject: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "reject"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}
