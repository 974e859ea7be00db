// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detail

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keyboard bindings for the detail screen.
type KeyMap struct {
	Back       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Chat       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	SetPending key.Binding
	Approve    key.Binding
	Await      key.Binding
	Reject     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings for the detail screen.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("Esc", "back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("Tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("S-Tab", "previous tab"),
		),
		Chat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "assistant"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
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
			key.WithKeys("ctrl+q"),
			key.WithHelp("C-q", "quit"),
		),
	}
}
