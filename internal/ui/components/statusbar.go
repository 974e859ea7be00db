// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom bar with state and key hints
// =============================================================================

// Status represents the current workbench status.
type Status int

const (
	StatusReady Status = iota
	StatusLoading
	StatusSending
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusLoading:
		return "Loading..."
	case StatusSending:
		return "Sending..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns a shape indicator for the status.
// ACCESSIBILITY: distinct shapes alongside colors for colorblind users.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusLoading, StatusSending:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// Shortcut is a single key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar: current status on the left, key hints on the right.
type StatusBar struct {
	Status    Status
	Shortcuts []Shortcut
	Width     int
	theme     *styles.Theme
}

// NewStatusBar creates a status bar with no shortcuts.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status: StatusReady,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the bar width.
func (b *StatusBar) SetWidth(width int) {
	b.Width = width
}

// SetStatus updates the displayed status.
func (b *StatusBar) SetStatus(status Status) {
	b.Status = status
}

// SetShortcuts replaces the key hints. Screens swap these on focus changes.
func (b *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	b.Shortcuts = shortcuts
}

// View renders the status bar.
func (b *StatusBar) View() string {
	width := b.Width
	if width < 40 {
		width = 40
	}

	statusStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	if b.Status == StatusError {
		statusStyle = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	}
	left := statusStyle.Render(b.Status.Icon() + " " + b.Status.String())

	hints := make([]string, 0, len(b.Shortcuts))
	for _, sc := range b.Shortcuts {
		hints = append(hints,
			b.theme.ShortcutKey.Render(sc.Key)+" "+b.theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	row := left + lipgloss.NewStyle().Width(gap).Render("") + right

	return b.theme.StatusBar.Width(width).Render(row)
}
