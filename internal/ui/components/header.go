// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
	"github.com/jeranaias/lendbench-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - Title bar with workbench branding
// =============================================================================

// Header is the title bar shown at the top of every screen.
type Header struct {
	Title    string // Main title (default: "lendbench")
	Subtitle string // Screen context, e.g. "Underwriting Workbench"
	Backend  string // Backend base URL shown on the right edge
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a header with default branding.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "lendbench",
		Subtitle: "Underwriting Workbench",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetSubtitle updates the screen context label.
func (h *Header) SetSubtitle(subtitle string) {
	h.Subtitle = subtitle
}

// SetBackend updates the backend URL label.
func (h *Header) SetBackend(url string) {
	h.Backend = url
}

// View renders the header bar.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	title := h.theme.HeaderTitle.Render(h.Title)
	left := title
	if h.Subtitle != "" {
		left += "  " + h.theme.HeaderSubtitle.Render(h.Subtitle)
	}

	right := ""
	if h.Backend != "" {
		right = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render(util.TruncateWidth(h.Backend, width/3))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	row := left + lipgloss.NewStyle().Width(gap).Render("") + right

	return h.theme.Header.Width(width).Render(row)
}
