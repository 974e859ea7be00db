// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner is a loading spinner with an optional message and elapsed timer.
type Spinner struct {
	spinner   spinner.Model
	message   string
	startTime time.Time
	isActive  bool
	showTimer bool
}

// NewSpinner creates a new spinner with ASCII-safe frames.
func NewSpinner() Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}

	return Spinner{
		spinner: s,
		message: "Loading",
	}
}

// NewFetchSpinner creates a spinner for application list/detail fetches.
func NewFetchSpinner() Spinner {
	s := NewSpinner()
	s.message = "Fetching applications"
	return s
}

// NewChatSpinner creates a spinner shown while an assistant reply is pending.
func NewChatSpinner() Spinner {
	s := NewSpinner()
	s.message = "Thinking"
	s.showTimer = true
	return s
}

// SetMessage updates the message shown next to the spinner.
func (s *Spinner) SetMessage(message string) {
	s.message = message
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Start activates the spinner and resets the timer.
func (s *Spinner) Start() tea.Cmd {
	s.isActive = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.isActive = false
}

// IsActive reports whether the spinner is currently running.
func (s *Spinner) IsActive() bool {
	return s.isActive
}

// Update advances the spinner animation. Tick messages are dropped when the
// spinner is inactive so a stale tick cannot restart the animation loop.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.isActive {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the spinner frame, message, and elapsed time.
func (s *Spinner) View(theme *styles.Theme) string {
	if !s.isActive {
		return ""
	}

	frame := theme.Spinner.Render(s.spinner.View())
	label := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(s.message + "...")

	out := frame + " " + label
	if s.showTimer {
		elapsed := time.Since(s.startTime).Round(time.Second)
		if elapsed >= time.Second {
			timer := lipgloss.NewStyle().Foreground(styles.TextMuted).Render(elapsed.String())
			out += " " + timer
		}
	}
	return out
}
