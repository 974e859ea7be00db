// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

// =============================================================================
// STAT CARDS - Pipeline summary row above the application table
// =============================================================================

// statCard pairs a bucket label with its counts.
type statCard struct {
	label  string
	bucket model.StatBucket
}

// RenderStatCards renders the three pipeline buckets as side-by-side cards.
// Each card shows the bucket count and, when non-zero, its overdue count.
func RenderStatCards(theme *styles.Theme, stats model.Stats, width int) string {
	cards := []statCard{
		{label: "Pending Review", bucket: stats.Pending},
		{label: "Awaiting Instructions", bucket: stats.Awaiting},
		{label: "Completed", bucket: stats.Completed},
	}

	// Divide the row evenly, leaving room for card borders and gaps.
	cardWidth := 24
	if width > 0 {
		w := (width - 2*len(cards)) / len(cards)
		if w > 18 {
			cardWidth = w
		}
	}
	if cardWidth > 36 {
		cardWidth = 36
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, renderStatCard(theme, c, cardWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderStatCard(theme *styles.Theme, c statCard, width int) string {
	label := theme.StatCardLabel.Render(c.label)
	count := theme.StatCardCount.Render(strconv.Itoa(c.bucket.Count))

	line := count
	if c.bucket.Overdue > 0 {
		overdue := theme.StatCardOverdue.Render(
			styles.StatusIndicators.Overdue + " " + strconv.Itoa(c.bucket.Overdue) + " overdue")
		line = count + "  " + overdue
	}

	body := lipgloss.JoinVertical(lipgloss.Left, label, line)
	return theme.StatCard.Width(width).Render(body)
}
