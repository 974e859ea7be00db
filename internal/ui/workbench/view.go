// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/ui/components"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
	"github.com/jeranaias/lendbench-tui/internal/util"
)

// Column widths for the application table. Applicant absorbs leftover width.
const (
	colAppNo    = 14
	colIndustry = 18
	colAmount   = 12
	colStage    = 16
	colDocs     = 10
	colAIStatus = 14
	colReview   = 22
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the workbench screen body.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(components.RenderStatCards(m.theme, m.stats, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderSearch())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderChatBar())

	return components.OverlayToasts(b.String(), m.toasts.Toasts(), m.width)
}

func (m *Model) renderSearch() string {
	label := m.theme.ChatHeading.Render("Search")
	box := m.theme.InputContainer.Render(m.searchInput.View())
	if m.focus == FocusSearch {
		box = m.theme.InputContainer.BorderForeground(styles.Mint).Render(m.searchInput.View())
	}
	return label + " " + box
}

func (m *Model) renderTable() string {
	if m.loading && !m.loaded {
		return m.spinner.View(m.theme)
	}
	if len(m.applications) == 0 {
		empty := "No applications match your search."
		if m.searchInput.Value() == "" {
			empty = "No applications in the pipeline."
		}
		return lipgloss.NewStyle().Foreground(styles.TextMuted).Padding(1, 2).Render(empty)
	}

	applicantWidth := m.width - colAppNo - colIndustry - colAmount - colStage - colDocs - colAIStatus - colReview - 10
	if applicantWidth < 16 {
		applicantWidth = 16
	}

	rows := make([]string, 0, len(m.applications)+1)
	rows = append(rows, m.theme.TableHeader.Render(
		util.PadRight("APP NO", colAppNo)+
			util.PadRight("APPLICANT", applicantWidth)+
			util.PadRight("INDUSTRY", colIndustry)+
			util.PadRight("AMOUNT", colAmount)+
			util.PadRight("STAGE", colStage)+
			util.PadRight("DOCS", colDocs)+
			util.PadRight("AI STATUS", colAIStatus)+
			util.PadRight("REVIEW", colReview)))

	for i := range m.applications {
		app := &m.applications[i]
		rows = append(rows, m.renderRow(app, i == m.cursor, applicantWidth))
		if m.expandedID == app.ID {
			rows = append(rows, m.renderExpanded(app))
		}
	}

	status := ""
	if m.loading {
		status = "\n" + m.spinner.View(m.theme)
	}
	return strings.Join(rows, "\n") + status
}

func (m *Model) renderRow(app *model.Application, selected bool, applicantWidth int) string {
	docs := string(app.DocumentsStatus)
	line := util.PadRight(util.TruncateWidth(app.ApplicationNo, colAppNo-2), colAppNo) +
		util.PadRight(util.TruncateWidth(app.ApplicantName, applicantWidth-2), applicantWidth) +
		util.PadRight(util.TruncateWidth(app.Industry, colIndustry-2), colIndustry) +
		util.PadRight(util.TruncateWidth(app.LoanAmountDisplay, colAmount-2), colAmount) +
		util.PadRight(util.TruncateWidth(app.ApplicationStage, colStage-2), colStage) +
		m.theme.DocumentsStatusStyle(app.DocumentsStatus).Render(util.PadRight(docs, colDocs)) +
		m.theme.ApplicationStatusStyle(app.ApplicationStatus).Render(util.PadRight(string(app.ApplicationStatus), colAIStatus)) +
		m.theme.ReviewStatusStyle(app.ReviewStatus).Render(util.PadRight(string(app.ReviewStatus), colReview))

	marker := "  "
	switch {
	case selected:
		marker = "> "
	case app.IsOverdue:
		marker = "! "
	}

	rowStyle := m.theme.TableRow
	if selected {
		rowStyle = m.theme.TableRowSelected
	} else if app.IsOverdue {
		rowStyle = m.theme.TableRowOverdue
	}
	return rowStyle.Render(marker + line)
}

func (m *Model) renderExpanded(app *model.Application) string {
	var parts []string

	if app.ApplicationSummary != "" {
		parts = append(parts, m.theme.ChatHeading.Render("Summary"))
		parts = append(parts, app.ApplicationSummary)
	}
	if app.AIRecommendation != nil {
		parts = append(parts, m.theme.ChatHeading.Render("AI Recommendation"))
		parts = append(parts, app.AIRecommendation.Action+" - "+app.AIRecommendation.Notes)
	}
	if app.IsOverdue {
		parts = append(parts, m.theme.WarningStyle.Render(styles.StatusIndicators.Overdue+" Overdue for review"))
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render("1 pending  2 approve  3 await instructions  4 reject  Enter detail"))

	width := m.width - 8
	if width < 40 {
		width = 40
	}
	return m.theme.ExpandedPanel.Width(width).Render(strings.Join(parts, "\n"))
}

func (m *Model) renderChatBar() string {
	var b strings.Builder

	heading := m.theme.ChatHeading.Render("Assistant")
	b.WriteString(heading + "\n")

	// Show the last exchange above the input, most recent messages only.
	msgs := m.chat.Messages()
	start := len(msgs) - 4
	if start < 0 {
		start = 0
	}
	for _, msg := range msgs[start:] {
		b.WriteString(m.renderChatMessage(msg))
		b.WriteString("\n")
	}
	if m.chatSpinner.IsActive() {
		b.WriteString(m.chatSpinner.View(m.theme) + "\n")
	}

	box := m.theme.InputContainer
	if m.focus == FocusChat {
		box = box.BorderForeground(styles.Mint)
	}
	b.WriteString(box.Render(m.theme.InputPrompt.Render("> ") + m.chatInput.View()))
	return b.String()
}

func (m *Model) renderChatMessage(msg model.ChatMessage) string {
	if msg.Role == model.RoleUser {
		return m.theme.UserBubble.Render(msg.Content)
	}
	return m.theme.AssistantBubble.Render(m.markdown.Render(msg.Content))
}
