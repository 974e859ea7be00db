// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/ui/components"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
	"github.com/jeranaias/lendbench-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the detail screen body: tabs and content on the left,
// the application assistant on the right.
func (m *Model) View() string {
	if m.loading && m.app == nil {
		return m.spinner.View(m.theme)
	}
	if m.app == nil {
		return lipgloss.NewStyle().Foreground(styles.TextMuted).Render("Application unavailable.")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderTabs(),
		m.viewport.View(),
	)
	right := m.renderChatPanel()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return components.OverlayToasts(body, m.toasts.Toasts(), m.width)
}

func (m *Model) renderTitle() string {
	title := m.theme.HeaderTitle.Render(m.app.Title())
	pill := m.theme.ReviewStatusStyle(m.app.ReviewStatus).Render(" " + m.app.ReviewStatus.String() + " ")
	line := title + "  " + pill
	if m.app.IsOverdue {
		line += "  " + m.theme.WarningStyle.Render(styles.StatusIndicators.Overdue+" Overdue")
	}
	sub := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(
		m.app.Industry + " | " + m.app.LegalEntityType + " | " + m.app.LoanAmountDisplay + " | " + m.app.ApplicationStage)
	return line + "\n" + sub + "\n"
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, m.theme.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...) + "\n"
}

// =============================================================================
// TAB CONTENT
// =============================================================================

func (m *Model) renderTabContent() string {
	switch m.tab {
	case TabFinancials:
		return m.renderFinancials()
	case TabMacro:
		return m.renderMacro()
	case TabDocuments:
		return m.renderDocuments()
	case TabCovenants:
		return m.renderCovenants()
	default:
		return m.renderSummary()
	}
}

func (m *Model) renderSummary() string {
	var parts []string

	if m.app.ApplicationSummary != "" {
		parts = append(parts, m.theme.ChatHeading.Render("Application Summary"), m.app.ApplicationSummary, "")
	}
	if m.app.AIRecommendation != nil {
		parts = append(parts, m.theme.ChatHeading.Render("AI Recommendation"),
			m.app.AIRecommendation.Action, m.app.AIRecommendation.Notes, "")
	}
	if len(m.app.CompanyInsights) > 0 {
		parts = append(parts, m.theme.ChatHeading.Render("Company Insights"))
		for _, insight := range m.app.CompanyInsights {
			parts = append(parts, "  - "+insight)
		}
		parts = append(parts, "")
	}
	if m.app.InsightsSynthesis != "" {
		parts = append(parts, m.theme.ChatHeading.Render("Synthesis"), m.app.InsightsSynthesis)
	}
	if len(parts) == 0 {
		return mutedText("No summary available for this application.")
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderFinancials() string {
	var parts []string

	if fa := m.app.FinancialAnalysis; fa != nil {
		if fa.Summary != "" {
			parts = append(parts, m.theme.ChatHeading.Render("Financial Analysis"), fa.Summary, "")
		}
		if len(fa.Financials) > 0 {
			parts = append(parts, m.theme.ChatHeading.Render("Revenue"))
			parts = append(parts, m.theme.TableHeader.Render(
				util.PadRight("YEAR", 8)+util.PadRight("REVENUE", 16)+"OP MARGIN"))
			for _, y := range fa.Financials {
				parts = append(parts, util.PadRight(y.Year, 8)+
					util.PadRight(util.FloatToString(y.Amount, 0), 16)+
					fmt.Sprintf("%.1f%%", y.OperatingMargin))
			}
			parts = append(parts, "")
		}
	}
	if kr := m.app.KeyRatios; kr != nil {
		if len(kr.DebtToEquity) > 0 {
			parts = append(parts, m.theme.ChatHeading.Render("Debt / Equity"), renderRatioSeries(kr.DebtToEquity), "")
		}
		if len(kr.InterestCoverage) > 0 {
			parts = append(parts, m.theme.ChatHeading.Render("Interest Coverage"), renderRatioSeries(kr.InterestCoverage))
		}
	}
	if len(parts) == 0 {
		return mutedText("No financial analysis available.")
	}
	return strings.Join(parts, "\n")
}

// renderRatioSeries renders a ratio series as year/value pairs with a
// proportional bar, a terminal stand-in for the chart view.
func renderRatioSeries(points []model.RatioPoint) string {
	maxVal := 0.0
	for _, p := range points {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}

	lines := make([]string, 0, len(points))
	for _, p := range points {
		barLen := 0
		if maxVal > 0 {
			barLen = int(p.Value / maxVal * 24)
		}
		bar := strings.Repeat("#", barLen)
		lines = append(lines, fmt.Sprintf("%-6s %6.2f  %s", p.Year, p.Value, bar))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderMacro() string {
	ma := m.app.MacroAnalysis
	if ma == nil {
		return mutedText("No macro analysis available.")
	}

	var parts []string
	if ma.Summary != "" {
		parts = append(parts, m.theme.ChatHeading.Render("Industry Outlook"), ma.Summary, "")
	}
	if pf := ma.PortersForces; pf != nil {
		parts = append(parts, m.theme.ChatHeading.Render("Competitive Forces"))
		parts = append(parts,
			renderForce("Buyer power", pf.BuyerPower),
			renderForce("Supplier power", pf.SupplierPower),
			renderForce("New entrants", pf.ThreatNewEntrants),
			renderForce("Substitutes", pf.ThreatSubstitutes),
			renderForce("Rivalry", pf.CompetitiveRivalry),
		)
	}
	if len(parts) == 0 {
		return mutedText("No macro analysis available.")
	}
	return strings.Join(parts, "\n")
}

func renderForce(label string, f model.PortersForce) string {
	score := min(max(f.Score, 0), 5)
	gauge := strings.Repeat("*", score) + strings.Repeat(".", 5-score)
	return fmt.Sprintf("%-16s [%s] %s", label, gauge, f.Description)
}

func (m *Model) renderDocuments() string {
	if len(m.app.Documents) == 0 {
		return mutedText("No documents submitted.")
	}

	lines := make([]string, 0, len(m.app.Documents)+1)
	lines = append(lines, m.theme.TableHeader.Render(util.PadRight("DOCUMENT", 40)+"STATUS"))
	for _, doc := range m.app.Documents {
		status := m.theme.DocumentsStatusStyle(doc.Status).Render(string(doc.Status))
		lines = append(lines, util.PadRight(util.TruncateWidth(doc.Name, 38), 40)+status)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCovenants() string {
	if len(m.app.CovenantRecommendations) == 0 {
		return mutedText("No covenant recommendations.")
	}

	lines := make([]string, 0, len(m.app.CovenantRecommendations)+1)
	lines = append(lines, m.theme.TableHeader.Render(util.PadRight("METRIC", 32)+"THRESHOLD"))
	for _, c := range m.app.CovenantRecommendations {
		lines = append(lines, util.PadRight(util.TruncateWidth(c.Metric, 30), 32)+c.Value)
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// CHAT PANEL
// =============================================================================

func (m *Model) renderChatPanel() string {
	width := m.width - m.viewport.Width - 8
	if width < 30 {
		width = 30
	}

	var b strings.Builder
	b.WriteString(m.theme.ChatHeading.Render("Assistant") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render(util.TruncateWidth(m.app.ApplicantName, width-4)) + "\n\n")

	for _, msg := range m.chat.Messages() {
		if msg.Role == model.RoleUser {
			b.WriteString(m.theme.UserBubble.MaxWidth(width).Render(msg.Content))
		} else {
			b.WriteString(m.theme.AssistantBubble.MaxWidth(width).Render(m.markdown.Render(msg.Content)))
		}
		b.WriteString("\n")
	}
	if m.chatSpinner.IsActive() {
		b.WriteString(m.chatSpinner.View(m.theme) + "\n")
	}

	box := m.theme.InputContainer
	if m.focus == FocusChat {
		box = box.BorderForeground(styles.Mint)
	}
	b.WriteString("\n" + box.Width(width-2).Render(m.chatInput.View()))

	return m.theme.ChatPanel.Width(width).Render(b.String())
}

func mutedText(s string) string {
	return lipgloss.NewStyle().Foreground(styles.TextMuted).Padding(1, 1).Render(s)
}
