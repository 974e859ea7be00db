// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/lendbench-tui/internal/model"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// STAT CARD STYLES
	// ==========================================================================

	StatCard        lipgloss.Style
	StatCardLabel   lipgloss.Style
	StatCardCount   lipgloss.Style
	StatCardOverdue lipgloss.Style

	// ==========================================================================
	// TABLE STYLES
	// ==========================================================================

	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style
	TableRowOverdue  lipgloss.Style
	ExpandedPanel    lipgloss.Style

	// ==========================================================================
	// STATUS PILL STYLES
	// ==========================================================================

	PillApproved lipgloss.Style
	PillRejected lipgloss.Style
	PillHold     lipgloss.Style
	PillPending  lipgloss.Style
	PillAwaiting lipgloss.Style

	// ==========================================================================
	// CHAT STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ChatPanel       lipgloss.Style
	ChatHeading     lipgloss.Style
	SummaryCard     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// TAB STYLES
	// ==========================================================================

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND FEEDBACK STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Spinner      lipgloss.Style

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(ForestDeep).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Mint)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Stat cards
	t.StatCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2).
		MarginRight(1)

	t.StatCardLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatCardCount = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.StatCardOverdue = lipgloss.NewStyle().
		Foreground(Amber)

	// Table
	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableRowSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(MintDeep).
		Bold(true)

	t.TableRowOverdue = lipgloss.NewStyle().
		Foreground(Amber)

	t.ExpandedPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Mint).
		PaddingLeft(2).
		MarginLeft(1)

	// Status pills
	t.PillApproved = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.PillRejected = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.PillHold = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	t.PillPending = lipgloss.NewStyle().Foreground(TextSecondary)
	t.PillAwaiting = lipgloss.NewStyle().Foreground(Cyan)

	// Chat
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		Padding(0, 2).
		MarginRight(4)

	t.ChatPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ChatHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.SummaryCard = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(ForestDeep).
		Padding(0, 2)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Mint).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Tabs
	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(Forest).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Mint).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	// Status bar and feedback
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Mint)

	t.SuccessStyle = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.WarningStyle = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	t.InfoStyle = lipgloss.NewStyle().Foreground(Cyan)
}

// =============================================================================
// STATUS PILL LOOKUP
// =============================================================================

// ReviewStatusStyle returns the pill style for a review status. Unknown
// values (which the enums should prevent) render unstyled.
func (t *Theme) ReviewStatusStyle(s model.ReviewStatus) lipgloss.Style {
	switch s {
	case model.ReviewApproved:
		return t.PillApproved
	case model.ReviewRejected:
		return t.PillRejected
	case model.ReviewAwaiting:
		return t.PillAwaiting
	case model.ReviewPending:
		return t.PillPending
	}
	return t.TableRow
}

// ApplicationStatusStyle returns the pill style for an AI disposition.
func (t *Theme) ApplicationStatusStyle(s model.ApplicationStatus) lipgloss.Style {
	switch s {
	case model.AIApproved:
		return t.PillApproved
	case model.AIRejected:
		return t.PillRejected
	case model.AIOnHold:
		return t.PillHold
	}
	return t.TableRow
}

// DocumentsStatusStyle returns the pill style for a documents status.
func (t *Theme) DocumentsStatusStyle(s model.DocumentsStatus) lipgloss.Style {
	switch s {
	case model.DocsVerified:
		return t.PillApproved
	case model.DocsWarning:
		return t.PillHold
	case model.DocsMissing:
		return t.PillRejected
	}
	return t.TableRow
}
