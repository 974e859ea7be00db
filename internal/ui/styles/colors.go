// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the lendbench TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// Forest - Primary brand color, headers, user messages
var Forest = lipgloss.AdaptiveColor{Light: "#1A3A2A", Dark: "#2E5C44"}

// ForestDeep - Darker forest for backgrounds
var ForestDeep = lipgloss.AdaptiveColor{Light: "#12291E", Dark: "#1A3A2A"}

// Mint - Accent color, highlights, active tab markers
var Mint = lipgloss.AdaptiveColor{Light: "#2FA183", Dark: "#55C9A6"}

// MintDeep - Darker mint for backgrounds
var MintDeep = lipgloss.AdaptiveColor{Light: "#1F7A62", Dark: "#1E4D3E"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Emerald - Success states, approved statuses, verified documents
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors, rejected statuses, missing documents
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, on-hold statuses, overdue markers
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Cyan - Info, awaiting-instructions status, shortcut keys
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// SurfaceBright - Row highlight surface
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#313244"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, column headers
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, placeholders, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on brand-colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#ECFDF5"}

// =============================================================================
// CHAT BUBBLE COLORS
// =============================================================================

// User message bubble - brand forest tones
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#1A3A2A", Dark: "#1A3A2A"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#ECFDF5", Dark: "#ECFDF5"}

// Assistant message bubble - neutral gray tones
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#313244"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet holds shape-based status markers shown alongside colors.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
	Pending string
	Overdue string
}

// StatusIndicators provides accessible shape/text indicators alongside colors.
// ACCESSIBILITY: ASCII-only indicators for maximum compatibility and colorblind users.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Pending: "[ ]",
	Overdue: "[!]",
}
