// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package detail implements the application detail screen: the full
// enrichment view (summary, financials, macro analysis, documents,
// covenants) in tabs, plus the per-application assistant panel.
package detail
