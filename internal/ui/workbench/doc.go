// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench implements the main workbench screen: the application
// pipeline table with stat cards, live search, inline review-status updates,
// and the workbench-wide assistant chat bar.
package workbench
