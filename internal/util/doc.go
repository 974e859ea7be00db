// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the views: UTF-8 safe
// truncation, display-width padding, and numeric formatting.
package util
