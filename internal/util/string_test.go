// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "hello", TruncateRunes("hello", 10))
	assert.Equal(t, "hel...", TruncateRunes("hello world", 6))
	assert.Equal(t, "he", TruncateRunes("hello", 2))
	assert.Equal(t, "", TruncateRunes("hello", 0))
}

func TestTruncateWidthCountsColumns(t *testing.T) {
	// CJK runes occupy two terminal columns each.
	assert.Equal(t, 10, StringWidth("日本語会社"))
	got := TruncateWidth("日本語会社", 8)
	assert.LessOrEqual(t, StringWidth(got), 8)
	assert.Contains(t, got, "...")
}

func TestPadRightExactWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, 5, StringWidth(PadRight("ab", 5)))
	// Too-wide input is truncated down to the column budget.
	assert.Equal(t, 5, StringWidth(PadRight("abcdefgh", 5)))
}

func TestNumberFormatting(t *testing.T) {
	assert.Equal(t, "42", IntToString(42))
	assert.Equal(t, "3.14", FloatToString(3.14159, 2))
	assert.Equal(t, "120000", FloatToString(120000, 0))
}
