// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewShortMessageIsUntouched(t *testing.T) {
	msg := NewUserMessage("show pending loans")
	assert.Equal(t, "show pending loans", msg.Preview(80))
}

func TestPreviewTruncatesWithEllipsis(t *testing.T) {
	msg := NewUserMessage("summarize every application in the pipeline")
	assert.Equal(t, "summarize ...", msg.Preview(13))
}

func TestPreviewIsRuneSafe(t *testing.T) {
	msg := NewAssistantMessage("Überblick über die Pipeline")
	got := msg.Preview(12)
	assert.Equal(t, "Überblick...", got)
}

func TestPreviewTinyLimitHasNoEllipsis(t *testing.T) {
	msg := NewUserMessage("hello")
	assert.Equal(t, "he", msg.Preview(2))
}
