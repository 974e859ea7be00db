// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lendbench-tui/internal/model"
)

func TestWorkbenchSessionIDFormat(t *testing.T) {
	s := NewWorkbenchSession()

	assert.True(t, strings.HasPrefix(s.ID(), "workbench-"))
	assert.Empty(t, s.ApplicationID())
	assert.NotEqual(t, s.ID(), NewWorkbenchSession().ID())
}

func TestDetailSessionIDFormat(t *testing.T) {
	s := NewDetailSession("42")

	assert.True(t, strings.HasPrefix(s.ID(), "detail-42-"))
	assert.Equal(t, "42", s.ApplicationID())
}

func TestBeginSendAppendsUserMessage(t *testing.T) {
	s := NewWorkbenchSession()

	text, ok := s.BeginSend("  what is overdue?  ")

	require.True(t, ok)
	assert.Equal(t, "what is overdue?", text)
	assert.True(t, s.Sending())
	require.Len(t, s.Messages(), 1)
	assert.Equal(t, model.RoleUser, s.Messages()[0].Role)
	assert.Equal(t, "what is overdue?", s.Messages()[0].Content)
}

func TestBeginSendRejectsBlank(t *testing.T) {
	s := NewWorkbenchSession()

	_, ok := s.BeginSend("   ")

	assert.False(t, ok)
	assert.False(t, s.Sending())
	assert.Empty(t, s.Messages())
}

func TestBeginSendRejectsWhileSending(t *testing.T) {
	s := NewWorkbenchSession()
	_, ok := s.BeginSend("first")
	require.True(t, ok)

	_, ok = s.BeginSend("second")

	assert.False(t, ok, "one request in flight per session")
	assert.Len(t, s.Messages(), 1)
}

func TestCompleteSendAppendsAssistantReply(t *testing.T) {
	s := NewWorkbenchSession()
	s.BeginSend("hello")

	s.CompleteSend("Hi. Two applications are overdue.")

	assert.False(t, s.Sending())
	require.Len(t, s.Messages(), 2)
	assert.Equal(t, model.RoleAssistant, s.Messages()[1].Role)

	// The session is usable again.
	_, ok := s.BeginSend("thanks")
	assert.True(t, ok)
}

func TestFailSendAppendsScopedApology(t *testing.T) {
	wb := NewWorkbenchSession()
	wb.BeginSend("hello")
	wb.FailSend()

	require.Len(t, wb.Messages(), 2)
	assert.Equal(t, WorkbenchFallbackReply, wb.Messages()[1].Content)
	assert.False(t, wb.Sending())

	det := NewDetailSession("42")
	det.BeginSend("hello")
	det.FailSend()

	require.Len(t, det.Messages(), 2)
	assert.Equal(t, DetailFallbackReply, det.Messages()[1].Content)
}

func TestFailSendWithoutPendingIsNoop(t *testing.T) {
	s := NewWorkbenchSession()

	s.FailSend()

	assert.Empty(t, s.Messages(), "no apology without a pending send")
}

func TestMessagesReturnsCopy(t *testing.T) {
	s := NewWorkbenchSession()
	s.BeginSend("hello")

	msgs := s.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "hello", s.Messages()[0].Content)
}
