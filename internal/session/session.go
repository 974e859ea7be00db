// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jeranaias/lendbench-tui/internal/model"
)

// =============================================================================
// FALLBACK REPLIES
// =============================================================================

// Fixed assistant apologies shown when a send fails. The underlying error
// is logged, never surfaced in the conversation.
const (
	WorkbenchFallbackReply = "Sorry, I couldn't process that request. Please try again."
	DetailFallbackReply    = "Sorry, I encountered an error. Please try again."
)

// =============================================================================
// SESSION
// =============================================================================

// Session is one scoped conversation with the assistant backend.
//
// The zero value is not usable; construct with NewWorkbenchSession or
// NewDetailSession. Sessions are driven from the UI event loop and are
// not safe for concurrent use.
type Session struct {
	id            string
	applicationID string // empty for the workbench-wide assistant
	fallbackReply string
	messages      []model.ChatMessage
	sending       bool
}

// NewWorkbenchSession creates a session for the workbench-wide assistant.
// The identifier embeds a UUID so that surfaces created at the same
// instant can never collide.
func NewWorkbenchSession() *Session {
	return &Session{
		id:            "workbench-" + uuid.NewString(),
		fallbackReply: WorkbenchFallbackReply,
	}
}

// NewDetailSession creates a session scoped to one application.
func NewDetailSession(applicationID string) *Session {
	return &Session{
		id:            "detail-" + applicationID + "-" + uuid.NewString(),
		applicationID: applicationID,
		fallbackReply: DetailFallbackReply,
	}
}

// ID returns the session identifier sent to the backend.
func (s *Session) ID() string {
	return s.id
}

// ApplicationID returns the bound application id, or "" for the
// workbench-wide assistant.
func (s *Session) ApplicationID() string {
	return s.applicationID
}

// Messages returns a copy of the conversation history in display order.
func (s *Session) Messages() []model.ChatMessage {
	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the session.
func (s *Session) Len() int {
	return len(s.messages)
}

// Sending reports whether a send is currently in flight.
func (s *Session) Sending() bool {
	return s.sending
}

// =============================================================================
// SEND STATE MACHINE
// =============================================================================

// CanSend reports whether text would start a send: non-blank after
// trimming, and no send already in flight.
func (s *Session) CanSend(text string) bool {
	return strings.TrimSpace(text) != "" && !s.sending
}

// BeginSend starts a send exchange. The trimmed user message is appended
// immediately (optimistic: it is kept regardless of outcome) and the
// session transitions to Sending. Returns the trimmed text and true, or
// "" and false when the send is a no-op (blank text or already Sending).
func (s *Session) BeginSend(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || s.sending {
		return "", false
	}
	s.messages = append(s.messages, model.NewUserMessage(trimmed))
	s.sending = true
	return trimmed, true
}

// CompleteSend records the assistant's reply and returns to Idle.
func (s *Session) CompleteSend(response string) {
	if !s.sending {
		return
	}
	s.messages = append(s.messages, model.NewAssistantMessage(response))
	s.sending = false
}

// FailSend absorbs a failed exchange: exactly one assistant message with
// the surface's fixed apology is appended and the session returns to a
// sendable state.
func (s *Session) FailSend() {
	if !s.sending {
		return
	}
	s.messages = append(s.messages, model.NewAssistantMessage(s.fallbackReply))
	s.sending = false
}
