// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "github.com/jeranaias/lendbench-tui/internal/model"

// =============================================================================
// REQUEST / RESPONSE SHAPES
// =============================================================================

// ListResult is the response of the list endpoint: the (possibly filtered)
// applications together with the unfiltered aggregate stats. The two arrive
// in one response so callers can replace them atomically.
type ListResult struct {
	Applications []model.Application `json:"applications"`
	Stats        model.Stats         `json:"stats"`
}

// reviewStatusRequest is the body of the review-status update call.
type reviewStatusRequest struct {
	ReviewStatus string `json:"review_status"`
}

// chatRequest is the body of the chat send call. ApplicationID is omitted
// for the workbench-wide assistant and set for the per-application one,
// which lets the backend scope its retrieved context.
type chatRequest struct {
	SessionID     string `json:"session_id"`
	Message       string `json:"message"`
	ApplicationID string `json:"application_id,omitempty"`
}

// chatResponse is the assistant's reply.
type chatResponse struct {
	Response  string `json:"response"`
	MessageID string `json:"message_id,omitempty"`
}

// historyResponse wraps the stored messages of one session.
type historyResponse struct {
	Messages []model.ChatMessage `json:"messages"`
}

// seedResponse acknowledges a seed call.
type seedResponse struct {
	Message string `json:"message,omitempty"`
	Count   int    `json:"count,omitempty"`
}
