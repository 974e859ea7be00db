// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detail

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/logging"
	"github.com/jeranaias/lendbench-tui/internal/model"
)

const requestTimeout = 30 * time.Second

// FetchApplicationCmd fetches one application by ID.
func FetchApplicationCmd(client *api.Client, seq int, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		app, err := client.GetApplication(ctx, id)
		if err != nil {
			logging.L().Warn("application fetch failed",
				zap.String("application_id", id),
				zap.Error(err))
			return ApplicationFetchedMsg{Seq: seq, Err: err}
		}
		return ApplicationFetchedMsg{Seq: seq, Application: app}
	}
}

// SendChatCmd sends a message on the application-scoped assistant session.
func SendChatCmd(client *api.Client, sessionID, message, applicationID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		response, err := client.SendChat(ctx, sessionID, message, applicationID)
		if err != nil {
			logging.L().Warn("detail chat send failed",
				zap.String("session_id", sessionID),
				zap.String("application_id", applicationID),
				zap.Error(err))
			return ChatResponseMsg{SessionID: sessionID, Err: err}
		}
		return ChatResponseMsg{SessionID: sessionID, Response: response}
	}
}

// UpdateReviewStatusCmd persists a review-status change from the detail screen.
func UpdateReviewStatusCmd(client *api.Client, id string, status model.ReviewStatus) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.UpdateReviewStatus(ctx, id, status); err != nil {
			logging.L().Warn("review status update failed",
				zap.String("application_id", id),
				zap.String("status", status.String()),
				zap.Error(err))
			return ReviewStatusUpdatedMsg{ApplicationID: id, Status: status, Err: err}
		}
		return ReviewStatusUpdatedMsg{ApplicationID: id, Status: status}
	}
}
