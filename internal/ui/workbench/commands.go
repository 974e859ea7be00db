// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/logging"
	"github.com/jeranaias/lendbench-tui/internal/model"
)

// requestTimeout bounds every backend call issued from the TUI.
const requestTimeout = 30 * time.Second

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// FetchApplicationsCmd fetches the application list, optionally filtered.
// The seq token is echoed back so the model can drop stale results.
func FetchApplicationsCmd(client *api.Client, seq int, search string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := client.ListApplications(ctx, search)
		if err != nil {
			logging.L().Warn("application list fetch failed",
				zap.String("search", search),
				zap.Error(err))
			return ApplicationsFetchedMsg{Seq: seq, Err: err}
		}
		return ApplicationsFetchedMsg{
			Seq:          seq,
			Applications: result.Applications,
			Stats:        result.Stats,
		}
	}
}

// SearchDebounceCmd waits out the debounce window before firing.
func SearchDebounceCmd(seq int, wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Seq: seq}
	})
}

// SeedCmd requests demo data from the backend.
func SeedCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.SeedDatabase(ctx); err != nil {
			logging.L().Warn("database seed failed", zap.Error(err))
			return SeedCompletedMsg{Err: err}
		}
		return SeedCompletedMsg{}
	}
}

// UpdateReviewStatusCmd persists a review-status change.
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

// SendChatCmd sends a chat message for the given session. applicationID is
// empty for the workbench-wide assistant.
func SendChatCmd(client *api.Client, sessionID, message, applicationID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		response, err := client.SendChat(ctx, sessionID, message, applicationID)
		if err != nil {
			// Log a preview only; full prompts do not belong in the log file.
			logging.L().Warn("chat send failed",
				zap.String("session_id", sessionID),
				zap.String("message", model.NewUserMessage(message).Preview(80)),
				zap.Error(err))
			return ChatResponseMsg{SessionID: sessionID, Err: err}
		}
		return ChatResponseMsg{SessionID: sessionID, Response: response}
	}
}
