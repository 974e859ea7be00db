// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea messages produced by the workbench
// screen's async commands. Fetch results carry the sequence token of the
// request that produced them so stale responses can be discarded.
package workbench

import (
	"github.com/jeranaias/lendbench-tui/internal/model"
)

// =============================================================================
// FETCH MESSAGES
// =============================================================================

// ApplicationsFetchedMsg carries the result of a list fetch.
type ApplicationsFetchedMsg struct {
	Seq          int // Sequence token of the request; stale results are dropped
	Applications []model.Application
	Stats        model.Stats
	Err          error
}

// SearchDebounceMsg fires when the search debounce window elapses.
// Only the message matching the latest keystroke sequence triggers a fetch.
type SearchDebounceMsg struct {
	Seq int
}

// SeedCompletedMsg carries the result of a demo-data seed request.
type SeedCompletedMsg struct {
	Err error
}

// =============================================================================
// MUTATION MESSAGES
// =============================================================================

// ReviewStatusUpdatedMsg carries the result of a review-status update.
type ReviewStatusUpdatedMsg struct {
	ApplicationID string
	Status        model.ReviewStatus
	Err           error
}

// ChatResponseMsg carries the assistant's reply for a chat session.
// SessionID lets the handler ignore replies for sessions that were
// replaced while the request was in flight.
type ChatResponseMsg struct {
	SessionID string
	Response  string
	Err       error
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// OpenDetailMsg asks the root model to open an application's detail screen.
type OpenDetailMsg struct {
	ApplicationID string
}
