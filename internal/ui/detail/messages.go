// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detail

import (
	"github.com/jeranaias/lendbench-tui/internal/model"
)

// ApplicationFetchedMsg carries the result of a single-application fetch.
// Seq matches the request token; stale results are dropped.
type ApplicationFetchedMsg struct {
	Seq         int
	Application *model.Application
	Err         error
}

// ChatResponseMsg carries the assistant's reply for the detail session.
type ChatResponseMsg struct {
	SessionID string
	Response  string
	Err       error
}

// ReviewStatusUpdatedMsg carries the result of a review-status update
// issued from the detail screen.
type ReviewStatusUpdatedMsg struct {
	ApplicationID string
	Status        model.ReviewStatus
	Err           error
}

// BackMsg asks the root model to return to the workbench screen.
// Err is set when the screen is abandoning itself after a failed fetch.
type BackMsg struct {
	Err error
}
