// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// AGGREGATE STATS
// =============================================================================

// StatBucket is one review-workflow category's counts.
// Both counts are server-derived; the client never recomputes them.
type StatBucket struct {
	Count   int `json:"count"`
	Overdue int `json:"overdue"`
}

// Stats groups applications by where they sit in the review workflow.
// It is owned entirely by the server and refetched alongside the
// application list, never updated independently of it.
type Stats struct {
	// Pending: review_status == "Review Pending"
	Pending StatBucket `json:"pending"`
	// Awaiting: review_status == "Awaiting Instructions"
	Awaiting StatBucket `json:"awaiting"`
	// Completed: review_status is "Approved" or "Rejected"
	Completed StatBucket `json:"completed"`
}

// Total returns the number of applications across all buckets.
func (s Stats) Total() int {
	return s.Pending.Count + s.Awaiting.Count + s.Completed.Count
}
