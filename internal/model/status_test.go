// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewStatusIsValid(t *testing.T) {
	for _, s := range ReviewStatuses() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, ReviewStatus("").IsValid())
	assert.False(t, ReviewStatus("Escalated").IsValid())
	assert.False(t, ReviewStatus("approved").IsValid(), "wire values are case-sensitive")
}

func TestReviewStatusIsTerminal(t *testing.T) {
	assert.True(t, ReviewApproved.IsTerminal())
	assert.True(t, ReviewRejected.IsTerminal())
	assert.False(t, ReviewPending.IsTerminal())
	assert.False(t, ReviewAwaiting.IsTerminal())
}

func TestApplicationStatusIsValid(t *testing.T) {
	assert.True(t, AIApproved.IsValid())
	assert.True(t, AIRejected.IsValid())
	assert.True(t, AIOnHold.IsValid())
	assert.False(t, ApplicationStatus("Approved").IsValid())
}

func TestDocumentsStatusIsValid(t *testing.T) {
	assert.True(t, DocsVerified.IsValid())
	assert.True(t, DocsWarning.IsValid())
	assert.True(t, DocsMissing.IsValid())
	assert.False(t, DocumentsStatus("complete").IsValid())
}

func TestApplicationTitle(t *testing.T) {
	app := Application{ApplicationNo: "LN-1001", ApplicantName: "Aurora Foods"}
	assert.Equal(t, "LN-1001 - Aurora Foods", app.Title())
}

func TestStatsTotal(t *testing.T) {
	s := Stats{
		Pending:   StatBucket{Count: 3, Overdue: 1},
		Awaiting:  StatBucket{Count: 2},
		Completed: StatBucket{Count: 4},
	}
	assert.Equal(t, 9, s.Total())
}
