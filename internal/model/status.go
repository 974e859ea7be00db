// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// REVIEW STATUS
// =============================================================================

// ReviewStatus is the human underwriter's disposition of an application.
// It is independent of the AI's own disposition: a row can be "AI Approved"
// and still be "Review Pending".
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "Review Pending"
	ReviewApproved ReviewStatus = "Approved"
	ReviewAwaiting ReviewStatus = "Awaiting Instructions"
	ReviewRejected ReviewStatus = "Rejected"
)

// ReviewStatuses lists every valid review status, in workflow order.
func ReviewStatuses() []ReviewStatus {
	return []ReviewStatus{ReviewPending, ReviewApproved, ReviewAwaiting, ReviewRejected}
}

// IsValid reports whether s is one of the four enumerated review statuses.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewAwaiting, ReviewRejected:
		return true
	}
	return false
}

// String returns the wire representation of the status.
func (s ReviewStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status counts toward the "completed"
// stats bucket on the server.
func (s ReviewStatus) IsTerminal() bool {
	return s == ReviewApproved || s == ReviewRejected
}

// =============================================================================
// APPLICATION STATUS
// =============================================================================

// ApplicationStatus is the AI system's disposition label for an application.
type ApplicationStatus string

const (
	AIApproved ApplicationStatus = "AI Approved"
	AIRejected ApplicationStatus = "AI Rejected"
	AIOnHold   ApplicationStatus = "On Hold by AI"
)

// IsValid reports whether s is a known AI disposition.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case AIApproved, AIRejected, AIOnHold:
		return true
	}
	return false
}

// String returns the wire representation of the status.
func (s ApplicationStatus) String() string {
	return string(s)
}

// =============================================================================
// DOCUMENTS STATUS
// =============================================================================

// DocumentsStatus summarizes the verification state of an application's
// submitted documents (as a whole, or of a single document).
type DocumentsStatus string

const (
	DocsVerified DocumentsStatus = "verified"
	DocsWarning  DocumentsStatus = "warning"
	DocsMissing  DocumentsStatus = "missing"
)

// IsValid reports whether s is a known documents status.
func (s DocumentsStatus) IsValid() bool {
	switch s {
	case DocsVerified, DocsWarning, DocsMissing:
		return true
	}
	return false
}

// String returns the wire representation of the status.
func (s DocumentsStatus) String() string {
	return string(s)
}
