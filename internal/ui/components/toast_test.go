// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastManagerAddAssignsIDs(t *testing.T) {
	m := NewToastManager()

	id1 := m.AddError("backend unreachable")
	id2 := m.AddSuccess("review status updated")

	assert.NotEqual(t, id1, id2)
	require.Len(t, m.Toasts(), 2)
	// Newest first
	assert.Equal(t, "review status updated", m.Toasts()[0].Message)
}

func TestToastManagerTrimsToMax(t *testing.T) {
	m := NewToastManager()

	for i := 0; i < 10; i++ {
		m.AddStatus("toast")
	}

	assert.Len(t, m.Toasts(), 3)
}

func TestToastTickExpiresOldToasts(t *testing.T) {
	m := NewToastManager()

	expired := NewStatusToast("old")
	expired.CreatedAt = time.Now().Add(-time.Minute)
	m.Add(expired)
	m.AddError("fresh")

	remaining := m.Tick()

	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Message)
	assert.True(t, m.HasToasts())
}

func TestToastManagerClear(t *testing.T) {
	m := NewToastManager()
	m.AddError("boom")

	m.Clear()

	assert.False(t, m.HasToasts())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Ready", StatusReady.String())
	assert.Equal(t, "Loading...", StatusLoading.String())
	assert.Equal(t, "Sending...", StatusSending.String())
	assert.Equal(t, "Error", StatusError.String())
}
