// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	client := api.NewClient("http://127.0.0.1:8000")
	return New(client, styles.NewTheme(), 250*time.Millisecond)
}

func sampleApps() []model.Application {
	return []model.Application{
		{ID: "a1", ApplicationNo: "LN-1001", ApplicantName: "Aurora Foods", ReviewStatus: model.ReviewPending},
		{ID: "a2", ApplicationNo: "LN-1002", ApplicantName: "Borealis Metals", ReviewStatus: model.ReviewPending, IsOverdue: true},
		{ID: "a3", ApplicationNo: "LN-1003", ApplicantName: "Cirrus Logistics", ReviewStatus: model.ReviewApproved},
	}
}

func deliver(m *Model, msg tea.Msg) *Model {
	m, _ = m.Update(msg)
	return m
}

func TestFetchedResultPopulatesApplications(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1

	m = deliver(m, ApplicationsFetchedMsg{
		Seq:          1,
		Applications: sampleApps(),
		Stats:        model.Stats{Pending: model.StatBucket{Count: 2, Overdue: 1}},
	})

	assert.Len(t, m.Applications(), 3)
	assert.Equal(t, 2, m.Stats().Pending.Count)
	assert.False(t, m.Loading())
}

func TestStaleFetchResultIsDiscarded(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m = deliver(m, ApplicationsFetchedMsg{Seq: 1, Applications: sampleApps()})

	// A newer request is dispatched before the old response lands.
	m.fetchSeq = 2
	m = deliver(m, ApplicationsFetchedMsg{Seq: 1, Applications: nil})

	// The stale empty result must not clobber the visible list.
	assert.Len(t, m.Applications(), 3)
}

func TestEmptyFirstFetchSeedsExactlyOnce(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1

	_, cmd := m.Update(ApplicationsFetchedMsg{Seq: 1})
	require.NotNil(t, cmd, "empty first fetch should trigger seeding")
	assert.True(t, m.seedAttempted)

	// A later empty fetch must not seed again.
	m.fetchSeq = 2
	m.loading = false
	_, cmd = m.Update(ApplicationsFetchedMsg{Seq: 2})
	assert.Nil(t, cmd)
}

func TestEmptySearchResultDoesNotSeed(t *testing.T) {
	m := newTestModel(t)
	m.searchInput.SetValue("zebra")
	m.fetchSeq = 1

	_, cmd := m.Update(ApplicationsFetchedMsg{Seq: 1})

	assert.Nil(t, cmd, "empty filtered result must not trigger seeding")
	assert.False(t, m.seedAttempted)
}

func TestSearchDebounceOnlyLatestSeqFires(t *testing.T) {
	m := newTestModel(t)
	m.searchSeq = 5

	_, cmd := m.Update(SearchDebounceMsg{Seq: 3})
	assert.Nil(t, cmd, "superseded debounce must not fetch")

	_, cmd = m.Update(SearchDebounceMsg{Seq: 5})
	assert.NotNil(t, cmd, "latest debounce fires the fetch")
}

func TestExpandCollapsesPreviousRow(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m = deliver(m, ApplicationsFetchedMsg{Seq: 1, Applications: sampleApps()})

	m = deliver(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "a1", m.ExpandedID())

	m = deliver(m, tea.KeyMsg{Type: tea.KeyDown})
	m = deliver(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "a2", m.ExpandedID(), "expanding a row collapses the previous one")

	m = deliver(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Empty(t, m.ExpandedID(), "expanding the same row again collapses it")
}

func TestReviewStatusKeyDoesNotMutateLocally(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m = deliver(m, ApplicationsFetchedMsg{Seq: 1, Applications: sampleApps()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})

	require.NotNil(t, cmd, "a changed status issues the update request")
	assert.Equal(t, model.ReviewPending, m.Applications()[0].ReviewStatus,
		"the row keeps the server's status until the refetch lands")
}

func TestReviewStatusUpdateSuccessRefetches(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m = deliver(m, ApplicationsFetchedMsg{Seq: 1, Applications: sampleApps()})
	before := m.fetchSeq

	_, cmd := m.Update(ReviewStatusUpdatedMsg{ApplicationID: "a1", Status: model.ReviewApproved})

	require.NotNil(t, cmd, "a confirmed update refetches the authoritative list")
	assert.Greater(t, m.fetchSeq, before)
	toasts := m.Toasts().Toasts()
	require.NotEmpty(t, toasts)
	assert.Contains(t, toasts[0].Message, `"Approved"`)
	assert.Equal(t, model.ReviewPending, m.Applications()[0].ReviewStatus,
		"the confirmation alone does not touch the row")

	updated := sampleApps()
	updated[0].ReviewStatus = model.ReviewApproved
	m = deliver(m, ApplicationsFetchedMsg{Seq: m.fetchSeq, Applications: updated})
	assert.Equal(t, model.ReviewApproved, m.Applications()[0].ReviewStatus)
}

func TestReviewStatusKeyIsNoopWhenUnchanged(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m = deliver(m, ApplicationsFetchedMsg{Seq: 1, Applications: sampleApps()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})

	assert.Nil(t, cmd, "setting the current status should not issue a request")
}

func TestChatResponseForReplacedSessionIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m.chat.BeginSend("hello")

	m = deliver(m, ChatResponseMsg{SessionID: "workbench-other", Response: "stale"})

	assert.True(t, m.Chat().Sending(), "reply for another session must not complete this one")
	require.Len(t, m.Chat().Messages(), 1)
}

func TestChatFailureAppendsApology(t *testing.T) {
	m := newTestModel(t)
	m.chat.BeginSend("hello")

	m = deliver(m, ChatResponseMsg{SessionID: m.chat.ID(), Err: assert.AnError})

	msgs := m.Chat().Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleAssistant, msgs[1].Role)
	assert.False(t, m.Chat().Sending())
}

func TestChatSendStartsThinkingSpinner(t *testing.T) {
	m := newTestModel(t)
	m.focus = FocusChat
	m.chatInput.SetValue("show overdue rows")

	m = deliver(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.chatSpinner.IsActive())
}

func TestChatResponseStopsThinkingSpinner(t *testing.T) {
	m := newTestModel(t)
	m.chat.BeginSend("hello")
	_ = m.chatSpinner.Start()

	m = deliver(m, ChatResponseMsg{SessionID: m.chat.ID(), Response: "done"})

	assert.False(t, m.chatSpinner.IsActive())
}

func TestStatusUpdateFailureRefetches(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m = deliver(m, ApplicationsFetchedMsg{Seq: 1, Applications: sampleApps()})
	before := m.fetchSeq

	_, cmd := m.Update(ReviewStatusUpdatedMsg{ApplicationID: "a1", Err: assert.AnError})

	require.NotNil(t, cmd, "failed update refetches to restore server truth")
	assert.Greater(t, m.fetchSeq, before)
	assert.True(t, m.Toasts().HasToasts())
}

func TestCursorClampedAfterShorterResult(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m = deliver(m, ApplicationsFetchedMsg{Seq: 1, Applications: sampleApps()})
	m = deliver(m, tea.KeyMsg{Type: tea.KeyDown})
	m = deliver(m, tea.KeyMsg{Type: tea.KeyDown})

	m.fetchSeq = 2
	m = deliver(m, ApplicationsFetchedMsg{Seq: 2, Applications: sampleApps()[:1], Stats: model.Stats{}})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "a1", m.Selected().ID)
}
