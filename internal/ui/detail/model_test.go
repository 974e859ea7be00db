// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detail

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/session"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	client := api.NewClient("http://127.0.0.1:8000")
	return New(client, styles.NewTheme(), "app-1")
}

func sampleApp() *model.Application {
	return &model.Application{
		ID:            "app-1",
		ApplicationNo: "LN-1001",
		ApplicantName: "Aurora Foods",
		ReviewStatus:  model.ReviewPending,
	}
}

func TestFetchSuccessPopulatesApplication(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1

	m, _ = m.Update(ApplicationFetchedMsg{Seq: 1, Application: sampleApp()})

	require.NotNil(t, m.Application())
	assert.Equal(t, "LN-1001", m.Application().ApplicationNo)
}

func TestStaleFetchResultIsDiscarded(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 2

	m, _ = m.Update(ApplicationFetchedMsg{Seq: 1, Application: sampleApp()})

	assert.Nil(t, m.Application())
}

func TestFetchFailureNavigatesBack(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1

	_, cmd := m.Update(ApplicationFetchedMsg{Seq: 1, Err: assert.AnError})

	require.NotNil(t, cmd)
	msg := cmd()
	back, ok := msg.(BackMsg)
	require.True(t, ok, "a failed fetch should abandon the screen")
	assert.Error(t, back.Err)
}

func TestEachVisitGetsFreshSession(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:8000")
	theme := styles.NewTheme()

	first := New(client, theme, "app-1")
	second := New(client, theme, "app-1")

	assert.NotEqual(t, first.Chat().ID(), second.Chat().ID())
	assert.True(t, strings.HasPrefix(first.Chat().ID(), "detail-app-1-"))
}

func TestChatFailureAppendsDetailApology(t *testing.T) {
	m := newTestModel(t)
	m.chat.BeginSend("what is the risk here?")

	m, _ = m.Update(ChatResponseMsg{SessionID: m.chat.ID(), Err: assert.AnError})

	msgs := m.Chat().Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, session.DetailFallbackReply, msgs[1].Content)
}

func TestTabCyclingWraps(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m, _ = m.Update(ApplicationFetchedMsg{Seq: 1, Application: sampleApp()})

	for range tabNames {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}

	assert.Equal(t, TabSummary, m.ActiveTab(), "cycling through all tabs wraps to the first")
}

func TestReviewStatusKeyDoesNotMutateLocally(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m, _ = m.Update(ApplicationFetchedMsg{Seq: 1, Application: sampleApp()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})

	require.NotNil(t, cmd, "a changed status issues the update request")
	assert.Equal(t, model.ReviewPending, m.Application().ReviewStatus,
		"the header keeps the server's status until the refetch lands")
}

func TestReviewStatusUpdateSuccessRefetches(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m, _ = m.Update(ApplicationFetchedMsg{Seq: 1, Application: sampleApp()})
	before := m.fetchSeq

	_, cmd := m.Update(ReviewStatusUpdatedMsg{ApplicationID: "app-1", Status: model.ReviewApproved})

	require.NotNil(t, cmd, "a confirmed update refetches the authoritative application")
	assert.Greater(t, m.fetchSeq, before)
	assert.Equal(t, model.ReviewPending, m.Application().ReviewStatus)

	updated := sampleApp()
	updated.ReviewStatus = model.ReviewApproved
	m, _ = m.Update(ApplicationFetchedMsg{Seq: m.fetchSeq, Application: updated})
	assert.Equal(t, model.ReviewApproved, m.Application().ReviewStatus)
}

func TestReviewStatusToastNamesNewStatus(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m, _ = m.Update(ApplicationFetchedMsg{Seq: 1, Application: sampleApp()})

	m, _ = m.Update(ReviewStatusUpdatedMsg{ApplicationID: "app-1", Status: model.ReviewAwaiting})

	toasts := m.Toasts().Toasts()
	require.NotEmpty(t, toasts)
	assert.Contains(t, toasts[0].Message, `"Awaiting Instructions"`)
}

func TestBackKeyEmitsBackMsg(t *testing.T) {
	m := newTestModel(t)
	m.fetchSeq = 1
	m, _ = m.Update(ApplicationFetchedMsg{Seq: 1, Application: sampleApp()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	back, ok := cmd().(BackMsg)
	require.True(t, ok)
	assert.NoError(t, back.Err)
}
