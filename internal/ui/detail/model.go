// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detail

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/session"
	"github.com/jeranaias/lendbench-tui/internal/ui/components"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

// =============================================================================
// TABS
// =============================================================================

// Tab identifies one detail tab.
type Tab int

const (
	TabSummary Tab = iota
	TabFinancials
	TabMacro
	TabDocuments
	TabCovenants
)

var tabNames = []string{"Summary", "Financials", "Macro", "Documents", "Covenants"}

// String returns the tab label.
func (t Tab) String() string {
	if int(t) < 0 || int(t) >= len(tabNames) {
		return "Unknown"
	}
	return tabNames[t]
}

// =============================================================================
// FOCUS STATE
// =============================================================================

// Focus identifies which element receives keyboard input.
type Focus int

const (
	FocusBody Focus = iota
	FocusChat
)

// =============================================================================
// DETAIL MODEL
// =============================================================================

// Model is the Bubble Tea model for the application detail screen.
type Model struct {
	client *api.Client
	theme  *styles.Theme
	keyMap KeyMap

	width  int
	height int

	applicationID string
	app           *model.Application
	loading       bool
	fetchSeq      int

	tab      Tab
	viewport viewport.Model

	// Application-scoped assistant
	chat      *session.Session
	chatInput textinput.Model
	markdown  *components.MarkdownRenderer

	focus       Focus
	spinner     components.Spinner
	chatSpinner components.Spinner
	toasts      *components.ToastManager
}

// New creates a detail model for one application. Each visit gets a fresh
// assistant session scoped to the application.
func New(client *api.Client, theme *styles.Theme, applicationID string) *Model {
	chatInput := textinput.New()
	chatInput.Placeholder = "Ask about this application..."
	chatInput.CharLimit = 2000
	chatInput.Width = 50

	vp := viewport.New(80, 20)

	return &Model{
		client:        client,
		theme:         theme,
		keyMap:        DefaultKeyMap(),
		applicationID: applicationID,
		chat:          session.NewDetailSession(applicationID),
		chatInput:     chatInput,
		markdown:      components.NewMarkdownRenderer(56),
		spinner:       components.NewFetchSpinner(),
		chatSpinner:   components.NewChatSpinner(),
		toasts:        components.NewToastManager(),
		viewport:      vp,
		width:         100,
		height:        30,
	}
}

// Init starts the application fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startFetch(), components.ToastTickCmd())
}

// SetSize updates layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	bodyWidth := width * 2 / 3
	m.viewport.Width = bodyWidth
	m.viewport.Height = max(height-10, 8)
	m.chatInput.Width = width - bodyWidth - 10
	m.markdown.SetWidth(max(width-bodyWidth-8, 24))
	if m.app != nil {
		m.viewport.SetContent(m.renderTabContent())
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ApplicationID returns the application this screen shows.
func (m *Model) ApplicationID() string {
	return m.applicationID
}

// Application returns the fetched application, or nil while loading.
func (m *Model) Application() *model.Application {
	return m.app
}

// Chat returns the application-scoped assistant session.
func (m *Model) Chat() *session.Session {
	return m.chat
}

// ActiveTab returns the currently selected tab.
func (m *Model) ActiveTab() Tab {
	return m.tab
}

// Toasts returns the toast manager.
func (m *Model) Toasts() *components.ToastManager {
	return m.toasts
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the detail screen.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case ApplicationFetchedMsg:
		if msg.Seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		m.spinner.Stop()
		if msg.Err != nil {
			// The detail screen cannot stand without its application;
			// abandon it and let the workbench explain.
			err := msg.Err
			return m, func() tea.Msg { return BackMsg{Err: err} }
		}
		m.app = msg.Application
		m.viewport.SetContent(m.renderTabContent())
		m.viewport.GotoTop()
		return m, nil

	case ChatResponseMsg:
		if msg.SessionID != m.chat.ID() {
			return m, nil
		}
		if msg.Err != nil {
			m.chat.FailSend()
		} else {
			m.chat.CompleteSend(msg.Response)
		}
		m.chatSpinner.Stop()
		return m, nil

	case ReviewStatusUpdatedMsg:
		if msg.Err != nil {
			if api.IsInvalidStatus(msg.Err) {
				m.toasts.AddError("Invalid review status")
			} else {
				m.toasts.AddError("Could not update review status")
			}
			return m, m.startFetch()
		}
		m.toasts.AddSuccess(`Review status updated to "` + msg.Status.String() + `"`)
		return m, m.startFetch()

	case components.ToastTickMsg:
		m.toasts.Tick()
		return m, components.ToastTickCmd()

	default:
		// Each spinner drops ticks that are not its own.
		return m, tea.Batch(m.spinner.Update(msg), m.chatSpinner.Update(msg))
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	if m.focus == FocusChat {
		return m.handleChatKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Back):
		return m, func() tea.Msg { return BackMsg{} }
	case key.Matches(msg, m.keyMap.NextTab):
		m.tab = Tab((int(m.tab) + 1) % len(tabNames))
		m.refreshTab()
	case key.Matches(msg, m.keyMap.PrevTab):
		m.tab = Tab((int(m.tab) + len(tabNames) - 1) % len(tabNames))
		m.refreshTab()
	case key.Matches(msg, m.keyMap.Chat):
		m.focus = FocusChat
		return m, m.chatInput.Focus()
	case key.Matches(msg, m.keyMap.SetPending):
		return m, m.setReviewStatus(model.ReviewPending)
	case key.Matches(msg, m.keyMap.Approve):
		return m, m.setReviewStatus(model.ReviewApproved)
	case key.Matches(msg, m.keyMap.Await):
		return m, m.setReviewStatus(model.ReviewAwaiting)
	case key.Matches(msg, m.keyMap.Reject):
		return m, m.setReviewStatus(model.ReviewRejected)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = FocusBody
		m.chatInput.Blur()
		return m, nil
	case tea.KeyEnter:
		text, ok := m.chat.BeginSend(m.chatInput.Value())
		if !ok {
			return m, nil
		}
		m.chatInput.Reset()
		return m, tea.Batch(m.chatSpinner.Start(), SendChatCmd(m.client, m.chat.ID(), text, m.applicationID))
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// =============================================================================
// HELPERS
// =============================================================================

func (m *Model) startFetch() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	return tea.Batch(m.spinner.Start(), FetchApplicationCmd(m.client, m.fetchSeq, m.applicationID))
}

// setReviewStatus persists the change server-side. The header pill keeps
// showing the old status until the refetched application lands.
func (m *Model) setReviewStatus(status model.ReviewStatus) tea.Cmd {
	if m.app == nil || m.app.ReviewStatus == status {
		return nil
	}
	return UpdateReviewStatusCmd(m.client, m.app.ID, status)
}

func (m *Model) refreshTab() {
	if m.app != nil {
		m.viewport.SetContent(m.renderTabContent())
		m.viewport.GotoTop()
	}
}
