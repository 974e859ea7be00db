// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/session"
	"github.com/jeranaias/lendbench-tui/internal/ui/components"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS STATE
// =============================================================================

// Focus identifies which element receives keyboard input.
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
	FocusChat
)

// =============================================================================
// WORKBENCH MODEL
// =============================================================================

// Model is the Bubble Tea model for the workbench screen.
type Model struct {
	client *api.Client
	theme  *styles.Theme
	keyMap KeyMap

	width  int
	height int

	// Pipeline data
	applications []model.Application
	stats        model.Stats
	loading      bool
	loaded       bool // First successful fetch completed

	// Fetch sequencing: only the newest in-flight request may land
	fetchSeq int

	// One-shot auto-seed: fires once when the first fetch comes back empty
	seedAttempted bool
	seeding       bool

	// Search
	searchInput textinput.Model
	searchSeq   int
	debounce    time.Duration

	// Table cursor and the single expanded row, by application ID
	cursor     int
	expandedID string

	// Workbench-wide assistant
	chat      *session.Session
	chatInput textinput.Model
	markdown  *components.MarkdownRenderer

	focus       Focus
	spinner     components.Spinner
	chatSpinner components.Spinner
	toasts      *components.ToastManager
}

// New creates the workbench model.
func New(client *api.Client, theme *styles.Theme, debounce time.Duration) *Model {
	search := textinput.New()
	search.Placeholder = "Search by applicant or application no..."
	search.CharLimit = 120
	search.Width = 40

	chatInput := textinput.New()
	chatInput.Placeholder = "Ask the assistant about your pipeline..."
	chatInput.CharLimit = 2000
	chatInput.Width = 60

	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	return &Model{
		client:      client,
		theme:       theme,
		keyMap:      DefaultKeyMap(),
		searchInput: search,
		chatInput:   chatInput,
		debounce:    debounce,
		chat:        session.NewWorkbenchSession(),
		markdown:    components.NewMarkdownRenderer(60),
		spinner:     components.NewFetchSpinner(),
		chatSpinner: components.NewChatSpinner(),
		toasts:      components.NewToastManager(),
		width:       100,
		height:      30,
	}
}

// Init starts the initial list fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startFetch(""), components.ToastTickCmd())
}

// SetSize updates layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = min(60, width-20)
	m.chatInput.Width = width - 16
	m.markdown.SetWidth(min(width-12, 100))
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Applications returns the currently displayed applications.
func (m *Model) Applications() []model.Application {
	return m.applications
}

// Stats returns the current pipeline stats.
func (m *Model) Stats() model.Stats {
	return m.stats
}

// Loading reports whether a list fetch is in flight.
func (m *Model) Loading() bool {
	return m.loading
}

// Chat returns the workbench assistant session.
func (m *Model) Chat() *session.Session {
	return m.chat
}

// ExpandedID returns the ID of the expanded row, or "" when collapsed.
func (m *Model) ExpandedID() string {
	return m.expandedID
}

// Focus returns the current input focus.
func (m *Model) CurrentFocus() Focus {
	return m.focus
}

// Selected returns the application under the cursor, or nil.
func (m *Model) Selected() *model.Application {
	if m.cursor < 0 || m.cursor >= len(m.applications) {
		return nil
	}
	return &m.applications[m.cursor]
}

// Toasts returns the toast manager for rendering by the root model.
func (m *Model) Toasts() *components.ToastManager {
	return m.toasts
}

// Refresh refetches the list with the current search filter. The root model
// calls this when returning from the detail screen.
func (m *Model) Refresh() tea.Cmd {
	return m.startFetch(m.searchInput.Value())
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the workbench screen.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case ApplicationsFetchedMsg:
		return m.handleFetched(msg)

	case SearchDebounceMsg:
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		return m, m.startFetch(m.searchInput.Value())

	case SeedCompletedMsg:
		m.seeding = false
		if msg.Err != nil {
			m.loading = false
			m.spinner.Stop()
			m.toasts.AddError("Could not seed demo data")
			return m, nil
		}
		m.toasts.AddSuccess("Demo data loaded")
		return m, m.startFetch(m.searchInput.Value())

	case ReviewStatusUpdatedMsg:
		if msg.Err != nil {
			if api.IsInvalidStatus(msg.Err) {
				m.toasts.AddError("Invalid review status")
			} else {
				m.toasts.AddError("Could not update review status")
			}
			return m, m.startFetch(m.searchInput.Value())
		}
		m.toasts.AddSuccess(`Review status updated to "` + msg.Status.String() + `"`)
		return m, m.startFetch(m.searchInput.Value())

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

	case components.ToastTickMsg:
		m.toasts.Tick()
		return m, components.ToastTickCmd()

	default:
		// Each spinner drops ticks that are not its own.
		return m, tea.Batch(m.spinner.Update(msg), m.chatSpinner.Update(msg))
	}
}

func (m *Model) handleFetched(msg ApplicationsFetchedMsg) (*Model, tea.Cmd) {
	if msg.Seq != m.fetchSeq {
		// A newer request is in flight; this result is stale.
		return m, nil
	}
	m.loading = false
	m.spinner.Stop()

	if msg.Err != nil {
		// Failures surface in the log sink and leave the last good list up.
		m.toasts.AddError("Could not reach the underwriting backend")
		return m, nil
	}

	m.applications = msg.Applications
	m.stats = msg.Stats
	m.loaded = true
	if m.cursor >= len(m.applications) {
		m.cursor = max(0, len(m.applications)-1)
	}
	if m.expandedID != "" && m.findByID(m.expandedID) == nil {
		m.expandedID = ""
	}

	// Empty unfiltered pipeline on first load: seed demo data exactly once.
	if len(m.applications) == 0 && m.searchInput.Value() == "" && !m.seedAttempted {
		m.seedAttempted = true
		m.seeding = true
		m.loading = true
		m.spinner.SetMessage("Seeding demo data")
		return m, tea.Batch(m.spinner.Start(), SeedCmd(m.client))
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch m.focus {
	case FocusSearch:
		return m.handleSearchKey(msg)
	case FocusChat:
		return m.handleChatKey(msg)
	default:
		return m.handleTableKey(msg)
	}
}

func (m *Model) handleTableKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keyMap.Down):
		if m.cursor < len(m.applications)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keyMap.Expand):
		if app := m.Selected(); app != nil {
			if m.expandedID == app.ID {
				m.expandedID = ""
			} else {
				// Expanding one row collapses any other.
				m.expandedID = app.ID
			}
		}
	case key.Matches(msg, m.keyMap.Open):
		if app := m.Selected(); app != nil {
			id := app.ID
			return m, func() tea.Msg { return OpenDetailMsg{ApplicationID: id} }
		}
	case key.Matches(msg, m.keyMap.Search):
		m.focus = FocusSearch
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keyMap.Chat):
		m.focus = FocusChat
		return m, m.chatInput.Focus()
	case key.Matches(msg, m.keyMap.Refresh):
		return m, m.startFetch(m.searchInput.Value())
	case key.Matches(msg, m.keyMap.SetPending):
		return m, m.setReviewStatus(model.ReviewPending)
	case key.Matches(msg, m.keyMap.Approve):
		return m, m.setReviewStatus(model.ReviewApproved)
	case key.Matches(msg, m.keyMap.Await):
		return m, m.setReviewStatus(model.ReviewAwaiting)
	case key.Matches(msg, m.keyMap.Reject):
		return m, m.setReviewStatus(model.ReviewRejected)
	case key.Matches(msg, m.keyMap.Back):
		m.expandedID = ""
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = FocusTable
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.focus = FocusTable
		m.searchInput.Blur()
		// Enter skips the debounce window and searches immediately.
		return m, m.startFetch(m.searchInput.Value())
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.searchSeq++
		return m, tea.Batch(cmd, SearchDebounceCmd(m.searchSeq, m.debounce))
	}
	return m, cmd
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = FocusTable
		m.chatInput.Blur()
		return m, nil
	case tea.KeyEnter:
		text, ok := m.chat.BeginSend(m.chatInput.Value())
		if !ok {
			return m, nil
		}
		m.chatInput.Reset()
		return m, tea.Batch(m.chatSpinner.Start(), SendChatCmd(m.client, m.chat.ID(), text, ""))
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// =============================================================================
// HELPERS
// =============================================================================

// startFetch bumps the sequence token and dispatches a list fetch.
func (m *Model) startFetch(search string) tea.Cmd {
	m.fetchSeq++
	m.loading = true
	m.spinner.SetMessage("Fetching applications")
	return tea.Batch(m.spinner.Start(), FetchApplicationsCmd(m.client, m.fetchSeq, search))
}

// setReviewStatus persists the change server-side. The local row is left
// untouched until the follow-up refetch lands.
func (m *Model) setReviewStatus(status model.ReviewStatus) tea.Cmd {
	app := m.Selected()
	if app == nil || app.ReviewStatus == status {
		return nil
	}
	return UpdateReviewStatusCmd(m.client, app.ID, status)
}

func (m *Model) findByID(id string) *model.Application {
	for i := range m.applications {
		if m.applications[i].ID == id {
			return &m.applications[i]
		}
	}
	return nil
}
