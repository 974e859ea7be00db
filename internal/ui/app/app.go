// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the workbench and detail screens into the root
// Bubble Tea program, along with the shared header and status bar chrome.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/config"
	"github.com/jeranaias/lendbench-tui/internal/ui/components"
	"github.com/jeranaias/lendbench-tui/internal/ui/detail"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
	"github.com/jeranaias/lendbench-tui/internal/ui/workbench"
)

// =============================================================================
// SCREENS
// =============================================================================

// Screen identifies the active screen.
type Screen int

const (
	ScreenWorkbench Screen = iota
	ScreenDetail
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root Bubble Tea model. It owns the screen chrome and routes
// messages to whichever screen is active.
type Model struct {
	client *api.Client
	cfg    *config.Config
	theme  *styles.Theme

	screen    Screen
	workbench *workbench.Model
	detail    *detail.Model

	header    *components.Header
	statusBar *components.StatusBar

	width  int
	height int
}

// New creates the root model.
func New(client *api.Client, cfg *config.Config) *Model {
	theme := styles.NewTheme()

	header := components.NewHeader(theme)
	header.SetBackend(client.BaseURL())

	wb := workbench.New(client, theme, cfg.UI.SearchDebounce())

	return &Model{
		client:    client,
		cfg:       cfg,
		theme:     theme,
		screen:    ScreenWorkbench,
		workbench: wb,
		header:    header,
		statusBar: components.NewStatusBar(theme),
	}
}

// Init starts the workbench screen.
func (m *Model) Init() tea.Cmd {
	return m.workbench.Init()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes messages. Async results are routed by their message type so
// an in-flight response still lands after the user has switched screens.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.workbench.SetSize(msg.Width, msg.Height-4)
		if m.detail != nil {
			m.detail.SetSize(msg.Width, msg.Height-4)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == ScreenWorkbench && m.workbench.CurrentFocus() == workbench.FocusTable {
			switch msg.String() {
			case "q", "ctrl+q":
				return m, tea.Quit
			}
		}
		return m.routeToActive(msg)

	case workbench.OpenDetailMsg:
		m.detail = detail.New(m.client, m.theme, msg.ApplicationID)
		m.detail.SetSize(m.width, m.height-4)
		m.screen = ScreenDetail
		m.header.SetSubtitle("Application Detail")
		return m, m.detail.Init()

	case detail.BackMsg:
		m.screen = ScreenWorkbench
		m.detail = nil
		m.header.SetSubtitle("Underwriting Workbench")
		if msg.Err != nil {
			m.workbench.Toasts().AddError("Could not load application details")
		}
		// Refresh the list so review-status edits made in detail show up.
		return m.routeToWorkbench(refreshMsg{})

	// Workbench async results always land on the workbench model.
	case workbench.ApplicationsFetchedMsg, workbench.SearchDebounceMsg,
		workbench.SeedCompletedMsg, workbench.ReviewStatusUpdatedMsg,
		workbench.ChatResponseMsg:
		return m.routeToWorkbench(msg)

	// Detail async results land on the detail model while it exists.
	case detail.ApplicationFetchedMsg, detail.ChatResponseMsg,
		detail.ReviewStatusUpdatedMsg:
		if m.detail == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	default:
		return m.routeToActive(msg)
	}
}

// refreshMsg asks the workbench to refetch after returning from detail.
type refreshMsg struct{}

func (m *Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen == ScreenDetail && m.detail != nil {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m.routeToWorkbench(msg)
}

func (m *Model) routeToWorkbench(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshMsg); ok {
		return m, m.workbench.Refresh()
	}
	var cmd tea.Cmd
	m.workbench, cmd = m.workbench.Update(msg)
	return m, cmd
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the chrome and the active screen.
func (m *Model) View() string {
	m.statusBar.SetStatus(m.currentStatus())
	m.statusBar.SetShortcuts(m.currentShortcuts())

	var body string
	if m.screen == ScreenDetail && m.detail != nil {
		body = m.detail.View()
	} else {
		body = m.workbench.View()
	}

	return m.header.View() + "\n" + body + "\n" + m.statusBar.View()
}

func (m *Model) currentStatus() components.Status {
	switch {
	case m.screen == ScreenWorkbench && m.workbench.Loading():
		return components.StatusLoading
	case m.screen == ScreenWorkbench && m.workbench.Chat().Sending():
		return components.StatusSending
	case m.screen == ScreenDetail && m.detail != nil && m.detail.Chat().Sending():
		return components.StatusSending
	default:
		return components.StatusReady
	}
}

func (m *Model) currentShortcuts() []components.Shortcut {
	if m.screen == ScreenDetail {
		return []components.Shortcut{
			{Key: "Tab", Desc: "tabs"},
			{Key: "c", Desc: "assistant"},
			{Key: "1-4", Desc: "review"},
			{Key: "Esc", Desc: "back"},
		}
	}
	return []components.Shortcut{
		{Key: "/", Desc: "search"},
		{Key: "c", Desc: "assistant"},
		{Key: "Tab", Desc: "expand"},
		{Key: "Enter", Desc: "detail"},
		{Key: "1-4", Desc: "review"},
		{Key: "q", Desc: "quit"},
	}
}
