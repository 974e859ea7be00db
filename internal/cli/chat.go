// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive assistant chat for the lendbench CLI.
//
// Handles the "lendbench chat" command, a REPL against the same backend
// assistant the TUI uses. With --app ID, the session is scoped to a single
// application and the assistant answers with that application's context.
//
// Examples:
//   lendbench chat                 Workbench-wide assistant
//   lendbench chat --app 42        Assistant for application 42
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/config"
	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/session"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Mint).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Forest).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line with history navigation.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

var markdownRenderer *glamour.TermRenderer

func init() {
	wrap := TerminalWidth()
	if wrap > 100 {
		wrap = 100
	}
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders assistant markdown for terminal display.
// Piped output and renderer failures fall back to the raw text.
func renderMarkdown(content string) string {
	if !IsTerminal() || markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// RunChat runs the interactive chat REPL.
func RunChat(args Args, cfg *config.Config, client *api.Client) error {
	sess := newSession(args.ApplicationID)

	input := NewChatCLI()
	defer input.Close()

	if !args.Quiet {
		printChatWelcome(args, client)
	}

	for {
		line, err := input.ReadInput(promptStyle.Render("you> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println(infoStyle.Render("Bye."))
				return nil
			}
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "/") {
			done, newSess := handleChatCommand(trimmed, sess, args, client)
			if done {
				return nil
			}
			if newSess != nil {
				sess = newSess
			}
			continue
		}

		text, ok := sess.BeginSend(trimmed)
		if !ok {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
		response, err := client.SendChat(ctx, sess.ID(), text, sess.ApplicationID())
		cancel()
		if err != nil {
			sess.FailSend()
			fmt.Println(warningStyle.Render(sess.Messages()[sess.Len()-1].Content))
			continue
		}
		sess.CompleteSend(response)
		fmt.Println(renderMarkdown(response))
		fmt.Println()
	}
}

func newSession(applicationID string) *session.Session {
	if applicationID != "" {
		return session.NewDetailSession(applicationID)
	}
	return session.NewWorkbenchSession()
}

func printChatWelcome(args Args, client *api.Client) {
	fmt.Println(welcomeStyle.Render("lendbench assistant"))
	scope := "workbench"
	if args.ApplicationID != "" {
		scope = "application " + args.ApplicationID
	}
	fmt.Println(infoStyle.Render("Scope: " + scope + "  Backend: " + client.BaseURL()))
	fmt.Println(infoStyle.Render("Type /help for commands, /quit to exit."))
	fmt.Println()
}

// handleChatCommand processes a slash command. It returns done=true when the
// REPL should exit and a non-nil session when /new replaced the session.
func handleChatCommand(cmd string, sess *session.Session, args Args, client *api.Client) (bool, *session.Session) {
	parts := strings.Fields(cmd)
	switch parts[0] {
	case "/quit", "/q", "/exit":
		fmt.Println(infoStyle.Render("Bye."))
		return true, nil

	case "/help", "/h":
		fmt.Println(commandStyle.Render("/history") + "  show server-side history for this session")
		fmt.Println(commandStyle.Render("/new") + "      start a fresh session")
		fmt.Println(commandStyle.Render("/quit") + "     exit chat")
		return false, nil

	case "/new":
		fresh := newSession(args.ApplicationID)
		fmt.Println(infoStyle.Render("Started session " + fresh.ID()))
		return false, fresh

	case "/history":
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultConfig().Timeout)
		history, err := client.GetChatHistory(ctx, sess.ID())
		cancel()
		if err != nil {
			fmt.Println(warningStyle.Render("Could not fetch history: " + err.Error()))
			return false, nil
		}
		if len(history) == 0 {
			fmt.Println(infoStyle.Render("No messages in this session yet."))
			return false, nil
		}
		for _, msg := range history {
			printHistoryMessage(msg)
		}
		return false, nil

	default:
		fmt.Println(warningStyle.Render("Unknown command: " + parts[0] + " (try /help)"))
		return false, nil
	}
}

func printHistoryMessage(msg model.ChatMessage) {
	label := promptStyle.Render(msg.Role.DisplayName() + ":")
	if msg.Role == model.RoleAssistant {
		fmt.Println(label)
		fmt.Println(renderMarkdown(msg.Content))
	} else {
		fmt.Println(label + " " + msg.Content)
	}
}
