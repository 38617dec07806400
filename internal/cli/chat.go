// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the vox CLI.
//
// Handles the "vox chat" command which provides an interactive REPL for
// conversing with the assistant.
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /clear, /c          Clear conversation history
//   /history            Show conversation history
//   /model [name]       Show or switch model
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/voxlay/vox-tui/internal/config"
	"github.com/voxlay/vox-tui/internal/controller"
	"github.com/voxlay/vox-tui/internal/model"
	"github.com/voxlay/vox-tui/internal/responder"
	"github.com/voxlay/vox-tui/internal/store"
	"github.com/voxlay/vox-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
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

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.Dir()
	if err != nil {
		dir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dir, "chat_history"),
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt. Supports history
// navigation with arrow keys.
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

// SaveHistory persists command history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0o700); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
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
// SESSION STATE
// =============================================================================

// ChatSession holds the state for an interactive shell chat session.
type ChatSession struct {
	Config *config.Config
	Model  string
	Quiet  bool

	Ctrl     *controller.Controller
	InputCLI *ChatCLI

	renderer *glamour.TermRenderer
}

// NewChatSession creates a new shell chat session.
func NewChatSession(args Args) (*ChatSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnvOverrides()

	modelName := args.Model
	if modelName == "" {
		modelName = cfg.Chat.DefaultModel
	}

	base, jitter := cfg.ReplyDelay()
	ctrl := controller.New(store.New(), responder.New(responder.WithDelay(base, jitter)))

	width := TerminalWidth()
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		renderer = nil // fall back to plain output
	}

	return &ChatSession{
		Config:   cfg,
		Model:    modelName,
		Quiet:    args.Quiet,
		Ctrl:     ctrl,
		InputCLI: NewChatCLI(),
		renderer: renderer,
	}, nil
}

// renderReply formats an assistant message for the terminal.
func (s *ChatSession) renderReply(content string) string {
	if s.renderer == nil {
		return content
	}
	out, err := s.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChatCommand handles the "chat" command with full interactive support.
// With stdin piped, it answers the piped input once and exits.
func HandleChatCommand(args Args) error {
	if !IsTTY() {
		return handlePipedChat(args)
	}

	session, err := NewChatSession(args)
	if err != nil {
		return err
	}
	defer session.InputCLI.Close()

	if !session.Quiet {
		printWelcome(session)
	}

	prompt := promptStyle.Render("you> ")
	for {
		input, err := session.InputCLI.ReadInput(prompt)
		if err != nil {
			// Ctrl+D or Ctrl+C ends the session.
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "/") {
			if quit := session.handleSlashCommand(trimmed); quit {
				break
			}
			continue
		}

		if err := session.ask(trimmed); err != nil {
			fmt.Println(warningStyle.Render("error: " + err.Error()))
		}
	}

	if !session.Quiet {
		printSummary(session)
	}
	return nil
}

// handlePipedChat answers piped stdin as a single exchange.
func handlePipedChat(args Args) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	question := strings.TrimSpace(string(input))
	if question == "" {
		return fmt.Errorf("empty input")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnvOverrides()
	base, jitter := cfg.ReplyDelay()
	ctrl := controller.New(store.New(), responder.New(responder.WithDelay(base, jitter)))

	_, wait, err := ctrl.Send(question)
	if err != nil {
		return err
	}
	comp := wait()
	if !ctrl.Resolve(comp) {
		if comp.Err != nil {
			return comp.Err
		}
		return fmt.Errorf("response was dropped")
	}
	fmt.Println(comp.Message.Content)
	return nil
}

// ask sends one message and blocks until the reply arrives.
func (s *ChatSession) ask(text string) error {
	_, wait, err := s.Ctrl.Send(text)
	if err != nil {
		return err
	}

	comp := wait()
	if !s.Ctrl.Resolve(comp) {
		if comp.Err != nil {
			return comp.Err
		}
		return fmt.Errorf("response was dropped")
	}

	fmt.Println(s.renderReply(comp.Message.Content))
	return nil
}

// handleSlashCommand runs an interactive command. Returns true to exit.
func (s *ChatSession) handleSlashCommand(cmd string) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case "/quit", "/q", "/exit":
		return true

	case "/help", "/h":
		printHelp()

	case "/clear", "/c":
		s.Ctrl.StartNewSession()
		fmt.Println(infoStyle.Render("conversation cleared"))

	case "/history":
		msgs := s.Ctrl.Messages()
		if len(msgs) == 0 {
			fmt.Println(infoStyle.Render("no messages yet"))
			break
		}
		for _, m := range msgs {
			label := m.Role.DisplayName()
			if m.Role == model.RoleUser {
				fmt.Printf("%s %s\n", promptStyle.Render(label+":"), m.Content)
			} else {
				fmt.Printf("%s %s\n", commandStyle.Render(label+":"), m.Content)
			}
		}

	case "/model":
		if len(fields) > 1 {
			s.Model = fields[1]
			fmt.Println(infoStyle.Render("model switched to " + s.Model))
		} else {
			fmt.Println(infoStyle.Render("current model: " + s.Model))
		}

	default:
		fmt.Println(warningStyle.Render("unknown command " + fields[0] + " (try /help)"))
	}
	return false
}

func printWelcome(s *ChatSession) {
	fmt.Println(welcomeStyle.Render("VOXLAY chat"))
	fmt.Println(infoStyle.Render("model: " + s.Model))
	fmt.Println(infoStyle.Render("type /help for commands, /quit to exit"))
	fmt.Println()
}

func printHelp() {
	rows := [][2]string{
		{"/help, /h", "show this help"},
		{"/clear, /c", "clear conversation history"},
		{"/history", "show conversation history"},
		{"/model [name]", "show or switch model"},
		{"/quit, /q", "exit chat"},
	}
	for _, r := range rows {
		fmt.Printf("  %s  %s\n", commandStyle.Render(fmt.Sprintf("%-14s", r[0])), r[1])
	}
}

func printSummary(s *ChatSession) {
	n := len(s.Ctrl.Messages())
	if n == 0 {
		return
	}
	fmt.Println(infoStyle.Render(fmt.Sprintf("session ended: %d messages", n)))
}
