// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Internal Bubble Tea messages passed between Update cycles.
package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxlay/vox-tui/internal/config"
	"github.com/voxlay/vox-tui/internal/controller"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// replyMsg carries a completed assistant response back into the Update loop.
type replyMsg struct {
	Completion controller.Completion
}

// copyFlashClearMsg removes the "Copied" indicator from a message.
type copyFlashClearMsg struct {
	MessageID string
}

// statusClearMsg resets the transient status bar text.
type statusClearMsg struct {
	// Seq guards against clearing a newer status with an older timer.
	Seq uint64
}

// configReloadedMsg is sent when the config file changes on disk.
type configReloadedMsg struct {
	Config *config.Config
}

// ConfigReloaded wraps a freshly loaded config as a message the program
// can inject from the config watcher.
func ConfigReloaded(cfg *config.Config) tea.Msg {
	return configReloadedMsg{Config: cfg}
}

// =============================================================================
// COMMANDS
// =============================================================================

// awaitReply wraps a completion thunk from the controller as a tea.Cmd.
// The thunk blocks for the simulated response delay, so it runs on the
// Bubble Tea command goroutine rather than in Update.
func awaitReply(wait func() controller.Completion) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{Completion: wait()}
	}
}

// clearCopyFlash expires the "Copied" indicator after a short interval.
func clearCopyFlash(messageID string) tea.Cmd {
	return tea.Tick(copyFlashDuration, func(time.Time) tea.Msg {
		return copyFlashClearMsg{MessageID: messageID}
	})
}

// clearStatus expires transient status text after a few seconds.
func clearStatus(seq uint64) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{Seq: seq}
	})
}

const (
	copyFlashDuration = 2 * time.Second
	statusDuration    = 4 * time.Second
)
