// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// View composition for the chat interface.
package chat

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/voxlay/vox-tui/internal/ui/components"
)

// disclaimer is shown in the status bar when nothing else claims it.
const disclaimer = "VOXLAY AI can make mistakes. Consider checking important information."

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	status := m.renderStatusBar()

	if m.modal != modalNone {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderModal(), status)
	}

	main := m.renderMainPane()
	if m.sidebarOpen {
		sidebar := m.renderSidebar(m.height - 1)
		main = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, status)
}

// renderMainPane draws the transcript (or welcome screen), the activity
// line, and the input area.
func (m *Model) renderMainPane() string {
	width := m.contentWidth()

	var transcript string
	if len(m.activeMessages()) == 0 && !m.thinking.Active() {
		transcript = components.Welcome(m.theme, m.cfg.Profile.Name, width, m.viewport.Height)
	} else {
		transcript = m.viewport.View()
	}

	activity := ""
	if m.thinking.Active() {
		activity = m.thinking.View()
	}

	input := m.theme.InputContainer.Width(width - 2).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, transcript, activity, input)
}

// renderStatusBar draws the bottom line: model name, transient status or
// the standing disclaimer, and key hints.
func (m *Model) renderStatusBar() string {
	status := m.status
	if status == "" {
		status = disclaimer
	}

	shortcuts := []components.Shortcut{
		{Key: "C-n", Desc: "new"},
		{Key: "tab", Desc: "chats"},
		{Key: "C-k", Desc: "code"},
		{Key: "C-s", Desc: "settings"},
		{Key: "C-c", Desc: "quit"},
	}
	return components.StatusBar(m.theme, m.width, m.selectedModel, status, m.statusIsErr, shortcuts)
}
