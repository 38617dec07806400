// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Update loop: key routing, completion handling, and layout.
package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxlay/vox-tui/internal/clipboard"
	"github.com/voxlay/vox-tui/internal/controller"
	"github.com/voxlay/vox-tui/internal/ui/styles"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case replyMsg:
		return m.handleReply(msg)

	case copyFlashClearMsg:
		if m.copiedFlashID == msg.MessageID {
			m.copiedFlashID = ""
			m.refreshViewport(false)
		}
		return m, nil

	case statusClearMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil

	case configReloadedMsg:
		return m.handleConfigReload(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.thinking, cmd = m.thinking.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleResize recomputes the layout for a new terminal size.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// One line each for the status bar and the activity line, three for
	// the input area.
	vpHeight := m.height - 5
	if vpHeight < 3 {
		vpHeight = 3
	}
	vpWidth := m.contentWidth()

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}

	m.input.Width = vpWidth - 6
	m.searchInput.Width = sidebarWidth - 6
	m.renderer.SetWidth(vpWidth)
	m.refreshViewport(true)
	return m, nil
}

// handleReply applies a finished assistant completion. A completion the
// controller drops (stale generation, cancelled context, deleted chat)
// passes without comment: the session that asked for it is gone.
func (m *Model) handleReply(msg replyMsg) (tea.Model, tea.Cmd) {
	m.ctrl.Resolve(msg.Completion)
	if !m.ctrl.Pending() {
		m.thinking.Stop()
	}
	m.refreshViewport(true)
	return m, nil
}

// handleConfigReload applies settings that changed on disk without
// touching in-flight conversation state.
func (m *Model) handleConfigReload(msg configReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}
	m.cfg.UI = msg.Config.UI
	m.cfg.Chat = msg.Config.Chat
	m.cfg.Profile = msg.Config.Profile
	m.applyTheme(styles.Variant(m.cfg.UI.Theme))
	return m, m.setStatus("config reloaded", false)
}

// =============================================================================
// KEY ROUTING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Modal panels capture all input while open.
	if m.modal != modalNone {
		return m.handleModalKey(msg)
	}

	// Inline rename captures all input while active.
	if m.editingID != "" {
		return m.handleRenameKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NewChat):
		m.ctrl.StartNewSession()
		m.focus = focusInput
		m.input.Focus()
		m.openMenuID = ""
		m.refreshViewport(true)
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.sidebarOpen = !m.sidebarOpen
		if !m.sidebarOpen && m.focus == focusSidebar {
			m.focus = focusInput
			m.input.Focus()
		}
		return m.handleResize(tea.WindowSizeMsg{Width: m.width, Height: m.height})

	case key.Matches(msg, m.keys.FocusSidebar):
		return m.toggleFocus()

	case key.Matches(msg, m.keys.CodeLibrary):
		return m.openModal(modalCodeLibrary)

	case key.Matches(msg, m.keys.Projects):
		return m.openModal(modalProjects)

	case key.Matches(msg, m.keys.Profile):
		return m.openModal(modalProfile)

	case key.Matches(msg, m.keys.Upgrade):
		return m.openModal(modalPricing)

	case key.Matches(msg, m.keys.Settings):
		return m.openModal(modalSettings)

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(nextVariant(styles.Variant(m.cfg.UI.Theme)))
		return m, m.setStatus("theme: "+m.cfg.UI.Theme, false)

	case key.Matches(msg, m.keys.GhostMode):
		if styles.Variant(m.cfg.UI.Theme) == styles.VariantGhost {
			m.applyTheme(styles.VariantDark)
		} else {
			m.applyTheme(styles.VariantGhost)
		}
		return m, m.setStatus("theme: "+m.cfg.UI.Theme, false)

	case key.Matches(msg, m.keys.CopyLast):
		return m.copyLastReply()
	}

	if m.focus == focusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleInputKey(msg)
}

// toggleFocus moves focus between the input and the sidebar.
func (m *Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		if !m.sidebarOpen {
			m.sidebarOpen = true
		}
		m.focus = focusSidebar
		m.input.Blur()
		return m, nil
	}
	m.focus = focusInput
	m.searchInput.Blur()
	m.input.Focus()
	return m, textinput.Blink
}

// =============================================================================
// MAIN INPUT
// =============================================================================

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.PageUp):
		m.viewport.LineUp(3)
		return m, nil

	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.PageDown):
		m.viewport.LineDown(3)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the composed message through the controller.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	_, wait, err := m.ctrl.Send(text)
	if err != nil {
		if controllerErrIsSilent(err) {
			return m, nil
		}
		return m, m.setStatus(err.Error(), true)
	}

	m.input.SetValue("")
	m.refreshViewport(true)
	return m, tea.Batch(awaitReply(wait), m.thinking.Start())
}

// copyLastReply puts the newest assistant message on the system clipboard.
func (m *Model) copyLastReply() (tea.Model, tea.Cmd) {
	last, ok := lastAssistantMessage(m.activeMessages())
	if !ok {
		return m, m.setStatus("nothing to copy", true)
	}
	if !clipboard.Available() {
		return m, m.setStatus("clipboard unavailable", true)
	}
	if err := clipboard.Copy(last.Content); err != nil {
		return m, m.setStatus("clipboard copy failed", true)
	}
	m.copiedFlashID = last.ID
	m.refreshViewport(false)
	return m, tea.Batch(clearCopyFlash(last.ID), m.setStatus("copied to clipboard", false))
}

// =============================================================================
// SIDEBAR
// =============================================================================

func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search box eats keystrokes while it has focus.
	if m.searchOpen && m.searchInput.Focused() {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.searchOpen = false
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.sidebarIndex = 0
			return m, nil
		case key.Matches(msg, m.keys.Open):
			m.searchInput.Blur()
			m.sidebarIndex = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.sidebarIndex = 0
		return m, cmd
	}

	chats := m.filteredChats()
	m.clampSidebarIndex(len(chats))

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchOpen = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Cancel):
		if m.openMenuID != "" {
			m.openMenuID = ""
			return m, nil
		}
		if m.searchOpen {
			m.searchOpen = false
			m.searchInput.SetValue("")
			return m, nil
		}
		return m.toggleFocus()

	case key.Matches(msg, m.keys.Up):
		if m.sidebarIndex > 0 {
			m.sidebarIndex--
			m.openMenuID = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.sidebarIndex < len(chats)-1 {
			m.sidebarIndex++
			m.openMenuID = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		chat := m.selectedChat()
		if chat == nil {
			return m, nil
		}
		if err := m.ctrl.SelectChat(chat.ID); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		m.openMenuID = ""
		m.focus = focusInput
		m.input.Focus()
		m.refreshViewport(true)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Menu):
		chat := m.selectedChat()
		if chat == nil {
			return m, nil
		}
		// Opening a row menu closes any other open menu.
		if m.openMenuID == chat.ID {
			m.openMenuID = ""
		} else {
			m.openMenuID = chat.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		chat := m.selectedChat()
		if chat == nil {
			return m, nil
		}
		m.openMenuID = ""
		m.editingID = chat.ID
		m.editInput.SetValue(chat.Title)
		m.editInput.CursorEnd()
		m.editInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Star):
		chat := m.selectedChat()
		if chat == nil {
			return m, nil
		}
		m.openMenuID = ""
		m.ctrl.Store().ToggleStar(chat.ID)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		chat := m.selectedChat()
		if chat == nil {
			return m, nil
		}
		m.openMenuID = ""
		m.ctrl.DeleteChat(chat.ID)
		m.clampSidebarIndex(len(m.filteredChats()))
		m.refreshViewport(true)
		return m, m.setStatus("chat deleted", false)
	}

	return m, nil
}

// handleRenameKey drives the inline title editor.
func (m *Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editingID = ""
		m.editInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		id := m.editingID
		m.editingID = ""
		m.editInput.Blur()
		if err := m.ctrl.Store().Rename(id, m.editInput.Value()); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// =============================================================================
// HELPERS
// =============================================================================

// nextVariant cycles dark -> light -> ghost -> dark.
func nextVariant(v styles.Variant) styles.Variant {
	switch v {
	case styles.VariantDark:
		return styles.VariantLight
	case styles.VariantLight:
		return styles.VariantGhost
	default:
		return styles.VariantDark
	}
}

// controllerErrIsSilent reports whether a send error needs no status line.
// An empty submission is a no-op rather than a failure.
func controllerErrIsSilent(err error) bool {
	return errors.Is(err, controller.ErrEmptyMessage)
}
