// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Sidebar rendering: chat list, search, inline rename, and row menus.
package chat

import (
	"strings"

	"github.com/voxlay/vox-tui/internal/model"
	"github.com/voxlay/vox-tui/internal/util"
)

// renderSidebar draws the chat list column.
func (m *Model) renderSidebar(height int) string {
	inner := sidebarWidth - 2

	var b strings.Builder
	b.WriteString(m.theme.SidebarHeader.Render("VOXLAY"))
	b.WriteString("\n")
	b.WriteString(m.theme.SidebarRow.Render("+ New chat (C-n)"))
	b.WriteString("\n")

	if m.searchOpen {
		b.WriteString(m.theme.SearchBox.Width(inner - 2).Render(m.searchInput.View()))
		b.WriteString("\n")
	}

	chats := m.filteredChats()
	if len(chats) == 0 {
		b.WriteString("\n")
		if m.searchOpen && m.searchInput.Value() != "" {
			b.WriteString(m.theme.SidebarRow.Render("No matches"))
		} else {
			b.WriteString(m.theme.SidebarRow.Render("No chats yet"))
		}
	}

	for i, chat := range chats {
		b.WriteString(m.renderSidebarRow(chat, i, inner))
	}

	return m.theme.Sidebar.
		Width(sidebarWidth - 1).
		Height(height).
		Render(b.String())
}

// renderSidebarRow draws one chat entry, including its inline editor or
// action menu when one is open for it.
func (m *Model) renderSidebarRow(chat *model.Chat, index, inner int) string {
	var b strings.Builder

	if m.editingID == chat.ID {
		b.WriteString(m.theme.SearchBox.Width(inner - 2).Render(m.editInput.View()))
		b.WriteString("\n")
		return b.String()
	}

	title := chat.DisplayTitle()
	badge := ""
	if chat.Starred {
		badge = m.theme.SidebarStarred.Render("★ ")
	}
	line := badge + util.TruncateWidth(title, inner-4)

	style := m.theme.SidebarRow
	selected := m.focus == focusSidebar && index == m.sidebarIndex
	if chat.ID == m.ctrl.ActiveChatID() || selected {
		style = m.theme.SidebarActive
	}
	b.WriteString(style.Width(inner).Render(line))
	b.WriteString("\n")

	if !m.cfg.UI.CompactSidebar {
		meta := relativeTime(m.now(), chat.LastActivityAt)
		if !chat.IsEmpty() {
			last, _ := chat.LastMessage()
			meta += " · " + last.Preview(40)
		}
		b.WriteString(m.theme.MessageMeta.Render("  " + util.TruncateWidth(meta, inner-2)))
		b.WriteString("\n")
	}

	if m.openMenuID == chat.ID {
		menu := strings.Join([]string{
			"r rename",
			"s star",
			"d delete",
		}, "\n")
		b.WriteString(m.theme.SidebarMenu.Render(menu))
		b.WriteString("\n")
	}

	return b.String()
}
