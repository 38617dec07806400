// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/voxlay/vox-tui/internal/model"
)

// =============================================================================
// VIEW STATE HELPERS
// =============================================================================

// refreshViewport rebuilds the transcript content. When follow is true the
// viewport scrolls to the newest message.
func (m *Model) refreshViewport(follow bool) {
	if !m.ready {
		return
	}
	msgs := m.activeMessages()
	if len(msgs) == 0 {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderer.Render(msg, m.copiedFlashID))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	if follow {
		m.viewport.GotoBottom()
	}
}

// filteredChats returns the sidebar rows honoring the active search query.
func (m *Model) filteredChats() []*model.Chat {
	query := ""
	if m.searchOpen {
		query = m.searchInput.Value()
	}
	return m.ctrl.Store().Filter(query)
}

// clampSidebarIndex keeps the selection inside the filtered list.
func (m *Model) clampSidebarIndex(n int) {
	if n == 0 {
		m.sidebarIndex = 0
		return
	}
	if m.sidebarIndex >= n {
		m.sidebarIndex = n - 1
	}
	if m.sidebarIndex < 0 {
		m.sidebarIndex = 0
	}
}

// selectedChat returns the chat under the sidebar cursor, or nil.
func (m *Model) selectedChat() *model.Chat {
	chats := m.filteredChats()
	if len(chats) == 0 || m.sidebarIndex < 0 || m.sidebarIndex >= len(chats) {
		return nil
	}
	return chats[m.sidebarIndex]
}

// relativeTime formats how long ago t was, relative to now.
func relativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// lastAssistantMessage returns the newest assistant message in the active
// session, or a zero Message and false when there is none.
func lastAssistantMessage(msgs []model.Message) (model.Message, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == model.RoleAssistant {
			return msgs[i], true
		}
	}
	return model.Message{}, false
}
