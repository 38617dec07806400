// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxlay/vox-tui/internal/model"
	"github.com/voxlay/vox-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MessageRenderer renders conversation messages for the viewport.
// Assistant messages go through glamour so the canned markdown (bold
// runs, lists) displays properly; user messages render as plain bubbles.
type MessageRenderer struct {
	theme *styles.Theme
	width int

	mu       sync.Mutex
	markdown *glamour.TermRenderer

	// ShowTimestamps adds an HH:MM suffix under each message.
	ShowTimestamps bool
}

// NewMessageRenderer creates a renderer for the given theme and width.
func NewMessageRenderer(theme *styles.Theme, width int) *MessageRenderer {
	return &MessageRenderer{theme: theme, width: width}
}

// SetWidth updates the wrap width and invalidates the markdown renderer.
func (r *MessageRenderer) SetWidth(width int) {
	if width == r.width {
		return
	}
	r.width = width
	r.mu.Lock()
	r.markdown = nil
	r.mu.Unlock()
}

// Render renders one message, including the copied flash when flashID
// matches the message.
func (r *MessageRenderer) Render(msg model.Message, flashID string) string {
	var body string
	switch msg.Role {
	case model.RoleUser:
		width := r.width * 85 / 100
		body = r.theme.UserBubble.Width(width).Render(msg.Content)
		body = lipgloss.PlaceHorizontal(r.width, lipgloss.Right, body)
	case model.RoleAssistant:
		body = r.theme.AssistantBubble.Render(r.renderMarkdown(msg.Content))
	default:
		body = msg.Content
	}

	var meta []string
	if r.ShowTimestamps {
		meta = append(meta, msg.Timestamp.Format("15:04"))
	}
	if flashID != "" && flashID == msg.ID {
		meta = append(meta, r.theme.CopiedFlash.Render("Copied"))
	}
	if len(meta) > 0 {
		body += "\n" + r.theme.MessageMeta.Render(strings.Join(meta, "  "))
	}
	return body
}

// renderMarkdown renders assistant content through glamour, falling back
// to the raw text on error.
func (r *MessageRenderer) renderMarkdown(content string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.markdown == nil {
		wrap := r.width - 2
		if wrap < 20 {
			wrap = 20
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return content
		}
		r.markdown = renderer
	}

	out, err := r.markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
