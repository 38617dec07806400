// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chats and messages.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TitleMaxRunes is the maximum rune length of an auto-derived chat title.
// Longer first messages are truncated with an ellipsis marker.
const TitleMaxRunes = 40

// =============================================================================
// CHAT TYPE
// =============================================================================

// Chat holds a complete conversation with history and metadata.
//
// CreatedAt is set once at creation. LastActivityAt is bumped whenever
// messages are appended, so chat lists can sort by recency rather than
// creation order.
type Chat struct {
	// Identity
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`

	// Messages, insertion order = chronological order
	Messages []Message `json:"messages"`

	// Starred marks a chat as a favorite in the sidebar.
	Starred bool `json:"starred,omitempty"`
}

// NewChat creates a chat from its initial messages. The title is derived
// from the first user message, or "New chat" if there is none.
func NewChat(initial []Message) *Chat {
	now := time.Now()
	c := &Chat{
		ID:             generateChatID(),
		CreatedAt:      now,
		LastActivityAt: now,
		Messages:       make([]Message, len(initial)),
	}
	copy(c.Messages, initial)

	for _, msg := range c.Messages {
		if msg.Role == RoleUser {
			c.Title = DeriveTitle(msg.Content)
			break
		}
	}
	if c.Title == "" {
		c.Title = "New chat"
	}
	return c
}

// =============================================================================
// CHAT METHODS
// =============================================================================

// Append adds messages to the chat and bumps LastActivityAt.
func (c *Chat) Append(msgs ...Message) {
	c.Messages = append(c.Messages, msgs...)
	c.LastActivityAt = time.Now()
}

// LastMessage returns the most recent message, or a zero Message if empty.
func (c *Chat) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// MessageCount returns the number of messages.
func (c *Chat) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Chat) IsEmpty() bool {
	return len(c.Messages) == 0
}

// DisplayTitle returns the title, or a placeholder when it was renamed to
// an empty string.
func (c *Chat) DisplayTitle() string {
	if strings.TrimSpace(c.Title) == "" {
		return "Untitled chat"
	}
	return c.Title
}

// Clone creates a deep copy of the chat. Callers that hold a Clone may
// mutate it freely without affecting the store's copy.
func (c *Chat) Clone() *Chat {
	clone := *c
	clone.Messages = make([]Message, len(c.Messages))
	copy(clone.Messages, c.Messages)
	return &clone
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// DeriveTitle builds a chat title from message content: the first
// TitleMaxRunes runes, with "..." appended when the content is longer.
// Newlines are flattened so multi-line messages stay on one sidebar row.
func DeriveTitle(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.ReplaceAll(content, "\r", "")
	runes := []rune(content)
	if len(runes) <= TitleMaxRunes {
		return content
	}
	return string(runes[:TitleMaxRunes]) + "..."
}

// generateChatID creates a unique chat ID.
func generateChatID() string {
	return "chat_" + uuid.NewString()
}
