// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	msg := NewUserMessage("Hello")

	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, RoleUser)
	}
	if msg.Content != "Hello" {
		t.Errorf("Content = %q, want %q", msg.Content, "Hello")
	}
	if !strings.HasPrefix(msg.ID, "msg_") {
		t.Errorf("ID should start with 'msg_', got %q", msg.ID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestMessageIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewAssistantMessage("x")
		if seen[msg.ID] {
			t.Fatalf("Duplicate message ID: %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestMessagePreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		maxLen  int
		want    string
	}{
		{"short", "Hello", 10, "Hello"},
		{"exact", "Hello", 5, "Hello"},
		{"truncated", "Hello world", 8, "Hello..."},
		{"tiny max", "Hello", 3, "Hel"},
		{"unicode", "héllo wörld éxtra", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewUserMessage(tt.content)
			if got := msg.Preview(tt.maxLen); got != tt.want {
				t.Errorf("Preview(%d) = %q, want %q", tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestRoleDisplayName(t *testing.T) {
	if got := RoleUser.DisplayName(); got != "You" {
		t.Errorf("RoleUser.DisplayName() = %q, want %q", got, "You")
	}
	if got := RoleAssistant.DisplayName(); got != "VOX" {
		t.Errorf("RoleAssistant.DisplayName() = %q, want %q", got, "VOX")
	}
}

// =============================================================================
// CHAT TESTS
// =============================================================================

func TestNewChat(t *testing.T) {
	msgs := []Message{NewUserMessage("Explain goroutines")}
	chat := NewChat(msgs)

	if !strings.HasPrefix(chat.ID, "chat_") {
		t.Errorf("ID should start with 'chat_', got %q", chat.ID)
	}
	if chat.Title != "Explain goroutines" {
		t.Errorf("Title = %q, want %q", chat.Title, "Explain goroutines")
	}
	if chat.MessageCount() != 1 {
		t.Errorf("MessageCount = %d, want 1", chat.MessageCount())
	}
	if chat.CreatedAt.IsZero() || chat.LastActivityAt.IsZero() {
		t.Error("Timestamps should be set")
	}
	if chat.Starred {
		t.Error("New chats should not be starred")
	}
}

func TestNewChatCopiesInitialMessages(t *testing.T) {
	msgs := []Message{NewUserMessage("original")}
	chat := NewChat(msgs)

	msgs[0].Content = "mutated"
	if chat.Messages[0].Content != "original" {
		t.Error("NewChat should copy the initial slice, not alias it")
	}
}

func TestNewChatEmptyTitle(t *testing.T) {
	chat := NewChat(nil)
	if chat.Title != "New chat" {
		t.Errorf("Title = %q, want %q", chat.Title, "New chat")
	}
}

func TestDeriveTitle(t *testing.T) {
	long := "Explain quantum tunneling in simple terms for a curious teenager"
	want := string([]rune(long)[:TitleMaxRunes]) + "..."

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short stays", "Hello there", "Hello there"},
		{"exactly 40", strings.Repeat("a", 40), strings.Repeat("a", 40)},
		{"over 40 truncated", long, want},
		{"newlines flattened", "line one\nline two", "line one line two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTitle(tt.content); got != tt.want {
				t.Errorf("DeriveTitle(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestChatAppendBumpsActivity(t *testing.T) {
	chat := NewChat([]Message{NewUserMessage("hi")})
	before := chat.LastActivityAt
	created := chat.CreatedAt

	chat.Append(NewAssistantMessage("hello"))

	if chat.LastActivityAt.Before(before) {
		t.Error("Append should not move LastActivityAt backwards")
	}
	if !chat.CreatedAt.Equal(created) {
		t.Error("Append should not change CreatedAt")
	}
	if chat.MessageCount() != 2 {
		t.Errorf("MessageCount = %d, want 2", chat.MessageCount())
	}
}

func TestChatClone(t *testing.T) {
	chat := NewChat([]Message{NewUserMessage("hi")})
	clone := chat.Clone()

	clone.Append(NewAssistantMessage("hello"))
	clone.Title = "renamed"

	if chat.MessageCount() != 1 {
		t.Errorf("Original MessageCount = %d, want 1 after clone mutation", chat.MessageCount())
	}
	if chat.Title == "renamed" {
		t.Error("Clone should not share the title with the original")
	}
}

func TestChatDisplayTitle(t *testing.T) {
	chat := NewChat([]Message{NewUserMessage("hi")})
	chat.Title = "   "
	if got := chat.DisplayTitle(); got != "Untitled chat" {
		t.Errorf("DisplayTitle = %q, want %q", got, "Untitled chat")
	}
}
