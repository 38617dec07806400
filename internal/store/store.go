// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the canonical in-memory chat collection.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/voxlay/vox-tui/internal/model"
	"github.com/voxlay/vox-tui/internal/util"
)

// =============================================================================
// CHAT STORE
// =============================================================================

// ChatStore owns the canonical list of chats. It is the single source of
// truth for durable state; ephemeral UI state (menus, edit buffers, theme
// flags) never lives here.
//
// All operations are synchronous and atomic from the caller's perspective.
// The mutex makes the store safe to touch from completion callbacks even
// though the UI drives everything from one update loop.
type ChatStore struct {
	mu    sync.Mutex
	chats map[string]*model.Chat
}

// New creates an empty chat store.
func New() *ChatStore {
	return &ChatStore{
		chats: make(map[string]*model.Chat),
	}
}

// =============================================================================
// LIST OPERATIONS
// =============================================================================

// List returns clones of all chats, most recent activity first.
func (s *ChatStore) List() []*model.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Chat, 0, len(s.chats))
	for _, c := range s.chats {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivityAt.After(out[j].LastActivityAt)
	})
	return out
}

// Filter returns chats whose title contains the query, case-insensitive.
// An empty query returns all chats in List order.
func (s *ChatStore) Filter(query string) []*model.Chat {
	all := s.List()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}

	var results []*model.Chat
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Title), query) {
			results = append(results, c)
		}
	}
	return results
}

// Count returns the number of chats.
func (s *ChatStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chats)
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// Get retrieves a clone of a chat by ID.
func (s *ChatStore) Get(id string) (*model.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[id]
	if !ok {
		return nil, ErrChatNotFound
	}
	return c.Clone(), nil
}

// =============================================================================
// MUTATION OPERATIONS
// =============================================================================

// Create allocates a new chat from its initial messages and returns a
// clone of it. The title is derived from the first user message.
func (s *ChatStore) Create(initial []model.Message) *model.Chat {
	chat := model.NewChat(initial)

	s.mu.Lock()
	s.chats[chat.ID] = chat
	s.mu.Unlock()

	return chat.Clone()
}

// Append concatenates messages onto an existing chat. Prior messages are
// never lost or reordered; LastActivityAt is bumped.
func (s *ChatStore) Append(id string, msgs ...model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[id]
	if !ok {
		return ErrChatNotFound
	}
	c.Append(msgs...)
	return nil
}

// maxTitleRunes caps stored titles at the same length the rename input
// enforces, so direct API callers cannot exceed what the UI allows.
const maxTitleRunes = 200

// Rename sets a chat's title. Control characters are stripped and the
// result is capped at maxTitleRunes; an empty title is accepted and
// rendered with a placeholder by the UI.
func (s *ChatStore) Rename(id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[id]
	if !ok {
		return ErrChatNotFound
	}
	c.Title = util.TruncateRunesNoEllipsis(util.StripControl(title), maxTitleRunes)
	return nil
}

// ToggleStar flips a chat's starred flag.
func (s *ChatStore) ToggleStar(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[id]
	if !ok {
		return ErrChatNotFound
	}
	c.Starred = !c.Starred
	return nil
}

// Delete removes a chat. Deletion is idempotent: deleting an absent ID is
// a no-op, not an error. Returns true when a chat was actually removed.
func (s *ChatStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chats[id]; !ok {
		return false
	}
	delete(s.chats, id)
	return true
}

// Clear removes all chats.
func (s *ChatStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = make(map[string]*model.Chat)
}

// =============================================================================
// DEMO SEED
// =============================================================================

// SeedDemo loads the starter chats shown on first launch.
func (s *ChatStore) SeedDemo() {
	now := time.Now()
	seeds := []struct {
		title   string
		age     time.Duration
		starred bool
	}{
		{"Understanding machine learning", time.Hour, true},
		{"React best practices", 24 * time.Hour, false},
		{"Writing a business proposal", 48 * time.Hour, false},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seed := range seeds {
		chat := model.NewChat(nil)
		chat.Title = seed.title
		chat.CreatedAt = now.Add(-seed.age)
		chat.LastActivityAt = chat.CreatedAt
		chat.Starred = seed.starred
		s.chats[chat.ID] = chat
	}
}
