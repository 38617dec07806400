// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxlay/vox-tui/internal/model"
	"github.com/voxlay/vox-tui/internal/responder"
	"github.com/voxlay/vox-tui/internal/store"
)

func newTestController() *Controller {
	rsp := responder.New(
		responder.WithDelay(time.Millisecond, 0),
		responder.WithCatalog([]string{"canned reply"}),
	)
	return New(store.New(), rsp)
}

// =============================================================================
// SEND TESTS
// =============================================================================

func TestSendCreatesChatLazily(t *testing.T) {
	c := newTestController()

	require.Equal(t, "", c.ActiveChatID(), "new session should be unbound")
	require.Equal(t, 0, c.Store().Count(), "no Chat record before first send")

	userMsg, thunk, err := c.Send("  Explain goroutines  ")
	require.NoError(t, err)
	require.NotNil(t, thunk)

	assert.Equal(t, "Explain goroutines", userMsg.Content, "text is trimmed")
	assert.Equal(t, model.RoleUser, userMsg.Role)

	// The chat exists in the store before the responder completes.
	require.NotEqual(t, "", c.ActiveChatID())
	chat, err := c.Store().Get(c.ActiveChatID())
	require.NoError(t, err)
	assert.Equal(t, "Explain goroutines", chat.Title)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, userMsg.ID, chat.Messages[0].ID)
}

func TestSendRejectsEmptyInput(t *testing.T) {
	c := newTestController()

	for _, text := range []string{"", "   ", "\n\t "} {
		_, _, err := c.Send(text)
		assert.ErrorIs(t, err, ErrEmptyMessage, "input %q", text)
	}
	assert.Equal(t, 0, c.Store().Count(), "no mutation on rejected input")
	assert.Empty(t, c.Messages())
}

func TestSendRejectsWhilePending(t *testing.T) {
	c := newTestController()

	_, thunk, err := c.Send("a")
	require.NoError(t, err)
	require.True(t, c.Pending())

	_, _, err = c.Send("b")
	assert.ErrorIs(t, err, ErrSendPending)

	// Exactly one user message committed.
	chat, err := c.Store().Get(c.ActiveChatID())
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, "a", chat.Messages[0].Content)

	// After the first response resolves, sending works again.
	require.True(t, c.Resolve(thunk()))
	require.False(t, c.Pending())

	_, _, err = c.Send("b")
	assert.NoError(t, err)
}

func TestSendAppendsToExistingChat(t *testing.T) {
	c := newTestController()

	_, thunk, err := c.Send("first")
	require.NoError(t, err)
	require.True(t, c.Resolve(thunk()))

	_, thunk, err = c.Send("second")
	require.NoError(t, err)
	require.True(t, c.Resolve(thunk()))

	chat, err := c.Store().Get(c.ActiveChatID())
	require.NoError(t, err)
	require.Len(t, chat.Messages, 4)

	wantRoles := []model.Role{model.RoleUser, model.RoleAssistant, model.RoleUser, model.RoleAssistant}
	for i, want := range wantRoles {
		assert.Equal(t, want, chat.Messages[i].Role, "message %d", i)
	}
	assert.Equal(t, "first", chat.Messages[0].Content)
	assert.Equal(t, "second", chat.Messages[2].Content)
}

func TestResolveUpdatesBufferAndStore(t *testing.T) {
	c := newTestController()

	_, thunk, err := c.Send("hello")
	require.NoError(t, err)

	comp := thunk()
	require.NoError(t, comp.Err)
	require.True(t, c.Resolve(comp))

	msgs := c.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "canned reply", msgs[1].Content)

	chat, err := c.Store().Get(c.ActiveChatID())
	require.NoError(t, err)
	require.Len(t, chat.Messages, 2)
	assert.Equal(t, msgs[1].ID, chat.Messages[1].ID, "buffer mirrors store")
}

// =============================================================================
// SESSION CHANGE / STALENESS TESTS
// =============================================================================

func TestNewSessionDropsInFlightReply(t *testing.T) {
	c := New(store.New(), responder.New(responder.WithDelay(5*time.Second, 0)))

	_, thunk, err := c.Send("slow question")
	require.NoError(t, err)
	chatID := c.ActiveChatID()

	done := make(chan Completion, 1)
	go func() { done <- thunk() }()

	c.StartNewSession()
	assert.False(t, c.Pending(), "session reset clears pending")

	select {
	case comp := <-done:
		assert.Error(t, comp.Err, "cancelled context should abort the responder wait")
		assert.False(t, c.Resolve(comp), "stale completion must be dropped")
	case <-time.After(2 * time.Second):
		t.Fatal("responder did not return after session reset")
	}

	// The user message stays durable; no assistant reply was attached.
	chat, err := c.Store().Get(chatID)
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, model.RoleUser, chat.Messages[0].Role)
}

func TestStaleCompletionNotAppliedToNewChat(t *testing.T) {
	c := newTestController()

	_, thunk, err := c.Send("first chat question")
	require.NoError(t, err)
	comp := thunk()
	require.NoError(t, comp.Err)

	// User switches away before the reply is applied.
	c.StartNewSession()
	_, thunk2, err := c.Send("second chat question")
	require.NoError(t, err)
	secondID := c.ActiveChatID()

	assert.False(t, c.Resolve(comp), "reply keyed to the old generation is dropped")

	require.True(t, c.Resolve(thunk2()))
	chat, err := c.Store().Get(secondID)
	require.NoError(t, err)
	require.Len(t, chat.Messages, 2, "only the second chat's own reply lands")
}

func TestResolveToleratesDeletedChat(t *testing.T) {
	c := newTestController()

	_, thunk, err := c.Send("doomed chat")
	require.NoError(t, err)
	comp := thunk()
	require.NoError(t, comp.Err)

	// Delete through the store directly so the session (and generation)
	// stay untouched, simulating the delete-while-pending race.
	c.Store().Delete(comp.ChatID)

	assert.False(t, c.Resolve(comp))
	assert.False(t, c.Pending(), "pending clears even when the reply is dropped")
}

func TestDeleteActiveChatResetsSession(t *testing.T) {
	c := newTestController()

	_, thunk, err := c.Send("hello")
	require.NoError(t, err)
	require.True(t, c.Resolve(thunk()))
	id := c.ActiveChatID()

	c.DeleteChat(id)

	assert.Equal(t, "", c.ActiveChatID())
	assert.Empty(t, c.Messages())
	assert.Equal(t, 0, c.Store().Count())

	// Idempotent, like the store delete.
	c.DeleteChat(id)
	assert.Equal(t, 0, c.Store().Count())
}

func TestDeleteInactiveChatKeepsSession(t *testing.T) {
	c := newTestController()

	_, thunk, err := c.Send("keep me")
	require.NoError(t, err)
	require.True(t, c.Resolve(thunk()))
	keepID := c.ActiveChatID()

	other := c.Store().Create([]model.Message{model.NewUserMessage("other")})
	c.DeleteChat(other.ID)

	assert.Equal(t, keepID, c.ActiveChatID())
	assert.Len(t, c.Messages(), 2)
}

// =============================================================================
// SELECT / ISOLATION TESTS
// =============================================================================

func TestSelectChatLoadsCopy(t *testing.T) {
	c := newTestController()

	chat := c.Store().Create([]model.Message{model.NewUserMessage("stored")})

	require.NoError(t, c.SelectChat(chat.ID))
	assert.Equal(t, chat.ID, c.ActiveChatID())

	// Mutating the returned buffer must not alter the store's copy.
	msgs := c.Messages()
	require.Len(t, msgs, 1)
	msgs[0].Content = "mutated"

	stored, err := c.Store().Get(chat.ID)
	require.NoError(t, err)
	assert.Equal(t, "stored", stored.Messages[0].Content)
}

func TestSelectChatNotFound(t *testing.T) {
	c := newTestController()
	err := c.SelectChat("nope")
	assert.ErrorIs(t, err, store.ErrChatNotFound)
	assert.ErrorIs(t, c.LastError(), store.ErrChatNotFound)
}

func TestSendRecreatesChatDeletedUnderSession(t *testing.T) {
	c := newTestController()

	chat := c.Store().Create([]model.Message{model.NewUserMessage("old")})
	require.NoError(t, c.SelectChat(chat.ID))
	c.Store().Delete(chat.ID)

	_, thunk, err := c.Send("still here")
	require.NoError(t, err)
	require.NotEqual(t, chat.ID, c.ActiveChatID(), "a fresh chat is adopted")

	recreated, err := c.Store().Get(c.ActiveChatID())
	require.NoError(t, err)
	require.Len(t, recreated.Messages, 2, "full buffer is preserved")
	require.True(t, c.Resolve(thunk()))
}
