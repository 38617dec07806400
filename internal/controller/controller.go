// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller orchestrates the active chat session.
package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/voxlay/vox-tui/internal/model"
	"github.com/voxlay/vox-tui/internal/responder"
	"github.com/voxlay/vox-tui/internal/store"
)

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller mediates between the transient active session (current
// message buffer plus optional active chat ID) and the chat store.
//
// Ordering guarantees:
//   - the user message is committed to the store before the responder
//     is invoked, so an abandoned in-flight reply never loses user input;
//   - at most one send is in flight per session (ErrSendPending);
//   - every send is keyed by a generation token. Session changes bump the
//     generation and cancel the in-flight responder, so stale completions
//     are dropped instead of being misrouted into whatever chat happens
//     to be active when they arrive.
type Controller struct {
	mu        sync.Mutex
	store     *store.ChatStore
	responder *responder.Responder

	// Active session
	activeChatID string
	buffer       []model.Message

	// In-flight state
	pending    bool
	generation uint64
	cancel     context.CancelFunc

	lastErr error
}

// Completion is the result of a responder invocation, tagged with the
// chat and generation it was started for.
type Completion struct {
	ChatID     string
	Generation uint64
	Message    model.Message
	Err        error
}

// New creates a controller over the given store and responder.
func New(st *store.ChatStore, rsp *responder.Responder) *Controller {
	return &Controller{
		store:     st,
		responder: rsp,
	}
}

// =============================================================================
// SESSION LIFECYCLE
// =============================================================================

// StartNewSession clears the active chat ID and message buffer. It does
// not mutate the store: a Chat record appears only on the first send.
// Any in-flight responder call is cancelled.
func (c *Controller) StartNewSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetSessionLocked()
}

// SelectChat makes a stored chat the active session and loads a copy of
// its messages into the buffer. Mutating the returned state never touches
// the store; all durable changes go through explicit store calls.
func (c *Controller) SelectChat(id string) error {
	chat, err := c.store.Get(id)
	if err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetSessionLocked()
	c.activeChatID = chat.ID
	c.buffer = chat.Messages
	return nil
}

// DeleteChat removes a chat from the store. Deleting the active chat also
// resets the session. Idempotent, like the store delete.
func (c *Controller) DeleteChat(id string) {
	c.store.Delete(id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeChatID == id {
		c.resetSessionLocked()
	}
}

// resetSessionLocked clears session state, cancels any in-flight
// responder call, and bumps the generation so its completion is dropped.
// Caller must hold c.mu.
func (c *Controller) resetSessionLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.activeChatID = ""
	c.buffer = nil
	c.pending = false
	c.generation++
}

// =============================================================================
// SEND
// =============================================================================

// Send validates and commits a user message, then returns a completion
// thunk that blocks on the simulated responder. The caller runs the thunk
// (typically as a tea.Cmd) and feeds its result to Resolve.
//
// The user message is fully committed — buffer and store, creating the
// chat lazily on the first send of a new session — before Send returns,
// strictly ahead of the responder invocation.
func (c *Controller) Send(text string) (model.Message, func() Completion, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Message{}, nil, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending {
		c.lastErr = ErrSendPending
		return model.Message{}, nil, ErrSendPending
	}

	userMsg := model.NewUserMessage(trimmed)
	c.buffer = append(c.buffer, userMsg)

	if c.activeChatID == "" {
		chat := c.store.Create(c.buffer)
		c.activeChatID = chat.ID
	} else if err := c.store.Append(c.activeChatID, userMsg); err != nil {
		// The selected chat was deleted out from under the session.
		// Recover by re-creating it from the full buffer.
		if errors.Is(err, store.ErrChatNotFound) {
			chat := c.store.Create(c.buffer)
			c.activeChatID = chat.ID
		} else {
			c.lastErr = err
			return model.Message{}, nil, err
		}
	}

	c.pending = true
	c.lastErr = nil

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	chatID := c.activeChatID
	gen := c.generation

	thunk := func() Completion {
		msg, err := c.responder.Respond(ctx)
		return Completion{
			ChatID:     chatID,
			Generation: gen,
			Message:    msg,
			Err:        err,
		}
	}
	return userMsg, thunk, nil
}

// Resolve applies an arrived completion. Returns true when the assistant
// message was committed, false when it was dropped (stale generation,
// cancelled context, or the chat no longer exists).
func (c *Controller) Resolve(comp Completion) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if comp.Generation != c.generation {
		// A session change already cancelled this send; nothing to clean up.
		return false
	}

	c.pending = false
	c.cancel = nil

	if comp.Err != nil {
		return false
	}

	if err := c.store.Append(comp.ChatID, comp.Message); err != nil {
		// Chat deleted while the reply was in flight: tolerate and drop.
		return false
	}
	if comp.ChatID == c.activeChatID {
		c.buffer = append(c.buffer, comp.Message)
	}
	return true
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns a copy of the active message buffer.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Message, len(c.buffer))
	copy(out, c.buffer)
	return out
}

// ActiveChatID returns the active chat ID, or "" for an unbound session.
func (c *Controller) ActiveChatID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeChatID
}

// Pending reports whether a responder call is in flight.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// LastError returns the most recent session error, for status display.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Store exposes the underlying chat store for list-level operations.
func (c *Controller) Store() *store.ChatStore {
	return c.store
}
