// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package responder simulates the assistant backend. It returns one
// canned reply chosen uniformly at random after a randomized delay,
// standing in for a real inference call.
package responder

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/voxlay/vox-tui/internal/model"
)

// Delay bounds for a simulated reply: base plus uniform jitter, so every
// completion lands in [1200ms, 2000ms).
const (
	DefaultBaseDelay = 1200 * time.Millisecond
	DefaultJitter    = 800 * time.Millisecond
)

// cannedReplies is the fixed catalog the simulated assistant answers from.
var cannedReplies = []string{
	"I'd be happy to help with that. Let me think through this carefully.\n\nBased on what you've shared, there are a few key considerations we should explore. First, it's important to understand the context and any constraints you're working within.\n\nWould you like me to elaborate on any particular aspect, or shall we dive deeper into a specific area?",
	"That's a great question! Here's my perspective:\n\nThe topic you're asking about is quite nuanced. There are multiple angles we could approach this from, depending on your specific goals and situation.\n\nI can provide more detailed analysis if you'd like to share additional context about what you're trying to achieve.",
	"Let me help you work through this step by step.\n\n**First**, we should establish the foundational concepts. This will give us a solid base to build upon.\n\n**Second**, we can explore the practical applications and how they might apply to your situation.\n\n**Finally**, I can offer some recommendations based on best practices and common patterns I've seen work well.",
	"Interesting question! Here's what I think:\n\nThis is an area where there's often more complexity than initially meets the eye. The key is to balance several competing factors while staying focused on your primary objective.\n\nI'm happy to go deeper on any part of this—just let me know what would be most useful.",
}

// =============================================================================
// RESPONDER
// =============================================================================

// Responder produces simulated assistant replies. The zero value is not
// usable; construct with New.
type Responder struct {
	baseDelay time.Duration
	jitter    time.Duration
	catalog   []string

	// intn is the random source, injectable for deterministic tests.
	intn func(n int) int
}

// Option configures a Responder.
type Option func(*Responder)

// WithDelay overrides the base delay and jitter bounds.
func WithDelay(base, jitter time.Duration) Option {
	return func(r *Responder) {
		r.baseDelay = base
		r.jitter = jitter
	}
}

// WithCatalog overrides the reply catalog. Empty catalogs are ignored.
func WithCatalog(replies []string) Option {
	return func(r *Responder) {
		if len(replies) > 0 {
			r.catalog = replies
		}
	}
}

// WithRandSource overrides the random int source.
func WithRandSource(intn func(n int) int) Option {
	return func(r *Responder) {
		r.intn = intn
	}
}

// New creates a responder with the default catalog and delay bounds.
func New(opts ...Option) *Responder {
	r := &Responder{
		baseDelay: DefaultBaseDelay,
		jitter:    DefaultJitter,
		catalog:   cannedReplies,
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the reply catalog in use.
func (r *Responder) Catalog() []string {
	out := make([]string, len(r.catalog))
	copy(out, r.catalog)
	return out
}

// =============================================================================
// RESPOND
// =============================================================================

// Respond blocks for the randomized delay and returns an assistant
// message with a fresh ID and the completion time as its timestamp.
// The wait is cancellable: when ctx is done before the delay elapses,
// the context's error is returned and no message is produced.
func (r *Responder) Respond(ctx context.Context) (model.Message, error) {
	delay := r.baseDelay
	if r.jitter > 0 {
		delay += time.Duration(r.intn(int(r.jitter)))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return model.Message{}, ctx.Err()
	case <-timer.C:
	}

	reply := r.catalog[r.intn(len(r.catalog))]
	return model.NewAssistantMessage(reply), nil
}
