// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

// Session error taxonomy. None of these are fatal: the UI no-ops on
// empty input (matching the reference behavior) and rejects re-entrant
// sends without queuing.
var (
	// ErrEmptyMessage rejects whitespace-only input before any mutation.
	ErrEmptyMessage = &SessionError{Message: "message text is empty"}

	// ErrSendPending rejects a send while a response is already in flight.
	ErrSendPending = &SessionError{Message: "a response is already pending"}
)

// SessionError represents a session-level error. It can be compared
// using errors.Is.
type SessionError struct {
	Message string
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing session errors.
func (e *SessionError) Is(target error) bool {
	t, ok := target.(*SessionError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
