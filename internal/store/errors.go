// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

// ErrChatNotFound is returned when an operation references a chat ID that
// is absent from the store. Use errors.Is(err, ErrChatNotFound) to check.
var ErrChatNotFound = &StoreError{Message: "chat not found"}

// StoreError represents a chat-store error. It implements the error
// interface and can be compared using errors.Is.
type StoreError struct {
	Message string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing store errors.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
