// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chats and messages.
//
// A Chat is a named, ordered conversation of Messages. Messages are
// immutable value types; all mutation happens by appending new messages
// through the store. The model layer has no dependencies on the UI or
// the store and can be tested in isolation.
package model
