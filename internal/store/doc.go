// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the canonical in-memory chat collection.
//
// The store exposes the full set of chat-list operations used by the
// sidebar and the conversation controller: list, filter, create, append,
// rename, star, and delete. Reads return deep clones so callers can never
// mutate store state except through an explicit mutation call. Chats live
// for the process lifetime; there is no persistence layer.
package store
