// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller orchestrates the active chat session: lazy chat
// creation on first send, the single in-flight send guard, and the
// reconciliation of responder completions back into the store.
//
// The controller is UI-free. The TUI and the REPL both drive it the same
// way: call Send to commit a user message and obtain a completion thunk,
// run the thunk asynchronously, and hand its result to Resolve.
package controller
