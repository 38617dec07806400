// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clipboard wraps the system clipboard for message copying.
package clipboard

import "github.com/atotto/clipboard"

// Copy writes text to the system clipboard. On headless systems without
// a clipboard utility this returns an error; callers surface it in the
// status bar rather than failing.
func Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend exists.
func Available() bool {
	return !clipboard.Unsupported
}
