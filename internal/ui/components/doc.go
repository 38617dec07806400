// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI pieces for the vox TUI:
// the thinking spinner, message bubble rendering, the welcome screen,
// and the status bar.
package components
