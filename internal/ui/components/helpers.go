// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/charmbracelet/lipgloss"

// lipglossWidth measures rendered width including ANSI sequences.
func lipglossWidth(s string) int {
	return lipgloss.Width(s)
}
