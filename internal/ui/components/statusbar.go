// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/voxlay/vox-tui/internal/ui/styles"
	"github.com/voxlay/vox-tui/internal/util"
)

// Shortcut is one key hint on the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom bar: model name, transient status or
// error on the left, key hints on the right.
func StatusBar(theme *styles.Theme, width int, modelName, status string, isError bool, shortcuts []Shortcut) string {
	left := modelName
	if status != "" {
		sep := "  "
		if isError {
			left += sep + theme.StatusError.Render(status)
		} else {
			left += sep + status
		}
	}

	hints := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		hints = append(hints, theme.StatusKey.Render(s.Key)+" "+theme.StatusDesc.Render(s.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := width - lipglossWidth(left) - lipglossWidth(right) - 2
	if gap < 1 {
		gap = 1
		left = util.TruncateWidth(left, width-lipglossWidth(right)-3)
	}

	return theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
