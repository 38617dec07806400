// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/voxlay/vox-tui/internal/ui/styles"
)

// Greeting returns the time-of-day salutation shown on the empty
// conversation view.
func Greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 12:
		return "G' morning"
	case hour < 17:
		return "G' afternoon"
	default:
		return "G' evening"
	}
}

// Suggestions are the starter prompts offered under the greeting.
func Suggestions() []string {
	return []string{
		"Summarize the key points",
		"What are the main themes?",
		"Explain this concept",
	}
}

// Welcome renders the empty-state screen: greeting plus suggestion chips.
func Welcome(theme *styles.Theme, userName string, width, height int) string {
	greeting := theme.Greeting.Render(Greeting(time.Now()) + ", " + userName)

	chips := make([]string, 0, 3)
	for _, s := range Suggestions() {
		chips = append(chips, theme.Suggestion.Render(s))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(chips, " "))

	content := lipgloss.JoinVertical(lipgloss.Center, greeting, "", row)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
