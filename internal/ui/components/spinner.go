// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxlay/vox-tui/internal/ui/styles"
	"github.com/voxlay/vox-tui/internal/util"
)

// =============================================================================
// THINKING SPINNER
// =============================================================================

// Thinking is the indicator shown while a reply is pending.
type Thinking struct {
	spinner   spinner.Model
	startTime time.Time
	active    bool
}

// NewThinking creates the thinking indicator.
func NewThinking() Thinking {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Purple)
	return Thinking{spinner: s}
}

// Start marks the indicator active and records the start time.
func (t *Thinking) Start() tea.Cmd {
	t.active = true
	t.startTime = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *Thinking) Stop() {
	t.active = false
}

// Active reports whether the indicator is running.
func (t Thinking) Active() bool {
	return t.active
}

// Update advances the spinner animation.
func (t Thinking) Update(msg tea.Msg) (Thinking, tea.Cmd) {
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator, with elapsed seconds once the wait gets
// noticeable.
func (t Thinking) View() string {
	if !t.active {
		return ""
	}
	label := " Thinking..."
	if elapsed := time.Since(t.startTime); elapsed >= time.Second {
		label += " (" + util.IntToString(int(elapsed.Seconds())) + "s)"
	}
	meta := lipgloss.NewStyle().Foreground(styles.TextMuted)
	return t.spinner.View() + meta.Render(label)
}
