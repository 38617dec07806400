// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Variant selects one of the three visual modes.
type Variant string

const (
	VariantDark  Variant = "dark"
	VariantLight Variant = "light"
	VariantGhost Variant = "ghost"
)

// Theme holds the styled components for the application. It detects the
// terminal's color capability once and all styles derive from it.
type Theme struct {
	Variant      Variant
	HasTrueColor bool

	// Sidebar
	Sidebar        lipgloss.Style
	SidebarHeader  lipgloss.Style
	SidebarRow     lipgloss.Style
	SidebarActive  lipgloss.Style
	SidebarStarred lipgloss.Style
	SidebarMenu    lipgloss.Style
	SearchBox      lipgloss.Style

	// Conversation
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	MessageMeta     lipgloss.Style
	CopiedFlash     lipgloss.Style

	// Input area
	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	Placeholder    lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	StatusKey   lipgloss.Style
	StatusDesc  lipgloss.Style

	// Modal panels
	ModalOverlay lipgloss.Style
	ModalTitle   lipgloss.Style
	ModalLabel   lipgloss.Style
	ModalValue   lipgloss.Style
	PlanCard     lipgloss.Style
	PlanPopular  lipgloss.Style

	// Welcome
	Greeting   lipgloss.Style
	Suggestion lipgloss.Style
}

// NewTheme builds a theme for the given variant. Every adaptive pair is
// resolved here against the selected variant, not against terminal
// background detection, so switching themes changes the rendered output
// immediately.
func NewTheme(variant Variant) *Theme {
	t := &Theme{
		Variant:      variant,
		HasTrueColor: termenv.ColorProfile() == termenv.TrueColor,
	}

	pick := func(c lipgloss.AdaptiveColor) lipgloss.TerminalColor {
		if variant == VariantLight {
			return lipgloss.Color(c.Light)
		}
		return lipgloss.Color(c.Dark)
	}

	surface := pick(Surface)
	dim := pick(SurfaceDim)
	bright := pick(SurfaceBright)
	border := pick(Border)
	accent := pick(Blue)
	emerald := pick(Emerald)
	amber := pick(Amber)
	rose := pick(Rose)
	textPrimary := pick(TextPrimary)
	textSecondary := pick(TextSecondary)
	textMuted := pick(TextMuted)

	if variant == VariantGhost {
		surface = GhostSurface
		dim = GhostSurfaceDim
		bright = GhostSurfaceBright
		border = GhostBorder
		accent = GhostAccent
	}

	t.Sidebar = lipgloss.NewStyle().
		Background(dim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(border)
	t.SidebarHeader = lipgloss.NewStyle().
		Foreground(emerald).
		Bold(true).
		Padding(0, 1)
	t.SidebarRow = lipgloss.NewStyle().
		Foreground(textPrimary).
		Padding(0, 1)
	t.SidebarActive = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bright).
		Bold(true).
		Padding(0, 1)
	t.SidebarStarred = lipgloss.NewStyle().
		Foreground(amber)
	t.SidebarMenu = lipgloss.NewStyle().
		Background(bright).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	t.SearchBox = lipgloss.NewStyle().
		Foreground(textPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bright).
		Padding(0, 1).
		MarginLeft(4)
	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(textPrimary).
		Padding(0, 1)
	t.MessageMeta = lipgloss.NewStyle().
		Foreground(textMuted)
	t.CopiedFlash = lipgloss.NewStyle().
		Foreground(emerald)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)
	t.Placeholder = lipgloss.NewStyle().
		Foreground(textMuted)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(textSecondary).
		Background(dim).
		Padding(0, 1)
	t.StatusError = lipgloss.NewStyle().
		Foreground(rose).
		Bold(true)
	t.StatusKey = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)
	t.StatusDesc = lipgloss.NewStyle().
		Foreground(textMuted)

	t.ModalOverlay = lipgloss.NewStyle().
		Background(surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)
	t.ModalTitle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Bold(true).
		Underline(true)
	t.ModalLabel = lipgloss.NewStyle().
		Foreground(textSecondary)
	t.ModalValue = lipgloss.NewStyle().
		Foreground(textPrimary)
	t.PlanCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	t.PlanPopular = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)

	t.Greeting = lipgloss.NewStyle().
		Foreground(textPrimary).
		Bold(true)
	t.Suggestion = lipgloss.NewStyle().
		Foreground(textSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return t
}
