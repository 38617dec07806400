// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the vox TUI.
// Colors are declared as Lip Gloss AdaptiveColor pairs; NewTheme
// resolves each pair for the selected variant, and the ghost variant
// swaps in its own fixed palette.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Blue - primary accent, selections, the active model
var Blue = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// Emerald - brand mark, success states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Purple - ghost mode accent, assistant labels
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Amber - stars, warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Rose - destructive actions, errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#212121"}

// SurfaceDim - sidebar background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#1A1A1A"}

// SurfaceBright - cards, menus, modals
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2A2A2A"}

// Border - dividers and frames
var Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#444444"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#FFFFFF"}

// TextSecondary - labels, help text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

// TextMuted - timestamps, line numbers
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

// =============================================================================
// GHOST MODE PALETTE
// =============================================================================

// Ghost mode uses the GitHub-dark hex set from the original VOXLAY UI.
var (
	GhostSurface       = lipgloss.Color("#0D1117")
	GhostSurfaceDim    = lipgloss.Color("#010409")
	GhostSurfaceBright = lipgloss.Color("#161B22")
	GhostBorder        = lipgloss.Color("#30363D")
	GhostAccent        = lipgloss.Color("#A78BFA")
)
