// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the vox TUI:
// an adaptive color palette and Theme structs for the dark, light, and
// ghost variants. Themes are pure presentation; nothing here is read by
// the store or controller.
package styles
