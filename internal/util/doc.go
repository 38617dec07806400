// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers: rune- and width-safe string
// truncation, control-character stripping, numeric formatting, and atomic
// file writes for configuration saves.
package util
