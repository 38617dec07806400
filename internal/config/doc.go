// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for vox.
//
// The config file is TOML at ~/.vox/config.toml (overridable via
// $VOX_CONFIG). Precedence is defaults, then file, then VOX_* environment
// variables. Saves are atomic; Watch reloads on file changes so edits
// made in the Settings panel and edits made in a text editor converge.
package config
