// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for vox.
//
// Configuration is TOML, with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file location (in order of precedence):
//   - $VOX_CONFIG (explicit path)
//   - ~/.vox/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/voxlay/vox-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete vox configuration.
type Config struct {
	Version string `toml:"version"`

	// Profile is the local user profile edited in the Profile panel.
	Profile ProfileConfig `toml:"profile"`

	// UI holds presentation settings edited in the Settings panel.
	UI UIConfig `toml:"ui"`

	// Chat holds conversation behavior settings.
	Chat ChatConfig `toml:"chat"`
}

// ProfileConfig holds the local user profile.
type ProfileConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
	Bio   string `toml:"bio"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", or "ghost"
	Theme string `toml:"theme"`
	// ShowTimestamps displays message timestamps in the conversation view
	ShowTimestamps bool `toml:"show_timestamps"`
	// CompactSidebar uses single-line sidebar rows
	CompactSidebar bool `toml:"compact_sidebar"`
	// SeedDemoData loads the starter chats, snippets, and projects
	SeedDemoData bool `toml:"seed_demo_data"`
}

// ChatConfig contains conversation behavior configuration.
type ChatConfig struct {
	// DefaultModel is the model name shown in the picker.
	DefaultModel string `toml:"default_model"`
	// ReplyDelayMs is the simulated responder's base delay.
	ReplyDelayMs int `toml:"reply_delay_ms"`
	// ReplyJitterMs is the additional uniform random delay.
	ReplyJitterMs int `toml:"reply_jitter_ms"`
}

// Models returns the model names offered by the picker.
func Models() []string {
	return []string{"VOX v-3", "VOX v-4", "VOX v-4 MINI"}
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Profile: ProfileConfig{
			Name:  "Agent",
			Email: "agent@voxlay.ai",
		},
		UI: UIConfig{
			Theme:          "dark",
			ShowTimestamps: false,
			CompactSidebar: false,
			SeedDemoData:   true,
		},
		Chat: ChatConfig{
			DefaultModel:  "VOX v-4",
			ReplyDelayMs:  1200,
			ReplyJitterMs: 800,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the vox configuration directory (~/.vox).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".vox"), nil
}

// Path returns the config file path, honoring $VOX_CONFIG.
func Path() (string, error) {
	if p := os.Getenv("VOX_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, falling back to defaults when it does not
// exist. Environment overrides and validation are always applied.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// LoadFromPath reads a config from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// Save writes the config atomically to the config path.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config atomically to an explicit path.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// =============================================================================
// ENV OVERRIDES / VALIDATION
// =============================================================================

// ApplyEnvOverrides applies VOX_* environment variables over file values.
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("VOX_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if model := os.Getenv("VOX_MODEL"); model != "" {
		c.Chat.DefaultModel = model
	}
	if delay := os.Getenv("VOX_REPLY_DELAY_MS"); delay != "" {
		if ms, err := strconv.Atoi(delay); err == nil {
			c.Chat.ReplyDelayMs = ms
		}
	}
	if seed := os.Getenv("VOX_SEED_DEMO"); seed != "" {
		c.UI.SeedDemoData = seed == "1" || seed == "true"
	}
}

// Validate normalizes the config in place. Unknown themes fall back to
// dark; negative delays are clamped to zero; an unknown model falls back
// to the default.
func (c *Config) Validate() {
	switch c.UI.Theme {
	case "dark", "light", "ghost":
	default:
		c.UI.Theme = "dark"
	}

	if c.Chat.ReplyDelayMs < 0 {
		c.Chat.ReplyDelayMs = 0
	}
	if c.Chat.ReplyJitterMs < 0 {
		c.Chat.ReplyJitterMs = 0
	}

	known := false
	for _, m := range Models() {
		if c.Chat.DefaultModel == m {
			known = true
			break
		}
	}
	if !known {
		c.Chat.DefaultModel = "VOX v-4"
	}
}

// ReplyDelay returns the responder delay bounds as durations.
func (c *Config) ReplyDelay() (base, jitter time.Duration) {
	return time.Duration(c.Chat.ReplyDelayMs) * time.Millisecond,
		time.Duration(c.Chat.ReplyJitterMs) * time.Millisecond
}
