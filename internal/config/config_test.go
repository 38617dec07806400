// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "VOX v-4", cfg.Chat.DefaultModel)
	assert.Equal(t, 1200, cfg.Chat.ReplyDelayMs)
	assert.Equal(t, 800, cfg.Chat.ReplyJitterMs)
	assert.Equal(t, "Agent", cfg.Profile.Name)
	assert.Equal(t, "agent@voxlay.ai", cfg.Profile.Email)
	assert.True(t, cfg.UI.SeedDemoData)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.UI.Theme = "ghost"
	cfg.Profile.Name = "Dana"
	cfg.Chat.ReplyDelayMs = 10

	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "ghost", loaded.UI.Theme)
	assert.Equal(t, "Dana", loaded.Profile.Name)
	assert.Equal(t, 10, loaded.Chat.ReplyDelayMs)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("VOX_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().UI.Theme, cfg.UI.Theme)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VOX_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("VOX_THEME", "light")
	t.Setenv("VOX_MODEL", "VOX v-3")
	t.Setenv("VOX_REPLY_DELAY_MS", "5")
	t.Setenv("VOX_SEED_DEMO", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "VOX v-3", cfg.Chat.DefaultModel)
	assert.Equal(t, 5, cfg.Chat.ReplyDelayMs)
	assert.False(t, cfg.UI.SeedDemoData)
}

func TestValidateNormalizes(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "solarized"
	cfg.Chat.DefaultModel = "gpt-9"
	cfg.Chat.ReplyDelayMs = -100
	cfg.Chat.ReplyJitterMs = -1

	cfg.Validate()

	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "VOX v-4", cfg.Chat.DefaultModel)
	assert.Equal(t, 0, cfg.Chat.ReplyDelayMs)
	assert.Equal(t, 0, cfg.Chat.ReplyJitterMs)
}

func TestReplyDelay(t *testing.T) {
	cfg := Default()
	base, jitter := cfg.ReplyDelay()
	assert.Equal(t, 1200*time.Millisecond, base)
	assert.Equal(t, 800*time.Millisecond, jitter)
}

func TestModelsCatalog(t *testing.T) {
	models := Models()
	require.Len(t, models, 3)
	assert.Contains(t, models, "VOX v-4")
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, Default().SaveTo(path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
