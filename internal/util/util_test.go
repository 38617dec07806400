// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exact", 5, "exact"},
		{"truncated", "hello world", 8, "hello..."},
		{"max 3", "hello", 3, "hel"},
		{"zero", "hello", 0, ""},
		{"unicode", "日本語のテキスト", 5, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.input, tt.maxRunes); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateRunesNoEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"truncated", "hello world", 5, "hello"},
		{"zero", "hello", 0, ""},
		{"unicode", "日本語のテキスト", 3, "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunesNoEllipsis(tt.input, tt.maxRunes); got != tt.want {
				t.Errorf("TruncateRunesNoEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	// CJK characters occupy two terminal columns each.
	if got := TruncateWidth("日本語", 10); got != "日本語" {
		t.Errorf("TruncateWidth fit = %q, want unchanged", got)
	}
	got := TruncateWidth("日本語テキスト", 8)
	if got == "日本語テキスト" {
		t.Error("Expected truncation for 14-cell string in 8 cells")
	}
	if RuneLen(got) == 0 {
		t.Error("Truncation should leave visible content")
	}
	if TruncateWidth("anything", 0) != "" {
		t.Error("Zero width should yield empty string")
	}
}

func TestStripControl(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"nul and escape", "a\x00b\x1bc", "abc"},
		{"newlines removed", "a\nb\rc", "abc"},
		{"tab kept", "a\tb", "a\tb"},
		{"unicode kept", "héllo", "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripControl(tt.input); got != tt.want {
				t.Errorf("StripControl(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPadWidth(t *testing.T) {
	if got := PadWidth("ab", 5); got != "ab   " {
		t.Errorf("PadWidth = %q, want %q", got, "ab   ")
	}
}

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	data := []byte("theme = \"dark\"\n")

	if err := AtomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content = %q, want %q", content, data)
	}

	// Overwrite must replace, not append.
	if err := AtomicWriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}
	content, _ = os.ReadFile(path)
	if string(content) != "x" {
		t.Errorf("Overwrite content = %q, want %q", content, "x")
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(filepath.Dir(path))
	for _, e := range entries {
		if e.Name() != "config.toml" {
			t.Errorf("Leftover file after atomic write: %q", e.Name())
		}
	}
}
