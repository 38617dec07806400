// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxlay/vox-tui/internal/config"
	"github.com/voxlay/vox-tui/internal/controller"
	"github.com/voxlay/vox-tui/internal/projects"
	"github.com/voxlay/vox-tui/internal/responder"
	"github.com/voxlay/vox-tui/internal/snippets"
	"github.com/voxlay/vox-tui/internal/store"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	cfg := config.Default()
	rsp := responder.New(
		responder.WithDelay(0, 0),
		responder.WithRandSource(func(int) int { return 0 }),
	)
	ctrl := controller.New(store.New(), rsp)
	m := New(cfg, ctrl, snippets.NewLibrary(), projects.NewList())
	m.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(*Model)
}

// drain runs a command tree to completion and feeds every resulting
// message back into the model.
func drain(t *testing.T, m *Model, cmd tea.Cmd) *Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drain(t, m, c)
		}
		return m
	}
	if msg == nil {
		return m
	}
	updated, next := m.Update(msg)
	m = updated.(*Model)
	// Ignore follow-up ticks (spinner frames, status expiry timers).
	_ = next
	return m
}

func keyPress(m *Model, k string) (*Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+n":
		msg = tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+k":
		msg = tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+p":
		msg = tea.KeyMsg{Type: tea.KeyCtrlP}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, cmd := m.Update(msg)
	return updated.(*Model), cmd
}

func TestSubmitCreatesChatAndResolvesReply(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("Hello there")
	m, cmd := keyPress(m, "enter")

	if m.ctrl.ActiveChatID() == "" {
		t.Fatal("expected a chat to be created on first send")
	}
	if got := len(m.activeMessages()); got != 1 {
		t.Fatalf("expected 1 message after send, got %d", got)
	}
	if !m.ctrl.Pending() {
		t.Fatal("expected a pending response after send")
	}
	if m.input.Value() != "" {
		t.Fatal("input should be cleared after send")
	}

	m = drain(t, m, cmd)

	if m.ctrl.Pending() {
		t.Fatal("response should have resolved")
	}
	if got := len(m.activeMessages()); got != 2 {
		t.Fatalf("expected 2 messages after reply, got %d", got)
	}
}

func TestSubmitEmptyIsNoOp(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("   ")
	m, _ = keyPress(m, "enter")

	if m.ctrl.ActiveChatID() != "" {
		t.Fatal("whitespace submission should not create a chat")
	}
	if m.status != "" {
		t.Fatalf("whitespace submission should be silent, got status %q", m.status)
	}
}

func TestNewChatResetsSession(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("first question")
	m, cmd := keyPress(m, "enter")
	m = drain(t, m, cmd)
	first := m.ctrl.ActiveChatID()

	m, _ = keyPress(m, "ctrl+n")

	if m.ctrl.ActiveChatID() != "" {
		t.Fatal("new chat should clear the active session")
	}
	if len(m.activeMessages()) != 0 {
		t.Fatal("new chat should show an empty transcript")
	}
	if m.ctrl.Store().Count() != 1 {
		t.Fatal("previous chat should stay in the store")
	}
	if first == "" {
		t.Fatal("first chat should have had an id")
	}
}

func TestSidebarNavigationOpensChat(t *testing.T) {
	m := newTestModel(t)
	m.ctrl.Store().SeedDemo()

	m, _ = keyPress(m, "tab")
	if m.focus != focusSidebar {
		t.Fatal("tab should focus the sidebar")
	}

	m, _ = keyPress(m, "down")
	selected := m.selectedChat()
	if selected == nil {
		t.Fatal("expected a selected chat")
	}

	m, _ = keyPress(m, "enter")
	if m.ctrl.ActiveChatID() != selected.ID {
		t.Fatal("enter should open the selected chat")
	}
	if m.focus != focusInput {
		t.Fatal("opening a chat should return focus to the input")
	}
}

func TestSidebarMenuExclusive(t *testing.T) {
	m := newTestModel(t)
	m.ctrl.Store().SeedDemo()

	m, _ = keyPress(m, "tab")
	m, _ = keyPress(m, "m")
	first := m.openMenuID
	if first == "" {
		t.Fatal("m should open a row menu")
	}

	m, _ = keyPress(m, "down")
	if m.openMenuID != "" {
		t.Fatal("moving the cursor should close the open menu")
	}

	m, _ = keyPress(m, "m")
	if m.openMenuID == first {
		t.Fatal("menu should now belong to a different row")
	}
}

func TestSidebarRenameCommits(t *testing.T) {
	m := newTestModel(t)
	m.ctrl.Store().SeedDemo()

	m, _ = keyPress(m, "tab")
	m, _ = keyPress(m, "r")
	if m.editingID == "" {
		t.Fatal("r should begin an inline rename")
	}
	id := m.editingID

	m.editInput.SetValue("Renamed conversation")
	m, _ = keyPress(m, "enter")

	if m.editingID != "" {
		t.Fatal("enter should end the rename")
	}
	chat, err := m.ctrl.Store().Get(id)
	if err != nil {
		t.Fatalf("renamed chat missing: %v", err)
	}
	if chat.Title != "Renamed conversation" {
		t.Fatalf("title = %q", chat.Title)
	}
}

func TestSidebarDeleteRemovesChat(t *testing.T) {
	m := newTestModel(t)
	m.ctrl.Store().SeedDemo()
	before := m.ctrl.Store().Count()

	m, _ = keyPress(m, "tab")
	m, _ = keyPress(m, "d")

	if got := m.ctrl.Store().Count(); got != before-1 {
		t.Fatalf("store count = %d, want %d", got, before-1)
	}
}

func TestSearchFiltersSidebar(t *testing.T) {
	m := newTestModel(t)
	m.ctrl.Store().SeedDemo()

	m, _ = keyPress(m, "tab")
	m, _ = keyPress(m, "/")
	if !m.searchOpen {
		t.Fatal("/ should open search")
	}

	m.searchInput.SetValue("react")
	chats := m.filteredChats()
	if len(chats) != 1 {
		t.Fatalf("expected 1 match for %q, got %d", "react", len(chats))
	}

	m, _ = keyPress(m, "esc")
	if m.searchOpen {
		t.Fatal("esc should close search")
	}
	if got := len(m.filteredChats()); got != 3 {
		t.Fatalf("closing search should restore the full list, got %d", got)
	}
}

func TestModalOpensAndCloses(t *testing.T) {
	m := newTestModel(t)
	m.library.SeedDemo()

	m, _ = keyPress(m, "ctrl+k")
	if m.modal != modalCodeLibrary {
		t.Fatal("ctrl+k should open the code library")
	}

	view := m.View()
	if view == "" {
		t.Fatal("modal view should render")
	}

	m, _ = keyPress(m, "esc")
	if m.modal != modalNone {
		t.Fatal("esc should close the modal")
	}
	if !m.input.Focused() {
		t.Fatal("closing a modal should refocus the input")
	}
}

func TestCodeLibraryNewSnippet(t *testing.T) {
	m := newTestModel(t)

	m, _ = keyPress(m, "ctrl+k")
	m, _ = keyPress(m, "n")
	if !m.snippetFormOpen {
		t.Fatal("n should open the new-snippet form")
	}

	m.snippetForm[0].SetValue("Debounce helper")
	m.snippetForm[1].SetValue("javascript")
	m.snippetForm[2].SetValue("const debounce = (fn, ms) => {}")
	m, _ = keyPress(m, "enter")

	if m.snippetFormOpen {
		t.Fatal("saving should close the form")
	}
	if m.library.Count() != 1 {
		t.Fatalf("library count = %d, want 1", m.library.Count())
	}
	got := m.library.List()[0]
	if got.Title != "Debounce helper" || got.Language != "javascript" {
		t.Fatalf("snippet = %q [%s]", got.Title, got.Language)
	}
}

func TestCodeLibraryNewSnippetRequiresTitleAndCode(t *testing.T) {
	m := newTestModel(t)

	m, _ = keyPress(m, "ctrl+k")
	m, _ = keyPress(m, "n")
	m, _ = keyPress(m, "enter")

	if !m.snippetFormOpen {
		t.Fatal("form should stay open when required fields are missing")
	}
	if m.library.Count() != 0 {
		t.Fatalf("library count = %d, want 0", m.library.Count())
	}

	m, _ = keyPress(m, "esc")
	if m.snippetFormOpen {
		t.Fatal("esc should cancel the form")
	}
	if m.modal != modalCodeLibrary {
		t.Fatal("cancelling the form should keep the panel open")
	}
}

func TestProjectsNewProject(t *testing.T) {
	m := newTestModel(t)

	m, _ = keyPress(m, "ctrl+p")
	if m.modal != modalProjects {
		t.Fatal("ctrl+p should open the projects panel")
	}

	m, _ = keyPress(m, "n")
	if !m.projectFormOpen {
		t.Fatal("n should open the new-project form")
	}

	m.projectForm[0].SetValue("Docs Site")
	m.projectForm[1].SetValue("Static documentation")
	m, _ = keyPress(m, "enter")

	if m.projectFormOpen {
		t.Fatal("creating should close the form")
	}
	if m.projects.Count() != 1 {
		t.Fatalf("projects count = %d, want 1", m.projects.Count())
	}
	got := m.projects.All()[0]
	if got.Name != "Docs Site" || got.Description != "Static documentation" {
		t.Fatalf("project = %q / %q", got.Name, got.Description)
	}
}

func TestSidebarShowsLastMessagePreview(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("Hello there")
	m, cmd := keyPress(m, "enter")
	m = drain(t, m, cmd)

	view := m.renderSidebar(20)
	if !strings.Contains(view, "I'd be happy") {
		t.Fatalf("sidebar should preview the latest message, got:\n%s", view)
	}
}

func TestStaleReplyIgnoredAfterNewChat(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("slow question")
	m, staleCmd := keyPress(m, "enter")

	// Abandon the session before the reply lands, then deliver it late.
	m, _ = keyPress(m, "ctrl+n")
	m = drain(t, m, staleCmd)

	if got := len(m.activeMessages()); got != 0 {
		t.Fatalf("stale reply should not appear in the new session, got %d messages", got)
	}
	if m.ctrl.Pending() {
		t.Fatal("late reply should still clear the pending flag")
	}
	if m.status != "" {
		t.Fatalf("cancelled reply should not surface a status, got %q", m.status)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{49 * time.Hour, "2d ago"},
	}
	for _, tc := range cases {
		got := relativeTime(now, now.Add(-tc.ago))
		if got != tc.want {
			t.Errorf("relativeTime(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}
