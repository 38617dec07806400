// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Top-level Bubble Tea model for the vox chat interface.
package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxlay/vox-tui/internal/config"
	"github.com/voxlay/vox-tui/internal/controller"
	"github.com/voxlay/vox-tui/internal/model"
	"github.com/voxlay/vox-tui/internal/pricing"
	"github.com/voxlay/vox-tui/internal/projects"
	"github.com/voxlay/vox-tui/internal/snippets"
	"github.com/voxlay/vox-tui/internal/ui/components"
	"github.com/voxlay/vox-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS AND MODAL STATE
// =============================================================================

// focusZone identifies which region of the screen receives key input.
type focusZone int

const (
	focusInput focusZone = iota
	focusSidebar
)

// modalKind identifies the currently open overlay panel, if any.
// At most one modal is open at a time.
type modalKind int

const (
	modalNone modalKind = iota
	modalCodeLibrary
	modalProjects
	modalProfile
	modalPricing
	modalSettings
)

// sidebarWidth is the fixed column width of the chat list.
const sidebarWidth = 32

// =============================================================================
// MODEL
// =============================================================================

// Model is the root Bubble Tea model. It owns all ephemeral view state;
// durable chat state lives in the controller and its store.
type Model struct {
	cfg   *config.Config
	theme *styles.Theme

	ctrl     *controller.Controller
	library  *snippets.Library
	projects *projects.List

	width  int
	height int
	ready  bool

	// Main pane components.
	viewport viewport.Model
	input    textinput.Model
	thinking components.Thinking
	renderer *components.MessageRenderer

	keys KeyMap

	focus focusZone
	modal modalKind

	// Sidebar state.
	sidebarOpen  bool
	sidebarIndex int
	searchOpen   bool
	searchInput  textinput.Model
	editingID    string
	editInput    textinput.Model
	openMenuID   string

	// Modal state.
	modalCursor   int
	snippetSearch textinput.Model
	billing       pricing.BillingCycle
	profileInputs [3]textinput.Model
	profileFocus  int

	// Creation forms inside the code library and projects panels.
	snippetForm      [3]textinput.Model
	snippetFormOpen  bool
	snippetFormFocus int
	projectForm      [2]textinput.Model
	projectFormOpen  bool
	projectFormFocus int

	// Transient state.
	selectedModel string
	copiedFlashID string
	status        string
	statusIsErr   bool
	statusSeq     uint64

	quitting bool
	now      func() time.Time
}

// New constructs the root model from application state.
func New(cfg *config.Config, ctrl *controller.Controller, library *snippets.Library, projs *projects.List) *Model {
	theme := styles.NewTheme(styles.Variant(cfg.UI.Theme))

	input := textinput.New()
	input.Placeholder = "Ask VOXLAY anything..."
	input.Prompt = "> "
	input.CharLimit = 4000
	input.Focus()

	search := textinput.New()
	search.Placeholder = "Search chats..."
	search.Prompt = "/ "
	search.CharLimit = 120

	snipSearch := textinput.New()
	snipSearch.Placeholder = "Search snippets..."
	snipSearch.Prompt = "/ "
	snipSearch.CharLimit = 120

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 200

	var profile [3]textinput.Model
	for i := range profile {
		profile[i] = textinput.New()
		profile[i].Prompt = ""
		profile[i].CharLimit = 200
	}
	profile[0].Placeholder = "Name"
	profile[1].Placeholder = "Email"
	profile[2].Placeholder = "Bio"

	var snippetForm [3]textinput.Model
	for i := range snippetForm {
		snippetForm[i] = textinput.New()
		snippetForm[i].Prompt = ""
	}
	snippetForm[0].Placeholder = "Title"
	snippetForm[0].CharLimit = 120
	snippetForm[1].Placeholder = "Language"
	snippetForm[1].CharLimit = 40
	snippetForm[2].Placeholder = "Code"
	snippetForm[2].CharLimit = 4000

	var projectForm [2]textinput.Model
	for i := range projectForm {
		projectForm[i] = textinput.New()
		projectForm[i].Prompt = ""
		projectForm[i].CharLimit = 200
	}
	projectForm[0].Placeholder = "Name"
	projectForm[1].Placeholder = "Description"

	return &Model{
		cfg:           cfg,
		theme:         theme,
		ctrl:          ctrl,
		library:       library,
		projects:      projs,
		input:         input,
		searchInput:   search,
		snippetSearch: snipSearch,
		editInput:     edit,
		profileInputs: profile,
		snippetForm:   snippetForm,
		projectForm:   projectForm,
		thinking:      components.NewThinking(),
		renderer:      components.NewMessageRenderer(theme, 80),
		keys:          DefaultKeyMap(),
		focus:         focusInput,
		sidebarOpen:   true,
		selectedModel: cfg.Chat.DefaultModel,
		billing:       pricing.Monthly,
		now:           time.Now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// setStatus records transient status bar text and returns the expiry command.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusIsErr = isErr
	m.statusSeq++
	return clearStatus(m.statusSeq)
}

// applyTheme rebuilds styles after a theme change and persists the choice.
func (m *Model) applyTheme(variant styles.Variant) {
	m.theme = styles.NewTheme(variant)
	m.cfg.UI.Theme = string(variant)
	m.renderer = components.NewMessageRenderer(m.theme, m.contentWidth())
	m.thinking = components.NewThinking()
	if m.ready {
		m.refreshViewport(true)
	}
}

// contentWidth is the width available to the conversation pane.
func (m *Model) contentWidth() int {
	w := m.width
	if m.sidebarOpen {
		w -= sidebarWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// activeMessages returns the visible transcript for the current session.
func (m *Model) activeMessages() []model.Message {
	return m.ctrl.Messages()
}
