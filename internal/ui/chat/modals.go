// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Modal panels: code library, projects, profile, pricing, and settings.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxlay/vox-tui/internal/clipboard"
	"github.com/voxlay/vox-tui/internal/config"
	"github.com/voxlay/vox-tui/internal/pricing"
	"github.com/voxlay/vox-tui/internal/snippets"
	"github.com/voxlay/vox-tui/internal/ui/styles"
	"github.com/voxlay/vox-tui/internal/util"
)

// =============================================================================
// MODAL LIFECYCLE
// =============================================================================

// openModal switches to an overlay panel. Opening a panel while another is
// open replaces it.
func (m *Model) openModal(kind modalKind) (tea.Model, tea.Cmd) {
	m.modal = kind
	m.modalCursor = 0
	m.openMenuID = ""
	m.input.Blur()

	switch kind {
	case modalCodeLibrary:
		m.snippetSearch.SetValue("")
		m.snippetSearch.Blur()
		m.snippetFormOpen = false
	case modalProjects:
		m.projectFormOpen = false
	case modalProfile:
		m.profileInputs[0].SetValue(m.cfg.Profile.Name)
		m.profileInputs[1].SetValue(m.cfg.Profile.Email)
		m.profileInputs[2].SetValue(m.cfg.Profile.Bio)
		m.profileFocus = 0
		for i := range m.profileInputs {
			m.profileInputs[i].Blur()
		}
		m.profileInputs[0].Focus()
	case modalPricing:
		m.billing = pricing.Monthly
	}
	return m, nil
}

// closeModal returns to the conversation pane.
func (m *Model) closeModal() {
	m.modal = modalNone
	m.focus = focusInput
	m.input.Focus()
}

// =============================================================================
// MODAL KEY HANDLING
// =============================================================================

func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalCodeLibrary:
		return m.handleCodeLibraryKey(msg)
	case modalProjects:
		return m.handleProjectsKey(msg)
	case modalProfile:
		return m.handleProfileKey(msg)
	case modalPricing:
		return m.handlePricingKey(msg)
	case modalSettings:
		return m.handleSettingsKey(msg)
	}
	m.closeModal()
	return m, nil
}

func (m *Model) handleCodeLibraryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.snippetFormOpen {
		return m.handleSnippetFormKey(msg)
	}

	if m.snippetSearch.Focused() {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.snippetSearch.SetValue("")
			m.snippetSearch.Blur()
			m.modalCursor = 0
			return m, nil
		case key.Matches(msg, m.keys.Open):
			m.snippetSearch.Blur()
			m.modalCursor = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.snippetSearch, cmd = m.snippetSearch.Update(msg)
		m.modalCursor = 0
		return m, cmd
	}

	snips := m.library.Filter(m.snippetSearch.Value())
	if m.modalCursor >= len(snips) {
		m.modalCursor = max(0, len(snips)-1)
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeModal()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.snippetSearch.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.snippetFormOpen = true
		m.snippetFormFocus = 0
		for i := range m.snippetForm {
			m.snippetForm[i].SetValue("")
			m.snippetForm[i].Blur()
		}
		m.snippetForm[0].Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up):
		if m.modalCursor > 0 {
			m.modalCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.modalCursor < len(snips)-1 {
			m.modalCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if len(snips) == 0 {
			return m, nil
		}
		if !clipboard.Available() {
			return m, m.setStatus("clipboard unavailable", true)
		}
		if err := clipboard.Copy(snips[m.modalCursor].Code); err != nil {
			return m, m.setStatus("clipboard copy failed", true)
		}
		return m, m.setStatus("snippet copied", false)

	case key.Matches(msg, m.keys.Delete):
		if len(snips) == 0 {
			return m, nil
		}
		m.library.Delete(snips[m.modalCursor].ID)
		return m, m.setStatus("snippet deleted", false)
	}

	return m, nil
}

// handleSnippetFormKey drives the new-snippet form.
func (m *Model) handleSnippetFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.snippetFormOpen = false
		return m, nil

	case msg.String() == "tab", msg.String() == "down":
		m.snippetForm[m.snippetFormFocus].Blur()
		m.snippetFormFocus = (m.snippetFormFocus + 1) % len(m.snippetForm)
		m.snippetForm[m.snippetFormFocus].Focus()
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		m.snippetForm[m.snippetFormFocus].Blur()
		m.snippetFormFocus = (m.snippetFormFocus + len(m.snippetForm) - 1) % len(m.snippetForm)
		m.snippetForm[m.snippetFormFocus].Focus()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		title := strings.TrimSpace(m.snippetForm[0].Value())
		language := strings.TrimSpace(m.snippetForm[1].Value())
		code := m.snippetForm[2].Value()
		if title == "" || code == "" {
			return m, m.setStatus("snippet needs a title and code", true)
		}
		m.library.Add(title, language, code)
		m.snippetFormOpen = false
		m.modalCursor = 0
		return m, m.setStatus("snippet saved", false)
	}

	var cmd tea.Cmd
	m.snippetForm[m.snippetFormFocus], cmd = m.snippetForm[m.snippetFormFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.projectFormOpen {
		return m.handleProjectFormKey(msg)
	}

	projs := m.projects.All()
	if m.modalCursor >= len(projs) {
		m.modalCursor = max(0, len(projs)-1)
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeModal()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.modalCursor > 0 {
			m.modalCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.modalCursor < len(projs)-1 {
			m.modalCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.projectFormOpen = true
		m.projectFormFocus = 0
		for i := range m.projectForm {
			m.projectForm[i].SetValue("")
			m.projectForm[i].Blur()
		}
		m.projectForm[0].Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		if len(projs) == 0 {
			return m, nil
		}
		m.projects.Delete(projs[m.modalCursor].ID)
		return m, m.setStatus("project deleted", false)
	}

	return m, nil
}

// handleProjectFormKey drives the new-project form.
func (m *Model) handleProjectFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.projectFormOpen = false
		return m, nil

	case msg.String() == "tab", msg.String() == "down":
		m.projectForm[m.projectFormFocus].Blur()
		m.projectFormFocus = (m.projectFormFocus + 1) % len(m.projectForm)
		m.projectForm[m.projectFormFocus].Focus()
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		m.projectForm[m.projectFormFocus].Blur()
		m.projectFormFocus = (m.projectFormFocus + len(m.projectForm) - 1) % len(m.projectForm)
		m.projectForm[m.projectFormFocus].Focus()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		name := strings.TrimSpace(m.projectForm[0].Value())
		description := strings.TrimSpace(m.projectForm[1].Value())
		if name == "" {
			return m, m.setStatus("project needs a name", true)
		}
		m.projects.Add(name, description)
		m.projectFormOpen = false
		m.modalCursor = 0
		return m, m.setStatus("project created", false)
	}

	var cmd tea.Cmd
	m.projectForm[m.projectFormFocus], cmd = m.projectForm[m.projectFormFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeModal()
		return m, nil

	case msg.String() == "tab", key.Matches(msg, m.keys.Down):
		m.profileInputs[m.profileFocus].Blur()
		m.profileFocus = (m.profileFocus + 1) % len(m.profileInputs)
		m.profileInputs[m.profileFocus].Focus()
		return m, nil

	case msg.String() == "shift+tab", key.Matches(msg, m.keys.Up):
		m.profileInputs[m.profileFocus].Blur()
		m.profileFocus = (m.profileFocus + len(m.profileInputs) - 1) % len(m.profileInputs)
		m.profileInputs[m.profileFocus].Focus()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.cfg.Profile.Name = strings.TrimSpace(m.profileInputs[0].Value())
		m.cfg.Profile.Email = strings.TrimSpace(m.profileInputs[1].Value())
		m.cfg.Profile.Bio = strings.TrimSpace(m.profileInputs[2].Value())
		m.closeModal()
		if err := m.cfg.Save(); err != nil {
			return m, m.setStatus("profile saved (not persisted: "+err.Error()+")", true)
		}
		return m, m.setStatus("profile saved", false)
	}

	var cmd tea.Cmd
	m.profileInputs[m.profileFocus], cmd = m.profileInputs[m.profileFocus].Update(msg)
	return m, cmd
}

func (m *Model) handlePricingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	plans := pricing.Plans()

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeModal()
		return m, nil

	case msg.String() == "b", msg.String() == "left", msg.String() == "right":
		m.billing = m.billing.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.modalCursor > 0 {
			m.modalCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.modalCursor < len(plans)-1 {
			m.modalCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		plan := plans[m.modalCursor]
		m.closeModal()
		return m, m.setStatus(fmt.Sprintf("%s selected (demo account, no billing)", plan.Name), false)
	}

	return m, nil
}

// settingsRows is the ordered list of adjustable settings.
const settingsRowCount = 4

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeModal()
		// Settings persist on close so a crash never loses half-edited state.
		if err := m.cfg.Save(); err != nil {
			return m, m.setStatus("settings not persisted: "+err.Error(), true)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.modalCursor > 0 {
			m.modalCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.modalCursor < settingsRowCount-1 {
			m.modalCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open), msg.String() == "left", msg.String() == "right":
		return m.adjustSetting()
	}

	return m, nil
}

// adjustSetting cycles or toggles the setting under the cursor.
func (m *Model) adjustSetting() (tea.Model, tea.Cmd) {
	switch m.modalCursor {
	case 0: // theme
		m.applyTheme(nextVariant(styles.Variant(m.cfg.UI.Theme)))
	case 1: // model
		models := config.Models()
		next := 0
		for i, name := range models {
			if name == m.cfg.Chat.DefaultModel {
				next = (i + 1) % len(models)
				break
			}
		}
		m.cfg.Chat.DefaultModel = models[next]
		m.selectedModel = models[next]
	case 2: // timestamps
		m.cfg.UI.ShowTimestamps = !m.cfg.UI.ShowTimestamps
		m.renderer.ShowTimestamps = m.cfg.UI.ShowTimestamps
		m.refreshViewport(false)
	case 3: // compact sidebar
		m.cfg.UI.CompactSidebar = !m.cfg.UI.CompactSidebar
	}
	return m, nil
}

// =============================================================================
// MODAL RENDERING
// =============================================================================

// renderModal draws the active overlay panel centered on screen.
func (m *Model) renderModal() string {
	var body string
	switch m.modal {
	case modalCodeLibrary:
		body = m.renderCodeLibrary()
	case modalProjects:
		body = m.renderProjects()
	case modalProfile:
		body = m.renderProfile()
	case modalPricing:
		body = m.renderPricing()
	case modalSettings:
		body = m.renderSettings()
	}

	panel := m.theme.ModalOverlay.MaxWidth(m.width - 4).Render(body)
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, panel)
}

func (m *Model) renderCodeLibrary() string {
	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Code Library"))
	b.WriteString("\n\n")

	if m.snippetFormOpen {
		labels := []string{"Title", "Language", "Code"}
		for i, label := range labels {
			b.WriteString(m.theme.ModalLabel.Render(label))
			b.WriteString("\n")
			b.WriteString(m.snippetForm[i].View())
			b.WriteString("\n\n")
		}
		b.WriteString(m.theme.ModalLabel.Render("enter save · tab next field · esc cancel"))
		return b.String()
	}

	b.WriteString(m.theme.SearchBox.Render(m.snippetSearch.View()))
	b.WriteString("\n\n")

	snips := m.library.Filter(m.snippetSearch.Value())
	if len(snips) == 0 {
		b.WriteString(m.theme.ModalLabel.Render("No snippets found."))
		return b.String()
	}

	for i, s := range snips {
		cursor := "  "
		if i == m.modalCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s  %s", cursor,
			m.theme.ModalValue.Render(s.Title),
			m.theme.ModalLabel.Render("["+s.Language+"]"))
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Preview of the selected snippet with syntax highlighting.
	if m.modalCursor < len(snips) {
		b.WriteString("\n")
		b.WriteString(snippets.Highlight(snips[m.modalCursor]))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ModalLabel.Render("enter copy · n new · d delete · / search · esc close"))
	return b.String()
}

func (m *Model) renderProjects() string {
	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Projects"))
	b.WriteString("\n\n")

	if m.projectFormOpen {
		labels := []string{"Name", "Description"}
		for i, label := range labels {
			b.WriteString(m.theme.ModalLabel.Render(label))
			b.WriteString("\n")
			b.WriteString(m.projectForm[i].View())
			b.WriteString("\n\n")
		}
		b.WriteString(m.theme.ModalLabel.Render("enter create · tab next field · esc cancel"))
		return b.String()
	}

	projs := m.projects.All()
	if len(projs) == 0 {
		b.WriteString(m.theme.ModalLabel.Render("No projects yet."))
		return b.String()
	}

	for i, p := range projs {
		cursor := "  "
		if i == m.modalCursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, m.theme.ModalValue.Render(p.Name)))
		b.WriteString(fmt.Sprintf("    %s · %d files · %s\n",
			m.theme.ModalLabel.Render(p.Description),
			p.Files,
			m.theme.ModalLabel.Render(relativeTime(m.now(), p.LastModified))))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ModalLabel.Render("n new · d delete · esc close"))
	return b.String()
}

func (m *Model) renderProfile() string {
	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Profile"))
	b.WriteString("\n\n")

	labels := []string{"Name", "Email", "Bio"}
	for i, label := range labels {
		b.WriteString(m.theme.ModalLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(m.profileInputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.ModalLabel.Render("enter save · tab next field · esc cancel"))
	return b.String()
}

func (m *Model) renderPricing() string {
	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Upgrade your plan"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.ModalLabel.Render("Billing: "))
	b.WriteString(m.theme.ModalValue.Render(m.billing.String()))
	if m.billing == pricing.Yearly {
		b.WriteString(m.theme.CopiedFlash.Render("  (save 20%)"))
	}
	b.WriteString("\n\n")

	cards := make([]string, 0, 4)
	for i, plan := range pricing.Plans() {
		cards = append(cards, m.renderPlanCard(plan, i == m.modalCursor))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")
	b.WriteString(m.theme.ModalLabel.Render("b toggle billing · enter select · esc close"))
	return b.String()
}

func (m *Model) renderPlanCard(plan pricing.Plan, selected bool) string {
	style := m.theme.PlanCard
	if plan.Popular || selected {
		style = m.theme.PlanPopular
	}

	var b strings.Builder
	name := plan.Name
	if plan.Popular {
		name += " ★"
	}
	b.WriteString(m.theme.ModalTitle.Render(name))
	b.WriteString("\n")

	price := fmt.Sprintf("$%d/mo", plan.PriceFor(m.billing))
	if plan.PriceLabel != "" {
		price = plan.PriceLabel + " " + price
	}
	b.WriteString(m.theme.ModalValue.Render(price))
	b.WriteString("\n")
	b.WriteString(m.theme.ModalLabel.Render(util.TruncateRunes(plan.Description, 24)))
	b.WriteString("\n\n")

	for _, f := range plan.Features {
		mark := "·"
		if f.Included {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, util.TruncateRunes(f.Name, 22)))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ModalLabel.Render("[" + plan.CTA + "]"))
	return style.Render(b.String())
}

func (m *Model) renderSettings() string {
	rows := []struct {
		label string
		value string
	}{
		{"Theme", m.cfg.UI.Theme},
		{"Model", m.cfg.Chat.DefaultModel},
		{"Show timestamps", onOff(m.cfg.UI.ShowTimestamps)},
		{"Compact sidebar", onOff(m.cfg.UI.CompactSidebar)},
	}

	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Settings"))
	b.WriteString("\n\n")
	for i, row := range rows {
		cursor := "  "
		if i == m.modalCursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor,
			m.theme.ModalLabel.Render(util.PadWidth(row.label, 18)),
			m.theme.ModalValue.Render(row.value)))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.ModalLabel.Render("enter change · esc save and close"))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
