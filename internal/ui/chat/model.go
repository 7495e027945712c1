// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/jeranaias/ragchat-tui/internal/config"
	"github.com/jeranaias/ragchat-tui/internal/i18n"
	"github.com/jeranaias/ragchat-tui/internal/render"
	"github.com/jeranaias/ragchat-tui/internal/request"
	"github.com/jeranaias/ragchat-tui/internal/session"
	"github.com/jeranaias/ragchat-tui/internal/ui/components"
	"github.com/jeranaias/ragchat-tui/internal/ui/styles"
)

// =============================================================================
// VIEW MODES
// =============================================================================

// Mode is the current interaction mode. Exactly one is active; modal
// modes (rename, confirm, settings) capture all key input.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeFilter
	ModeRename
	ModeConfirmDelete
	ModeConfirmClear
	ModeSettings
)

// Focus is which pane receives navigation keys in normal mode.
type Focus int

const (
	FocusInput Focus = iota
	FocusSidebar
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Core state
	manager *session.Manager
	coord   *request.Coordinator

	// Styling and rendering
	theme    *styles.Theme
	renderer *render.Renderer
	strings  i18n.Strings

	// Dimensions
	width  int
	height int

	// Interaction state
	mode  Mode
	focus Focus

	// Pending request state. pendingChatID is the chat awaiting a reply;
	// the placeholder renders only while viewing that chat.
	pendingChatID string

	// UI components
	viewport  viewport.Model
	input     textarea.Model
	sidebar   components.Sidebar
	spinner   spinner.Model
	toast     components.Toast
	modalLine textinput.Model

	// Search state (ModeSearch filters messages, ModeFilter filters the
	// chat list). Committed queries survive leaving the prompt.
	searchQuery string
	filterQuery string

	// Settings panel state
	settingsCursor int

	// Settings file watcher, nil when unavailable
	watcher *config.Watcher

	// Key bindings
	keyMap KeyMap

	quitting bool
}

// New creates the chat model.
func New(manager *session.Manager, coord *request.Coordinator, watcher *config.Watcher) Model {
	settings := manager.Settings()
	theme := styles.NewTheme(80, 24)

	input := textarea.New()
	input.Placeholder = i18n.T(settings.Lang()).TypeMessage
	input.CharLimit = 0
	input.SetHeight(3)
	input.ShowLineNumbers = false
	input.Focus()

	modal := textinput.New()
	modal.CharLimit = 120

	m := Model{
		manager:   manager,
		coord:     coord,
		theme:     theme,
		renderer:  render.New(theme, settings, 80),
		strings:   i18n.T(settings.Lang()),
		viewport:  viewport.New(80, 20),
		input:     input,
		sidebar:   components.NewSidebar(30, 20),
		spinner:   components.NewThinkingSpinner(),
		modalLine: modal,
		watcher:   watcher,
		keyMap:    DefaultKeyMap(),
	}
	m.refreshSidebar()
	m.refreshViewport()
	return m
}

// =============================================================================
// DERIVED STATE
// =============================================================================

// inFlight reports whether a reply is pending.
func (m Model) inFlight() bool {
	return m.coord.InFlight()
}

// refreshSidebar recomputes the sidebar rows from the manager.
func (m *Model) refreshSidebar() {
	m.sidebar.SetItems(m.manager.ListChats(m.filterQuery))
}

// refreshViewport re-renders the transcript into the viewport and keeps
// the scroll pinned to the bottom.
func (m *Model) refreshViewport() {
	messages := m.manager.Messages()
	visible := m.manager.VisibleMessages(m.searchQuery)

	shown := messages[:0:0]
	for _, idx := range visible {
		shown = append(shown, messages[idx])
	}

	content := m.renderer.Transcript(shown)
	if m.pendingChatID == m.manager.ActiveID() {
		content += "\n\n" + m.spinner.View() + " " + m.renderer.Thinking(3)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

// applySettings pushes new settings into every settings-dependent part of
// the view.
func (m *Model) applySettings() {
	settings := m.manager.Settings()
	m.strings = i18n.T(settings.Lang())
	m.renderer.SetSettings(settings)
	m.input.Placeholder = m.strings.TypeMessage
	m.refreshSidebar()
	m.refreshViewport()
}
