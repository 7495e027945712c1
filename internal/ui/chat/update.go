// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ragchat-tui/internal/model"
	"github.com/jeranaias/ragchat-tui/internal/request"
	"github.com/jeranaias/ragchat-tui/internal/ui/components"
)

const sidebarWidth = 32

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.pendingChatID != "" {
			m.refreshViewport()
		}
		return m, cmd

	case settingsChangedMsg:
		m.manager.ReloadSettings()
		m.applySettings()
		if m.watcher != nil {
			return m, watchSettings(m.watcher.Changed)
		}
		return m, nil

	case request.ResponseMsg:
		return m.handleResponse(msg)

	case request.SendErrorMsg:
		return m.handleSendError(msg)

	case request.SendCancelledMsg:
		m.pendingChatID = ""
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// resize lays the panes out for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.Resize(width, height)

	contentWidth := width - sidebarWidth
	if contentWidth < 40 {
		contentWidth = width // drop the sidebar on narrow terminals
	}

	// Header, input box, status bar.
	contentHeight := height - 7
	if contentHeight < 5 {
		contentHeight = 5
	}

	m.viewport.Width = contentWidth
	m.viewport.Height = contentHeight
	m.input.SetWidth(contentWidth - 2)
	m.sidebar.Width = sidebarWidth
	m.sidebar.Height = contentHeight
	m.renderer.SetWidth(contentWidth)
	m.refreshViewport()
}

// =============================================================================
// REQUEST LIFECYCLE
// =============================================================================

// handleResponse appends the reply. A reply for a chat that is no longer
// active was orphaned by a cancel race and is dropped.
func (m Model) handleResponse(msg request.ResponseMsg) (tea.Model, tea.Cmd) {
	m.pendingChatID = ""
	if msg.ChatID != m.manager.ActiveID() {
		return m, nil
	}
	if err := m.manager.Append(model.NewBotMessage(msg.Reply)); err != nil {
		m.toast = components.ShowToast(m.strings.Error+err.Error(), true, 5*time.Second)
	}
	m.refreshSidebar()
	m.refreshViewport()
	return m, nil
}

// handleSendError rolls back the failed user message and shows the error
// in the transcript as a view-only message.
func (m Model) handleSendError(msg request.SendErrorMsg) (tea.Model, tea.Cmd) {
	m.pendingChatID = ""
	if msg.ChatID != m.manager.ActiveID() {
		return m, nil
	}
	if err := m.manager.Rollback(msg.UserMessageID); err != nil {
		m.toast = components.ShowToast(m.strings.Error+err.Error(), true, 5*time.Second)
	}
	m.manager.AppendEphemeral(model.NewErrorMessage(msg.Err.Error()))
	m.refreshSidebar()
	m.refreshViewport()
	return m, nil
}

// send validates and dispatches the composed message.
func (m Model) send() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.inFlight() {
		return m, nil
	}

	userMsg := model.NewUserMessage(text)
	if err := m.manager.Append(userMsg); err != nil {
		m.toast = components.ShowToast(m.strings.Error+err.Error(), true, 5*time.Second)
		return m, nil
	}
	m.input.Reset()

	chatID := m.manager.ActiveID()
	cmd := m.coord.Send(chatID, m.manager.Messages(), m.manager.Settings().Language, userMsg.ID)
	if cmd == nil {
		// Lost the slot in a race; take the message back so the
		// transcript matches what was actually sent.
		m.manager.Rollback(userMsg.ID)
		return m, nil
	}
	m.pendingChatID = chatID
	m.refreshSidebar()
	m.refreshViewport()
	return m, cmd
}

// =============================================================================
// CHAT SWITCHING
// =============================================================================

// switchTo cancels any pending request and activates the target chat.
// In-chat search is cleared: it is per-session view state.
func (m *Model) switchTo(id string) {
	m.coord.Cancel()
	m.pendingChatID = ""
	m.searchQuery = ""
	if err := m.manager.Switch(id); err != nil {
		m.toast = components.ShowToast(m.strings.Error+err.Error(), true, 5*time.Second)
		return
	}
	m.refreshSidebar()
	m.refreshViewport()
}

// newChat cancels any pending request and creates a fresh chat.
func (m *Model) newChat() {
	m.coord.Cancel()
	m.pendingChatID = ""
	m.searchQuery = ""
	if _, err := m.manager.Create(); err != nil {
		m.toast = components.ShowToast(m.strings.Error+err.Error(), true, 5*time.Second)
		return
	}
	m.refreshSidebar()
	m.refreshViewport()
}

// neighborChat returns the chat ID one step up or down the sidebar order
// from the active chat, or "" at the edge.
func (m *Model) neighborChat(step int) string {
	items := m.manager.ListChats("")
	for i, item := range items {
		if item.Active {
			j := i + step
			if j >= 0 && j < len(items) {
				return items[j].ID
			}
			return ""
		}
	}
	return ""
}

// =============================================================================
// KEY DISPATCH
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeRename, ModeSearch, ModeFilter:
		return m.handleModalKey(msg)
	case ModeConfirmDelete, ModeConfirmClear:
		return m.handleConfirmKey(msg)
	case ModeSettings:
		return m.handleSettingsKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.coord.Cancel()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Cancel):
		if m.inFlight() {
			m.coord.Cancel()
			return m, nil
		}
		if m.searchQuery != "" || m.filterQuery != "" {
			m.searchQuery = ""
			m.filterQuery = ""
			m.refreshSidebar()
			m.refreshViewport()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.NewChat):
		m.newChat()
		return m, nil

	case key.Matches(msg, m.keyMap.PrevChat):
		if id := m.neighborChat(-1); id != "" {
			m.switchTo(id)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.NextChat):
		if id := m.neighborChat(1); id != "" {
			m.switchTo(id)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Rename):
		m.mode = ModeRename
		m.modalLine.SetValue(m.targetChatTitle())
		m.modalLine.Focus()
		return m, nil

	case key.Matches(msg, m.keyMap.Delete):
		m.mode = ModeConfirmDelete
		return m, nil

	case key.Matches(msg, m.keyMap.ClearAll):
		m.mode = ModeConfirmClear
		return m, nil

	case key.Matches(msg, m.keyMap.Search):
		m.mode = ModeSearch
		m.modalLine.SetValue(m.searchQuery)
		m.modalLine.Focus()
		return m, nil

	case key.Matches(msg, m.keyMap.FilterChats):
		m.mode = ModeFilter
		m.modalLine.SetValue(m.filterQuery)
		m.modalLine.Focus()
		return m, nil

	case key.Matches(msg, m.keyMap.Settings):
		m.mode = ModeSettings
		m.settingsCursor = 0
		return m, nil

	case key.Matches(msg, m.keyMap.Sidebar):
		if m.focus == FocusInput {
			m.focus = FocusSidebar
			m.input.Blur()
		} else {
			m.focus = FocusInput
			m.input.Focus()
		}
		return m, nil
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.send()
	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.sidebar.MoveUp()
	case key.Matches(msg, m.keyMap.Down):
		m.sidebar.MoveDown()
	case key.Matches(msg, m.keyMap.Submit):
		if item := m.sidebar.Selected(); item != nil && !item.Active {
			m.switchTo(item.ID)
		}
		m.focus = FocusInput
		m.input.Focus()
	}
	return m, nil
}

// =============================================================================
// MODAL PROMPTS
// =============================================================================

// targetChatTitle is the title the rename prompt starts from: the
// sidebar selection when the sidebar has focus, else the active chat.
func (m *Model) targetChatTitle() string {
	if m.focus == FocusSidebar {
		if item := m.sidebar.Selected(); item != nil {
			return item.Title
		}
	}
	return m.manager.Active().Title
}

// targetChatID mirrors targetChatTitle.
func (m *Model) targetChatID() string {
	if m.focus == FocusSidebar {
		if item := m.sidebar.Selected(); item != nil {
			return item.ID
		}
	}
	return m.manager.ActiveID()
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.modalLine.Blur()
		return m, nil

	case tea.KeyEnter:
		value := m.modalLine.Value()
		mode := m.mode
		m.mode = ModeNormal
		m.modalLine.Blur()

		switch mode {
		case ModeRename:
			if err := m.manager.Rename(m.targetChatID(), value); err != nil {
				// Empty titles are rejected; keep the old title quietly,
				// matching the inline-edit behavior.
				return m, nil
			}
			m.refreshSidebar()
		case ModeSearch:
			m.searchQuery = strings.TrimSpace(value)
			m.refreshViewport()
		case ModeFilter:
			m.filterQuery = strings.TrimSpace(value)
			m.refreshSidebar()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.modalLine, cmd = m.modalLine.Update(msg)

	// Filtering is live while typing; message search commits on Enter.
	if m.mode == ModeFilter {
		m.filterQuery = strings.TrimSpace(m.modalLine.Value())
		m.refreshSidebar()
	}
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := false
	switch msg.String() {
	case "y", "Y", "enter":
		confirmed = true
	case "n", "N", "esc":
	default:
		return m, nil
	}

	mode := m.mode
	m.mode = ModeNormal
	if !confirmed {
		return m, nil
	}

	m.coord.Cancel()
	m.pendingChatID = ""

	var err error
	switch mode {
	case ModeConfirmDelete:
		err = m.manager.Delete(m.targetChatID())
	case ModeConfirmClear:
		err = m.manager.ClearAll()
	}
	if err != nil {
		m.toast = components.ShowToast(m.strings.Error+err.Error(), true, 5*time.Second)
	}
	m.searchQuery = ""
	m.refreshSidebar()
	m.refreshViewport()
	return m, nil
}
