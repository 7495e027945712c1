// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/ragchat-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full chat screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.bodyView())
	b.WriteString("\n")
	b.WriteString(m.inputView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

// headerView is the top bar: app name plus the active chat title.
func (m Model) headerView() string {
	title := m.theme.Title.Render("ragchat")
	chat := m.manager.Active().Title
	line := title + "  " + m.theme.PanelLabel.Render(util.TruncateWidth(chat, m.width/2))
	return m.theme.Header.Width(m.width).Render(line)
}

// bodyView is the sidebar and transcript side by side. Modal overlays
// replace the transcript pane so the list stays visible behind them.
func (m Model) bodyView() string {
	content := m.viewport.View()
	switch m.mode {
	case ModeSettings:
		content = m.overlay(m.settingsView())
	case ModeConfirmDelete:
		content = m.overlay(m.confirmView(m.strings.DeleteConfirm))
	case ModeConfirmClear:
		content = m.overlay(m.confirmView(m.strings.ClearConfirm))
	}

	if m.width-sidebarWidth < 40 {
		return content
	}
	side := m.sidebar.View(m.theme, "—")
	return lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Sidebar.Render(side), content)
}

// overlay centers a box inside the transcript pane.
func (m Model) overlay(box string) string {
	return lipgloss.Place(m.viewport.Width, m.viewport.Height,
		lipgloss.Center, lipgloss.Center, box)
}

// inputView is the compose box, or the prompt line when a text modal is
// open.
func (m Model) inputView() string {
	switch m.mode {
	case ModeRename:
		return m.promptView(m.strings.Rename)
	case ModeSearch:
		return m.promptView(m.strings.Search)
	case ModeFilter:
		return m.promptView(m.strings.Search + " (" + m.strings.NewChat + ")")
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}

// promptView is a single-line modal input with a label.
func (m Model) promptView(label string) string {
	line := m.theme.SearchPrompt.Render(label+": ") + m.modalLine.View()
	return m.theme.InputContainer.Width(m.width - 2).Render(line)
}

// confirmView asks a yes/no question.
func (m Model) confirmView(question string) string {
	body := question + "\n\n" +
		m.theme.ShortcutKey.Render("y") + m.theme.ShortcutDesc.Render(" / ") +
		m.theme.ShortcutKey.Render("n")
	return m.theme.ConfirmBox.Render(body)
}

// settingsView renders the settings panel with the cursor row
// highlighted.
func (m Model) settingsView() string {
	var rows []string
	rows = append(rows, m.theme.PanelTitle.Render(m.strings.InterfaceSettings), "")

	for field := 0; field < settingFieldCount; field++ {
		label := m.settingLabel(field)
		value := m.settingValue(field)

		cursor := "  "
		valueStyle := m.theme.PanelValue
		if field == m.settingsCursor {
			cursor = "> "
			valueStyle = valueStyle.Underline(true)
		}
		rows = append(rows, cursor+
			m.theme.PanelLabel.Render(padRight(label, 24))+
			"◂ "+valueStyle.Render(value)+" ▸")
	}

	rows = append(rows, "", m.theme.ShortcutDesc.Render("↑/↓  ←/→  Esc"))
	return m.theme.Panel.Render(strings.Join(rows, "\n"))
}

// statusView is the bottom bar: shortcut hints on the left, request
// state and toast on the right.
func (m Model) statusView() string {
	hints := []string{
		m.hint(m.strings.NewChat, m.keyMap.NewChat),
		m.hint(m.strings.Search, m.keyMap.Search),
		m.hint(m.strings.Settings, m.keyMap.Settings),
		m.hint("", m.keyMap.Quit),
	}
	left := strings.Join(hints, "  ")

	var right string
	switch {
	case m.toast.Active():
		right = m.toast.View(m.theme)
	case m.inFlight():
		right = m.theme.StatusOK.Render(m.spinner.View() + " " + m.strings.Thinking)
	case m.searchQuery != "":
		right = m.theme.SearchPrompt.Render(m.strings.Search + ": " + m.searchQuery)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// hint renders one shortcut as "key desc" using the binding's help text.
func (m Model) hint(desc string, binding key.Binding) string {
	help := binding.Help()
	if desc == "" {
		desc = help.Desc
	}
	return m.theme.ShortcutKey.Render(help.Key) + " " + m.theme.ShortcutDesc.Render(desc)
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
