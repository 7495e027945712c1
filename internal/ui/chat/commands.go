// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// MESSAGES
// =============================================================================

// settingsChangedMsg arrives when the settings file changed on disk.
type settingsChangedMsg struct{}

// =============================================================================
// COMMANDS
// =============================================================================

// Init starts the spinner and the settings watcher loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.watcher != nil {
		cmds = append(cmds, watchSettings(m.watcher.Changed))
	}
	return tea.Batch(cmds...)
}

// watchSettings waits for the next settings-file change notification.
func watchSettings(changed <-chan string) tea.Cmd {
	return func() tea.Msg {
		for name := range changed {
			if name == "settings.json" {
				return settingsChangedMsg{}
			}
		}
		return nil
	}
}
