// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ragchat-tui/internal/i18n"
	"github.com/jeranaias/ragchat-tui/internal/storage"
	"github.com/jeranaias/ragchat-tui/internal/ui/components"
)

// =============================================================================
// SETTINGS PANEL
// =============================================================================

// Settings panel fields, in display order.
const (
	settingLanguage = iota
	settingFontSize
	settingSpacing
	settingTimestamp
	settingMaxMessages
	settingFieldCount
)

// maxMessagesSteps are the history-cap choices; "0" disables the cap.
var maxMessagesSteps = []string{"50", "100", "200", "500", "1000", "0"}

// handleSettingsKey drives the settings panel. Every change is applied
// and persisted immediately; Esc just closes the panel.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+s", "enter":
		m.mode = ModeNormal
		return m, nil

	case "up":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil

	case "down":
		if m.settingsCursor < settingFieldCount-1 {
			m.settingsCursor++
		}
		return m, nil

	case "left":
		m.cycleSetting(-1)
		return m, nil

	case "right":
		m.cycleSetting(1)
		return m, nil
	}
	return m, nil
}

// cycleSetting steps the focused field through its value list.
func (m *Model) cycleSetting(step int) {
	settings := m.manager.Settings()

	switch m.settingsCursor {
	case settingLanguage:
		langs := i18n.Supported()
		codes := make([]string, len(langs))
		for i, l := range langs {
			codes[i] = string(l)
		}
		settings.Language = cycle(codes, settings.Language, step)

	case settingFontSize:
		settings.FontSize = cycle(storage.FontSizes, settings.FontSize, step)

	case settingSpacing:
		settings.MessageSpacing = cycle(storage.MessageSpacings, settings.MessageSpacing, step)

	case settingTimestamp:
		if settings.TimestampFormat == storage.Timestamp12Hour {
			settings.TimestampFormat = storage.Timestamp24Hour
		} else {
			settings.TimestampFormat = storage.Timestamp12Hour
		}

	case settingMaxMessages:
		settings.MaxMessages = cycle(maxMessagesSteps, settings.MaxMessages, step)
	}

	if err := m.manager.UpdateSettings(settings); err != nil {
		m.toast = components.ShowToast(m.strings.Error+err.Error(), true, 5*time.Second)
		return
	}
	m.applySettings()
}

// cycle returns the neighbor of current in values, wrapping at both ends.
// An unknown current lands on the first value.
func cycle(values []string, current string, step int) string {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(values)) % len(values)
	return values[idx]
}

// =============================================================================
// PANEL LABELS
// =============================================================================

// settingLabel returns the localized field name.
func (m *Model) settingLabel(field int) string {
	switch field {
	case settingLanguage:
		return m.strings.InterfaceLanguage
	case settingFontSize:
		return m.strings.FontSize
	case settingSpacing:
		return m.strings.MessageSpacing
	case settingTimestamp:
		return m.strings.TimeFormat
	case settingMaxMessages:
		return m.strings.MaxMessages
	}
	return ""
}

// settingValue returns the localized display value for the field.
func (m *Model) settingValue(field int) string {
	settings := m.manager.Settings()
	switch field {
	case settingLanguage:
		return settings.Language

	case settingFontSize:
		switch settings.FontSize {
		case "tiny":
			return m.strings.Tiny
		case "extra-small":
			return m.strings.ExtraSmall
		case "small":
			return m.strings.Small
		case "large":
			return m.strings.Large
		case "extra-large":
			return m.strings.ExtraLarge
		case "huge":
			return m.strings.Huge
		default:
			return m.strings.Medium
		}

	case settingSpacing:
		switch settings.MessageSpacing {
		case "extra-compact":
			return m.strings.ExtraCompact
		case "compact":
			return m.strings.Compact
		case "relaxed":
			return m.strings.Relaxed
		case "spacious":
			return m.strings.Spacious
		case "extra-spacious":
			return m.strings.ExtraSpacious
		default:
			return m.strings.Normal
		}

	case settingTimestamp:
		if settings.TwelveHour() {
			return m.strings.TimeFormat12
		}
		return m.strings.TimeFormat24

	case settingMaxMessages:
		if settings.MessageCap() == 0 {
			return "∞"
		}
		return settings.MaxMessages
	}
	return ""
}
