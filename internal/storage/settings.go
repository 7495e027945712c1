// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/jeranaias/ragchat-tui/internal/i18n"
	"github.com/jeranaias/ragchat-tui/internal/util"
)

// =============================================================================
// SETTINGS TYPE
// =============================================================================

// Settings are the user-adjustable display preferences. Values are stored
// as strings to stay compatible with settings files written by earlier
// versions; unknown values fall back to defaults at read time rather than
// being rejected.
type Settings struct {
	FontSize        string `json:"fontSize"`
	MessageSpacing  string `json:"messageSpacing"`
	TimestampFormat string `json:"timestampFormat"`
	MaxMessages     string `json:"maxMessages"`
	Language        string `json:"language"`
}

// Timestamp format values.
const (
	Timestamp12Hour = "12hour"
	Timestamp24Hour = "24hour"
)

// Font size steps, smallest to largest.
var FontSizes = []string{"tiny", "extra-small", "small", "medium", "large", "extra-large", "huge"}

// Message spacing steps, tightest to loosest.
var MessageSpacings = []string{"extra-compact", "compact", "normal", "relaxed", "spacious", "extra-spacious"}

// DefaultSettings returns the factory defaults.
func DefaultSettings() Settings {
	return Settings{
		FontSize:        "medium",
		MessageSpacing:  "normal",
		TimestampFormat: Timestamp12Hour,
		MaxMessages:     "100",
		Language:        string(i18n.LangEnglish),
	}
}

// =============================================================================
// DERIVED ACCESSORS
// =============================================================================

// Lang resolves the configured language to a supported one.
func (s Settings) Lang() i18n.Language {
	return i18n.Resolve(s.Language)
}

// TwelveHour reports whether timestamps use the 12-hour clock.
func (s Settings) TwelveHour() bool {
	return s.TimestampFormat != Timestamp24Hour
}

// MessageCap returns the history cap as an int. A non-numeric or
// non-positive value disables the cap (returns 0).
func (s Settings) MessageCap() int {
	n, err := strconv.Atoi(s.MaxMessages)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// normalize replaces unknown field values with defaults so a settings file
// from a newer or older version never produces an unusable state.
func (s Settings) normalize() Settings {
	def := DefaultSettings()
	if !containsString(FontSizes, s.FontSize) {
		s.FontSize = def.FontSize
	}
	if !containsString(MessageSpacings, s.MessageSpacing) {
		s.MessageSpacing = def.MessageSpacing
	}
	if s.TimestampFormat != Timestamp12Hour && s.TimestampFormat != Timestamp24Hour {
		s.TimestampFormat = def.TimestampFormat
	}
	if s.MaxMessages == "" {
		s.MaxMessages = def.MaxMessages
	}
	if !i18n.IsValid(s.Language) {
		s.Language = def.Language
	}
	return s
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// LoadSettings reads settings, merging with defaults. Missing or corrupted
// data yields the defaults.
func (s *ChatStore) LoadSettings() Settings {
	settings := DefaultSettings()

	data, err := os.ReadFile(s.filePath(settingsFile))
	if err != nil {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings()
	}
	return settings.normalize()
}

// SaveSettings writes settings atomically.
func (s *ChatStore) SaveSettings(settings Settings) error {
	data, err := json.MarshalIndent(settings.normalize(), "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.filePath(settingsFile), data, 0644)
}
