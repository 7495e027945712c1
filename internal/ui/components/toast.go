// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/jeranaias/ragchat-tui/internal/ui/styles"
)

// =============================================================================
// STATUS TOAST
// =============================================================================

// Toast is a transient status line shown in the status bar. Used for
// persistence warnings and other non-fatal notices that should not enter
// the transcript.
type Toast struct {
	text    string
	isError bool
	expires time.Time
}

// ShowToast creates a toast visible for the given duration.
func ShowToast(text string, isError bool, ttl time.Duration) Toast {
	return Toast{
		text:    text,
		isError: isError,
		expires: time.Now().Add(ttl),
	}
}

// Active reports whether the toast should still be shown.
func (t Toast) Active() bool {
	return t.text != "" && time.Now().Before(t.expires)
}

// View renders the toast, or an empty string when expired.
func (t Toast) View(theme *styles.Theme) string {
	if !t.Active() {
		return ""
	}
	if t.isError {
		return theme.StatusError.Render(t.text)
	}
	return theme.StatusOK.Render(t.text)
}
