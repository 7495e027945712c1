// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for CLI output.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/ragchat-tui/internal/ui/styles"
)

var (
	// Prompt style for interactive input
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	// Informational output
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// In-chat command names
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// Warnings
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Errors
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	// Health status
	okStyle = lipgloss.NewStyle().
		Foreground(styles.Emerald).
		Bold(true)

	// Session list index
	indexStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	// Active session marker
	activeStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	// Muted detail lines
	mutedStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)
