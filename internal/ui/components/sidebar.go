// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the ragchat TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/ragchat-tui/internal/session"
	"github.com/jeranaias/ragchat-tui/internal/ui/styles"
	"github.com/jeranaias/ragchat-tui/internal/util"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// Sidebar renders the chat list: newest first, with the active chat
// highlighted and an optional filter applied upstream.
type Sidebar struct {
	Items    []session.ChatItem
	Cursor   int
	Width    int
	Height   int
	Filtered bool
}

// NewSidebar creates an empty sidebar.
func NewSidebar(width, height int) Sidebar {
	return Sidebar{Width: width, Height: height}
}

// SetItems replaces the list, clamping the cursor.
func (s *Sidebar) SetItems(items []session.ChatItem) {
	s.Items = items
	if s.Cursor >= len(items) {
		s.Cursor = len(items) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// MoveUp moves the cursor towards newer chats.
func (s *Sidebar) MoveUp() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// MoveDown moves the cursor towards older chats.
func (s *Sidebar) MoveDown() {
	if s.Cursor < len(s.Items)-1 {
		s.Cursor++
	}
}

// Selected returns the item under the cursor, or nil when the list is
// empty (a filter can match nothing).
func (s *Sidebar) Selected() *session.ChatItem {
	if len(s.Items) == 0 {
		return nil
	}
	return &s.Items[s.Cursor]
}

// View renders the sidebar.
func (s Sidebar) View(theme *styles.Theme, emptyLabel string) string {
	innerWidth := s.Width - 4
	if innerWidth < 8 {
		innerWidth = 8
	}

	var rows []string
	if len(s.Items) == 0 {
		rows = append(rows, theme.SidebarPreview.Render(emptyLabel))
	}
	for i, item := range s.Items {
		title := util.TruncateWidth(item.Title, innerWidth)
		marker := "  "
		if item.Active {
			marker = "● "
		}
		line := marker + title

		style := theme.SidebarItem
		if i == s.Cursor {
			style = theme.SidebarSelected
		}
		rows = append(rows, style.Width(innerWidth+2).Render(line))

		if preview := item.Preview; preview != "" {
			rows = append(rows, theme.SidebarPreview.Render("  "+util.TruncateWidth(preview, innerWidth)))
		}
	}

	content := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Width(s.Width).
		Height(s.Height).
		MaxHeight(s.Height).
		Render(content)
}
