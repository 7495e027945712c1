// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns raw message content into styled terminal output.
//
// Rendering is a pure function of the message and the current display
// settings: messages store raw content and raw timestamps, so changing the
// language or clock format re-renders old messages correctly.
package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
	"github.com/muesli/termenv"

	"github.com/jeranaias/ragchat-tui/internal/i18n"
	"github.com/jeranaias/ragchat-tui/internal/model"
	"github.com/jeranaias/ragchat-tui/internal/storage"
	"github.com/jeranaias/ragchat-tui/internal/ui/styles"
)

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// =============================================================================
// RENDERER
// =============================================================================

// Renderer renders messages for the transcript view.
type Renderer struct {
	theme    *styles.Theme
	settings storage.Settings
	policy   *bluemonday.Policy
	output   *termenv.Output
	width    int
}

// New creates a renderer for the given theme and settings.
func New(theme *styles.Theme, settings storage.Settings, width int) *Renderer {
	return &Renderer{
		theme:    theme,
		settings: settings,
		policy:   bluemonday.StrictPolicy(),
		output:   termenv.DefaultOutput(),
		width:    width,
	}
}

// SetSettings swaps the display settings. The next render pass picks them
// up for every message, old and new.
func (r *Renderer) SetSettings(settings storage.Settings) {
	r.settings = settings
}

// SetWidth updates the available width.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

// Message renders one message as a styled bubble with a timestamp line.
func (r *Renderer) Message(msg model.Message) string {
	var bubble lipgloss.Style
	var body string

	switch msg.Role {
	case model.RoleUser:
		bubble = r.theme.UserBubble
		// User text is shown verbatim, no markdown interpretation.
		body = msg.Content
	case model.RoleError:
		bubble = r.theme.ErrorBubble
		body = i18n.T(r.settings.Lang()).Error + msg.Content
	default:
		bubble = r.theme.BotBubble
		body = r.renderBotContent(msg.Content)
	}

	maxWidth := r.bubbleWidth()
	rendered := bubble.MaxWidth(maxWidth).Render(body)

	stamp := r.theme.Timestamp.Render(
		i18n.FormatClock(msg.Timestamp, r.settings.Lang(), r.settings.TwelveHour()))

	block := rendered + "\n" + stamp

	// User messages sit on the right, like the web layout; everything
	// flips when the interface language is right-to-left.
	alignRight := msg.Role == model.RoleUser
	if i18n.IsRTL(r.settings.Lang()) {
		alignRight = !alignRight
	}
	if alignRight {
		block = lipgloss.NewStyle().Width(r.width).Align(lipgloss.Right).Render(block)
	}

	return block
}

// Transcript renders a full message list with the configured spacing.
func (r *Renderer) Transcript(messages []model.Message) string {
	gap := strings.Repeat("\n", r.SpacingLines()+1)
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, r.Message(msg))
	}
	return strings.Join(parts, gap)
}

// Thinking renders the pending-response placeholder.
func (r *Renderer) Thinking(dots int) string {
	label := i18n.T(r.settings.Lang()).Thinking
	return r.theme.Thinking.Render(label + strings.Repeat(".", dots%4))
}

// renderBotContent runs the markdown-lite pipeline on a server reply:
// sanitize, then fenced code blocks, inline code, and hyperlinks.
func (r *Renderer) renderBotContent(content string) string {
	// The server reply is treated as untrusted. Strip any markup before
	// interpreting the text; unescape afterwards so literal characters
	// like & and < survive as text.
	sanitized := html.UnescapeString(r.policy.Sanitize(content))

	var parts []string
	for _, seg := range splitFences(sanitized) {
		if seg.isCode {
			parts = append(parts, renderCodeBlock(seg.language, seg.text, r.bubbleWidth()))
			continue
		}
		text := applyInlineCode(seg.text)
		text = r.linkify(text)
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n")
}

// linkify turns bare URLs into terminal hyperlinks (OSC 8). Terminals
// without hyperlink support show the styled URL text unchanged.
func (r *Renderer) linkify(text string) string {
	return urlPattern.ReplaceAllStringFunc(text, func(raw string) string {
		styled := lipgloss.NewStyle().Foreground(styles.Cyan).Underline(true).Render(raw)
		return r.output.Hyperlink(raw, styled)
	})
}

// =============================================================================
// SETTINGS MAPPING
// =============================================================================

// SpacingLines maps the message-spacing setting to blank lines between
// messages.
func (r *Renderer) SpacingLines() int {
	switch r.settings.MessageSpacing {
	case "extra-compact":
		return 0
	case "compact":
		return 0
	case "relaxed":
		return 1
	case "spacious":
		return 2
	case "extra-spacious":
		return 3
	default: // normal
		return 1
	}
}

// bubbleWidth maps the font-size setting to how much of the viewport a
// bubble may occupy. Terminals cannot scale glyphs, so larger "fonts"
// render as wider, airier bubbles.
func (r *Renderer) bubbleWidth() int {
	percent := 70
	switch r.settings.FontSize {
	case "tiny":
		percent = 50
	case "extra-small":
		percent = 55
	case "small":
		percent = 60
	case "large":
		percent = 80
	case "extra-large":
		percent = 90
	case "huge":
		percent = 100
	}
	w := r.width * percent / 100
	if w < 24 {
		w = 24
	}
	return w
}
