// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/ragchat-tui/internal/ui/styles"
)

// =============================================================================
// FENCED CODE BLOCKS
// =============================================================================

// renderCodeBlock renders one fenced block: a language badge when the fence
// named one, syntax-highlighted code, and a bordered container.
func renderCodeBlock(language, code string, maxWidth int) string {
	code = strings.TrimSpace(code)

	lang := language
	if lang == "" {
		if lexer := lexers.Analyse(code); lexer != nil {
			lang = lexer.Config().Name
		}
	}

	content := highlight(code, lang)

	if language != "" {
		badge := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Background(styles.OverlayDim).
			Padding(0, 1).
			Bold(true).
			Render(language)
		content = badge + "\n" + content
	}

	width := maxWidth - 4
	if width < 20 {
		width = 20
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 1).
		MaxWidth(width).
		Render(content)
}

// highlight applies chroma syntax highlighting with terminal-safe ANSI
// output. Unknown languages fall back to plain text.
func highlight(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// =============================================================================
// INLINE CODE
// =============================================================================

// renderInlineCode styles a `code` span.
func renderInlineCode(code string) string {
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.Cyan).
		Render(code)
}

// applyInlineCode replaces `code` spans with styled text. An unmatched
// backtick is left as literal text.
func applyInlineCode(text string) string {
	var result strings.Builder
	var buf strings.Builder
	inCode := false

	for _, r := range text {
		switch {
		case r == '`' && inCode:
			result.WriteString(renderInlineCode(buf.String()))
			buf.Reset()
			inCode = false
		case r == '`':
			inCode = true
		case inCode:
			buf.WriteRune(r)
		default:
			result.WriteRune(r)
		}
	}

	if inCode {
		result.WriteString("`")
		result.WriteString(buf.String())
	}
	return result.String()
}

// =============================================================================
// BLOCK SPLITTING
// =============================================================================

// segment is a run of either prose or fenced code within a message.
type segment struct {
	isCode   bool
	language string
	text     string
}

// splitFences splits message content on ``` fences. An unclosed fence runs
// to the end of the message, matching how the content will eventually look
// once the remainder arrives.
func splitFences(text string) []segment {
	var segments []segment
	var current []string
	var language string
	inCode := false

	flush := func(isCode bool) {
		if len(current) == 0 && !isCode {
			return
		}
		segments = append(segments, segment{
			isCode:   isCode,
			language: language,
			text:     strings.Join(current, "\n"),
		})
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "```") {
			if inCode {
				flush(true)
				language = ""
				inCode = false
			} else {
				flush(false)
				language = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				inCode = true
			}
			continue
		}
		current = append(current, line)
	}
	flush(inCode)

	return segments
}
