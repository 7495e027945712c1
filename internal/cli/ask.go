// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/ragchat-tui/internal/api"
	"github.com/jeranaias/ragchat-tui/internal/i18n"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer renders replies for terminal display.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(TerminalWidth()),
	)
	if err != nil {
		// Fall back to plain text when the renderer cannot be built
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display. The
// original content is returned when rendering fails.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse prints a reply, rendering markdown only when stdout is a
// TTY so piped output stays clean.
func displayResponse(response string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(response))
		if !strings.HasSuffix(response, "\n") {
			fmt.Println()
		}
	} else {
		fmt.Println(response)
	}
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAsk sends a single question and prints the reply. The exchange is
// not saved; use the TUI or chat mode for persistent conversations.
func HandleAsk(args Args) {
	query := strings.TrimSpace(args.Query)

	// Accept piped input as the question body when no query was given.
	if query == "" && !IsTTY() {
		data, err := readStdin()
		if err == nil {
			query = strings.TrimSpace(data)
		}
	}
	if query == "" {
		fail("usage: ragchat ask \"question\"")
	}

	cfg, err := LoadConfig(args)
	if err != nil {
		fail("config: %v", err)
	}

	language := args.Language
	if language != "" && !i18n.IsValid(language) {
		fail("unsupported language %q", language)
	}

	client := NewClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	if !args.Quiet && IsStdoutTTY() {
		fmt.Println(infoStyle.Render("asking " + cfg.Server.URL + " ..."))
	}

	start := time.Now()
	reply, err := client.Chat(ctx, []api.Message{api.NewUserMessage(query)}, language)
	if err != nil {
		exitChatError(err)
	}

	displayResponse(reply)

	if !args.Quiet && IsStdoutTTY() {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("(%.1fs)", time.Since(start).Seconds())))
	}
}

// exitChatError prints a friendly message for the well-known failure
// classes and exits.
func exitChatError(err error) {
	switch {
	case errors.Is(err, api.ErrUnreachable):
		fail("chat server is unreachable; is it running? (ragchat status)")
	case errors.Is(err, api.ErrTimeout):
		fail("request timed out: %v", err)
	case errors.Is(err, api.ErrCancelled):
		os.Exit(130)
	default:
		fail("%v", err)
	}
}

// readStdin reads all of stdin, capped at 1MB.
func readStdin() (string, error) {
	const maxStdin = 1 << 20
	data, err := io.ReadAll(io.LimitReader(os.Stdin, maxStdin))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
