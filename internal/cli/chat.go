// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive line-mode chat with history and slash commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/ragchat-tui/internal/api"
	"github.com/jeranaias/ragchat-tui/internal/model"
	"github.com/jeranaias/ragchat-tui/internal/session"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI wraps liner with a persistent history file, giving the REPL
// arrow-key history and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates the input handler and loads prior history.
func NewChatCLI(dataDir string) *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dataDir, "cli_history"),
	}
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
	return c
}

// ReadInput reads one line, recording non-empty input in the history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close persists history and restores the terminal.
func (c *ChatCLI) Close() {
	if f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
		c.line.WriteHistory(f)
		f.Close()
	}
	c.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChat runs the interactive line-mode chat. Conversations share the
// same store as the TUI, so sessions started here show up there.
func HandleChat(args Args) {
	if !IsTTY() {
		fail("chat mode needs an interactive terminal; use 'ragchat ask' for piped input")
	}

	cfg, err := LoadConfig(args)
	if err != nil {
		fail("config: %v", err)
	}
	manager, err := OpenManager(cfg)
	if err != nil {
		fail("storage: %v", err)
	}
	client := NewClient(cfg)

	dataDir, _ := cfg.DataDir()
	input := NewChatCLI(dataDir)
	defer input.Close()

	if !args.Quiet {
		fmt.Println(welcomeStyle.Render("ragchat") + infoStyle.Render("  "+cfg.Server.URL))
		fmt.Println(infoStyle.Render("Type a message, or " + commandStyle.Render("/help") + infoStyle.Render(" for commands.")))
		fmt.Println()
	}

	for {
		text, err := input.ReadInput(promptStyle.Render("> "))
		if err != nil {
			// Ctrl-C aborts the prompt, Ctrl-D ends the session.
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			fmt.Println()
			return
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "/") {
			if quit := runSlashCommand(text, manager); quit {
				return
			}
			continue
		}

		sendAndPrint(client, manager, args, text)
	}
}

// sendAndPrint appends the user message, performs the request, and prints
// the reply. Failed sends are rolled back so the saved history matches
// what the server actually received.
func sendAndPrint(client *api.Client, manager *session.Manager, args Args, text string) {
	userMsg := model.NewUserMessage(text)
	if err := manager.Append(userMsg); err != nil {
		fmt.Println(warningStyle.Render("could not save message: " + err.Error()))
	}

	language := ResolveLanguage(args, manager.Settings())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reply, err := client.Chat(ctx, model.WireMessages(manager.Messages()), language)
	if err != nil {
		manager.Rollback(userMsg.ID)
		if errors.Is(err, api.ErrCancelled) {
			fmt.Println(warningStyle.Render("cancelled"))
			return
		}
		fmt.Println(errorStyle.Render(err.Error()))
		return
	}

	if err := manager.Append(model.NewBotMessage(reply)); err != nil {
		fmt.Println(warningStyle.Render("could not save reply: " + err.Error()))
	}
	displayResponse(reply)
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

const chatHelpText = `Commands:
  /new              Start a new chat
  /chats            List saved chats
  /switch N         Switch to chat number N from /chats
  /rename TITLE     Rename the current chat
  /delete           Delete the current chat
  /export [json]    Print the current chat as markdown or JSON
  /help             Show this help
  /quit             Exit
`

// runSlashCommand executes one in-chat command. It returns true when the
// session should end.
func runSlashCommand(text string, manager *session.Manager) bool {
	fields := strings.Fields(text)
	cmd := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(text, fields[0]))

	switch cmd {
	case "/quit", "/exit", "/q":
		return true

	case "/help", "/?":
		fmt.Print(chatHelpText)

	case "/new":
		if _, err := manager.Create(); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			break
		}
		fmt.Println(infoStyle.Render("started " + manager.Active().Title))

	case "/chats", "/list":
		printChatList(manager)

	case "/switch":
		items := manager.ListChats("")
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > len(items) {
			fmt.Println(warningStyle.Render("usage: /switch N (see /chats)"))
			break
		}
		if err := manager.Switch(items[n-1].ID); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			break
		}
		fmt.Println(infoStyle.Render("switched to " + manager.Active().Title))

	case "/rename":
		if err := manager.Rename(manager.ActiveID(), rest); err != nil {
			fmt.Println(warningStyle.Render("usage: /rename TITLE"))
			break
		}
		fmt.Println(infoStyle.Render("renamed to " + manager.Active().Title))

	case "/delete":
		if err := manager.Delete(manager.ActiveID()); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			break
		}
		fmt.Println(infoStyle.Render("deleted; now on " + manager.Active().Title))

	case "/export":
		printExport(manager, strings.EqualFold(rest, "json"))

	default:
		fmt.Println(warningStyle.Render("unknown command " + cmd + " (try /help)"))
	}
	return false
}

// printChatList shows saved chats, newest first, with the active one
// marked.
func printChatList(manager *session.Manager) {
	for i, item := range manager.ListChats("") {
		marker := "  "
		style := infoStyle
		if item.Active {
			marker = "* "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%s %s", marker, indexStyle.Render(fmt.Sprintf("[%d]", i+1)), style.Render(item.Title))
		if item.Preview != "" {
			line += mutedStyle.Render("  " + item.Preview)
		}
		fmt.Println(line)
	}
}
