// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// sessions.go - Saved chat management from the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jeranaias/ragchat-tui/internal/model"
	"github.com/jeranaias/ragchat-tui/internal/session"
	"github.com/jeranaias/ragchat-tui/internal/storage"
)

// HandleSessions routes "ragchat sessions [list|export|delete]".
func HandleSessions(args Args) {
	cfg, err := LoadConfig(args)
	if err != nil {
		fail("config: %v", err)
	}
	manager, err := OpenManager(cfg)
	if err != nil {
		fail("storage: %v", err)
	}

	switch args.Subcommand {
	case "", "list", "ls":
		listSessions(manager, args)

	case "export":
		n := pickSession(manager, args.Raw)
		items := manager.ListChats("")
		chat, err := manager.Get(items[n-1].ID)
		if err != nil {
			fail("%v", err)
		}
		exportChat(chat, args.JSON)

	case "delete", "rm":
		n := pickSession(manager, args.Raw)
		items := manager.ListChats("")
		if err := manager.Delete(items[n-1].ID); err != nil {
			fail("%v", err)
		}
		if !args.Quiet {
			fmt.Println(infoStyle.Render("deleted " + items[n-1].Title))
		}

	default:
		fail("unknown sessions subcommand %q (list, export, delete)", args.Subcommand)
	}
}

// HandleClear deletes every saved chat after an explicit confirmation.
func HandleClear(args Args) {
	cfg, err := LoadConfig(args)
	if err != nil {
		fail("config: %v", err)
	}
	manager, err := OpenManager(cfg)
	if err != nil {
		fail("storage: %v", err)
	}

	if IsTTY() && !args.Quiet {
		fmt.Printf("%s [y/N] ", warningStyle.Render("Delete all saved chats?"))
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println(infoStyle.Render("aborted"))
			return
		}
	}

	if err := manager.ClearAll(); err != nil {
		fail("%v", err)
	}
	if !args.Quiet {
		fmt.Println(infoStyle.Render("all chats deleted"))
	}
}

// listSessions prints the chat list, or its JSON form for scripting.
func listSessions(manager *session.Manager, args Args) {
	items := manager.ListChats("")

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			fail("%v", err)
		}
		return
	}

	for i, item := range items {
		marker := "  "
		style := infoStyle
		if item.Active {
			marker = "* "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%s %s %s", marker,
			indexStyle.Render(fmt.Sprintf("[%d]", i+1)),
			style.Render(item.Title),
			mutedStyle.Render(fmt.Sprintf("(%d messages)", item.Messages)))
		fmt.Println(line)
	}
}

// pickSession parses a 1-based session number from the raw args.
func pickSession(manager *session.Manager, raw []string) int {
	items := manager.ListChats("")
	if len(raw) == 0 {
		fail("session number required (see 'ragchat sessions list')")
	}
	n, err := strconv.Atoi(raw[0])
	if err != nil || n < 1 || n > len(items) {
		fail("invalid session number %q (1-%d)", raw[0], len(items))
	}
	return n
}

// printExport writes the active chat to stdout as markdown or JSON.
func printExport(manager *session.Manager, asJSON bool) {
	exportChat(manager.Active(), asJSON)
}

// exportChat writes one chat to stdout as markdown or JSON.
func exportChat(chat *model.Chat, asJSON bool) {
	if asJSON {
		data, err := storage.ExportJSON(chat)
		if err != nil {
			fail("%v", err)
		}
		os.Stdout.Write(data)
		fmt.Println()
		return
	}
	fmt.Print(storage.ExportMarkdown(chat))
}
