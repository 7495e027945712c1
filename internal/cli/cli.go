// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for ragchat.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdStatus
	CmdConfig
	CmdSessions
	CmdClear
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet     bool
	JSON      bool
	ServerURL string
	DataDir   string
	Language  string

	// Command-specific
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `ragchat - terminal client for a local RAG chat server

Usage:
  ragchat                       Start the TUI (default)
  ragchat ask "question"        Ask a single question and exit
  ragchat chat                  Interactive line-mode chat
  ragchat status                Probe the chat server's health endpoint
  ragchat sessions [subcommand] Manage saved chats (list, export, delete)
  ragchat config [show|set|path] Configuration
  ragchat clear                 Delete all saved chats
  ragchat version               Print version information
  ragchat help                  Show this help

Global flags:
  --server URL    Chat server base URL (overrides config)
  --data-dir DIR  Data directory (default ~/.ragchat)
  --lang CODE     Reply language (en, de, zh, hi, es, ar, tr, fr, ru)
  --json          Machine-readable output where supported
  -q, --quiet     Suppress informational output

Examples:
  ragchat ask "What does the indexer do with PDF attachments?"
  ragchat ask --lang de "Wie funktioniert die Suche?"
  ragchat sessions export 2 --json > chat.json
  ragchat config set server.url http://127.0.0.1:8080
`

// Parse reads os.Args and returns the command to run plus its arguments.
func Parse() (Command, Args) {
	remaining, parsed := parseGlobalFlags(os.Args[1:])

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "ask":
		parsed.Query = strings.Join(remaining, " ")
		return CmdAsk, parsed

	case "chat":
		return CmdChat, parsed

	case "status", "health":
		return CmdStatus, parsed

	case "session", "sessions":
		if len(remaining) > 0 {
			parsed.Subcommand = remaining[0]
			parsed.Raw = remaining[1:]
		}
		return CmdSessions, parsed

	case "config":
		parseConfigArgs(&parsed, remaining)
		return CmdConfig, parsed

	case "clear":
		return CmdClear, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed
	}

	// Unknown command: treat it as an ask query, matching the common
	// "ragchat how do I ..." muscle memory.
	parsed.Query = strings.Join(append([]string{cmd}, remaining...), " ")
	return CmdAsk, parsed
}

// parseGlobalFlags strips global flags from args and returns what is left.
func parseGlobalFlags(args []string) ([]string, Args) {
	var parsed Args
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-q", "--quiet":
			parsed.Quiet = true
		case "--json":
			parsed.JSON = true
		case "--server":
			if i+1 < len(args) {
				i++
				parsed.ServerURL = args[i]
			}
		case "--data-dir":
			if i+1 < len(args) {
				i++
				parsed.DataDir = args[i]
			}
		case "--lang", "--language":
			if i+1 < len(args) {
				i++
				parsed.Language = args[i]
			}
		default:
			remaining = append(remaining, arg)
		}
	}
	return remaining, parsed
}

// parseConfigArgs handles "config [show|set key value|path]".
func parseConfigArgs(parsed *Args, remaining []string) {
	if len(remaining) == 0 {
		parsed.Subcommand = "show"
		return
	}
	parsed.Subcommand = remaining[0]
	if parsed.Subcommand == "set" {
		if len(remaining) > 1 {
			parsed.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			parsed.ConfigVal = remaining[2]
		}
	}
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion(args Args) {
	if args.JSON {
		fmt.Printf("{\"version\":%q,\"commit\":%q,\"date\":%q}\n", Version, GitCommit, BuildDate)
		return
	}
	fmt.Printf("ragchat %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
