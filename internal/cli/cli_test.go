// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

// =============================================================================
// ARGUMENT PARSING TESTS
// =============================================================================

func parseArgs(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"ragchat"}, argv...)
	defer func() { os.Args = old }()
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseArgs(t)
	if cmd != CmdTUI {
		t.Errorf("no args should start the TUI, got %v", cmd)
	}
}

func TestParseAsk(t *testing.T) {
	cmd, args := parseArgs(t, "ask", "what", "is", "this")
	if cmd != CmdAsk {
		t.Fatalf("expected CmdAsk, got %v", cmd)
	}
	if args.Query != "what is this" {
		t.Errorf("query = %q, want %q", args.Query, "what is this")
	}
}

func TestParseUnknownCommandBecomesAsk(t *testing.T) {
	cmd, args := parseArgs(t, "how", "does", "indexing", "work")
	if cmd != CmdAsk {
		t.Fatalf("expected bare words to become an ask, got %v", cmd)
	}
	if args.Query != "how does indexing work" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseArgs(t, "--server", "http://10.0.0.2:5000", "--lang", "de", "--json", "-q", "status")
	if cmd != CmdStatus {
		t.Fatalf("expected CmdStatus, got %v", cmd)
	}
	if args.ServerURL != "http://10.0.0.2:5000" {
		t.Errorf("ServerURL = %q", args.ServerURL)
	}
	if args.Language != "de" {
		t.Errorf("Language = %q", args.Language)
	}
	if !args.JSON || !args.Quiet {
		t.Error("JSON and Quiet flags should both be set")
	}
}

func TestParseGlobalFlagsAfterCommand(t *testing.T) {
	cmd, args := parseArgs(t, "ask", "--lang", "fr", "bonjour")
	if cmd != CmdAsk {
		t.Fatalf("expected CmdAsk, got %v", cmd)
	}
	if args.Language != "fr" {
		t.Errorf("Language = %q, want fr", args.Language)
	}
	if args.Query != "bonjour" {
		t.Errorf("query = %q, want bonjour", args.Query)
	}
}

func TestParseSessions(t *testing.T) {
	cmd, args := parseArgs(t, "sessions", "export", "2")
	if cmd != CmdSessions {
		t.Fatalf("expected CmdSessions, got %v", cmd)
	}
	if args.Subcommand != "export" {
		t.Errorf("Subcommand = %q", args.Subcommand)
	}
	if len(args.Raw) != 1 || args.Raw[0] != "2" {
		t.Errorf("Raw = %v, want [2]", args.Raw)
	}
}

func TestParseConfigSet(t *testing.T) {
	cmd, args := parseArgs(t, "config", "set", "server.url", "http://localhost:8080")
	if cmd != CmdConfig {
		t.Fatalf("expected CmdConfig, got %v", cmd)
	}
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q", args.Subcommand)
	}
	if args.ConfigKey != "server.url" || args.ConfigVal != "http://localhost:8080" {
		t.Errorf("key/val = %q/%q", args.ConfigKey, args.ConfigVal)
	}
}

func TestParseConfigDefaultsToShow(t *testing.T) {
	_, args := parseArgs(t, "config")
	if args.Subcommand != "show" {
		t.Errorf("Subcommand = %q, want show", args.Subcommand)
	}
}

func TestParseVersionAliases(t *testing.T) {
	for _, alias := range []string{"version", "-v", "--version"} {
		cmd, _ := parseArgs(t, alias)
		if cmd != CmdVersion {
			t.Errorf("%q should map to CmdVersion, got %v", alias, cmd)
		}
	}
}
