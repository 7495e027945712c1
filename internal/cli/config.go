// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration show/set from the command line.
package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/ragchat-tui/internal/config"
)

// HandleConfig routes "ragchat config [show|set|path]".
func HandleConfig(args Args) {
	switch args.Subcommand {
	case "", "show":
		showConfig(args)
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(path)
	case "set":
		setConfig(args)
	default:
		fail("unknown config subcommand %q (show, set, path)", args.Subcommand)
	}
}

func showConfig(args Args) {
	cfg, err := config.Load()
	if err != nil {
		fail("%v", err)
	}
	if args.JSON {
		fmt.Printf("{\"server\":{\"url\":%q,\"timeout_secs\":%d,\"max_retries\":%d},\"storage\":{\"data_dir\":%q}}\n",
			cfg.Server.URL, cfg.Server.TimeoutSecs, cfg.Server.MaxRetries, cfg.Storage.DataDir)
		return
	}
	fmt.Print(cfg.String())
}

// setConfig updates one key in the config file. Values are validated
// before the file is written, so a bad set never breaks startup.
func setConfig(args Args) {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		fail("usage: ragchat config set KEY VALUE\nkeys: server.url, server.timeout_secs, server.max_retries, storage.data_dir")
	}

	cfg, err := config.Load()
	if err != nil {
		fail("%v", err)
	}

	switch args.ConfigKey {
	case "server.url":
		cfg.Server.URL = args.ConfigVal
	case "server.timeout_secs":
		n, err := strconv.Atoi(args.ConfigVal)
		if err != nil {
			fail("server.timeout_secs must be a number")
		}
		cfg.Server.TimeoutSecs = n
	case "server.max_retries":
		n, err := strconv.Atoi(args.ConfigVal)
		if err != nil {
			fail("server.max_retries must be a number")
		}
		cfg.Server.MaxRetries = n
	case "storage.data_dir":
		cfg.Storage.DataDir = args.ConfigVal
	default:
		fail("unknown config key %q", args.ConfigKey)
	}

	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	if err := config.Save(cfg); err != nil {
		fail("%v", err)
	}
	if !args.Quiet {
		fmt.Println(infoStyle.Render(args.ConfigKey + " = " + args.ConfigVal))
	}
}
