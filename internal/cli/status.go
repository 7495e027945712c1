// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Server health probe.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// healthTimeout bounds the probe; health should answer fast even when
// chat requests are slow.
const healthTimeout = 5 * time.Second

// HandleStatus probes the server's health endpoint and reports the result.
// Exits non-zero when the server is unreachable or unhealthy.
func HandleStatus(args Args) {
	cfg, err := LoadConfig(args)
	if err != nil {
		fail("config: %v", err)
	}
	client := NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	health, err := client.CheckHealth(ctx)
	if err != nil {
		if args.JSON {
			fmt.Printf("{\"server\":%q,\"healthy\":false,\"error\":%q}\n", cfg.Server.URL, err.Error())
			os.Exit(1)
		}
		fail("%s: %v", cfg.Server.URL, err)
	}

	if args.JSON {
		out := struct {
			Server  string `json:"server"`
			Healthy bool   `json:"healthy"`
			Status  string `json:"status"`
			Message string `json:"message,omitempty"`
		}{cfg.Server.URL, true, health.Status, health.Message}
		json.NewEncoder(os.Stdout).Encode(out)
		return
	}

	fmt.Printf("%s %s\n", okStyle.Render("●"), cfg.Server.URL)
	fmt.Println(infoStyle.Render("status: " + health.Status))
	if health.Message != "" {
		fmt.Println(mutedStyle.Render(health.Message))
	}
}
