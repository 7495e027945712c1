// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared wiring between CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/ragchat-tui/internal/api"
	"github.com/jeranaias/ragchat-tui/internal/config"
	"github.com/jeranaias/ragchat-tui/internal/i18n"
	"github.com/jeranaias/ragchat-tui/internal/session"
	"github.com/jeranaias/ragchat-tui/internal/storage"
)

// LoadConfig loads the config file, applies environment overrides, then
// applies command-line overrides on top.
func LoadConfig(args Args) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if args.ServerURL != "" {
		cfg.Server.URL = args.ServerURL
	}
	if args.DataDir != "" {
		cfg.Storage.DataDir = args.DataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewClient builds the API client from the loaded configuration.
func NewClient(cfg *config.Config) *api.Client {
	return api.NewClientWithConfig(&api.ClientConfig{
		BaseURL:           cfg.Server.URL,
		Timeout:           cfg.Timeout(),
		MaxRetries:        cfg.Server.MaxRetries,
		RetryDelay:        cfg.RetryDelay(),
		RequestsPerSecond: cfg.Server.RequestsPerSecond,
	})
}

// OpenManager opens the chat store and session manager for the configured
// data directory.
func OpenManager(cfg *config.Config) (*session.Manager, error) {
	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewChatStoreWithDir(dir)
	if err != nil {
		return nil, err
	}
	return session.NewManager(store), nil
}

// ResolveLanguage picks the reply language: the --lang flag when valid,
// otherwise the saved interface language.
func ResolveLanguage(args Args, settings storage.Settings) string {
	if args.Language != "" && i18n.IsValid(args.Language) {
		return args.Language
	}
	return settings.Language
}

// fail prints an error to stderr and exits non-zero.
func fail(format string, a ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, a...)))
	os.Exit(1)
}
