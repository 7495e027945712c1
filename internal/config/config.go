// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the ragchat client.
//
// Configuration file location: ~/.ragchat/config.toml, with built-in
// defaults and environment variable overrides.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete client configuration.
type Config struct {
	// Server configuration
	Server ServerConfig `toml:"server"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`
}

// ServerConfig contains the chat server connection settings.
type ServerConfig struct {
	// URL is the base URL of the chat server
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs"`
	// MaxRetries is the number of retries for transient failures
	MaxRetries int `toml:"max_retries"`
	// RetryDelayMs is the base delay between retries in milliseconds
	RetryDelayMs int `toml:"retry_delay_ms"`
	// RequestsPerSecond caps the outbound request rate (0 = unlimited)
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// StorageConfig contains data directory settings.
type StorageConfig struct {
	// DataDir is where chats and settings are stored (empty = ~/.ragchat)
	DataDir string `toml:"data_dir"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:               "http://127.0.0.1:5000",
			TimeoutSecs:       120,
			MaxRetries:        2,
			RetryDelayMs:      500,
			RequestsPerSecond: 0,
		},
		Storage: StorageConfig{
			DataDir: "",
		},
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSecs) * time.Second
}

// RetryDelay returns the base retry delay as a duration.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Server.RetryDelayMs) * time.Millisecond
}

// DataDir resolves the data directory, falling back to ~/.ragchat.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".ragchat"), nil
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".ragchat"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadFile(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile loads configuration from a specific TOML file.
func LoadFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with defaults
// and validation applied.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func (c *Config) fillDefaults() {
	defaults := Default()
	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Server.TimeoutSecs <= 0 {
		c.Server.TimeoutSecs = defaults.Server.TimeoutSecs
	}
	if c.Server.MaxRetries < 0 {
		c.Server.MaxRetries = defaults.Server.MaxRetries
	}
	if c.Server.RetryDelayMs <= 0 {
		c.Server.RetryDelayMs = defaults.Server.RetryDelayMs
	}
	if c.Server.RequestsPerSecond < 0 {
		c.Server.RequestsPerSecond = 0
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(cfg, path)
}

// SaveFile saves the configuration to a TOML file.
func SaveFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# ragchat configuration file")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{
			Field:   "server.url",
			Message: fmt.Sprintf("invalid URL %q", c.Server.URL),
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{
			Field:   "server.url",
			Message: fmt.Sprintf("unsupported scheme %q", u.Scheme),
		}
	}
	if c.Server.TimeoutSecs <= 0 {
		return ValidationError{
			Field:   "server.timeout_secs",
			Message: "must be positive",
		}
	}
	if c.Server.MaxRetries < 0 || c.Server.MaxRetries > 10 {
		return ValidationError{
			Field:   "server.max_retries",
			Message: fmt.Sprintf("must be 0-10, got %d", c.Server.MaxRetries),
		}
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - RAGCHAT_SERVER_URL: overrides server.url
//   - RAGCHAT_TIMEOUT_SECS: overrides server.timeout_secs
//   - RAGCHAT_DATA_DIR: overrides storage.data_dir
func (c *Config) ApplyEnvOverrides() {
	if serverURL := os.Getenv("RAGCHAT_SERVER_URL"); serverURL != "" {
		c.Server.URL = serverURL
	}
	if timeout := os.Getenv("RAGCHAT_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.Server.TimeoutSecs = secs
		}
	}
	if dataDir := os.Getenv("RAGCHAT_DATA_DIR"); dataDir != "" {
		c.Storage.DataDir = dataDir
	}
}

// String returns a string representation for debugging.
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("server.url=" + c.Server.URL)
	sb.WriteString(" server.timeout_secs=" + strconv.Itoa(c.Server.TimeoutSecs))
	if c.Storage.DataDir != "" {
		sb.WriteString(" storage.data_dir=" + c.Storage.DataDir)
	}
	return sb.String()
}
