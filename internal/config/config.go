// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// rigshell.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides, loaded from ~/.rigshell/config.toml.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/rigshell/internal/token"
	"github.com/jeranaias/rigshell/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete rigshell configuration.
type Config struct {
	// Prompt is displayed before each input line.
	Prompt string `toml:"prompt"`

	// HistoryFile is the input history path. Empty selects the default
	// inside the config directory; "off" disables persistence.
	HistoryFile string `toml:"history_file"`

	// Color enables styled output.
	Color bool `toml:"color"`

	// Tokenizer configures line splitting.
	Tokenizer TokenizerConfig `toml:"tokenizer"`
}

// TokenizerConfig configures the line splitter.
type TokenizerConfig struct {
	// TokenChars are single characters that always form their own
	// token (e.g. "|;").
	TokenChars string `toml:"token_chars"`

	// NoSpace, SpaceBefore, and SpaceAfter control how single-character
	// tokens are spaced when a token sequence is joined back into a line.
	NoSpace     string `toml:"no_space"`
	SpaceBefore string `toml:"space_before"`
	SpaceAfter  string `toml:"space_after"`

	// PreserveQuotes keeps quote characters in tokens instead of
	// stripping them.
	PreserveQuotes bool `toml:"preserve_quotes"`
}

// Splitter builds a token.Splitter from the tokenizer settings.
func (tc TokenizerConfig) Splitter() *token.Splitter {
	return &token.Splitter{
		TokenChars:     tc.TokenChars,
		NoSpace:        tc.NoSpace,
		SpaceBefore:    tc.SpaceBefore,
		SpaceAfter:     tc.SpaceAfter,
		PreserveQuotes: tc.PreserveQuotes,
	}
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Prompt: "rigshell> ",
		Color:  true,
	}
}

// ConfigDir returns the rigshell configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".rigshell"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// HistoryPath resolves the history file location from the config.
// An empty string means history persistence is disabled.
func (c *Config) HistoryPath() string {
	switch c.HistoryFile {
	case "off":
		return ""
	case "":
		dir, err := ConfigDir()
		if err != nil {
			return ""
		}
		return filepath.Join(dir, "history")
	default:
		return c.HistoryFile
	}
}

// =============================================================================
// LOAD AND SAVE
// =============================================================================

// Load loads configuration from the config file, falling back to
// defaults when no file exists. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path. A
// missing file is not an error; defaults apply.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the config file atomically with
// owner-only permissions.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// ENVIRONMENT OVERRIDES AND VALIDATION
// =============================================================================

// ApplyEnvOverrides applies RIGSHELL_* environment variables on top of
// the loaded values.
func (c *Config) ApplyEnvOverrides() {
	if prompt := os.Getenv("RIGSHELL_PROMPT"); prompt != "" {
		c.Prompt = prompt
	}
	if history := os.Getenv("RIGSHELL_HISTORY"); history != "" {
		c.HistoryFile = history
	}
	if color := os.Getenv("RIGSHELL_COLOR"); color != "" {
		c.Color = color == "1" || strings.EqualFold(color, "true")
	}
	if chars := os.Getenv("RIGSHELL_TOKEN_CHARS"); chars != "" {
		c.Tokenizer.TokenChars = chars
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	for _, ch := range c.Tokenizer.TokenChars {
		if ch == ' ' || ch == '\t' || ch == '\'' || ch == '"' || ch == '\\' {
			return fmt.Errorf("tokenizer.token_chars may not contain %q", ch)
		}
	}
	return nil
}

// =============================================================================
// KEY ACCESS
// =============================================================================

// Keys returns the settable configuration keys, sorted. Used by the
// shell's config command for display and completion.
func Keys() []string {
	keys := []string{
		"prompt",
		"history_file",
		"color",
		"tokenizer.token_chars",
		"tokenizer.preserve_quotes",
	}
	sort.Strings(keys)
	return keys
}

// Get retrieves a configuration value by dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "prompt":
		return c.Prompt, nil
	case "history_file":
		return c.HistoryFile, nil
	case "color":
		return fmt.Sprintf("%t", c.Color), nil
	case "tokenizer.token_chars":
		return c.Tokenizer.TokenChars, nil
	case "tokenizer.preserve_quotes":
		return fmt.Sprintf("%t", c.Tokenizer.PreserveQuotes), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set updates a configuration value by dotted key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "prompt":
		c.Prompt = value
	case "history_file":
		c.HistoryFile = value
	case "color":
		c.Color = value == "1" || strings.EqualFold(value, "true")
	case "tokenizer.token_chars":
		old := c.Tokenizer.TokenChars
		c.Tokenizer.TokenChars = value
		if err := c.Validate(); err != nil {
			c.Tokenizer.TokenChars = old
			return err
		}
	case "tokenizer.preserve_quotes":
		c.Tokenizer.PreserveQuotes = value == "1" || strings.EqualFold(value, "true")
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
