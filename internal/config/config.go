// Package config provides configuration types, defaults, and persistence for
// poststates.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/poststates/internal/log"
	"github.com/zjrosen/poststates/internal/tracing"
)

// StateConfig defines a single post state: the option key holding a post
// identifier and the label shown when it matches.
type StateConfig struct {
	Key   string `mapstructure:"key"`   // e.g. "page_for_landing"
	Label string `mapstructure:"label"` // e.g. "Landing Page"
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	ShowGUIDs     bool   `mapstructure:"show_guids"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// CacheConfig holds option cache configuration.
type CacheConfig struct {
	// Disabled bypasses the option value cache entirely.
	Disabled bool `mapstructure:"disabled"`

	// TTLSeconds is how long option values stay cached. 0 uses the default.
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// Config holds all configuration options for poststates.
type Config struct {
	// DBPath is the SQLite database location. Empty runs on an in-memory
	// option store with no persisted posts.
	DBPath string `mapstructure:"db_path"`

	// States is the ordered state mapping applied to the admin list.
	States []StateConfig `mapstructure:"states"`

	// AutoRefresh re-renders the admin list when option values change.
	AutoRefresh bool `mapstructure:"auto_refresh"`

	UI      UIConfig       `mapstructure:"ui"`
	Cache   CacheConfig    `mapstructure:"cache"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoRefresh: true,
		UI: UIConfig{
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// ValidateStates checks the states section for errors. An empty section is
// valid (no labels get registered); entries present must be complete, so
// typos in the config file surface here instead of being silently dropped at
// registration time.
func ValidateStates(states []StateConfig) error {
	for i, s := range states {
		if s.Key == "" {
			return fmt.Errorf("state %d: key is required", i)
		}
		if s.Label == "" {
			return fmt.Errorf("state %d (%s): label is required", i, s.Key)
		}
	}
	return nil
}

// DefaultConfigTemplate returns the commented starter config file.
func DefaultConfigTemplate() string {
	return `# poststates configuration
# https://github.com/zjrosen/poststates

# SQLite database location. Leave empty to run in-memory.
db_path: .poststates/poststates.db

# Re-render the admin list when option values change.
auto_refresh: true

# Post states shown next to titles in the admin list. A post gets a label
# when the option's stored value matches the post id.
states:
  - key: page_for_landing
    label: Landing Page
  - key: page_for_news
    label: News Page

ui:
  show_status_bar: true
  show_guids: false
  markdown_style: dark

cache:
  disabled: false
  ttl_seconds: 30

tracing:
  enabled: false
  exporter: file
  sample_rate: 1.0
`
}

// WriteDefaultConfig writes the starter config to configPath, creating
// parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
