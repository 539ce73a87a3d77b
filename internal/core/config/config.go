// Package config handles configuration loading and validation for blocpad.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported locales for symbol descriptions.
const (
	LocaleEN = "en"
	LocaleES = "es"
)

// Config holds the application configuration.
type Config struct {
	Theme   string   `yaml:"theme"`
	Locale  string   `yaml:"locale"`
	UI      UIConfig `yaml:"ui"`
	DataDir string   `yaml:"-"` // set by caller, not from config file
}

// UIConfig controls which widgets the TUI shows alongside the block list.
type UIConfig struct {
	ShowTasks     *bool `yaml:"show_tasks"`
	ShowCountdown *bool `yaml:"show_countdown"`
}

// TasksVisible reports whether the daily-task panel is enabled (default on).
func (u UIConfig) TasksVisible() bool {
	return u.ShowTasks == nil || *u.ShowTasks
}

// CountdownVisible reports whether the countdown header is enabled (default on).
func (u UIConfig) CountdownVisible() bool {
	return u.ShowCountdown == nil || *u.ShowCountdown
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:  "tokyo-night",
		Locale: LocaleEN,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided
// dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
}
