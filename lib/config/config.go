// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for the clinicboard dashboard.
type Config struct {
	// API configures the connection to the scheduling API.
	API APIConfig `yaml:"api"`

	// Poll configures the background refresh cycle.
	Poll PollConfig `yaml:"poll"`

	// ThemeFile is an optional path to a JSONC theme override file.
	// Empty means the built-in theme.
	ThemeFile string `yaml:"theme_file,omitempty"`

	// LogOutput is an optional path for JSON log records. The TUI
	// owns the terminal, so logs never go to stderr while it runs;
	// empty discards them.
	LogOutput string `yaml:"log_output,omitempty"`
}

// APIConfig configures the scheduling API connection.
type APIConfig struct {
	// BaseURL is the root of the scheduling API, e.g.
	// "http://localhost:8000". Requests go to {BaseURL}/api/{kind}.
	BaseURL string `yaml:"base_url"`

	// RequestTimeoutSeconds bounds every individual request. A
	// request exceeding the budget is cancelled and its fetch
	// degrades to an empty result. Default: 10.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// PollConfig configures the recurring refresh cycle.
type PollConfig struct {
	// IntervalSeconds is the period between refresh cycles.
	// Default: 10.
	IntervalSeconds int `yaml:"interval_seconds"`
}

// Default returns the built-in configuration: a local API server and
// ten-second request and poll budgets.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:               "http://localhost:8000",
			RequestTimeoutSeconds: 10,
		},
		Poll: PollConfig{
			IntervalSeconds: 10,
		},
	}
}

// Load loads configuration from the CLINICBOARD_CONFIG environment
// variable. Unlike the server-side convention of failing when unset,
// an unset variable yields the defaults: the dashboard is useful
// against a local API with zero setup.
func Load() (*Config, error) {
	configPath := os.Getenv("CLINICBOARD_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// the defaults. The config file is the single source of truth;
// environment variables do not override values here.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("api.request_timeout_seconds must be positive, got %d", c.API.RequestTimeoutSeconds)
	}
	if c.Poll.IntervalSeconds <= 0 {
		return fmt.Errorf("poll.interval_seconds must be positive, got %d", c.Poll.IntervalSeconds)
	}
	return nil
}

// RequestTimeout returns the per-request budget as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.API.RequestTimeoutSeconds) * time.Second
}

// PollInterval returns the refresh period as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalSeconds) * time.Second
}
