// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the server configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Host string `json:"host,omitempty"` // Bind address (default 0.0.0.0)
	Port int    `json:"port,omitempty"` // Listen port

	// Simulated processing delays, in milliseconds. Zero means default;
	// set verbose-friendly small values for local development.
	FileDelayMS     int `json:"file_delay_ms,omitempty"`     // Resume file processing delay
	LinkedInDelayMS int `json:"linkedin_delay_ms,omitempty"` // LinkedIn import delay
	TextDelayMS     int `json:"text_delay_ms,omitempty"`     // Raw text processing delay
	AnalysisDelayMS int `json:"analysis_delay_ms,omitempty"` // Career analysis delay

	// Behavior
	Seed    int64 `json:"seed,omitempty"`    // RNG seed; 0 means time-based
	Verbose bool  `json:"verbose,omitempty"` // Print detailed session information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.FileDelayMS < 0 {
		return fmt.Errorf("config error: 'file_delay_ms' must be non-negative")
	}
	if c.LinkedInDelayMS < 0 {
		return fmt.Errorf("config error: 'linkedin_delay_ms' must be non-negative")
	}
	if c.TextDelayMS < 0 {
		return fmt.Errorf("config error: 'text_delay_ms' must be non-negative")
	}
	if c.AnalysisDelayMS < 0 {
		return fmt.Errorf("config error: 'analysis_delay_ms' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Host == "" {
		result.Host = defaults.Host
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FileDelayMS == 0 {
		result.FileDelayMS = defaults.FileDelayMS
	}
	if result.LinkedInDelayMS == 0 {
		result.LinkedInDelayMS = defaults.LinkedInDelayMS
	}
	if result.TextDelayMS == 0 {
		result.TextDelayMS = defaults.TextDelayMS
	}
	if result.AnalysisDelayMS == 0 {
		result.AnalysisDelayMS = defaults.AnalysisDelayMS
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
