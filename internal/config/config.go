// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags.
type Config struct {
	// DataDir is where profiles, sessions and credentials are stored.
	DataDir string `json:"data_dir,omitempty"`

	// Browser behavior. Headless is a pointer so an absent key is
	// distinguishable from an explicit false and the default survives
	// merging.
	Headless       *bool `json:"headless,omitempty"`
	TimeoutSeconds int   `json:"timeout_seconds,omitempty" validate:"gte=0,lte=600"`
	// DelaySeconds separates consecutive application attempts.
	DelaySeconds int `json:"delay_seconds,omitempty" validate:"gte=0,lte=3600"`

	// Logging
	Verbose bool `json:"verbose,omitempty"`
	JSONLog bool `json:"json_log,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	headless := true
	return Config{
		DataDir:        defaultDataDir(),
		Headless:       &headless,
		TimeoutSeconds: 60,
		DelaySeconds:   5,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobfiller"
	}
	return filepath.Join(home, ".jobfiller")
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Verbose and JSONLog cannot distinguish unset from false, so
// CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Headless == nil {
		result.Headless = defaults.Headless
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.DelaySeconds == 0 {
		result.DelaySeconds = defaults.DelaySeconds
	}

	return result
}

// BrowserHeadless resolves the headless setting, defaulting to true when
// it was never set.
func (c *Config) BrowserHeadless() bool {
	if c.Headless == nil {
		return true
	}
	return *c.Headless
}
