// Package config provides configuration loading and management for yaml-nested.
//
// Configuration is loaded using Viper, supporting YAML config files and
// environment variable overrides. The defaults work out of the box; a config
// file is only needed to change the path separator, output formatting, or
// log verbosity.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//
// Configuration priority (highest to lowest):
//  1. Environment variables (YAMLNESTED_ prefix)
//  2. Config file specified by YAMLNESTED_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/yaml-nested/config.yaml
//     - macOS: ~/Library/Application Support/yaml-nested/config.yaml
//     - Windows: %APPDATA%\yaml-nested\config.yaml
//  4. ./config.yaml in the working directory
//  5. [DefaultConfig] defaults
package config

import "fmt"

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader] and used by the
// CLI. Use [DefaultConfig] to get sensible defaults.
type Config struct {
	// Separator joins and splits path tokens in flattened keys.
	// Default: "."
	Separator string `mapstructure:"separator"`

	// Output contains YAML emission settings.
	Output OutputConfig `mapstructure:"output"`

	// Log contains logging settings.
	Log LogConfig `mapstructure:"log"`
}

// OutputConfig contains YAML emission settings.
type OutputConfig struct {
	// Indent is the number of spaces per nesting level in emitted YAML.
	// Must be between 1 and 9. Default: 2
	Indent int `mapstructure:"indent"`

	// Color controls styled terminal output for check summaries and errors.
	// Default: true
	Color bool `mapstructure:"color"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the logrus level name: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `mapstructure:"level"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Separator: ".",
		Output: OutputConfig{
			Indent: 2,
			Color:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	if c.Output.Indent < 1 || c.Output.Indent > 9 {
		return fmt.Errorf("output indent must be between 1 and 9, got %d", c.Output.Indent)
	}
	return nil
}
