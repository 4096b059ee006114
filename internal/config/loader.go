package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// configFileName is the base name (without extension) searched for in the
// user config directory and the working directory.
const configFileName = "config"

// envPrefix is the prefix for environment variable overrides, e.g.
// YAMLNESTED_SEPARATOR and YAMLNESTED_OUTPUT_INDENT.
const envPrefix = "YAMLNESTED"

// Loader handles Viper-based configuration loading.
//
// Use [NewLoader] to create a Loader, then [Loader.Load] for the standard
// discovery chain or [Loader.LoadFromFile] for an explicit file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a [Loader] with defaults and environment bindings applied.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("separator", defaults.Separator)
	v.SetDefault("output.indent", defaults.Output.Indent)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("log.level", defaults.Log.Level)

	for _, key := range []string{"separator", "output.indent", "output.color", "log.level"} {
		_ = v.BindEnv(key)
	}

	return &Loader{v: v}
}

// Load loads configuration using the standard discovery chain.
//
// If YAMLNESTED_CONFIG_PATH is set, that file is loaded (and must exist).
// Otherwise config.yaml is searched for in the user config directory and the
// working directory; a missing file is not an error and defaults apply.
// Environment variables override file values in all cases.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(envPrefix + "_CONFIG_PATH"); path != "" {
		return l.LoadFromFile(path)
	}

	l.v.SetConfigName(configFileName)
	l.v.SetConfigType("yaml")
	if dir, err := ConfigDir(); err == nil {
		l.v.AddConfigPath(dir)
	}
	l.v.AddConfigPath(".")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return l.unmarshal()
}

// LoadFromFile loads configuration from an explicit file path.
// Environment variables still override values from the file.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := DefaultConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad loads configuration via [Loader.Load] and panics on failure.
// Intended for program startup where an unreadable config is fatal.
func MustLoad() *Config {
	cfg, err := NewLoader().Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// ConfigDir returns the platform-standard directory for yaml-nested
// configuration files.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "yaml-nested"), nil
}

// DefaultConfigPath returns the full path of the default config file.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName+".yaml"), nil
}

// EnsureConfigDir creates the config directory if it does not exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
