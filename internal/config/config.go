// Package config loads the checker's parameters from defaults, an
// optional YAML config file and PASSCHECK_* environment overrides, in
// that precedence order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	pcerrors "passcheck/internal/errors"
	"passcheck/internal/strength"
)

// Config carries every tunable the CLI exposes. Rule count and order
// are fixed invariants; only these parameters vary.
type Config struct {
	MinLength    int    `yaml:"min_length" mapstructure:"min_length"`
	SpecialChars string `yaml:"special_chars" mapstructure:"special_chars"`
	LogFile      string `yaml:"log_file" mapstructure:"log_file"`
	NoColor      bool   `yaml:"no_color" mapstructure:"no_color"`
	Spinner      bool   `yaml:"spinner" mapstructure:"spinner"`
	Debug        bool   `yaml:"debug" mapstructure:"debug"`
	DebugLogFile string `yaml:"debug_log_file" mapstructure:"debug_log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MinLength:    strength.DefaultMinLength,
		SpecialChars: strength.DefaultSpecialChars,
		LogFile:      "~/Documents/PasswordChecker/password_log.txt",
		Spinner:      true,
		DebugLogFile: "~/.passcheck/debug.log",
	}
}

type loadOptions struct {
	homeDir    func() (string, error)
	configFile string
}

// Option customizes Load, mainly so tests can pin the home directory
// and the config file instead of touching the real environment.
type Option func(*loadOptions)

// WithHomeDir overrides how the user's home directory is resolved.
func WithHomeDir(fn func() (string, error)) Option {
	return func(o *loadOptions) { o.homeDir = fn }
}

// WithConfigFile forces a specific config file instead of searching
// the default locations. Load fails if the file is unreadable.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) { o.configFile = path }
}

// Load builds the effective configuration: defaults, then an optional
// passcheck.yaml from ~/.passcheck or the working directory, then
// PASSCHECK_* environment variables.
func Load(opts ...Option) (Config, error) {
	options := loadOptions{homeDir: os.UserHomeDir}
	for _, opt := range opts {
		opt(&options)
	}

	defaults := Default()

	v := viper.New()
	v.SetDefault("min_length", defaults.MinLength)
	v.SetDefault("special_chars", defaults.SpecialChars)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("spinner", defaults.Spinner)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("debug_log_file", defaults.DebugLogFile)

	v.SetEnvPrefix("PASSCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if options.configFile != "" {
		v.SetConfigFile(options.configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, pcerrors.NewFatalError(err, fmt.Sprintf("cannot read config file %s", options.configFile))
		}
	} else {
		v.SetConfigName("passcheck")
		v.SetConfigType("yaml")
		if home, err := options.homeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".passcheck"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, pcerrors.NewFatalError(err, "config file found but unreadable")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, pcerrors.NewFatalError(err, "config file has the wrong shape")
	}

	cfg.normalize()
	if err := cfg.resolvePaths(options.homeDir); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize snaps degenerate values back to defaults so a sloppy
// config file cannot weaken the rule set below the baseline.
func (c *Config) normalize() {
	defaults := Default()
	if c.MinLength < 1 {
		c.MinLength = defaults.MinLength
	}
	c.SpecialChars = strings.TrimSpace(c.SpecialChars)
	if c.SpecialChars == "" {
		c.SpecialChars = defaults.SpecialChars
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaults.LogFile
	}
	if strings.TrimSpace(c.DebugLogFile) == "" {
		c.DebugLogFile = defaults.DebugLogFile
	}
}

// resolvePaths expands "~/" path prefixes. The home directory is only
// resolved when a path actually needs it.
func (c *Config) resolvePaths(homeDir func() (string, error)) error {
	for _, path := range []*string{&c.LogFile, &c.DebugLogFile} {
		if !strings.HasPrefix(*path, "~/") {
			continue
		}
		home, err := homeDir()
		if err != nil {
			return pcerrors.NewFatalError(err, "cannot resolve your home directory")
		}
		*path = filepath.Join(home, (*path)[2:])
	}
	return nil
}

// YAML renders the configuration for `config show` and `config init`.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the built-in configuration to path, creating
// parent directories as needed. Refuses to clobber an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	data, err := Default().YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultFilePath is where `config init` writes.
func DefaultFilePath(homeDir func() (string, error)) (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", pcerrors.NewFatalError(err, "cannot resolve your home directory")
	}
	return filepath.Join(home, ".passcheck", "passcheck.yaml"), nil
}
