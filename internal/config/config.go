// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads and saves the pokedex settings.
//
// Values are layered, later layers winning: built-in defaults, the TOML
// config file, an optional .env file, then the process environment.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/janderssonse/pokedex/internal/platform"
	"github.com/pelletier/go-toml/v2"
)

// Defaults.
const (
	DefaultBaseURL  = "https://pokeapi.co/api/v2"
	DefaultLogLevel = "info"
	FileName        = "config.toml"
	LogFileName     = "pokedex.log"
)

// Environment variables that override file settings.
const (
	EnvBaseURL  = "POKEDEX_API_URL"
	EnvTimeout  = "POKEDEX_TIMEOUT"
	EnvLogFile  = "POKEDEX_LOG_FILE"
	EnvLogLevel = "POKEDEX_LOG_LEVEL"
)

// ErrInvalidConfig is returned when a setting fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Duration is a time.Duration that reads and writes as "30s" in TOML.
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: timeout %q: %w", ErrInvalidConfig, text, err)
	}

	*d = Duration(parsed)

	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds every user-tunable setting.
type Config struct {
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
}

// APIConfig configures the remote catalog.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// Timeout bounds a single request. Zero means no client-side limit.
	Timeout Duration `toml:"timeout"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(platform.DataDir(), LogFileName),
			Level: DefaultLogLevel,
		},
	}
}

// DefaultPath returns the config file location.
func DefaultPath() string {
	return filepath.Join(platform.ConfigDir(), FileName)
}

// TimeoutDuration returns the request timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.API.Timeout)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's own config file
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Logging.File = platform.ExpandPath(cfg.Logging.File)

	return cfg, nil
}

// ApplyEnv overrides settings from env. Unset or empty keys are ignored.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v := env[EnvBaseURL]; v != "" {
		c.API.BaseURL = v
	}

	if v := env[EnvTimeout]; v != "" {
		if err := c.API.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
	}

	if v := env[EnvLogFile]; v != "" {
		c.Logging.File = platform.ExpandPath(v)
	}

	if v := env[EnvLogLevel]; v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// ProcessEnv returns the POKEDEX_* variables from the process environment.
func ProcessEnv() map[string]string {
	env := make(map[string]string)

	for _, key := range []string{EnvBaseURL, EnvTimeout, EnvLogFile, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}

	return env
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: api.base_url must be an http(s) URL, got %q", ErrInvalidConfig, c.API.BaseURL)
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must not be negative", ErrInvalidConfig)
	}

	level := strings.ToLower(c.Logging.Level)
	for _, valid := range validLogLevels {
		if level == valid {
			return nil
		}
	}

	return fmt.Errorf("%w: logging.level must be one of %s, got %q",
		ErrInvalidConfig, strings.Join(validLogLevels, ", "), c.Logging.Level)
}

// Marshal renders the config as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return data, nil
}
