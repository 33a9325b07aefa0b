// Package config loads display settings for the sbpath command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sternbrocot/sternbrocot"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Path   PathConfig   `yaml:"path"`
	Limits LimitsConfig `yaml:"limits"`
}

// PathConfig controls how ancestor rows are elided and printed.
type PathConfig struct {
	// First is how many leading rows of a long run are shown (-1: all).
	First int `yaml:"first"`
	// Last is how many trailing rows of a long run are shown (-1: all).
	Last int `yaml:"last"`
	// Group inserts a separator every three digits.
	Group bool `yaml:"group"`
}

// LimitsConfig bounds the work done per input.
type LimitsConfig struct {
	MaxRunLength int `yaml:"max_run_length"`
	Concurrency  int `yaml:"concurrency"`
}

// Default returns the built-in settings: one leading and two trailing rows.
func Default() *Config {
	return &Config{
		Path: PathConfig{
			First: 1,
			Last:  2,
			Group: false,
		},
		Limits: LimitsConfig{
			MaxRunLength: sternbrocot.DefaultMaxRunLength,
			Concurrency:  4,
		},
	}
}

// Load reads a YAML config file. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides reads SBPATH_FIRST, SBPATH_LAST and SBPATH_GROUP.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SBPATH_FIRST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SBPATH_FIRST=%q", ErrInvalidConfig, v)
		}
		c.Path.First = n
	}
	if v := os.Getenv("SBPATH_LAST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SBPATH_LAST=%q", ErrInvalidConfig, v)
		}
		c.Path.Last = n
	}
	if v := os.Getenv("SBPATH_GROUP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: SBPATH_GROUP=%q", ErrInvalidConfig, v)
		}
		c.Path.Group = b
	}

	return nil
}

// Validate checks window and limit ranges.
func (c *Config) Validate() error {
	if c.Path.First < sternbrocot.Unlimited {
		return fmt.Errorf("%w: path.first must be >= -1, got %d", ErrInvalidConfig, c.Path.First)
	}
	if c.Path.Last < sternbrocot.Unlimited {
		return fmt.Errorf("%w: path.last must be >= -1, got %d", ErrInvalidConfig, c.Path.Last)
	}
	if c.Limits.MaxRunLength <= 0 {
		return fmt.Errorf("%w: limits.max_run_length must be positive", ErrInvalidConfig)
	}
	if c.Limits.Concurrency <= 0 {
		return fmt.Errorf("%w: limits.concurrency must be positive", ErrInvalidConfig)
	}

	return nil
}

// Options converts the config into enumeration options.
func (c *Config) Options() []sternbrocot.Option {
	return []sternbrocot.Option{
		sternbrocot.WithWindows(c.Path.First, c.Path.Last),
		sternbrocot.WithMaxRunLength(c.Limits.MaxRunLength),
	}
}
