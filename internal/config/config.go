// SPDX-License-Identifier: MIT

// Package config holds the lvgauss CLI configuration: a YAML file with
// defaults for every field, environment overrides, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgauss/gauss"
	"github.com/katalvlaran/lvgauss/linsys"
	"github.com/katalvlaran/lvgauss/parallel"
)

// Environment variables consulted by Load.
const (
	EnvBackend = "LVGAUSS_BACKEND"
	EnvUnits   = "LVGAUSS_UNITS"
	EnvBackSub = "LVGAUSS_BACKSUB"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk configuration.
type Config struct {
	Backend     string        `yaml:"backend"`      // serial, loop, pool, group (or an alias)
	Units       int           `yaml:"units"`        // execution units, >= 1
	BackSub     string        `yaml:"backsub"`      // column, row, row-locked
	SeedPolicy  string        `yaml:"seed_policy"`  // global, partition
	MaxElements int           `yaml:"max_elements"` // allocation budget in reals
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Backend:     gauss.DefaultBackend.String(),
		Units:       gauss.DefaultUnits,
		BackSub:     gauss.DefaultBackSub.String(),
		SeedPolicy:  linsys.DefaultSeedPolicy.String(),
		MaxElements: linsys.DefaultMaxElements,
		Logging:     LoggingConfig{Level: "warn"},
	}
}

// Load reads the YAML file at path over the defaults and applies the
// environment overrides. A missing file (or an empty path) yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvBackSub); v != "" {
		c.BackSub = v
	}
	if v := os.Getenv(EnvUnits); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvUnits, v, ErrInvalid)
		}
		c.Units = n
	}

	return nil
}

// Validate checks every field and reports the first bad one.
func (c *Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return fmt.Errorf("backend: %w: %w", ErrInvalid, err)
	}
	if c.Units < 1 {
		return fmt.Errorf("units=%d must be >= 1: %w", c.Units, ErrInvalid)
	}
	if _, err := c.Variant(); err != nil {
		return fmt.Errorf("backsub: %w: %w", ErrInvalid, err)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("seed_policy: %w: %w", ErrInvalid, err)
	}
	if c.MaxElements < 1 {
		return fmt.Errorf("max_elements=%d must be >= 1: %w", c.MaxElements, ErrInvalid)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level=%q: %w", c.Logging.Level, ErrInvalid)
	}

	return nil
}

// Kind parses Backend.
func (c *Config) Kind() (parallel.Kind, error) { return parallel.ParseKind(c.Backend) }

// Variant parses BackSub.
func (c *Config) Variant() (gauss.BackSub, error) { return gauss.ParseBackSub(c.BackSub) }

// Policy parses SeedPolicy.
func (c *Config) Policy() (linsys.SeedPolicy, error) { return linsys.ParseSeedPolicy(c.SeedPolicy) }
