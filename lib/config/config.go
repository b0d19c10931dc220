// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for ll-popups.
//
// Precedence, lowest to highest:
//   - built-in defaults
//   - YAML config file named by LL_POPUPS_CONFIG (optional)
//   - LL_POPUPS_* environment variables
//   - command-line flags (applied by the command layer)
//
// The config file is optional because the defaults are complete; setting
// LL_POPUPS_CONFIG to a path that cannot be read is an error rather than
// a silent fallback.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lovelace-tools/ll-popups/lib/popup"
)

// EnvConfigFile names the environment variable holding the config file path.
const EnvConfigFile = "LL_POPUPS_CONFIG"

// Config holds the run defaults a dashboard keeps stable across
// invocations. Per-run inputs (grid, room list, template paths) are
// flags only and deliberately have no config file equivalent.
type Config struct {
	// Strategy selects how existing pop-up stacks are matched to rooms.
	// One of: name, hash, area.
	Strategy string `yaml:"strategy" env:"LL_POPUPS_STRATEGY"`

	// InsertMode governs placement of stacks for rooms with no match.
	// One of: append, keep-index.
	InsertMode string `yaml:"insert_mode" env:"LL_POPUPS_INSERT_MODE"`

	// Indent is the YAML indentation width for written documents.
	Indent int `yaml:"indent" env:"LL_POPUPS_INDENT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Strategy:   string(popup.StrategyName),
		InsertMode: string(popup.InsertAppend),
		Indent:     2,
	}
}

// Load builds the effective configuration: defaults, then the optional
// LL_POPUPS_CONFIG file, then environment variable overrides.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadFile builds the effective configuration from an explicit file
// path, then applies environment variable overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}
	return cfg, nil
}

// loadFile merges a single YAML file into the current config. Unknown
// keys are rejected so a typo never silently falls back to a default.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := popup.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := popup.ParseInsertMode(c.InsertMode); err != nil {
		errs = append(errs, err)
	}
	if c.Indent < 1 {
		errs = append(errs, fmt.Errorf("indent must be at least 1, got %d", c.Indent))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
