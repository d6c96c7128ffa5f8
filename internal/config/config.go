// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the project-scoped handoff configuration: a flat
// JSON file recording which quality gates run during state generation and
// the shell commands behind them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FileName is the config file name inside a project's docs directory.
const FileName = "handoff.config.json"

// Gate describes one external quality gate.
type Gate struct {
	Enabled  bool   `json:"enabled"`
	Required bool   `json:"required"`
	Command  string `json:"command"`
}

// Validate rejects gates that are enabled without a command to run.
func (g Gate) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Command, validation.Required.When(g.Enabled).Error("enabled gate needs a command")),
	)
}

// Config is the whole project configuration.
type Config struct {
	Gates map[string]Gate `json:"gates"`
}

// Default returns the configuration written by init: the three standard
// gates, enabled but not required.
func Default() Config {
	return Config{
		Gates: map[string]Gate{
			"typecheck": {Enabled: true, Command: "npx tsc --noEmit"},
			"lint":      {Enabled: true, Command: "npm run lint"},
			"build":     {Enabled: true, Command: "npm run build"},
		},
	}
}

// Validate checks every gate, in name order for stable error messages.
func (c Config) Validate() error {
	names := make([]string, 0, len(c.Gates))
	for name := range c.Gates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.Gates[name].Validate(); err != nil {
			return fmt.Errorf("gate %s: %w", name, err)
		}
	}
	return nil
}

// Path returns the config file location for a project.
func Path(projectDir string) string {
	return filepath.Join(projectDir, "docs", FileName)
}

// Load reads and validates the config at path. A missing file yields the
// defaults; a present but invalid file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Save writes the config as indented JSON.
func Save(path string, c Config) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
