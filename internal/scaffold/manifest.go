// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scaffold creates the document set for a new handoff session
// from an embedded template manifest.
package scaffold

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dabighomie/handoff/internal/naming"
)

//go:embed manifest.yml
var manifestYAML []byte

// Template describes one scaffolded document.
type Template struct {
	ID           string `yaml:"id"`
	Sequence     int    `yaml:"sequence"`
	Slug         string `yaml:"slug"`
	Title        string `yaml:"title"`
	Required     bool   `yaml:"required"`
	TokenBudget  int    `yaml:"token_budget"`
	MaxLines     int    `yaml:"max_lines"`
	LegacyPrefix string `yaml:"legacy_prefix,omitempty"`
	Body         string `yaml:"body"`
}

// Manifest is the ordered template set.
type Manifest struct {
	Templates []Template `yaml:"templates"`
}

// LoadManifest parses and checks the embedded manifest.
func LoadManifest() (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(manifestYAML, &m); err != nil {
		return nil, fmt.Errorf("parsing template manifest: %w", err)
	}
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("template manifest: %w", err)
	}
	return &m, nil
}

func (m *Manifest) check() error {
	seen := make(map[int]string, len(m.Templates))
	for _, t := range m.Templates {
		if prev, ok := seen[t.Sequence]; ok {
			return fmt.Errorf("sequence %02d used by both %q and %q", t.Sequence, prev, t.ID)
		}
		seen[t.Sequence] = t.ID
		if !naming.IsValidSlug(t.Slug) {
			return fmt.Errorf("template %q has invalid slug %q", t.ID, t.Slug)
		}
		if t.Required && t.Sequence > 5 {
			return fmt.Errorf("required template %q outside sequences 00-05", t.ID)
		}
	}
	return nil
}

// Required returns the templates every session must have, in sequence order.
func (m *Manifest) Required() []Template {
	return m.filter(true)
}

// Recommended returns the optional templates, in sequence order.
func (m *Manifest) Recommended() []Template {
	return m.filter(false)
}

func (m *Manifest) filter(required bool) []Template {
	var out []Template
	for _, t := range m.Templates {
		if t.Required == required {
			out = append(out, t)
		}
	}
	return out
}
