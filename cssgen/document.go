// Package cssgen turns breakpoint overrides into CSS media-query text for
// static export. The element base styles are the unconditional rules of the
// exported stylesheet and are emitted by the export pipeline itself; this
// package contributes only the per-breakpoint @media blocks.
package cssgen

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/framefold/responsive/style"
)

// Element pairs a CSS selector with the override map of one canvas element.
type Element struct {
	Selector  string            `yaml:"selector"`
	Overrides style.OverrideMap `yaml:"overrides,omitempty"`
}

// Document is the offline export format consumed by the CLI: the elements of
// a page with their responsive overrides.
type Document struct {
	Elements []Element `yaml:"elements"`
}

// LoadDocument parses a YAML export document.
func LoadDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse export document: %w", err)
	}
	return &doc, nil
}

// Prune drops override entries for breakpoints that no longer exist in the
// registry, so stale documents do not emit blocks for deleted breakpoints.
func (d *Document) Prune(breakpoints []style.Breakpoint) {
	ids := make([]string, len(breakpoints))
	for i, bp := range breakpoints {
		ids[i] = bp.ID
	}
	for _, el := range d.Elements {
		el.Overrides.Prune(ids)
	}
}
