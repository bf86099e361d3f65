// Package style defines the breakpoint and override data model and the pure
// resolution functions that turn a base style plus per-breakpoint overrides
// into the effective style for a given breakpoint or viewport width.
//
// Everything in this package is in-memory and side-effect free; persistence
// and session state live in the root package.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Category groups breakpoints for UI display (device icon picking).
// It has no effect on resolution.
type Category string

const (
	CategoryDesktop Category = "desktop"
	CategoryTablet  Category = "tablet"
	CategoryMobile  Category = "mobile"
)

// Breakpoint is a named viewport class. Width and Height are the editing
// viewport used while the breakpoint is active. MinWidth and MaxWidth are
// inclusive bounds selecting which real viewport widths the breakpoint
// governs; a nil bound is open-ended, and a breakpoint with neither bound
// matches every width.
//
// Exactly one breakpoint in a registry carries Default. The default
// breakpoint's appearance IS the element's base style; it never has an
// override layer of its own.
type Breakpoint struct {
	ID       string   `toml:"id" yaml:"id"`
	Name     string   `toml:"name" yaml:"name"`
	Width    float32  `toml:"width" yaml:"width"`
	Height   float32  `toml:"height" yaml:"height"`
	Category Category `toml:"category,omitempty" yaml:"category,omitempty"`
	MinWidth *float32 `toml:"min_width,omitempty" yaml:"minWidth,omitempty"`
	MaxWidth *float32 `toml:"max_width,omitempty" yaml:"maxWidth,omitempty"`
	Default  bool     `toml:"default" yaml:"default,omitempty"`
}

// SizeMode describes how one axis of an element size is calculated.
type SizeMode string

const (
	SizeFixed SizeMode = "fixed" // explicit pixel value
	SizeAuto  SizeMode = "auto"  // sized to content
	SizeFill  SizeMode = "fill"  // fills the parent
)

// Dimension is one axis of an element size: a pixel value, "auto", or
// "fill". It serializes as the text "auto", "fill", or the bare number, in
// both TOML and YAML.
type Dimension struct {
	Mode  SizeMode
	Value float32 // pixels; meaningful only when Mode is SizeFixed
}

// Px returns a fixed pixel dimension.
func Px(v float32) Dimension { return Dimension{Mode: SizeFixed, Value: v} }

// Auto returns a content-sized dimension.
func Auto() Dimension { return Dimension{Mode: SizeAuto} }

// Fill returns a parent-filling dimension.
func Fill() Dimension { return Dimension{Mode: SizeFill} }

// MarshalText implements encoding.TextMarshaler. The zero value marshals as
// a fixed 0px dimension.
func (d Dimension) MarshalText() ([]byte, error) {
	switch d.Mode {
	case SizeAuto:
		return []byte("auto"), nil
	case SizeFill:
		return []byte("fill"), nil
	default:
		return []byte(strconv.FormatFloat(float64(d.Value), 'f', -1, 32)), nil
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dimension) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	switch s {
	case "auto":
		*d = Dimension{Mode: SizeAuto}
		return nil
	case "fill":
		*d = Dimension{Mode: SizeFill}
		return nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("invalid dimension %q: expected a number, \"auto\", or \"fill\"", s)
	}
	*d = Dimension{Mode: SizeFixed, Value: float32(v)}
	return nil
}

// Position is an element position override in canvas coordinates.
type Position struct {
	X float32 `toml:"x" yaml:"x"`
	Y float32 `toml:"y" yaml:"y"`
}

// Size is an element size override.
type Size struct {
	Width  Dimension `toml:"width" yaml:"width"`
	Height Dimension `toml:"height" yaml:"height"`
}

// Override is a sparse per-breakpoint patch to an element. Styles holds
// free-form paint properties (camelCase keys, CSS-compatible values); an
// absent key means "inherit from the base style", never "reset". Position,
// Size, and Visible are layout fields kept apart from paint styles because
// the caller applies them through different machinery.
type Override struct {
	Styles   map[string]string `toml:"styles,omitempty" yaml:"styles,omitempty"`
	Position *Position         `toml:"position,omitempty" yaml:"position,omitempty"`
	Size     *Size             `toml:"size,omitempty" yaml:"size,omitempty"`
	Visible  *bool             `toml:"visible,omitempty" yaml:"visible,omitempty"`
}

// IsEmpty reports whether the override patches nothing.
func (o *Override) IsEmpty() bool {
	if o == nil {
		return true
	}
	return len(o.Styles) == 0 && o.Position == nil && o.Size == nil && o.Visible == nil
}

// OverrideMap maps breakpoint IDs to the override record an element carries
// for that breakpoint. The default breakpoint's ID never appears as a key.
type OverrideMap map[string]*Override

// Prune removes entries whose breakpoint ID is not in keep. Called when
// breakpoints are deleted from the registry so elements do not accumulate
// orphaned overrides.
func (m OverrideMap) Prune(keep []string) {
	ids := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		ids[id] = struct{}{}
	}
	for id := range m {
		if _, ok := ids[id]; !ok {
			delete(m, id)
		}
	}
}

// Resolved is the output of Resolve: the effective paint styles plus the
// layout bucket for a single breakpoint. It is derived, never stored.
type Resolved struct {
	Styles   map[string]string
	Position *Position
	Size     *Size
	Visible  *bool
}
