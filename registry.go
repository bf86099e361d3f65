package responsive

import (
	"github.com/google/uuid"

	"github.com/framefold/responsive/style"
)

// BreakpointSpec describes a breakpoint to add. The registry assigns the ID,
// and new breakpoints are never the default, so neither field appears here.
// Width and height are not validated; callers own sane values.
type BreakpointSpec struct {
	Name     string
	Width    float32
	Height   float32
	Category style.Category
	MinWidth *float32
	MaxWidth *float32
}

// BreakpointPatch is a sparse update: nil fields leave the breakpoint
// untouched. MinWidth and MaxWidth can only be set through the pointer
// fields; use the Clear flags to remove a bound.
type BreakpointPatch struct {
	Name     *string
	Width    *float32
	Height   *float32
	Category *style.Category
	MinWidth *float32
	MaxWidth *float32
	Default  *bool

	ClearMinWidth bool
	ClearMaxWidth bool
}

// SeedBreakpoints returns the registry every fresh session starts with.
// Desktop is the unbounded default; tablet and mobile carry the
// conventional 768/1023/767 bounds.
func SeedBreakpoints() []style.Breakpoint {
	min768 := float32(768)
	max1023 := float32(1023)
	max767 := float32(767)
	return []style.Breakpoint{
		{ID: "desktop", Name: "Desktop", Width: 1440, Height: 1024, Category: style.CategoryDesktop, Default: true},
		{ID: "tablet", Name: "Tablet", Width: 768, Height: 1024, Category: style.CategoryTablet, MinWidth: &min768, MaxWidth: &max1023},
		{ID: "mobile", Name: "Mobile", Width: 375, Height: 812, Category: style.CategoryMobile, MaxWidth: &max767},
	}
}

// Breakpoints returns the registry in display order. The slice is a copy;
// mutations go through the Session methods so they persist.
func (s *Session) Breakpoints() []style.Breakpoint {
	out := make([]style.Breakpoint, len(s.breakpoints))
	copy(out, s.breakpoints)
	return out
}

// Get returns the breakpoint with the given ID.
func (s *Session) Get(id string) (style.Breakpoint, bool) {
	for _, bp := range s.breakpoints {
		if bp.ID == id {
			return bp, true
		}
	}
	return style.Breakpoint{}, false
}

// Default returns the default breakpoint, falling back to the first entry
// if external corruption left nothing marked.
func (s *Session) Default() style.Breakpoint {
	return style.DefaultOf(s.breakpoints)
}

// ActiveID returns the active breakpoint ID as stored, which may dangle
// after external edits; Active resolves the fallback.
func (s *Session) ActiveID() string { return s.activeID }

// Active returns the breakpoint being edited. A dangling active ID resolves
// to the default breakpoint rather than failing.
func (s *Session) Active() style.Breakpoint {
	if bp, ok := s.Get(s.activeID); ok {
		return bp
	}
	return s.Default()
}

// SetActive makes id the editing breakpoint. The ID is not validated
// against the registry; Active degrades to the default if it dangles.
func (s *Session) SetActive(id string) error {
	s.activeID = id
	return s.save()
}

// Add appends a breakpoint with a fresh unique ID and returns the ID.
func (s *Session) Add(spec BreakpointSpec) (string, error) {
	bp := style.Breakpoint{
		ID:       uuid.NewString(),
		Name:     spec.Name,
		Width:    spec.Width,
		Height:   spec.Height,
		Category: spec.Category,
		MinWidth: spec.MinWidth,
		MaxWidth: spec.MaxWidth,
	}
	s.breakpoints = append(s.breakpoints, bp)
	if err := s.save(); err != nil {
		return "", err
	}
	return bp.ID, nil
}

// Update applies patch to the breakpoint with the given ID. The single
// default is enforced by construction: patching Default=true moves the flag
// here and clears it everywhere else, while patching Default=false on the
// current default is ignored so the registry can never reach zero defaults.
func (s *Session) Update(id string, patch BreakpointPatch) error {
	idx := -1
	for i := range s.breakpoints {
		if s.breakpoints[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	bp := &s.breakpoints[idx]
	if patch.Name != nil {
		bp.Name = *patch.Name
	}
	if patch.Width != nil {
		bp.Width = *patch.Width
	}
	if patch.Height != nil {
		bp.Height = *patch.Height
	}
	if patch.Category != nil {
		bp.Category = *patch.Category
	}
	if patch.MinWidth != nil {
		bp.MinWidth = patch.MinWidth
	} else if patch.ClearMinWidth {
		bp.MinWidth = nil
	}
	if patch.MaxWidth != nil {
		bp.MaxWidth = patch.MaxWidth
	} else if patch.ClearMaxWidth {
		bp.MaxWidth = nil
	}
	if patch.Default != nil && *patch.Default && !bp.Default {
		for i := range s.breakpoints {
			s.breakpoints[i].Default = false
		}
		bp.Default = true
	}

	return s.save()
}

// Delete removes the breakpoint with the given ID. Deleting the default is
// refused with ErrDefaultBreakpoint and leaves the registry untouched. If
// the deleted breakpoint was active, the active ID falls back to the
// default's ID.
func (s *Session) Delete(id string) error {
	idx := -1
	for i := range s.breakpoints {
		if s.breakpoints[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if s.breakpoints[idx].Default {
		return ErrDefaultBreakpoint
	}

	s.breakpoints = append(s.breakpoints[:idx], s.breakpoints[idx+1:]...)
	if s.activeID == id {
		s.activeID = s.Default().ID
	}
	return s.save()
}

// Reorder rearranges the registry to match orderedIDs. Unknown IDs are
// skipped and breakpoints missing from orderedIDs are dropped, except the
// default, which is retained at the end so the registry never loses its
// base layer. If the active breakpoint is dropped, the active ID falls back
// to the default's ID.
func (s *Session) Reorder(orderedIDs []string) error {
	byID := make(map[string]style.Breakpoint, len(s.breakpoints))
	for _, bp := range s.breakpoints {
		byID[bp.ID] = bp
	}

	next := make([]style.Breakpoint, 0, len(orderedIDs))
	seenDefault := false
	for _, id := range orderedIDs {
		bp, ok := byID[id]
		if !ok {
			continue
		}
		delete(byID, id)
		if bp.Default {
			seenDefault = true
		}
		next = append(next, bp)
	}
	if !seenDefault {
		if def, ok := byID[style.DefaultOf(s.breakpoints).ID]; ok {
			next = append(next, def)
		}
	}

	s.breakpoints = next
	if _, ok := s.Get(s.activeID); !ok {
		s.activeID = s.Default().ID
	}
	return s.save()
}

// Match returns the most specific breakpoint governing the given viewport
// width, falling back to the default. Used by the preview viewport.
func (s *Session) Match(width float32) style.Breakpoint {
	return style.FindMatching(s.breakpoints, width)
}
