package style

import "sort"

// ResolveStyles layers the override record for breakpointID over base and
// returns the effective paint styles. When no override entry exists the base
// map is returned as-is; otherwise a fresh map is built and base is never
// mutated. Override values win key-by-key; keys absent from the override
// fall through to base.
func ResolveStyles(base map[string]string, overrides OverrideMap, breakpointID string) map[string]string {
	ov, ok := overrides[breakpointID]
	if !ok || ov == nil || len(ov.Styles) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(ov.Styles))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range ov.Styles {
		merged[k] = v
	}
	return merged
}

// Resolve is ResolveStyles plus the layout bucket: position, size, and
// visibility overrides are split out untouched so the caller can apply them
// through its layout machinery instead of the paint path.
func Resolve(base map[string]string, overrides OverrideMap, breakpointID string) Resolved {
	res := Resolved{Styles: ResolveStyles(base, overrides, breakpointID)}
	if ov := overrides[breakpointID]; ov != nil {
		res.Position = ov.Position
		res.Size = ov.Size
		res.Visible = ov.Visible
	}
	return res
}

// Matches reports whether bp governs the given viewport width. Bounds are
// inclusive; a breakpoint with neither bound matches every width.
func Matches(bp Breakpoint, width float32) bool {
	if bp.MinWidth != nil && width < *bp.MinWidth {
		return false
	}
	if bp.MaxWidth != nil && width > *bp.MaxWidth {
		return false
	}
	return true
}

// SortMostSpecificFirst returns a copy of breakpoints ordered by MinWidth
// descending. Breakpoints without MinWidth sort as MinWidth 0; at equal
// effective MinWidth a bounded breakpoint outranks an unbounded catch-all,
// so the default never shadows a max-width-only breakpoint. The sort is
// stable: remaining ties keep their input order.
func SortMostSpecificFirst(breakpoints []Breakpoint) []Breakpoint {
	sorted := make([]Breakpoint, len(breakpoints))
	copy(sorted, breakpoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		mi, mj := effectiveMinWidth(sorted[i]), effectiveMinWidth(sorted[j])
		if mi != mj {
			return mi > mj
		}
		return bounded(sorted[i]) && !bounded(sorted[j])
	})
	return sorted
}

func effectiveMinWidth(bp Breakpoint) float32 {
	if bp.MinWidth == nil {
		return 0
	}
	return *bp.MinWidth
}

func bounded(bp Breakpoint) bool {
	return bp.MinWidth != nil || bp.MaxWidth != nil
}

// FindMatching selects the most specific breakpoint governing width: the
// first match in MinWidth-descending order. When nothing matches it falls
// back to DefaultOf, so a non-empty registry always yields a breakpoint.
func FindMatching(breakpoints []Breakpoint, width float32) Breakpoint {
	for _, bp := range SortMostSpecificFirst(breakpoints) {
		if Matches(bp, width) {
			return bp
		}
	}
	return DefaultOf(breakpoints)
}

// DefaultOf returns the breakpoint marked Default, or the first breakpoint
// when none is marked (corrupted external state), or the zero Breakpoint
// for an empty slice.
func DefaultOf(breakpoints []Breakpoint) Breakpoint {
	for _, bp := range breakpoints {
		if bp.Default {
			return bp
		}
	}
	if len(breakpoints) > 0 {
		return breakpoints[0]
	}
	return Breakpoint{}
}
