package cssgen

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"

	"github.com/framefold/responsive/style"
)

// Generate renders one @media block per non-default bounded breakpoint that
// has at least one non-empty element override, preceded by a comment naming
// the breakpoint. Blocks appear in MinWidth-descending order (the same
// most-specific-first order resolution uses); elements keep their input
// order inside each block. The default breakpoint never contributes a block
// even if an override entry illegally names it, and breakpoints with
// neither bound are skipped because they have no media condition to wrap.
func Generate(breakpoints []style.Breakpoint, elements []Element) string {
	var b strings.Builder

	for _, bp := range style.SortMostSpecificFirst(breakpoints) {
		if bp.Default {
			continue
		}
		if bp.MinWidth == nil && bp.MaxWidth == nil {
			continue
		}

		media := css.NewRule(css.AtRule)
		media.Name = "@media"
		media.Prelude = mediaCondition(bp)

		for _, el := range elements {
			ov, ok := el.Overrides[bp.ID]
			if !ok || ov.IsEmpty() {
				continue
			}
			decls := declarations(ov)
			if len(decls) == 0 {
				// Non-empty override with no CSS translation (e.g. only
				// visible:true): a declaration-less rule is invalid CSS.
				continue
			}
			rule := css.NewRule(css.QualifiedRule)
			rule.Prelude = el.Selector
			rule.Selectors = []string{el.Selector}
			rule.Declarations = decls
			rule.EmbedLevel = 1
			media.Rules = append(media.Rules, rule)
		}
		if len(media.Rules) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "/* %s */\n", bp.Name)
		b.WriteString(media.String())
	}

	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// mediaCondition joins whichever bounds are present with "and".
func mediaCondition(bp style.Breakpoint) string {
	var parts []string
	if bp.MinWidth != nil {
		parts = append(parts, fmt.Sprintf("(min-width: %spx)", formatNumber(*bp.MinWidth)))
	}
	if bp.MaxWidth != nil {
		parts = append(parts, fmt.Sprintf("(max-width: %spx)", formatNumber(*bp.MaxWidth)))
	}
	return strings.Join(parts, " and ")
}
