package cssgen

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/aymerick/douceur/css"

	"github.com/framefold/responsive/style"
)

// declarations translates one override record into CSS declarations: paint
// styles first (keys sorted for deterministic output), then the layout
// bucket. Style keys are camelCase in the editor and kebab-case in CSS;
// values pass through verbatim.
func declarations(ov *style.Override) []*css.Declaration {
	keys := make([]string, 0, len(ov.Styles))
	for k := range ov.Styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	decls := make([]*css.Declaration, 0, len(keys)+5)
	for _, k := range keys {
		decls = append(decls, &css.Declaration{Property: kebabCase(k), Value: ov.Styles[k]})
	}

	if ov.Position != nil {
		decls = append(decls,
			&css.Declaration{Property: "left", Value: formatNumber(ov.Position.X) + "px"},
			&css.Declaration{Property: "top", Value: formatNumber(ov.Position.Y) + "px"},
		)
	}
	if ov.Size != nil {
		decls = append(decls,
			&css.Declaration{Property: "width", Value: dimensionValue(ov.Size.Width)},
			&css.Declaration{Property: "height", Value: dimensionValue(ov.Size.Height)},
		)
	}
	// visible:true emits nothing: base styles are assumed visible, and this
	// emitter has no base visibility to restore.
	if ov.Visible != nil && !*ov.Visible {
		decls = append(decls, &css.Declaration{Property: "display", Value: "none"})
	}

	return decls
}

func dimensionValue(d style.Dimension) string {
	switch d.Mode {
	case style.SizeAuto:
		return "auto"
	case style.SizeFill:
		return "100%"
	default:
		return formatNumber(d.Value) + "px"
	}
}

// kebabCase converts a camelCase style key to its CSS property name.
// Already-kebab keys pass through unchanged.
func kebabCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatNumber(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
