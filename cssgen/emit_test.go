package cssgen

import (
	"strings"
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framefold/responsive/style"
)

func f32(v float32) *float32 { return &v }
func boolPtr(b bool) *bool   { return &b }

func testBreakpoints() []style.Breakpoint {
	return []style.Breakpoint{
		{ID: "desktop", Name: "Desktop", Default: true},
		{ID: "tablet", Name: "Tablet", MinWidth: f32(768), MaxWidth: f32(1023)},
		{ID: "mobile", Name: "Mobile", MaxWidth: f32(767)},
	}
}

// parseCSS strips the breakpoint comments and feeds the rest back through
// the douceur parser, so tests assert structure rather than whitespace.
func parseCSS(t *testing.T, out string) *css.Stylesheet {
	t.Helper()
	var kept []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "/*") {
			continue
		}
		kept = append(kept, line)
	}
	sheet, err := parser.Parse(strings.Join(kept, "\n"))
	require.NoError(t, err, "emitted CSS must parse:\n%s", out)
	return sheet
}

func TestGenerateBasicBlock(t *testing.T) {
	elements := []Element{
		{
			Selector: ".hero",
			Overrides: style.OverrideMap{
				"tablet": {Styles: map[string]string{"backgroundColor": "#fafafa", "fontSize": "14px"}},
			},
		},
	}

	out := Generate(testBreakpoints(), elements)

	assert.Contains(t, out, "/* Tablet */")
	sheet := parseCSS(t, out)
	require.Len(t, sheet.Rules, 1)

	media := sheet.Rules[0]
	assert.Equal(t, "@media", media.Name)
	assert.Equal(t, "(min-width: 768px) and (max-width: 1023px)", media.Prelude)
	require.Len(t, media.Rules, 1)

	rule := media.Rules[0]
	assert.Equal(t, []string{".hero"}, rule.Selectors)
	require.Len(t, rule.Declarations, 2)
	// Keys are sorted, camelCase translated.
	assert.Equal(t, "background-color", rule.Declarations[0].Property)
	assert.Equal(t, "#fafafa", rule.Declarations[0].Value)
	assert.Equal(t, "font-size", rule.Declarations[1].Property)
}

func TestGenerateSkipsDefaultBreakpoint(t *testing.T) {
	elements := []Element{
		{
			Selector: ".hero",
			Overrides: style.OverrideMap{
				// Illegally present: the default never carries overrides.
				"desktop": {Styles: map[string]string{"color": "#000"}},
			},
		},
	}

	out := Generate(testBreakpoints(), elements)

	assert.Empty(t, out)
}

func TestGenerateSkipsUnboundedBreakpoint(t *testing.T) {
	bps := []style.Breakpoint{
		{ID: "base", Name: "Base", Default: true},
		{ID: "anywhere", Name: "Anywhere"}, // no bounds, no condition to emit
	}
	elements := []Element{
		{Selector: ".x", Overrides: style.OverrideMap{"anywhere": {Styles: map[string]string{"color": "#000"}}}},
	}

	assert.Empty(t, Generate(bps, elements))
}

func TestGenerateSkipsEmptyOverrides(t *testing.T) {
	elements := []Element{
		{Selector: ".a", Overrides: style.OverrideMap{"tablet": {}}},
		{Selector: ".b"},
	}

	assert.Empty(t, Generate(testBreakpoints(), elements))
}

func TestGenerateOrdersBlocksMostSpecificFirst(t *testing.T) {
	elements := []Element{
		{
			Selector: ".hero",
			Overrides: style.OverrideMap{
				"mobile": {Styles: map[string]string{"color": "#111"}},
				"tablet": {Styles: map[string]string{"color": "#222"}},
			},
		},
	}

	out := Generate(testBreakpoints(), elements)

	tabletAt := strings.Index(out, "/* Tablet */")
	mobileAt := strings.Index(out, "/* Mobile */")
	require.GreaterOrEqual(t, tabletAt, 0)
	require.GreaterOrEqual(t, mobileAt, 0)
	assert.Less(t, tabletAt, mobileAt, "tablet (min-width 768) must precede mobile (min-width 0)")

	sheet := parseCSS(t, out)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, "(max-width: 767px)", sheet.Rules[1].Prelude)
}

func TestGenerateLayoutBucket(t *testing.T) {
	elements := []Element{
		{
			Selector: "#card-3",
			Overrides: style.OverrideMap{
				"mobile": {
					Position: &style.Position{X: 16, Y: 32.5},
					Size:     &style.Size{Width: style.Fill(), Height: style.Auto()},
					Visible:  boolPtr(false),
				},
			},
		},
	}

	out := Generate(testBreakpoints(), elements)
	sheet := parseCSS(t, out)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Rules, 1)

	got := map[string]string{}
	for _, d := range sheet.Rules[0].Rules[0].Declarations {
		got[d.Property] = d.Value
	}
	assert.Equal(t, map[string]string{
		"left":    "16px",
		"top":     "32.5px",
		"width":   "100%",
		"height":  "auto",
		"display": "none",
	}, got)
}

func TestGenerateVisibleTrueEmitsNothing(t *testing.T) {
	// visible:true translates to no declaration, and a declaration-less
	// rule would be invalid CSS, so the element contributes no rule at all.
	elements := []Element{
		{Selector: ".a", Overrides: style.OverrideMap{"tablet": {Visible: boolPtr(true)}}},
	}

	assert.Empty(t, Generate(testBreakpoints(), elements))
}

func TestGenerateSkipsDeclarationlessRulesOnly(t *testing.T) {
	elements := []Element{
		{Selector: ".ghost", Overrides: style.OverrideMap{"tablet": {Visible: boolPtr(true)}}},
		{Selector: ".real", Overrides: style.OverrideMap{"tablet": {Styles: map[string]string{"color": "#333"}}}},
	}

	out := Generate(testBreakpoints(), elements)

	sheet := parseCSS(t, out)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Rules, 1)
	assert.Equal(t, []string{".real"}, sheet.Rules[0].Rules[0].Selectors)
	require.Len(t, sheet.Rules[0].Rules[0].Declarations, 1)
	assert.Equal(t, "color", sheet.Rules[0].Rules[0].Declarations[0].Property)
}

func TestGenerateMultipleElementsKeepOrder(t *testing.T) {
	elements := []Element{
		{Selector: ".first", Overrides: style.OverrideMap{"tablet": {Styles: map[string]string{"color": "#1"}}}},
		{Selector: ".second", Overrides: style.OverrideMap{"tablet": {Styles: map[string]string{"color": "#2"}}}},
	}

	out := Generate(testBreakpoints(), elements)
	sheet := parseCSS(t, out)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Rules, 2)
	assert.Equal(t, []string{".first"}, sheet.Rules[0].Rules[0].Selectors)
	assert.Equal(t, []string{".second"}, sheet.Rules[0].Rules[1].Selectors)
}

func TestKebabCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"backgroundColor", "background-color"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"color", "color"},
		{"font-size", "font-size"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kebabCase(tt.in), "kebabCase(%q)", tt.in)
	}
}

func TestLoadDocument(t *testing.T) {
	doc, err := LoadDocument([]byte(`
elements:
  - selector: ".hero"
    overrides:
      tablet:
        styles:
          backgroundColor: "#fafafa"
        size:
          width: fill
          height: 240
        visible: false
  - selector: ".footer"
`))
	require.NoError(t, err)
	require.Len(t, doc.Elements, 2)

	ov := doc.Elements[0].Overrides["tablet"]
	require.NotNil(t, ov)
	assert.Equal(t, "#fafafa", ov.Styles["backgroundColor"])
	require.NotNil(t, ov.Size)
	assert.Equal(t, style.SizeFill, ov.Size.Width.Mode)
	assert.Equal(t, style.Px(240), ov.Size.Height)
	require.NotNil(t, ov.Visible)
	assert.False(t, *ov.Visible)
}

func TestDocumentPrune(t *testing.T) {
	doc := &Document{Elements: []Element{
		{Selector: ".a", Overrides: style.OverrideMap{
			"tablet": {Styles: map[string]string{"color": "#1"}},
			"ghost":  {Styles: map[string]string{"color": "#2"}},
		}},
	}}

	doc.Prune(testBreakpoints())

	assert.Contains(t, doc.Elements[0].Overrides, "tablet")
	assert.NotContains(t, doc.Elements[0].Overrides, "ghost")
}
