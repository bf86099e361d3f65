package style

import "testing"

func TestDimensionText(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimension
		text string
	}{
		{"fixed", Px(240), "240"},
		{"fractional", Px(12.5), "12.5"},
		{"auto", Auto(), "auto"},
		{"fill", Fill(), "fill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dim.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText: %v", err)
			}
			if string(got) != tt.text {
				t.Errorf("MarshalText = %q, want %q", got, tt.text)
			}

			var back Dimension
			if err := back.UnmarshalText(got); err != nil {
				t.Fatalf("UnmarshalText(%q): %v", got, err)
			}
			if back != tt.dim {
				t.Errorf("round trip = %+v, want %+v", back, tt.dim)
			}
		})
	}
}

func TestDimensionUnmarshalRejectsGarbage(t *testing.T) {
	var d Dimension
	if err := d.UnmarshalText([]byte("stretchy")); err == nil {
		t.Error("expected error for unknown dimension keyword")
	}
}

func TestOverrideIsEmpty(t *testing.T) {
	var nilOverride *Override
	if !nilOverride.IsEmpty() {
		t.Error("nil override should be empty")
	}
	if !(&Override{}).IsEmpty() {
		t.Error("zero override should be empty")
	}
	if (&Override{Styles: map[string]string{"color": "#fff"}}).IsEmpty() {
		t.Error("override with styles should not be empty")
	}
	vis := true
	if (&Override{Visible: &vis}).IsEmpty() {
		t.Error("override with visibility should not be empty")
	}
}

func TestOverrideMapPrune(t *testing.T) {
	m := OverrideMap{
		"tablet":  {Styles: map[string]string{"color": "#fff"}},
		"mobile":  {Visible: boolPtr(false)},
		"deleted": {Styles: map[string]string{"padding": "4px"}},
	}

	m.Prune([]string{"tablet", "mobile"})

	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if _, ok := m["deleted"]; ok {
		t.Error("orphaned entry survived prune")
	}
	if _, ok := m["tablet"]; !ok {
		t.Error("kept entry was dropped")
	}
}
