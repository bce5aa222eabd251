package sketch

import "testing"

func TestToggle(t *testing.T) {
	tests := []struct {
		in   Mode
		want Mode
	}{
		{in: Drawing{Color: Blue}, want: Erasing{Color: Blue}},
		{in: Erasing{Color: Blue}, want: Drawing{Color: Blue}},
		{in: nil, want: Drawing{Color: Red}},
	}
	for _, tt := range tests {
		if got := Toggle(tt.in); got != tt.want {
			t.Errorf("Toggle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStateStrings(t *testing.T) {
	tests := []struct {
		in   interface{ String() string }
		want string
	}{
		{Drawing{Color: Red}, "drawing(red)"},
		{Erasing{Color: RGB(1, 2, 3)}, "erasing(#010203/ff)"},
		{NoPreview{}, "none"},
		{LinePreview{X: 3, Y: 4}, "line(3,4)"},
		{SquarePreview{X: -1, Y: 0}, "square(-1,0)"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestModifiersHas(t *testing.T) {
	m := ModShift | ModAlt
	if !m.Has(ModShift) || !m.Has(ModAlt) || !m.Has(ModShift|ModAlt) {
		t.Errorf("%b should contain shift and alt", m)
	}
	if m.Has(ModControl) || m.Has(ModShift|ModControl) {
		t.Errorf("%b should not contain control", m)
	}
	if m.Has(0) {
		t.Error("Has(0) should be false")
	}
}
