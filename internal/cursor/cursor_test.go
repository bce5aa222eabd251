package cursor

import (
	"image/color"
	"testing"

	"github.com/gogpu/sketch"
)

func TestBrush(t *testing.T) {
	c := color.NRGBA{R: 0xff, A: 0xff}
	img := Brush(3, c)

	if got := img.Bounds().Dx(); got != 7 {
		t.Fatalf("width = %d, want 7", got)
	}
	if img.HotX != 3 || img.HotY != 3 {
		t.Errorf("hotspot = (%d,%d), want (3,3)", img.HotX, img.HotY)
	}
	if got := img.NRGBAAt(3, 3); got != c {
		t.Errorf("center = %v, want %v", got, c)
	}
	if got := img.NRGBAAt(0, 3); got != c {
		t.Errorf("left edge = %v, want %v", got, c)
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestBrushFaintInkOutline(t *testing.T) {
	img := Brush(3, color.NRGBA{})
	if got := img.NRGBAAt(0, 3); got != OuterRing {
		t.Errorf("edge = %v, want %v outline for transparent ink", got, OuterRing)
	}
	if got := img.NRGBAAt(3, 3); got.A != 0 {
		t.Errorf("center = %v, want the ink", got)
	}

	faintYellow := color.NRGBA{R: 0xff, G: 0xff, A: 0x20}
	if got := Brush(3, faintYellow).NRGBAAt(6, 3); got != InnerRing {
		t.Errorf("edge = %v, want black outline for faint yellow", got)
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.NRGBA
	}{
		{"black", color.NRGBA{A: 0xff}, OuterRing},
		{"white", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, InnerRing},
		{"yellow", color.NRGBA{R: 0xff, G: 0xff, A: 0xff}, InnerRing},
		{"blue", color.NRGBA{B: 0xff, A: 0xff}, OuterRing},
		{"alpha ignored", color.NRGBA{R: 0xff, G: 0xff, B: 0xff}, InnerRing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contrast(tt.in); got != tt.want {
				t.Errorf("Contrast(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBrushClampsRadius(t *testing.T) {
	img := Brush(0, color.NRGBA{A: 0xff})
	if got := img.Bounds().Dx(); got != 3 {
		t.Errorf("width = %d, want 3", got)
	}
}

func TestEraser(t *testing.T) {
	img := Eraser(4)

	if got := img.NRGBAAt(0, 4); got != OuterRing {
		t.Errorf("outer ring = %v, want %v", got, OuterRing)
	}
	if got := img.NRGBAAt(1, 4); got != InnerRing {
		t.Errorf("inner ring = %v, want %v", got, InnerRing)
	}
	if got := img.NRGBAAt(4, 4); got.A != 0 {
		t.Errorf("center = %v, want transparent", got)
	}
}

func TestForMode(t *testing.T) {
	tests := []struct {
		name string
		mode sketch.Mode
		want color.NRGBA
	}{
		{"drawing", sketch.Drawing{Color: sketch.Blue}, color.NRGBA{B: 0xff, A: 0xff}},
		{"erasing", sketch.Erasing{Color: sketch.Blue}, OuterRing},
		{"nil", nil, color.NRGBA{R: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := ForMode(tt.mode, 2)
			if got := img.NRGBAAt(0, 2); got != tt.want {
				t.Errorf("left edge = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	img := Brush(4, color.NRGBA{G: 0xff, A: 0xff})

	half := Scale(img, 0.5)
	if got := half.Bounds().Dx(); got != 5 {
		t.Errorf("scaled width = %d, want 5", got)
	}
	if half.HotX != 2 || half.HotY != 2 {
		t.Errorf("scaled hotspot = (%d,%d), want (2,2)", half.HotX, half.HotY)
	}
	if got := half.NRGBAAt(half.HotX, half.HotY); got.G != 0xff {
		t.Errorf("scaled center = %v, want green", got)
	}

	if same := Scale(img, 1); same.NRGBA != img.NRGBA {
		t.Error("Scale(1) should return the cursor unchanged")
	}
}

func TestCache(t *testing.T) {
	c := NewCache()

	a := c.ForMode(sketch.Drawing{Color: sketch.Red}, 3, 1)
	b := c.ForMode(sketch.Drawing{Color: sketch.Red}, 3, 1)
	if a.NRGBA != b.NRGBA {
		t.Error("same cursor built twice")
	}
	if other := c.ForMode(sketch.Drawing{Color: sketch.Green}, 3, 1); other.NRGBA == a.NRGBA {
		t.Error("different colors share a bitmap")
	}

	// The erasing cursor does not depend on the carried color.
	e1 := c.ForMode(sketch.Erasing{Color: sketch.Red}, 3, 1)
	e2 := c.ForMode(sketch.Erasing{Color: sketch.Blue}, 3, 1)
	if e1.NRGBA != e2.NRGBA {
		t.Error("erasing cursors with different colors were built twice")
	}

	if half := c.ForMode(sketch.Drawing{Color: sketch.Red}, 3, 0.5); half.Bounds().Dx() != 4 {
		t.Errorf("scaled width = %d, want 4", half.Bounds().Dx())
	}

	if s := c.Stats(); s.Hits != 2 || s.Misses != 4 {
		t.Errorf("Stats() = %+v, want 2 hits, 4 misses", s)
	}
}
