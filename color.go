package sketch

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha ARGB color packed as 0xAARRGGBB, the same layout
// as the pixels of the drawing buffer.
type Color uint32

// Palette offered by the overlay menus.
const (
	Transparent Color = 0x00000000
	Red         Color = 0xffff0000
	Green       Color = 0xff00ff00
	Blue        Color = 0xff0000ff
	Yellow      Color = 0xffffff00
	Cyan        Color = 0xff00ffff
	Magenta     Color = 0xffff00ff
	White       Color = 0xffffffff
	Black       Color = 0xff000000
)

// Palette lists the named colors in menu order.
var Palette = []Color{Red, Green, Blue, Yellow, Cyan, Magenta, White, Black, Transparent}

var colorNames = map[Color]string{
	Transparent: "transparent",
	Red:         "red",
	Green:       "green",
	Blue:        "blue",
	Yellow:      "yellow",
	Cyan:        "cyan",
	Magenta:     "magenta",
	White:       "white",
	Black:       "black",
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xff, r, g, b)
}

// ARGB packs the four channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseColor parses a palette name ("red", "transparent") or a hex triplet
// ("#ff8000", "ff8000", "#f80"). Hex colors are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for c, name := range colorNames {
		if s == name {
			return c, nil
		}
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, fmt.Errorf("sketch: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00ffffff | Color(a)<<24
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	r = uint32(c.R()) * a / 0xff
	g = uint32(c.G()) * a / 0xff
	b = uint32(c.B()) * a / 0xff
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}.Hex()
}

// String returns the palette name, or the hex triplet with alpha appended for
// colors outside the palette.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("%s/%02x", c.Hex(), c.A())
}
