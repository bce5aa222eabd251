package sketch

import "fmt"

// Mode is the paint mode of the canvas: Drawing or Erasing.
//
// Both variants carry the brush color so that toggling back and forth keeps
// the user's color choice.
type Mode interface {
	// Ink returns the carried brush color.
	Ink() Color

	fmt.Stringer
	isMode()
}

// Drawing writes the carried color into the drawing.
type Drawing struct {
	Color Color
}

// Erasing removes ink from the drawing. Erased pixels are empty, not painted
// with the background, so later background changes apply to them too.
type Erasing struct {
	Color Color
}

// Ink implements Mode.
func (m Drawing) Ink() Color { return m.Color }

// Ink implements Mode.
func (m Erasing) Ink() Color { return m.Color }

func (m Drawing) String() string { return "drawing(" + m.Color.String() + ")" }
func (m Erasing) String() string { return "erasing(" + m.Color.String() + ")" }

func (Drawing) isMode() {}
func (Erasing) isMode() {}

// Toggle switches between Drawing and Erasing, keeping the carried color.
func Toggle(m Mode) Mode {
	switch m := m.(type) {
	case Erasing:
		return Drawing(m)
	case Drawing:
		return Erasing(m)
	default:
		return Drawing{Color: Red}
	}
}

// Preview is the shape preview armed by a modifier-held press.
type Preview interface {
	fmt.Stringer
	isPreview()
}

// NoPreview means no shape is being previewed.
type NoPreview struct{}

// LinePreview previews a straight stroke anchored at (X, Y).
type LinePreview struct {
	X, Y int
}

// SquarePreview previews a square outline with one corner at (X, Y).
type SquarePreview struct {
	X, Y int
}

func (NoPreview) String() string       { return "none" }
func (p LinePreview) String() string   { return fmt.Sprintf("line(%d,%d)", p.X, p.Y) }
func (p SquarePreview) String() string { return fmt.Sprintf("square(%d,%d)", p.X, p.Y) }

func (NoPreview) isPreview()     {}
func (LinePreview) isPreview()   {}
func (SquarePreview) isPreview() {}
