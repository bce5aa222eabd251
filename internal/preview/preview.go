// Package preview draws transient shapes on the presentable frame without
// touching the persisted drawing.
//
// Every update first restores the pixels covered by the previous preview from
// the persisted buffer and then paints the new shape, so the frame never
// accumulates stale preview ink.
package preview

import "github.com/gogpu/sketch/internal/raster"

// Shape is the kind of preview being drawn.
type Shape uint8

const (
	// Line previews a straight brush stroke between two points.
	Line Shape = iota + 1

	// Square previews the outline of an axis-aligned rectangle.
	Square
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Line:
		return "line"
	case Square:
		return "square"
	default:
		return "none"
	}
}

// Stroke traces the shape geometry into b.
func (s Shape) Stroke(b raster.Blitter, x0, y0, x1, y1, radius int) {
	switch s {
	case Line:
		raster.StrokeLine(b, x0, y0, x1, y1, radius)
	case Square:
		raster.StrokeSquare(b, x0, y0, x1, y1, radius)
	}
}

// Layer describes one write access to the frame.
type Layer struct {
	// Persisted is the drawing buffer. It is only read.
	Persisted []uint32

	// Frame is the presentable buffer being written.
	Frame []uint32

	Width, Height int

	// Compose maps a persisted pixel to the pixel shown for it.
	Compose func(persisted uint32) uint32

	// Ink is the color of preview pixels.
	Ink uint32
}

type shape struct {
	kind           Shape
	x0, y0, x1, y1 int
	radius         int
}

// Manager remembers the last rendered preview shape.
//
// The zero Manager is ready to use.
type Manager struct {
	last   shape
	active bool
}

// Active reports whether a preview shape is currently on the frame.
func (m *Manager) Active() bool { return m.active }

// Update replaces the previous preview with a new shape from (x0, y0) to
// (x1, y1).
func (m *Manager) Update(l Layer, kind Shape, x0, y0, x1, y1, radius int) {
	m.restore(l)
	m.Track(kind, x0, y0, x1, y1, radius)
	m.paint(l)
}

// Track records a new shape without touching the frame. It is used while the
// frame is unavailable and will be recomposed before the next Reapply.
func (m *Manager) Track(kind Shape, x0, y0, x1, y1, radius int) {
	m.last = shape{kind: kind, x0: x0, y0: y0, x1: x1, y1: y1, radius: radius}
	m.active = true
}

// Delete restores the pixels under the current preview and forgets it.
func (m *Manager) Delete(l Layer) {
	m.restore(l)
	m.Forget()
}

// Reapply paints the current preview again, typically after the frame was
// recomposed from the persisted buffer.
func (m *Manager) Reapply(l Layer) {
	m.paint(l)
}

// Forget drops the current preview without touching the frame.
func (m *Manager) Forget() {
	m.last = shape{}
	m.active = false
}

func (m *Manager) paint(l Layer) {
	if !m.active {
		return
	}
	s := m.last
	s.kind.Stroke(&raster.Fill{Pix: l.Frame, W: l.Width, H: l.Height, Color: l.Ink}, s.x0, s.y0, s.x1, s.y1, s.radius)
}

func (m *Manager) restore(l Layer) {
	if !m.active {
		return
	}
	s := m.last
	s.kind.Stroke(raster.SpanFunc{W: l.Width, H: l.Height, Fn: func(x, y, width int) {
		i := y*l.Width + x
		for j := i; j < i+width; j++ {
			l.Frame[j] = l.Compose(l.Persisted[j])
		}
	}}, s.x0, s.y0, s.x1, s.y1, s.radius)
}
