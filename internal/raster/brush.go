// Package raster rasterizes brush geometry into horizontal pixel spans.
//
// All shapes are built from one primitive, a filled disc produced by the
// midpoint circle algorithm. Lines stamp the disc at every Bresenham step and
// square outlines stamp it along the four edges, so every shape has the same
// thickness as the brush. Color is not part of the geometry: a Blitter decides
// what a span means (write ink, paint a preview, restore from a buffer).
package raster

// MinRadius is the smallest brush radius the rasterizer will stamp.
const MinRadius = 1

// Blitter receives the clipped horizontal spans produced by the rasterizer.
//
// BlitH is only called with 0 <= y < Height(), 0 <= x and x+width <= Width(),
// and width > 0.
type Blitter interface {
	Width() int
	Height() int

	// BlitH writes the span [x, x+width) on row y.
	BlitH(x, y, width int)
}

// FillCircle stamps a solid disc of the given radius centered at (cx, cy).
//
// The disc is the midpoint circle filled with four horizontal spans per step,
// which leaves no gaps between octants. A radius below MinRadius is treated
// as MinRadius.
func FillCircle(b Blitter, cx, cy, radius int) {
	if radius < MinRadius {
		radius = MinRadius
	}

	w, h := b.Width(), b.Height()

	// Fast reject: the whole disc is off the buffer.
	if cx+radius < 0 || cy+radius < 0 || cx-radius >= w || cy-radius >= h {
		return
	}

	x := radius
	y := 0
	decision := 1 - radius

	for x >= y {
		span(b, w, h, cx-x, cx+x, cy+y)
		span(b, w, h, cx-x, cx+x, cy-y)
		span(b, w, h, cx-y, cx+y, cy+x)
		span(b, w, h, cx-y, cx+y, cy-x)

		y++
		if decision <= 0 {
			decision += 2*y + 1
		} else {
			x--
			decision += 2*(y-x) + 1
		}
	}
}

// StrokeCircle draws the one pixel wide midpoint circle of the given radius
// centered at (cx, cy). Radius 0 is a single pixel; a negative radius draws
// nothing. Octant points that coincide are emitted more than once.
func StrokeCircle(b Blitter, cx, cy, radius int) {
	if radius < 0 {
		return
	}

	w, h := b.Width(), b.Height()

	x := radius
	y := 0
	decision := 1 - radius

	for x >= y {
		span(b, w, h, cx+x, cx+x, cy+y)
		span(b, w, h, cx+x, cx+x, cy-y)
		span(b, w, h, cx-x, cx-x, cy+y)
		span(b, w, h, cx-x, cx-x, cy-y)
		span(b, w, h, cx+y, cx+y, cy+x)
		span(b, w, h, cx+y, cx+y, cy-x)
		span(b, w, h, cx-y, cx-y, cy+x)
		span(b, w, h, cx-y, cx-y, cy-x)

		y++
		if decision <= 0 {
			decision += 2*y + 1
		} else {
			x--
			decision += 2*(y-x) + 1
		}
	}
}

// span clips the inclusive span [x0, x1] on row y and forwards it.
func span(b Blitter, w, h, x0, x1, y int) {
	if y < 0 || y >= h {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= w {
		x1 = w - 1
	}
	if x0 > x1 {
		return
	}
	b.BlitH(x0, y, x1-x0+1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
