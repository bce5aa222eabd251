package raster

// StrokeLine stamps a brush disc at every Bresenham step from (x0, y0) to
// (x1, y1), both endpoints included. A zero-length line stamps once.
func StrokeLine(b Blitter, x0, y0, x1, y1, radius int) {
	WalkLine(x0, y0, x1, y1, func(x, y int) {
		FillCircle(b, x, y, radius)
	})
}

// WalkLine calls fn for every point of the Bresenham line from (x0, y0) to
// (x1, y1), in order, including both endpoints.
func WalkLine(x0, y0, x1, y1 int, fn func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for x != x1 || y != y1 {
		fn(x, y)

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	fn(x, y)
}
