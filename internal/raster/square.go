package raster

// StrokeSquare stamps the outline of the axis-aligned rectangle whose opposite
// corners are (x0, y0) and (x1, y1). Every integer position along the four
// edges gets a full brush stamp, so the outline is as thick as the brush.
func StrokeSquare(b Blitter, x0, y0, x1, y1, radius int) {
	left, right := x0, x1
	if left > right {
		left, right = right, left
	}
	top, bottom := y0, y1
	if top > bottom {
		top, bottom = bottom, top
	}

	for x := left; x <= right; x++ {
		FillCircle(b, x, top, radius)
		FillCircle(b, x, bottom, radius)
	}
	for y := top; y <= bottom; y++ {
		FillCircle(b, left, y, radius)
		FillCircle(b, right, y, radius)
	}
}
