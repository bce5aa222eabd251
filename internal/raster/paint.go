package raster

// Fill is a Blitter that writes a single color into a row-major uint32
// pixel buffer of W×H pixels.
type Fill struct {
	Pix   []uint32
	W, H  int
	Color uint32
}

// Width returns the buffer width.
func (f *Fill) Width() int { return f.W }

// Height returns the buffer height.
func (f *Fill) Height() int { return f.H }

// BlitH writes Color over the span.
func (f *Fill) BlitH(x, y, width int) {
	i := y*f.W + x
	row := f.Pix[i : i+width]
	for j := range row {
		row[j] = f.Color
	}
}

// SpanFunc adapts a function to the Blitter interface for a W×H target.
type SpanFunc struct {
	W, H int
	Fn   func(x, y, width int)
}

// Width returns the target width.
func (s SpanFunc) Width() int { return s.W }

// Height returns the target height.
func (s SpanFunc) Height() int { return s.H }

// BlitH forwards the span to Fn.
func (s SpanFunc) BlitH(x, y, width int) { s.Fn(x, y, width) }

// CopyOverlap copies the top-left rectangle shared by a sw×sh source and a
// dw×dh destination, row by row. Destination pixels outside that rectangle
// are left untouched.
func CopyOverlap(dst []uint32, dw, dh int, src []uint32, sw, sh int) {
	rows := min(dh, sh)
	cols := min(dw, sw)
	if rows <= 0 || cols <= 0 {
		return
	}
	for y := 0; y < rows; y++ {
		copy(dst[y*dw:y*dw+cols], src[y*sw:y*sw+cols])
	}
}
