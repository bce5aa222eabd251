// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/sketch/internal/raster"
)

// Empty is the pixel value meaning "no ink here, show the background".
const Empty uint32 = 0

// Buffer is a row-major buffer of 32-bit ARGB pixels.
//
// The invariant len(Pix()) == Width()*Height() holds at all times.
type Buffer struct {
	width  int
	height int
	pix    []uint32
}

// NewBuffer creates an empty buffer. Negative dimensions are treated as 0.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.height }

// Len returns the number of pixels.
func (b *Buffer) Len() int { return len(b.pix) }

// Pix returns the underlying pixels. The slice is only valid until the next
// Resize.
func (b *Buffer) Pix() []uint32 { return b.pix }

// at returns the pixel at (x, y), or Empty outside the buffer.
func (b *Buffer) at(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Empty
	}
	return b.pix[y*b.width+x]
}

// set writes the pixel at (x, y). Writes outside the buffer are ignored.
func (b *Buffer) set(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c uint32) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Clear sets every pixel to Empty.
func (b *Buffer) Clear() {
	clear(b.pix)
}

// Clone returns a copy of the pixels.
func (b *Buffer) Clone() []uint32 {
	out := make([]uint32, len(b.pix))
	copy(out, b.pix)
	return out
}

// Resize reallocates the buffer, keeping the top-left rectangle shared by the
// old and new sizes. Every other pixel of the new buffer is Empty.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	pix := make([]uint32, width*height)
	raster.CopyOverlap(pix, width, height, b.pix, b.width, b.height)

	b.pix = pix
	b.width = width
	b.height = height
	b.check()
}

func (b *Buffer) check() {
	if len(b.pix) != b.width*b.height {
		panic(fmt.Sprintf("surface: buffer has %d pixels, want %dx%d", len(b.pix), b.width, b.height))
	}
}
