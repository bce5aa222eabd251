// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package history keeps bounded undo/redo stacks of run-length-encoded
// snapshots of a pixel buffer.
//
// Drawings on an overlay are sparse: most pixels are the empty color, so a
// full-screen snapshot usually collapses to a few hundred runs.
package history

import (
	"fmt"

	"github.com/gogpu/sketch/internal/raster"
)

// Run is a sequence of Length identical pixels.
type Run struct {
	Length uint32
	Color  uint32
}

// Entry is a run-length-encoded snapshot of a Width×Height buffer.
//
// The run lengths sum to Width*Height and adjacent runs never share a color.
type Entry struct {
	Width  int
	Height int
	Runs   []Run
}

// Len returns the number of pixels the entry decodes to.
func (e Entry) Len() int {
	n := 0
	for _, r := range e.Runs {
		n += int(r.Length)
	}
	return n
}

// Compress encodes a w×h buffer as maximal runs of identical color.
// The trailing run is always emitted.
func Compress(pix []uint32, w, h int) Entry {
	if len(pix) != w*h {
		panic(fmt.Sprintf("history: buffer has %d pixels, want %dx%d", len(pix), w, h))
	}

	e := Entry{Width: w, Height: h}
	if len(pix) == 0 {
		return e
	}

	current := pix[0]
	var count uint32
	for _, c := range pix {
		if c == current {
			count++
			continue
		}
		e.Runs = append(e.Runs, Run{Length: count, Color: current})
		current = c
		count = 1
	}
	e.Runs = append(e.Runs, Run{Length: count, Color: current})

	return e
}

// Decompress writes the entry into pix.
//
// It panics if the entry does not decode to exactly len(pix) pixels; callers
// must only restore snapshots taken at the current buffer size.
func Decompress(e Entry, pix []uint32) {
	if n := e.Len(); n != len(pix) {
		panic(fmt.Sprintf("history: entry decodes to %d pixels, buffer has %d", n, len(pix)))
	}

	i := 0
	for _, r := range e.Runs {
		end := i + int(r.Length)
		for ; i < end; i++ {
			pix[i] = r.Color
		}
	}
}

// Resize returns the entry re-encoded for a w×h buffer, keeping the top-left
// rectangle shared by both sizes. New pixels are 0.
func (e Entry) Resize(w, h int) Entry {
	if e.Width == w && e.Height == h {
		return e
	}
	old := make([]uint32, e.Width*e.Height)
	Decompress(e, old)

	pix := make([]uint32, w*h)
	raster.CopyOverlap(pix, w, h, old, e.Width, e.Height)
	return Compress(pix, w, h)
}
