// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Surface errors.
var (
	// ErrSurfaceLost is returned while the surface is invalidated, typically
	// between a window resize and the matching Resize call.
	ErrSurfaceLost = errors.New("surface: surface lost")

	// ErrSurfaceBusy is returned by Acquire while another write view is held.
	ErrSurfaceBusy = errors.New("surface: write view already acquired")

	// ErrSurfaceClosed is returned when operations are attempted on a closed surface.
	ErrSurfaceClosed = errors.New("surface: surface is closed")

	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")
)

// PixelSurface is the presentable frame of an overlay: a CPU pixel buffer
// that is handed to a Presenter on Flush.
//
// Writes go through scoped views:
//
//	v, err := s.Acquire()
//	if err != nil {
//	    return // try again on the next redraw
//	}
//	defer v.Release()
//	v.Fill(0xffff0000)
//
// Releasing a view never presents; Present is always explicit.
type PixelSurface struct {
	frame     *Buffer
	presenter Presenter

	lost   bool
	busy   bool
	closed bool
}

// NewPixelSurface creates a transparent surface. A nil presenter discards
// every frame.
func NewPixelSurface(width, height int, p Presenter) *PixelSurface {
	return &PixelSurface{
		frame:     NewBuffer(width, height),
		presenter: p,
	}
}

// Width returns the surface width.
func (s *PixelSurface) Width() int { return s.frame.Width() }

// Height returns the surface height.
func (s *PixelSurface) Height() int { return s.frame.Height() }

// Acquire returns a write view over the frame. It fails when the surface is
// lost, closed, or already has an outstanding view.
func (s *PixelSurface) Acquire() (*WriteView, error) {
	switch {
	case s.closed:
		return nil, ErrSurfaceClosed
	case s.lost:
		return nil, ErrSurfaceLost
	case s.busy:
		return nil, ErrSurfaceBusy
	}
	s.busy = true
	return &WriteView{s: s}, nil
}

// Present hands the frame to the presenter.
func (s *PixelSurface) Present() error {
	switch {
	case s.closed:
		return ErrSurfaceClosed
	case s.lost:
		return ErrSurfaceLost
	case s.presenter == nil:
		return nil
	}
	if err := s.presenter.Present(s.frame.Pix(), s.frame.Width(), s.frame.Height()); err != nil {
		return fmt.Errorf("surface: present failed: %w", err)
	}
	return nil
}

// Flush implements Surface by presenting the frame.
func (s *PixelSurface) Flush() error {
	return s.Present()
}

// Invalidate marks the surface as lost until the next Resize. Acquire and
// Present fail in the meantime.
func (s *PixelSurface) Invalidate() {
	s.lost = true
}

// Valid reports whether the surface can currently be written and presented.
func (s *PixelSurface) Valid() bool {
	return !s.lost && !s.closed
}

// Resize reallocates the frame, keeping the overlapping top-left rectangle,
// and revalidates a lost surface. Callers are expected to recompose the whole
// frame afterwards.
func (s *PixelSurface) Resize(width, height int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if s.busy {
		return ErrSurfaceBusy
	}
	s.frame.Resize(width, height)
	s.lost = false
	return nil
}

// Clear implements Surface by filling the frame with c.
// The call is skipped while the surface is unavailable.
func (s *PixelSurface) Clear(c color.Color) {
	v, err := s.Acquire()
	if err != nil {
		return
	}
	defer v.Release()
	v.Fill(ARGB(c))
}

// Pixels returns a copy of the frame.
func (s *PixelSurface) Pixels() []uint32 {
	return s.frame.Clone()
}

// Snapshot implements Surface.
func (s *PixelSurface) Snapshot() *image.RGBA {
	return ARGBImage{Pix: s.frame.Pix(), W: s.frame.Width(), H: s.frame.Height()}.ToRGBA()
}

// Close implements Surface. Close is idempotent.
func (s *PixelSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.presenter.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// WriteView is scoped write access to a PixelSurface frame.
// It must be released before the next Acquire or Resize.
type WriteView struct {
	s        *PixelSurface
	released bool
}

// Pix returns the frame pixels. The slice must not be retained after Release.
func (v *WriteView) Pix() []uint32 { return v.s.frame.Pix() }

// Width returns the frame width.
func (v *WriteView) Width() int { return v.s.frame.Width() }

// Height returns the frame height.
func (v *WriteView) Height() int { return v.s.frame.Height() }

// Fill sets every frame pixel to c.
func (v *WriteView) Fill(c uint32) { v.s.frame.Fill(c) }

// Release ends the view. It is safe to call more than once.
func (v *WriteView) Release() {
	if v.released {
		return
	}
	v.released = true
	v.s.busy = false
}
