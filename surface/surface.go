// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is the presentable rendering target abstraction.
//
// A Surface holds the pixels that are shown to the user. Implementations
// decide where those pixels go when flushed: a window texture, an image, or
// nowhere at all.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewPixelSurface(800, 600, surface.NewImagePresenter(nil))
//	defer s.Close()
//
//	s.Clear(color.Transparent)
//	_ = s.Flush()
//	img := s.Snapshot()
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// Flush hands the current contents to the presenter.
	// Returns an error if the surface is unavailable or presenting fails.
	Flush() error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the surface.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// ResizableSurface is an optional interface for surfaces that support resizing.
type ResizableSurface interface {
	Surface

	// Resize changes the surface dimensions.
	// The top-left rectangle shared by the old and new sizes is preserved.
	Resize(width, height int) error
}
