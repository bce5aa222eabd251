// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// Presenter receives finished frames from a PixelSurface.
//
// frame holds width*height straight-alpha ARGB pixels and is only valid for
// the duration of the call.
type Presenter interface {
	Present(frame []uint32, width, height int) error
}

// PresenterFunc adapts an ordinary function to the Presenter interface.
type PresenterFunc func(frame []uint32, width, height int) error

// Present calls f(frame, width, height).
func (f PresenterFunc) Present(frame []uint32, width, height int) error {
	return f(frame, width, height)
}

// Discard is a Presenter that drops every frame.
var Discard Presenter = PresenterFunc(func([]uint32, int, int) error { return nil })

// ImagePresenter keeps the last presented frame as an *image.RGBA.
//
// ImagePresenter is safe for concurrent use: Image may be called from a
// goroutine other than the one presenting.
type ImagePresenter struct {
	mu     sync.Mutex
	img    *image.RGBA
	frames int
}

// NewImagePresenter creates a presenter that draws into dst.
// If dst is nil, an image is allocated on the first Present.
func NewImagePresenter(dst *image.RGBA) *ImagePresenter {
	return &ImagePresenter{img: dst}
}

// Present implements Presenter. The destination image is reallocated when
// the frame size changes.
func (p *ImagePresenter) Present(frame []uint32, width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := image.Rect(0, 0, width, height)
	if p.img == nil || p.img.Bounds() != r {
		p.img = image.NewRGBA(r)
	}
	draw.Copy(p.img, image.Point{}, ARGBImage{Pix: frame, W: width, H: height}, r, draw.Src, nil)
	p.frames++
	return nil
}

// Image returns a copy of the last presented frame, or nil before the first
// Present.
func (p *ImagePresenter) Image() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.img == nil {
		return nil
	}
	out := image.NewRGBA(p.img.Bounds())
	copy(out.Pix, p.img.Pix)
	return out
}

// Frames returns the number of frames presented so far.
func (p *ImagePresenter) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}
