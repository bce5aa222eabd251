// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"
)

const red uint32 = 0xffff0000

// TestSurfaceInterface verifies the Surface interface contract.
func TestSurfaceInterface(t *testing.T) {
	var _ Surface = (*PixelSurface)(nil)
	var _ ResizableSurface = (*PixelSurface)(nil)
}

func TestBufferResizePreservesTopLeft(t *testing.T) {
	b := NewBuffer(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			b.set(x, y, uint32(y*4+x+1))
		}
	}

	b.Resize(6, 2)
	if b.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", b.Len())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			want := Empty
			if x < 4 {
				want = uint32(y*4 + x + 1)
			}
			if got := b.at(x, y); got != want {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	b.Resize(2, 5)
	if got := b.at(1, 1); got != 6 {
		t.Errorf("after shrink, At(1, 1) = %d, want 6", got)
	}
	if got := b.at(0, 4); got != Empty {
		t.Errorf("new row At(0, 4) = %d, want Empty", got)
	}
}

func TestBufferBounds(t *testing.T) {
	b := NewBuffer(-3, 2)
	if b.Width() != 0 || b.Len() != 0 {
		t.Errorf("NewBuffer(-3, 2) = %dx%d len %d, want empty", b.Width(), b.Height(), b.Len())
	}

	b = NewBuffer(2, 2)
	b.set(-1, 0, red)
	b.set(2, 0, red)
	b.set(0, 5, red)
	for i, c := range b.Pix() {
		if c != Empty {
			t.Errorf("pixel %d = %#x after out-of-range Set", i, c)
		}
	}
	if got := b.at(10, 10); got != Empty {
		t.Errorf("At(10, 10) = %#x, want Empty", got)
	}

	b.Fill(red)
	c := b.Clone()
	b.Clear()
	if c[0] != red || b.at(0, 0) != Empty {
		t.Error("Clone shares storage with the buffer")
	}
}

func TestPixelSurfaceAcquire(t *testing.T) {
	s := NewPixelSurface(3, 2, nil)

	v, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if _, err := s.Acquire(); !errors.Is(err, ErrSurfaceBusy) {
		t.Errorf("second Acquire() error = %v, want %v", err, ErrSurfaceBusy)
	}
	if err := s.Resize(4, 4); !errors.Is(err, ErrSurfaceBusy) {
		t.Errorf("Resize() with view held = %v, want %v", err, ErrSurfaceBusy)
	}

	v.Fill(red)
	v.Pix()[0] = 1
	if v.Width() != 3 || v.Height() != 2 {
		t.Errorf("view size = %dx%d, want 3x2", v.Width(), v.Height())
	}
	v.Release()
	v.Release()

	got := s.Pixels()
	if got[0] != 1 || got[5] != red {
		t.Errorf("Pixels() = %#x", got)
	}

	v, err = s.Acquire()
	if err != nil {
		t.Fatalf("Acquire() after Release error = %v", err)
	}
	v.Release()
}

func TestPixelSurfaceLost(t *testing.T) {
	var presented int
	s := NewPixelSurface(2, 2, PresenterFunc(func(frame []uint32, w, h int) error {
		presented++
		return nil
	}))

	s.Invalidate()
	if s.Valid() {
		t.Error("Valid() = true after Invalidate")
	}
	if _, err := s.Acquire(); !errors.Is(err, ErrSurfaceLost) {
		t.Errorf("Acquire() = %v, want %v", err, ErrSurfaceLost)
	}
	if err := s.Present(); !errors.Is(err, ErrSurfaceLost) {
		t.Errorf("Present() = %v, want %v", err, ErrSurfaceLost)
	}
	s.Clear(color.White)

	if err := s.Resize(3, 3); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if !s.Valid() {
		t.Error("Valid() = false after Resize")
	}
	if err := s.Present(); err != nil {
		t.Errorf("Present() after Resize = %v", err)
	}
	if presented != 1 {
		t.Errorf("presented %d frames, want 1", presented)
	}
	if err := s.Resize(-1, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(-1, 3) = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestPixelSurfacePresentError(t *testing.T) {
	boom := errors.New("device gone")
	s := NewPixelSurface(1, 1, PresenterFunc(func([]uint32, int, int) error { return boom }))
	if err := s.Flush(); !errors.Is(err, boom) {
		t.Errorf("Flush() = %v, want wrapped %v", err, boom)
	}
}

func TestPixelSurfaceClose(t *testing.T) {
	s := NewPixelSurface(1, 1, nil)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if _, err := s.Acquire(); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Acquire() after Close = %v, want %v", err, ErrSurfaceClosed)
	}
	if err := s.Present(); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Present() after Close = %v, want %v", err, ErrSurfaceClosed)
	}
	if err := s.Resize(2, 2); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Resize() after Close = %v, want %v", err, ErrSurfaceClosed)
	}
}

func TestPixelSurfaceSnapshot(t *testing.T) {
	s := NewPixelSurface(2, 1, nil)
	s.Clear(color.NRGBA{R: 255, A: 128})

	img := s.Snapshot()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Snapshot bounds = %v", img.Bounds())
	}
	// Premultiplied: 255 * 128 / 255.
	if got := img.RGBAAt(1, 0); got.R != 128 || got.A != 128 || got.G != 0 {
		t.Errorf("Snapshot pixel = %+v, want {128 0 0 128}", got)
	}
}

func TestImagePresenter(t *testing.T) {
	p := NewImagePresenter(nil)
	if p.Image() != nil {
		t.Error("Image() before Present != nil")
	}

	if err := p.Present([]uint32{red, 0, 0xff0000ff, 0xff00ff00}, 2, 2); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	img := p.Image()
	if c := img.RGBAAt(0, 0); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (0,0) = %+v, want opaque red", c)
	}
	if c := img.RGBAAt(1, 0); c != (color.RGBA{}) {
		t.Errorf("pixel (1,0) = %+v, want transparent", c)
	}
	if c := img.RGBAAt(0, 1); c != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel (0,1) = %+v, want opaque blue", c)
	}

	if err := p.Present([]uint32{red}, 1, 1); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if b := p.Image().Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("bounds after resize = %v, want 1x1", b)
	}
	if p.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", p.Frames())
	}
}

func TestEncodePixels(t *testing.T) {
	frame := []uint32{red, 0x80_00_00_ff, Empty}

	tests := []struct {
		name   string
		format gputypes.TextureFormat
		want   []byte
	}{
		{
			name:   "RGBA8",
			format: gputypes.TextureFormatRGBA8Unorm,
			want:   []byte{255, 0, 0, 255, 0, 0, 128, 128, 0, 0, 0, 0},
		},
		{
			name:   "BGRA8",
			format: gputypes.TextureFormatBGRA8Unorm,
			want:   []byte{0, 0, 255, 255, 128, 0, 0, 128, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodePixels(nil, frame, tt.format)
			if err != nil {
				t.Fatalf("EncodePixels() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("EncodePixels() = %v, want %v", got, tt.want)
			}
		})
	}

	buf := make([]byte, 0, 64)
	got, _ := EncodePixels(buf, frame, gputypes.TextureFormatRGBA8Unorm)
	if &got[0] != &buf[:1][0] {
		t.Error("EncodePixels did not reuse a large enough dst")
	}

	if _, err := EncodePixels(nil, frame, gputypes.TextureFormat(0)); err == nil {
		t.Error("EncodePixels() with an unknown format succeeded")
	}
}

func TestARGBRoundTrip(t *testing.T) {
	for _, p := range []uint32{red, 0x7f123456, Empty, 0xffffffff} {
		if got := ARGB(NRGBA(p)); got != p {
			t.Errorf("ARGB(NRGBA(%#x)) = %#x", p, got)
		}
	}
	img := ARGBImage{Pix: []uint32{red}, W: 1, H: 1}
	if c := img.At(5, 5); c != (color.NRGBA{}) {
		t.Errorf("At outside bounds = %v, want zero", c)
	}
}
