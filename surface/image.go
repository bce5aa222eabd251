// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ARGBImage exposes a row-major ARGB pixel slice as an image.Image.
// Pixels hold straight (non-premultiplied) alpha.
type ARGBImage struct {
	Pix  []uint32
	W, H int
}

// ColorModel implements the image.Image interface.
func (m ARGBImage) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements the image.Image interface.
func (m ARGBImage) Bounds() image.Rectangle { return image.Rect(0, 0, m.W, m.H) }

// At implements the image.Image interface.
func (m ARGBImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return color.NRGBA{}
	}
	return NRGBA(m.Pix[y*m.W+x])
}

// ToRGBA converts the pixels to a new premultiplied *image.RGBA.
func (m ARGBImage) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(m.Bounds())
	draw.Copy(dst, image.Point{}, m, m.Bounds(), draw.Src, nil)
	return dst
}

// NRGBA unpacks a 0xAARRGGBB pixel.
func NRGBA(p uint32) color.NRGBA {
	//nolint:gosec // G115: each shift is masked to 8 bits
	return color.NRGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// ARGB packs any color into a 0xAARRGGBB pixel with straight alpha.
func ARGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
