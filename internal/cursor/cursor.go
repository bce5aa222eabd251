// Package cursor builds the brush cursor bitmaps shown over the canvas.
//
// The drawing cursor is a disc in the brush color, outlined in a contrasting
// color when the ink is too faint to see; the erasing cursor is a
// white ring with a black ring inside it, visible on any background. Both are
// (2r+1)×(2r+1) pixels with the hotspot in the center pixel, so the cursor
// covers exactly the pixels a click would paint.
package cursor

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/raster"
)

// Ring colors of the erasing cursor.
var (
	OuterRing = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	InnerRing = color.NRGBA{A: 0xff}
)

// FaintAlpha is the ink alpha below which the drawing cursor gets an
// outline.
const FaintAlpha = 0x80

// Image is a cursor bitmap and the pixel that tracks the pointer.
type Image struct {
	*image.NRGBA
	HotX, HotY int
}

// Brush returns a filled disc of the given radius. A faint ink gets a one
// pixel outline in Contrast(c).
func Brush(radius int, c color.NRGBA) Image {
	img := newImage(radius)
	raster.FillCircle(writer(img.NRGBA, c), img.HotX, img.HotY, img.HotX)
	if c.A < FaintAlpha {
		raster.StrokeCircle(writer(img.NRGBA, Contrast(c)), img.HotX, img.HotY, img.HotX)
	}
	return img
}

// Contrast returns opaque black or white, whichever stands out more against
// the color of c. Lightness is CIE L*, so saturated yellow gets black and
// saturated blue gets white.
func Contrast(c color.NRGBA) color.NRGBA {
	col, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	if l, _, _ := col.Lab(); l > 0.5 {
		return InnerRing
	}
	return OuterRing
}

// Eraser returns the two-ring erasing cursor.
func Eraser(radius int) Image {
	img := newImage(radius)
	raster.StrokeCircle(writer(img.NRGBA, OuterRing), img.HotX, img.HotY, img.HotX)
	raster.StrokeCircle(writer(img.NRGBA, InnerRing), img.HotX, img.HotY, img.HotX-1)
	return img
}

// ForMode returns the cursor for a paint mode.
func ForMode(mode sketch.Mode, radius int) Image {
	if _, ok := mode.(sketch.Erasing); ok {
		return Eraser(radius)
	}
	ink := sketch.DefaultColor
	if mode != nil {
		ink = mode.Ink()
	}
	return Brush(radius, color.NRGBA{R: ink.R(), G: ink.G(), B: ink.B(), A: ink.A()})
}

// Scale resizes a cursor by factor with nearest-neighbor sampling, keeping
// the hotspot on the same spot of the bitmap. Platforms that take cursors in
// logical points need factor = 1/scaleFactor.
func Scale(img Image, factor float64) Image {
	if factor <= 0 || factor == 1 || img.NRGBA == nil {
		return img
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*factor+0.5))
	h := max(1, int(float64(b.Dy())*factor+0.5))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img.NRGBA, b, draw.Src, nil)
	return Image{
		NRGBA: dst,
		HotX:  min(w-1, int(float64(img.HotX)*factor)),
		HotY:  min(h-1, int(float64(img.HotY)*factor)),
	}
}

func newImage(radius int) Image {
	radius = max(radius, raster.MinRadius)
	d := 2*radius + 1
	return Image{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, d, d)),
		HotX:  radius,
		HotY:  radius,
	}
}

func writer(img *image.NRGBA, c color.NRGBA) raster.SpanFunc {
	b := img.Bounds()
	return raster.SpanFunc{
		W: b.Dx(),
		H: b.Dy(),
		Fn: func(x, y, width int) {
			for i := x; i < x+width; i++ {
				img.SetNRGBA(i, y, c)
			}
		},
	}
}
