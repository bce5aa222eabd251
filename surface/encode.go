// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// BytesPerPixel is the size of one encoded pixel for every supported format.
const BytesPerPixel = 4

// SupportsFormat reports whether EncodePixels can produce the format.
func SupportsFormat(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return true
	}
	return false
}

// EncodePixels converts straight-alpha ARGB pixels into texture bytes,
// premultiplying each channel by alpha. dst is reused when it is large
// enough; the encoded slice is returned.
func EncodePixels(dst []byte, frame []uint32, format gputypes.TextureFormat) ([]byte, error) {
	if !SupportsFormat(format) {
		return dst, fmt.Errorf("surface: unsupported texture format %v", format)
	}
	n := len(frame) * BytesPerPixel
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	bgra := format == gputypes.TextureFormatBGRA8Unorm
	for i, p := range frame {
		c := NRGBA(p)
		r, g, b := premul(c.R, c.A), premul(c.G, c.A), premul(c.B, c.A)
		if bgra {
			r, b = b, r
		}
		o := i * BytesPerPixel
		dst[o+0] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = c.A
	}
	return dst, nil
}

func premul(c, a uint8) uint8 {
	//nolint:gosec // G115: result is at most 255
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}
