// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface holds the pixel storage of a sketch overlay.
//
// Two buffers of 32-bit ARGB pixels (0xAARRGGBB, straight alpha) take part in
// every frame:
//
//   - Buffer: the persisted drawing. A zero pixel (Empty) means no ink.
//   - PixelSurface: the presentable frame, what the user actually sees.
//
// The frame is written through scoped views and handed to a Presenter:
//
//	s := surface.NewPixelSurface(800, 600, surface.NewImagePresenter(nil))
//	defer s.Close()
//
//	v, err := s.Acquire()
//	if err == nil {
//	    v.Fill(0x80000000)
//	    v.Release()
//	}
//	_ = s.Present()
//
// # Surface Loss
//
// A window resize can invalidate the frame before the new size is known.
// After Invalidate, Acquire and Present return ErrSurfaceLost until Resize.
// Callers are expected to skip the frame and recompose it from the persisted
// buffer once the surface is valid again.
//
// # Presenters
//
// Presenters are the sink side: ImagePresenter keeps the frame as an
// *image.RGBA, EncodePixels turns a frame into RGBA8 or BGRA8 texture bytes
// for GPU upload, and window integrations register their own presenters in
// the registry:
//
//	surface.Register("texture", 100, factory)
//	p, err := surface.NewPresenter(800, 600)
//
// # Thread Safety
//
// Buffers and surfaces are NOT safe for concurrent use.
package surface
