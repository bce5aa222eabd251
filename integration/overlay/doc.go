// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package overlay binds a sketch.Canvas to a gogpu window.
//
// The data flow is:
//
//	window events -> Overlay -> sketch.Canvas -> TexturePresenter -> GPU texture -> window
//
// # Usage
//
//	// window implements gpucontext.WindowProvider, events the event sources.
//	ov, err := overlay.New(window,
//	    overlay.WithHide(app.Hide),
//	    overlay.WithQuit(app.Quit),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ov.Close()
//
//	ov.Attach(events)
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = ov.Draw(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Overlay is NOT safe for concurrent use. Event handlers and Draw must run
// on the window's event goroutine.
//
// # Coordinates
//
// Window events use logical points; the canvas works in physical pixels.
// Positions and sizes are multiplied by the window's scale factor, and the
// brush cursor is scaled back down.
//
// # Integration Without Circular Imports
//
// This package only depends on gpucontext interfaces:
//
//   - gpucontext.WindowProvider for size, scale and redraw requests
//   - gpucontext.PointerEventSource, ScrollEventSource and EventSource for input
//   - gpucontext.TextureDrawer and TextureCreator for rendering
//
// Custom cursor bitmaps are set through the local CursorImageSetter
// interface when the window implements it.
package overlay
