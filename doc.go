// Package sketch is the raster drawing and history engine of a screen-overlay
// sketching tool.
//
// # Overview
//
// A Canvas holds a drawing the user paints on with a round brush. The brush
// draws or erases, a held modifier turns a drag into a straight line or a
// square outline that is previewed before it is committed, and every stroke
// can be undone and redone.
//
// # Quick Start
//
//	c, err := sketch.New(800, 600, sketch.WithRedrawRequest(window.RequestRedraw))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.CursorMoved(100, 100)
//	c.MousePressed(sketch.Pressed, sketch.ButtonLeft, 0)
//	c.CursorMoved(200, 150)
//	c.MousePressed(sketch.Released, sketch.ButtonLeft, 0)
//
//	// On the window's redraw event:
//	c.Redraw()
//
// # Buffers
//
// The drawing only stores ink: 0xAARRGGBB colors, with 0 meaning "no ink".
// The frame shown to the user is derived from it by painting the background
// color under empty pixels, applying the opacity, and drawing the shape
// preview on top. Erasing writes empty pixels, so changing the background
// later also changes what erased areas show.
//
// # History
//
// Before every stroke the drawing is run-length encoded onto a bounded undo
// stack (40 entries by default, oldest evicted first). Undo and Redo encode
// the current drawing onto the opposite stack, so they are exact inverses.
//
// # Input
//
// Pointer events come in through CursorMoved, MousePressed and Scroll; the
// discrete commands of tray menus and hotkeys through Apply or Serve. Pointer
// moves with the button held are throttled to one every 7 ms by default.
// See package integration/overlay for a binding to gpucontext windows.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Coordinates are physical pixels; anything off the canvas is clipped
package sketch
