// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/cursor"
)

// ErrNilWindow is returned when a nil WindowProvider is passed.
var ErrNilWindow = errors.New("overlay: nil WindowProvider")

// Defaults of the window binding.
const (
	// ScrollPixelsPerStep is the pixel scroll distance that changes the
	// radius by one.
	ScrollPixelsPerStep = 50.0

	// ClickThroughOpacity is the frame alpha while the overlay lets pointer
	// input through to the windows below.
	ClickThroughOpacity uint8 = 64
)

// CursorImageSetter is implemented by windows that accept custom cursor
// bitmaps. Windows without it get gpucontext.CursorCrosshair through
// gpucontext.PlatformProvider.
type CursorImageSetter interface {
	SetCursorImage(img image.Image, hotX, hotY int)
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithCanvasOptions passes options to the underlying sketch.Canvas.
func WithCanvasOptions(opts ...sketch.Option) Option {
	return func(o *Overlay) {
		o.canvasOpts = append(o.canvasOpts, opts...)
	}
}

// WithHide sets the callback for Escape, which hides the overlay window.
func WithHide(fn func()) Option {
	return func(o *Overlay) { o.onHide = fn }
}

// WithQuit sets the callback for Ctrl+Shift+Q.
func WithQuit(fn func()) Option {
	return func(o *Overlay) { o.onQuit = fn }
}

// WithClickThrough sets the callback that makes the window ignore or accept
// pointer input (its hit test).
func WithClickThrough(fn func(enabled bool)) Option {
	return func(o *Overlay) { o.onClickThrough = fn }
}

// Overlay binds a sketch.Canvas to a gogpu window: it translates window
// events into canvas calls, renders the canvas frame as a texture and keeps
// the mouse cursor in sync with the brush.
//
// Overlay is NOT safe for concurrent use. All methods must be called from
// the window's event goroutine.
type Overlay struct {
	window     gpucontext.WindowProvider
	canvas     *sketch.Canvas
	presenter  *TexturePresenter
	cursors    *cursor.Cache
	canvasOpts []sketch.Option

	clickThrough   bool
	onHide         func()
	onQuit         func()
	onClickThrough func(bool)
}

// New creates an overlay covering the window's client area in physical
// pixels.
func New(window gpucontext.WindowProvider, opts ...Option) (*Overlay, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	o := &Overlay{
		window:    window,
		presenter: NewTexturePresenter(),
		cursors:   cursor.NewCache(),
	}
	for _, opt := range opts {
		opt(o)
	}

	w, h := o.physical(window.Size())
	canvasOpts := append([]sketch.Option{
		sketch.WithPresenter(o.presenter),
		sketch.WithRedrawRequest(window.RequestRedraw),
		sketch.WithCursorUpdate(o.updateCursor),
	}, o.canvasOpts...)

	c, err := sketch.New(w, h, canvasOpts...)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	o.canvas = c
	o.updateCursor(c.Mode(), int(c.Radius()))
	return o, nil
}

// MustNew is like New but panics on error.
func MustNew(window gpucontext.WindowProvider, opts ...Option) *Overlay {
	o, err := New(window, opts...)
	if err != nil {
		panic(err)
	}
	return o
}

// Canvas returns the underlying canvas.
func (o *Overlay) Canvas() *sketch.Canvas {
	return o.canvas
}

// Presenter returns the texture presenter the canvas presents to.
func (o *Overlay) Presenter() *TexturePresenter {
	return o.presenter
}

// Attach registers the overlay's handlers on src. src may implement any of
// gpucontext.PointerEventSource, gpucontext.ScrollEventSource and
// gpucontext.EventSource; detailed scroll events are preferred over
// EventSource.OnScroll.
func (o *Overlay) Attach(src any) {
	if pes, ok := src.(gpucontext.PointerEventSource); ok {
		pes.OnPointer(o.HandlePointer)
	}
	ses, hasScroll := src.(gpucontext.ScrollEventSource)
	if hasScroll {
		ses.OnScrollEvent(o.HandleScroll)
	}
	if es, ok := src.(gpucontext.EventSource); ok {
		es.OnKeyPress(o.HandleKey)
		es.OnResize(o.HandleResize)
		if !hasScroll {
			es.OnScroll(func(_, dy float64) {
				o.HandleScroll(gpucontext.ScrollEvent{DeltaY: dy, DeltaMode: gpucontext.ScrollDeltaLine})
			})
		}
	}
}

// HandlePointer feeds a pointer event to the canvas. Events are dropped
// while the overlay is click-through.
func (o *Overlay) HandlePointer(ev gpucontext.PointerEvent) {
	if o.clickThrough {
		return
	}
	x, y := o.point(ev.X, ev.Y)
	mods := modifiers(ev.Modifiers)

	switch ev.Type {
	case gpucontext.PointerMove:
		o.canvas.CursorMoved(x, y)
	case gpucontext.PointerDown:
		o.canvas.CursorMoved(x, y)
		o.canvas.MousePressed(sketch.Pressed, button(ev.Button), mods)
	case gpucontext.PointerUp:
		o.canvas.MousePressed(sketch.Released, button(ev.Button), mods)
	case gpucontext.PointerCancel:
		o.canvas.MousePressed(sketch.Released, sketch.ButtonLeft, mods)
	}
}

// HandleScroll changes the brush radius: one step per wheel line, or per
// ScrollPixelsPerStep pixels of touchpad scrolling. Scrolling up grows the
// brush.
func (o *Overlay) HandleScroll(ev gpucontext.ScrollEvent) {
	delta := -ev.DeltaY
	if ev.DeltaMode == gpucontext.ScrollDeltaPixel {
		delta /= ScrollPixelsPerStep
	}
	if delta != 0 {
		o.canvas.Scroll(delta)
	}
}

// HandleKey runs the keyboard shortcuts:
//
//	Space           toggle drawing/erasing
//	1..8            palette colors
//	Ctrl+Z          undo
//	Ctrl+Y          redo (also Ctrl+Shift+Z)
//	Delete          clear the drawing
//	Ctrl+N          new canvas
//	Ctrl+T          toggle click-through
//	Escape          hide
//	Ctrl+Shift+Q    quit
func (o *Overlay) HandleKey(key gpucontext.Key, mods gpucontext.Modifiers) {
	ctrl, shift := mods.HasControl(), mods.HasShift()

	var cmd sketch.Command
	switch {
	case key == gpucontext.KeySpace:
		cmd = sketch.ToggleModeCommand{}
	case key >= gpucontext.Key1 && key <= gpucontext.Key8:
		cmd = sketch.SetColorCommand{Color: sketch.Palette[key-gpucontext.Key1]}
	case key == gpucontext.KeyZ && ctrl && shift, key == gpucontext.KeyY && ctrl:
		cmd = sketch.RedoCommand{}
	case key == gpucontext.KeyZ && ctrl:
		cmd = sketch.UndoCommand{}
	case key == gpucontext.KeyDelete:
		cmd = sketch.ClearCommand{}
	case key == gpucontext.KeyN && ctrl:
		cmd = sketch.ResetCommand{}
	case key == gpucontext.KeyT && ctrl:
		o.SetClickThrough(!o.clickThrough)
	case key == gpucontext.KeyEscape:
		if o.onHide != nil {
			o.onHide()
		}
	case key == gpucontext.KeyQ && ctrl && shift:
		if o.onQuit != nil {
			o.onQuit()
		}
	}

	if cmd != nil {
		if err := o.canvas.Apply(cmd); err != nil {
			sketch.Logger().Warn("overlay: shortcut failed", "key", key, "err", err)
		}
	}
}

// HandleResize resizes the canvas to the new client area, given in logical
// points. A zero size (minimized window) only invalidates the frame.
func (o *Overlay) HandleResize(width, height int) {
	if width <= 0 || height <= 0 {
		o.canvas.Invalidate()
		return
	}
	w, h := o.physical(width, height)
	if err := o.canvas.Resize(w, h); err != nil {
		sketch.Logger().Warn("overlay: resize failed", "width", w, "height", h, "err", err)
	}
}

// SetClickThrough switches click-through mode: the frame is dimmed to
// ClickThroughOpacity and pointer input is left to the windows below.
func (o *Overlay) SetClickThrough(enabled bool) {
	if o.clickThrough == enabled {
		return
	}
	o.clickThrough = enabled
	if enabled {
		o.canvas.MousePressed(sketch.Released, sketch.ButtonLeft, 0)
		o.canvas.SetOpacity(ClickThroughOpacity)
	} else {
		o.canvas.SetOpacity(0xff)
	}
	if o.onClickThrough != nil {
		o.onClickThrough(enabled)
	}
}

// ClickThrough reports whether click-through mode is on.
func (o *Overlay) ClickThrough() bool {
	return o.clickThrough
}

// Draw presents the canvas and draws it to dc. Call it from the window's
// draw callback:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = ov.Draw(dc.AsTextureDrawer())
//	})
func (o *Overlay) Draw(dc gpucontext.TextureDrawer) error {
	o.canvas.Redraw()
	return o.presenter.RenderTo(dc)
}

// Close releases the canvas and its texture.
func (o *Overlay) Close() error {
	return o.canvas.Close()
}

func (o *Overlay) scale() float64 {
	s := o.window.ScaleFactor()
	if s <= 0 {
		return 1
	}
	return s
}

func (o *Overlay) physical(width, height int) (int, int) {
	s := o.scale()
	return int(math.Round(float64(width) * s)), int(math.Round(float64(height) * s))
}

func (o *Overlay) point(x, y float64) (int, int) {
	s := o.scale()
	return int(math.Floor(x * s)), int(math.Floor(y * s))
}

func (o *Overlay) updateCursor(mode sketch.Mode, radius int) {
	if cs, ok := o.window.(CursorImageSetter); ok {
		img := o.cursors.ForMode(mode, radius, 1/o.scale())
		cs.SetCursorImage(img.NRGBA, img.HotX, img.HotY)
		return
	}
	if pp, ok := o.window.(gpucontext.PlatformProvider); ok {
		pp.SetCursor(gpucontext.CursorCrosshair)
	}
}

func modifiers(m gpucontext.Modifiers) sketch.Modifiers {
	var out sketch.Modifiers
	if m.HasShift() {
		out |= sketch.ModShift
	}
	if m.HasControl() {
		out |= sketch.ModControl
	}
	if m.HasAlt() {
		out |= sketch.ModAlt
	}
	if m.HasSuper() {
		out |= sketch.ModSuper
	}
	return out
}

func button(b gpucontext.Button) sketch.Button {
	switch b {
	case gpucontext.ButtonLeft:
		return sketch.ButtonLeft
	case gpucontext.ButtonMiddle:
		return sketch.ButtonMiddle
	case gpucontext.ButtonRight:
		return sketch.ButtonRight
	default:
		return sketch.ButtonOther
	}
}
