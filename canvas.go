package sketch

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/sketch/internal/history"
	"github.com/gogpu/sketch/internal/preview"
	"github.com/gogpu/sketch/internal/raster"
	"github.com/gogpu/sketch/surface"
)

// Common errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("sketch: invalid dimensions")

	// ErrInvalidRadiusRange is returned when the radius range is empty or
	// starts below 1.
	ErrInvalidRadiusRange = errors.New("sketch: invalid radius range")

	// ErrNilCommand is returned by Apply for a nil command.
	ErrNilCommand = errors.New("sketch: nil command")
)

// Canvas is the drawing and history engine of one overlay session.
//
// It owns two buffers of equal size: the persisted drawing, which only holds
// ink (empty pixels mean "show the background"), and the presentable frame,
// which is derived from the drawing, the background color and the active
// shape preview.
//
// Canvas is NOT safe for concurrent use. All methods must be called from the
// goroutine dispatching window events.
type Canvas struct {
	opts options

	drawing  *surface.Buffer
	frame    *surface.PixelSurface
	history  *history.Manager
	previews preview.Manager

	mode       Mode
	radius     float64
	background Color
	opacity    uint8

	cursorX, cursorY int
	clicked          bool
	preview          Preview
	lastMove         time.Time

	// stale is set when a frame write was skipped; the next Redraw
	// recomposes the whole frame from the drawing.
	stale         bool
	redrawPending bool
}

// New creates a canvas with an empty drawing and a transparent background.
//
// Returns ErrInvalidDimensions if width or height is not positive, and
// ErrInvalidRadiusRange for an unusable WithRadiusRange.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.minRadius < raster.MinRadius || o.maxRadius < o.minRadius {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRadiusRange, o.minRadius, o.maxRadius)
	}
	o.radius = clamp(o.radius, o.minRadius, o.maxRadius)

	if o.presenter == nil {
		p, err := surface.NewPresenter(width, height)
		if err != nil {
			Logger().Warn("sketch: no presenter available, frames are discarded", "err", err)
			p = surface.Discard
		}
		o.presenter = p
	}

	c := &Canvas{
		opts:       o,
		drawing:    surface.NewBuffer(width, height),
		frame:      surface.NewPixelSurface(width, height, o.presenter),
		history:    history.NewManager(o.historyCapacity),
		mode:       Drawing{Color: o.color},
		radius:     o.radius,
		background: Transparent,
		opacity:    0xff,
		preview:    NoPreview{},
	}
	Logger().Info("sketch: canvas created", "width", width, "height", height,
		"history", c.history.Capacity())
	return c, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, opts ...Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.drawing.Width(), c.drawing.Height()
}

// Mode returns the current paint mode.
func (c *Canvas) Mode() Mode { return c.mode }

// CurrentColor returns the brush color carried by the mode.
func (c *Canvas) CurrentColor() Color { return c.mode.Ink() }

// Background returns the background color.
func (c *Canvas) Background() Color { return c.background }

// Opacity returns the alpha applied to every shown pixel.
func (c *Canvas) Opacity() uint8 { return c.opacity }

// Radius returns the brush radius.
func (c *Canvas) Radius() float64 { return c.radius }

// Cursor returns the last stored cursor position.
func (c *Canvas) Cursor() (x, y int) { return c.cursorX, c.cursorY }

// Preview returns the armed shape preview.
func (c *Canvas) Preview() Preview { return c.preview }

// Clicked reports whether the left button is held.
func (c *Canvas) Clicked() bool { return c.clicked }

// CanUndo reports whether Undo would restore a snapshot.
func (c *Canvas) CanUndo() bool { return c.history.UndoLen() > 0 }

// CanRedo reports whether Redo would restore a snapshot.
func (c *Canvas) CanRedo() bool { return c.history.RedoLen() > 0 }

// Pixels returns a copy of the presentable frame.
func (c *Canvas) Pixels() []uint32 { return c.frame.Pixels() }

// Drawing returns a copy of the persisted drawing.
func (c *Canvas) Drawing() []uint32 { return c.drawing.Clone() }

// Snapshot returns the presentable frame as an image.
func (c *Canvas) Snapshot() *image.RGBA { return c.frame.Snapshot() }

// SetMode switches the paint mode. A nil mode is ignored.
func (c *Canvas) SetMode(m Mode) {
	if m == nil {
		return
	}
	c.mode = m
	c.cursorChanged()
	c.requestRedraw()
}

// ToggleMode flips between Drawing and Erasing, keeping the brush color.
func (c *Canvas) ToggleMode() {
	c.SetMode(Toggle(c.mode))
}

// SetCurrentColor sets the brush color and switches to Drawing.
func (c *Canvas) SetCurrentColor(col Color) {
	c.SetMode(Drawing{Color: col})
}

// SetBackgroundColor sets the color shown where the drawing has no ink.
func (c *Canvas) SetBackgroundColor(col Color) {
	c.background = col
	c.Rerender()
}

// SetOpacity sets the alpha of every shown pixel. Fully transparent pixels
// stay transparent, so an overlay without background remains click-through.
func (c *Canvas) SetOpacity(alpha uint8) {
	c.opacity = alpha
	c.Rerender()
}

// ResizeRadius adds delta to the brush radius, clamped to the radius range.
func (c *Canvas) ResizeRadius(delta float64) {
	r := clamp(c.radius+delta, c.opts.minRadius, c.opts.maxRadius)
	if r == c.radius {
		return
	}
	c.radius = r
	c.cursorChanged()
}

// Scroll maps a wheel delta to ResizeRadius.
func (c *Canvas) Scroll(delta float64) {
	c.ResizeRadius(delta)
}

// CursorMoved handles a pointer move to (x, y).
//
// Without a held button only the cursor position is stored. With the button
// held, moves closer than the move throttle to the last processed one are
// dropped entirely; processed moves either update the shape preview or paint
// a stroke segment from the stored cursor position.
func (c *Canvas) CursorMoved(x, y int) {
	if !c.clicked {
		c.cursorX, c.cursorY = x, y
		return
	}

	now := c.opts.now()
	if !c.lastMove.IsZero() && now.Sub(c.lastMove) < c.opts.moveThrottle {
		return
	}
	c.lastMove = now

	switch p := c.preview.(type) {
	case LinePreview:
		c.updatePreview(preview.Line, p.X, p.Y, x, y)
	case SquarePreview:
		c.updatePreview(preview.Square, p.X, p.Y, x, y)
	default:
		x0, y0, r := c.cursorX, c.cursorY, c.stampRadius()
		c.paint(func(b raster.Blitter) {
			raster.StrokeLine(b, x0, y0, x, y, r)
		})
	}
	c.cursorX, c.cursorY = x, y
	c.requestRedraw()
}

// MousePressed handles a button transition at the stored cursor position.
//
// A left press with the line or square modifier held arms a preview anchored
// at the cursor; a plain left press saves the undo state and stamps a dot.
// A left release commits an armed preview as a real stroke. Other buttons
// are ignored.
func (c *Canvas) MousePressed(state ButtonState, button Button, mods Modifiers) {
	if button != ButtonLeft {
		return
	}

	if state == Released {
		c.commitPreview()
		c.clicked = false
		c.lastMove = time.Time{}
		return
	}
	if c.clicked {
		return
	}
	c.clicked = true

	x, y := c.cursorX, c.cursorY
	switch {
	case mods.Has(c.opts.lineModifier):
		c.preview = LinePreview{X: x, Y: y}
	case mods.Has(c.opts.squareModifier):
		c.preview = SquarePreview{X: x, Y: y}
	default:
		c.save()
		r := c.stampRadius()
		c.paint(func(b raster.Blitter) {
			raster.FillCircle(b, x, y, r)
		})
		c.requestRedraw()
	}
}

// Rerender recomposes every frame pixel from the drawing and the background,
// then paints the active preview on top.
func (c *Canvas) Rerender() {
	c.rerender()
	c.requestRedraw()
}

// Clear erases the whole drawing. Like a stroke, it saves the previous
// drawing for Undo and drops the redo history.
func (c *Canvas) Clear() {
	c.save()
	c.clear()
}

func (c *Canvas) clear() {
	c.drawing.Clear()
	c.Rerender()
}

// Reset starts a new session: empty drawing and history, default mode,
// color and radius, transparent background, full opacity.
func (c *Canvas) Reset() {
	c.drawing.Clear()
	c.history.Reset()
	c.previews.Forget()
	c.preview = NoPreview{}
	c.clicked = false
	c.lastMove = time.Time{}

	c.mode = Drawing{Color: c.opts.color}
	c.radius = c.opts.radius
	c.background = Transparent
	c.opacity = 0xff

	c.cursorChanged()
	c.Rerender()
	w, h := c.Size()
	Logger().Info("sketch: canvas reset", "width", w, "height", h)
}

// Undo restores the drawing before the last stroke. With no history left the
// drawing is cleared instead.
//
// Undo during a freehand stroke first records the in-progress drawing, so
// the partial stroke is kept on the redo stack.
func (c *Canvas) Undo() {
	w, h := c.Size()
	if c.clicked {
		if _, ok := c.preview.(NoPreview); ok {
			c.history.PushUndo(c.drawing.Pix(), w, h)
		}
	}
	if !c.history.Undo(c.drawing.Pix(), w, h) {
		c.clear()
		return
	}
	c.Rerender()
}

// Redo reapplies the last undone stroke. It does nothing with no redo
// history.
func (c *Canvas) Redo() {
	w, h := c.Size()
	if !c.history.Redo(c.drawing.Pix(), w, h) {
		return
	}
	c.Rerender()
}

// Resize changes the canvas size, keeping the top-left part of the drawing
// and of every history snapshot.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if w, h := c.Size(); w == width && h == height && c.frame.Valid() {
		return nil
	}

	if err := c.frame.Resize(width, height); err != nil {
		return fmt.Errorf("sketch: frame resize failed: %w", err)
	}
	c.drawing.Resize(width, height)
	c.history.Resize(width, height)
	c.Rerender()

	Logger().Info("sketch: canvas resized", "width", width, "height", height)
	return nil
}

// Invalidate marks the frame as lost, for instance when the window started
// resizing. Frame writes are skipped until the next Resize.
func (c *Canvas) Invalidate() {
	c.frame.Invalidate()
	c.stale = true
}

// Redraw presents the frame. Present failures are logged and dropped: the
// frame is recomposed from the drawing on the next redraw.
func (c *Canvas) Redraw() {
	c.redrawPending = false
	if c.stale {
		c.rerender()
	}
	if err := c.frame.Present(); err != nil {
		Logger().Debug("sketch: present skipped", "err", err)
		c.stale = true
	}
}

// Close releases the frame and its presenter.
func (c *Canvas) Close() error {
	return c.frame.Close()
}

// ink returns the value strokes write into the drawing.
func (c *Canvas) ink() uint32 {
	if d, ok := c.mode.(Drawing); ok {
		return uint32(d.Color)
	}
	return surface.Empty
}

// compose maps a drawing pixel to the pixel shown for it.
func (c *Canvas) compose(p uint32) uint32 {
	if p == surface.Empty {
		p = uint32(c.background)
	}
	if c.opacity == 0xff || p == 0 {
		return p
	}
	return p&0x00ffffff | uint32(c.opacity)<<24
}

func (c *Canvas) stampRadius() int {
	return int(c.radius)
}

func (c *Canvas) save() {
	w, h := c.Size()
	c.history.Save(c.drawing.Pix(), w, h)
}

// paint runs a stroke against the drawing and, when possible, the frame.
func (c *Canvas) paint(stroke func(b raster.Blitter)) {
	w, h := c.Size()
	ink := c.ink()
	stroke(&raster.Fill{Pix: c.drawing.Pix(), W: w, H: h, Color: ink})
	if c.stale {
		return
	}
	shown := c.compose(ink)
	c.withFrame(func(l preview.Layer) {
		stroke(&raster.Fill{Pix: l.Frame, W: w, H: h, Color: shown})
	})
}

// withFrame runs fn with write access to the frame. When the frame is
// unavailable the call is skipped and the frame is marked stale.
func (c *Canvas) withFrame(fn func(l preview.Layer)) bool {
	v, err := c.frame.Acquire()
	if err != nil {
		c.stale = true
		Logger().Debug("sketch: frame write skipped", "err", err)
		return false
	}
	defer v.Release()

	w, h := c.Size()
	if v.Width() != w || v.Height() != h {
		panic(fmt.Sprintf("sketch: frame is %dx%d, drawing is %dx%d", v.Width(), v.Height(), w, h))
	}
	fn(preview.Layer{
		Persisted: c.drawing.Pix(),
		Frame:     v.Pix(),
		Width:     w,
		Height:    h,
		Compose:   c.compose,
		Ink:       c.compose(c.ink()),
	})
	return true
}

func (c *Canvas) rerender() {
	c.withFrame(func(l preview.Layer) {
		for i, p := range l.Persisted {
			l.Frame[i] = c.compose(p)
		}
		c.previews.Reapply(l)
		c.stale = false
	})
}

func (c *Canvas) updatePreview(kind preview.Shape, x0, y0, x1, y1 int) {
	r := c.stampRadius()
	if c.stale || !c.withFrame(func(l preview.Layer) {
		c.previews.Update(l, kind, x0, y0, x1, y1, r)
	}) {
		c.previews.Track(kind, x0, y0, x1, y1, r)
	}
}

// commitPreview turns an armed preview into a real stroke ending at the
// cursor.
func (c *Canvas) commitPreview() {
	var kind preview.Shape
	var ax, ay int
	switch p := c.preview.(type) {
	case LinePreview:
		kind, ax, ay = preview.Line, p.X, p.Y
	case SquarePreview:
		kind, ax, ay = preview.Square, p.X, p.Y
	default:
		return
	}

	if c.stale || !c.withFrame(c.previews.Delete) {
		c.previews.Forget()
	}
	c.preview = NoPreview{}

	c.save()
	x, y, r := c.cursorX, c.cursorY, c.stampRadius()
	c.paint(func(b raster.Blitter) {
		kind.Stroke(b, ax, ay, x, y, r)
	})
	c.requestRedraw()
}

func (c *Canvas) requestRedraw() {
	if c.redrawPending {
		return
	}
	c.redrawPending = true
	if c.opts.redraw != nil {
		c.opts.redraw()
	}
}

func (c *Canvas) cursorChanged() {
	if c.opts.cursor != nil {
		c.opts.cursor(c.mode, c.stampRadius())
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
