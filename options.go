package sketch

import (
	"time"

	"github.com/gogpu/sketch/internal/history"
	"github.com/gogpu/sketch/surface"
)

// Defaults for a new canvas session.
const (
	DefaultRadius       = 2.0
	DefaultMinRadius    = 1.0
	DefaultMaxRadius    = 20.0
	DefaultMoveThrottle = 7 * time.Millisecond
	DefaultColor        = Red
)

// CursorFunc is called whenever the brush cursor should change appearance:
// on mode, color and radius changes.
type CursorFunc func(mode Mode, radius int)

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := sketch.New(1920, 1080,
//	    sketch.WithHistoryCapacity(100),
//	    sketch.WithRedrawRequest(window.RequestRedraw),
//	)
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	historyCapacity int
	moveThrottle    time.Duration
	minRadius       float64
	maxRadius       float64
	radius          float64
	color           Color
	now             func() time.Time
	presenter       surface.Presenter
	redraw          func()
	cursor          CursorFunc
	lineModifier    Modifiers
	squareModifier  Modifiers
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		historyCapacity: history.DefaultCapacity,
		moveThrottle:    DefaultMoveThrottle,
		minRadius:       DefaultMinRadius,
		maxRadius:       DefaultMaxRadius,
		radius:          DefaultRadius,
		color:           DefaultColor,
		now:             time.Now,
		presenter:       nil, // Picked from the surface registry if nil
		lineModifier:    ModShift,
		squareModifier:  ModControl,
	}
}

// WithHistoryCapacity sets how many snapshots each of the undo and redo
// stacks keeps. Values <= 0 select the default of 40.
func WithHistoryCapacity(n int) Option {
	return func(o *options) {
		o.historyCapacity = n
	}
}

// WithMoveThrottle sets the minimum interval between two processed pointer
// moves while a button is held. Zero disables throttling.
func WithMoveThrottle(d time.Duration) Option {
	return func(o *options) {
		o.moveThrottle = max(d, 0)
	}
}

// WithRadiusRange sets the brush radius bounds. New fails with
// ErrInvalidRadiusRange unless 1 <= lo <= hi.
func WithRadiusRange(lo, hi float64) Option {
	return func(o *options) {
		o.minRadius, o.maxRadius = lo, hi
	}
}

// WithDefaultRadius sets the radius of a new or reset canvas. It is clamped
// to the radius range.
func WithDefaultRadius(r float64) Option {
	return func(o *options) {
		o.radius = r
	}
}

// WithDefaultColor sets the brush color of a new or reset canvas.
func WithDefaultColor(c Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithClock replaces time.Now for move throttling. Tests use it to step time
// deterministically.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithPresenter sets where presented frames go.
// By default the best presenter of the surface registry is used.
func WithPresenter(p surface.Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

// WithRedrawRequest sets the callback asking the window layer for a redraw.
// Requests are coalesced: fn is called once until Redraw runs.
func WithRedrawRequest(fn func()) Option {
	return func(o *options) {
		o.redraw = fn
	}
}

// WithCursorUpdate sets the callback for cursor appearance changes.
func WithCursorUpdate(fn CursorFunc) Option {
	return func(o *options) {
		o.cursor = fn
	}
}

// WithPreviewModifiers sets the modifiers that arm line and square previews
// on press. The defaults are Shift for lines and Control for squares.
func WithPreviewModifiers(line, square Modifiers) Option {
	return func(o *options) {
		o.lineModifier, o.squareModifier = line, square
	}
}
