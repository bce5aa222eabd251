package sketch

import (
	"context"
	"fmt"
)

// Command is a discrete request from outside the pointer stream: tray menu
// entries, global hotkeys, scripted sessions.
//
// The set of commands is closed; every variant is declared in this file.
type Command interface {
	apply(c *Canvas) error
}

// SetModeCommand switches the paint mode.
type SetModeCommand struct{ Mode Mode }

// ToggleModeCommand flips between drawing and erasing.
type ToggleModeCommand struct{}

// SetColorCommand sets the brush color and switches to drawing.
type SetColorCommand struct{ Color Color }

// SetBackgroundCommand sets the background color.
type SetBackgroundCommand struct{ Color Color }

// SetOpacityCommand sets the alpha of every shown pixel.
type SetOpacityCommand struct{ Alpha uint8 }

// ClearCommand erases the drawing.
type ClearCommand struct{}

// ResetCommand starts a new session.
type ResetCommand struct{}

// UndoCommand undoes the last stroke.
type UndoCommand struct{}

// RedoCommand redoes the last undone stroke.
type RedoCommand struct{}

// ResizeCommand resizes the canvas.
type ResizeCommand struct{ Width, Height int }

func (cmd SetModeCommand) apply(c *Canvas) error {
	if cmd.Mode == nil {
		return fmt.Errorf("%w: mode is nil", ErrNilCommand)
	}
	c.SetMode(cmd.Mode)
	return nil
}

func (ToggleModeCommand) apply(c *Canvas) error { c.ToggleMode(); return nil }

func (cmd SetColorCommand) apply(c *Canvas) error { c.SetCurrentColor(cmd.Color); return nil }

func (cmd SetBackgroundCommand) apply(c *Canvas) error { c.SetBackgroundColor(cmd.Color); return nil }

func (cmd SetOpacityCommand) apply(c *Canvas) error { c.SetOpacity(cmd.Alpha); return nil }

func (ClearCommand) apply(c *Canvas) error { c.Clear(); return nil }

func (ResetCommand) apply(c *Canvas) error { c.Reset(); return nil }

func (UndoCommand) apply(c *Canvas) error { c.Undo(); return nil }

func (RedoCommand) apply(c *Canvas) error { c.Redo(); return nil }

func (cmd ResizeCommand) apply(c *Canvas) error { return c.Resize(cmd.Width, cmd.Height) }

// Apply runs a single command.
func (c *Canvas) Apply(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	Logger().Debug("sketch: command", "type", fmt.Sprintf("%T", cmd))
	return cmd.apply(c)
}

// Serve applies commands from cmds in arrival order until the channel is
// closed (returning nil) or ctx is done (returning ctx.Err()). A failing
// command is logged and does not stop the loop.
//
// Serve runs on the caller's goroutine, which must be the goroutine that
// also delivers pointer events to the canvas.
func (c *Canvas) Serve(ctx context.Context, cmds <-chan Command) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			if err := c.Apply(cmd); err != nil {
				Logger().Warn("sketch: command rejected", "type", fmt.Sprintf("%T", cmd), "err", err)
			}
		}
	}
}
