// Command sketchdemo replays a scripted sketching session on a headless
// canvas and saves the presented frame as a PNG.
//
// A script has one step per line; blank lines and lines starting with '#'
// are skipped:
//
//	move X Y            move the pointer
//	press [shift|ctrl]  press the left button, optionally arming a preview
//	release             release the left button
//	stroke X Y X Y ...  press, drag through the points, release
//	color NAME|#RRGGBB  brush color
//	background COLOR    background color
//	toggle              switch drawing/erasing
//	radius DELTA        grow or shrink the brush
//	opacity ALPHA       frame alpha, 0-255
//	undo | redo | clear | reset
//	resize W H
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/surface"
)

const defaultScript = `# dot, freehand stroke, straight line, square
background #202830
stroke 60 60
color yellow
radius 3
stroke 120 60 160 100 200 80 240 120
color cyan
move 60 200
press shift
move 300 160
release
color magenta
move 340 40
press ctrl
move 440 140
release
toggle
stroke 150 60 170 110
undo
redo
`

func main() {
	var (
		width     = flag.Int("width", 480, "canvas width")
		height    = flag.Int("height", 240, "canvas height")
		output    = flag.String("output", "sketch.png", "output file")
		script    = flag.String("script", "", "script file (default: built-in demo)")
		presenter = flag.String("presenter", "image", "presenter backend from the surface registry")
		verbose   = flag.Bool("v", false, "log canvas events to stderr")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p, err := surface.NewPresenterByName(*presenter, *width, *height)
	if err != nil {
		log.Fatalf("Presenter %q: %v (available: %s)", *presenter, err, strings.Join(surface.Backends(), ", "))
	}

	c, err := sketch.New(*width, *height,
		sketch.WithPresenter(p),
		sketch.WithMoveThrottle(0),
	)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Close()

	var src io.Reader = strings.NewReader(defaultScript)
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		defer f.Close()
		src = f
	}

	if err := run(c, src); err != nil {
		log.Fatalf("Script failed: %v", err)
	}
	c.Redraw()

	img := c.Snapshot()
	if ip, ok := p.(*surface.ImagePresenter); ok && ip.Image() != nil {
		img = ip.Image()
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	w, h := c.Size()
	log.Printf("Sketch saved to %s (%dx%d)\n", *output, w, h)
}

// run executes a script against c.
func run(c *sketch.Canvas, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := step(c, fields[0], fields[1:]); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func step(c *sketch.Canvas, op string, args []string) error {
	switch op {
	case "move":
		xy, err := ints(args, 2)
		if err != nil {
			return err
		}
		c.CursorMoved(xy[0], xy[1])
	case "press":
		var mods sketch.Modifiers
		for _, a := range args {
			switch a {
			case "shift":
				mods |= sketch.ModShift
			case "ctrl":
				mods |= sketch.ModControl
			default:
				return fmt.Errorf("unknown modifier %q", a)
			}
		}
		c.MousePressed(sketch.Pressed, sketch.ButtonLeft, mods)
	case "release":
		c.MousePressed(sketch.Released, sketch.ButtonLeft, 0)
	case "stroke":
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("stroke needs pairs of coordinates")
		}
		pts, err := ints(args, len(args))
		if err != nil {
			return err
		}
		c.CursorMoved(pts[0], pts[1])
		c.MousePressed(sketch.Pressed, sketch.ButtonLeft, 0)
		for i := 2; i < len(pts); i += 2 {
			c.CursorMoved(pts[i], pts[i+1])
		}
		c.MousePressed(sketch.Released, sketch.ButtonLeft, 0)
	case "radius":
		d, err := floatArg(args)
		if err != nil {
			return err
		}
		c.ResizeRadius(d)
	default:
		cmd, err := command(op, args)
		if err != nil {
			return err
		}
		return c.Apply(cmd)
	}
	return nil
}

func command(op string, args []string) (sketch.Command, error) {
	switch op {
	case "color", "background":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s needs one color", op)
		}
		col, err := sketch.ParseColor(args[0])
		if err != nil {
			return nil, err
		}
		if op == "color" {
			return sketch.SetColorCommand{Color: col}, nil
		}
		return sketch.SetBackgroundCommand{Color: col}, nil
	case "opacity":
		a, err := ints(args, 1)
		if err != nil {
			return nil, err
		}
		if a[0] < 0 || a[0] > 0xff {
			return nil, fmt.Errorf("opacity %d out of range", a[0])
		}
		return sketch.SetOpacityCommand{Alpha: uint8(a[0])}, nil
	case "resize":
		wh, err := ints(args, 2)
		if err != nil {
			return nil, err
		}
		return sketch.ResizeCommand{Width: wh[0], Height: wh[1]}, nil
	case "toggle":
		return sketch.ToggleModeCommand{}, nil
	case "undo":
		return sketch.UndoCommand{}, nil
	case "redo":
		return sketch.RedoCommand{}, nil
	case "clear":
		return sketch.ClearCommand{}, nil
	case "reset":
		return sketch.ResetCommand{}, nil
	}
	return nil, fmt.Errorf("unknown step %q", op)
}

func ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func floatArg(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("want one number, got %d", len(args))
	}
	return strconv.ParseFloat(args[0], 64)
}
