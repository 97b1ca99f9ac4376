package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"honnef.co/go/waves"
)

type console struct {
	out   io.Writer
	clock *waves.ManualClock
	rng   *rand.Rand
	scene *waves.Scene
	// precision of printed coordinates
	precision int
}

func newConsole(out io.Writer, rng *rand.Rand, logger *slog.Logger) *console {
	clk := waves.NewManualClock(epoch)
	return &console{
		out:       out,
		clock:     clk,
		rng:       rng,
		scene:     waves.NewScene(waves.WithClock(clk), waves.WithRand(rng), waves.WithLogger(logger)),
		precision: 2,
	}
}

type command struct {
	name  string
	usage string
	run   func(c *console, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"help", "list commands", (*console).help},
		{"wave", "wave <wavelength> <height> <fixed height> <offset> <duration> [left|right]", (*console).wave},
		{"defaults", "defaults [right] [left]: add the default waves", (*console).defaults},
		{"blob", "blob [points]", (*console).blob},
		{"size", "size <width> <height>", (*console).size},
		{"start", "start animation", (*console).start},
		{"pause", "pause animation", (*console).pause},
		{"resume", "resume animation", (*console).resume},
		{"stop", "stop animation", (*console).stop},
		{"advance", "advance <duration>: move the clock and tick", (*console).advance},
		{"tick", "tick without moving the clock", (*console).tick},
		{"scale", "scale <handle> <length|height|duration|fixed> <factor>", (*console).scale},
		{"svg", "svg <handle>: print a shape's path in view space", (*console).svg},
		{"list", "list shapes", (*console).list},
		{"state", "print the animation state and clock", (*console).state},
		{"clear", "remove all shapes", (*console).clear},
	}
}

func (c *console) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == fields[0] {
			return cmd.run(c, fields[1:])
		}
	}
	return fmt.Errorf("unknown command %q", fields[0])
}

func (c *console) help(args []string) error {
	for _, cmd := range commands {
		fmt.Fprintf(c.out, "  %-9s %s\n", cmd.name, cmd.usage)
	}
	return nil
}

func floats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func (c *console) wave(args []string) error {
	if len(args) < 5 || len(args) > 6 {
		return fmt.Errorf("usage: wave <wavelength> <height> <fixed height> <offset> <duration> [left|right]")
	}
	nums, err := floats(args[:4])
	if err != nil {
		return err
	}
	d, err := time.ParseDuration(args[4])
	if err != nil {
		return err
	}
	dir := waves.Right
	if len(args) == 6 {
		switch args[5] {
		case "left":
			dir = waves.Left
		case "right":
		default:
			return fmt.Errorf("unknown direction %q", args[5])
		}
	}
	h, err := c.scene.AddWaveLayer(waves.NewWaveParameters(nums[0], nums[1], nums[2], nums[3], d, dir))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "wave %d\n", h)
	return nil
}

func (c *console) defaults(args []string) error {
	counts := []int{2, 2}
	for i, arg := range args {
		if i >= len(counts) {
			return fmt.Errorf("usage: defaults [right] [left]")
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return err
		}
		counts[i] = n
	}
	for _, p := range waves.DefaultWaves(c.rng, counts[0], counts[1]) {
		h, err := c.scene.AddWaveLayer(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "wave %d\n", h)
	}
	return nil
}

func (c *console) blob(args []string) error {
	points := waves.DefaultBlobPoints
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		points = n
	}
	h, err := c.scene.AddBlob(waves.NewBlobParameters(points))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "blob %d\n", h)
	return nil
}

func (c *console) size(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: size <width> <height>")
	}
	nums, err := floats(args)
	if err != nil {
		return err
	}
	c.scene.OnViewportResize(nums[0], nums[1])
	fmt.Fprintf(c.out, "size %v\n", c.scene.Size())
	return nil
}

func (c *console) start(args []string) error  { c.scene.Start(); return c.state(nil) }
func (c *console) pause(args []string) error  { c.scene.Pause(); return c.state(nil) }
func (c *console) resume(args []string) error { c.scene.Resume(); return c.state(nil) }
func (c *console) stop(args []string) error   { c.scene.Stop(); return c.state(nil) }
func (c *console) tick(args []string) error   { c.scene.Tick(); return nil }

func (c *console) advance(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: advance <duration>")
	}
	d, err := time.ParseDuration(args[0])
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("can't move the clock backwards")
	}
	c.clock.Advance(d)
	c.scene.Tick()
	return nil
}

func parseHandle(s string) (waves.Handle, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid handle %q", s)
	}
	return waves.Handle(n), nil
}

var dimensions = map[string]waves.Dimension{
	"length":   waves.ScaleLength,
	"height":   waves.ScaleHeight,
	"duration": waves.ScaleDuration,
	"fixed":    waves.ScaleFixedHeight,
}

func (c *console) scale(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: scale <handle> <length|height|duration|fixed> <factor>")
	}
	h, err := parseHandle(args[0])
	if err != nil {
		return err
	}
	dim, ok := dimensions[args[1]]
	if !ok {
		return fmt.Errorf("unknown dimension %q", args[1])
	}
	f, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return err
	}
	return c.scene.UpdateScale(h, dim, f)
}

func (c *console) svg(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: svg <handle>")
	}
	h, err := parseHandle(args[0])
	if err != nil {
		return err
	}
	f, err := c.scene.CurrentPath(h)
	if err != nil {
		return err
	}
	p := f.Transformed()
	if err := waves.WriteSVG(c.out, p.Elements(), waves.SVGOptions{MaxPrecision: c.precision}); err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	return nil
}

func (c *console) list(args []string) error {
	for _, h := range c.scene.Handles() {
		f, err := c.scene.CurrentPath(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%d: %d elements, translation %v, alpha %v\n", h, len(f.Path), f.Translation, f.Alpha)
	}
	return nil
}

func (c *console) state(args []string) error {
	fmt.Fprintf(c.out, "%v at %v, preferred height %v\n",
		c.scene.State(), c.clock.Now().Sub(epoch), c.scene.PreferredHeight())
	return nil
}

func (c *console) clear(args []string) error {
	c.scene.Clear()
	return nil
}
