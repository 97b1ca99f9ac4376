// Command waveterm animates waves and a blob in the terminal.
//
// Every cell shows two pixels using the upper half block, so the view is
// twice as tall as the terminal has rows. Space pauses and resumes, s stops
// and restarts, q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/waves"
)

// referenceHeight is the view height the default waves are designed for.
const referenceHeight = 1920

var background = colorful.Color{R: 0.05, G: 0.05, B: 0.08}

type term struct {
	screen tcell.Screen
	scene  *waves.Scene
	waves  []waves.Handle
	width  int
	height int
	// err ends the event loop. It's reported once the terminal is restored.
	err error
}

func main() {
	right := flag.Int("right", 2, "Number of waves scrolling right")
	left := flag.Int("left", 2, "Number of waves scrolling left")
	blob := flag.Bool("blob", true, "Draw a blob")
	fps := flag.Int("fps", 20, "Frames per second")
	flag.Parse()

	if *fps <= 0 {
		log.Fatal("fps must be positive")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	now := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(now, now>>32))
	t := &term{
		screen: screen,
		scene:  waves.NewScene(waves.WithRand(rng)),
	}
	for _, p := range waves.DefaultWaves(rng, *right, *left) {
		h, err := t.scene.AddWaveLayer(p)
		if err != nil {
			screen.Fini()
			log.Fatal(err)
		}
		t.waves = append(t.waves, h)
	}
	if *blob {
		if _, err := t.scene.AddBlob(waves.NewBlobParameters(waves.DefaultBlobPoints)); err != nil {
			screen.Fini()
			log.Fatal(err)
		}
	}
	t.resize()
	t.scene.Start()
	t.run(time.Second / time.Duration(*fps))
	if t.err != nil {
		screen.Fini()
		log.Fatal(t.err)
	}
}

func (t *term) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for t.err == nil {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.scene.Tick()
			t.draw()
		}
	}
}

func (t *term) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if t.scene.Paused() {
				t.scene.Resume()
			} else {
				t.scene.Pause()
			}
		case 's':
			if t.scene.State() == waves.Stopped {
				t.scene.Start()
			} else {
				t.scene.Stop()
			}
		}
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	}
	return true
}

// resize fits the scene to the terminal. The default waves are sized for a
// tall phone screen, so they are scaled down to the terminal's height. A
// terminal without rows keeps the previous scale.
func (t *term) resize() {
	t.width, t.height = t.screen.Size()
	if t.width <= 0 || t.height <= 0 {
		return
	}
	h := float64(t.height * 2)
	t.scene.OnViewportResize(float64(t.width), h)
	f := h / referenceHeight
	for _, wh := range t.waves {
		for _, dim := range []waves.Dimension{waves.ScaleLength, waves.ScaleHeight, waves.ScaleFixedHeight} {
			if err := t.scene.UpdateScale(wh, dim, f); err != nil {
				t.err = fmt.Errorf("scaling wave %d: %w", wh, err)
				return
			}
		}
	}
}

func (t *term) draw() {
	var frames []waves.Frame
	for _, h := range t.scene.Handles() {
		f, err := t.scene.CurrentPath(h)
		if err != nil || f.Empty() {
			continue
		}
		frames = append(frames, f)
	}
	for y := range t.height {
		for x := range t.width {
			top := pixel(frames, x, 2*y)
			bottom := pixel(frames, x, 2*y+1)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	t.screen.Show()
}

// pixel composites all frames covering the pixel, bottom first.
func pixel(frames []waves.Frame, x, y int) colorful.Color {
	pt := waves.Pt(float64(x)+0.5, float64(y)+0.5)
	c := background
	for _, f := range frames {
		if !f.Bounds().Contains(pt) || !f.Contains(pt) {
			continue
		}
		c = c.BlendRgb(f.Gradient.At(pt), f.Alpha)
	}
	return c
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
