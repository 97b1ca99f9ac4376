// Command waverender renders a scene of waves and blobs to a sequence of PNG
// frames, stepping animation time by a fixed interval per frame.
//
// Usage:
//
//	waverender -out frames/ -frames 120 -fps 30 -blobs 1
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"honnef.co/go/waves"
)

func main() {
	outDir := flag.String("out", "frames", "Output directory for PNG frames")
	width := flag.Int("width", 1080, "Image width in pixels")
	height := flag.Int("height", 1920, "Image height in pixels")
	frames := flag.Int("frames", 60, "Number of frames to render")
	fps := flag.Int("fps", 30, "Frames per second of animation time")
	right := flag.Int("right", 2, "Number of waves scrolling right")
	left := flag.Int("left", 2, "Number of waves scrolling left")
	blobs := flag.Int("blobs", 1, "Number of blobs")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	if *frames <= 0 || *fps <= 0 {
		log.Fatal("frames and fps must be positive")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("error creating output dir: %v", err)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	clk := waves.NewManualClock(time.Unix(0, 0))
	scene := waves.NewScene(waves.WithClock(clk), waves.WithRand(rng))
	for _, p := range waves.DefaultWaves(rng, *right, *left) {
		if _, err := scene.AddWaveLayer(p); err != nil {
			log.Fatal(err)
		}
	}
	for range *blobs {
		if _, err := scene.AddBlob(waves.NewBlobParameters(waves.DefaultBlobPoints)); err != nil {
			log.Fatal(err)
		}
	}
	scene.OnViewportResize(float64(*width), float64(*height))
	scene.Start()

	step := time.Second / time.Duration(*fps)
	for i := range *frames {
		scene.Tick()
		dc := gg.NewContext(*width, *height)
		dc.SetColor(color.White)
		dc.Clear()
		if err := draw(dc, scene); err != nil {
			log.Fatal(err)
		}
		filename := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", i))
		if err := dc.SavePNG(filename); err != nil {
			log.Fatalf("error writing %s: %v", filename, err)
		}
		fmt.Printf("  frame %d/%d → %s\n", i+1, *frames, filename)
		clk.Advance(step)
	}
	fmt.Println("Done.")
}

func draw(dc *gg.Context, scene *waves.Scene) error {
	for _, h := range scene.Handles() {
		f, err := scene.CurrentPath(h)
		if err != nil {
			return err
		}
		if f.Empty() {
			continue
		}
		appendPath(dc, f.Transformed())
		dc.SetFillStyle(pattern{f})
		dc.Fill()
	}
	return nil
}

// pattern fills with a frame's gradient.
type pattern struct {
	f waves.Frame
}

func (p pattern) ColorAt(x, y int) color.Color {
	return p.f.ColorAt(waves.Pt(float64(x)+0.5, float64(y)+0.5))
}

func appendPath(dc *gg.Context, p waves.BezPath) {
	dc.ClearPath()
	for _, el := range p {
		switch el.Kind {
		case waves.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case waves.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case waves.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case waves.ClosePathKind:
			dc.ClosePath()
		}
	}
}
