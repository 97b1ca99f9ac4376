// Command waveview shows waves and blobs in a resizable window.
//
// Space pauses and resumes, S stops and restarts, B adds a blob, C clears the
// scene and adds the default waves again, Escape or Q quits.
package main

import (
	"errors"
	"flag"
	"image"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/waves"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type game struct {
	scene       *waves.Scene
	rng         *rand.Rand
	right, left int
	width       int
	height      int

	vertices []ebiten.Vertex
	indices  []uint16
}

func (g *game) addDefaultWaves() error {
	for _, p := range waves.DefaultWaves(g.rng, g.right, g.left) {
		if _, err := g.scene.AddWaveLayer(p); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) addBlob() error {
	_, err := g.scene.AddBlob(waves.NewBlobParameters(waves.DefaultBlobPoints))
	return err
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.scene.Paused() {
			g.scene.Resume()
		} else {
			g.scene.Pause()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if g.scene.State() == waves.Stopped {
			g.scene.Start()
		} else {
			g.scene.Stop()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		if err := g.addBlob(); err != nil {
			return err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.scene.Clear()
		if err := g.addDefaultWaves(); err != nil {
			return err
		}
	}
	g.scene.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	for _, h := range g.scene.Handles() {
		f, err := g.scene.CurrentPath(h)
		if err != nil || f.Empty() {
			continue
		}
		g.fill(screen, f)
	}
}

// fill draws a frame with per-vertex colors sampled from its gradient.
func (g *game) fill(screen *ebiten.Image, f waves.Frame) {
	var path vector.Path
	for _, el := range f.Transformed() {
		switch el.Kind {
		case waves.MoveToKind:
			path.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case waves.LineToKind:
			path.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case waves.CubicToKind:
			path.CubicTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y))
		case waves.ClosePathKind:
			path.Close()
		}
	}

	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	for i := range g.vertices {
		v := &g.vertices[i]
		c := f.ColorAt(waves.Pt(float64(v.DstX), float64(v.DstY)))
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = float32(c.R) / 0xff
		v.ColorG = float32(c.G) / 0xff
		v.ColorB = float32(c.B) / 0xff
		v.ColorA = float32(c.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.NonZero
	screen.DrawTriangles(g.vertices, g.indices, whiteSubImage, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.OnViewportResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func main() {
	width := flag.Int("width", 540, "Window width")
	height := flag.Int("height", 960, "Window height")
	right := flag.Int("right", 2, "Number of waves scrolling right")
	left := flag.Int("left", 2, "Number of waves scrolling left")
	blobs := flag.Int("blobs", 1, "Number of blobs")
	flag.Parse()

	now := uint64(time.Now().UnixNano())
	g := &game{
		rng:   rand.New(rand.NewPCG(now, now>>32)),
		right: *right,
		left:  *left,
	}
	g.scene = waves.NewScene(waves.WithRand(g.rng))
	if err := g.addDefaultWaves(); err != nil {
		log.Fatal(err)
	}
	for range *blobs {
		if err := g.addBlob(); err != nil {
			log.Fatal(err)
		}
	}
	g.scene.Start()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("waves - Space: pause, S: stop, B: blob, C: clear, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
