package waves

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Spread selects how a gradient continues past the ends of its axis.
type Spread int

const (
	// Pad repeats the end colors.
	Pad Spread = iota
	// Repeat restarts the gradient.
	Repeat
	// Mirror alternates between forward and backward copies of the gradient.
	Mirror
)

func (s Spread) String() string {
	switch s {
	case Pad:
		return "pad"
	case Repeat:
		return "repeat"
	case Mirror:
		return "mirror"
	default:
		return "Spread(?)"
	}
}

// Gradient is a two-stop linear gradient in view space. Hosts use it to fill
// shapes; it is not affected by a shape's translation.
type Gradient struct {
	From, To   Point
	Start, End colorful.Color
	Spread     Spread
}

// Position returns the gradient parameter in [0, 1] of pt, after applying
// the spread mode.
func (g Gradient) Position(pt Point) float64 {
	axis := g.To.Sub(g.From)
	l2 := axis.Dot(axis)
	if l2 == 0 {
		return 0
	}
	t := pt.Sub(g.From).Dot(axis) / l2
	switch g.Spread {
	case Repeat:
		t -= math.Floor(t)
	case Mirror:
		t = math.Mod(math.Abs(t), 2)
		if t > 1 {
			t = 2 - t
		}
	default:
		t = min(max(t, 0), 1)
	}
	return t
}

// At returns the color at pt. Colors are interpolated in RGB space, like
// most 2D rasterizers do.
func (g Gradient) At(pt Point) colorful.Color {
	return g.Start.BlendRgb(g.End, g.Position(pt))
}

// Stops returns the gradient's color stops as offsets along its axis.
func (g Gradient) Stops() [2]Stop {
	return [2]Stop{{0, g.Start}, {1, g.End}}
}

// Stop is a gradient color stop.
type Stop struct {
	Offset float64
	Color  colorful.Color
}

// NRGBA converts c to a non-premultiplied color with the given opacity.
func NRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(min(max(alpha, 0), 1) * 255))}
}

var (
	// Red and Blue are the default gradient colors of all shapes.
	Red  = colorful.Color{R: 1, G: 0, B: 0}
	Blue = colorful.Color{R: 0, G: 0, B: 1}
)
