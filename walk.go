package waves

import (
	"math"
	"math/rand/v2"
)

// RandomWalk is a bounded random walk with a pull towards a rest point.
//
// Each step shrinks the offset from Rest by the factor 1 − Step/MaxRadius,
// turns the heading by a uniformly random angle in [−π/8, π/8], and moves by
// a uniformly random fraction of Step along the heading. Starting within
// MaxRadius of Rest, the walk never leaves that disc: the shrink takes away
// at least as much as a step can add at the edge.
type RandomWalk struct {
	Rest      Point
	Center    Point
	MaxRadius float64
	StepSize  float64
	// Heading is the direction of the last step, in radians.
	Heading float64
}

// maxTurn bounds the change in heading per step.
const maxTurn = math.Pi / 8

// Reset moves the walk back to its rest point.
func (w *RandomWalk) Reset(rest Point, maxRadius, step float64) {
	w.Rest = rest
	w.Center = rest
	w.MaxRadius = maxRadius
	w.StepSize = step
}

// Step advances the walk by one step and returns the new center.
func (w *RandomWalk) Step(rng *rand.Rand) Point {
	if !(w.MaxRadius > 0) {
		return w.Center
	}
	home := w.Center.Sub(w.Rest).Mul(1 - w.StepSize/w.MaxRadius)
	w.Heading += (rng.Float64()*2 - 1) * maxTurn
	dist := rng.Float64()
	w.Center = w.Rest.Translate(home).Translate(VecFromAngle(w.Heading).Mul(w.StepSize * dist))
	return w.Center
}
