package waves

import (
	"math"
	"testing"
)

func TestRandomWalkBounded(t *testing.T) {
	tests := []struct {
		maxRadius, step float64
	}{
		{100.0 / 6, 100.0 / 4000},
		{20, 5},
		{10, 10},
		{1, 0.999},
	}
	for seed := range uint64(5) {
		rng := newRand(seed)
		for _, tt := range tests {
			var w RandomWalk
			rest := Pt(540, 960)
			w.Reset(rest, tt.maxRadius, tt.step)
			for i := range 10000 {
				c := w.Step(rng)
				if d := c.Distance(rest); d > tt.maxRadius*(1+1e-9) {
					t.Fatalf("step %d: %v is %v from rest, more than %v", i, c, d, tt.maxRadius)
				}
			}
		}
	}
}

func TestRandomWalkHeading(t *testing.T) {
	rng := newRand(9)
	var w RandomWalk
	w.Reset(Pt(0, 0), 10, 1)
	prev := w.Heading
	for range 1000 {
		w.Step(rng)
		if d := math.Abs(w.Heading - prev); d > math.Pi/8+1e-12 {
			t.Fatalf("heading turned by %v", d)
		}
		prev = w.Heading
	}
}

func TestRandomWalkStepLength(t *testing.T) {
	rng := newRand(11)
	var w RandomWalk
	w.Reset(Pt(0, 0), 10, 2)
	for range 1000 {
		before := w.Center
		shrunk := Pt(0, 0).Translate(before.Sub(Pt(0, 0)).Mul(1 - 2.0/10))
		after := w.Step(rng)
		if d := after.Distance(shrunk); d > 2+1e-9 {
			t.Fatalf("moved %v from the shrunk position, more than the step size", d)
		}
	}
}

func TestRandomWalkDegenerate(t *testing.T) {
	rng := newRand(1)
	var w RandomWalk
	w.Reset(Pt(3, 4), 0, 1)
	for range 10 {
		if c := w.Step(rng); c != Pt(3, 4) {
			t.Fatalf("got %v, want the rest point", c)
		}
	}
}
