package waves

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	diff(t, Pt(0, 0), c.Eval(0))
	diff(t, Pt(5, 7.5), c.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(10, 0), c.Eval(1))
}

func TestCubicHull(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(-5, 10), Pt(15, 12), Pt(10, 0)}
	diff(t, Rect{-5, 0, 15, 12}, c.Hull())
	for i := 0; i <= 20; i++ {
		pt := c.Eval(float64(i) / 20)
		r := c.Hull()
		if pt.X < r.X0 || pt.X > r.X1 || pt.Y < r.Y0 || pt.Y > r.Y1 {
			t.Errorf("%v is outside the hull %v", pt, r)
		}
	}
}

func TestCubicLines(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	lines := c.Lines(4)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	diff(t, c.P0, lines[0].P0)
	diff(t, c.P3, lines[3].P1)
	for i := 1; i < len(lines); i++ {
		if lines[i].P0 != lines[i-1].P1 {
			t.Errorf("line %d doesn't start where line %d ends", i, i-1)
		}
	}
}
