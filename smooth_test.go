package waves

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSmoothClosedSquare(t *testing.T) {
	anchors := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	var p BezPath
	DefaultSmoother.Closed(&p, anchors)
	want := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(1.6, -1.6), Pt(8.4, -1.6), Pt(10, 0)),
		CubicTo(Pt(11.6, 1.6), Pt(11.6, 8.4), Pt(10, 10)),
		CubicTo(Pt(8.4, 11.6), Pt(1.6, 11.6), Pt(0, 10)),
		CubicTo(Pt(-1.6, 8.4), Pt(-1.6, 1.6), Pt(0, 0)),
		ClosePath(),
	}
	diff(t, want, p, cmpopts.EquateApprox(0, 1e-12))
}

func TestSmoothClosedSegmentCount(t *testing.T) {
	rng := newRand(1)
	for n := 3; n < 20; n++ {
		anchors := make([]Point, n)
		for i := range anchors {
			anchors[i] = Pt(rng.Float64()*100, rng.Float64()*100)
		}
		var p BezPath
		DefaultSmoother.Closed(&p, anchors)
		segs := collectSegments(p)
		if len(segs) != n {
			t.Fatalf("%d anchors: got %d segments, want %d", n, len(segs), n)
		}
		for i, seg := range segs {
			if seg.Kind != CubicKind {
				t.Errorf("segment %d is %v, want cubic", i, seg.Kind)
			}
			if seg.Start() != anchors[i] {
				t.Errorf("segment %d starts at %v, want %v", i, seg.Start(), anchors[i])
			}
		}
		if end := segs[n-1].End(); end != anchors[0] {
			t.Errorf("loop ends at %v, want %v", end, anchors[0])
		}
	}
}

// Neighbouring segments share the tangent at their common anchor.
func TestSmoothContinuity(t *testing.T) {
	anchors := []Point{Pt(0, 0), Pt(3, 7), Pt(9, 4), Pt(12, 12), Pt(20, 1)}
	check := func(name string, segs []PathSegment, closed bool) {
		t.Helper()
		n := len(segs)
		last := n - 1
		if closed {
			last = n
		}
		for i := 0; i < last; i++ {
			a := segs[i].Cubic()
			b := segs[(i+1)%n].Cubic()
			in := a.P3.Sub(a.P2)
			out := b.P1.Sub(b.P0)
			diff(t, in, out, cmpopts.EquateApprox(0, 1e-9))
		}
	}

	var open, closed BezPath
	DefaultSmoother.Open(&open, anchors)
	DefaultSmoother.Closed(&closed, anchors)
	check("open", collectSegments(open), false)
	check("closed", collectSegments(closed), true)
}

func TestSmoothOpenClampsEnds(t *testing.T) {
	var p BezPath
	DefaultSmoother.Open(&p, []Point{Pt(0, 0), Pt(10, 0)})
	want := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(1.6, 0), Pt(8.4, 0), Pt(10, 0)),
	}
	diff(t, want, p, cmpopts.EquateApprox(0, 1e-12))
}

func TestSmoothGuarded(t *testing.T) {
	samples := []Point{Pt(-1, 5), Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, -5)}
	var p BezPath
	DefaultSmoother.Guarded(&p, samples)
	segs := collectSegments(p)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Start() != samples[1] || segs[1].End() != samples[3] {
		t.Errorf("guarded curve spans %v to %v", segs[0].Start(), segs[1].End())
	}
	// The first tangent points from the leading guard to the second sample.
	diff(t, samples[2].Sub(samples[0]).Mul(DefaultSmoothing), segs[0].P1.Sub(segs[0].P0), cmpopts.EquateApprox(0, 1e-12))
	diff(t, samples[4].Sub(samples[2]).Mul(DefaultSmoothing), segs[1].P3.Sub(segs[1].P2), cmpopts.EquateApprox(0, 1e-12))
}

func TestSmoothTooFewAnchors(t *testing.T) {
	for _, anchors := range [][]Point{nil, {Pt(1, 1)}} {
		var p BezPath
		DefaultSmoother.Open(&p, anchors)
		DefaultSmoother.Closed(&p, anchors)
		DefaultSmoother.Guarded(&p, anchors)
		if len(p) != 0 {
			t.Errorf("%d anchors produced %v", len(anchors), p)
		}
	}
	var p BezPath
	DefaultSmoother.Guarded(&p, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)})
	if len(p) != 0 {
		t.Errorf("guarded curve with one drawable anchor produced %v", p)
	}
}
