package waves

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (cb CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: cb.P0, P1: cb.P1, P2: cb.P2, P3: cb.P3}
}

// Hull returns the bounding box of the control polygon, which always
// contains the curve.
func (cb CubicBez) Hull() Rect {
	return NewRectFromPoints(cb.P0, cb.P3).UnionPoint(cb.P1).UnionPoint(cb.P2)
}

// flattenSteps is the number of lines a cubic is replaced by for winding
// tests. The curves built here are short relative to their anchors' spacing,
// so a fixed subdivision is plenty for cell-sized hit tests.
const flattenSteps = 16

// Lines returns the curve approximated by n lines.
func (cb CubicBez) Lines(n int) []Line {
	out := make([]Line, 0, n)
	prev := cb.P0
	for i := 1; i <= n; i++ {
		var next Point
		if i == n {
			next = cb.P3
		} else {
			next = cb.Eval(float64(i) / float64(n))
		}
		out = append(out, Line{prev, next})
		prev = next
	}
	return out
}
