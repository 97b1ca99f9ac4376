package waves

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}

// winding returns the contribution of the line to the winding number of pt,
// casting a ray to the left.
func (l Line) winding(pt Point) int {
	start, end := l.P0, l.P1
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	if pt.X < min(start.X, end.X) {
		return 0
	}
	if pt.X >= max(start.X, end.X) {
		return sign
	}
	// line equation ax + by = c
	a := end.Y - start.Y
	b := start.X - end.X
	c := a*start.X + b*start.Y
	if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
		return sign
	}
	return 0
}
