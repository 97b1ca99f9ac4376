package waves

// DefaultSmoothing is the tangent scale used by the shapes in this package.
// Higher values give rounder curves that overshoot their anchors more.
const DefaultSmoothing = 0.16

// Smoother builds C¹-continuous paths of cubic Béziers through sequences of
// anchor points.
//
// The tangent at anchor i is Smoothing·(p[i+1] − p[i−1]), and the segment
// from p[i] to p[i+1] uses the control points p[i] + tangent[i] and
// p[i+1] − tangent[i+1]. Because neighbouring segments share the tangent at
// their common anchor, the resulting path is C¹ at every interior anchor.
//
// All methods append to an existing path. Fewer than two drawable anchors
// append nothing.
type Smoother struct {
	Smoothing float64
}

// DefaultSmoother uses [DefaultSmoothing].
var DefaultSmoother = Smoother{Smoothing: DefaultSmoothing}

func (s Smoother) tangent(prev, next Point) Vec2 {
	return next.Sub(prev).Mul(s.Smoothing)
}

func (s Smoother) segment(p *BezPath, from, to Point, tFrom, tTo Vec2) {
	p.CubicTo(from.Translate(tFrom), to.Translate(tTo.Negate()), to)
}

// Open appends an open curve through anchors. At the first and last anchor,
// the missing neighbour is replaced by the anchor itself.
func (s Smoother) Open(p *BezPath, anchors []Point) {
	n := len(anchors)
	if n < 2 {
		return
	}
	at := func(i int) Point {
		return anchors[min(max(i, 0), n-1)]
	}
	p.MoveTo(anchors[0])
	prevTangent := s.tangent(at(-1), at(1))
	for i := 0; i < n-1; i++ {
		next := s.tangent(at(i), at(i+2))
		s.segment(p, anchors[i], anchors[i+1], prevTangent, next)
		prevTangent = next
	}
}

// Guarded appends an open curve through anchors[1:len-1]. The first and last
// anchor are not drawn; they only provide the neighbours for the tangents at
// the ends of the drawn curve. This is useful when the anchors are samples of
// a function that continues past the drawn range.
func (s Smoother) Guarded(p *BezPath, anchors []Point) {
	n := len(anchors)
	if n < 4 {
		return
	}
	p.MoveTo(anchors[1])
	prevTangent := s.tangent(anchors[0], anchors[2])
	for i := 1; i < n-2; i++ {
		next := s.tangent(anchors[i], anchors[i+2])
		s.segment(p, anchors[i], anchors[i+1], prevTangent, next)
		prevTangent = next
	}
}

// Closed appends a closed curve through anchors. Neighbours wrap around, so
// the path consists of exactly len(anchors) cubic segments, the last of
// which ends on anchors[0], followed by a ClosePath.
func (s Smoother) Closed(p *BezPath, anchors []Point) {
	n := len(anchors)
	if n < 2 {
		return
	}
	at := func(i int) Point {
		return anchors[((i%n)+n)%n]
	}
	p.MoveTo(anchors[0])
	first := s.tangent(at(-1), at(1))
	prevTangent := first
	for i := 0; i < n; i++ {
		var next Vec2
		if i == n-1 {
			next = first
		} else {
			next = s.tangent(at(i), at(i+2))
		}
		s.segment(p, anchors[i], at(i+1), prevTangent, next)
		prevTangent = next
	}
	p.ClosePath()
}
