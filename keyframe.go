package waves

import "math"

// Bounce walks the indices of an array of n+1 key frames back and forth.
//
// Each step moves the index by one in the current direction. A step that
// would leave [0, n] reverses the direction and moves two steps the other
// way instead, so that the boundary value is not repeated. The sequence this
// produces sets the rhythm of a blob's wobble and must not be altered.
type Bounce struct {
	pos  int
	inc  int
	last int
}

// NewBounce returns a walk over the indices [0, n] starting at start and
// moving up. n must be at least 1 and start must be within [0, n].
func NewBounce(n, start int) *Bounce {
	return &Bounce{pos: start, inc: 1, last: n}
}

// Next returns the current index and advances the walk.
func (b *Bounce) Next() int {
	cur := b.pos
	b.pos += b.inc
	if b.pos < 0 || b.pos > b.last {
		b.inc = -b.inc
		b.pos += b.inc * 2
	}
	return cur
}

// Keyframes are values visited at evenly spaced fractions of a loop, with
// linear interpolation in between.
type Keyframes []float64

// BounceKeyframes returns the 2n+1 key frames of a bounce walk starting at
// start over the fractions {0, 1/n, …, 1}.
func BounceKeyframes(n, start int) Keyframes {
	b := NewBounce(n, start)
	kf := make(Keyframes, 2*n+1)
	for i := range kf {
		kf[i] = float64(b.Next()) / float64(n)
	}
	return kf
}

// At returns the interpolated value at fraction f ∈ [0, 1]. Empty key frames
// evaluate to f itself.
func (kf Keyframes) At(f float64) float64 {
	switch len(kf) {
	case 0:
		return f
	case 1:
		return kf[0]
	}
	f = min(max(f, 0), 1)
	pos := f * float64(len(kf)-1)
	i := int(math.Floor(pos))
	if i >= len(kf)-1 {
		return kf[len(kf)-1]
	}
	t := pos - float64(i)
	return kf[i] + (kf[i+1]-kf[i])*t
}
