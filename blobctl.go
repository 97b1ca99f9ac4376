package waves

import (
	"math/rand/v2"
	"time"
)

// BlobController owns a blob's per-point state and animation.
//
// Every point is driven by its own timer, which replays the point's bounce
// key frames with its own duration. The timer of point 0 also steps the
// random walk of the blob's center, once per frame.
type BlobController struct {
	params  BlobParameters
	profile *BlobProfile
	walk    RandomWalk
	rng     *rand.Rand
	size    Size

	keyframes []Keyframes
	durations []time.Duration
	// timers is nil while the blob isn't animated.
	timers    []*LoopTimer
	fractions []float64
}

// NewBlobController validates p and returns a blob. The ring's angular
// offset, every point's key frames, and every point's loop duration are
// drawn from rng here, once.
func NewBlobController(p BlobParameters, rng *rand.Rand) (*BlobController, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.normalize()
	n := p.Points
	b := &BlobController{
		params:    p,
		profile:   NewBlobProfile(n, rng),
		rng:       rng,
		keyframes: make([]Keyframes, n),
		durations: make([]time.Duration, n),
		fractions: make([]float64, n),
	}
	spread := float64(p.MaxDuration - p.MinDuration)
	for i := range n {
		b.keyframes[i] = BounceKeyframes(n, rng.IntN(n))
		b.durations[i] = p.MinDuration + time.Duration(spread*rng.Float64())
	}
	return b, nil
}

func (b *BlobController) Params() BlobParameters { return b.params }

// Profile returns the blob's per-point geometry.
func (b *BlobController) Profile() *BlobProfile { return b.profile }

// Keyframes returns the key frames of point i.
func (b *BlobController) Keyframes(i int) Keyframes { return b.keyframes[i] }

// Duration returns the loop duration of point i.
func (b *BlobController) Duration(i int) time.Duration { return b.durations[i] }

// Center returns the current center of the blob.
func (b *BlobController) Center() Point { return b.walk.Center }

// Walk returns the random walk moving the blob's center.
func (b *BlobController) Walk() *RandomWalk { return &b.walk }

// Resize redraws the radii for a new view size and moves the center back
// to the middle of the view. Empty sizes are ignored; Resize reports whether
// the size was accepted.
func (b *BlobController) Resize(size Size) bool {
	if size.Empty() {
		return false
	}
	b.size = size
	b.profile.Resize(size, b.params.InnerRatio, b.rng)
	_, outer := b.profile.Bounds()
	b.walk.Reset(size.Center(), outer*b.params.WanderRatio, outer*b.params.WanderStepRatio)
	return true
}

// Frame returns the blob at the points' current fractions.
func (b *BlobController) Frame() Frame {
	if b.size.Empty() {
		return Frame{}
	}
	for i := range b.fractions {
		if b.timers != nil {
			b.fractions[i] = b.timers[i].Value()
		} else {
			b.fractions[i] = 0
		}
	}
	return Frame{
		Path: b.profile.Build(b.walk.Center, b.fractions),
		Gradient: Gradient{
			From:   Pt(0, 0),
			To:     Pt(0, b.size.Height),
			Start:  b.params.StartColor,
			End:    b.params.EndColor,
			Spread: Mirror,
		},
		Alpha: b.params.Alpha,
	}
}

func (b *BlobController) bind(g *TimerGroup) {
	b.timers = make([]*LoopTimer, len(b.keyframes))
	for i := range b.timers {
		t := NewLoopTimer(b.durations[i])
		t.Keyframes = b.keyframes[i]
		if i == 0 {
			t.OnUpdate = func(*LoopTimer) {
				if !b.size.Empty() {
					b.walk.Step(b.rng)
				}
			}
		}
		b.timers[i] = t
		g.Add(t)
	}
}

func (b *BlobController) unbind() {
	b.timers = nil
}

func (b *BlobController) end() {
	for _, t := range b.timers {
		t.End()
	}
	b.timers = nil
}
