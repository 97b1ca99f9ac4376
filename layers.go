package waves

import (
	"fmt"
	"time"
)

// Dimension names a scalable property of a wave layer.
type Dimension int

const (
	ScaleLength Dimension = iota + 1
	ScaleHeight
	ScaleDuration
	ScaleFixedHeight
)

func (d Dimension) String() string {
	switch d {
	case ScaleLength:
		return "length"
	case ScaleHeight:
		return "height"
	case ScaleDuration:
		return "duration"
	case ScaleFixedHeight:
		return "fixed height"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

type waveLayer struct {
	params  WaveParameters
	profile WaveProfile
	// timer is nil while the layer isn't animated.
	timer *LoopTimer
}

func (l *waveLayer) fraction() float64 {
	if l.timer == nil {
		return 0
	}
	return l.timer.Sampled()
}

// WaveLayerSet owns a stack of wave layers drawn bottom to top in the order
// they were added.
//
// Static geometry is recomputed on resize and when a geometric scale
// changes, never per frame. Animation only changes each layer's
// translation.
type WaveLayerSet struct {
	layers []*waveLayer
	size   Size
}

// Add validates p and appends a layer. It returns the layer's index.
func (s *WaveLayerSet) Add(p WaveParameters) (int, error) {
	if err := p.Validate(); err != nil {
		return -1, err
	}
	p.normalize()
	l := &waveLayer{params: p}
	if !s.size.Empty() {
		l.profile.Reset(&l.params, s.size)
	}
	s.layers = append(s.layers, l)
	return len(s.layers) - 1, nil
}

func (s *WaveLayerSet) Len() int { return len(s.layers) }

func (s *WaveLayerSet) Size() Size { return s.size }

// Params returns the parameters of layer i.
func (s *WaveLayerSet) Params(i int) WaveParameters { return s.layers[i].params }

// Profile returns the static geometry of layer i.
func (s *WaveLayerSet) Profile(i int) *WaveProfile { return &s.layers[i].profile }

// Resize recomputes all layers for a new view size. Empty sizes are
// ignored and the previous geometry is kept; Resize reports whether the size
// was accepted.
func (s *WaveLayerSet) Resize(size Size) bool {
	if size.Empty() {
		return false
	}
	s.size = size
	for _, l := range s.layers {
		l.profile.Reset(&l.params, size)
	}
	return true
}

// Frame returns layer i at its current scroll fraction.
func (s *WaveLayerSet) Frame(i int) Frame {
	l := s.layers[i]
	if s.size.Empty() {
		return Frame{}
	}
	return Frame{
		Path:        l.profile.Path,
		Translation: Vec(l.params.Translation(l.fraction()), 0),
		Gradient:    l.profile.Gradient,
		Alpha:       l.params.Alpha,
	}
}

// UpdateScale sets one of layer i's scales. Geometric scales recompute the
// layer's profile; the duration scale retimes its running timer without a
// jump in phase.
func (s *WaveLayerSet) UpdateScale(i int, dim Dimension, f float64, now time.Time) error {
	if i < 0 || i >= len(s.layers) {
		return ErrUnknownHandle
	}
	if !finitePositive(f) {
		return fmt.Errorf("%w: %s scale %v must be positive and finite", ErrBadScale, dim, f)
	}
	l := s.layers[i]
	old := l.params
	switch dim {
	case ScaleLength:
		l.params.LengthScale = f
	case ScaleHeight:
		l.params.HeightScale = f
	case ScaleFixedHeight:
		l.params.FixedHeightScale = f
	case ScaleDuration:
		l.params.DurationScale = f
		if l.timer != nil {
			l.timer.SetDuration(l.params.ScaledDuration(), now)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown dimension %s", ErrBadScale, dim)
	}
	if !l.params.scaledFinite() {
		l.params = old
		return fmt.Errorf("%w: %s scale %v overflows", ErrBadScale, dim, f)
	}
	if !s.size.Empty() {
		l.profile.Reset(&l.params, s.size)
	}
	return nil
}

// PreferredHeight returns the smallest view height that shows all layers
// completely.
func (s *WaveLayerSet) PreferredHeight() float64 {
	var h float64
	for _, l := range s.layers {
		h = max(h, l.params.PreferredHeight())
	}
	return h
}

// bind gives every layer a fresh timer in g.
func (s *WaveLayerSet) bind(g *TimerGroup) {
	for _, l := range s.layers {
		s.bindLayer(l, g)
	}
}

func (s *WaveLayerSet) bindLayer(l *waveLayer, g *TimerGroup) {
	l.timer = NewLoopTimer(l.params.ScaledDuration())
	g.Add(l.timer)
}

// unbind forgets the layers' timers. Ending them is up to their group.
func (s *WaveLayerSet) unbind() {
	for _, l := range s.layers {
		l.timer = nil
	}
}

// Clear drops all layers.
func (s *WaveLayerSet) Clear() {
	for _, l := range s.layers {
		if l.timer != nil {
			l.timer.End()
		}
	}
	s.layers = nil
}
