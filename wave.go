package waves

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Direction is the horizontal direction a wave scrolls in.
type Direction int

const (
	Right Direction = 1
	Left  Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "Direction(?)"
	}
}

// Orientation is the axis of a wave's fill gradient.
type Orientation int

const (
	// Horizontal gradients run from the left to the right edge of the view.
	Horizontal Orientation = iota
	// Vertical gradients run from the wave's crest line down to its trough
	// line.
	Vertical
)

// DefaultSampleSize is the number of samples per wavelength used when
// WaveParameters.SampleSize is zero.
const DefaultSampleSize = 16

// WaveParameters describes one layer of a wave set.
//
// The scale fields are multipliers applied whenever the corresponding value
// is read through one of the Scaled methods. They allow rescaling a layer at
// runtime without losing its base values. A zero scale is treated as 1.
type WaveParameters struct {
	// Wavelength is the horizontal length of one period.
	Wavelength float64
	// Height is the vertical distance between crest and trough.
	Height float64
	// FixedHeight is the distance between the trough and the bottom edge
	// of the view.
	FixedHeight float64
	// Offset is the initial horizontal phase offset.
	Offset float64
	// StartColor and EndColor are the gradient's colors.
	StartColor, EndColor colorful.Color
	// Alpha is the layer's opacity in [0, 1].
	Alpha float64
	// Duration is the time it takes to scroll by one wavelength.
	Duration time.Duration
	// Direction defaults to Right.
	Direction Direction
	// SampleSize is the number of anchors per wavelength. It defaults to
	// DefaultSampleSize and must be at least 2.
	SampleSize  int
	Orientation Orientation

	LengthScale      float64
	HeightScale      float64
	DurationScale    float64
	FixedHeightScale float64
}

// NewWaveParameters returns parameters for an opaque wave with a horizontal
// red to blue gradient and unit scales.
func NewWaveParameters(wavelength, height, fixedHeight, offset float64, duration time.Duration, dir Direction) WaveParameters {
	return WaveParameters{
		Wavelength:       wavelength,
		Height:           height,
		FixedHeight:      fixedHeight,
		Offset:           offset,
		StartColor:       Red,
		EndColor:         Blue,
		Alpha:            1,
		Duration:         duration,
		Direction:        dir,
		SampleSize:       DefaultSampleSize,
		LengthScale:      1,
		HeightScale:      1,
		DurationScale:    1,
		FixedHeightScale: 1,
	}
}

func (p *WaveParameters) normalize() {
	if p.SampleSize == 0 {
		p.SampleSize = DefaultSampleSize
	}
	if p.Direction == 0 {
		p.Direction = Right
	}
	for _, s := range []*float64{&p.LengthScale, &p.HeightScale, &p.DurationScale, &p.FixedHeightScale} {
		if *s == 0 {
			*s = 1
		}
	}
}

// Validate reports the first invalid field of p as a *ConfigError. Zero
// values that have defaults are accepted.
func (p WaveParameters) Validate() error {
	p.normalize()
	if err := positive("wavelength", p.Wavelength); err != nil {
		return err
	}
	if err := positive("height", p.Height); err != nil {
		return err
	}
	if math.IsNaN(p.FixedHeight) || math.IsInf(p.FixedHeight, 0) {
		return &ConfigError{Field: "fixed height", Value: p.FixedHeight, Reason: "must be finite"}
	}
	if math.IsNaN(p.Offset) || math.IsInf(p.Offset, 0) {
		return &ConfigError{Field: "offset", Value: p.Offset, Reason: "must be finite"}
	}
	if p.Duration <= 0 {
		return &ConfigError{Field: "duration", Value: p.Duration, Reason: "must be positive"}
	}
	if p.Direction != Right && p.Direction != Left {
		return &ConfigError{Field: "direction", Value: int(p.Direction), Reason: "must be Right or Left"}
	}
	if p.SampleSize < 2 {
		return &ConfigError{Field: "sample size", Value: p.SampleSize, Reason: "must be at least 2"}
	}
	if p.Orientation != Horizontal && p.Orientation != Vertical {
		return &ConfigError{Field: "orientation", Value: int(p.Orientation), Reason: "must be Horizontal or Vertical"}
	}
	if err := unit("alpha", p.Alpha); err != nil {
		return err
	}
	for _, s := range []struct {
		name string
		v    float64
	}{
		{"length scale", p.LengthScale},
		{"height scale", p.HeightScale},
		{"duration scale", p.DurationScale},
		{"fixed height scale", p.FixedHeightScale},
	} {
		if err := positive(s.name, s.v); err != nil {
			return err
		}
	}
	if !p.scaledFinite() {
		return &ConfigError{Field: "scales", Value: []float64{p.LengthScale, p.HeightScale, p.FixedHeightScale}, Reason: "scaled geometry overflows"}
	}
	return nil
}

func (p *WaveParameters) ScaledWavelength() float64  { return p.Wavelength * p.LengthScale }
func (p *WaveParameters) ScaledHeight() float64      { return p.Height * p.HeightScale }
func (p *WaveParameters) ScaledFixedHeight() float64 { return p.FixedHeight * p.FixedHeightScale }

// ScaledDuration returns the loop duration after scaling, clamped to
// [1ns, math.MaxInt64ns].
func (p *WaveParameters) ScaledDuration() time.Duration {
	d := float64(p.Duration) * p.DurationScale
	switch {
	case !(d >= 1):
		return time.Nanosecond
	case d >= math.MaxInt64:
		return math.MaxInt64
	default:
		return time.Duration(d)
	}
}

// scaledFinite reports whether the scaled geometry stays finite. Finite
// factors can still overflow.
func (p *WaveParameters) scaledFinite() bool {
	return finitePositive(p.ScaledWavelength()) &&
		finitePositive(p.ScaledHeight()) &&
		!math.IsInf(p.ScaledFixedHeight(), 0)
}

// Translation returns the horizontal translation of the wave's path at the
// given scroll fraction. Fractions wrap, so 1 is the same as 0.
func (p *WaveParameters) Translation(fraction float64) float64 {
	f := fraction - math.Floor(fraction)
	return f*p.ScaledWavelength()*float64(p.Direction) + p.Offset
}

// PreferredHeight is the smallest view height that shows the whole wave.
func (p *WaveParameters) PreferredHeight() float64 {
	return p.ScaledFixedHeight() + p.ScaledHeight()
}

// WaveProfile is the static geometry of one wave layer for a view size.
// Scrolling doesn't change it; hosts translate Path instead.
type WaveProfile struct {
	// Anchors are the sampled points of the sine, left to right. They span
	// one wavelength past each edge of the view so that the translated
	// silhouette never visibly ends.
	Anchors []Point
	// Path is the smoothed sine, closed by two straight edges along the
	// bottom of the view.
	Path     BezPath
	Gradient Gradient

	samples []Point
}

// NewWaveProfile computes the profile of p for a view of the given size.
func NewWaveProfile(p *WaveParameters, size Size) WaveProfile {
	var wp WaveProfile
	wp.Reset(p, size)
	return wp
}

// Reset recomputes the profile in place, reusing its storage.
func (wp *WaveProfile) Reset(p *WaveParameters, size Size) {
	w, h := size.Splat()
	length := p.ScaledWavelength()
	height := p.ScaledHeight()
	fixed := p.ScaledFixedHeight()

	cy := h - fixed - height/2
	left := -(p.Offset + length)
	delta := length / float64(p.SampleSize)

	y := func(x float64) float64 {
		cycle := (x - p.Offset - left) / length
		return cy - height/2*math.Sin(cycle*2*math.Pi)
	}

	// samples holds one guard sample on either side of the anchors. The
	// guards steer the end tangents so that the curve is shaped like the
	// sine continuing past the anchors. The n anchors reach at least one
	// wavelength past the right edge; n is counted up front because x stops
	// advancing when the offset dwarfs delta.
	n := int(math.Ceil((w+2*length)/delta)) + 1
	wp.samples = append(wp.samples[:0], Pt(left-delta, y(left-delta)))
	for k := range n + 1 {
		x := left + float64(k)*delta
		wp.samples = append(wp.samples, Pt(x, y(x)))
	}
	wp.Anchors = wp.samples[1 : len(wp.samples)-1]

	wp.Path.Reset()
	DefaultSmoother.Guarded(&wp.Path, wp.samples)
	wp.Path.LineTo(Pt(wp.Anchors[len(wp.Anchors)-1].X, h))
	wp.Path.LineTo(Pt(wp.Anchors[0].X, h))
	wp.Path.ClosePath()

	wp.Gradient = Gradient{
		Start:  p.StartColor,
		End:    p.EndColor,
		Spread: Repeat,
	}
	switch p.Orientation {
	case Vertical:
		wp.Gradient.From = Pt(0, h-fixed-height)
		wp.Gradient.To = Pt(0, h-fixed)
	default:
		wp.Gradient.From = Pt(0, 0)
		wp.Gradient.To = Pt(w, 0)
	}
}
