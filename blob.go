package waves

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultBlobPoints      = 6
	DefaultInnerRatio      = 0.75
	DefaultBlobAlpha       = 0.2
	DefaultBlobMinDuration = 4 * time.Second
	DefaultBlobMaxDuration = 6 * time.Second
	// DefaultWanderRatio is the maximum distance of the blob's center from
	// the view's center, relative to the blob's outer radius.
	DefaultWanderRatio = 1.0 / 6
	// DefaultWanderStepRatio is the distance the center moves per frame at
	// most, relative to the blob's outer radius.
	DefaultWanderStepRatio = 1.0 / 4000
)

// BlobParameters describes a blob: a closed curve through a ring of points
// whose radii wobble between random bounds, while its center wanders around
// the center of the view.
//
// Zero fields other than Points take their defaults.
type BlobParameters struct {
	// Points is the number of anchors on the ring, at least 3.
	Points int
	// InnerRatio is the smallest radius as a fraction of the outer radius,
	// in (0, 1]. The outer radius is half the view's smaller side.
	InnerRatio           float64
	StartColor, EndColor colorful.Color
	Alpha                float64
	// Every point's wobble loops with a duration drawn uniformly from
	// [MinDuration, MaxDuration].
	MinDuration, MaxDuration time.Duration
	WanderRatio              float64
	WanderStepRatio          float64
}

// NewBlobParameters returns parameters for a blob with the given number of
// points and default values otherwise.
func NewBlobParameters(points int) BlobParameters {
	p := BlobParameters{Points: points}
	p.normalize()
	return p
}

func (p *BlobParameters) normalize() {
	if p.InnerRatio == 0 {
		p.InnerRatio = DefaultInnerRatio
	}
	if p.StartColor == (colorful.Color{}) && p.EndColor == (colorful.Color{}) {
		p.StartColor, p.EndColor = Red, Blue
	}
	if p.Alpha == 0 {
		p.Alpha = DefaultBlobAlpha
	}
	if p.MinDuration == 0 {
		p.MinDuration = DefaultBlobMinDuration
	}
	if p.MaxDuration == 0 {
		p.MaxDuration = max(DefaultBlobMaxDuration, p.MinDuration)
	}
	if p.WanderRatio == 0 {
		p.WanderRatio = DefaultWanderRatio
	}
	if p.WanderStepRatio == 0 {
		p.WanderStepRatio = DefaultWanderStepRatio
	}
}

// Validate reports the first invalid field of p as a *ConfigError.
func (p BlobParameters) Validate() error {
	p.normalize()
	if p.Points < 3 {
		return &ConfigError{Field: "point count", Value: p.Points, Reason: "must be at least 3"}
	}
	if !(p.InnerRatio > 0 && p.InnerRatio <= 1) {
		return &ConfigError{Field: "inner ratio", Value: p.InnerRatio, Reason: "must be within (0, 1]"}
	}
	if err := unit("alpha", p.Alpha); err != nil {
		return err
	}
	if p.MinDuration <= 0 {
		return &ConfigError{Field: "minimum duration", Value: p.MinDuration, Reason: "must be positive"}
	}
	if p.MaxDuration < p.MinDuration {
		return &ConfigError{Field: "maximum duration", Value: p.MaxDuration, Reason: "must not be less than the minimum duration"}
	}
	if err := positive("wander ratio", p.WanderRatio); err != nil {
		return err
	}
	if err := positive("wander step ratio", p.WanderStepRatio); err != nil {
		return err
	}
	if p.WanderStepRatio > p.WanderRatio {
		return &ConfigError{Field: "wander step ratio", Value: p.WanderStepRatio, Reason: "must not exceed the wander ratio"}
	}
	return nil
}

// BlobProfile holds the per-point state of a blob, indexed by point.
type BlobProfile struct {
	first  []float64
	second []float64
	// phase is drawn alongside the radii but not used when drawing. It is
	// reserved for desynchronizing the points' wobble.
	phase []float64

	angleOffset  float64
	inner, outer float64

	anchors []Point
	Path    BezPath
}

// NewBlobProfile returns the profile of a blob with n points. The ring's
// angular offset is drawn once, here. Radii are zero until the first
// Resize.
func NewBlobProfile(n int, rng *rand.Rand) *BlobProfile {
	return &BlobProfile{
		first:       make([]float64, n),
		second:      make([]float64, n),
		phase:       make([]float64, n),
		anchors:     make([]Point, n),
		angleOffset: 2 * math.Pi / float64(n) * rng.Float64(),
	}
}

// Len returns the number of points.
func (bp *BlobProfile) Len() int { return len(bp.first) }

// Bounds returns the inner and outer radius of the last Resize.
func (bp *BlobProfile) Bounds() (inner, outer float64) { return bp.inner, bp.outer }

// AngleOffset returns the rotation of the whole ring.
func (bp *BlobProfile) AngleOffset() float64 { return bp.angleOffset }

// Resize redraws both endpoint radii of every point independently and
// uniformly from [inner, outer], where outer is half the smaller side of
// size and inner is ratio·outer.
func (bp *BlobProfile) Resize(size Size, ratio float64, rng *rand.Rand) {
	bp.outer = size.MinSide() / 2
	bp.inner = bp.outer * ratio
	ring := bp.outer - bp.inner
	for i := range bp.first {
		bp.first[i] = bp.inner + ring*rng.Float64()
		bp.second[i] = bp.inner + ring*rng.Float64()
		bp.phase[i] = rng.Float64()
	}
}

// Endpoints returns the two radii point i moves between.
func (bp *BlobProfile) Endpoints(i int) (first, second float64) {
	return bp.first[i], bp.second[i]
}

// Radius returns the radius of point i at fraction f: the first radius at 0,
// the second at 1.
func (bp *BlobProfile) Radius(i int, f float64) float64 {
	return bp.first[i]*(1-f) + bp.second[i]*f
}

// Angle returns the angle of point i.
func (bp *BlobProfile) Angle(i int) float64 {
	return 2*math.Pi/float64(len(bp.first))*float64(i) + bp.angleOffset
}

// Anchors returns the ring's points around center, point i at fraction
// fractions[i]. The returned slice is reused by the next call.
func (bp *BlobProfile) Anchors(center Point, fractions []float64) []Point {
	for i := range bp.anchors {
		r := bp.Radius(i, fractions[i])
		bp.anchors[i] = center.Translate(VecFromAngle(bp.Angle(i)).Mul(r))
	}
	return bp.anchors
}

// Build recomputes Path as the closed curve through the anchors.
func (bp *BlobProfile) Build(center Point, fractions []float64) BezPath {
	bp.Path.Reset()
	DefaultSmoother.Closed(&bp.Path, bp.Anchors(center, fractions))
	return bp.Path
}
