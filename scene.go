package waves

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Handle names a shape of a [Scene]. The zero Handle names no shape.
type Handle uint64

type shapeRef struct {
	// wave is the layer index, or -1 for blobs.
	wave int
	blob *BlobController
}

// Scene is the surface a host view talks to. It owns wave layers and blobs,
// drives all of their timers from one clock, and hands out a Frame per shape
// and render pass.
//
// A Scene is not safe for concurrent use. Hosts call it from the goroutine
// that renders. The intended loop is: OnViewportResize when the view's size
// changes, Tick once per frame, then CurrentPath for every shape in
// Handles order.
type Scene struct {
	clock     Clock
	rng       *rand.Rand
	log       *slog.Logger
	animate   bool
	onAdvance func()

	waves WaveLayerSet
	blobs []*BlobController
	refs  map[Handle]shapeRef
	order []Handle
	next  Handle

	group *TimerGroup

	// Mutations made while Tick is calling listeners are applied at the
	// start of the next Tick.
	ticking bool
	pending []func()
}

// Option configures a Scene.
type Option func(*Scene)

// WithClock sets the clock animation reads. The default is [SystemClock].
func WithClock(c Clock) Option {
	return func(s *Scene) { s.clock = c }
}

// WithRand sets the source of randomness for blob geometry and motion.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scene) { s.rng = rng }
}

// WithLogger sets the logger for lifecycle events, logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scene) { s.log = l }
}

// WithoutAnimation makes Start a no-op; shapes stay at their initial phase.
func WithoutAnimation() Option {
	return func(s *Scene) { s.animate = false }
}

// WithOnAdvance sets a function called once per Tick while animation runs.
// Hosts that redraw on demand use it to request the next frame.
func WithOnAdvance(fn func()) Option {
	return func(s *Scene) { s.onAdvance = fn }
}

func NewScene(opts ...Option) *Scene {
	s := &Scene{
		clock:   SystemClock{},
		animate: true,
		refs:    map[Handle]shapeRef{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		now := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(now, now>>32))
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Scene) register(ref shapeRef) Handle {
	s.next++
	h := s.next
	s.refs[h] = ref
	s.order = append(s.order, h)
	return h
}

// AddWaveLayer adds a wave layer on top of all existing shapes. Invalid
// parameters are reported as a *ConfigError and no layer is added.
func (s *Scene) AddWaveLayer(p WaveParameters) (Handle, error) {
	i, err := s.waves.Add(p)
	if err != nil {
		return 0, fmt.Errorf("add wave layer: %w", err)
	}
	if s.group != nil {
		s.waves.bindLayer(s.waves.layers[i], s.group)
	}
	h := s.register(shapeRef{wave: i})
	s.log.Debug("added wave layer", "handle", h, "wavelength", p.Wavelength, "direction", s.waves.layers[i].params.Direction)
	return h, nil
}

// AddBlob adds a blob on top of all existing shapes. Invalid parameters are
// reported as a *ConfigError and no blob is added.
func (s *Scene) AddBlob(p BlobParameters) (Handle, error) {
	b, err := NewBlobController(p, s.rng)
	if err != nil {
		return 0, fmt.Errorf("add blob: %w", err)
	}
	b.Resize(s.waves.size)
	if s.group != nil {
		b.bind(s.group)
	}
	s.blobs = append(s.blobs, b)
	h := s.register(shapeRef{wave: -1, blob: b})
	s.log.Debug("added blob", "handle", h, "points", b.params.Points, "keyframes", []float64(b.keyframes[0]))
	return h, nil
}

// Handles returns the scene's shapes in drawing order, bottom first.
func (s *Scene) Handles() []Handle {
	return append([]Handle(nil), s.order...)
}

// Start starts animating all shapes. It does nothing if animation is
// already running or paused, or was disabled with WithoutAnimation.
func (s *Scene) Start() {
	if !s.animate || s.group != nil {
		return
	}
	s.group = NewTimerGroup(s.clock)
	s.group.OnAdvance = s.onAdvance
	s.waves.bind(s.group)
	for _, b := range s.blobs {
		b.bind(s.group)
	}
	s.group.Start()
	s.log.Debug("animation started", "timers", s.group.Len())
}

// Pause freezes animation time. It does nothing unless animation is running.
func (s *Scene) Pause() {
	if s.group == nil {
		return
	}
	s.group.Pause()
}

// Resume continues paused animation without a jump in phase.
func (s *Scene) Resume() {
	if s.group == nil {
		return
	}
	s.group.Resume()
}

// Stop ends all timers and releases them. Shapes fall back to their
// initial phase. A later Start begins again from scratch.
func (s *Scene) Stop() {
	if s.ticking {
		s.pending = append(s.pending, s.Stop)
		return
	}
	if s.group == nil {
		return
	}
	s.group.End()
	s.group = nil
	s.waves.unbind()
	for _, b := range s.blobs {
		b.unbind()
	}
	s.log.Debug("animation stopped")
}

// State returns the animation state: Stopped if animation was never
// started or has been stopped.
func (s *Scene) State() TimerState {
	if s.group == nil {
		return Stopped
	}
	return s.group.State()
}

func (s *Scene) Running() bool { return s.State() == Running }
func (s *Scene) Paused() bool  { return s.State() == Paused }

// Tick performs the animation step of one render pass. It first applies
// mutations queued during the previous Tick, then samples the clock once
// for all timers.
func (s *Scene) Tick() {
	pending := s.pending
	s.pending = nil
	for _, fn := range pending {
		fn()
	}
	if s.group == nil {
		return
	}
	s.ticking = true
	defer func() { s.ticking = false }()
	s.group.Tick()
}

// OnViewportResize recomputes the static geometry of all shapes. Sizes with
// a side that isn't positive and finite are ignored and the previous
// geometry is kept.
func (s *Scene) OnViewportResize(width, height float64) {
	if s.ticking {
		s.pending = append(s.pending, func() { s.OnViewportResize(width, height) })
		return
	}
	size := Sz(width, height)
	if size.Empty() {
		s.log.Debug("ignored resize", "size", size)
		return
	}
	s.waves.Resize(size)
	for _, b := range s.blobs {
		b.Resize(size)
	}
	s.log.Debug("resized", "size", size)
}

// Size returns the last accepted view size.
func (s *Scene) Size() Size { return s.waves.size }

// CurrentPath returns the frame of the shape named by h.
func (s *Scene) CurrentPath(h Handle) (Frame, error) {
	ref, ok := s.refs[h]
	if !ok {
		return Frame{}, ErrUnknownHandle
	}
	if ref.blob != nil {
		return ref.blob.Frame(), nil
	}
	return s.waves.Frame(ref.wave), nil
}

// UpdateScale sets a scale of the wave layer named by h. Blobs have no
// scales. When called from a listener during Tick, the arguments are checked
// immediately and the change is applied at the start of the next Tick.
func (s *Scene) UpdateScale(h Handle, dim Dimension, f float64) error {
	ref, ok := s.refs[h]
	if !ok {
		return ErrUnknownHandle
	}
	if ref.blob != nil {
		return fmt.Errorf("%w: blobs have no %s scale", ErrBadScale, dim)
	}
	if dim < ScaleLength || dim > ScaleFixedHeight || !finitePositive(f) {
		return fmt.Errorf("%w: %s scale %v", ErrBadScale, dim, f)
	}
	apply := func() error {
		return s.waves.UpdateScale(ref.wave, dim, f, s.clock.Now())
	}
	if s.ticking {
		s.pending = append(s.pending, func() {
			if err := apply(); err != nil {
				s.log.Debug("deferred scale update failed", "handle", h, "err", err)
			}
		})
		return nil
	}
	return apply()
}

// PreferredHeight returns the smallest view height showing all wave layers
// completely.
func (s *Scene) PreferredHeight() float64 {
	return s.waves.PreferredHeight()
}

// Clear removes all shapes and ends their timers. Handles issued before
// Clear become invalid. A running scene keeps running with no shapes.
func (s *Scene) Clear() {
	if s.ticking {
		s.pending = append(s.pending, s.Clear)
		return
	}
	state := s.State()
	s.Stop()
	s.waves.Clear()
	for _, b := range s.blobs {
		b.end()
	}
	s.blobs = nil
	clear(s.refs)
	s.order = nil
	if state == Running || state == Paused {
		s.Start()
		if state == Paused {
			s.Pause()
		}
	}
}
