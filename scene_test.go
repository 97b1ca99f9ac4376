package waves

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"
)

func newTestScene(opts ...Option) (*Scene, *ManualClock) {
	clk := NewManualClock(epoch)
	opts = append([]Option{WithClock(clk), WithRand(newRand(1))}, opts...)
	return NewScene(opts...), clk
}

func translation(t *testing.T, s *Scene, h Handle) float64 {
	t.Helper()
	f, err := s.CurrentPath(h)
	if err != nil {
		t.Fatal(err)
	}
	return f.Translation.X
}

func TestSceneWaveAnimation(t *testing.T) {
	s, clk := newTestScene()
	h, err := s.AddWaveLayer(testWave())
	if err != nil {
		t.Fatal(err)
	}
	s.OnViewportResize(1080, 1920)
	if got := translation(t, s, h); got != 0 {
		t.Errorf("got translation %v before starting, want 0", got)
	}

	s.Start()
	if !s.Running() {
		t.Fatalf("got state %v, want running", s.State())
	}
	for _, want := range []float64{200, 400, 600, 0, 200} {
		clk.Advance(500 * time.Millisecond)
		s.Tick()
		if got := translation(t, s, h); got != want {
			t.Errorf("got translation %v, want %v", got, want)
		}
	}
}

func TestSceneLeftWave(t *testing.T) {
	s, clk := newTestScene()
	p := testWave()
	p.Direction = Left
	p.Offset = 10
	h, _ := s.AddWaveLayer(p)
	s.OnViewportResize(1080, 1920)
	s.Start()
	clk.Advance(500 * time.Millisecond)
	s.Tick()
	if got := translation(t, s, h); got != -190 {
		t.Errorf("got translation %v, want -190", got)
	}
}

func TestScenePauseResume(t *testing.T) {
	s, clk := newTestScene()
	h, _ := s.AddWaveLayer(testWave())
	s.OnViewportResize(1080, 1920)
	s.Start()

	clk.Advance(500 * time.Millisecond)
	s.Tick()
	s.Pause()
	if !s.Paused() {
		t.Fatalf("got state %v, want paused", s.State())
	}
	for range 3 {
		clk.Advance(10 * time.Second)
		s.Tick()
		if got := translation(t, s, h); got != 200 {
			t.Errorf("paused wave moved to %v", got)
		}
	}
	s.Resume()
	clk.Advance(500 * time.Millisecond)
	s.Tick()
	if got := translation(t, s, h); got != 400 {
		t.Errorf("got translation %v after resuming, want 400", got)
	}
}

func TestSceneHandles(t *testing.T) {
	s, _ := newTestScene()
	var hs []Handle
	for range 3 {
		h, err := s.AddWaveLayer(testWave())
		if err != nil {
			t.Fatal(err)
		}
		hs = append(hs, h)
	}
	h, err := s.AddBlob(NewBlobParameters(6))
	if err != nil {
		t.Fatal(err)
	}
	hs = append(hs, h)
	diff(t, hs, s.Handles())
	for i := 1; i < len(hs); i++ {
		if hs[i] <= hs[i-1] {
			t.Errorf("handles aren't increasing: %v", hs)
		}
	}

	if _, err := s.CurrentPath(Handle(999)); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("got %v, want ErrUnknownHandle", err)
	}
	if _, err := s.CurrentPath(0); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("zero handle: got %v, want ErrUnknownHandle", err)
	}
}

func TestSceneInvalidParameters(t *testing.T) {
	s, _ := newTestScene()
	_, err := s.AddWaveLayer(WaveParameters{})
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("got %v, want a *ConfigError", err)
	}
	_, err = s.AddBlob(NewBlobParameters(2))
	if !errors.As(err, &cerr) || cerr.Field != "point count" {
		t.Errorf("got %v, want a point count error", err)
	}
	if n := len(s.Handles()); n != 0 {
		t.Errorf("invalid shapes were added: %d handles", n)
	}
}

func TestSceneIgnoredResize(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, _ := newTestScene(WithLogger(log))
	h, _ := s.AddWaveLayer(testWave())
	s.OnViewportResize(1080, 1920)
	before, _ := s.CurrentPath(h)
	want := append(BezPath(nil), before.Path...)

	inf := math.Inf(1)
	for _, size := range []Size{{0, 100}, {100, 0}, {-5, -5}, {inf, 100}, {100, inf}, {math.NaN(), 100}} {
		s.OnViewportResize(size.Width, size.Height)
	}
	after, _ := s.CurrentPath(h)
	diff(t, want, after.Path)
	diff(t, Sz(1080, 1920), s.Size())
	if !strings.Contains(buf.String(), "ignored resize") {
		t.Errorf("ignored resize wasn't logged:\n%s", buf.String())
	}
}

func TestSceneNoGeometryBeforeResize(t *testing.T) {
	s, _ := newTestScene()
	w, _ := s.AddWaveLayer(testWave())
	b, _ := s.AddBlob(NewBlobParameters(6))
	for _, h := range []Handle{w, b} {
		f, err := s.CurrentPath(h)
		if err != nil {
			t.Fatal(err)
		}
		if !f.Empty() {
			t.Errorf("shape %d has geometry before the first resize", h)
		}
	}
	s.OnViewportResize(200, 200)
	for _, h := range []Handle{w, b} {
		if f, _ := s.CurrentPath(h); f.Empty() {
			t.Errorf("shape %d has no geometry after resizing", h)
		}
	}
}

func TestSceneUpdateScale(t *testing.T) {
	s, clk := newTestScene()
	h, _ := s.AddWaveLayer(testWave())
	s.OnViewportResize(1080, 1920)

	if err := s.UpdateScale(h, ScaleHeight, 2); err != nil {
		t.Fatal(err)
	}
	if got := s.PreferredHeight(); got != 400 {
		t.Errorf("got preferred height %v, want 400", got)
	}
	f, _ := s.CurrentPath(h)
	if g := f.Path.BoundingBox(); g.Y0 > 1920-400+1 {
		t.Errorf("wave wasn't rescaled: bounding box %v", g)
	}

	s.Start()
	clk.Advance(500 * time.Millisecond)
	s.Tick()
	if err := s.UpdateScale(h, ScaleDuration, 2); err != nil {
		t.Fatal(err)
	}
	s.Tick()
	if got := translation(t, s, h); got != 200 {
		t.Errorf("retiming jumped to %v, want 200", got)
	}
	clk.Advance(time.Second)
	s.Tick()
	if got := translation(t, s, h); got != 400 {
		t.Errorf("got translation %v, want 400", got)
	}

	if err := s.UpdateScale(h, ScaleLength, 0); !errors.Is(err, ErrBadScale) {
		t.Errorf("zero scale: got %v, want ErrBadScale", err)
	}
	before, _ := s.CurrentPath(h)
	want := append(BezPath(nil), before.Path...)
	for _, f := range []float64{math.Inf(1), math.NaN(), 1e308} {
		if err := s.UpdateScale(h, ScaleLength, f); !errors.Is(err, ErrBadScale) {
			t.Errorf("scale %v: got %v, want ErrBadScale", f, err)
		}
	}
	after, _ := s.CurrentPath(h)
	diff(t, want, after.Path)
	if got := s.waves.Params(0).LengthScale; got != 1 {
		t.Errorf("rejected scale was kept: %v", got)
	}
	if err := s.UpdateScale(h, Dimension(42), 1); !errors.Is(err, ErrBadScale) {
		t.Errorf("unknown dimension: got %v, want ErrBadScale", err)
	}
	if err := s.UpdateScale(Handle(999), ScaleLength, 1); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("got %v, want ErrUnknownHandle", err)
	}
	b, _ := s.AddBlob(NewBlobParameters(6))
	if err := s.UpdateScale(b, ScaleLength, 1); !errors.Is(err, ErrBadScale) {
		t.Errorf("blob: got %v, want ErrBadScale", err)
	}
}

func TestSceneTinyDurationScale(t *testing.T) {
	s, clk := newTestScene()
	h, _ := s.AddWaveLayer(testWave())
	s.OnViewportResize(1080, 1920)
	s.Start()
	clk.Advance(500 * time.Millisecond)
	s.Tick()
	if err := s.UpdateScale(h, ScaleDuration, 1e-12); err != nil {
		t.Fatal(err)
	}
	if d := s.waves.layers[0].timer.Duration(); d != time.Nanosecond {
		t.Errorf("got timer duration %v, want 1ns", d)
	}
}

func TestSceneReentrantUpdate(t *testing.T) {
	var s *Scene
	var h Handle
	var advances int
	s, clk := newTestScene(WithOnAdvance(func() {
		advances++
		if advances == 1 {
			if err := s.UpdateScale(h, ScaleHeight, 2); err != nil {
				t.Error(err)
			}
		}
	}))
	h, _ = s.AddWaveLayer(testWave())
	s.OnViewportResize(1080, 1920)
	s.Start()

	clk.Advance(100 * time.Millisecond)
	s.Tick()
	if advances != 1 {
		t.Fatalf("got %d advances, want 1", advances)
	}
	if got := s.PreferredHeight(); got != 300 {
		t.Errorf("update was applied during Tick: preferred height %v", got)
	}
	s.Tick()
	if got := s.PreferredHeight(); got != 400 {
		t.Errorf("queued update wasn't applied: preferred height %v", got)
	}
}

func TestSceneStop(t *testing.T) {
	s, clk := newTestScene()
	h, _ := s.AddWaveLayer(testWave())
	s.AddBlob(NewBlobParameters(6))
	s.OnViewportResize(1080, 1920)
	s.Start()
	g := s.group
	clk.Advance(500 * time.Millisecond)
	s.Tick()

	s.Stop()
	if s.State() != Stopped {
		t.Errorf("got state %v, want stopped", s.State())
	}
	if g.State() != Ended || g.Len() != 0 {
		t.Errorf("timers weren't ended: %v with %d members", g.State(), g.Len())
	}
	if got := translation(t, s, h); got != 0 {
		t.Errorf("got translation %v after stopping, want 0", got)
	}

	// Start begins again from scratch.
	s.Start()
	clk.Advance(250 * time.Millisecond)
	s.Tick()
	if got := translation(t, s, h); got != 100 {
		t.Errorf("got translation %v after restarting, want 100", got)
	}
}

func TestSceneStopDuringTick(t *testing.T) {
	var s *Scene
	s, clk := newTestScene(WithOnAdvance(func() { s.Stop() }))
	s.AddWaveLayer(testWave())
	s.Start()
	clk.Advance(time.Millisecond)
	s.Tick()
	if !s.Running() {
		t.Errorf("Stop took effect during Tick")
	}
	s.Tick()
	if s.State() != Stopped {
		t.Errorf("queued Stop wasn't applied: %v", s.State())
	}
}

func TestSceneWithoutAnimation(t *testing.T) {
	s, clk := newTestScene(WithoutAnimation())
	p := testWave()
	p.Offset = 25
	h, _ := s.AddWaveLayer(p)
	s.OnViewportResize(1080, 1920)
	s.Start()
	if s.State() != Stopped {
		t.Errorf("got state %v, want stopped", s.State())
	}
	clk.Advance(time.Second)
	s.Tick()
	if got := translation(t, s, h); got != 25 {
		t.Errorf("got translation %v, want the offset 25", got)
	}
}

func TestSceneAddWhileRunning(t *testing.T) {
	s, clk := newTestScene()
	s.OnViewportResize(1080, 1920)
	s.Start()
	clk.Advance(time.Second)
	h, _ := s.AddWaveLayer(testWave())
	clk.Advance(500 * time.Millisecond)
	s.Tick()
	if got := translation(t, s, h); got != 200 {
		t.Errorf("got translation %v, want 200", got)
	}
}

func TestSceneClear(t *testing.T) {
	s, _ := newTestScene()
	w, _ := s.AddWaveLayer(testWave())
	b, _ := s.AddBlob(NewBlobParameters(6))
	s.Start()
	s.Clear()
	for _, h := range []Handle{w, b} {
		if _, err := s.CurrentPath(h); !errors.Is(err, ErrUnknownHandle) {
			t.Errorf("handle %d survived Clear: %v", h, err)
		}
	}
	if n := len(s.Handles()); n != 0 {
		t.Errorf("got %d handles after Clear", n)
	}
	if !s.Running() {
		t.Errorf("got state %v after Clear, want running", s.State())
	}
	if got := s.PreferredHeight(); got != 0 {
		t.Errorf("got preferred height %v with no layers", got)
	}

	h, _ := s.AddWaveLayer(testWave())
	if h <= b {
		t.Errorf("handle %d was reused", h)
	}
}

func TestSceneBlob(t *testing.T) {
	s, clk := newTestScene()
	h, err := s.AddBlob(NewBlobParameters(6))
	if err != nil {
		t.Fatal(err)
	}
	s.OnViewportResize(200, 200)
	blob := s.refs[h].blob

	check := func() {
		t.Helper()
		f, err := s.CurrentPath(h)
		if err != nil {
			t.Fatal(err)
		}
		segs := collectSegments(f.Path)
		if len(segs) != 6 {
			t.Fatalf("got %d segments, want 6", len(segs))
		}
		center := blob.Center()
		if d := center.Distance(Pt(100, 100)); d > 100.0/6*(1+1e-9) {
			t.Fatalf("center %v wandered %v from the middle of the view", center, d)
		}
		for i, seg := range segs {
			r := seg.Start().Distance(center)
			if r < 75-1e-9 || r > 100+1e-9 {
				t.Errorf("anchor %d at radius %v, want within [75, 100]", i, r)
			}
		}
		diff(t, Gradient{From: Pt(0, 0), To: Pt(0, 200), Start: Red, End: Blue, Spread: Mirror}, f.Gradient)
		if f.Alpha != DefaultBlobAlpha {
			t.Errorf("got alpha %v, want %v", f.Alpha, DefaultBlobAlpha)
		}
	}

	check()
	s.Start()
	for range 2000 {
		clk.Advance(16 * time.Millisecond)
		s.Tick()
		check()
	}
	if blob.Center() == Pt(100, 100) {
		t.Error("the blob's center never moved")
	}

	for i := range 6 {
		kf := blob.Keyframes(i)
		if len(kf) != 13 {
			t.Errorf("point %d has %d key frames, want 13", i, len(kf))
		}
		if d := blob.Duration(i); d < 4*time.Second || d > 6*time.Second {
			t.Errorf("point %d loops in %v, want within [4s, 6s]", i, d)
		}
	}
}
