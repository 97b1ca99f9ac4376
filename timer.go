package waves

import (
	"math"
	"time"
)

// TimerState is the lifecycle state of a [LoopTimer] or [TimerGroup].
//
// Timers move from Stopped to Running, between Running and Paused, and
// finally to Ended. Ended is terminal.
type TimerState int

const (
	Stopped TimerState = iota
	Running
	Paused
	Ended
)

func (s TimerState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "TimerState(?)"
	}
}

// LoopTimer produces a linear progress fraction that goes from 0 to 1 over
// its duration and restarts at 0, forever.
//
// A LoopTimer doesn't read a clock; every method that depends on time takes
// the current time as an argument. Calls that are invalid in the current
// state are no-ops.
type LoopTimer struct {
	// Keyframes, if set, map the linear fraction to the timer's value.
	Keyframes Keyframes
	// OnUpdate is called after each sample while the timer is running
	// inside a group.
	OnUpdate func(t *LoopTimer)

	duration time.Duration
	state    TimerState
	// epoch is the time at which the current loop count started, shifted
	// by the time spent paused.
	epoch    time.Time
	pausedAt time.Time

	fraction float64
}

// NewLoopTimer returns a stopped timer. Non-positive durations are replaced
// by one nanosecond.
func NewLoopTimer(d time.Duration) *LoopTimer {
	return &LoopTimer{duration: max(d, 1)}
}

func (t *LoopTimer) State() TimerState       { return t.state }
func (t *LoopTimer) Duration() time.Duration { return t.duration }

// Start begins the timer at fraction 0. It only has an effect on stopped
// timers; an ended timer cannot be restarted.
func (t *LoopTimer) Start(now time.Time) {
	if t.state != Stopped {
		return
	}
	t.state = Running
	t.epoch = now
	t.fraction = 0
}

// Pause freezes the timer's progress.
func (t *LoopTimer) Pause(now time.Time) {
	if t.state != Running {
		return
	}
	t.state = Paused
	t.pausedAt = now
}

// Resume continues a paused timer from the fraction it was paused at.
func (t *LoopTimer) Resume(now time.Time) {
	if t.state != Paused {
		return
	}
	t.epoch = t.epoch.Add(now.Sub(t.pausedAt))
	t.state = Running
}

// End stops the timer permanently and drops its listener.
func (t *LoopTimer) End() {
	t.state = Ended
	t.OnUpdate = nil
	t.fraction = 0
}

func (t *LoopTimer) elapsed(now time.Time) time.Duration {
	switch t.state {
	case Running:
		return max(now.Sub(t.epoch), 0)
	case Paused:
		return max(t.pausedAt.Sub(t.epoch), 0)
	default:
		return 0
	}
}

// Fraction returns the linear progress within the current loop at time now,
// in [0, 1).
func (t *LoopTimer) Fraction(now time.Time) float64 {
	e := t.elapsed(now)
	return float64(e%t.duration) / float64(t.duration)
}

// SetDuration changes the loop duration. The current fraction is kept, so
// the timer continues from where it is, at the new speed.
func (t *LoopTimer) SetDuration(d time.Duration, now time.Time) {
	if d <= 0 || d == t.duration {
		return
	}
	f := t.Fraction(now)
	t.duration = d
	ref := now
	switch t.state {
	case Running:
	case Paused:
		ref = t.pausedAt
	default:
		return
	}
	t.epoch = ref.Add(-time.Duration(math.Round(f * float64(d))))
}

// Sample records the fraction at time now. Sampled returns it.
func (t *LoopTimer) Sample(now time.Time) {
	t.fraction = t.Fraction(now)
}

// Sampled returns the fraction recorded by the last Sample.
func (t *LoopTimer) Sampled() float64 { return t.fraction }

// Value returns the sampled fraction mapped through the key frames.
func (t *LoopTimer) Value() float64 {
	return t.Keyframes.At(t.fraction)
}

// TimerGroup runs a set of loop timers together. Start, Pause, Resume and
// End apply to all members, and Tick samples every member with the same
// clock reading, so all members agree on the time of a frame.
//
// Members keep their own durations. The group has the same lifecycle as a
// single timer; once ended, it cannot be restarted.
type TimerGroup struct {
	// OnAdvance is called once per Tick while the group is running and has
	// at least one member. Hosts use it to schedule a redraw.
	OnAdvance func()

	clock  Clock
	timers []*LoopTimer
	state  TimerState
	last   time.Time
}

// NewTimerGroup returns a stopped group reading time from clock.
func NewTimerGroup(clock Clock, timers ...*LoopTimer) *TimerGroup {
	return &TimerGroup{clock: clock, timers: timers}
}

func (g *TimerGroup) State() TimerState { return g.state }

// Len returns the number of members.
func (g *TimerGroup) Len() int { return len(g.timers) }

// LastTick returns the clock reading of the most recent Tick.
func (g *TimerGroup) LastTick() time.Time { return g.last }

// Add adds a member. The member joins in the group's state: it starts
// immediately if the group is running, and is ended if the group is.
func (g *TimerGroup) Add(t *LoopTimer) {
	if g.state == Ended {
		t.End()
		return
	}
	g.timers = append(g.timers, t)
	if g.state == Stopped {
		return
	}
	now := g.clock.Now()
	t.Start(now)
	if g.state == Paused {
		t.Pause(now)
	}
}

// Remove removes a member without ending it.
func (g *TimerGroup) Remove(t *LoopTimer) {
	for i, m := range g.timers {
		if m == t {
			g.timers = append(g.timers[:i:i], g.timers[i+1:]...)
			return
		}
	}
}

func (g *TimerGroup) Start() {
	if g.state != Stopped {
		return
	}
	now := g.clock.Now()
	for _, t := range g.timers {
		t.Start(now)
	}
	g.state = Running
	g.last = now
}

func (g *TimerGroup) Pause() {
	if g.state != Running {
		return
	}
	now := g.clock.Now()
	for _, t := range g.timers {
		t.Pause(now)
	}
	g.state = Paused
}

func (g *TimerGroup) Resume() {
	if g.state != Paused {
		return
	}
	now := g.clock.Now()
	for _, t := range g.timers {
		t.Resume(now)
	}
	g.state = Running
}

// End ends all members and releases them.
func (g *TimerGroup) End() {
	if g.state == Ended {
		return
	}
	for _, t := range g.timers {
		t.End()
	}
	g.timers = nil
	g.OnAdvance = nil
	g.state = Ended
}

// Tick reads the clock once and samples every member with that reading.
// While running, it then calls each member's OnUpdate in order and finally
// OnAdvance.
func (g *TimerGroup) Tick() time.Time {
	now := g.clock.Now()
	g.Advance(now)
	return now
}

// Advance is like Tick, but uses now instead of reading the clock.
func (g *TimerGroup) Advance(now time.Time) {
	if g.state == Stopped || g.state == Ended {
		return
	}
	g.last = now
	// Listeners may add members; only those present now take part.
	members := g.timers
	for _, t := range members {
		t.Sample(now)
	}
	if g.state != Running {
		return
	}
	for _, t := range members {
		if t.OnUpdate != nil {
			t.OnUpdate(t)
		}
	}
	if g.OnAdvance != nil && len(members) > 0 {
		g.OnAdvance()
	}
}
