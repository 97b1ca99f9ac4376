package waves

import (
	"math/rand/v2"
	"time"
)

// DefaultWaves returns parameters for right waves scrolling right followed by
// left waves scrolling left. Each wave is about 800 wide and 100 high,
// sits about 200 above the bottom edge, and is translucent red to blue.
func DefaultWaves(rng *rand.Rand, right, left int) []WaveParameters {
	out := make([]WaveParameters, 0, right+left)
	add := func(dir Direction) {
		p := NewWaveParameters(
			800+rng.Float64()*100,
			100+rng.Float64()*20,
			200+rng.Float64()*20,
			rng.Float64()*50,
			2*time.Second+time.Duration(rng.Float64()*float64(time.Second)),
			dir,
		)
		p.Alpha = 0.3
		out = append(out, p)
	}
	for range right {
		add(Right)
	}
	for range left {
		add(Left)
	}
	return out
}
