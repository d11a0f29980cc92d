package snake

import "math"

// Clock converts variable frame deltas into fixed simulation ticks.
type Clock struct {
	interval float64
	acc      float64
}

// NewClock creates a clock that fires every interval seconds.
func NewClock(interval float64) *Clock {
	return &Clock{interval: interval}
}

// Accumulated returns the time banked toward the next tick.
func (c *Clock) Accumulated() float64 {
	return c.acc
}

// Advance banks dt seconds and reports whether a tick fired.
// At most one tick fires per call. Whole intervals left over after a tick
// are dropped rather than replayed on later calls; only the fraction carries.
func (c *Clock) Advance(dt float64) bool {
	if !require(dt >= 0 && !math.IsInf(dt, 0), "negative or non-finite dt") {
		dt = 0
	}
	c.acc += dt
	if c.acc < c.interval {
		return false
	}

	c.acc -= c.interval
	if c.acc >= c.interval {
		c.acc = math.Mod(c.acc, c.interval)
	}
	return true
}

// Reset discards banked time.
func (c *Clock) Reset() {
	c.acc = 0
}
