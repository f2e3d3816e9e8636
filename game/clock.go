package game

import "math"

// DefaultMaxFrame caps a single frame's delta in milliseconds.
const DefaultMaxFrame = 250.0

// Clock is the simulation clock. It only moves when Advance is called, so a
// paused session consumes no time and no cooldown can finish during a pause.
type Clock struct {
	now      float64
	maxFrame float64
}

func NewClock(maxFrame float64) *Clock {
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	return &Clock{maxFrame: maxFrame}
}

// SanitizeDelta maps NaN, ±Inf and negative deltas to 0 and caps the rest.
func SanitizeDelta(dt, maxFrame float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if maxFrame > 0 && dt > maxFrame {
		return maxFrame
	}
	return dt
}

// Advance moves the clock by a sanitized dt and returns the delta applied.
func (c *Clock) Advance(dt float64) float64 {
	dt = SanitizeDelta(dt, c.maxFrame)
	c.now += dt
	return dt
}

func (c *Clock) Now() float64 {
	return c.now
}
