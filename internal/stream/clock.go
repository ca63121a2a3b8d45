package stream

import "time"

// Clock is a per-connection simulation clock in Julian days. It advances by
// rate simulated days per wall-clock second and stands still while paused.
// A Clock belongs to one goroutine and is not locked.
type Clock struct {
	jd     float64
	rate   float64
	paused bool
}

// NewClock returns a clock starting at startJD.
func NewClock(startJD, rate float64, paused bool) *Clock {
	return &Clock{jd: startJD, rate: rate, paused: paused}
}

// Now returns the current simulation time.
func (c *Clock) Now() float64 {
	return c.jd
}

// Advance moves the clock forward by elapsed wall time and returns the new
// simulation time.
func (c *Clock) Advance(elapsed time.Duration) float64 {
	if !c.paused {
		c.jd += c.rate * elapsed.Seconds()
	}
	return c.jd
}

// Paused reports whether the clock is stopped.
func (c *Clock) Paused() bool {
	return c.paused
}
