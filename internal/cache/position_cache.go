// Package cache memoizes orbit positions.
//
// A PositionCache remembers the most recent (time, position) pair of one
// orbit. Callers that step time slowly or repeat the same instant, such as a
// paused simulation clock or several consumers asking for the same frame,
// skip the series evaluation entirely. The slot holds exactly one entry and
// every miss overwrites it.
package cache

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/anordal/celestia/internal/metrics"
	"github.com/anordal/celestia/internal/orbit"
)

// Option configures a PositionCache.
type Option func(*PositionCache)

// WithTolerance makes queries within days of the memoized time hit and
// return the memoized position. The default is exact equality.
func WithTolerance(days float64) Option {
	return func(c *PositionCache) {
		if days > 0 && !math.IsInf(days, 0) {
			c.tolerance = days
		}
	}
}

// WithName labels the cache's hit and miss counters in the metrics export.
// Unnamed caches only keep their local Stats.
func WithName(name string) Option {
	return func(c *PositionCache) {
		c.name = name
	}
}

// PositionCache decorates an orbit with a single-slot memo.
//
// A PositionCache is not safe for concurrent use; give each goroutine its own
// or wrap it with NewLocked. Stats may be read from any goroutine.
type PositionCache struct {
	orbit     orbit.Orbit
	name      string
	tolerance float64

	valid    bool
	lastTime float64
	lastPos  orbit.Point

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats holds counters for one cache.
type Stats struct {
	Hits   int64
	Misses int64
}

// New wraps o. The first query always misses.
func New(o orbit.Orbit, opts ...Option) *PositionCache {
	c := &PositionCache{orbit: o}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Position returns o.Position(t), evaluating the wrapped orbit only when t
// differs from the memoized time. NaN never matches, so NaN queries always
// evaluate.
func (c *PositionCache) Position(t float64) orbit.Point {
	if c.valid && c.matches(t) {
		c.hits.Add(1)
		if c.name != "" {
			metrics.IncCacheHits(c.name)
		}
		return c.lastPos
	}

	p := c.orbit.Position(t)
	c.lastTime = t
	c.lastPos = p
	c.valid = true

	c.misses.Add(1)
	if c.name != "" {
		metrics.IncCacheMisses(c.name)
		metrics.IncOrbitEvaluations(c.name)
	}
	return p
}

func (c *PositionCache) matches(t float64) bool {
	if t == c.lastTime {
		return true
	}
	return c.tolerance > 0 && math.Abs(t-c.lastTime) <= c.tolerance
}

// Period forwards to the wrapped orbit.
func (c *PositionCache) Period() float64 {
	return c.orbit.Period()
}

// BoundingRadius forwards to the wrapped orbit.
func (c *PositionCache) BoundingRadius() float64 {
	return c.orbit.BoundingRadius()
}

// Orbit returns the wrapped orbit.
func (c *PositionCache) Orbit() orbit.Orbit {
	return c.orbit
}

// Reset drops the memoized entry. Counters are kept.
func (c *PositionCache) Reset() {
	c.valid = false
	c.lastTime = 0
	c.lastPos = orbit.Point{}
}

// Stats returns the hit and miss counts so far.
func (c *PositionCache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// Locked serializes access to a PositionCache so one memo can be shared
// between goroutines.
type Locked struct {
	mu sync.Mutex
	c  *PositionCache
}

// NewLocked wraps c. c must not be used directly afterwards.
func NewLocked(c *PositionCache) *Locked {
	return &Locked{c: c}
}

// Position is PositionCache.Position under the lock.
func (l *Locked) Position(t float64) orbit.Point {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Position(t)
}

// Period forwards to the wrapped orbit. The metadata is immutable so no lock
// is taken.
func (l *Locked) Period() float64 {
	return l.c.Period()
}

// BoundingRadius forwards to the wrapped orbit.
func (l *Locked) BoundingRadius() float64 {
	return l.c.BoundingRadius()
}

// Stats returns the wrapped cache's counters.
func (l *Locked) Stats() Stats {
	return l.c.Stats()
}

// Reset drops the memoized entry.
func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Reset()
}
