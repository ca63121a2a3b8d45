// Package propagation evaluates catalog bodies at requested instants.
//
// Every body is read through its own position cache, so repeated requests
// for the same instant (a paused client, several clients on the same frame)
// reuse the memoized position instead of re-summing the series.
package propagation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/anordal/celestia/internal/cache"
	"github.com/anordal/celestia/internal/catalog"
	"github.com/anordal/celestia/internal/metrics"
	"github.com/anordal/celestia/internal/orbit"
)

// ErrUnknownBody is returned for names the catalog does not know.
var ErrUnknownBody = errors.New("unknown body")

// Propagator evaluates catalog bodies, one shared position cache per body.
type Propagator struct {
	catalog *catalog.Catalog
	pool    *WorkerPool
	config  Config
	logger  *slog.Logger

	mu     sync.Mutex
	caches map[string]*cache.Locked
}

// NewPropagator creates a new propagation orchestrator.
func NewPropagator(cat *catalog.Catalog, config Config, logger *slog.Logger) *Propagator {
	pool := NewWorkerPool(config.Workers, logger)
	metrics.SetPropagationWorkers(pool.Workers())
	return &Propagator{
		catalog: cat,
		pool:    pool,
		config:  config,
		logger:  logger,
		caches:  make(map[string]*cache.Locked),
	}
}

// Catalog returns the catalog the propagator reads from.
func (p *Propagator) Catalog() *catalog.Catalog {
	return p.catalog
}

// cached returns the shared cache for name, creating it on first use.
func (p *Propagator) cached(name string) (*cache.Locked, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.caches[name]; ok {
		return c, true
	}
	o, ok := p.catalog.Lookup(name)
	if !ok {
		return nil, false
	}
	c := cache.NewLocked(cache.New(o,
		cache.WithName(name),
		cache.WithTolerance(p.config.CacheTolerance),
	))
	p.caches[name] = c
	return c, true
}

// Position returns one body's position at jd.
func (p *Propagator) Position(name string, jd float64) (orbit.Point, error) {
	c, ok := p.cached(name)
	if !ok {
		return orbit.Point{}, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}
	return c.Position(jd), nil
}

// Snapshot evaluates the named bodies at jd using the worker pool. A nil or
// empty names slice selects every catalog body; repeated names are evaluated
// once. Bodies whose position is not
// finite are left out. The result is sorted by name.
func (p *Propagator) Snapshot(ctx context.Context, jd float64, names []string) (*Snapshot, error) {
	if len(names) == 0 {
		names = p.catalog.Names()
	}

	jobs := make([]evaluateJob, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		c, ok := p.cached(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBody, name)
		}
		jobs = append(jobs, evaluateJob{name: name, orbit: c})
	}

	p.logger.Debug("snapshot",
		"body_count", len(jobs),
		"jd", jd,
		"workers", p.pool.Workers(),
	)

	start := time.Now()
	positions, successCount, errorCount := p.pool.EvaluateBatch(ctx, jobs, jd)
	duration := time.Since(start)

	metrics.RecordSnapshot(duration, successCount, errorCount)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("snapshot complete",
		"success", successCount,
		"errors", errorCount,
		"duration_us", duration.Microseconds(),
	)

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Name < positions[j].Name
	})
	return &Snapshot{JD: jd, Bodies: positions}, nil
}

// Path samples one period of a body's orbit starting at start. The sweep
// reads the orbit directly and leaves the shared cache untouched.
func (p *Propagator) Path(ctx context.Context, name string, start float64, samples int) ([]orbit.Point, error) {
	o, ok := p.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}
	if samples < 1 {
		return nil, fmt.Errorf("samples must be positive, got %d", samples)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return orbit.SamplePath(o, start, samples), nil
}

// CacheStats returns the hit and miss counters of every cache created so far.
func (p *Propagator) CacheStats() map[string]cache.Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := make(map[string]cache.Stats, len(p.caches))
	for name, c := range p.caches {
		stats[name] = c.Stats()
	}
	return stats
}
