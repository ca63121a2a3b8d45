// Package catalog maps body names to orbits.
//
// Lookups of unknown names report "not found" instead of failing; callers
// decide how to fall back (another orbit model, or a fixed position).
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	lev "github.com/agnivade/levenshtein"
	"github.com/anordal/celestia/internal/metrics"
	"github.com/anordal/celestia/internal/orbit"
	"github.com/anordal/celestia/internal/vsop87"
)

// ErrDuplicate is returned when a name is registered twice.
var ErrDuplicate = errors.New("body already registered")

// builtin describes an analytic orbit compiled into the binary.
type builtin struct {
	theory         func() vsop87.Theory
	period         float64 // days
	boundingRadius float64 // km
}

var builtins = map[string]builtin{
	"vsop87-earth": {theory: vsop87.Earth, period: 365.25, boundingRadius: 160000000.0},
}

// Builtin returns the analytic orbit for a recognised name, or false.
func Builtin(name string) (orbit.Orbit, bool) {
	b, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return orbit.NewVSOP87Orbit(b.theory(), b.period, b.boundingRadius), true
}

// BuiltinNames returns the names Builtin recognises, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog is a concurrent-safe registry of named orbits. The built-in
// analytic orbits are registered on first use.
type Catalog struct {
	once   sync.Once
	mu     sync.RWMutex
	bodies map[string]orbit.Orbit
	logger *slog.Logger
}

// New returns an empty catalog.
func New(logger *slog.Logger) *Catalog {
	return &Catalog{
		bodies: make(map[string]orbit.Orbit),
		logger: logger,
	}
}

func (c *Catalog) init() {
	c.once.Do(func() {
		c.mu.Lock()
		for _, name := range BuiltinNames() {
			o, _ := Builtin(name)
			c.bodies[name] = o
		}
		n := len(c.bodies)
		c.mu.Unlock()

		metrics.SetCatalogBodies(n)
		c.logger.Debug("catalog built-ins registered", "count", len(builtins))
	})
}

// Lookup returns the orbit registered under name. Unknown names return
// (nil, false).
func (c *Catalog) Lookup(name string) (orbit.Orbit, bool) {
	c.init()

	c.mu.RLock()
	o, ok := c.bodies[name]
	c.mu.RUnlock()
	return o, ok
}

// Register adds o under name.
func (c *Catalog) Register(name string, o orbit.Orbit) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("body name is empty")
	}
	if o == nil {
		return fmt.Errorf("body %q: nil orbit", name)
	}
	c.init()

	c.mu.Lock()
	if _, ok := c.bodies[name]; ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	c.bodies[name] = o
	n := len(c.bodies)
	c.mu.Unlock()

	metrics.SetCatalogBodies(n)
	return nil
}

// Names returns all registered names, sorted.
func (c *Catalog) Names() []string {
	c.init()

	c.mu.RLock()
	names := make([]string, 0, len(c.bodies))
	for name := range c.bodies {
		names = append(names, name)
	}
	c.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered bodies.
func (c *Catalog) Len() int {
	c.init()

	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bodies)
}

// maxSuggestDistance bounds how far a misspelt name may be from a
// registered one before Suggest gives up.
const maxSuggestDistance = 3

// Suggest returns the registered name closest to name by edit distance, or
// "" when none is within a few edits. Ties resolve to the name that sorts
// first.
func (c *Catalog) Suggest(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range c.Names() {
		if d := lev.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
