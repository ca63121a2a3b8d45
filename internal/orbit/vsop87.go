package orbit

import (
	"math"

	"github.com/anordal/celestia/internal/transform"
	"github.com/anordal/celestia/internal/vsop87"
)

// VSOP87Orbit evaluates a heliocentric position from a truncated VSOP87
// theory.
type VSOP87Orbit struct {
	theory         vsop87.Theory
	period         float64
	boundingRadius float64
}

// NewVSOP87Orbit returns an orbit for theory. period is in days and
// boundingRadius in kilometres; both are reported verbatim and must be
// supplied by the caller as conservative constants of the theory.
func NewVSOP87Orbit(theory vsop87.Theory, period, boundingRadius float64) *VSOP87Orbit {
	return &VSOP87Orbit{
		theory:         theory,
		period:         period,
		boundingRadius: boundingRadius,
	}
}

// Period returns the nominal period in days.
func (o *VSOP87Orbit) Period() float64 {
	return o.period
}

// BoundingRadius returns the bound supplied at construction.
func (o *VSOP87Orbit) BoundingRadius() float64 {
	return o.boundingRadius
}

// Position returns the heliocentric position at jd.
func (o *VSOP87Orbit) Position(jd float64) Point {
	t := vsop87.MillenniaSinceJ2000(jd)

	// Spherical ecliptic coordinates.
	l, b, r := o.theory.Eval(t)

	// l and b are in units of 1e-8 radians, r in units of 1e-8 AU.
	l *= 1.0e-8
	b *= 1.0e-8
	r *= transform.KmPerAU / 1.0e8

	// Colatitude measured from +Y, longitude shifted onto the engine axes.
	b -= math.Pi / 2
	l += math.Pi

	return Point{
		X: math.Cos(l) * math.Sin(b) * r,
		Y: math.Cos(b) * r,
		Z: -math.Sin(l) * math.Sin(b) * r,
	}
}
