// Package orbit defines the position capability shared by every orbit model
// and its implementations: the analytic VSOP87 series orbit, two-body
// elliptical orbits, SGP4 satellites and fixed positions.
//
// All positions are Cartesian kilometres in the engine's Y-up frame (see
// package transform). Times are Julian days.
package orbit

import (
	"errors"
	"math"
)

// ErrInvalidElements is returned when orbital elements cannot describe a
// bound orbit.
var ErrInvalidElements = errors.New("invalid orbital elements")

// Orbit produces a body's position at an instant and reports static metadata.
//
// Implementations in this package are immutable after construction and safe
// for concurrent use.
type Orbit interface {
	// Position returns the position at Julian day jd.
	Position(jd float64) Point
	// Period returns the nominal orbital period in days.
	Period() float64
	// BoundingRadius returns a conservative upper bound on the distance from
	// the central body, in kilometres.
	BoundingRadius() float64
}

// Point is a position in kilometres.
type Point struct {
	X, Y, Z float64
}

// Norm returns the distance from the origin.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// IsFinite reports whether no component is NaN or infinite.
func (p Point) IsFinite() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Array returns the components as an array, the shape used by JSON payloads.
func (p Point) Array() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

var nanPoint = Point{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}

// SamplePath returns n positions evenly spaced over one period of o,
// starting at jd. It returns nil when n < 1.
func SamplePath(o Orbit, jd float64, n int) []Point {
	if n < 1 {
		return nil
	}
	step := o.Period() / float64(n)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = o.Position(jd + float64(i)*step)
	}
	return pts
}
