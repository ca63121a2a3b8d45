package orbit

// FixedOrbit is a body that never moves relative to its parent.
type FixedOrbit struct {
	p Point
}

// NewFixedOrbit returns an orbit that always reports p.
func NewFixedOrbit(p Point) *FixedOrbit {
	return &FixedOrbit{p: p}
}

// Position returns the fixed position regardless of jd.
func (o *FixedOrbit) Position(float64) Point {
	return o.p
}

// Period returns 1; a stationary body has no natural period.
func (o *FixedOrbit) Period() float64 {
	return 1
}

// BoundingRadius returns the distance of the position plus a 10% margin.
func (o *FixedOrbit) BoundingRadius() float64 {
	return o.p.Norm() * 1.1
}
