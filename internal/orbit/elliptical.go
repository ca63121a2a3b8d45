package orbit

import (
	"fmt"
	"math"

	"github.com/anordal/celestia/internal/transform"
)

const twoPi = 2 * math.Pi

// Elements are classical two-body elements referred to the ecliptic.
type Elements struct {
	PericenterDistance float64 // km
	Eccentricity       float64 // 0 <= e < 1
	Inclination        float64 // radians
	AscendingNode      float64 // radians
	ArgOfPericenter    float64 // radians
	MeanAnomaly        float64 // radians at Epoch
	Epoch              float64 // Julian day
	Period             float64 // days
}

func (el Elements) validate() error {
	p := Point{X: el.PericenterDistance, Y: el.Eccentricity, Z: el.Period}
	q := Point{X: el.Inclination, Y: el.AscendingNode, Z: el.ArgOfPericenter}
	r := Point{X: el.MeanAnomaly, Y: el.Epoch}
	if !p.IsFinite() || !q.IsFinite() || !r.IsFinite() {
		return fmt.Errorf("%w: non-finite element", ErrInvalidElements)
	}
	if el.PericenterDistance <= 0 {
		return fmt.Errorf("%w: pericenter distance %g must be positive", ErrInvalidElements, el.PericenterDistance)
	}
	if el.Eccentricity < 0 || el.Eccentricity >= 1 {
		return fmt.Errorf("%w: eccentricity %g outside [0, 1)", ErrInvalidElements, el.Eccentricity)
	}
	if el.Period <= 0 {
		return fmt.Errorf("%w: period %g must be positive", ErrInvalidElements, el.Period)
	}
	return nil
}

// EllipticalOrbit is an unperturbed Kepler orbit.
type EllipticalOrbit struct {
	el         Elements
	a          float64 // semi-major axis, km
	b          float64 // semi-minor axis, km
	meanMotion float64 // rad/day

	// Rows of the orbital-plane to ecliptic rotation Rz(Ω)·Rx(i)·Rz(ω),
	// first two columns only since the plane has no third component.
	px, py, pz float64
	qx, qy, qz float64
}

// NewEllipticalOrbit validates el and precomputes the orbit's geometry.
func NewEllipticalOrbit(el Elements) (*EllipticalOrbit, error) {
	if err := el.validate(); err != nil {
		return nil, err
	}

	a := el.PericenterDistance / (1 - el.Eccentricity)
	o := &EllipticalOrbit{
		el:         el,
		a:          a,
		b:          a * math.Sqrt(1-el.Eccentricity*el.Eccentricity),
		meanMotion: twoPi / el.Period,
	}

	sinO, cosO := math.Sincos(el.AscendingNode)
	sinI, cosI := math.Sincos(el.Inclination)
	sinW, cosW := math.Sincos(el.ArgOfPericenter)

	o.px = cosO*cosW - sinO*sinW*cosI
	o.py = sinO*cosW + cosO*sinW*cosI
	o.pz = sinW * sinI
	o.qx = -cosO*sinW - sinO*cosW*cosI
	o.qy = -sinO*sinW + cosO*cosW*cosI
	o.qz = cosW * sinI

	return o, nil
}

// Period returns the orbital period in days.
func (o *EllipticalOrbit) Period() float64 {
	return o.el.Period
}

// BoundingRadius returns the apocentre distance.
func (o *EllipticalOrbit) BoundingRadius() float64 {
	return o.a * (1 + o.el.Eccentricity)
}

// Position returns the position relative to the central body at jd.
func (o *EllipticalOrbit) Position(jd float64) Point {
	M := o.el.MeanAnomaly + (jd-o.el.Epoch)*o.meanMotion
	E := eccentricAnomaly(M, o.el.Eccentricity)

	// Position in the orbital plane, pericentre on +x.
	sinE, cosE := math.Sincos(E)
	x := o.a * (cosE - o.el.Eccentricity)
	y := o.b * sinE

	ex := o.px*x + o.qx*y
	ey := o.py*x + o.qy*y
	ez := o.pz*x + o.qz*y

	X, Y, Z := transform.EngineFrame(ex, ey, ez)
	return Point{X: X, Y: Y, Z: Z}
}

// eccentricAnomaly solves Kepler's equation M = E - e·sin(E) by Newton
// iteration.
func eccentricAnomaly(M, e float64) float64 {
	M = normalizeAngle(M)
	if e == 0 {
		return M
	}

	E := M
	if e >= 0.8 {
		if M < math.Pi {
			E = M + e/2
		} else {
			E = M - e/2
		}
	}
	for i := 0; i < 50; i++ {
		delta := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return E
}

func normalizeAngle(angle float64) float64 {
	wrapped := math.Mod(angle, twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}
