package orbit

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/anordal/celestia/internal/tle"
	"github.com/anordal/celestia/internal/transform"
	"github.com/anordal/celestia/internal/vsop87"
)

const (
	earthPeriod = 365.25
	earthBound  = 160000000.0
)

func earthOrbit() *VSOP87Orbit {
	return NewVSOP87Orbit(vsop87.Earth(), earthPeriod, earthBound)
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestVSOP87Metadata(t *testing.T) {
	o := earthOrbit()
	if o.Period() != earthPeriod {
		t.Errorf("Period() = %v, want %v", o.Period(), earthPeriod)
	}
	if o.BoundingRadius() != earthBound {
		t.Errorf("BoundingRadius() = %v, want %v", o.BoundingRadius(), earthBound)
	}

	empty := NewVSOP87Orbit(vsop87.NewTheory(nil, nil, nil), 12.5, 7)
	if empty.Period() != 12.5 || empty.BoundingRadius() != 7 {
		t.Errorf("metadata = %v/%v, want 12.5/7", empty.Period(), empty.BoundingRadius())
	}
}

func TestVSOP87Deterministic(t *testing.T) {
	o := earthOrbit()
	for _, jd := range []float64{vsop87.J2000, 2460000.5, 2415020.0, 2488069.5} {
		if a, b := o.Position(jd), o.Position(jd); a != b {
			t.Errorf("Position(%v) not reproducible: %v != %v", jd, a, b)
		}
	}
}

func TestVSOP87Concurrent(t *testing.T) {
	o := earthOrbit()
	jd := 2460310.5
	want := o.Position(jd)

	var wg sync.WaitGroup
	errs := make(chan Point, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := o.Position(jd); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Position = %v, want %v", got, want)
	}
}

// TestVSOP87CoordinateMapping drives the orbit with hand-built single-term
// series and checks the spherical to engine-frame conversion.
func TestVSOP87CoordinateMapping(t *testing.T) {
	const scale = 1e8
	radius := vsop87.Group{{{A: scale}}} // 1 AU
	au := transform.KmPerAU

	tests := []struct {
		name    string
		lon     float64 // ecliptic longitude, radians
		lat     float64 // ecliptic latitude, radians
		x, y, z float64 // expected engine position / AU
	}{
		{"vernal equinox", 0, 0, 1, 0, 0},
		{"longitude 90", math.Pi / 2, 0, 0, 0, -1},
		{"longitude 180", math.Pi, 0, -1, 0, 0},
		{"north ecliptic pole", 0, math.Pi / 2, 0, 1, 0},
		{"south ecliptic pole", 0, -math.Pi / 2, 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lon, lat vsop87.Group
			if tt.lon != 0 {
				lon = vsop87.Group{{{A: tt.lon * scale}}}
			}
			if tt.lat != 0 {
				lat = vsop87.Group{{{A: tt.lat * scale}}}
			}
			o := NewVSOP87Orbit(vsop87.NewTheory(lon, lat, radius), 1, 1)
			p := o.Position(vsop87.J2000)

			const tol = 1e-6 // km
			if !near(p.X, tt.x*au, tol) || !near(p.Y, tt.y*au, tol) || !near(p.Z, tt.z*au, tol) {
				t.Errorf("Position = %+v, want (%v, %v, %v)", p, tt.x*au, tt.y*au, tt.z*au)
			}
		})
	}
}

func TestVSOP87MatchesEngineFrame(t *testing.T) {
	o := earthOrbit()
	jd := 2459945.5
	p := o.Position(jd)

	l, b, r := vsop87.Earth().Eval(vsop87.MillenniaSinceJ2000(jd))
	l *= 1e-8
	b *= 1e-8
	r *= transform.KmPerAU / 1e8
	x, y, z := transform.EngineFrame(
		r*math.Cos(b)*math.Cos(l),
		r*math.Cos(b)*math.Sin(l),
		r*math.Sin(b),
	)

	const tol = 1e-3 // km
	if !near(p.X, x, tol) || !near(p.Y, y, tol) || !near(p.Z, z, tol) {
		t.Errorf("Position = %+v, want (%v, %v, %v)", p, x, y, z)
	}
}

func TestVSOP87EmptyTheory(t *testing.T) {
	o := NewVSOP87Orbit(vsop87.NewTheory(nil, vsop87.Group{}, vsop87.Group{nil}), 1, 1)
	p := o.Position(2451000.5)
	if p.X != 0 || p.Y != 0 || p.Z != 0 {
		t.Errorf("Position with zero radius = %+v, want origin", p)
	}
}

func TestVSOP87EarthAtJ2000(t *testing.T) {
	p := earthOrbit().Position(vsop87.J2000)

	au := p.Norm() / transform.KmPerAU
	if !near(au, 0.98333, 1e-4) {
		t.Errorf("distance = %.5f AU, want ~0.98333", au)
	}
	if math.Abs(p.Y) > 1e-5*p.Norm() {
		t.Errorf("Y = %v km, want ~0 (Earth on the ecliptic)", p.Y)
	}
	lon := math.Atan2(-p.Z, p.X) * 180 / math.Pi
	if lon < 0 {
		lon += 360
	}
	if !near(lon, 100.38, 0.1) {
		t.Errorf("longitude = %.3f deg, want ~100.38", lon)
	}
	if p.Norm() > earthBound {
		t.Errorf("distance %v exceeds bounding radius %v", p.Norm(), earthBound)
	}
}

func TestVSOP87NaN(t *testing.T) {
	if p := earthOrbit().Position(math.NaN()); p.IsFinite() {
		t.Errorf("Position(NaN) = %+v, want non-finite", p)
	}
}

func TestEccentricAnomaly(t *testing.T) {
	for _, e := range []float64{0, 0.01, 0.3, 0.7, 0.9, 0.99} {
		for _, M := range []float64{0, 0.1, 1, math.Pi / 2, 3, math.Pi, 4.5, 6.2} {
			E := eccentricAnomaly(M, e)
			if got := E - e*math.Sin(E); !near(got, M, 1e-10) {
				t.Errorf("e=%v M=%v: E=%v gives M=%v", e, M, E, got)
			}
		}
	}

	// Negative and large angles are reduced into [0, 2π).
	if E := eccentricAnomaly(-math.Pi/2, 0); !near(E, 3*math.Pi/2, 1e-12) {
		t.Errorf("eccentricAnomaly(-π/2, 0) = %v, want 3π/2", E)
	}
	if E := eccentricAnomaly(5*math.Pi, 0); !near(E, math.Pi, 1e-12) {
		t.Errorf("eccentricAnomaly(5π, 0) = %v, want π", E)
	}
}

func TestEllipticalCircular(t *testing.T) {
	o, err := NewEllipticalOrbit(Elements{
		PericenterDistance: 7000,
		Period:             1,
		Epoch:              vsop87.J2000,
	})
	if err != nil {
		t.Fatalf("NewEllipticalOrbit: %v", err)
	}

	tests := []struct {
		dt      float64
		x, y, z float64
	}{
		{0, 7000, 0, 0},
		{0.25, 0, 0, -7000},
		{0.5, -7000, 0, 0},
		{0.75, 0, 0, 7000},
		{1, 7000, 0, 0},
	}
	for _, tt := range tests {
		p := o.Position(vsop87.J2000 + tt.dt)
		if !near(p.X, tt.x, 1e-6) || !near(p.Y, tt.y, 1e-6) || !near(p.Z, tt.z, 1e-6) {
			t.Errorf("dt=%v: Position = %+v, want (%v, %v, %v)", tt.dt, p, tt.x, tt.y, tt.z)
		}
	}

	if o.BoundingRadius() != 7000 {
		t.Errorf("BoundingRadius() = %v, want 7000", o.BoundingRadius())
	}
}

func TestEllipticalApsides(t *testing.T) {
	o, err := NewEllipticalOrbit(Elements{
		PericenterDistance: 1e6,
		Eccentricity:       0.5,
		Period:             10,
	})
	if err != nil {
		t.Fatalf("NewEllipticalOrbit: %v", err)
	}

	if r := o.Position(0).Norm(); !near(r, 1e6, 1e-3) {
		t.Errorf("pericentre distance = %v, want 1e6", r)
	}
	if r := o.Position(5).Norm(); !near(r, 3e6, 1e-3) {
		t.Errorf("apocentre distance = %v, want 3e6", r)
	}
	if o.BoundingRadius() != 3e6 {
		t.Errorf("BoundingRadius() = %v, want 3e6", o.BoundingRadius())
	}

	for _, p := range SamplePath(o, 0, 50) {
		if p.Norm() > o.BoundingRadius()*(1+1e-12) {
			t.Errorf("sample %+v outside bounding radius %v", p, o.BoundingRadius())
		}
	}
}

func TestEllipticalPolarOrbit(t *testing.T) {
	// Pericentre over the ecliptic north pole lands on the engine's +Y axis.
	o, err := NewEllipticalOrbit(Elements{
		PericenterDistance: 5000,
		Inclination:        math.Pi / 2,
		ArgOfPericenter:    math.Pi / 2,
		Period:             2,
	})
	if err != nil {
		t.Fatalf("NewEllipticalOrbit: %v", err)
	}
	p := o.Position(0)
	if !near(p.X, 0, 1e-9) || !near(p.Y, 5000, 1e-9) || !near(p.Z, 0, 1e-9) {
		t.Errorf("Position = %+v, want (0, 5000, 0)", p)
	}
}

func TestEllipticalInvalid(t *testing.T) {
	valid := Elements{PericenterDistance: 1, Eccentricity: 0.1, Period: 1}

	tests := []struct {
		name   string
		mutate func(*Elements)
	}{
		{"zero pericenter", func(e *Elements) { e.PericenterDistance = 0 }},
		{"negative eccentricity", func(e *Elements) { e.Eccentricity = -0.1 }},
		{"parabolic", func(e *Elements) { e.Eccentricity = 1 }},
		{"zero period", func(e *Elements) { e.Period = 0 }},
		{"NaN inclination", func(e *Elements) { e.Inclination = math.NaN() }},
		{"infinite epoch", func(e *Elements) { e.Epoch = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := valid
			tt.mutate(&el)
			if _, err := NewEllipticalOrbit(el); !errors.Is(err, ErrInvalidElements) {
				t.Errorf("err = %v, want ErrInvalidElements", err)
			}
		})
	}
}

func TestFixedOrbit(t *testing.T) {
	p := Point{X: 3, Y: 4, Z: 0}
	o := NewFixedOrbit(p)
	for _, jd := range []float64{0, vsop87.J2000, 1e9} {
		if got := o.Position(jd); got != p {
			t.Errorf("Position(%v) = %+v, want %+v", jd, got, p)
		}
	}
	if o.Period() != 1 {
		t.Errorf("Period() = %v, want 1", o.Period())
	}
	if !near(o.BoundingRadius(), 5.5, 1e-12) {
		t.Errorf("BoundingRadius() = %v, want 5.5", o.BoundingRadius())
	}
}

func TestSamplePath(t *testing.T) {
	o := NewFixedOrbit(Point{X: 1})
	if got := SamplePath(o, 0, 0); got != nil {
		t.Errorf("SamplePath(n=0) = %v, want nil", got)
	}
	if got := SamplePath(o, 0, -3); got != nil {
		t.Errorf("SamplePath(n=-3) = %v, want nil", got)
	}

	pts := SamplePath(earthOrbit(), vsop87.J2000, 4)
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	o2 := earthOrbit()
	for i, p := range pts {
		want := o2.Position(vsop87.J2000 + float64(i)*earthPeriod/4)
		if p != want {
			t.Errorf("sample %d = %+v, want %+v", i, p, want)
		}
	}
}

func TestPoint(t *testing.T) {
	p := Point{X: 1, Y: 2, Z: 2}
	if p.Norm() != 3 {
		t.Errorf("Norm() = %v, want 3", p.Norm())
	}
	if p.Array() != [3]float64{1, 2, 2} {
		t.Errorf("Array() = %v", p.Array())
	}
	if !p.IsFinite() {
		t.Error("finite point reported non-finite")
	}
	if (Point{Y: math.Inf(-1)}).IsFinite() || nanPoint.IsFinite() {
		t.Error("non-finite point reported finite")
	}
}

const (
	issLine1 = "1 25544U 98067A   24100.50000000  .00016717  00000-0  10270-3 0  9005"
	issLine2 = "2 25544  51.6400 100.0000 0001000   0.0000   0.0000 15.50000000    09"
)

func issElement() tle.Element {
	return tle.Element{
		CatalogNumber: 25544,
		Name:          "ISS (ZARYA)",
		Epoch:         time.Date(2024, 4, 9, 12, 0, 0, 0, time.UTC),
		Line1:         issLine1,
		Line2:         issLine2,
		MeanMotion:    15.5,
		Eccentricity:  0.0001,
	}
}

func TestSGP4Orbit(t *testing.T) {
	e := issElement()
	o, err := NewSGP4Orbit(e)
	if err != nil {
		t.Fatalf("NewSGP4Orbit: %v", err)
	}
	if o.CatalogNumber() != 25544 {
		t.Errorf("CatalogNumber() = %d, want 25544", o.CatalogNumber())
	}
	if !near(o.Period(), 1/15.5, 1e-15) {
		t.Errorf("Period() = %v days, want %v", o.Period(), 1/15.5)
	}

	jd := transform.JulianDay(e.Epoch)
	for _, dt := range []float64{0, 0.01, 0.5, 1} {
		p := o.Position(jd + dt)
		if !p.IsFinite() {
			t.Fatalf("dt=%v: non-finite position %+v", dt, p)
		}
		r := p.Norm()
		if r < 6500 || r > 7000 {
			t.Errorf("dt=%v: radius %.1f km outside LEO range", dt, r)
		}
		if r > o.BoundingRadius() {
			t.Errorf("dt=%v: radius %.1f exceeds bounding radius %.1f", dt, r, o.BoundingRadius())
		}
		// 51.64° inclination bounds the height above the equator.
		_, _, zEq := transform.EclipticToEquatorial(transform.FromEngineFrame(p.X, p.Y, p.Z))
		if math.Abs(zEq) > r*math.Sin(51.7*math.Pi/180) {
			t.Errorf("dt=%v: equatorial z = %.1f too large for inclination", dt, zEq)
		}
	}

	if p := o.Position(math.NaN()); p.IsFinite() {
		t.Errorf("Position(NaN) = %+v, want NaN point", p)
	}
}

// garble replaces the character at i with a letter.
func garble(line string, i int) string {
	return line[:i] + "X" + line[i+1:]
}

func TestSGP4OrbitFarFromEpoch(t *testing.T) {
	o, err := NewSGP4Orbit(issElement())
	if err != nil {
		t.Fatalf("NewSGP4Orbit: %v", err)
	}
	for _, jd := range []float64{0, 1e9} {
		if p := o.Position(jd); p.IsFinite() {
			t.Errorf("Position(%g) = %+v (radius %.3g km), want NaN point", jd, p, p.Norm())
		}
	}
}

func TestSGP4OrbitInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tle.Element)
	}{
		{"short line1", func(e *tle.Element) { e.Line1 = e.Line1[:60] }},
		{"swapped lines", func(e *tle.Element) { e.Line1, e.Line2 = e.Line2, e.Line1 }},
		{"zero mean motion", func(e *tle.Element) { e.MeanMotion = 0 }},
		{"hyperbolic", func(e *tle.Element) { e.Eccentricity = 1.2 }},
		{"epoch year", func(e *tle.Element) { e.Line1 = garble(e.Line1, 18) }},
		{"epoch day", func(e *tle.Element) { e.Line1 = garble(e.Line1, 25) }},
		{"mean motion derivative", func(e *tle.Element) { e.Line1 = garble(e.Line1, 36) }},
		{"mean motion second derivative", func(e *tle.Element) { e.Line1 = garble(e.Line1, 46) }},
		{"bstar", func(e *tle.Element) { e.Line1 = garble(e.Line1, 55) }},
		{"inclination", func(e *tle.Element) { e.Line2 = garble(e.Line2, 12) }},
		{"right ascension of node", func(e *tle.Element) { e.Line2 = garble(e.Line2, 21) }},
		{"eccentricity", func(e *tle.Element) { e.Line2 = garble(e.Line2, 28) }},
		{"argument of perigee", func(e *tle.Element) { e.Line2 = garble(e.Line2, 38) }},
		{"mean anomaly", func(e *tle.Element) { e.Line2 = garble(e.Line2, 47) }},
		{"mean motion", func(e *tle.Element) { e.Line2 = garble(e.Line2, 55) }},
		{"inclination with three spaces", func(e *tle.Element) {
			e.Line2 = e.Line2[:9] + "  " + e.Line2[11:]
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := issElement()
			tt.mutate(&e)
			if _, err := NewSGP4Orbit(e); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
