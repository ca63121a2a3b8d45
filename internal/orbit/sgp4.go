package orbit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/anordal/celestia/internal/tle"
	"github.com/anordal/celestia/internal/transform"
	satellite "github.com/joshuaferrara/go-satellite"
)

const (
	earthMu     = 398600.4418 // km³/s²
	minRadiusKm = 6200.0      // below this the satellite has decayed
)

// SGP4Orbit propagates an Earth satellite from its two-line elements.
//
// Propagate() takes Satellite by value so SGP4 error codes are not visible
// after initialisation. Failures are detected by checking the output for
// NaN/Inf and a radius outside [minRadiusKm, BoundingRadius], and reported
// as a NaN point.
type SGP4Orbit struct {
	sat            satellite.Satellite
	catalogNumber  int
	period         float64
	boundingRadius float64
}

// NewSGP4Orbit initialises SGP4 for e.
//
// The lines are validated before they reach go-satellite, which calls
// log.Fatal on malformed input.
func NewSGP4Orbit(e tle.Element) (*SGP4Orbit, error) {
	if err := validateTLELines(e.Line1, e.Line2); err != nil {
		return nil, fmt.Errorf("invalid TLE for catalog number %d: %w", e.CatalogNumber, err)
	}
	if e.MeanMotion <= 0 || e.Eccentricity < 0 || e.Eccentricity >= 1 {
		return nil, fmt.Errorf("%w: catalog number %d has mean motion %g, eccentricity %g",
			ErrInvalidElements, e.CatalogNumber, e.MeanMotion, e.Eccentricity)
	}

	sat := satellite.TLEToSat(strings.TrimSpace(e.Line1), strings.TrimSpace(e.Line2), satellite.GravityWGS84)
	if sat.Error != 0 {
		return nil, fmt.Errorf("sgp4 init failed for catalog number %d: code=%d %s", e.CatalogNumber, sat.Error, sat.ErrorStr)
	}

	// Semi-major axis from mean motion (Kepler's third law), n in rad/s.
	n := e.MeanMotion * 2 * math.Pi / 86400
	a := math.Cbrt(earthMu / (n * n))

	return &SGP4Orbit{
		sat:            sat,
		catalogNumber:  e.CatalogNumber,
		period:         e.PeriodDays(),
		boundingRadius: a * (1 + e.Eccentricity) * 1.1,
	}, nil
}

// validateTLELines performs basic format validation on TLE lines.
func validateTLELines(line1, line2 string) error {
	line1 = strings.TrimSpace(line1)
	line2 = strings.TrimSpace(line2)

	if len(line1) != 69 {
		return fmt.Errorf("line1 length %d, expected 69", len(line1))
	}
	if len(line2) != 69 {
		return fmt.Errorf("line2 length %d, expected 69", len(line2))
	}
	if line1[0] != '1' {
		return fmt.Errorf("line1 must start with '1', got '%c'", line1[0])
	}
	if line2[0] != '2' {
		return fmt.Errorf("line2 must start with '2', got '%c'", line2[0])
	}
	return checkTLEFields(line1, line2)
}

// checkTLEFields parses every numeric field TLEToSat reads, sliced and
// despaced the same way, so that a garbled field is an error here rather
// than a log.Fatal inside go-satellite. Lines must be 69 characters.
func checkTLEFields(line1, line2 string) error {
	despace := func(s string) string { return strings.Replace(s, " ", "", 2) }

	ints := []struct{ name, text string }{
		{"catalog number", strings.TrimSpace(line1[2:7])},
		{"epoch year", line1[18:20]},
	}
	for _, f := range ints {
		if _, err := strconv.ParseInt(f.text, 10, 0); err != nil {
			return fmt.Errorf("invalid %s %q", f.name, f.text)
		}
	}

	floats := []struct{ name, text string }{
		{"epoch day", line1[20:32]},
		{"mean motion derivative", despace(line1[33:43])},
		{"mean motion second derivative", despace(line1[44:45] + "." + line1[45:50] + "e" + line1[50:52])},
		{"bstar", despace(line1[53:54] + "." + line1[54:59] + "e" + line1[59:61])},
		{"inclination", despace(line2[8:16])},
		{"right ascension of node", despace(line2[17:25])},
		{"eccentricity", "." + line2[26:33]},
		{"argument of perigee", despace(line2[34:42])},
		{"mean anomaly", despace(line2[43:51])},
		{"mean motion", despace(line2[52:63])},
	}
	for _, f := range floats {
		if _, err := strconv.ParseFloat(f.text, 64); err != nil {
			return fmt.Errorf("invalid %s %q", f.name, f.text)
		}
	}
	return nil
}

// CatalogNumber returns the NORAD catalog number of the satellite.
func (o *SGP4Orbit) CatalogNumber() int {
	return o.catalogNumber
}

// Period returns the period implied by the mean motion, in days.
func (o *SGP4Orbit) Period() float64 {
	return o.period
}

// BoundingRadius returns the apogee radius with a 10% margin.
func (o *SGP4Orbit) BoundingRadius() float64 {
	return o.boundingRadius
}

// Position returns the geocentric position at jd. SGP4 is evaluated at whole
// seconds; jd is rounded to the nearest one.
func (o *SGP4Orbit) Position(jd float64) Point {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return nanPoint
	}

	t := transform.TimeOf(jd).Round(time.Second)
	pos, _ := satellite.Propagate(o.sat, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())

	p := Point{X: pos.X, Y: pos.Y, Z: pos.Z}
	if r := p.Norm(); !p.IsFinite() || r < minRadiusKm || r > o.boundingRadius {
		return nanPoint
	}

	// TEME is equatorial; engine positions are ecliptic based.
	x, y, z := transform.EngineFrame(transform.EquatorialToEcliptic(pos.X, pos.Y, pos.Z))
	return Point{X: x, Y: y, Z: z}
}
