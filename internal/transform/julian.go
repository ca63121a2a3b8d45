// Package transform provides the time-scale and reference-frame conversions
// used between the orbit engine and its callers.
//
// Engine frame: positions are Cartesian kilometres in a Y-up frame. A
// right-handed ecliptic (or equatorial) vector (x, y, z) appears in the engine
// frame as (x, z, -y), so the reference plane is the engine's XZ plane and its
// pole is +Y.
package transform

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the Julian day of the J2000.0 epoch (January 1, 2000, 12:00:00 TT).
const J2000 = 2451545.0

// KmPerAU is the IAU 2012 astronomical unit in kilometres.
const KmPerAU = 149597870.7

// JulianDay converts a time.Time to a Julian day. The time is taken in UTC;
// the difference to TT is ignored.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// TimeOf converts a Julian day back to a UTC time.Time.
func TimeOf(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}
