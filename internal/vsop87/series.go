// Package vsop87 evaluates truncated VSOP87 trigonometric series.
//
// A body's heliocentric longitude, latitude and radius are each modelled as a
// polynomial in time whose coefficients are periodic series:
//
//	value(t) = Σ_k t^k · Σ_i A_i·cos(B_i + C_i·t)
//
// with t in Julian millennia from J2000.0. The coefficient tables are compiled
// in and never change after package initialization.
package vsop87

import "math"

const (
	// J2000 is the Julian day of the J2000.0 epoch.
	J2000 = 2451545.0

	// DaysPerMillennium converts a day count into the theory's time unit.
	DaysPerMillennium = 365250.0
)

// Term is one periodic addend A·cos(B + C·t).
type Term struct {
	A float64 // amplitude
	B float64 // phase, radians
	C float64 // frequency, radians per millennium
}

// Series is an ordered sum of terms.
type Series []Term

// Group holds one series per power of t; Group[k] is weighted by t^k.
type Group []Series

// Sum evaluates a series at t. The terms are added in stored order so the
// result is bit-for-bit reproducible. An empty series sums to exactly 0.
func Sum(s Series, t float64) float64 {
	if len(s) == 0 {
		return 0
	}

	var x float64
	for _, term := range s {
		x += term.A * math.Cos(term.B+term.C*t)
	}
	return x
}

// Eval evaluates the time polynomial of the group at t. Every coefficient is
// recomputed on each call.
func (g Group) Eval(t float64) float64 {
	var v float64
	T := 1.0
	for _, s := range g {
		v += Sum(s, t) * T
		T *= t
	}
	return v
}

// Terms returns the total number of terms across all powers.
func (g Group) Terms() int {
	var n int
	for _, s := range g {
		n += len(s)
	}
	return n
}

func (g Group) clone() Group {
	if g == nil {
		return nil
	}
	out := make(Group, len(g))
	for i, s := range g {
		out[i] = append(Series(nil), s...)
	}
	return out
}

// Theory is the complete set of series for one body: longitude and latitude
// in units of 1e-8 radians, radius in units of 1e-8 AU.
type Theory struct {
	longitude Group
	latitude  Group
	radius    Group
}

// NewTheory builds a theory from the three coordinate groups. The groups are
// copied; later changes to the arguments do not affect the theory. A nil or
// empty group is legal and contributes 0.
func NewTheory(longitude, latitude, radius Group) Theory {
	return Theory{
		longitude: longitude.clone(),
		latitude:  latitude.clone(),
		radius:    radius.clone(),
	}
}

// Eval returns the raw, unscaled longitude, latitude and radius at t.
func (th Theory) Eval(t float64) (l, b, r float64) {
	return th.longitude.Eval(t), th.latitude.Eval(t), th.radius.Eval(t)
}

// Terms returns the number of terms in each coordinate group.
func (th Theory) Terms() (l, b, r int) {
	return th.longitude.Terms(), th.latitude.Terms(), th.radius.Terms()
}

// MillenniaSinceJ2000 converts a Julian day into the theory's time argument.
func MillenniaSinceJ2000(jd float64) float64 {
	return (jd - J2000) / DaysPerMillennium
}
