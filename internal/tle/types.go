package tle

import "time"

// Element is one satellite's two-line element set together with the
// fields the rest of the service reads without running SGP4.
type Element struct {
	CatalogNumber int
	Name          string
	Epoch         time.Time
	Line1         string
	Line2         string

	MeanMotion   float64 // revolutions per day
	Eccentricity float64
}

// PeriodDays returns the nominal orbital period implied by the mean motion.
func (e Element) PeriodDays() float64 {
	if e.MeanMotion <= 0 {
		return 0
	}
	return 1 / e.MeanMotion
}
