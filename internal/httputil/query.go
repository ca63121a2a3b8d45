package httputil

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/anordal/celestia/internal/transform"
)

// QueryJD reads the requested instant from the "jd" (Julian day) or "time"
// (RFC 3339) query parameter. With neither present it returns the Julian
// day of now.
func QueryJD(r *http.Request, now time.Time) (float64, error) {
	q := r.URL.Query()
	jdStr, timeStr := q.Get("jd"), q.Get("time")

	switch {
	case jdStr != "" && timeStr != "":
		return 0, errors.New("jd and time are mutually exclusive")
	case jdStr != "":
		jd, err := strconv.ParseFloat(jdStr, 64)
		if err != nil || math.IsNaN(jd) || math.IsInf(jd, 0) {
			return 0, fmt.Errorf("invalid jd parameter %q", jdStr)
		}
		return jd, nil
	case timeStr != "":
		t, err := time.Parse(time.RFC3339Nano, timeStr)
		if err != nil {
			return 0, fmt.Errorf("invalid time parameter %q, want RFC 3339", timeStr)
		}
		return transform.JulianDay(t), nil
	}
	return transform.JulianDay(now), nil
}

// QueryInt reads an integer query parameter bounded to [min, max], returning
// def when the parameter is absent.
func QueryInt(r *http.Request, name string, def, min, max int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min || n > max {
		return 0, fmt.Errorf("invalid %s parameter, must be %d-%d", name, min, max)
	}
	return n, nil
}

// QueryFrame reads the "frame" query parameter.
func QueryFrame(r *http.Request) (transform.Frame, error) {
	v := r.URL.Query().Get("frame")
	f, ok := transform.ParseFrame(v)
	if !ok {
		return "", fmt.Errorf("invalid frame parameter %q, must be engine, ecliptic or equatorial", v)
	}
	return f, nil
}
