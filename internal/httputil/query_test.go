package httputil

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anordal/celestia/internal/transform"
)

func TestQueryJD(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		query   string
		want    float64
		wantErr bool
	}{
		{"", transform.JulianDay(now), false},
		{"?jd=2451545", 2451545, false},
		{"?jd=2460000.25", 2460000.25, false},
		{"?time=2000-01-01T12:00:00Z", 2451545, false},
		{"?jd=abc", 0, true},
		{"?jd=NaN", 0, true},
		{"?jd=Inf", 0, true},
		{"?time=yesterday", 0, true},
		{"?jd=2451545&time=2000-01-01T12:00:00Z", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := QueryJD(httptest.NewRequest("GET", "/x"+tt.query, nil), now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("jd = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?samples=50&bad=x&big=5000", nil)

	if n, err := QueryInt(r, "samples", 100, 2, 1000); err != nil || n != 50 {
		t.Errorf("samples = %d, %v; want 50", n, err)
	}
	if n, err := QueryInt(r, "absent", 100, 2, 1000); err != nil || n != 100 {
		t.Errorf("absent = %d, %v; want default 100", n, err)
	}
	if _, err := QueryInt(r, "bad", 100, 2, 1000); err == nil {
		t.Error("non-numeric: expected error")
	}
	if _, err := QueryInt(r, "big", 100, 2, 1000); err == nil {
		t.Error("out of range: expected error")
	}
}

func TestQueryFrame(t *testing.T) {
	if f, err := QueryFrame(httptest.NewRequest("GET", "/x", nil)); err != nil || f != transform.FrameEngine {
		t.Errorf("default frame = %q, %v", f, err)
	}
	if f, err := QueryFrame(httptest.NewRequest("GET", "/x?frame=equatorial", nil)); err != nil || f != transform.FrameEquatorial {
		t.Errorf("equatorial frame = %q, %v", f, err)
	}
	if _, err := QueryFrame(httptest.NewRequest("GET", "/x?frame=galactic", nil)); err == nil {
		t.Error("unknown frame: expected error")
	}
}
