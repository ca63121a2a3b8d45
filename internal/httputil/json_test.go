package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusNotFound, "unknown body")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "unknown body" {
		t.Errorf("error = %q, want %q", body["error"], "unknown body")
	}
}

func TestWriteJSONTagged(t *testing.T) {
	payload := map[string]float64{"jd": 2451545}

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	WriteJSONTagged(w, r, payload)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	etag := w.Header().Get("ETag")
	if len(etag) != 18 || etag[0] != '"' || etag[17] != '"' {
		t.Fatalf("ETag = %q, want quoted 16-digit hash", etag)
	}
	var got map[string]float64
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil || got["jd"] != 2451545 {
		t.Errorf("body = %v (%v)", got, err)
	}

	// Same payload, same tag.
	w2 := httptest.NewRecorder()
	WriteJSONTagged(w2, r, payload)
	if w2.Header().Get("ETag") != etag {
		t.Errorf("ETag changed for identical payload: %q vs %q", w2.Header().Get("ETag"), etag)
	}

	tests := []struct {
		name        string
		ifNoneMatch string
		want        int
	}{
		{"matching tag", etag, http.StatusNotModified},
		{"stale tag", `"0000000000000000"`, http.StatusOK},
		{"no tag", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tt.ifNoneMatch)
			}
			w := httptest.NewRecorder()
			WriteJSONTagged(w, req, payload)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusNotModified && w.Body.Len() != 0 {
				t.Errorf("304 carried a body: %q", w.Body.String())
			}
		})
	}
}
