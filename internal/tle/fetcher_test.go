package tle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var testLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

const (
	issTriplet      = "ISS (ZARYA)\n" + issLine1 + "\n" + issLine2 + "\n"
	starlinkTriplet = "STARLINK-1007\n" +
		"1 44713U 19074A   24100.50000000  .00001000  00000-0  10000-4 0  9995\n" +
		"2 44713  53.0000 200.0000 0001500  90.0000 270.0000 15.06000000    05" // no trailing newline
)

// tleServer serves fixed bodies by path; /fail answers 500 and /huge streams
// past the download limit.
func tleServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/iss", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("fetch sent no User-Agent")
		}
		io.WriteString(w, issTriplet)
	})
	mux.HandleFunc("/starlink", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, starlinkTriplet)
	})
	mux.HandleFunc("/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/huge", func(w http.ResponseWriter, r *http.Request) {
		chunk := strings.Repeat("A", 1<<20)
		for i := 0; i < (maxBodyBytes>>20)+2; i++ {
			if _, err := io.WriteString(w, chunk); err != nil {
				return
			}
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := tleServer(t)

	tests := []struct {
		name      string
		primary   string
		extras    []string
		wantIDs   []int
		wantError string
	}{
		{"primary only", "/iss", nil, []int{25544}, ""},
		{"extra appended after unterminated primary", "/starlink", []string{"/iss"}, []int{44713, 25544}, ""},
		{"failing extra is skipped", "/starlink", []string{"/fail", "/iss"}, []int{44713, 25544}, ""},
		{"failing primary", "/fail", []string{"/iss"}, nil, "unexpected status code 500"},
		{"oversized primary", "/huge", nil, nil, "byte limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extras := make([]string, len(tt.extras))
			for i, p := range tt.extras {
				extras[i] = srv.URL + p
			}
			f := NewFetcher(srv.URL+tt.primary, testLogger, extras...)
			if f.SourceURL() != srv.URL+tt.primary {
				t.Errorf("SourceURL() = %q", f.SourceURL())
			}

			data, err := f.Fetch(context.Background())
			if tt.wantError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantError) {
					t.Fatalf("error = %v, want one containing %q", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}

			elements, err := Parse(strings.NewReader(string(data)), testLogger)
			if err != nil {
				t.Fatal(err)
			}
			if len(elements) != len(tt.wantIDs) {
				t.Fatalf("parsed %d elements, want %d", len(elements), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if elements[i].CatalogNumber != id {
					t.Errorf("elements[%d] = %d, want %d", i, elements[i].CatalogNumber, id)
				}
			}
		})
	}
}

func TestFetchCancelled(t *testing.T) {
	srv := tleServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher(srv.URL+"/iss", testLogger).Fetch(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
