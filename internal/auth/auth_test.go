package auth

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	enabled := Middleware(Config{Enabled: true, Tokens: []string{"s3cret", "n3xt"}})(ok)
	disabled := Middleware(Config{})(ok)
	noTokens := Middleware(Config{Enabled: true})(ok)

	tests := []struct {
		name    string
		handler http.Handler
		path    string
		header  string
		want    int
	}{
		{"disabled passes everything", disabled, "/api/v1/snapshot", "", http.StatusOK},
		{"public healthz", enabled, "/healthz", "", http.StatusOK},
		{"public metrics", enabled, "/metrics", "", http.StatusOK},
		{"public body list", enabled, "/api/v1/bodies", "", http.StatusOK},
		{"missing header", enabled, "/api/v1/snapshot", "", http.StatusUnauthorized},
		{"wrong scheme", enabled, "/api/v1/snapshot", "Basic s3cret", http.StatusUnauthorized},
		{"empty token", enabled, "/api/v1/snapshot", "Bearer ", http.StatusUnauthorized},
		{"wrong token", enabled, "/api/v1/snapshot", "Bearer nope", http.StatusUnauthorized},
		{"token prefix only", enabled, "/api/v1/snapshot", "Bearer s3c", http.StatusUnauthorized},
		{"body position needs token", enabled, "/api/v1/bodies/vsop87-earth/position", "", http.StatusUnauthorized},
		{"first token", enabled, "/api/v1/bodies/vsop87-earth/position", "Bearer s3cret", http.StatusOK},
		{"rotated token", enabled, "/api/v1/stream/positions", "Bearer n3xt", http.StatusOK},
		{"enabled without tokens rejects all", noTokens, "/api/v1/snapshot", "Bearer ", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			tt.handler.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			challenge := w.Header().Get("WWW-Authenticate")
			if tt.want == http.StatusUnauthorized && challenge == "" {
				t.Error("401 without WWW-Authenticate challenge")
			}
		})
	}
}

func TestParseTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"abc", []string{"abc"}},
		{" abc , def ,, ", []string{"abc", "def"}},
	}
	for _, tt := range tests {
		if got := ParseTokens(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTokens(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
