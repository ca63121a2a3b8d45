// Package auth guards the API with static bearer tokens.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/anordal/celestia/internal/httputil"
)

// Config holds authentication configuration. Any token in Tokens is
// accepted, which lets a new token roll out before the old one is revoked.
type Config struct {
	Enabled bool
	Tokens  []string
}

// publicPaths are served without a token: probes, metrics and the body list.
var publicPaths = map[string]bool{
	"/healthz":       true,
	"/readyz":        true,
	"/metrics":       true,
	"/api/v1/bodies": true,
}

// ParseTokens splits a comma-separated token list, dropping blanks.
func ParseTokens(s string) []string {
	var tokens []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func (c Config) accepts(token string) bool {
	if token == "" {
		return false
	}
	var ok bool
	for _, want := range c.Tokens {
		// Compare against every token so timing does not reveal which matched.
		if subtle.ConstantTimeCompare([]byte(token), []byte(want)) == 1 {
			ok = true
		}
	}
	return ok
}

// Middleware enforces bearer-token auth on non-public paths when enabled.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled || publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || !cfg.accepts(token) {
				w.Header().Set("WWW-Authenticate", `Bearer realm="celestia"`)
				httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
