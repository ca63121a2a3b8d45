package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/anordal/celestia/internal/auth"
	"github.com/anordal/celestia/internal/health"
	"github.com/anordal/celestia/internal/httputil"
	"github.com/anordal/celestia/internal/metrics"
	"github.com/anordal/celestia/internal/propagation"
	"github.com/anordal/celestia/internal/stream"
)

// Config holds HTTP server configuration.
type Config struct {
	Addr        string
	Auth        auth.Config
	TrustProxy  bool // Log the X-Forwarded-For client IP.
	PathSamples int  // Default sample count for the path endpoint.
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(cfg Config, logger *slog.Logger, prop *propagation.Propagator, streamHandler *stream.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           newHandler(cfg, logger, prop, streamHandler),
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// newHandler registers every route and builds the middleware chain:
// metrics -> logging -> auth -> mux.
func newHandler(cfg Config, logger *slog.Logger, prop *propagation.Propagator, streamHandler *stream.Handler) http.Handler {
	if cfg.PathSamples < minPathSamples || cfg.PathSamples > maxPathSamples {
		cfg.PathSamples = defaultPathSamples
	}
	cat := prop.Catalog()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz(func() bool { return cat.Len() > 0 }))
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("GET /api/v1/bodies", bodiesHandler(cat))
	mux.HandleFunc("GET /api/v1/bodies/{name}/position", positionHandler(logger, prop))
	mux.HandleFunc("GET /api/v1/bodies/{name}/path", pathHandler(logger, prop, cfg.PathSamples))
	mux.HandleFunc("GET /api/v1/snapshot", snapshotHandler(logger, prop))
	mux.HandleFunc("GET /api/v1/cache/stats", cacheStatsHandler(prop))
	if streamHandler != nil {
		mux.HandleFunc("GET /api/v1/stream/positions", streamHandler.HandlePositions)
	}

	var handler http.Handler = mux
	handler = auth.Middleware(cfg.Auth)(handler)
	handler = loggingMiddleware(logger, cfg.TrustProxy)(handler)
	handler = metrics.Middleware(handler)
	return handler
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

func loggingMiddleware(logger *slog.Logger, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", httputil.ClientIP(r, trustProxy),
			)
		})
	}
}
