// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celestia_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "celestia_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	orbitEvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celestia_orbit_evaluations_total",
			Help: "Orbit position evaluations that reached the underlying model.",
		},
		[]string{"body"},
	)

	positionCacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celestia_position_cache_hits_total",
			Help: "Position queries answered from the memoized slot.",
		},
		[]string{"body"},
	)

	positionCacheMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celestia_position_cache_misses_total",
			Help: "Position queries that required an orbit evaluation.",
		},
		[]string{"body"},
	)

	snapshotDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "celestia_snapshot_duration_seconds",
			Help:    "Time to evaluate every requested body at one instant.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	snapshotBodiesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celestia_snapshot_bodies_total",
			Help: "Bodies evaluated by snapshots, by outcome.",
		},
		[]string{"result"},
	)

	propagationWorkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "celestia_propagation_workers",
			Help: "Size of the snapshot worker pool.",
		},
	)

	catalogBodies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "celestia_catalog_bodies",
			Help: "Number of bodies registered in the catalog.",
		},
	)

	streamsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "celestia_streams_active",
			Help: "Currently connected position streams.",
		},
	)

	streamConnectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celestia_stream_connections_total",
			Help: "Stream connect and disconnect events.",
		},
		[]string{"event"},
	)

	streamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "celestia_stream_errors_total",
			Help: "Stream errors by reason.",
		},
		[]string{"reason"},
	)

	streamMessagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "celestia_stream_messages_total",
			Help: "SSE data messages sent.",
		},
	)

	streamBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "celestia_stream_bytes_total",
			Help: "Bytes written to SSE clients.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpDurationSeconds,
		orbitEvaluationsTotal,
		positionCacheHitsTotal,
		positionCacheMissesTotal,
		snapshotDurationSeconds,
		snapshotBodiesTotal,
		propagationWorkers,
		catalogBodies,
		streamsActive,
		streamConnectionsTotal,
		streamErrorsTotal,
		streamMessagesTotal,
		streamBytesTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncOrbitEvaluations counts one evaluation of body's orbit model.
func IncOrbitEvaluations(body string) {
	orbitEvaluationsTotal.WithLabelValues(body).Inc()
}

// IncCacheHits counts a position cache hit for body.
func IncCacheHits(body string) {
	positionCacheHitsTotal.WithLabelValues(body).Inc()
}

// IncCacheMisses counts a position cache miss for body.
func IncCacheMisses(body string) {
	positionCacheMissesTotal.WithLabelValues(body).Inc()
}

// RecordSnapshot records one snapshot run.
func RecordSnapshot(d time.Duration, success, failed int) {
	snapshotDurationSeconds.Observe(d.Seconds())
	snapshotBodiesTotal.WithLabelValues("success").Add(float64(success))
	snapshotBodiesTotal.WithLabelValues("error").Add(float64(failed))
}

func SetPropagationWorkers(n int) {
	propagationWorkers.Set(float64(n))
}

func SetCatalogBodies(n int) {
	catalogBodies.Set(float64(n))
}

func IncStreamsActive() { streamsActive.Inc() }
func DecStreamsActive() { streamsActive.Dec() }

// IncStreamConnections counts a stream lifecycle event ("connect", "disconnect").
func IncStreamConnections(event string) {
	streamConnectionsTotal.WithLabelValues(event).Inc()
}

func IncStreamErrors(reason string) {
	streamErrorsTotal.WithLabelValues(reason).Inc()
}

func IncStreamMessages() { streamMessagesTotal.Inc() }

func AddStreamBytes(n int64) { streamBytesTotal.Add(float64(n)) }

// knownRoutes are reported with their literal path.
var knownRoutes = map[string]bool{
	"/":                        true,
	"/healthz":                 true,
	"/readyz":                  true,
	"/metrics":                 true,
	"/api/v1/bodies":           true,
	"/api/v1/snapshot":         true,
	"/api/v1/cache/stats":      true,
	"/api/v1/stream/positions": true,
}

// normalizeRoute maps a request path onto a bounded set of label values.
// Body names collapse into a placeholder and anything unrecognised becomes
// "other".
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	if rest, ok := strings.CutPrefix(path, "/api/v1/bodies/"); ok {
		name, action, found := strings.Cut(rest, "/")
		if found && name != "" && (action == "position" || action == "path") {
			return "/api/v1/bodies/{name}/" + action
		}
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush forwards to the wrapped writer so SSE handlers keep working behind
// the middleware.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
