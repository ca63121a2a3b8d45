// Package stream implements Server-Sent Events (SSE) streaming of body
// positions driven by a per-connection simulation clock. Clients connect via
// GET /api/v1/stream/positions and receive a position frame every step.
//
// SSE message format:
//
//	data: {"type":"positions","jd":2460000.5,"t":"2023-02-25T00:00:00Z","frame":"engine","bodies":[...]}\n\n
//
// First message is always metadata:
//
//	data: {"type":"metadata","start_jd":2460000.5,"rate":1,"paused":false,...}\n\n
//
// Keep-alive comments (:\n\n) are sent every KeepaliveInterval to prevent timeout.
//
// Each connection owns one position cache per streamed body. A paused clock
// re-queries the same instant every step and is served from the cache.
package stream

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anordal/celestia/internal/cache"
	"github.com/anordal/celestia/internal/catalog"
	"github.com/anordal/celestia/internal/httputil"
	"github.com/anordal/celestia/internal/metrics"
	"github.com/anordal/celestia/internal/transform"
)

const (
	maxStreamBodies = 100
	maxRate         = 36525.0 // simulated days per second
)

// Config holds streaming configuration loaded from environment variables.
type Config struct {
	MaxConcurrentPerIP int           // Max concurrent streams per IP (default: 10).
	MaxConcurrent      int           // Max concurrent streams overall (default: 1000).
	KeepaliveInterval  time.Duration // Keep-alive ping interval (default: 30s).
	TrustProxy         bool          // Take the client IP from X-Forwarded-For.
	CacheTolerance     float64       // Position cache tolerance in days (default: 0).
}

// Handler manages SSE streaming connections.
type Handler struct {
	catalog *catalog.Catalog
	config  Config
	limiter *streamLimiter
	logger  *slog.Logger
	now     func() time.Time
}

// NewHandler creates a new streaming handler.
func NewHandler(cat *catalog.Catalog, config Config, logger *slog.Logger) *Handler {
	if config.KeepaliveInterval <= 0 {
		config.KeepaliveInterval = 30 * time.Second
	}
	if config.MaxConcurrentPerIP <= 0 {
		config.MaxConcurrentPerIP = 10
	}
	return &Handler{
		catalog: cat,
		config:  config,
		limiter: newStreamLimiter(config.MaxConcurrentPerIP, config.MaxConcurrent),
		logger:  logger,
		now:     time.Now,
	}
}

// streamBody is one streamed body and its connection-local cache.
type streamBody struct {
	name  string
	cache *cache.PositionCache
}

// streamParams are the validated query parameters of one connection.
type streamParams struct {
	bodies []string
	start  float64
	rate   float64 // simulated days per wall-clock second
	paused bool
	step   int // seconds
	frame  transform.Frame
}

func (h *Handler) parseParams(r *http.Request) (streamParams, error) {
	p := streamParams{rate: 1.0 / 86400}
	q := r.URL.Query()

	var err error
	if p.start, err = httputil.QueryJD(r, h.now()); err != nil {
		return p, err
	}
	if p.step, err = httputil.QueryInt(r, "step", 1, 1, 60); err != nil {
		return p, err
	}
	if p.frame, err = httputil.QueryFrame(r); err != nil {
		return p, err
	}

	if v := q.Get("rate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(rate) || math.Abs(rate) > maxRate {
			return p, fmt.Errorf("invalid rate parameter, must be within ±%g days per second", maxRate)
		}
		p.rate = rate
	}

	if v := q.Get("paused"); v != "" {
		paused, err := strconv.ParseBool(v)
		if err != nil {
			return p, errors.New("invalid paused parameter, must be a boolean")
		}
		p.paused = paused
	}

	if v := q.Get("bodies"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				p.bodies = append(p.bodies, name)
			}
		}
	} else {
		p.bodies = h.catalog.Names()
	}
	if len(p.bodies) == 0 {
		return p, errors.New("no bodies to stream")
	}
	if len(p.bodies) > maxStreamBodies {
		return p, fmt.Errorf("too many bodies, at most %d per stream", maxStreamBodies)
	}

	return p, nil
}

// HandlePositions serves the SSE position stream.
// GET /api/v1/stream/positions?bodies=a,b&jd=…&rate=…&step=1&paused=false&frame=engine
func (h *Handler) HandlePositions(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseParams(r)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	bodies := make([]streamBody, 0, len(params.bodies))
	for _, name := range params.bodies {
		o, ok := h.catalog.Lookup(name)
		if !ok {
			msg := fmt.Sprintf("unknown body %q", name)
			if s := h.catalog.Suggest(name); s != "" {
				msg += fmt.Sprintf(", did you mean %q?", s)
			}
			httputil.WriteError(w, http.StatusNotFound, msg)
			return
		}
		bodies = append(bodies, streamBody{
			name:  name,
			cache: cache.New(o, cache.WithName(name), cache.WithTolerance(h.config.CacheTolerance)),
		})
	}

	// Rate limiting: enforce concurrent stream limit per IP.
	ip := httputil.ClientIP(r, h.config.TrustProxy)
	release, ok := h.limiter.acquire(ip)
	if !ok {
		metrics.IncStreamErrors("rate_limit")
		h.logger.Warn("stream rate limit exceeded",
			"remote_ip", ip,
			"current_count", h.limiter.count(ip),
		)
		w.Header().Set("Retry-After", "30")
		httputil.WriteError(w, http.StatusTooManyRequests, "too many concurrent streams")
		return
	}

	metrics.IncStreamConnections("connect")
	metrics.IncStreamsActive()

	startTime := time.Now()
	h.logger.Info("stream connected",
		"remote_ip", ip,
		"user_agent", r.Header.Get("User-Agent"),
		"bodies", len(bodies),
		"start_jd", params.start,
		"rate", params.rate,
		"paused", params.paused,
	)

	defer func() {
		release()
		metrics.IncStreamConnections("disconnect")
		metrics.DecStreamsActive()

		var hits, misses int64
		for _, b := range bodies {
			s := b.cache.Stats()
			hits += s.Hits
			misses += s.Misses
		}
		h.logger.Info("stream disconnected",
			"remote_ip", ip,
			"duration_seconds", int(time.Since(startTime).Seconds()),
			"cache_hits", hits,
			"cache_misses", misses,
		)
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		httputil.WriteError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering.
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Clear the server's WriteTimeout for this connection; the client
	// extends the deadline before every write.
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Debug("could not clear write deadline", "error", err)
	}

	c := &client{
		w:       w,
		flusher: flusher,
		rc:      rc,
		ip:      ip,
		logger:  h.logger,
	}

	// Jittered retry interval (3-7s) spreads reconnects after a restart.
	if err := c.sendRetry(time.Duration(3000+rand.Intn(4000)) * time.Millisecond); err != nil {
		metrics.IncStreamErrors("send_error")
		return
	}

	names := make([]string, len(bodies))
	for i, b := range bodies {
		names[i] = b.name
	}
	clock := NewClock(params.start, params.rate, params.paused)
	meta := metadataMessage{
		Type:    "metadata",
		StartJD: clock.Now(),
		Rate:    params.rate,
		Paused:  clock.Paused(),
		Step:    params.step,
		Frame:   string(params.frame),
		Bodies:  names,
	}
	if err := c.sendJSON(meta); err != nil {
		metrics.IncStreamErrors("send_error")
		h.logger.Warn("stream send error (metadata)", "remote_ip", ip, "error", err)
		return
	}

	stepDuration := time.Duration(params.step) * time.Second

	// First frame goes out immediately.
	if err := c.sendJSON(buildPositionsMessage(clock.Now(), params.frame, bodies)); err != nil {
		metrics.IncStreamErrors("send_error")
		h.logger.Warn("stream send error", "remote_ip", ip, "error", err)
		return
	}

	ticker := time.NewTicker(stepDuration)
	defer ticker.Stop()

	keepaliveTicker := time.NewTicker(h.config.KeepaliveInterval)
	defer keepaliveTicker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			jd := clock.Advance(stepDuration)
			if err := c.sendJSON(buildPositionsMessage(jd, params.frame, bodies)); err != nil {
				metrics.IncStreamErrors("send_error")
				h.logger.Warn("stream send error", "remote_ip", ip, "error", err)
				return
			}

			// Reset keepalive since we just sent data.
			keepaliveTicker.Reset(h.config.KeepaliveInterval)

		case <-keepaliveTicker.C:
			if err := c.sendKeepalive(); err != nil {
				metrics.IncStreamErrors("send_error")
				h.logger.Warn("stream keepalive error", "remote_ip", ip, "error", err)
				return
			}
		}
	}
}

// buildPositionsMessage evaluates every body at jd through its cache.
// Bodies without a finite position are left out of the frame.
func buildPositionsMessage(jd float64, frame transform.Frame, bodies []streamBody) positionsMessage {
	payload := make([]bodyPayload, 0, len(bodies))
	for _, b := range bodies {
		p := b.cache.Position(jd)
		if !p.IsFinite() {
			metrics.IncStreamErrors("non_finite")
			continue
		}
		x, y, z := transform.ToFrame(frame, p.X, p.Y, p.Z)
		payload = append(payload, bodyPayload{Name: b.name, P: [3]float64{x, y, z}})
	}

	msg := positionsMessage{
		Type:   "positions",
		JD:     jd,
		Frame:  string(frame),
		Bodies: payload,
	}
	if t := transform.TimeOf(jd); t.Year() > 0 && t.Year() < 10000 {
		msg.T = t.Format(time.RFC3339)
	}
	return msg
}

// SSE message payload types.

type metadataMessage struct {
	Type    string   `json:"type"`
	StartJD float64  `json:"start_jd"`
	Rate    float64  `json:"rate"` // simulated days per second
	Paused  bool     `json:"paused"`
	Step    int      `json:"step"` // seconds between frames
	Frame   string   `json:"frame"`
	Bodies  []string `json:"bodies"`
}

type positionsMessage struct {
	Type   string        `json:"type"`
	JD     float64       `json:"jd"`
	T      string        `json:"t,omitempty"`
	Frame  string        `json:"frame"`
	Bodies []bodyPayload `json:"bodies"`
}

type bodyPayload struct {
	Name string     `json:"name"`
	P    [3]float64 `json:"p"`
}
