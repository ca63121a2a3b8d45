package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anordal/celestia/internal/catalog"
	"github.com/anordal/celestia/internal/httputil"
	"github.com/anordal/celestia/internal/orbit"
	"github.com/anordal/celestia/internal/propagation"
	"github.com/anordal/celestia/internal/transform"
)

const (
	minPathSamples     = 2
	maxPathSamples     = 1000
	defaultPathSamples = 100
)

type bodyInfo struct {
	Name           string  `json:"name"`
	PeriodDays     float64 `json:"period_days"`
	BoundingRadius float64 `json:"bounding_radius_km"`
}

type positionResponse struct {
	Name     string     `json:"name"`
	JD       float64    `json:"jd"`
	T        string     `json:"t,omitempty"`
	Frame    string     `json:"frame"`
	Position [3]float64 `json:"position"`
	Distance float64    `json:"distance_km"`
}

type pathPoint struct {
	JD float64    `json:"jd"`
	P  [3]float64 `json:"p"`
}

type pathResponse struct {
	Name       string      `json:"name"`
	StartJD    float64     `json:"start_jd"`
	PeriodDays float64     `json:"period_days"`
	Frame      string      `json:"frame"`
	Samples    int         `json:"samples"`
	Points     []pathPoint `json:"points"`
}

type snapshotBody struct {
	Name string     `json:"name"`
	P    [3]float64 `json:"p"`
}

type snapshotResponse struct {
	JD     float64        `json:"jd"`
	T      string         `json:"t,omitempty"`
	Frame  string         `json:"frame"`
	Count  int            `json:"count"`
	Bodies []snapshotBody `json:"bodies"`
}

type cacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// timestamp formats jd as RFC 3339 when it falls inside the years
// time.Time can print.
func timestamp(jd float64) string {
	t := transform.TimeOf(jd)
	if t.Year() < 1 || t.Year() > 9999 {
		return ""
	}
	return t.Format(time.RFC3339)
}

// unknownBody answers 404, naming the closest registered body if any.
func unknownBody(w http.ResponseWriter, cat *catalog.Catalog, name string) {
	msg := fmt.Sprintf("unknown body %q", name)
	if s := cat.Suggest(name); s != "" {
		msg += fmt.Sprintf(", did you mean %q?", s)
	}
	httputil.WriteError(w, http.StatusNotFound, msg)
}

func inFrame(f transform.Frame, p orbit.Point) [3]float64 {
	x, y, z := transform.ToFrame(f, p.X, p.Y, p.Z)
	return [3]float64{x, y, z}
}

// bodiesHandler lists every catalog body with its static metadata.
// GET /api/v1/bodies
func bodiesHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := cat.Names()
		bodies := make([]bodyInfo, 0, len(names))
		for _, name := range names {
			o, ok := cat.Lookup(name)
			if !ok {
				continue
			}
			bodies = append(bodies, bodyInfo{
				Name:           name,
				PeriodDays:     o.Period(),
				BoundingRadius: o.BoundingRadius(),
			})
		}
		httputil.WriteJSONTagged(w, r, map[string]any{
			"count":  len(bodies),
			"bodies": bodies,
		})
	}
}

// positionHandler returns one body's position.
// GET /api/v1/bodies/{name}/position?jd=…|time=…&frame=engine
func positionHandler(logger *slog.Logger, prop *propagation.Propagator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		jd, err := httputil.QueryJD(r, time.Now())
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		frame, err := httputil.QueryFrame(r)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := prop.Position(name, jd)
		if errors.Is(err, propagation.ErrUnknownBody) {
			unknownBody(w, prop.Catalog(), name)
			return
		}
		if err != nil {
			logger.Error("position failed", "body", name, "jd", jd, "error", err)
			httputil.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !p.IsFinite() {
			httputil.WriteError(w, http.StatusUnprocessableEntity, "position undefined at the requested instant")
			return
		}

		httputil.WriteJSONTagged(w, r, positionResponse{
			Name:     name,
			JD:       jd,
			T:        timestamp(jd),
			Frame:    string(frame),
			Position: inFrame(frame, p),
			Distance: p.Norm(),
		})
	}
}

// pathHandler samples one orbital period of a body.
// GET /api/v1/bodies/{name}/path?samples=100&jd=…&frame=engine
func pathHandler(logger *slog.Logger, prop *propagation.Propagator, defaultSamples int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		samples, err := httputil.QueryInt(r, "samples", defaultSamples, minPathSamples, maxPathSamples)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		start, err := httputil.QueryJD(r, time.Now())
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		frame, err := httputil.QueryFrame(r)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		pts, err := prop.Path(r.Context(), name, start, samples)
		if errors.Is(err, propagation.ErrUnknownBody) {
			unknownBody(w, prop.Catalog(), name)
			return
		}
		if err != nil {
			logger.Warn("path failed", "body", name, "error", err)
			httputil.WriteError(w, http.StatusServiceUnavailable, "path sampling aborted")
			return
		}

		o, _ := prop.Catalog().Lookup(name)
		step := o.Period() / float64(samples)
		points := make([]pathPoint, 0, len(pts))
		for i, p := range pts {
			if !p.IsFinite() {
				continue
			}
			points = append(points, pathPoint{JD: start + float64(i)*step, P: inFrame(frame, p)})
		}

		httputil.WriteJSONTagged(w, r, pathResponse{
			Name:       name,
			StartJD:    start,
			PeriodDays: o.Period(),
			Frame:      string(frame),
			Samples:    samples,
			Points:     points,
		})
	}
}

// snapshotHandler evaluates many bodies at one instant.
// GET /api/v1/snapshot?jd=…&bodies=a,b&frame=engine
func snapshotHandler(logger *slog.Logger, prop *propagation.Propagator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jd, err := httputil.QueryJD(r, time.Now())
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		frame, err := httputil.QueryFrame(r)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		var names []string
		if v := r.URL.Query().Get("bodies"); v != "" {
			for _, name := range strings.Split(v, ",") {
				if name = strings.TrimSpace(name); name != "" {
					names = append(names, name)
				}
			}
		}

		snap, err := prop.Snapshot(r.Context(), jd, names)
		if errors.Is(err, propagation.ErrUnknownBody) {
			httputil.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			logger.Warn("snapshot failed", "jd", jd, "error", err)
			httputil.WriteError(w, http.StatusServiceUnavailable, "snapshot aborted")
			return
		}

		bodies := make([]snapshotBody, len(snap.Bodies))
		for i, b := range snap.Bodies {
			bodies[i] = snapshotBody{Name: b.Name, P: inFrame(frame, b.Position)}
		}
		httputil.WriteJSONTagged(w, r, snapshotResponse{
			JD:     snap.JD,
			T:      timestamp(snap.JD),
			Frame:  string(frame),
			Count:  len(bodies),
			Bodies: bodies,
		})
	}
}

// cacheStatsHandler reports the shared position caches' counters.
// GET /api/v1/cache/stats
func cacheStatsHandler(prop *propagation.Propagator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := prop.CacheStats()
		out := make(map[string]cacheStats, len(stats))
		for name, s := range stats {
			out[name] = cacheStats{Hits: s.Hits, Misses: s.Misses}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"caches": out})
	}
}
