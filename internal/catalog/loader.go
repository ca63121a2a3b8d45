package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anordal/celestia/internal/orbit"
	"github.com/anordal/celestia/internal/tle"
	"github.com/anordal/celestia/internal/transform"
	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog format.
//
//	bodies:
//	  - name: halley
//	    elliptical:
//	      pericenter_distance_km: 87661000
//	      eccentricity: 0.96714
//	      inclination_deg: 162.26
//	      ...
//	  - name: l2-marker
//	    fixed: {x_km: 151100000, y_km: 0, z_km: 0}
//	satellites:
//	  - tle_file: stations.tle
//	  - tle_url: https://celestrak.org/NORAD/elements/gp.php?GROUP=stations&FORMAT=tle
type File struct {
	Bodies     []BodyEntry       `yaml:"bodies"`
	Satellites []SatelliteSource `yaml:"satellites"`
}

// BodyEntry is one named body. Exactly one orbit kind must be set.
type BodyEntry struct {
	Name       string           `yaml:"name"`
	Elliptical *EllipticalEntry `yaml:"elliptical"`
	Fixed      *FixedEntry      `yaml:"fixed"`
}

// EllipticalEntry holds Kepler elements in user units.
type EllipticalEntry struct {
	PericenterDistance float64 `yaml:"pericenter_distance_km"`
	Eccentricity       float64 `yaml:"eccentricity"`
	Inclination        float64 `yaml:"inclination_deg"`
	AscendingNode      float64 `yaml:"ascending_node_deg"`
	ArgOfPericenter    float64 `yaml:"arg_of_pericenter_deg"`
	MeanAnomaly        float64 `yaml:"mean_anomaly_deg"`
	Epoch              float64 `yaml:"epoch_jd"` // defaults to J2000
	Period             float64 `yaml:"period_days"`
}

// FixedEntry is a stationary position in right-handed ecliptic kilometres.
type FixedEntry struct {
	X float64 `yaml:"x_km"`
	Y float64 `yaml:"y_km"`
	Z float64 `yaml:"z_km"`
}

// SatelliteSource names a TLE file or URL. Each satellite is registered as
// Prefix followed by its catalog number.
type SatelliteSource struct {
	File   string `yaml:"tle_file"`
	URL    string `yaml:"tle_url"`
	Prefix string `yaml:"prefix"` // default "norad-"
}

const defaultSatellitePrefix = "norad-"

// LoadFile reads a catalog file and registers its bodies into c. Malformed
// entries are logged and skipped. Relative TLE paths are resolved against
// the catalog file's directory. It returns the number of bodies registered.
func LoadFile(ctx context.Context, path string, c *Catalog, logger *slog.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading catalog file: %w", err)
	}
	return load(ctx, data, filepath.Dir(path), c, logger)
}

func load(ctx context.Context, data []byte, baseDir string, c *Catalog, logger *slog.Logger) (int, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("parsing catalog: %w", err)
	}

	var loaded int
	for i, entry := range f.Bodies {
		o, err := entry.build()
		if err != nil {
			logger.Warn("skipping catalog body", "index", i, "name", entry.Name, "error", err)
			continue
		}
		if err := c.Register(entry.Name, o); err != nil {
			logger.Warn("skipping catalog body", "index", i, "name", entry.Name, "error", err)
			continue
		}
		loaded++
	}

	for i, src := range f.Satellites {
		n, err := loadSatellites(ctx, src, baseDir, c, logger)
		if err != nil {
			logger.Warn("skipping satellite source", "index", i, "file", src.File, "url", src.URL, "error", err)
			continue
		}
		loaded += n
	}

	logger.Info("catalog loaded", "bodies", loaded, "total", c.Len())
	return loaded, nil
}

func (e BodyEntry) build() (orbit.Orbit, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, fmt.Errorf("missing name")
	}
	switch {
	case e.Elliptical != nil && e.Fixed != nil:
		return nil, fmt.Errorf("both elliptical and fixed set")
	case e.Elliptical != nil:
		return e.Elliptical.build()
	case e.Fixed != nil:
		x, y, z := transform.EngineFrame(e.Fixed.X, e.Fixed.Y, e.Fixed.Z)
		p := orbit.Point{X: x, Y: y, Z: z}
		if !p.IsFinite() {
			return nil, fmt.Errorf("fixed position is not finite")
		}
		return orbit.NewFixedOrbit(p), nil
	}
	return nil, fmt.Errorf("no orbit kind set")
}

func (e EllipticalEntry) build() (orbit.Orbit, error) {
	epoch := e.Epoch
	if epoch == 0 {
		epoch = transform.J2000
	}
	return orbit.NewEllipticalOrbit(orbit.Elements{
		PericenterDistance: e.PericenterDistance,
		Eccentricity:       e.Eccentricity,
		Inclination:        deg2rad(e.Inclination),
		AscendingNode:      deg2rad(e.AscendingNode),
		ArgOfPericenter:    deg2rad(e.ArgOfPericenter),
		MeanAnomaly:        deg2rad(e.MeanAnomaly),
		Epoch:              epoch,
		Period:             e.Period,
	})
}

func loadSatellites(ctx context.Context, src SatelliteSource, baseDir string, c *Catalog, logger *slog.Logger) (int, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case src.File != "" && src.URL != "":
		return 0, fmt.Errorf("both tle_file and tle_url set")
	case src.File != "":
		path := src.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err = os.ReadFile(path)
	case src.URL != "":
		data, err = tle.NewFetcher(src.URL, logger).Fetch(ctx)
	default:
		return 0, fmt.Errorf("no tle_file or tle_url set")
	}
	if err != nil {
		return 0, err
	}

	elements, err := tle.Parse(bytes.NewReader(data), logger)
	if err != nil {
		return 0, err
	}

	prefix := src.Prefix
	if prefix == "" {
		prefix = defaultSatellitePrefix
	}

	var n int
	for _, e := range elements {
		name := prefix + strconv.Itoa(e.CatalogNumber)
		o, err := orbit.NewSGP4Orbit(e)
		if err != nil {
			logger.Warn("skipping satellite", "name", name, "tle_name", e.Name, "error", err)
			continue
		}
		if err := c.Register(name, o); err != nil {
			logger.Warn("skipping satellite", "name", name, "tle_name", e.Name, "error", err)
			continue
		}
		n++
	}
	return n, nil
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
