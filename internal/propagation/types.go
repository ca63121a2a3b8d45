package propagation

import "github.com/anordal/celestia/internal/orbit"

// Snapshot holds the positions of many bodies at a single instant.
type Snapshot struct {
	JD     float64
	Bodies []BodyPosition
}

// BodyPosition is one body's position in a snapshot.
type BodyPosition struct {
	Name     string
	Position orbit.Point // km, engine frame
}

// Config holds propagation configuration loaded from environment variables.
type Config struct {
	Workers        int     // Worker pool size (default: runtime.NumCPU())
	CacheTolerance float64 // Position cache tolerance in days (default: 0, exact)
}
