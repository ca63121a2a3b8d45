package transform

import "math"

// ObliquityJ2000 is the mean obliquity of the ecliptic at J2000.0 in radians
// (IAU 2006, 84381.406 arcseconds).
const ObliquityJ2000 = 84381.406 / 3600 * math.Pi / 180

// Frame names a reference frame a position can be reported in.
type Frame string

const (
	FrameEngine     Frame = "engine"
	FrameEcliptic   Frame = "ecliptic"
	FrameEquatorial Frame = "equatorial"
)

// ParseFrame validates a frame name. The empty string selects FrameEngine.
func ParseFrame(s string) (Frame, bool) {
	switch Frame(s) {
	case "", FrameEngine:
		return FrameEngine, true
	case FrameEcliptic, FrameEquatorial:
		return Frame(s), true
	}
	return "", false
}

// EngineFrame maps a right-handed vector into the engine's Y-up frame.
func EngineFrame(x, y, z float64) (float64, float64, float64) {
	return x, z, -y
}

// FromEngineFrame is the inverse of EngineFrame.
func FromEngineFrame(x, y, z float64) (float64, float64, float64) {
	return x, -z, y
}

// EclipticToEquatorial rotates an ecliptic J2000 vector about the X axis into
// the mean equator and equinox of J2000.
func EclipticToEquatorial(x, y, z float64) (float64, float64, float64) {
	sinE, cosE := math.Sincos(ObliquityJ2000)
	return x, y*cosE - z*sinE, y*sinE + z*cosE
}

// EquatorialToEcliptic is the inverse of EclipticToEquatorial.
func EquatorialToEcliptic(x, y, z float64) (float64, float64, float64) {
	sinE, cosE := math.Sincos(ObliquityJ2000)
	return x, y*cosE + z*sinE, -y*sinE + z*cosE
}

// ToFrame converts an engine-frame position, whose reference plane is the
// ecliptic, into the requested frame.
func ToFrame(f Frame, x, y, z float64) (float64, float64, float64) {
	switch f {
	case FrameEcliptic:
		return FromEngineFrame(x, y, z)
	case FrameEquatorial:
		return EclipticToEquatorial(FromEngineFrame(x, y, z))
	}
	return x, y, z
}
