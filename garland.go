package garland

import "math/rand/v2"

// Mode selects the active global layout. Switching modes triggers exactly one
// layout pass over the pool; particles then drift toward the new targets over
// the following ticks.
type Mode uint8

const (
	ModeTree    Mode = iota // spiral cone formation with photo ring and star
	ModeScatter             // dispersed cloud on a spherical shell
	ModeFocus               // one photo staged front and center
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeScatter:
		return "scatter"
	case ModeFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// ParticleType governs which layout rule, smoothing rate, and secondary
// motion apply to a particle. Immutable after creation.
type ParticleType uint8

const (
	TypeNeedle ParticleType = iota // foliage strand on the tree cone
	TypeShape                      // ornament
	TypeDust                       // falling snow mote
	TypePhoto                      // framed photo plane
	TypeStar                       // the single crowning star

	numParticleTypes
)

// String returns the lowercase type name.
func (t ParticleType) String() string {
	switch t {
	case TypeNeedle:
		return "needle"
	case TypeShape:
		return "shape"
	case TypeDust:
		return "dust"
	case TypePhoto:
		return "photo"
	case TypeStar:
		return "star"
	default:
		return "unknown"
	}
}

// Vec3 is a 3D vector used for positions, velocities, and scales.
type Vec3 struct {
	X, Y, Z float64
}

// Euler is an XYZ rotation in radians.
type Euler struct {
	X, Y, Z float64
}

// Transform is a full particle placement: position, rotation, and scale.
type Transform struct {
	Position Vec3
	Rotation Euler
	Scale    Vec3
}

// HandSignal is one pose sample from an external hand tracker. X and Y are
// normalized to [0, 1] across the capture frame. The gesture flags are
// consumed by mode-selection logic upstream; the core reads only X and Y.
type HandSignal struct {
	X, Y  float64
	Pinch bool
	Fist  bool
	Open  bool
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Sample returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
