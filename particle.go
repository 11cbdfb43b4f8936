package garland

import (
	"math"
	"math/rand/v2"
)

// Per-type randomization ranges. Twinkle rates are radians per second of
// elapsed choreography time; drift is world units (or radians, for tumbling)
// per tick.
var (
	twinkleRateRange = Range{1.2, 3.6}

	needleScaleRange = Range{0.6, 1.0}
	shapeScaleRange  = Range{0.8, 1.4}
	dustScaleRange   = Range{0.4, 0.8}

	dustFallRange = Range{-0.06, -0.02}
)

const (
	starBaseScale  = 2.2
	photoBaseScale = 1.0

	// spawnHalfExtent is the half-size of the cube new particles spawn in.
	spawnHalfExtent = 25.0

	// tumbleDrift bounds the per-axis drift used for tumbling rotation.
	tumbleDrift = 0.004

	// dustSway bounds horizontal drift for falling snow.
	dustSway = 0.01
)

// Particle is one animated visual element: a needle, ornament, snow mote,
// photo frame, or the star. The integrator moves Transform toward Target
// every tick; only layout passes (and dust recycling) write Target.
type Particle struct {
	// Type is immutable after creation and selects the layout rule,
	// smoothing rate, and secondary motion that apply.
	Type ParticleType

	// Transform is the current placement. Written only by the integrator.
	Transform Transform

	// Target is the placement the particle converges toward. Written only
	// by layout passes, except for dust drift between passes.
	Target Transform

	// TwinklePhase and TwinkleRate fix this particle's unique pulsing
	// oscillation (shapes, dust, and the star).
	TwinklePhase float64
	TwinkleRate  float64

	// Drift is the per-tick velocity used for falling snow (dust) and, in
	// scatter mode, tumbling rotation.
	Drift Vec3

	// BaseScale is the reference scale the twinkle envelope multiplies.
	BaseScale float64

	// Photo is the opaque decoded-image handle for photo particles, nil for
	// every other type. The demo renderer stores an *ebiten.Image here.
	Photo any
}

// newParticle builds a particle of the given type at a random spawn point
// inside the spawn cube, with Target equal to the spawn transform so it
// holds still until a layout pass claims it.
func newParticle(t ParticleType, base float64, rng *rand.Rand) *Particle {
	p := &Particle{
		Type:         t,
		TwinklePhase: rng.Float64() * 2 * math.Pi,
		TwinkleRate:  twinkleRateRange.Sample(rng),
		BaseScale:    base,
	}
	p.Transform = Transform{
		Position: cubePoint(rng, spawnHalfExtent),
		Rotation: Euler{
			X: rng.Float64() * 2 * math.Pi,
			Y: rng.Float64() * 2 * math.Pi,
			Z: rng.Float64() * 2 * math.Pi,
		},
		Scale: splat(base),
	}
	p.Target = p.Transform
	return p
}

// randomTumble returns a small random per-axis drift for tumbling rotation.
func randomTumble(rng *rand.Rand) Vec3 {
	return Vec3{
		X: (rng.Float64()*2 - 1) * tumbleDrift,
		Y: (rng.Float64()*2 - 1) * tumbleDrift,
		Z: (rng.Float64()*2 - 1) * tumbleDrift,
	}
}

// NewNeedle creates a foliage-strand particle.
func NewNeedle(rng *rand.Rand) *Particle {
	p := newParticle(TypeNeedle, needleScaleRange.Sample(rng), rng)
	p.Drift = randomTumble(rng)
	return p
}

// NewShape creates an ornament particle.
func NewShape(rng *rand.Rand) *Particle {
	p := newParticle(TypeShape, shapeScaleRange.Sample(rng), rng)
	p.Drift = randomTumble(rng)
	return p
}

// NewDust creates a snow-mote particle. Its drift points downward so the
// integrator can advance it as falling snow between layout passes.
func NewDust(rng *rand.Rand) *Particle {
	p := newParticle(TypeDust, dustScaleRange.Sample(rng), rng)
	p.Drift = Vec3{
		X: (rng.Float64()*2 - 1) * dustSway,
		Y: dustFallRange.Sample(rng),
		Z: (rng.Float64()*2 - 1) * dustSway,
	}
	return p
}

// NewStar creates the crowning star. A session has exactly one.
func NewStar(rng *rand.Rand) *Particle {
	p := newParticle(TypeStar, starBaseScale, rng)
	p.Drift = randomTumble(rng)
	return p
}

// NewPhoto creates a framed-photo particle carrying the given decoded-image
// handle. The spawn point is a uniformly random position in the spawn cube;
// the particle stays near it until the next layout pass assigns a real
// target.
func NewPhoto(photo any, rng *rand.Rand) *Particle {
	p := newParticle(TypePhoto, photoBaseScale, rng)
	p.Drift = randomTumble(rng)
	p.Photo = photo
	// Photos spawn upright; a random spin on a framed picture reads as a
	// glitch rather than ambience.
	p.Transform.Rotation = Euler{}
	p.Target = p.Transform
	return p
}
