package garland

import (
	"math"
	"math/rand/v2"
)

// Tree formation constants. Needles wind 25 full turns up a cone that is
// wide at the base and pinches to the apex; ornaments wind a looser spiral
// on a slightly larger cone, phase-shifted so they never sit exactly on a
// needle.
const (
	treeNeedleRadius = 9.0
	treeShapeRadius  = 9.5
	treeConeExponent = 1.3
	treeNeedleSweep  = 50 * math.Pi
	treeShapeSweep   = 35 * math.Pi
	treeHeightSpan   = 28.0
	treeBaseHeight   = -12.0

	photoRingScale = 0.6
)

// starApex is the exact tree-mode target of the star.
var starApex = Vec3{X: 0, Y: 16.5, Z: 0}

// Scatter and focus staging constants.
var scatterRadius = Range{10, 35}

const (
	focusHeight    = 3.0
	backPlaneZ     = -40.0
	backPlaneSpanX = 20.0
	backPlaneSpanY = 12.0
	starRetreatY   = 26.0
	starRetreatZ   = -50.0
)

// photoRingRadius returns the tree-mode photo ring radius for the display class.
func photoRingRadius(constrained bool) float64 {
	if constrained {
		return 12
	}
	return 16
}

// focusDepth returns the focused photo's camera-facing depth for the display class.
func focusDepth(constrained bool) float64 {
	if constrained {
		return 30
	}
	return 35
}

// focusScale returns the focused photo's enlargement for the display class.
func focusScale(constrained bool) float64 {
	if constrained {
		return 3.5
	}
	return 5.5
}

// ComputeTargets runs one layout pass: it assigns a new Target to every
// particle governed by mode. Current transforms are never touched; the
// integrator carries particles to the new targets over the following ticks.
//
// Tree placement is fully deterministic given pool order. Scatter and the
// focus photo selection draw from rng, so callers that need reproducible
// passes inject a seeded source.
func ComputeTargets(mode Mode, pool *Pool, constrained bool, rng *rand.Rand) {
	switch mode {
	case ModeTree:
		layoutTree(pool, constrained)
	case ModeScatter:
		layoutScatter(pool, rng)
	case ModeFocus:
		layoutFocus(pool, constrained, rng)
	}
}

// conePoint places fractional index t on a spiral cone: wide at the base,
// pinched at the apex.
func conePoint(t, radiusCoeff, sweep, phase float64) Vec3 {
	r := radiusCoeff * math.Pow(1-t, treeConeExponent)
	a := t*sweep + phase
	return Vec3{
		X: r * math.Cos(a),
		Y: t*treeHeightSpan + treeBaseHeight,
		Z: r * math.Sin(a),
	}
}

func layoutTree(pool *Pool, constrained bool) {
	needles := pool.ByType(TypeNeedle)
	for i, p := range needles {
		t := float64(i) / float64(len(needles))
		p.Target.Position = conePoint(t, treeNeedleRadius, treeNeedleSweep, 0)
		p.Target.Rotation = Euler{}
		p.Target.Scale = splat(p.BaseScale)
	}

	shapes := pool.ByType(TypeShape)
	for i, p := range shapes {
		t := float64(i) / float64(len(shapes))
		p.Target.Position = conePoint(t, treeShapeRadius, treeShapeSweep, math.Pi)
		p.Target.Rotation = Euler{}
		p.Target.Scale = splat(p.BaseScale)
	}

	photos := pool.ByType(TypePhoto)
	ring := photoRingRadius(constrained)
	for i, p := range photos {
		a := 2 * math.Pi * float64(i) / float64(len(photos))
		p.Target.Position = Vec3{X: ring * math.Cos(a), Y: 0, Z: ring * math.Sin(a)}
		// Face inward, toward the tree axis.
		p.Target.Rotation = Euler{Y: a + math.Pi}
		p.Target.Scale = splat(photoRingScale * p.BaseScale)
	}

	if star := pool.Star(); star != nil {
		star.Target.Position = starApex
		star.Target.Rotation = Euler{}
		star.Target.Scale = splat(star.BaseScale)
	}
}

// layoutScatter throws every particle, regardless of type, to an independent
// random point on a spherical shell with a random facing.
func layoutScatter(pool *Pool, rng *rand.Rand) {
	pool.Each(func(p *Particle) {
		p.Target.Position = spherePoint(rng, scatterRadius)
		p.Target.Rotation = Euler{
			X: rng.Float64() * 2 * math.Pi,
			Y: rng.Float64() * 2 * math.Pi,
			Z: rng.Float64() * 2 * math.Pi,
		}
		p.Target.Scale = splat(p.BaseScale)
	})
}

// layoutFocus stages one randomly chosen photo in front of the camera and
// clears the rest to a far back plane. Needle and shape targets are left
// untouched: they keep whatever formation the previous pass gave them, so
// the frozen tree silhouette stays behind the focused photo.
func layoutFocus(pool *Pool, constrained bool, rng *rand.Rand) {
	photos := pool.ByType(TypePhoto)
	if len(photos) == 0 {
		// Nothing to stage; the star still retreats below.
		restageStar(pool)
		return
	}

	chosen := rng.IntN(len(photos))
	for i, p := range photos {
		if i == chosen {
			p.Target.Position = Vec3{X: 0, Y: focusHeight, Z: focusDepth(constrained)}
			p.Target.Rotation = Euler{}
			p.Target.Scale = splat(focusScale(constrained) * p.BaseScale)
			continue
		}
		p.Target.Position = Vec3{
			X: (rng.Float64()*2 - 1) * backPlaneSpanX,
			Y: (rng.Float64()*2 - 1) * backPlaneSpanY,
			Z: backPlaneZ,
		}
		p.Target.Rotation = Euler{}
		p.Target.Scale = splat(photoRingScale * p.BaseScale)
	}

	restageStar(pool)
}

// restageStar moves the star far back and up, out of the focus framing.
func restageStar(pool *Pool) {
	if star := pool.Star(); star != nil {
		star.Target.Position = Vec3{X: 0, Y: starRetreatY, Z: starRetreatZ}
	}
}
