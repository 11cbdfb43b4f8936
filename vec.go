package garland

import (
	"math"
	"math/rand/v2"
)

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// approach moves current toward target by the given fraction of the
// remaining distance. Applied once per tick; repeated application converges
// exponentially.
func approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Approach moves each component of v toward target by factor.
func (v Vec3) Approach(target Vec3, factor float64) Vec3 {
	return Vec3{
		approach(v.X, target.X, factor),
		approach(v.Y, target.Y, factor),
		approach(v.Z, target.Z, factor),
	}
}

// splat returns a Vec3 with all components set to s.
func splat(s float64) Vec3 {
	return Vec3{s, s, s}
}

// wrapAngle normalizes a to (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// approachAngle moves current toward target along the shortest arc by factor.
// The result is not wrapped; accumulated rotation (e.g. tumbling) stays
// monotonic and only the applied delta takes the short way around.
func approachAngle(current, target, factor float64) float64 {
	return current + wrapAngle(target-current)*factor
}

// Approach moves each axis of e toward target along the shortest arc.
func (e Euler) Approach(target Euler, factor float64) Euler {
	return Euler{
		approachAngle(e.X, target.X, factor),
		approachAngle(e.Y, target.Y, factor),
		approachAngle(e.Z, target.Z, factor),
	}
}

// spherePoint returns a uniformly distributed point on a spherical shell
// whose radius is drawn from radius. The polar angle uses the inverse-cosine
// transform so points do not cluster at the poles.
func spherePoint(rng *rand.Rand, radius Range) Vec3 {
	r := radius.Sample(rng)
	theta := math.Acos(2*rng.Float64() - 1)
	phi := rng.Float64() * 2 * math.Pi

	sinTheta := math.Sin(theta)
	return Vec3{
		X: r * sinTheta * math.Cos(phi),
		Y: r * math.Cos(theta),
		Z: r * sinTheta * math.Sin(phi),
	}
}

// cubePoint returns a uniformly distributed point inside a cube of the given
// half-extent centered on the origin.
func cubePoint(rng *rand.Rand, halfExtent float64) Vec3 {
	return Vec3{
		X: (rng.Float64()*2 - 1) * halfExtent,
		Y: (rng.Float64()*2 - 1) * halfExtent,
		Z: (rng.Float64()*2 - 1) * halfExtent,
	}
}
