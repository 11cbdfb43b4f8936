package garland

import "math"

// Smoothing factors, applied once per tick. Convergence speed therefore
// tracks the tick rate rather than wall-clock time; the renderer runs at a
// fixed tick rate, matching the assumption.
const (
	approachBase  = 0.05 // position/rotation factor in tree and scatter modes
	approachFocus = 0.08 // faster convergence for the focus pop
	approachScale = 0.1  // twinkle envelope factor
	approachGroup = 0.1  // group yaw/pitch toward the hand signal

	// Twinkle envelope: BaseScale * (twinkleBias + twinkleAmp * sin(...)).
	twinkleBias = 0.8
	twinkleAmp  = 0.3

	// tumbleGain converts drift into scatter-mode tumbling radians per tick.
	tumbleGain = 5.0

	// Falling snow recycles from the floor back to the ceiling.
	dustFloor   = -20.0
	dustCeiling = 30.0

	// starSpinRate is the star's constant per-tick yaw, independent of mode.
	starSpinRate = 0.01

	// idleSpinRate is the group's per-tick yaw when no hand signal arrives.
	idleSpinRate = 0.002

	// Hand signal mapping from normalized [0,1] position to group rotation.
	handYawSpan   = 2.0
	handPitchSpan = 1.5
)

// twinkles reports whether t's scale is driven by the twinkle envelope
// instead of its layout target.
func twinkles(t ParticleType) bool {
	return t == TypeShape || t == TypeDust || t == TypeStar
}

// Integrate advances every particle one tick toward its target, applies
// type- and mode-specific secondary motion, and steers the group rotation
// from the hand signal (or idles it when signal is nil). elapsed is the
// monotonic choreography time in seconds, used only to phase the twinkle
// envelope.
func Integrate(pool *Pool, mode Mode, elapsed float64, group *Euler, signal *HandSignal) {
	factor := approachBase
	if mode == ModeFocus {
		factor = approachFocus
	}

	pool.Each(func(p *Particle) {
		// Falling snow: the drift advances the target, not the transform, so
		// the smoothing below stays the only writer of current position.
		// Focus mode holds the snow still to keep the backdrop calm.
		if p.Type == TypeDust && mode != ModeFocus {
			p.Target.Position = p.Target.Position.Add(p.Drift)
			if p.Target.Position.Y < dustFloor {
				p.Target.Position.Y = dustCeiling
			}
		}

		p.Transform.Position = p.Transform.Position.Approach(p.Target.Position, factor)
		p.Transform.Rotation = p.Transform.Rotation.Approach(p.Target.Rotation, factor)

		if twinkles(p.Type) {
			env := p.BaseScale * (twinkleBias + twinkleAmp*math.Sin(elapsed*p.TwinkleRate+p.TwinklePhase))
			s := approach(p.Transform.Scale.X, env, approachScale)
			p.Transform.Scale = splat(s)
		} else {
			p.Transform.Scale = p.Transform.Scale.Approach(p.Target.Scale, factor)
		}

		// Tumbling layers on top of the rotation smoothing while scattered.
		if mode == ModeScatter {
			p.Transform.Rotation.X += p.Drift.X * tumbleGain
			p.Transform.Rotation.Y += p.Drift.Y * tumbleGain
		}
	})

	if star := pool.Star(); star != nil {
		star.Transform.Rotation.Y += starSpinRate
	}

	if signal != nil {
		group.Y = approach(group.Y, (signal.X-0.5)*handYawSpan, approachGroup)
		group.X = approach(group.X, (signal.Y-0.5)*handPitchSpan, approachGroup)
	} else {
		group.Y += idleSpinRate
	}
}
