// Package garland choreographs thousands of 3D particles — tree needles,
// ornaments, falling snow, framed photos, and a crowning star — that glide
// between formations in real time.
//
// The package is renderer-agnostic: it owns particle state, layout targets,
// and per-tick integration, and leaves drawing to the host. The demo under
// demos/treeshow renders with [Ebitengine].
//
// # Quick start
//
// Create a [Choreographer], step it once per frame, and draw the pool with
// the rig's projection:
//
//	c := garland.New(garland.DefaultConfig(false), 1280, 720)
//	c.OnReady = revealView
//
//	// each frame:
//	c.Step(1.0 / 60)
//	c.Pool().Each(func(p *garland.Particle) {
//		sx, sy, depth, ok := c.Rig().Project(p.Transform.Position, c.Group())
//		// ... draw ...
//	})
//
// # Modes
//
// The active [Mode] selects the formation. [Choreographer.SetMode] queues a
// change; the next tick runs exactly one layout pass that rewrites every
// governed particle's target, and the integrator carries the particles over
// smoothly — current transforms are never snapped.
//
//   - [ModeTree]: needles spiral up a cone, ornaments wind a looser offset
//     spiral, photos ring the base facing inward, the star pins the apex.
//   - [ModeScatter]: everything flies to a random point on a spherical
//     shell and tumbles.
//   - [ModeFocus]: one photo is staged front and center; the rest clear to
//     a back plane.
//
// # External inputs
//
// Photo intake ([Choreographer.AddPhoto]), mode changes, and resizes are
// queued and applied only between ticks. A per-tick [HandSignal] steers the
// group rotation; without one the formation idles in a slow spin.
//
// garland is single-threaded: one goroutine calls Step, and all inputs must
// arrive from that same goroutine (ebiten's Update, in the demo).
//
// [Ebitengine]: https://ebitengine.org
package garland
