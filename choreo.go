package garland

import "math/rand/v2"

// commandKind identifies an inbound command.
type commandKind uint8

const (
	cmdModeChanged commandKind = iota
	cmdPhotoAdded
	cmdResized
)

// command is one queued external event. Events arrive from UI callbacks at
// arbitrary points in a frame but are applied only when the queue drains at
// the start of the next tick, so the pool is never mutated mid-integration.
type command struct {
	kind  commandKind
	mode  Mode
	photo any
	w, h  int
}

// defaultSeed feeds the random source when the config leaves Seed at zero.
const defaultSeed = 0x67a61a9d

// Choreographer owns the full choreography state: the particle pool, the
// active mode, the group rotation, the camera rig, and the inbound command
// queue. One Choreographer drives one session; call Step once per rendered
// frame from a single goroutine.
type Choreographer struct {
	cfg   Config
	pool  *Pool
	mode  Mode
	group Euler
	rig   *Rig
	rng   *rand.Rand

	elapsed float64
	queue   []command
	signal  *HandSignal

	// OnReady, if set, is called exactly once at the end of the first tick,
	// after the initial formation has been integrated. The host uses it to
	// reveal the rendered view.
	OnReady func()

	readySent bool
}

// New builds a Choreographer: it seeds the random source, constructs the
// startup pool, and runs the opening tree layout pass so the first ticks
// assemble the formation out of the spawn cloud.
func New(cfg Config, width, height int) *Choreographer {
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	c := &Choreographer{
		cfg:  cfg,
		mode: ModeTree,
		rig:  NewRig(cfg.Constrained, width, height),
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	c.pool = BuildPool(cfg, c.rng)
	ComputeTargets(c.mode, c.pool, cfg.Constrained, c.rng)
	return c
}

// Pool returns the particle pool. Read-only between ticks.
func (c *Choreographer) Pool() *Pool { return c.pool }

// Mode returns the active mode.
func (c *Choreographer) Mode() Mode { return c.mode }

// Group returns the shared group rotation applied to the whole pool.
func (c *Choreographer) Group() Euler { return c.group }

// Rig returns the camera rig.
func (c *Choreographer) Rig() *Rig { return c.rig }

// Elapsed returns the accumulated choreography time in seconds.
func (c *Choreographer) Elapsed() float64 { return c.elapsed }

// SetMode queues a mode change. Every queued change triggers exactly one
// layout pass when the next tick drains the queue, even if the mode value
// is unchanged.
func (c *Choreographer) SetMode(m Mode) {
	c.queue = append(c.queue, command{kind: cmdModeChanged, mode: m})
}

// AddPhoto queues intake of one decoded photo. The new particle joins the
// pool on the next tick at a random spawn point; it receives a real layout
// target on the next mode change. Never fails.
func (c *Choreographer) AddPhoto(photo any) {
	c.queue = append(c.queue, command{kind: cmdPhotoAdded, photo: photo})
}

// Resize queues a viewport resize for the rig. The display class is fixed
// at startup and is not re-evaluated.
func (c *Choreographer) Resize(width, height int) {
	c.queue = append(c.queue, command{kind: cmdResized, w: width, h: height})
}

// SetHandSignal supplies the hand-pose sample for the next tick. The signal
// is consumed by that tick; absence simply means idle rotation, never an
// error.
func (c *Choreographer) SetHandSignal(s HandSignal) {
	sig := s
	c.signal = &sig
}

// drain applies every queued command in arrival order.
func (c *Choreographer) drain() {
	for _, cmd := range c.queue {
		switch cmd.kind {
		case cmdModeChanged:
			c.mode = cmd.mode
			ComputeTargets(c.mode, c.pool, c.cfg.Constrained, c.rng)
			c.rig.MoveFor(c.mode)
		case cmdPhotoAdded:
			c.pool.Add(NewPhoto(cmd.photo, c.rng))
		case cmdResized:
			c.rig.Resize(cmd.w, cmd.h)
		}
	}
	c.queue = c.queue[:0]
}

// Step advances one tick: drain queued commands, integrate every particle
// toward its target, glide the camera rig, and fire OnReady after the first
// tick. dt is the frame time in seconds; it advances the twinkle clock and
// the rig tween, while the approach smoothing itself is per-tick.
func (c *Choreographer) Step(dt float64) {
	c.drain()
	c.elapsed += dt

	Integrate(c.pool, c.mode, c.elapsed, &c.group, c.signal)
	c.signal = nil

	c.rig.Update(float32(dt))

	if !c.readySent {
		c.readySent = true
		if c.OnReady != nil {
			c.OnReady()
		}
	}
}
