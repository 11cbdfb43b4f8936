package garland

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera rig constants per display class and mode.
const (
	rigFOV            = 60.0 // degrees, vertical
	rigFOVConstrained = 70.0

	rigDistance            = 55.0
	rigDistanceConstrained = 65.0
	rigDistanceFocus       = 42.0

	// rigHeight is the world-space height the camera looks at.
	rigHeight = 2.0

	rigNearClip = 0.1

	dollyDuration = 1.2 // seconds
)

// Rig is the camera rig: a perspective projection looking down -Z at the
// formation, with a dolly that glides between mode-dependent distances.
// Mode changes animate the dolly with a tween rather than snapping.
type Rig struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Distance is the current dolly distance from the formation center.
	Distance float64
	// Width and Height are the viewport dimensions in pixels.
	Width, Height int

	constrained bool
	dolly       *gween.Tween
}

// NewRig creates a rig at the resting distance for the display class.
func NewRig(constrained bool, width, height int) *Rig {
	r := &Rig{
		FOV:         rigFOV,
		Distance:    rigDistance,
		Width:       width,
		Height:      height,
		constrained: constrained,
	}
	if constrained {
		r.FOV = rigFOVConstrained
		r.Distance = rigDistanceConstrained
	}
	return r
}

// restDistance returns the dolly distance for the given mode.
func (r *Rig) restDistance(mode Mode) float64 {
	if mode == ModeFocus {
		return rigDistanceFocus
	}
	if r.constrained {
		return rigDistanceConstrained
	}
	return rigDistance
}

// DollyTo animates the dolly to the given distance over duration seconds.
func (r *Rig) DollyTo(distance float64, duration float32, fn ease.TweenFunc) {
	r.dolly = gween.New(float32(r.Distance), float32(distance), duration, fn)
}

// MoveFor starts the dolly glide appropriate for a mode change.
func (r *Rig) MoveFor(mode Mode) {
	r.DollyTo(r.restDistance(mode), dollyDuration, ease.OutQuad)
}

// Resize updates the viewport dimensions. The display class is fixed at
// startup and is deliberately not re-evaluated here.
func (r *Rig) Resize(width, height int) {
	r.Width = width
	r.Height = height
}

// Update advances the dolly tween by dt seconds.
func (r *Rig) Update(dt float32) {
	if r.dolly == nil {
		return
	}
	val, done := r.dolly.Update(dt)
	r.Distance = float64(val)
	if done {
		r.dolly = nil
	}
}

// Project maps a world-space point through the group rotation and the rig's
// perspective onto the viewport. It returns screen coordinates, the
// camera-space depth (larger = farther, usable as a painter-sort key), and
// whether the point is in front of the near clip plane.
func (r *Rig) Project(world Vec3, group Euler) (sx, sy, depth float64, visible bool) {
	// Group yaw about Y, then pitch about X.
	sinY, cosY := math.Sincos(group.Y)
	x := world.X*cosY - world.Z*sinY
	z := world.X*sinY + world.Z*cosY
	y := world.Y

	sinX, cosX := math.Sincos(group.X)
	y, z = y*cosX-z*sinX, y*sinX+z*cosX

	// Camera sits at (0, rigHeight, Distance) looking down -Z.
	cz := r.Distance - z
	if cz < rigNearClip {
		return 0, 0, cz, false
	}

	f := float64(r.Height) / 2 / math.Tan(r.FOV*math.Pi/360)
	sx = float64(r.Width)/2 + x*f/cz
	sy = float64(r.Height)/2 - (y-rigHeight)*f/cz
	return sx, sy, cz, true
}
