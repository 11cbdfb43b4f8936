package garland

import (
	"math"
	"testing"
)

func TestNewRigDisplayClasses(t *testing.T) {
	r := NewRig(false, 800, 600)
	assertNear(t, "fov", r.FOV, rigFOV)
	assertNear(t, "distance", r.Distance, rigDistance)

	rc := NewRig(true, 400, 600)
	assertNear(t, "constrained fov", rc.FOV, rigFOVConstrained)
	assertNear(t, "constrained distance", rc.Distance, rigDistanceConstrained)
}

func TestDollyGlidesToFocusDistance(t *testing.T) {
	r := NewRig(false, 800, 600)
	r.MoveFor(ModeFocus)

	// Mid-glide the dolly sits strictly between the endpoints.
	for i := 0; i < 30; i++ {
		r.Update(1.0 / 60)
	}
	if r.Distance <= rigDistanceFocus || r.Distance >= rigDistance {
		t.Errorf("mid-glide distance = %v, want inside (%v, %v)",
			r.Distance, rigDistanceFocus, rigDistance)
	}

	// Well past the tween duration it has settled.
	for i := 0; i < 120; i++ {
		r.Update(1.0 / 60)
	}
	if math.Abs(r.Distance-rigDistanceFocus) > 1e-3 {
		t.Errorf("settled distance = %v, want %v", r.Distance, rigDistanceFocus)
	}

	// Returning to tree glides back out.
	r.MoveFor(ModeTree)
	for i := 0; i < 150; i++ {
		r.Update(1.0 / 60)
	}
	if math.Abs(r.Distance-rigDistance) > 1e-3 {
		t.Errorf("return distance = %v, want %v", r.Distance, rigDistance)
	}
}

func TestProjectCenter(t *testing.T) {
	r := NewRig(false, 800, 600)
	sx, sy, depth, ok := r.Project(Vec3{0, rigHeight, 0}, Euler{})
	if !ok {
		t.Fatal("look-at point should be visible")
	}
	assertNear(t, "sx", sx, 400)
	assertNear(t, "sy", sy, 300)
	assertNear(t, "depth", depth, rigDistance)
}

func TestProjectDepthOrdering(t *testing.T) {
	r := NewRig(false, 800, 600)
	_, _, near, _ := r.Project(Vec3{0, 0, 10}, Euler{})
	_, _, far, _ := r.Project(Vec3{0, 0, -10}, Euler{})
	if near >= far {
		t.Errorf("depth ordering inverted: near %v, far %v", near, far)
	}
}

func TestProjectBehindCameraInvisible(t *testing.T) {
	r := NewRig(false, 800, 600)
	if _, _, _, ok := r.Project(Vec3{0, 0, rigDistance + 1}, Euler{}); ok {
		t.Error("point behind the camera should not be visible")
	}
}

func TestProjectGroupYaw(t *testing.T) {
	r := NewRig(false, 800, 600)
	// A quarter-turn yaw swings a point on +X around to -Z (farther away),
	// so it projects back to the screen center line.
	sx, _, depth, ok := r.Project(Vec3{10, rigHeight, 0}, Euler{Y: math.Pi / 2})
	if !ok {
		t.Fatal("rotated point should be visible")
	}
	assertNear(t, "sx after yaw", sx, 400)
	assertNear(t, "depth after yaw", depth, rigDistance-10)
}

func TestRigResize(t *testing.T) {
	r := NewRig(false, 800, 600)
	r.Resize(1024, 768)
	sx, sy, _, _ := r.Project(Vec3{0, rigHeight, 0}, Euler{})
	assertNear(t, "sx after resize", sx, 512)
	assertNear(t, "sy after resize", sy, 384)
}
