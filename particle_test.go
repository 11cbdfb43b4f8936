package garland

import (
	"math"
	"testing"
)

func TestConstructorsSetType(t *testing.T) {
	rng := newTestRand()
	cases := []struct {
		p    *Particle
		want ParticleType
	}{
		{NewNeedle(rng), TypeNeedle},
		{NewShape(rng), TypeShape},
		{NewDust(rng), TypeDust},
		{NewStar(rng), TypeStar},
		{NewPhoto(nil, rng), TypePhoto},
	}
	for _, c := range cases {
		if c.p.Type != c.want {
			t.Errorf("type = %v, want %v", c.p.Type, c.want)
		}
	}
}

func TestSpawnTargetEqualsTransform(t *testing.T) {
	rng := newTestRand()
	p := NewNeedle(rng)
	if p.Target != p.Transform {
		t.Errorf("spawn target %+v != transform %+v", p.Target, p.Transform)
	}
}

func TestSpawnInsideCube(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 100; i++ {
		p := NewShape(rng)
		pos := p.Transform.Position
		if math.Abs(pos.X) > spawnHalfExtent ||
			math.Abs(pos.Y) > spawnHalfExtent ||
			math.Abs(pos.Z) > spawnHalfExtent {
			t.Fatalf("spawn %v outside ±%v cube", pos, spawnHalfExtent)
		}
	}
}

func TestDustDriftFalls(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 50; i++ {
		p := NewDust(rng)
		if p.Drift.Y >= 0 {
			t.Fatalf("dust drift Y = %v, want negative (falling)", p.Drift.Y)
		}
	}
}

func TestStarBaseScale(t *testing.T) {
	rng := newTestRand()
	p := NewStar(rng)
	assertNear(t, "star base scale", p.BaseScale, starBaseScale)
}

func TestPhotoCarriesHandleAndSpawnsUpright(t *testing.T) {
	rng := newTestRand()
	handle := struct{ name string }{"img"}
	p := NewPhoto(handle, rng)
	if p.Photo != handle {
		t.Errorf("photo handle = %v, want %v", p.Photo, handle)
	}
	if p.Transform.Rotation != (Euler{}) {
		t.Errorf("photo spawn rotation = %+v, want upright", p.Transform.Rotation)
	}
	if p.Target != p.Transform {
		t.Error("photo target should equal spawn transform")
	}
}

func TestTwinkleParametersRandomized(t *testing.T) {
	rng := newTestRand()
	a := NewShape(rng)
	b := NewShape(rng)
	if a.TwinklePhase == b.TwinklePhase && a.TwinkleRate == b.TwinkleRate {
		t.Error("two shapes drew identical twinkle parameters")
	}
	if a.TwinkleRate < twinkleRateRange.Min || a.TwinkleRate > twinkleRateRange.Max {
		t.Errorf("twinkle rate %v outside %+v", a.TwinkleRate, twinkleRateRange)
	}
}
