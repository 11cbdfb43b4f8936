package garland

import "math/rand/v2"

// Pool holds every live particle, partitioned by type. Insertion order within
// a partition is stable and doubles as the particle's layout index, so layout
// passes distribute particles deterministically. Particles are never removed.
//
// Pool is not safe for concurrent use (garland is single-threaded); it is
// mutated only between ticks and read by the integrator each tick.
type Pool struct {
	partitions [numParticleTypes][]*Particle
	size       int
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// BuildPool constructs the startup pool from the config counts: needles,
// shapes, and dust motes in insertion order, plus exactly one star. The
// photo partition starts empty and grows only through photo intake.
func BuildPool(cfg Config, rng *rand.Rand) *Pool {
	pool := NewPool()
	for i := 0; i < cfg.Needles; i++ {
		pool.Add(NewNeedle(rng))
	}
	for i := 0; i < cfg.Shapes; i++ {
		pool.Add(NewShape(rng))
	}
	for i := 0; i < cfg.Dust; i++ {
		pool.Add(NewDust(rng))
	}
	pool.Add(NewStar(rng))
	return pool
}

// Add appends p to its type's partition. Panics if p is nil.
func (pool *Pool) Add(p *Particle) {
	if p == nil {
		panic("garland: cannot add nil particle")
	}
	pool.partitions[p.Type] = append(pool.partitions[p.Type], p)
	pool.size++
}

// ByType returns the partition for the given type in insertion order.
// The returned slice MUST NOT be mutated.
func (pool *Pool) ByType(t ParticleType) []*Particle {
	return pool.partitions[t]
}

// Count returns the number of particles of the given type.
func (pool *Pool) Count(t ParticleType) int {
	return len(pool.partitions[t])
}

// Size returns the total number of particles.
func (pool *Pool) Size() int {
	return pool.size
}

// Star returns the crowning star, or nil if the pool has none.
func (pool *Pool) Star() *Particle {
	stars := pool.partitions[TypeStar]
	if len(stars) == 0 {
		return nil
	}
	return stars[0]
}

// Each calls fn for every particle, iterating partitions in type order and
// particles in insertion order.
func (pool *Pool) Each(fn func(*Particle)) {
	for _, partition := range pool.partitions {
		for _, p := range partition {
			fn(p)
		}
	}
}
