package common

import (
	"math/rand"
	"time"
)

// RNG is the single pseudo-random source of a run. Every draw of the
// simulation goes through one RNG in a fixed order, so a seed reproduces
// the whole trace.
type RNG struct {
	rnd  *rand.Rand
	seed int64
}

// NewRNG seeds a generator. A zero seed is replaced by the wall clock;
// Seed reports the value actually used.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{rnd: rand.New(rand.NewSource(seed)), seed: seed}
}

func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a uniform draw in [0,1).
func (r *RNG) Float64() float64 {
	return r.rnd.Float64()
}

// Uniform returns a + U(0,1)*(b-a).
func (r *RNG) Uniform(a, b float64) float64 {
	return a + r.rnd.Float64()*(b-a)
}
