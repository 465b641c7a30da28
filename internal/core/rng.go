package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Every randomized operation in the repository receives one of these
// explicitly; there is no hidden global randomness.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillBernoulli fills the buffer with 1s at probability p and 0s otherwise.
func FillBernoulli(r *RNG, buf []uint8, p float64) {
	for i := range buf {
		buf[i] = 0
		if r.Chance(p) {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
