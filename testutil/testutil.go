// Package testutil provides deterministic helpers for hopgo tests.
package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RandomPattern returns a random binary pattern of length n.
func (r *RNG) RandomPattern(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := make([]byte, n)
	for i := range p {
		p[i] = byte(r.rand.Intn(2))
	}
	return p
}

// RandomPatterns returns num random binary patterns of length n.
func (r *RNG) RandomPatterns(num, n int) [][]byte {
	out := make([][]byte, num)
	for i := range out {
		out[i] = r.RandomPattern(n)
	}
	return out
}

// Corrupt returns a copy of p with flips distinct bits inverted.
func (r *RNG) Corrupt(p []byte, flips int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, len(p))
	copy(out, p)

	flipped := make(map[int]struct{}, flips)
	for len(flipped) < flips && len(flipped) < len(p) {
		i := r.rand.Intn(len(p))
		if _, done := flipped[i]; done {
			continue
		}
		flipped[i] = struct{}{}
		out[i] ^= 1
	}
	return out
}
