package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the capability every generator draws randomness from.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0,1.0).
	Float64() float64
	// Intn returns a non-negative pseudo-random number in [0,n). It panics if n <= 0.
	Intn(n int) int
	// NormFloat64 returns a standard normally distributed number.
	NormFloat64() float64
}

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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// New creates an RNG seeded from the wall clock.
func New() *RNG {
	return NewRNG(time.Now().UnixNano())
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// NormFloat64 returns a normally distributed float64 with mean 0 and stddev 1.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// Derive returns a new RNG seeded from this one. Used to hand independent
// streams to concurrent workers without sharing the lock.
func (r *RNG) Derive() *RNG {
	r.mu.Lock()
	seed := r.rand.Int63()
	r.mu.Unlock()
	return NewRNG(seed)
}
