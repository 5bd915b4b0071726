// SPDX-License-Identifier: MIT

// Package genetic - RNG utilities shared by the stochastic operators.
//
// Goals:
//   - Determinism: same seed ⇒ identical offspring across runs and platforms.
//   - Explicit sources: every stochastic call receives its *rand.Rand; there is
//     no hidden package-level generator and no time-based seeding.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams for parallel workers.
//   - A nil rng selects the package-wide default stream, which is mutex-guarded
//     and therefore safe (but contended) under concurrent use.
package genetic

import (
	"math/rand"
	"sync"
)

// DefaultSeed is the fixed seed used when callers pass seed==0, and the
// initial seed of the package-wide default stream.
const DefaultSeed int64 = 1

// lockedSource serializes access to a rand.Source64.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// defaultSource backs defaultRNG; every nil-rng call advances it, so
// consecutive calls draw fresh values.
var (
	defaultSource = &lockedSource{src: rand.NewSource(DefaultSeed).(rand.Source64)}
	defaultRNG    = rand.New(defaultSource)
)

// SeedDefault reseeds the package-wide default stream used for nil rng
// arguments. seed==0 ⇒ DefaultSeed.
func SeedDefault(seed int64) {
	if seed == 0 {
		seed = DefaultSeed
	}
	defaultSource.Seed(seed)
}

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Notes:
//   - Constants are the canonical SplitMix64 increment and finalizer multipliers.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from base and a
// stream identifier. If base==nil, DefaultSeed is the parent; otherwise
// base.Int63() is consumed once, so repeated derivations with the same
// stream id still differ.
//
// Call during setup (not in hot loops) to hand each worker its own source.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// orDefault returns rng, or the shared default stream when rng is nil.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return defaultRNG
	}
	return rng
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
