// SPDX-License-Identifier: MIT

package genetic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/ttp/ttp"
)

// RandomTour returns a uniformly random permutation of {1..n}.
// A nil rng draws from the shared default stream (see SeedDefault).
//
// Complexity: O(n).
func RandomTour(rng *rand.Rand, n int) (ttp.Tour, error) {
	if n <= 0 {
		return nil, fmt.Errorf("RandomTour: dimension must be > 0 (got %d): %w", n, ttp.ErrInvalidInput)
	}
	t := ttp.Tour(citySet(n))
	shuffleInPlace(t, orDefault(rng))
	return t, nil
}

// RandomPlan returns n flags, each set independently with probability pick.
//
// Complexity: O(n).
func RandomPlan(rng *rand.Rand, n int, pick float64) (ttp.PackingPlan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("RandomPlan: dimension must be > 0 (got %d): %w", n, ttp.ErrInvalidInput)
	}
	if math.IsNaN(pick) || pick < 0 || pick > 1 {
		return nil, fmt.Errorf("RandomPlan: pick probability %g outside [0,1]: %w", pick, ttp.ErrInvalidInput)
	}
	r := orDefault(rng)
	p := make(ttp.PackingPlan, n)
	for i := range p {
		p[i] = r.Float64() < pick
	}
	return p, nil
}

// RandomChromosome samples a tour and then a plan from rng.
func RandomChromosome(rng *rand.Rand, n int, pick float64) (Chromosome, error) {
	r := orDefault(rng)
	t, err := RandomTour(r, n)
	if err != nil {
		return Chromosome{}, err
	}
	p, err := RandomPlan(r, n, pick)
	if err != nil {
		return Chromosome{}, err
	}
	return Chromosome{Tour: t, Plan: p}, nil
}

// RandomPopulation samples size chromosomes. Member k is drawn from its own
// stream DeriveRNG(rng, k), so a member does not depend on how many random
// numbers earlier members consumed.
func RandomPopulation(rng *rand.Rand, size, n int, pick float64) ([]Chromosome, error) {
	if size < 0 {
		return nil, fmt.Errorf("RandomPopulation: size must be >= 0 (got %d): %w", size, ttp.ErrInvalidInput)
	}
	r := orDefault(rng)
	pop := make([]Chromosome, size)
	for k := range pop {
		c, err := RandomChromosome(DeriveRNG(r, uint64(k)), n, pick)
		if err != nil {
			return nil, err
		}
		pop[k] = c
	}
	return pop, nil
}
