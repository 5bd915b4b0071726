// SPDX-License-Identifier: MIT

// Package ttp - tour and plan utilities.
//
// Provided helpers:
//   - ValidateTour: verify a 1-based permutation of {1..n}.
//   - ValidatePlan: verify plan length.
//   - Tour.Clone / PackingPlan.Clone: independent copies.
//   - TourLength: total distance of the closed cycle.
//
// Design:
//   - No logging, no panics on user input - only ErrInvalidInput with context.
//   - O(n) time for every helper.
package ttp

import (
	"fmt"

	"github.com/katalvlaran/ttp/matrix"
)

// ValidateTour checks that tour is a permutation of {1..n} of length n.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour Tour, n int) error {
	if n <= 0 {
		return fmt.Errorf("ValidateTour: dimension must be > 0 (got %d): %w", n, ErrInvalidInput)
	}
	if len(tour) != n {
		return fmt.Errorf("ValidateTour: length %d, want %d: %w", len(tour), n, ErrInvalidInput)
	}
	seen := make([]bool, n+1)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 1 || v > n {
			return fmt.Errorf("ValidateTour: tour[%d]=%d out of range [1,%d]: %w", i, v, n, ErrInvalidInput)
		}
		if seen[v] {
			return fmt.Errorf("ValidateTour: tour[%d]=%d repeats an earlier city: %w", i, v, ErrInvalidInput)
		}
		seen[v] = true
	}
	return nil
}

// ValidatePlan checks that plan has exactly one flag per tour step.
//
// Complexity: O(1).
func ValidatePlan(plan PackingPlan, n int) error {
	if len(plan) != n {
		return fmt.Errorf("ValidatePlan: length %d, want %d: %w", len(plan), n, ErrInvalidInput)
	}
	return nil
}

// Clone returns an independent copy of the tour (nil stays nil).
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// Clone returns an independent copy of the plan (nil stays nil).
func (p PackingPlan) Clone() PackingPlan {
	if p == nil {
		return nil
	}
	out := make(PackingPlan, len(p))
	copy(out, p)
	return out
}

// Picked returns the number of set flags.
func (p PackingPlan) Picked() int {
	var k int
	for _, b := range p {
		if b {
			k++
		}
	}
	return k
}

// TourLength sums dist over every leg of the closed cycle, including the
// wrap-around leg from the last city back to the first.
//
// Contract:
//   - tour is a valid permutation of {1..dist.Rows()}.
//   - dist is square.
//
// Complexity: O(n).
func TourLength(tour Tour, dist matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("TourLength: %w: %w", err, ErrInvalidInput)
	}
	n := dist.Rows()
	if err := ValidateTour(tour, n); err != nil {
		return 0, err
	}

	var (
		i     int
		d     float64
		total float64
		err   error
	)
	for i = 0; i < n; i++ {
		if d, err = dist.At(tour[i]-1, tour[(i+1)%n]-1); err != nil {
			return 0, fmt.Errorf("TourLength: %w: %w", err, ErrInvalidInput)
		}
		total += d
	}
	return total, nil
}
