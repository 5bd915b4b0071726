// SPDX-License-Identifier: MIT

package genetic

import (
	"fmt"

	"github.com/katalvlaran/ttp/ttp"
)

// Repair restores permutation validity of a tour produced by positional
// crossover.
//
// Implementation:
//   - Stage 1: scan candidate left to right; the first occurrence of a city
//     is kept, later occurrences are marked as duplicates.
//   - Stage 2: collect the cities absent from candidate, in the order they
//     appear in cities (the canonical order).
//   - Stage 3: overwrite duplicates, in encounter order, with the missing
//     cities, consuming them in canonical order.
//
// Non-duplicate positions are never touched and candidate itself is not
// modified; the result is a fresh slice.
//
// Errors:
//   - ErrInvalidInput when len(candidate) != len(cities) or cities repeats a value.
//   - ErrInvariantViolation when the duplicate count differs from the missing
//     count, which happens when candidate holds values outside cities (for
//     example after splicing parents over different city sets).
//
// Complexity: O(n) time, O(n) space.
func Repair(candidate ttp.Tour, cities []int) (ttp.Tour, error) {
	n := len(cities)
	if len(candidate) != n {
		return nil, fmt.Errorf("Repair: candidate length %d, want %d: %w", len(candidate), n, ttp.ErrInvalidInput)
	}

	pos := make(map[int]int, n) // city -> index in cities
	for i, c := range cities {
		if _, dup := pos[c]; dup {
			return nil, fmt.Errorf("Repair: city set repeats %d at index %d: %w", c, i, ttp.ErrInvalidInput)
		}
		pos[c] = i
	}

	var (
		seen    = make([]bool, n)
		dupAt   []int // candidate positions holding a repeated city
		foreign int   // values not in the city set
		i, k    int
		ok      bool
	)
	for i = 0; i < n; i++ {
		if k, ok = pos[candidate[i]]; !ok {
			foreign++
			continue
		}
		if seen[k] {
			dupAt = append(dupAt, i)
			continue
		}
		seen[k] = true
	}

	missing := make([]int, 0, len(dupAt))
	for k = 0; k < n; k++ {
		if !seen[k] {
			missing = append(missing, cities[k])
		}
	}
	if len(dupAt) != len(missing) {
		return nil, fmt.Errorf("Repair: %d duplicates but %d missing cities (%d foreign values): %w",
			len(dupAt), len(missing), foreign, ttp.ErrInvariantViolation)
	}

	out := candidate.Clone()
	for k, i = range dupAt {
		out[i] = missing[k]
	}
	return out, nil
}

// RepairTour is Repair over the canonical city set {1..len(candidate)} in
// ascending order.
func RepairTour(candidate ttp.Tour) (ttp.Tour, error) {
	return Repair(candidate, citySet(len(candidate)))
}

// citySet returns [1, 2, ..., n].
func citySet(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}
