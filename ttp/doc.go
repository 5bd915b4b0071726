// SPDX-License-Identifier: MIT

// Package ttp scores Travelling Thief Problem solutions.
//
// A solution is a Tour (a permutation of the 1-based cities, read as a
// cycle) paired with a PackingPlan (one pick flag per tour step). The thief
// starts at tour[0] with an empty knapsack at MaxSpeed; after every leg it
// may pick the item(s) of the city it just arrived at, and its speed drops
// linearly with the carried weight:
//
//	v(w) = MaxSpeed - (w / Capacity) * (MaxSpeed - MinSpeed)   if w <= Capacity
//	v(w) = MinSpeed                                            otherwise
//
// The evaluator returns total travel time, final carried weight and total
// profit; the TTP objective is Result.Net = profit - RentingRatio * time.
//
// Contracts:
//   - Inputs are validated; violations return ErrInvalidInput wrapped with
//     expected/actual context. Nothing is coerced, truncated or padded.
//   - Evaluation is pure and deterministic: identical inputs give bit-identical
//     results, and an *Evaluator is safe for concurrent use.
//   - No logging, no panics on user input.
//
// Complexity: Evaluate is O(n) time and O(1) extra space; NewEvaluator is
// O(n² + items) because it validates the distance matrix once.
package ttp
