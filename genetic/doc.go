// SPDX-License-Identifier: MIT

// Package genetic provides the recombination primitives a TTP genetic
// algorithm consumes:
//
//   - SinglePoint / TwoPoint: positional crossover over coupled (tour, plan)
//     chromosomes with shared cut points; tours are repaired into valid
//     permutations, plans are spliced verbatim.
//   - Repair / RepairTour: first-seen-wins duplicate repair.
//   - Biased: elite-weighted uniform crossover for real-valued encodings.
//   - RandomTour / RandomPlan / RandomPopulation: seeded sampling.
//
// Every stochastic function takes an explicit *rand.Rand; nil means the
// package-wide default stream (seeded with DefaultSeed, reseeded by
// SeedDefault), which advances across calls. Operators never modify their arguments and either
// return complete offspring or an error (ttp.ErrInvalidInput,
// ttp.ErrInvariantViolation), never partial results.
//
// Selection, replacement, mutation schedules and termination are left to the
// caller.
package genetic
