// SPDX-License-Identifier: MIT

package genetic

import (
	"fmt"

	"github.com/katalvlaran/ttp/ttp"
)

// Chromosome couples a tour with its packing plan. Position i of both parts
// describes the same tour step, so operators always cut both at the same
// indices.
type Chromosome struct {
	Tour ttp.Tour
	Plan ttp.PackingPlan
}

// Dimension returns the tour length.
func (c Chromosome) Dimension() int { return len(c.Tour) }

// Clone returns a deep copy.
func (c Chromosome) Clone() Chromosome {
	return Chromosome{Tour: c.Tour.Clone(), Plan: c.Plan.Clone()}
}

// Validate checks that Tour is a permutation of {1..n} and Plan has n flags.
func (c Chromosome) Validate(n int) error {
	if err := ttp.ValidateTour(c.Tour, n); err != nil {
		return err
	}
	return ttp.ValidatePlan(c.Plan, n)
}

// validateParents enforces the shared precondition of the coupled crossovers:
// both tours are permutations of {1..dimension} and both plans have
// dimension flags.
func validateParents(op string, a, b ttp.Tour, pa, pb ttp.PackingPlan, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("%s: dimension must be > 0 (got %d): %w", op, dimension, ttp.ErrInvalidInput)
	}
	if len(a) != dimension || len(b) != dimension {
		return fmt.Errorf("%s: parent tour lengths %d and %d, want %d: %w", op, len(a), len(b), dimension, ttp.ErrInvalidInput)
	}
	if len(pa) != dimension || len(pb) != dimension {
		return fmt.Errorf("%s: parent plan lengths %d and %d, want %d: %w", op, len(pa), len(pb), dimension, ttp.ErrInvalidInput)
	}
	if err := ttp.ValidateTour(a, dimension); err != nil {
		return fmt.Errorf("%s: first parent: %w", op, err)
	}
	if err := ttp.ValidateTour(b, dimension); err != nil {
		return fmt.Errorf("%s: second parent: %w", op, err)
	}
	return nil
}
