// SPDX-License-Identifier: MIT

package ttp

import (
	"fmt"
	"math"
)

// Validate checks the instance contract:
//   - Dimension > 0,
//   - Capacity finite and >= 0,
//   - 0 < MinSpeed <= MaxSpeed, both finite,
//   - RentingRatio finite and >= 0,
//   - every item has finite non-negative profit/weight and City in [1, Dimension].
//
// Complexity: O(items).
func (inst *Instance) Validate() error {
	if inst == nil {
		return fmt.Errorf("instance is nil: %w", ErrInvalidInput)
	}
	if inst.Dimension <= 0 {
		return fmt.Errorf("dimension must be > 0 (got %d): %w", inst.Dimension, ErrInvalidInput)
	}
	if !finite(inst.Capacity) || inst.Capacity < 0 {
		return fmt.Errorf("capacity must be finite and >= 0 (got %g): %w", inst.Capacity, ErrInvalidInput)
	}
	if !finite(inst.MinSpeed) || inst.MinSpeed <= 0 {
		return fmt.Errorf("min speed must be finite and > 0 (got %g): %w", inst.MinSpeed, ErrInvalidInput)
	}
	if !finite(inst.MaxSpeed) || inst.MaxSpeed < inst.MinSpeed {
		return fmt.Errorf("max speed must be finite and >= min speed %g (got %g): %w", inst.MinSpeed, inst.MaxSpeed, ErrInvalidInput)
	}
	if !finite(inst.RentingRatio) || inst.RentingRatio < 0 {
		return fmt.Errorf("renting ratio must be finite and >= 0 (got %g): %w", inst.RentingRatio, ErrInvalidInput)
	}

	for i, it := range inst.Items {
		if !finite(it.Profit) || it.Profit < 0 {
			return fmt.Errorf("items[%d]: profit must be finite and >= 0 (got %g): %w", i, it.Profit, ErrInvalidInput)
		}
		if !finite(it.Weight) || it.Weight < 0 {
			return fmt.Errorf("items[%d]: weight must be finite and >= 0 (got %g): %w", i, it.Weight, ErrInvalidInput)
		}
		if it.City < 1 || it.City > inst.Dimension {
			return fmt.Errorf("items[%d]: city %d out of range [1,%d]: %w", i, it.City, inst.Dimension, ErrInvalidInput)
		}
	}
	return nil
}

// Velocity returns the thief's speed while carrying weight w.
//
// Weight above capacity clamps to MinSpeed (a fitness penalty, not an error).
// With Capacity == 0 the only in-capacity weight is 0, which travels at
// MaxSpeed. The result always lies in [MinSpeed, MaxSpeed].
func (inst *Instance) Velocity(w float64) float64 {
	return velocity(w, inst.Capacity, inst.MinSpeed, inst.MaxSpeed)
}

func velocity(w, capacity, vmin, vmax float64) float64 {
	if w > capacity {
		return vmin
	}
	if capacity == 0 {
		return vmax
	}
	v := vmax - (w/capacity)*(vmax-vmin)
	if v < vmin { // rounding at w == capacity
		return vmin
	}
	return v
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
