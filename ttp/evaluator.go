// SPDX-License-Identifier: MIT

package ttp

import (
	"fmt"

	"github.com/katalvlaran/ttp/matrix"
)

// Step describes one leg of a simulated tour.
type Step struct {
	From, To int     // 1-based cities of the leg
	Distance float64 // dist[From-1][To-1]
	Velocity float64 // speed used on this leg (before picking at To)
	Time     float64 // Distance / Velocity
	Picked   bool    // plan flag of this step
	Weight   float64 // carried weight after picking at To
}

// Evaluator scores tours and packing plans against one instance.
//
// NewEvaluator snapshots the instance parameters and the distance matrix, so
// later mutation of either by the caller cannot change scores. The snapshot
// is read-only and an *Evaluator is safe for concurrent use.
type Evaluator struct {
	n            int
	capacity     float64
	minSpeed     float64
	maxSpeed     float64
	rentingRatio float64

	dist       []float64 // row-major n*n copy of the distance matrix
	cityWeight []float64 // total item weight per city (index city-1)
	cityProfit []float64 // total item profit per city (index city-1)
}

// NewEvaluator validates inst and dist once and prepares per-city item sums.
//
// Errors (all wrap ErrInvalidInput):
//   - instance contract violations (see Instance.Validate),
//   - dist not square of order inst.Dimension,
//   - dist not a distance matrix (matrix.ValidateDistance sentinels are kept
//     in the chain and match errors.Is as well).
//
// Complexity: O(n² + items).
func NewEvaluator(inst *Instance, dist matrix.Matrix) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w", err)
	}
	if err := matrix.ValidateDistance(dist, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w: %w", err, ErrInvalidInput)
	}
	n := inst.Dimension
	if dist.Rows() != n {
		return nil, fmt.Errorf("NewEvaluator: distance matrix order %d, want %d: %w", dist.Rows(), n, ErrInvalidInput)
	}

	e := &Evaluator{
		n:            n,
		capacity:     inst.Capacity,
		minSpeed:     inst.MinSpeed,
		maxSpeed:     inst.MaxSpeed,
		rentingRatio: inst.RentingRatio,
		dist:         make([]float64, n*n),
		cityWeight:   make([]float64, n),
		cityProfit:   make([]float64, n),
	}

	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if e.dist[i*n+j], err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("NewEvaluator: %w: %w", err, ErrInvalidInput)
			}
		}
	}
	// Items are summed in catalog order so the per-city totals are reproducible.
	for _, it := range inst.Items {
		e.cityWeight[it.City-1] += it.Weight
		e.cityProfit[it.City-1] += it.Profit
	}

	return e, nil
}

// Dimension returns the number of cities the evaluator was built for.
func (e *Evaluator) Dimension() int { return e.n }

// Net returns the TTP objective of r under the instance renting ratio.
func (e *Evaluator) Net(r Result) float64 { return r.Net(e.rentingRatio) }

// Evaluate simulates tour with plan and returns total time, weight and profit.
//
// Preconditions: tour is a permutation of {1..n}; len(plan) == n.
// Violations return ErrInvalidInput and no partial result.
//
// Complexity: O(n) time (plus O(n) for tour validation).
func (e *Evaluator) Evaluate(tour Tour, plan PackingPlan) (Result, error) {
	if err := e.check(tour, plan); err != nil {
		return Result{}, err
	}
	return e.simulate(tour, plan, nil), nil
}

// Trace is Evaluate that also reports every leg in tour order.
//
// Complexity: O(n) time, O(n) space for the returned steps.
func (e *Evaluator) Trace(tour Tour, plan PackingPlan) ([]Step, Result, error) {
	if err := e.check(tour, plan); err != nil {
		return nil, Result{}, err
	}
	steps := make([]Step, 0, e.n)
	res := e.simulate(tour, plan, func(s Step) { steps = append(steps, s) })
	return steps, res, nil
}

func (e *Evaluator) check(tour Tour, plan PackingPlan) error {
	if e == nil {
		return fmt.Errorf("Evaluate: nil evaluator: %w", ErrInvalidInput)
	}
	if err := ValidateTour(tour, e.n); err != nil {
		return fmt.Errorf("Evaluate: %w", err)
	}
	if err := ValidatePlan(plan, e.n); err != nil {
		return fmt.Errorf("Evaluate: %w", err)
	}
	return nil
}

// simulate walks the cycle. The leg i is travelled at the velocity set by the
// weight carried on departure; the pick at the arrival city then updates
// weight and velocity for leg i+1. Weight never decreases, so once capacity
// is exceeded every later leg runs at minSpeed.
func (e *Evaluator) simulate(tour Tour, plan PackingPlan, visit func(Step)) Result {
	var (
		n        = e.n
		i        int
		from, to int
		d, dt    float64
		weight   float64
		profit   float64
		total    float64
		v        = e.maxSpeed
	)
	for i = 0; i < n; i++ {
		from = tour[i]
		to = tour[(i+1)%n]
		d = e.dist[(from-1)*n+(to-1)]
		dt = d / v
		total += dt

		if plan[i] {
			weight += e.cityWeight[to-1]
			profit += e.cityProfit[to-1]
		}
		if visit != nil {
			visit(Step{From: from, To: to, Distance: d, Velocity: v, Time: dt, Picked: plan[i], Weight: weight})
		}
		v = velocity(weight, e.capacity, e.minSpeed, e.maxSpeed)
	}

	return Result{TotalTime: total, TotalWeight: weight, TotalProfit: profit}
}

// Evaluate is the one-shot form of NewEvaluator(inst, dist).Evaluate(tour, plan).
// Prefer a reusable *Evaluator when scoring many solutions of one instance.
func Evaluate(tour Tour, plan PackingPlan, inst *Instance, dist matrix.Matrix) (Result, error) {
	e, err := NewEvaluator(inst, dist)
	if err != nil {
		return Result{}, err
	}
	return e.Evaluate(tour, plan)
}
