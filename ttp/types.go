// SPDX-License-Identifier: MIT

package ttp

import "errors"

var (
	// ErrInvalidInput is returned for malformed or mismatched arguments:
	// non-permutation tours, wrong-length plans, mismatched parents, or an
	// instance/matrix violating its contract. Context (expected vs. actual,
	// offending index) is attached by wrapping.
	ErrInvalidInput = errors.New("ttp: invalid input")

	// ErrInvariantViolation signals an internal consistency failure, e.g. a
	// repaired tour whose duplicate count differs from its missing count.
	// It points at a defect upstream of the failing call.
	ErrInvariantViolation = errors.New("ttp: invariant violation")
)

// Tour is an ordered visit sequence of 1-based city indices. A valid tour is a
// permutation of {1..dimension} and is read as a cycle: the city after the
// last one is the first one.
type Tour []int

// PackingPlan holds one pick flag per tour step. Flag i refers to the item(s)
// of the arrival city of step i, that is tour[(i+1) mod dimension].
type PackingPlan []bool

// Item is a knapsack item located at exactly one city.
type Item struct {
	Index  int     // 1-based item index as listed in the instance file
	Profit float64 // >= 0
	Weight float64 // >= 0
	City   int     // 1-based assigned city
}

// Instance is the frozen problem configuration shared read-only by every
// evaluation of a run.
type Instance struct {
	Name             string // informational, from "PROBLEM NAME"
	KnapsackDataType string // informational, from "KNAPSACK DATA TYPE"
	EdgeWeightType   string // informational, from "EDGE_WEIGHT_TYPE"

	Dimension    int     // number of cities, > 0
	Capacity     float64 // knapsack capacity, >= 0
	MinSpeed     float64 // > 0
	MaxSpeed     float64 // >= MinSpeed
	RentingRatio float64 // >= 0
	Items        []Item
}

// Result is the outcome of simulating one (tour, plan) pair.
type Result struct {
	TotalTime   float64 // sum of per-leg travel times
	TotalWeight float64 // weight carried when the tour closes
	TotalProfit float64 // profit of every picked item
}

// Net returns the TTP objective TotalProfit - rentingRatio*TotalTime.
func (r Result) Net(rentingRatio float64) float64 {
	return r.TotalProfit - rentingRatio*r.TotalTime
}
