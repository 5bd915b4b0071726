// Package ttp_test provides lightweight fixtures shared across *_test.go
// files in this package.
package ttp_test

import (
	"testing"

	"github.com/katalvlaran/ttp/matrix"
	"github.com/katalvlaran/ttp/ttp"
	"github.com/stretchr/testify/require"
)

// epsTiny is the tolerance for closed-form float comparisons.
const epsTiny = 1e-12

// fourCityPoints are the coordinates of cities 1..4 of the test-example-n4 instance.
var fourCityPoints = []matrix.Point{{1, 1}, {2, 2}, {3, 1}, {4, 3}}

// fourCityInstance mirrors the test-example-n4 instance: city 1 is the depot
// without an item, cities 2..4 hold one item each.
func fourCityInstance() *ttp.Instance {
	return &ttp.Instance{
		Name:         "test-example-n4",
		Dimension:    4,
		Capacity:     10,
		MinSpeed:     0.1,
		MaxSpeed:     1.0,
		RentingRatio: 1.0,
		Items: []ttp.Item{
			{Index: 1, City: 2, Weight: 5, Profit: 10},
			{Index: 2, City: 3, Weight: 0, Profit: 0},
			{Index: 3, City: 4, Weight: 3, Profit: 7},
		},
	}
}

// euclid builds the distance matrix for pts and fails the test on error.
func euclid(t *testing.T, pts []matrix.Point) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)
	return m
}

// mustEvaluator builds an evaluator for inst over pts.
func mustEvaluator(t *testing.T, inst *ttp.Instance, pts []matrix.Point) *ttp.Evaluator {
	t.Helper()
	ev, err := ttp.NewEvaluator(inst, euclid(t, pts))
	require.NoError(t, err)
	return ev
}

// linePoints places n cities on the x-axis at unit spacing.
func linePoints(n int) []matrix.Point {
	pts := make([]matrix.Point, n)
	for i := range pts {
		pts[i] = matrix.Point{float64(i), 0}
	}
	return pts
}

// identityTour returns [1, 2, ..., n].
func identityTour(n int) ttp.Tour {
	t := make(ttp.Tour, n)
	for i := range t {
		t[i] = i + 1
	}
	return t
}
