// SPDX-License-Identifier: MIT

// Package matrix - Euclidean distance builder.
//
// NewEuclidean turns planar city coordinates into the symmetric, zero-diagonal
// distance matrix consumed by the ttp evaluator. Row/column k corresponds to
// the city at points[k], i.e. city index k+1 in 1-based problem files.
//
// Complexity: O(n²) time and memory.
package matrix

import (
	"fmt"
	"math"
)

// NewEuclidean builds an n×n *Dense of pairwise Euclidean distances.
//
// Stage 1: validate that points is non-empty and every coordinate is finite.
// Stage 2: fill the upper triangle and mirror it, so symmetry is exact.
// Stage 3: optionally round up (WithCeil) off-diagonal entries.
//
// Errors:
//   - ErrInvalidDimensions when len(points)==0.
//   - ErrNaNInf when a coordinate is NaN or ±Inf.
func NewEuclidean(points []Point, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("NewEuclidean: %w", ErrInvalidDimensions)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(points[i][0]) || !isFinite(points[i][1]) {
			return nil, fmt.Errorf("NewEuclidean: point %d: %w", i, ErrNaNInf)
		}
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1])
			if o.ceil {
				d = math.Ceil(d)
			}
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
