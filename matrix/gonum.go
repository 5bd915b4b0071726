// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Distance matrices computed with gonum can be handed to the ttp evaluator
// through FromGonum; ToGonum goes the other way for callers that want
// gonum's linear-algebra routines on a built matrix.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum mat.Matrix into a fresh *Dense.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrInvalidDimensions for an empty matrix.
//   - ErrNaNInf when an element is not finite.
//
// Complexity: O(r*c).
func FromGonum(m mat.Matrix) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = d.Set(i, j, m.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return d, nil
}

// ToGonum returns a *mat.Dense holding a copy of m.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
