// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-matrix checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used for symmetry and zero-diagonal checks
// on distance matrices built from double-precision coordinates.
const DefaultEpsilon = 1e-9

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric verifies |A[i,j] - A[j,i]| <= tol for all i<j.
// A negative tol is treated as its absolute value; a non-finite tol is rejected.
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // shape validated above
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance performs full distance-matrix validation, in this order:
//   - non-nil and square,
//   - every entry finite (ErrNaNInf),
//   - diagonal within tol of zero (ErrNonZeroDiagonal),
//   - off-diagonal non-negative (ErrNegativeWeight),
//   - symmetric within tol (ErrAsymmetry).
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateDistance", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNaNInf)
			}
			if i == j {
				if math.Abs(v) > math.Abs(tol) {
					return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNonZeroDiagonal)
				}
				continue
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNegativeWeight)
			}
		}
	}

	return ValidateSymmetric(m, tol)
}
