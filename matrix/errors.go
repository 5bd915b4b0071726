// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Builders and validators return these sentinels (optionally wrapped
// with call-site context via %w) and tests check them via errors.Is.
// No function panics on user-triggered error conditions; panics are reserved
// for option constructors receiving nonsensical values (programmer error).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so the origin is obvious
// once a caller (ttp, ttpio) wraps it into its own error chain.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a distance matrix whose diagonal is not ~0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative off-diagonal distance.
	ErrNegativeWeight = errors.New("matrix: negative distance")
)
