// Package matrix holds the dense distance matrices consumed by the ttp
// evaluator.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors,
//   - NewEuclidean, which turns planar city coordinates into a symmetric,
//     zero-diagonal distance matrix (optionally rounded up, WithCeil),
//   - ValidateDistance and the smaller validators it is built from.
//
// Row/column k always refers to city k+1 of a 1-based problem file.
// No function logs or panics on user input; failures are reported through
// the sentinel errors in errors.go.
package matrix
