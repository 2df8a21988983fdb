// Package transform defines numeric policy and sentinel errors
// for the transform subpackage of github.com/katalvlaran/rankorder.
package transform

import "errors"

// DefaultEpsilon is the non-negative tolerance used by the population
// matrix sum-rule check. Sums are compared to the repetition count with
// absolute-or-relative tolerance so accumulated rounding in float-valued
// population matrices does not trip the validation.
const DefaultEpsilon = 1e-9

// Sentinel errors for transform operations.
var (
	// ErrEmptyMatrix indicates an input matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("transform: matrix must have at least one row and one column")
	// ErrRaggedMatrix indicates rows of differing lengths.
	ErrRaggedMatrix = errors.New("transform: all rows must have the same length")
	// ErrRankRange indicates a rank value outside [0, n_s).
	ErrRankRange = errors.New("transform: rank value out of range")
	// ErrNonSquare indicates the population matrix is not square.
	ErrNonSquare = errors.New("transform: population matrix must be square")
	// ErrTooFewSamples indicates fewer than two sampling points; the Q
	// matrix is undefined for a 1×1 population matrix.
	ErrTooFewSamples = errors.New("transform: at least two sampling points required")
	// ErrBadRepetitions indicates a non-positive repetition count.
	ErrBadRepetitions = errors.New("transform: repetition count must be positive")
	// ErrSumRule indicates a row or column of the population matrix does
	// not sum to the repetition count within tolerance.
	ErrSumRule = errors.New("transform: population matrix row/column sums must equal the repetition count")
)
