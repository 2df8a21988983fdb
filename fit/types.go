// Package fit defines the model and weight types and sentinel errors
// for the fit subpackage of github.com/katalvlaran/rankorder.
package fit

import "errors"

// Sentinel errors for fit operations.
var (
	// ErrShapeMismatch indicates x and Y (or a row of Y) disagree on the
	// number of sampling points.
	ErrShapeMismatch = errors.New("fit: dependent data shape must be (n_r, len(x))")
	// ErrModelOutput indicates the model returned a prediction whose
	// length differs from the number of sampling points.
	ErrModelOutput = errors.New("fit: model output length must equal len(x)")
	// ErrWeightShape indicates weights incompatible with the data shape.
	ErrWeightShape = errors.New("fit: weights shape incompatible with data")
)

// ModelFunc predicts the dependent variable at every sampling point:
// it receives the independent variable x (length n_s) and the parameter
// vector, and must return a prediction of length n_s.
type ModelFunc func(x, params []float64) []float64

// weightKind discriminates the closed set of weight variants.
type weightKind int

const (
	weightNone   weightKind = iota // residuals unweighted
	weightColumn                   // one weight per sampling point
	weightMatrix                   // one weight per entry
)

// Weights multiplies residuals element-wise, e.g. 1/σ per sampling point.
// It is a closed set of three variants rather than a shape-sniffed slice,
// so the contract is explicit at the call site:
//
//	fit.NoWeights()          — residuals used as-is
//	fit.ColumnWeights(w)     — w has length n_s, multiplies every row
//	fit.MatrixWeights(w)     — w has shape (n_r, n_s), element-wise
//
// The zero value behaves like NoWeights().
type Weights struct {
	kind weightKind
	col  []float64
	grid [][]float64
}

// NoWeights leaves residuals unweighted.
func NoWeights() Weights {
	return Weights{kind: weightNone}
}

// ColumnWeights weights every repetition with the same per-sample vector.
// The length must equal n_s at evaluation time.
func ColumnWeights(w []float64) Weights {
	return Weights{kind: weightColumn, col: w}
}

// MatrixWeights weights each residual entry individually. The shape must
// equal (n_r, n_s) at evaluation time.
func MatrixWeights(w [][]float64) Weights {
	return Weights{kind: weightMatrix, grid: w}
}
