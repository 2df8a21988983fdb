// Package fit implements the rank-order residual error metric. Every
// function here is pure and stateless per call; retry policy, iteration
// and convergence belong to the external minimizer.
package fit

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rankorder/rank"
	"github.com/katalvlaran/rankorder/transform"
)

// Residuals evaluates model(x, params) once and subtracts the prediction
// from every repetition of y, applying w element-wise:
//
//	residuals[i][k] = w[i][k] · (y[i][k] − model(x, params)[k])
//
// Returns ErrShapeMismatch when a row of y disagrees with len(x),
// ErrModelOutput when the prediction length differs from len(x), or
// ErrWeightShape when w does not match the data shape. The inputs are
// never mutated.
// Complexity: O(n_r · n_s) time and memory plus one model evaluation.
func Residuals(model ModelFunc, params, x []float64, y [][]float64, w Weights) ([][]float64, error) {
	nS := len(x)
	if nS == 0 || len(y) == 0 {
		return nil, fmt.Errorf("%w: empty x or Y", ErrShapeMismatch)
	}
	for i, row := range y {
		if len(row) != nS {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrShapeMismatch, i, len(row), nS)
		}
	}
	if err := w.validate(len(y), nS); err != nil {
		return nil, err
	}

	pred := model(x, params)
	if len(pred) != nS {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrModelOutput, len(pred), nS)
	}

	res := make([][]float64, len(y))
	for i, row := range y {
		res[i] = make([]float64, nS)
		floats.SubTo(res[i], row, pred)
		w.apply(res[i], i)
	}

	return res, nil
}

// QMatrixFit feeds the weighted residuals through the rank-order pipeline
// (rank matrix → population matrix → Q matrix) and returns the residuals'
// Q matrix of shape (n_s-1, n_s-1).
// Complexity: O(n_r · n_s log n_s + n_s²) time.
func QMatrixFit(model ModelFunc, params, x []float64, y [][]float64, w Weights, method rank.Method, rng *rand.Rand) ([][]float64, error) {
	res, err := Residuals(model, params, x, y, w)
	if err != nil {
		return nil, err
	}

	return transform.DataToQMatrix(res, method, rng)
}

// QRMS reduces the residuals' Q matrix to the scalar root mean square
// sqrt(mean(Q²)): the fit error the external minimizer drives toward
// zero. Lower is better.
// Complexity: O(n_r · n_s log n_s + n_s²) time.
func QRMS(model ModelFunc, params, x []float64, y [][]float64, w Weights, method rank.Method, rng *rand.Rand) (float64, error) {
	q, err := QMatrixFit(model, params, x, y, w, method, rng)
	if err != nil {
		return 0, err
	}

	var sumSq float64
	for _, row := range q {
		sumSq += floats.Dot(row, row)
	}
	cells := len(q) * len(q)

	return math.Sqrt(sumSq / float64(cells)), nil
}

// Objective validates the data shapes once and returns the scalar
// objective `params → QRMS` consumed by external minimizers (e.g.
// gonum.org/v1/gonum/optimize). Evaluation failures inside the closure —
// possible only through a misbehaving model — surface as NaN, which
// minimizers treat as an infeasible point.
func Objective(model ModelFunc, x []float64, y [][]float64, w Weights, method rank.Method, rng *rand.Rand) (func(params []float64) float64, error) {
	// Check the whole shape contract up front so the closure cannot fail
	// on anything but the model itself.
	nS := len(x)
	if nS == 0 || len(y) == 0 {
		return nil, fmt.Errorf("%w: empty x or Y", ErrShapeMismatch)
	}
	if nS < 2 {
		return nil, transform.ErrTooFewSamples
	}
	for i, row := range y {
		if len(row) != nS {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrShapeMismatch, i, len(row), nS)
		}
	}
	if err := w.validate(len(y), nS); err != nil {
		return nil, err
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w %q", rank.ErrUnknownMethod, string(method))
	}
	if method == rank.Random && rng == nil {
		return nil, rank.ErrNilRand
	}

	return func(params []float64) float64 {
		v, err := QRMS(model, params, x, y, w, method, rng)
		if err != nil {
			return math.NaN()
		}

		return v
	}, nil
}

// validate checks the weight variant against the data shape (n_r, n_s).
func (w Weights) validate(nRep, nS int) error {
	switch w.kind {
	case weightNone:
		return nil
	case weightColumn:
		if len(w.col) != nS {
			return fmt.Errorf("%w: %d column weights for %d samples", ErrWeightShape, len(w.col), nS)
		}

		return nil
	default: // weightMatrix
		if len(w.grid) != nRep {
			return fmt.Errorf("%w: %d weight rows for %d repetitions", ErrWeightShape, len(w.grid), nRep)
		}
		for i, row := range w.grid {
			if len(row) != nS {
				return fmt.Errorf("%w: weight row %d has %d samples, want %d", ErrWeightShape, i, len(row), nS)
			}
		}

		return nil
	}
}

// apply multiplies the residual row i in place by the weight variant.
// Shapes are assumed validated.
func (w Weights) apply(row []float64, i int) {
	switch w.kind {
	case weightColumn:
		floats.Mul(row, w.col)
	case weightMatrix:
		floats.Mul(row, w.grid[i])
	}
}
