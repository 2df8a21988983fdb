// Package fit implements regression with the universal rank-order
// transform: a distribution-free residual error that an external
// minimizer drives toward zero.
//
// What:
//
//   - Residuals: weights ⊙ (Y − model(x, params)) broadcast over
//     repetitions, with a closed set of weight variants (NoWeights,
//     ColumnWeights, MatrixWeights).
//   - QMatrixFit: residuals through the transform pipeline to a Q matrix.
//   - QRMS: sqrt(mean(Q²)) — the scalar fit-quality metric (lower is
//     better).
//   - Objective: shape-checked `params → float64` closure ready for an
//     external minimizer such as gonum.org/v1/gonum/optimize.
//
// Why:
//
//   - Only the ranks of the residuals enter the error, so the method is
//     insensitive to the noise distribution and to additive offsets the
//     model does not capture.
//
// Complexity:
//
//   - One QRMS evaluation: O(n_r · n_s log n_s + n_s²) time.
//
// Errors:
//
//   - ErrShapeMismatch: x, Y and per-entry weights disagree on shape.
//   - ErrModelOutput: the model prediction length differs from len(x).
//   - ErrWeightShape: weights are incompatible with the data shape.
//
// Minimization itself is out of scope: the package owns no optimizer and
// no state between calls. See examples/hyperbolafit for Nelder–Mead
// driving QRMS.
package fit
