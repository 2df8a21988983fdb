// Package transform implements the universal rank-order transform:
// data matrix → rank matrix → population matrix → Q matrix.
//
// What:
//
//   - Data matrix A[i][k], shape (n_r, n_s): repeated measurement i at
//     sampling point k. Rectangular, no missing values.
//
//   - Rank matrix R[i][k], shape (n_r, n_s): ranks of A assigned for each
//     repetition i separately; integers from 0 to n_s-1.
//
//   - Population matrix P[r][k], shape (n_s, n_s): counts occurrences of
//     rank r at sampling point k. Every row and column sums to n_r when
//     ranking used a permutation method.
//
//   - Q matrix Q[j][k], shape (n_s-1, n_s-1): for the partition
//     {{S2, S1}, {S3, S4}} of P obtained by cutting rows after j and
//     columns after k,
//
//     Q[j][k] = n_s/n_r × [(ΣS2+ΣS4)/(|S2|+|S4|) − (ΣS1+ΣS3)/(|S1|+|S3|)]
//
//     contrasting same-side occupancy density against opposite-side
//     density. Under pure noise Q concentrates near zero; a monotonic
//     trend between rank and sample index pushes it away from zero.
//
// Why:
//
//   - Distribution-free trend detection: only ranks enter the statistic,
//     so the shape of the measurement noise is irrelevant.
//   - Regression: the fit package minimizes the RMS of the residuals' Q.
//
// Two interchangeable Q implementations are exported: QMatrix evaluates a
// closed form over a 2-D prefix-sum matrix in O(n_s²); QMatrixDirect
// evaluates the partition formula literally in O(n_s⁴) and serves as the
// reference oracle. Both validate the same preconditions and agree within
// floating tolerance.
//
// Complexity:
//
//   - RankMatrix:        O(n_r · n_s log n_s), Memory: O(n_r · n_s).
//   - PopulationMatrix:  O(n_r · n_s),         Memory: O(n_s²).
//   - QMatrix:           O(n_s²),              Memory: O(n_s²).
//   - QMatrixDirect:     O(n_s⁴),              Memory: O(n_s²).
//
// Errors:
//
//   - ErrEmptyMatrix: input has no rows or no columns.
//   - ErrRaggedMatrix: rows have differing lengths.
//   - ErrRankRange: a rank value lies outside [0, n_s).
//   - ErrNonSquare: the population matrix is not square.
//   - ErrTooFewSamples: fewer than two sampling points (a 1×1 population
//     matrix would yield an undefined 0×0 Q and is rejected).
//   - ErrBadRepetitions: the repetition count is not positive.
//   - ErrSumRule: a row or column of P does not sum to the repetition
//     count within tolerance.
//
// Method presented in the following publication:
// G. Ierley and A. Kostinski. Phys. Rev. X 9, 031039.
package transform
