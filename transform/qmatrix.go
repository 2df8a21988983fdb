// Package transform: Q matrix computation.
// Two interchangeable implementations live here. QMatrix evaluates a
// closed-form identity over a 2-D prefix-sum matrix in O(n_s²);
// QMatrixDirect evaluates the four-block partition formula literally in
// O(n_s⁴). The closed form is an algebraic expansion of the partition
// formula in terms of cumulative sums and cut positions, so both must
// agree within floating tolerance on every valid input — the direct form
// is kept as the oracle for equivalence tests.
package transform

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// QMatrix computes the (n_s-1, n_s-1) Q matrix of the square population
// matrix p with repetition count nRep, using the O(n_s²) closed form.
//
// With σ[j][k] the inclusive prefix sum of p over rows 0..j and columns
// 0..k, and for one-based cut offsets j,k = 1..n_s-1:
//
//	ind(j,k)   = 2jk − (j+k)·n_s
//	D(j,k)     = −ind(j,k) · (ind(j,k) + n_s²)
//	Q[j-1][k-1] = 2n_s² · (n_s·σ[j-1][k-1] − jk·n_r) / (D(j,k) · n_r)
//
// Preconditions (shared with QMatrixDirect): p is square with n_s ≥ 2,
// nRep ≥ 1, and every row and column of p sums to nRep within
// DefaultEpsilon. Violations return ErrNonSquare, ErrTooFewSamples,
// ErrBadRepetitions, or ErrSumRule naming the failed axis and index.
// Complexity: O(n_s²) time and memory.
func QMatrix(p [][]float64, nRep int) ([][]float64, error) {
	nS := len(p)
	if err := validatePopulation(p, nRep); err != nil {
		return nil, err
	}

	sigma := prefixSum(p)

	ns := float64(nS)
	ns2 := ns * ns
	nr := float64(nRep)

	q := make([][]float64, nS-1)
	for j := 1; j < nS; j++ {
		q[j-1] = make([]float64, nS-1)
		for k := 1; k < nS; k++ {
			ind := float64(2*j*k - (j+k)*nS)
			d := -ind * (ind + ns2)
			q[j-1][k-1] = 2 * ns2 * (ns*sigma[j-1][k-1] - float64(j*k)*nr) / (d * nr)
		}
	}

	return q, nil
}

// QMatrixDirect computes the Q matrix by evaluating the partition formula
// literally: for every cell (j,k), p is cut into four blocks
//
//	S1 = p[0..j, k+1..]   S2 = p[0..j, 0..k]
//	S3 = p[j+1.., 0..k]   S4 = p[j+1.., k+1..]
//
// and Q[j][k] = n_s/n_r × [(ΣS2+ΣS4)/(|S2|+|S4|) − (ΣS1+ΣS3)/(|S1|+|S3|)].
//
// This is the reference oracle for QMatrix; it validates the same
// preconditions and agrees within floating tolerance.
// Complexity: O(n_s⁴) time, O(n_s²) memory.
func QMatrixDirect(p [][]float64, nRep int) ([][]float64, error) {
	nS := len(p)
	if err := validatePopulation(p, nRep); err != nil {
		return nil, err
	}

	scale := float64(nS) / float64(nRep)

	q := make([][]float64, nS-1)
	for j := 0; j < nS-1; j++ {
		q[j] = make([]float64, nS-1)
		for k := 0; k < nS-1; k++ {
			var s1, s2, s3, s4 float64
			for _, row := range p[:j+1] {
				s2 += floats.Sum(row[:k+1])
				s1 += floats.Sum(row[k+1:])
			}
			for _, row := range p[j+1:] {
				s3 += floats.Sum(row[:k+1])
				s4 += floats.Sum(row[k+1:])
			}

			// Block sizes follow from the cut positions alone.
			sameSize := float64((j+1)*(k+1) + (nS-j-1)*(nS-k-1))
			oppositeSize := float64((j+1)*(nS-k-1) + (nS-j-1)*(k+1))

			q[j][k] = scale * ((s2+s4)/sameSize - (s1+s3)/oppositeSize)
		}
	}

	return q, nil
}

// prefixSum builds the inclusive 2-D prefix-sum matrix of p, truncated to
// (n_s-1, n_s-1): sigma[j][k] = Σ p[0..j][0..k] for j,k ≤ n_s-2. The last
// row and column are never needed by the closed form.
// Complexity: O(n_s²) time and memory.
func prefixSum(p [][]float64) [][]float64 {
	n := len(p) - 1
	sigma := make([][]float64, n)
	for i := 0; i < n; i++ {
		sigma[i] = make([]float64, n)
		floats.CumSum(sigma[i], p[i][:n]) // cumulative sum along the row
		if i > 0 {
			floats.Add(sigma[i], sigma[i-1]) // accumulate down the columns
		}
	}

	return sigma
}

// validatePopulation enforces the shared preconditions of both Q
// algorithms: squareness, n_s ≥ 2, a positive repetition count, and the
// sum rule on every row and column within DefaultEpsilon.
func validatePopulation(p [][]float64, nRep int) error {
	if len(p) == 0 {
		return ErrEmptyMatrix
	}
	nS := len(p)
	for i, row := range p {
		if len(row) != nS {
			return fmt.Errorf("%w: %d rows but row %d has %d columns", ErrNonSquare, nS, i, len(row))
		}
	}
	if nS < 2 {
		return ErrTooFewSamples
	}
	if nRep < 1 {
		return fmt.Errorf("%w: got %d", ErrBadRepetitions, nRep)
	}

	want := float64(nRep)
	colSums := make([]float64, nS)
	for i, row := range p {
		if sum := floats.Sum(row); !scalar.EqualWithinAbsOrRel(sum, want, DefaultEpsilon, DefaultEpsilon) {
			return fmt.Errorf("%w: row %d sums to %g, want %d", ErrSumRule, i, sum, nRep)
		}
		floats.Add(colSums, row)
	}
	for k, sum := range colSums {
		if !scalar.EqualWithinAbsOrRel(sum, want, DefaultEpsilon, DefaultEpsilon) {
			return fmt.Errorf("%w: column %d sums to %g, want %d", ErrSumRule, k, sum, nRep)
		}
	}

	return nil
}
