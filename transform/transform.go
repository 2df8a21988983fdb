// Package transform implements the matrix pipeline of the universal
// rank-order transform. All functions are pure: inputs are never mutated
// and no state is carried between calls.
package transform

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/rankorder/rank"
)

// RankMatrix applies rank.Ranks to every row of a independently, producing
// the rank matrix R with the same (n_r, n_s) shape. One row is one
// repetition; there is no cross-row interaction.
//
// The random source rng is consumed only by rank.Random; see rank.Ranks.
// Returns ErrEmptyMatrix, ErrRaggedMatrix, or any rank.Ranks error.
// Complexity: O(n_r · n_s log n_s) time, O(n_r · n_s) memory.
func RankMatrix(a [][]float64, method rank.Method, rng *rand.Rand) ([][]int, error) {
	if err := validateRectangular(a); err != nil {
		return nil, err
	}

	r := make([][]int, len(a))
	for i, row := range a {
		ranks, err := rank.Ranks(row, method, rng)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		r[i] = ranks
	}

	return r, nil
}

// PopulationMatrix counts, for each sampling point k, how many repetitions
// attained each rank value: P[rk][k] = |{i : R[i][k] = rk}|. The result is
// the square (n_s, n_s) population matrix — one fixed-length histogram of
// ranks per column, regardless of the observed rank range.
//
// When R was produced by a permutation ranking method, every row and every
// column of P sums to n_r exactly.
//
// Returns ErrEmptyMatrix, ErrRaggedMatrix, or ErrRankRange (wrapping the
// offending position) when a rank lies outside [0, n_s).
// Complexity: O(n_r · n_s) time, O(n_s²) memory.
func PopulationMatrix(r [][]int) ([][]int, error) {
	if err := validateRectangular(r); err != nil {
		return nil, err
	}
	nS := len(r[0])

	p := make([][]int, nS)
	for rk := range p {
		p[rk] = make([]int, nS)
	}
	for i, row := range r {
		for k, rk := range row {
			if rk < 0 || rk >= nS {
				return nil, fmt.Errorf("%w: R[%d][%d] = %d, want 0..%d", ErrRankRange, i, k, rk, nS-1)
			}
			p[rk][k]++
		}
	}

	return p, nil
}

// DataToQMatrix composes RankMatrix → PopulationMatrix → QMatrix: the full
// universal rank-order transform from a data matrix to its Q matrix.
//
// Only permutation ranking methods (rank.Ordinal, rank.Random) guarantee
// the sum rule QMatrix validates; competition methods generally fail it.
// Complexity: O(n_r · n_s log n_s + n_s²) time.
func DataToQMatrix(a [][]float64, method rank.Method, rng *rand.Rand) ([][]float64, error) {
	r, err := RankMatrix(a, method, rng)
	if err != nil {
		return nil, err
	}
	p, err := PopulationMatrix(r)
	if err != nil {
		return nil, err
	}

	return QMatrix(toFloat(p), len(a))
}

// toFloat widens an integer matrix to float64 for the Q computation.
func toFloat(p [][]int) [][]float64 {
	f := make([][]float64, len(p))
	for i, row := range p {
		f[i] = make([]float64, len(row))
		for j, v := range row {
			f[i][j] = float64(v)
		}
	}

	return f
}

// validateRectangular rejects empty or ragged matrices.
func validateRectangular[T int | float64](m [][]T) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmptyMatrix
	}
	w := len(m[0])
	for i := 1; i < len(m); i++ {
		if len(m[i]) != w {
			return fmt.Errorf("%w: row %d has length %d, want %d", ErrRaggedMatrix, i, len(m[i]), w)
		}
	}

	return nil
}
