// Package rank implements rank assignment with tie-break policies.
// Implementation follows the stable-argsort + inverse-permutation scheme:
// the rank of a[i] is the position of i in the stable sorting permutation.
package rank

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
)

// Ranks assigns integer ranks to the values in a according to method.
// Ranks start at zero and increase with increasing value; NaN receives
// the highest rank(s).
//
// For Ordinal and Random the result is a permutation of 0..n-1.
// For Min, Max and Dense tied values share a rank (competition ranking).
//
// The random source rng is consumed only by method Random, which shuffles
// tied groups uniformly while preserving the relative order of non-tied
// values exactly. Passing a seeded *rand.Rand makes runs reproducible.
//
// Returns ErrUnknownMethod (naming the offending method), ErrEmptyInput,
// or ErrNilRand. The input slice is never mutated.
// Complexity: O(n log n) time, O(n) memory.
func Ranks(a []float64, method Method, rng *rand.Rand) ([]int, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, string(method))
	}
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if method == Random && rng == nil {
		return nil, ErrNilRand
	}

	switch method {
	case Random:
		return randomRanks(a, rng), nil
	case Ordinal:
		return ordinalRanks(a), nil
	default:
		return competitionRanks(a, method), nil
	}
}

// ordinalRanks resolves ties by position: ranks = sorter^{-1}.
func ordinalRanks(a []float64) []int {
	sorter := stableSorter(a)
	ranks := make([]int, len(a))
	for r, i := range sorter {
		ranks[i] = r
	}

	return ranks
}

// randomRanks permutes the input positions, ranks the permuted slice with
// the ordinal rule, then un-applies the permutation. Non-tied relative
// order survives the round trip; tied groups end up uniformly shuffled.
func randomRanks(a []float64, rng *rand.Rand) []int {
	n := len(a)
	perm := rng.Perm(n)

	shuffled := make([]float64, n)
	for i, p := range perm {
		shuffled[i] = a[p]
	}
	permuted := ordinalRanks(shuffled)

	ranks := make([]int, n)
	for i, p := range perm {
		ranks[p] = permuted[i]
	}

	return ranks
}

// competitionRanks implements the Min, Max and Dense policies by walking
// tied groups along the sorting permutation.
func competitionRanks(a []float64, method Method) []int {
	n := len(a)
	sorter := stableSorter(a)
	ranks := make([]int, n)

	dense := 0 // index of the current tied group
	for start := 0; start < n; {
		end := start + 1
		for end < n && equalValues(a[sorter[end]], a[sorter[start]]) {
			end++
		}

		var r int
		switch method {
		case Min:
			r = start
		case Max:
			r = end - 1
		case Dense:
			r = dense
		}
		for i := start; i < end; i++ {
			ranks[sorter[i]] = r
		}

		dense++
		start = end
	}

	return ranks
}

// stableSorter returns the indices that sort a ascending, preserving the
// original order of equal values (mergesort-stable semantics).
func stableSorter(a []float64) []int {
	idx := make([]int, len(a))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(p, q int) bool {
		return lessValue(a[idx[p]], a[idx[q]])
	})

	return idx
}

// lessValue orders x before y with NaN greater than any other value.
func lessValue(x, y float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if math.IsNaN(y) {
		return true
	}

	return x < y
}

// equalValues reports whether two values belong to the same tied group.
// Two NaNs tie with each other.
func equalValues(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}
