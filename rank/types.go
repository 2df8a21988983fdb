// Package rank defines tie-break methods and sentinel errors
// for the rank subpackage of github.com/katalvlaran/rankorder.
package rank

import "errors"

// Sentinel errors for rank operations.
var (
	// ErrUnknownMethod indicates an unrecognized tie-break method name.
	ErrUnknownMethod = errors.New("rank: unknown ranking method")
	// ErrEmptyInput indicates the input slice has no elements.
	ErrEmptyInput = errors.New("rank: input slice must be non-empty")
	// ErrNilRand indicates method Random was used without a random source.
	ErrNilRand = errors.New("rank: method Random requires a non-nil *rand.Rand")
)

// Method selects the tie-break policy used when assigning ranks.
//
// Only Ordinal and Random yield a permutation of 0..n-1; the competition
// methods (Min, Max, Dense) let tied values share a rank and therefore do
// not preserve the per-row sum rule required by the population matrix.
type Method string

const (
	// Ordinal gives every value a distinct rank; ties are resolved by
	// position in the slice (earlier value → lower rank).
	Ordinal Method = "ordinal"
	// Random is like Ordinal, but ranks within a tied group are assigned
	// in uniformly random order. Requires a *rand.Rand.
	Random Method = "random"
	// Min assigns each tied group the lowest rank of the group.
	Min Method = "min"
	// Max assigns each tied group the highest rank of the group.
	Max Method = "max"
	// Dense assigns tied groups consecutive ranks without gaps.
	Dense Method = "dense"
)

// Valid reports whether m names a supported tie-break method.
// Complexity: O(1).
func (m Method) Valid() bool {
	switch m {
	case Ordinal, Random, Min, Max, Dense:
		return true
	default:
		return false
	}
}

// Permutation reports whether m always produces a permutation of 0..n-1.
// Only permutation methods preserve the population-matrix sum rule.
// Complexity: O(1).
func (m Method) Permutation() bool {
	return m == Ordinal || m == Random
}
