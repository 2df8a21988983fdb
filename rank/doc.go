// Package rank assigns integer ranks to numeric values, dealing
// appropriately with ties.
//
// What:
//
//   - Ranks start at zero and increase with increasing value.
//   - Five tie-break policies: Ordinal, Random, Min, Max, Dense.
//   - Ordinal and Random always produce a true permutation of 0..n-1;
//     Min, Max and Dense are competition rankings where ties share a rank.
//   - NaN compares greater than any finite value and receives the
//     highest rank(s).
//
// Why:
//
//   - Rank statistics: rank-order transforms need per-repetition
//     permutations with a controlled tie policy.
//   - Reproducibility: Random tie-breaking consumes an explicit
//     *rand.Rand instead of process-wide state, so seeded runs repeat.
//
// Complexity:
//
//   - Ranks: O(n log n) time, O(n) memory (stable sort + inverse permute).
//
// Errors:
//
//   - ErrUnknownMethod: the tie-break method name is not recognized.
//   - ErrEmptyInput: the input slice is empty.
//   - ErrNilRand: method Random was requested without a random source.
package rank
