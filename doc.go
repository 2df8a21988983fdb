// Package rankorder implements the universal rank-order transform — a
// distribution-free statistic for detecting systematic structure in noisy
// repeated measurements — and a regression-error metric built on top of it.
//
// 🚀 What is rankorder?
//
//	A pure-Go library for analyzing repeated measurements without assuming
//	anything about the noise distribution:
//	  • Ranking: tie-aware rank assignment (ordinal, random, min, max, dense)
//	  • Transform: data matrix → rank matrix → population matrix → Q matrix
//	  • Fitting: rank-order residual error (Q RMS) as a minimizer objective
//
// ✨ Why choose rankorder?
//
//   - Distribution-free – only rank information enters the statistic
//   - Fast – closed-form O(n²) Q computation from 2-D prefix sums,
//     verified against the direct O(n⁴) partition formula
//   - Deterministic – no global state; random tie-breaking takes an
//     explicit, seedable random source
//   - Pure Go – no cgo
//
// Everything is organized under three subpackages:
//
//	rank/      — rank assignment with tie-break policies
//	transform/ — rank, population and Q matrices
//	fit/       — residual Q-RMS error for regression with external minimizers
//
// Method presented in the following publication:
// G. Ierley and A. Kostinski. Phys. Rev. X 9, 031039.
//
// Dive into examples/ for runnable demos: the transform on noisy linear
// trends, and regression with gonum's Nelder–Mead driving the Q-RMS error.
//
//	go get github.com/katalvlaran/rankorder
package rankorder
