package transform_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/rankorder/transform"
)

// benchmarkQ runs one of the Q implementations on a sum-completed random
// population matrix of side nS. It resets the timer after setup and fails
// on unexpected errors.
func benchmarkQ(b *testing.B, nS int, compute func([][]float64, int) ([][]float64, error)) {
	const nRep = 16
	rng := rand.New(rand.NewSource(42))
	p := sumifiedMatrix(rng, nS, nRep)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := compute(p, nRep); err != nil {
			b.Fatalf("Q computation failed: %v", err)
		}
	}
}

// BenchmarkQMatrix_Fast20 benchmarks the closed form at n_s = 20.
func BenchmarkQMatrix_Fast20(b *testing.B) {
	benchmarkQ(b, 20, transform.QMatrix)
}

// BenchmarkQMatrix_Fast50 benchmarks the closed form at n_s = 50.
func BenchmarkQMatrix_Fast50(b *testing.B) {
	benchmarkQ(b, 50, transform.QMatrix)
}

// BenchmarkQMatrix_Fast200 benchmarks the closed form at n_s = 200.
func BenchmarkQMatrix_Fast200(b *testing.B) {
	benchmarkQ(b, 200, transform.QMatrix)
}

// BenchmarkQMatrix_Direct20 benchmarks the partition formula at n_s = 20.
func BenchmarkQMatrix_Direct20(b *testing.B) {
	benchmarkQ(b, 20, transform.QMatrixDirect)
}

// BenchmarkQMatrix_Direct50 benchmarks the partition formula at n_s = 50.
func BenchmarkQMatrix_Direct50(b *testing.B) {
	benchmarkQ(b, 50, transform.QMatrixDirect)
}
