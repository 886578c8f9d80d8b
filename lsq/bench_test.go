package lsq_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varpart/lsq"
)

// benchmarkExplainedSS runs the kernel on an n×p synthetic design in the
// given mode. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkExplainedSS(b *testing.B, n, p int, mode lsq.RankMode) {
	data := make([]float64, n*p)
	for i := range data {
		// Deterministic full-rank-ish fill.
		data[i] = float64((i*2654435761)%1000)/1000.0 + 0.001
	}
	x := mat.NewDense(n, p, data)
	yd := make([]float64, n)
	for i := range yd {
		yd[i] = float64(i % 17)
	}
	y := mat.NewVecDense(n, yd)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lsq.ExplainedSS(x, y, nil, mode); err != nil {
			b.Fatalf("ExplainedSS failed: %v", err)
		}
	}
}

// BenchmarkExplainedSS_ExactSmall benchmarks the exact path on a 100×10 design.
func BenchmarkExplainedSS_ExactSmall(b *testing.B) {
	benchmarkExplainedSS(b, 100, 10, lsq.Exact)
}

// BenchmarkExplainedSS_ExactMedium benchmarks the exact path on a 1000×30 design.
func BenchmarkExplainedSS_ExactMedium(b *testing.B) {
	benchmarkExplainedSS(b, 1000, 30, lsq.Exact)
}

// BenchmarkExplainedSS_PivotedSmall benchmarks the pivoted path on a 100×10 design.
func BenchmarkExplainedSS_PivotedSmall(b *testing.B) {
	benchmarkExplainedSS(b, 100, 10, lsq.AllowRankDeficient)
}

// BenchmarkExplainedSS_PivotedMedium benchmarks the pivoted path on a 1000×30 design.
func BenchmarkExplainedSS_PivotedMedium(b *testing.B) {
	benchmarkExplainedSS(b, 1000, 30, lsq.AllowRankDeficient)
}
