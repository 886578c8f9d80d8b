package anova_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varpart/anova"
)

// benchmarkDecompose runs a decomposition over a synthetic design with the
// given number of single-column terms (plus intercept) and observations.
func benchmarkDecompose(b *testing.B, n, terms int, typ anova.Type) {
	p := terms + 1
	x := mat.NewDense(n, p, nil)
	yd := make([]float64, n)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j := 1; j < p; j++ {
			// Distinct frequencies keep the columns linearly independent.
			x.Set(i, j, math.Sin(float64((i+1)*j)*0.1))
		}
		yd[i] = float64(i%7) + 0.25*float64(i%3)
	}
	assign := make(anova.Assignment, p)
	for j := range assign {
		assign[j] = j + 1
	}
	m := anova.ModelView{X: x, Y: mat.NewVecDense(n, yd), Assign: assign}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := anova.Decompose(m, typ); err != nil {
			b.Fatalf("Decompose failed: %v", err)
		}
	}
}

// BenchmarkDecompose_TypeISmall benchmarks Type I on 200 obs × 5 terms.
func BenchmarkDecompose_TypeISmall(b *testing.B) {
	benchmarkDecompose(b, 200, 5, anova.TypeI)
}

// BenchmarkDecompose_TypeIMedium benchmarks Type I on 2000 obs × 15 terms.
func BenchmarkDecompose_TypeIMedium(b *testing.B) {
	benchmarkDecompose(b, 2000, 15, anova.TypeI)
}

// BenchmarkDecompose_TypeIIISmall benchmarks Type III on 200 obs × 5 terms.
func BenchmarkDecompose_TypeIIISmall(b *testing.B) {
	benchmarkDecompose(b, 200, 5, anova.TypeIII)
}

// BenchmarkDecompose_TypeIIIMedium benchmarks Type III on 2000 obs × 15 terms.
func BenchmarkDecompose_TypeIIIMedium(b *testing.B) {
	benchmarkDecompose(b, 2000, 15, anova.TypeIII)
}
