package mixed_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varpart/anova"
	"github.com/katalvlaran/varpart/mixed"
)

// benchView builds a repeated-measures view with g subjects, obs
// observations each and p fixed-effect columns (one term per column).
func benchView(g, obs, p int) mixed.ModelView {
	n := g * obs

	x := mat.NewDense(n, p, nil)
	groups := mat.NewDense(n, g, nil)
	res := make([]float64, n)
	beta := make([]float64, p)
	assign := make(anova.Assignment, p)
	cov := mat.NewSymDense(p, nil)
	for j := 0; j < p; j++ {
		beta[j] = 1 + float64(j)*0.1
		assign[j] = j + 1
		cov.SetSym(j, j, 1)
	}
	for s := 0; s < g; s++ {
		for k := 0; k < obs; k++ {
			i := s*obs + k
			x.Set(i, 0, 1)
			for j := 1; j < p; j++ {
				// Distinct frequencies keep the columns varying within subjects.
				x.Set(i, j, math.Sin(float64((i+1)*j)*0.1))
			}
			groups.Set(i, s, 1)
			res[i] = math.Cos(float64(i))
		}
	}

	return mixed.ModelView{
		X:         x,
		Beta:      mat.NewVecDense(p, beta),
		Cov:       cov,
		Residuals: mat.NewVecDense(n, res),
		Assign:    assign,
		Groupings: []*mat.Dense{groups},
		NGroups:   g,
		REML:      true,
		SigmaSq:   1,
	}
}

func benchmarkDecompose(b *testing.B, t anova.Type, g, obs, p int) {
	m := benchView(g, obs, p)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mixed.Decompose(m, t); err != nil {
			b.Fatalf("Decompose: %v", err)
		}
	}
}

func BenchmarkDecompose_TypeI_Small(b *testing.B)    { benchmarkDecompose(b, anova.TypeI, 10, 4, 5) }
func BenchmarkDecompose_TypeI_Medium(b *testing.B)   { benchmarkDecompose(b, anova.TypeI, 50, 8, 12) }
func BenchmarkDecompose_TypeIII_Small(b *testing.B)  { benchmarkDecompose(b, anova.TypeIII, 10, 4, 5) }
func BenchmarkDecompose_TypeIII_Medium(b *testing.B) { benchmarkDecompose(b, anova.TypeIII, 50, 8, 12) }
