package mixed_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varpart/anova"
	"github.com/katalvlaran/varpart/mixed"
)

// ExampleDecompose_repeatedMeasures decomposes a small repeated-measures fit:
// 4 subjects observed twice, a two-level between-subject treatment and a
// within-subject time covariate.
//
// Scenario:
//  1. Build the fixed-effect view of the fitted model: design, coefficients
//     β = (1, 2, 3) with identity covariance, residuals and σ² = 0.5.
//  2. Decompose with Type I. The treatment is tested against the
//     between-subject stratum, intercept and time against the within-subject
//     stratum.
func ExampleDecompose_repeatedMeasures() {
	n, g := 8, 4

	x := mat.NewDense(n, 3, nil)
	groups := mat.NewDense(n, g, nil)
	res := make([]float64, n)
	for s := 0; s < g; s++ {
		for k := 0; k < 2; k++ {
			i := s*2 + k
			x.Set(i, 0, 1)
			if s >= 2 {
				x.Set(i, 1, 1) // treatment for subjects 3 and 4
			}
			x.Set(i, 2, float64(k)) // time, varies within subject
			groups.Set(i, s, 1)
			res[i] = 0.5 - float64(k)
		}
	}

	m := mixed.ModelView{
		X:         x,
		Beta:      mat.NewVecDense(3, []float64{1, 2, 3}),
		Cov:       mat.NewSymDense(3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}),
		Residuals: mat.NewVecDense(n, res),
		Assign:    anova.Assignment{1, 2, 3},
		Groupings: []*mat.Dense{groups},
		NGroups:   g,
		REML:      true,
		SigmaSq:   0.5,
	}

	table, err := mixed.Decompose(m, anova.TypeI)
	if err != nil {
		fmt.Println("decompose failed:", err)

		return
	}

	fmt.Printf("groups=%d between=%v\n", table.NGroups, table.Between)
	fmt.Printf("ss=%.1f df=%d\n", table.SS, table.DF)
	fmt.Printf("F(treatment)=%.0f p=%.2f\n", table.FStat[1], table.PValue[1])
	fmt.Printf("F(time)=%.0f p=%.2f\n", table.FStat[2], table.PValue[2])

	// Output:
	// groups=4 between=[false true false]
	// ss=[0.5 4.0 4.5 2.0 1.5] df=[1 1 1 2 3]
	// F(treatment)=4 p=0.18
	// F(time)=9 p=0.06
}
