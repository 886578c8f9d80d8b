// Package anova: table assembly. Pure aggregation: mean squares, F ratios
// against the residual row, and upper-tail p-values from the F distribution.

package anova

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// assemble packages the per-row SS and df vectors (residual row last) into
// an immutable Table. MS = SS/df elementwise; F_i = MS_i / MS_residual for
// every non-residual row; p_i is the upper tail of F(df_i, df_residual) at
// |F_i|. Degenerate rows (zero df, zero residual variance) yield NaN rather
// than an error, matching the residual row's sentinel convention.
func assemble(t Type, nobs int, ss []float64, df []int) *Table {
	rows := len(ss)
	nan := math.NaN()

	fstat := make([]float64, rows)
	pvalue := make([]float64, rows)
	fstat[rows-1], pvalue[rows-1] = nan, nan

	dfErr := df[rows-1]
	var msErr float64
	if dfErr > 0 {
		msErr = ss[rows-1] / float64(dfErr)
	} else {
		msErr = nan
	}

	for i := 0; i < rows-1; i++ {
		if df[i] <= 0 || dfErr <= 0 || msErr == 0 || math.IsNaN(msErr) {
			fstat[i], pvalue[i] = nan, nan

			continue
		}
		msr := ss[i] / float64(df[i])
		fstat[i] = msr / msErr
		pvalue[i] = distuv.F{
			D1: float64(df[i]),
			D2: float64(dfErr),
		}.Survival(math.Abs(fstat[i]))
	}

	return &Table{
		Type:   t,
		NObs:   nobs,
		SS:     ss,
		DF:     df,
		FStat:  fstat,
		PValue: pvalue,
	}
}
