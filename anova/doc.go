// Package anova decomposes the explained variance of a fitted linear model
// into per-term sums of squares under the three classical conventions, and
// assembles the resulting ANOVA table (SS, df, F, p).
//
// 🚀 What are Type I / II / III?
//
//	Correlated model terms overlap in explanatory power; the three types are
//	conventions for attributing the overlap:
//	  • Type I   — sequential: each term is charged the increment it adds in
//	    model-building order (order-dependent, variance-conserving).
//	  • Type II  — marginal: each term is tested against the sub-model of
//	    all terms not containing it (marginality-respecting).
//	  • Type III — orthogonal: each term's unique contribution after
//	    adjusting for every other term (order-independent).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varpart/anova"
//
//	m := anova.ModelView{X: x, Y: y, Assign: anova.Assignment{1, 2, 2, 3}}
//	table, err := anova.Decompose(m, anova.TypeIII)
//
// The ModelView is borrowed read-only; every evaluation allocates its own
// scratch, so Decompose is reentrant and tables are immutable once returned.
//
// Conventions:
//
//   - The table has one trailing residual row; its FStat and PValue are NaN.
//   - A zero-width leading term (a formula whose intercept contributes no
//     columns) is dropped from the table after decomposition.
//   - Type II needs ModelView.TermFactors to resolve marginality; the other
//     types derive everything from the assignment alone.
//
// Errors are package-level sentinels matched via errors.Is; numeric edge
// cases (zero residual df, zero-variance term) propagate as NaN instead.
package anova
