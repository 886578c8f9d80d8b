// Package mixed extends the ANOVA decomposition to linear mixed-effects
// models with a single random-effect grouping factor: it classifies each
// fixed-effect term as between- or within-subject and computes F tests from
// the fixed-effect covariance structure against the matching error stratum.
//
// 🚀 How it works
//
//	The fixed-effect estimates are decorrelated through a whitening factor L
//	(Cholesky of the inverse covariance, so that L′ΣL = I) into statistics
//	fs = L′β. A term whose columns are constant inside every random-effect
//	cluster is between-subject and is tested against the between-subject
//	residual stratum; a term that varies inside some cluster is
//	within-subject and is tested against the residual variance estimate.
//	  • Type I  — F = Σ fs² over the term's columns, divided by its df
//	  • Type III — fs is first re-orthogonalized against the other terms'
//	    whitened columns via a QR projection
//	  • Type II is not defined for mixed models here (ErrUnsupportedAnovaType)
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/varpart/anova"
//	    "github.com/katalvlaran/varpart/mixed"
//	)
//
//	table, err := mixed.Decompose(mixed.ModelView{
//	    X: x, Beta: beta, Cov: cov, Residuals: res,
//	    Assign:    anova.Assignment{1, 2, 3},
//	    Groupings: []*mat.Dense{incidence},
//	    NGroups:   g, REML: true, SigmaSq: s2,
//	}, anova.TypeI)
//
// The resulting table carries two trailing error rows — the between-subject
// residual stratum and the within-subject residual stratum — instead of the
// single residual row of the fixed-effects table.
//
// Caveat: the Type III orthogonalization reproduces reference F statistics
// for the balanced designs pinned in the tests; designs with more than two
// levels per between-subject factor should be cross-checked against a
// reference implementation.
package mixed
