// Package varpart partitions the explained variance of already-fitted
// linear and linear mixed-effects models into per-term analysis-of-variance
// (ANOVA) tables — sums of squares, degrees of freedom, F statistics and
// p-values under the classical Type I / II / III conventions.
//
// 🚀 What is varpart?
//
//	A numeric library that consumes a fitted model view (design matrix,
//	response, term assignment, and for mixed models the fixed-effect
//	covariance and a random-effect grouping) and returns only the ANOVA
//	quantities:
//		• Sequential (Type I), marginal (Type II), orthogonal (Type III) SS
//		• Rank-aware least-squares kernel with a pivoted-Cholesky path
//		• Between/within-subject F tests for single-grouping mixed models
//
// ✨ Why choose varpart?
//
//   - Fitting-free – bring any fitted model; varpart never estimates
//   - Rank-deficient safe – aliased columns resolve to exact-zero coefficients
//   - Reentrant – every evaluation owns its scratch; calls may run in parallel
//   - Explicit errors – sentinel errors, no panics on user input
//
// Under the hood, everything is organized under three subpackages:
//
//	lsq/   — restricted least-squares kernel: column masks, exact and
//	         pivoted Cholesky factorizations, explained sums of squares
//	anova/ — fixed-effects decomposer: term assignment, Type I/II/III
//	         ordering, table assembly with F-distribution tails
//	mixed/ — mixed-model extension: whitened fixed effects, between/within
//	         classification, two error strata
//
// Quick sketch:
//
//	table, err := anova.Decompose(anova.ModelView{
//	    X: x, Y: y, Assign: anova.Assignment{1, 2, 2, 3},
//	}, anova.TypeIII)
//
// Dive into the per-package doc.go files for contracts, invariants and the
// numerical details of the rank-deficient path.
//
//	go get github.com/katalvlaran/varpart
package varpart
