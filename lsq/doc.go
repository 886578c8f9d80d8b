// Package lsq solves restricted least-squares problems for variance
// decomposition: given a design matrix X, a response y and a mask of
// retained columns, it returns the explained sum of squares β′X′y of the
// restricted fit, with a rank-aware factorization of the normal equations.
//
// 🚀 What is lsq?
//
//	The innermost kernel of varpart. Every ANOVA type is a sequence of
//	ExplainedSS evaluations over different column subsets; lsq owns the
//	numeric part and nothing else:
//	  • Column restriction via an explicit ColumnMask (no hidden set state)
//	  • Exact mode: non-pivoted Cholesky of X′X, fails on singular designs
//	  • Rank-deficient mode: diagonal-pivoted Cholesky with a numerical
//	    tolerance; aliased coefficients are exactly zero
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varpart/lsq"
//
//	mask := lsq.MaskOf(p, []int{0, 1, 3})        // keep columns 0, 1 and 3
//	ss, err := lsq.ExplainedSS(x, y, mask, lsq.AllowRankDeficient)
//
// Concurrency:
//
//	ExplainedSS and Coefficients are pure: every call allocates its own
//	restricted design, normal-equations matrix and coefficient buffer, and
//	borrows X and y read-only. Concurrent evaluations over distinct masks
//	are safe without external locking.
//
// Performance:
//
//   - Time:   O(n·k²) to form X′X plus O(k³) to factorize, k = kept columns
//   - Memory: O(n·k) for the restricted design view
//
// Errors are package-level sentinels (see errors.go) matched via errors.Is.
package lsq
