// Package lsq: column masks, rank modes and functional options.
package lsq

import "math"

// RankMode selects the factorization strategy for the normal equations.
//
//   - Exact              — non-pivoted Cholesky; fails with ErrSingularDesign
//     when X′X is not positive definite.
//   - AllowRankDeficient — diagonal-pivoted Cholesky with a numerical
//     tolerance; the aliased subspace is dropped and its coefficients are
//     exactly zero. SS from a rank-deficient subset is a reduced-rank
//     projection; callers must interpret dropped coefficients accordingly.
type RankMode int

const (
	// Exact mode: plain Cholesky, deterministic failure on singular designs.
	Exact RankMode = iota

	// AllowRankDeficient mode: pivoted Cholesky with tolerance-based rank cut.
	AllowRankDeficient
)

// DefaultTolerance is the relative pivot threshold for rank detection in
// AllowRankDeficient mode: a pivot is treated as zero when it falls below
// DefaultTolerance times the largest initial diagonal entry of X′X.
const DefaultTolerance = 1e-8

// ColumnMask marks which design-matrix columns a restricted fit retains.
// Index i corresponds to column i of X; true means the column is kept.
// A ColumnMask is constructed once per SS evaluation and passed explicitly
// (no mutated set membership crosses evaluations).
type ColumnMask []bool

// KeepAll returns a mask of width p retaining every column.
func KeepAll(p int) ColumnMask {
	m := make(ColumnMask, p)
	for i := range m {
		m[i] = true
	}

	return m
}

// MaskOf returns a mask of width p retaining exactly the listed columns.
// Out-of-range indices are ignored.
func MaskOf(p int, keep []int) ColumnMask {
	m := make(ColumnMask, p)
	for _, j := range keep {
		if j >= 0 && j < p {
			m[j] = true
		}
	}

	return m
}

// Count reports the number of retained columns.
func (m ColumnMask) Count() int {
	n := 0
	for _, keep := range m {
		if keep {
			n++
		}
	}

	return n
}

// Indices returns the retained column indices in ascending order.
func (m ColumnMask) Indices() []int {
	idx := make([]int, 0, m.Count())
	for j, keep := range m {
		if keep {
			idx = append(idx, j)
		}
	}

	return idx
}

// Options configures a single kernel evaluation.
//
// Tolerance – relative pivot threshold for rank detection (AllowRankDeficient
// mode only). Must be finite and ≥ 0. Default is DefaultTolerance.
type Options struct {
	Tolerance float64
}

// Option represents a functional option for configuring the kernel.
type Option func(*Options)

// WithTolerance sets the relative pivot threshold used for numerical rank
// detection. Panics on NaN, ±Inf or negative values (programmer error).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
			panic(panicToleranceInvalid)
		}
		o.Tolerance = tol
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as a starting point for functional-option overrides.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
