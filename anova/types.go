// Package anova: public types and functional options.
package anova

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varpart/lsq"
)

// Type selects the sum-of-squares convention.
type Type int

const (
	// TypeI is the sequential decomposition (model-building order).
	TypeI Type = iota + 1

	// TypeII is the marginal decomposition (marginality-respecting).
	TypeII

	// TypeIII is the orthogonal decomposition (order-independent).
	TypeIII
)

// String reports the conventional roman-numeral name of the type.
func (t Type) String() string {
	switch t {
	case TypeI:
		return "I"
	case TypeII:
		return "II"
	case TypeIII:
		return "III"
	default:
		return "invalid"
	}
}

// ModelView is the borrowed view of an already-fitted linear model. The
// decomposer only reads it; it never mutates the caller's model, and any
// coefficient scratch lives inside the kernel call.
//
// X      – design matrix, n observations × p columns.
// Y      – response vector, length n.
// Assign – term assignment mapping each column to its term id (see
//
//	Assignment for the well-formedness rules).
//
// TermFactors – optional factor sets generating each term, indexed by
//
//	term id − 1 (e.g. {"a"}, {"b"}, {"a","b"} for y ~ a + b + a:b).
//	Required for Type II only, where marginality is a relation on
//	factor sets rather than on column spans.
type ModelView struct {
	X           *mat.Dense
	Y           *mat.VecDense
	Assign      Assignment
	TermFactors [][]string
}

// Table is the fixed-effects ANOVA result: parallel per-row sequences with
// one trailing residual row. FStat and PValue of the residual row are NaN.
// A Table is created once per Decompose call and immutable thereafter.
type Table struct {
	Type   Type
	NObs   int
	SS     []float64
	DF     []int
	FStat  []float64
	PValue []float64
}

// Options configures the decomposer.
//
// RankMode  – factorization strategy per SS evaluation. Default lsq.Exact;
//
//	choose lsq.AllowRankDeficient for collinear designs.
//
// Tolerance – relative pivot threshold for rank detection (rank-deficient
//
//	mode only). Default lsq.DefaultTolerance.
type Options struct {
	RankMode  lsq.RankMode
	Tolerance float64
}

// Option represents a functional option for configuring Decompose.
type Option func(*Options)

// WithRankMode selects the factorization strategy used by every SS
// evaluation of the decomposition.
func WithRankMode(mode lsq.RankMode) Option {
	return func(o *Options) {
		o.RankMode = mode
	}
}

// WithTolerance sets the relative pivot threshold forwarded to the kernel.
// Validation happens inside lsq.WithTolerance at evaluation time.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults.
//
// Defaults:
//   - RankMode:  lsq.Exact (fail loudly on singular subsets).
//   - Tolerance: lsq.DefaultTolerance.
func DefaultOptions() Options {
	return Options{
		RankMode:  lsq.Exact,
		Tolerance: lsq.DefaultTolerance,
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
