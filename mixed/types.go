// Package mixed: public types and functional options.
package mixed

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varpart/anova"
)

// ModelView is the borrowed view of an already-fitted linear mixed-effects
// model. Only read; never mutated.
//
// X         – fixed-effects design matrix, n × p.
// Beta      – fixed-effect estimates, length p.
// Cov       – fixed-effect covariance matrix, p × p, symmetric positive
//
//	definite.
//
// Residuals – model residuals, length n.
// Assign    – term assignment over the fixed-effect columns.
// Groupings – random-effect incidence matrices (n × groups, 0/1 entries);
//
//	exactly one grouping factor is supported.
//
// NGroups   – number of random-effect clusters in the single grouping.
// REML      – whether the model was fitted by restricted maximum likelihood;
//
//	affects the optional sigma rescaling of the whitening factor.
//
// SigmaSq   – residual variance estimate of the fit.
type ModelView struct {
	X         *mat.Dense
	Beta      *mat.VecDense
	Cov       *mat.SymDense
	Residuals *mat.VecDense
	Assign    anova.Assignment
	Groupings []*mat.Dense
	NGroups   int
	REML      bool
	SigmaSq   float64
}

// Table is the mixed-model ANOVA result. It has one row per fixed-effect
// term plus two trailing error rows: the between-subject residual stratum
// followed by the within-subject residual stratum. FStat and PValue of both
// error rows are NaN. Between holds the per-term classification (indexed by
// term id − 1); the intercept term is always false.
type Table struct {
	Type    anova.Type
	NObs    int
	NGroups int
	Between []bool
	SS      []float64
	DF      []int
	FStat   []float64
	PValue  []float64
}

// DefaultConstancyTol is the absolute tolerance used when testing whether a
// term's column is constant inside a random-effect cluster.
const DefaultConstancyTol = 1e-8

// Options configures the mixed-model decomposition.
//
// SigmaAdjust  – rescale the whitening factor by sqrt(n/(n−rank)) when the
//
//	model was fitted by ML rather than REML, matching REML
//	variance scaling. Default true. No effect when REML is set.
//
// ForceBetween – term ids forced into between-subject status regardless of
//
//	the constancy scan (the intercept stays between=false).
//
// ConstancyTol – absolute tolerance for the within-cluster constancy scan.
type Options struct {
	SigmaAdjust  bool
	ForceBetween []int
	ConstancyTol float64
}

// Option represents a functional option for configuring Decompose.
type Option func(*Options)

// WithoutSigmaAdjust disables the ML-fit whitening rescale.
func WithoutSigmaAdjust() Option {
	return func(o *Options) {
		o.SigmaAdjust = false
	}
}

// WithForceBetween forces the listed term ids into between-subject status.
// The intercept term (id 1) cannot be forced and is ignored if listed.
func WithForceBetween(ids ...int) Option {
	return func(o *Options) {
		o.ForceBetween = append(o.ForceBetween, ids...)
	}
}

// WithConstancyTol sets the absolute tolerance of the constancy scan.
func WithConstancyTol(tol float64) Option {
	return func(o *Options) {
		o.ConstancyTol = tol
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults.
//
// Defaults:
//   - SigmaAdjust:  true (rescale for ML fits).
//   - ForceBetween: none.
//   - ConstancyTol: DefaultConstancyTol.
func DefaultOptions() Options {
	return Options{
		SigmaAdjust:  true,
		ConstancyTol: DefaultConstancyTol,
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
