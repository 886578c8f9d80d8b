// Package mixed: the mixed-model decomposer. F statistics are computed in
// the whitened space and tested against the error stratum matching each
// term's between/within classification.

package mixed

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/varpart/anova"
)

// Decompose computes the mixed-model ANOVA table of the fitted model view m.
//
// Contract:
//   - t must be TypeI or TypeIII. Type II fails with ErrUnsupportedAnovaType;
//     anything else with anova.ErrInvalidAnovaType.
//   - Exactly one random-effect grouping must be supplied
//     (ErrMissingGrouping / ErrMultipleRandomFactors).
//   - m.Assign must be well-formed over the fixed-effect columns.
//
// The returned table has one row per fixed term plus two error rows: the
// between-subject residual stratum and the within-subject residual stratum.
func Decompose(m ModelView, t anova.Type, opts ...Option) (*Table, error) {
	switch t {
	case anova.TypeI, anova.TypeIII:
	case anova.TypeII:
		return nil, ErrUnsupportedAnovaType
	default:
		return nil, anova.ErrInvalidAnovaType
	}
	switch {
	case len(m.Groupings) == 0:
		return nil, ErrMissingGrouping
	case len(m.Groupings) > 1:
		return nil, ErrMultipleRandomFactors
	}
	if err := m.Assign.Validate(); err != nil {
		return nil, err
	}

	o := gatherOptions(opts)
	ctx, err := buildContext(m, o)
	if err != nil {
		return nil, err
	}

	n, _ := m.X.Dims()
	numTerms := m.Assign.NumTerms()
	nan := math.NaN()

	rows := numTerms + 2
	ss := make([]float64, rows)
	df := make([]int, rows)
	fstat := make([]float64, rows)
	pvalue := make([]float64, rows)

	for id := 1; id <= numTerms; id++ {
		i := id - 1
		df[i] = ctx.df[i]

		f := termF(ctx, m.Assign, t, id)
		stratumMS, stratumDF := ctx.stratum(ctx.between[i])

		if df[i] <= 0 || stratumDF <= 0 || math.IsNaN(f) {
			ss[i], fstat[i], pvalue[i] = 0, nan, nan

			continue
		}
		fstat[i] = f
		// Term SS is back-computed from F via the matching stratum scale.
		ss[i] = f * float64(df[i]) * stratumMS
		pvalue[i] = distuv.F{
			D1: float64(df[i]),
			D2: float64(stratumDF),
		}.Survival(f)
	}

	// Error strata: between-subject residual, then within-subject residual.
	ss[rows-2], df[rows-2] = ctx.betweenSS, ctx.betweenDF
	ss[rows-1], df[rows-1] = ctx.withinSS, ctx.withinDF
	fstat[rows-2], pvalue[rows-2] = nan, nan
	fstat[rows-1], pvalue[rows-1] = nan, nan

	return &Table{
		Type:    t,
		NObs:    n,
		NGroups: m.NGroups,
		Between: ctx.between,
		SS:      ss,
		DF:      df,
		FStat:   fstat,
		PValue:  pvalue,
	}, nil
}

// stratum resolves the residual scale and df matching a classification:
// the between-subject stratum mean square for between terms, the residual
// variance estimate (and within df) otherwise.
func (ctx *context) stratum(between bool) (ms float64, df int) {
	if between {
		if ctx.betweenDF <= 0 {
			return math.NaN(), ctx.betweenDF
		}

		return ctx.betweenSS / float64(ctx.betweenDF), ctx.betweenDF
	}

	return ctx.sigmaSq, ctx.withinDF
}

// termF computes the F statistic of one term in the whitened space.
//
// Type I sums the squared whitened statistics over the term's columns.
// Type III first removes the other terms' contribution: with M = L′, the
// whitened statistics are projected onto the orthogonal complement of
// span(M columns of the other terms) via a thin QR, so the remaining squared
// norm is the term's unique (Wald-style) contribution.
func termF(ctx *context, assign anova.Assignment, t anova.Type, id int) float64 {
	cols := assign.TermColumns(id)
	if len(cols) == 0 {
		return math.NaN()
	}

	if t == anova.TypeI {
		vals := make([]float64, len(cols))
		for i, j := range cols {
			vals[i] = ctx.fs.AtVec(j)
		}

		return floats.Dot(vals, vals) / float64(len(cols))
	}

	p := ctx.fs.Len()
	inTerm := make(map[int]bool, len(cols))
	for _, j := range cols {
		inTerm[j] = true
	}
	var other []int
	for j := 0; j < p; j++ {
		if !inTerm[j] {
			other = append(other, j)
		}
	}
	if len(other) == 0 {
		return mat.Dot(ctx.fs, ctx.fs) / float64(len(cols))
	}

	// Collect the other terms' whitened columns M[:, other], M = L′.
	mOther := mat.NewDense(p, len(other), nil)
	for c, j := range other {
		for i := 0; i < p; i++ {
			mOther.Set(i, c, ctx.l.At(j, i)) // M[i][j] = L′[i][j] = L[j][i]
		}
	}

	var qr mat.QR
	qr.Factorize(mOther)
	var q mat.Dense
	qr.QTo(&q)
	thin := q.Slice(0, p, 0, len(other)).(*mat.Dense)

	// r = fs − Q(Q′fs): the part of fs orthogonal to the other terms.
	proj := mat.NewVecDense(len(other), nil)
	proj.MulVec(thin.T(), ctx.fs)
	back := mat.NewVecDense(p, nil)
	back.MulVec(thin, proj)
	r := mat.NewVecDense(p, nil)
	r.SubVec(ctx.fs, back)

	return mat.Dot(r, r) / float64(len(cols))
}
