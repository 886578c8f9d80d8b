// Package mixed: context construction — whitening of the fixed effects,
// between/within classification, and error-stratum bookkeeping.
//
// Purpose:
//   - Stage 1: decorrelate β through L with L′ΣL = I (Cholesky of Σ⁻¹),
//     optionally rescaled for ML fits.
//   - Stage 2: classify each term by within-cluster constancy of its columns.
//   - Stage 3: derive the two error strata (df and SS).

package mixed

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// context is the per-call computed state consumed by the F tests. It is
// built once per Decompose call and read-only afterwards.
type context struct {
	l  *mat.TriDense // whitening factor, lower triangular
	fs *mat.VecDense // whitened statistics L′β

	between []bool // per-term classification, indexed by term id − 1
	df      []int  // per-term column counts

	betweenDF int
	withinDF  int
	betweenSS float64
	withinSS  float64
	sigmaSq   float64
}

// buildContext validates the model view and computes the whitened
// statistics, the classification and the stratum bookkeeping.
func buildContext(m ModelView, o Options) (*context, error) {
	if m.X == nil || m.Beta == nil || m.Cov == nil || m.Residuals == nil {
		return nil, ErrNilModel
	}
	n, p := m.X.Dims()
	cr, _ := m.Cov.Dims()
	if m.Beta.Len() != p || cr != p || m.Residuals.Len() != n || len(m.Assign) != p {
		return nil, ErrDimensionMismatch
	}
	groups := m.Groupings[0]
	gr, gc := groups.Dims()
	if gr != n || gc != m.NGroups {
		return nil, ErrDimensionMismatch
	}

	ctx := &context{df: m.Assign.DF()}

	if err := ctx.whiten(m, o); err != nil {
		return nil, err
	}
	ctx.classify(m, o)
	ctx.strata(m, n, p)

	return ctx, nil
}

// whiten computes the lower-triangular L with L′ΣL = I: factor Σ, invert it
// through the factorization, and factor the inverse. When the model was
// fitted by ML and sigma adjustment is requested, L is rescaled by
// sqrt(n/(n−p)) to match REML variance scaling.
func (ctx *context) whiten(m ModelView, o Options) error {
	n, p := m.X.Dims()

	var chol mat.Cholesky
	if ok := chol.Factorize(m.Cov); !ok {
		return ErrCovarianceNotPD
	}
	var covInv mat.SymDense
	if err := chol.InverseTo(&covInv); err != nil {
		return ErrCovarianceNotPD
	}
	var cholInv mat.Cholesky
	if ok := cholInv.Factorize(&covInv); !ok {
		return ErrCovarianceNotPD
	}

	ctx.l = mat.NewTriDense(p, mat.Lower, nil)
	cholInv.LTo(ctx.l)

	if !m.REML && o.SigmaAdjust && n > p {
		scale := math.Sqrt(float64(n) / float64(n-p))
		ctx.l.ScaleTri(scale, ctx.l)
	}

	ctx.fs = mat.NewVecDense(p, nil)
	ctx.fs.MulVec(ctx.l.T(), m.Beta)

	return nil
}

// classify marks each term between- or within-subject: a term is within iff
// at least one cluster shows variation in one of its columns. The intercept
// (term id 1) is always between=false by convention — it is absorbed into
// the between-subject stratum structure. ForceBetween overrides the scan
// for the listed non-intercept terms.
func (ctx *context) classify(m ModelView, o Options) {
	forced := make(map[int]bool, len(o.ForceBetween))
	for _, id := range o.ForceBetween {
		if id > 1 {
			forced[id] = true
		}
	}

	numTerms := m.Assign.NumTerms()
	ctx.between = make([]bool, numTerms)
	for id := 2; id <= numTerms; id++ {
		if forced[id] {
			ctx.between[id-1] = true

			continue
		}
		ctx.between[id-1] = ctx.constantWithinClusters(m, o.ConstancyTol, m.Assign.TermColumns(id))
	}
}

// constantWithinClusters reports whether every listed column is constant
// inside every random-effect cluster of the single grouping.
func (ctx *context) constantWithinClusters(m ModelView, tol float64, cols []int) bool {
	groups := m.Groupings[0]
	n, _ := m.X.Dims()
	for _, j := range cols {
		for g := 0; g < m.NGroups; g++ {
			first := -1
			for i := 0; i < n; i++ {
				if groups.At(i, g) == 0 {
					continue
				}
				if first < 0 {
					first = i

					continue
				}
				if math.Abs(m.X.At(i, j)-m.X.At(first, j)) > tol {
					return false
				}
			}
		}
	}

	return true
}

// strata derives the two error strata. The between-subject cell count is
// the product of level counts (df+1) over the between-subject terms; with g
// clusters the between-subject residual df is cells × (g/cells − 1), which
// reduces to g − cells for balanced designs. The within-subject residual df
// absorbs the remaining observations: n − betweenDF − p.
//
// Between-subject residual SS is the sum of squared model residuals; the
// within-subject residual SS is the variance estimate times its df.
func (ctx *context) strata(m ModelView, n, p int) {
	cells := 1
	for idx, btw := range ctx.between {
		if btw {
			cells *= ctx.df[idx] + 1
		}
	}

	ctx.betweenDF = m.NGroups - cells
	ctx.withinDF = n - ctx.betweenDF - p

	ctx.betweenSS = mat.Dot(m.Residuals, m.Residuals)
	ctx.sigmaSq = m.SigmaSq
	ctx.withinSS = m.SigmaSq * float64(ctx.withinDF)
}
