// Package anova: the fixed-effects decomposer. Each convention is a term
// ordering over restricted SS evaluations issued to the lsq kernel; the
// evaluations per term are independent and share no mutable state.

package anova

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varpart/lsq"
)

// Decompose computes the ANOVA table of the fitted model view m under the
// requested convention.
//
// Contract:
//   - t must be TypeI, TypeII or TypeIII; otherwise ErrInvalidAnovaType.
//   - m.Assign must be well-formed and match the width of m.X; m.Y must
//     match its height.
//   - Type II additionally requires m.TermFactors (ErrMissingTermFactors).
//
// The returned table has one row per term plus a trailing residual row
// (SS = full-model residual SS, df = n − p, F/p = NaN). When the first term
// has zero width, its vacuous row is dropped.
func Decompose(m ModelView, t Type, opts ...Option) (*Table, error) {
	if t != TypeI && t != TypeII && t != TypeIII {
		return nil, ErrInvalidAnovaType
	}
	if m.X == nil || m.Y == nil {
		return nil, ErrNilModel
	}
	if err := m.Assign.Validate(); err != nil {
		return nil, err
	}
	n, p := m.X.Dims()
	if len(m.Assign) != p || m.Y.Len() != n {
		return nil, ErrDimensionMismatch
	}

	o := gatherOptions(opts)
	d := decomposer{m: m, o: o, numTerms: m.Assign.NumTerms()}

	var (
		ss     []float64
		ssFull float64
		err    error
	)
	switch t {
	case TypeI:
		ss, ssFull, err = d.sequential()
	case TypeII:
		ss, ssFull, err = d.marginal()
	case TypeIII:
		ss, ssFull, err = d.orthogonal()
	}
	if err != nil {
		return nil, err
	}

	df := m.Assign.DF()
	sse := mat.Dot(m.Y, m.Y) - ssFull
	ss = append(ss, sse)
	df = append(df, n-p)

	// A zero-width leading term is a vacuous intercept row; drop it.
	if df[0] == 0 {
		ss, df = ss[1:], df[1:]
	}

	return assemble(t, n, ss, df), nil
}

// decomposer carries the per-call evaluation state: the borrowed model view
// and the resolved options. It issues kernel calls but owns no results.
type decomposer struct {
	m        ModelView
	o        Options
	numTerms int
}

// eval computes the explained SS of the model with the given term ids
// excluded. An exclusion covering every term short-circuits to zero inside
// the kernel (empty mask).
func (d *decomposer) eval(excluded map[int]bool) (float64, error) {
	mask := d.m.Assign.maskExcluding(excluded)

	return lsq.ExplainedSS(d.m.X, d.m.Y, mask, d.o.RankMode, lsq.WithTolerance(d.o.Tolerance))
}

// sequential implements Type I: evaluate SS under increasingly smaller
// exclusion tails {id+1..K}, {id..K}, … and difference successive values.
// Entry id is SS(exclude {id+1..K}) − SS(exclude {id..K}); the base case of
// everything excluded is identically zero. The last evaluation is the full
// model, returned as ssFull.
func (d *decomposer) sequential() ([]float64, float64, error) {
	k := d.numTerms
	ss := make([]float64, k)
	prev := 0.0
	for id := 1; id <= k; id++ {
		cur, err := d.eval(excludeTail(id+1, k))
		if err != nil {
			return nil, 0, err
		}
		ss[id-1] = cur - prev
		prev = cur
	}

	return ss, prev, nil
}

// marginal implements Type II: each term is tested against the sub-model of
// its marginality relatives. The first term compares the full model against
// the model without it; every other term id compares the relatives-with-id
// model against relatives-without-id, with the relatives resolved by
// selectcoef over the formula's factor structure.
func (d *decomposer) marginal() ([]float64, float64, error) {
	k := d.numTerms
	if len(d.m.TermFactors) != k {
		return nil, 0, ErrMissingTermFactors
	}

	ssFull, err := d.eval(nil)
	if err != nil {
		return nil, 0, err
	}

	ss := make([]float64, k)
	for id := 1; id <= k; id++ {
		if id == 1 {
			without, errNo1 := d.eval(map[int]bool{1: true})
			if errNo1 != nil {
				return nil, 0, errNo1
			}
			ss[0] = ssFull - without

			continue
		}

		keep := selectcoef(d.m.TermFactors, id)
		with, errW := d.eval(complementOf(keep, k))
		if errW != nil {
			return nil, 0, errW
		}
		delete(keep, id)
		without, errWo := d.eval(complementOf(keep, k))
		if errWo != nil {
			return nil, 0, errWo
		}
		ss[id-1] = with - without
	}

	return ss, ssFull, nil
}

// orthogonal implements Type III: every term's unique contribution is the
// full-model explained SS minus the explained SS with only that term
// excluded, independent of term order.
func (d *decomposer) orthogonal() ([]float64, float64, error) {
	k := d.numTerms
	ssFull, err := d.eval(nil)
	if err != nil {
		return nil, 0, err
	}

	ss := make([]float64, k)
	for id := 1; id <= k; id++ {
		reduced, errR := d.eval(map[int]bool{id: true})
		if errR != nil {
			return nil, 0, errR
		}
		ss[id-1] = ssFull - reduced
	}

	return ss, ssFull, nil
}

// selectcoef resolves the Type II marginality rule: when testing term id,
// a term t stays in both comparison models iff t does not contain id, i.e.
// id's factor set is not a strict subset of t's. The returned set includes
// id itself (the "with" model).
func selectcoef(termFactors [][]string, id int) map[int]bool {
	keep := map[int]bool{id: true}
	for t := 1; t <= len(termFactors); t++ {
		if t == id {
			continue
		}
		if !containsTerm(termFactors[t-1], termFactors[id-1]) {
			keep[t] = true
		}
	}

	return keep
}

// containsTerm reports whether outer's factor set strictly contains inner's.
func containsTerm(outer, inner []string) bool {
	if len(outer) <= len(inner) {
		return false
	}
	set := make(map[string]bool, len(outer))
	for _, f := range outer {
		set[f] = true
	}
	for _, f := range inner {
		if !set[f] {
			return false
		}
	}

	return true
}

// excludeTail builds the exclusion set {from..k} (empty when from > k).
func excludeTail(from, k int) map[int]bool {
	excl := make(map[int]bool, k-from+1)
	for id := from; id <= k; id++ {
		excl[id] = true
	}

	return excl
}

// complementOf builds the exclusion set of every term id in 1..k absent
// from keep.
func complementOf(keep map[int]bool, k int) map[int]bool {
	excl := make(map[int]bool, k)
	for id := 1; id <= k; id++ {
		if !keep[id] {
			excl[id] = true
		}
	}

	return excl
}
