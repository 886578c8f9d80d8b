// Package anova: term assignment and degrees-of-freedom bookkeeping.
package anova

import "github.com/katalvlaran/varpart/lsq"

// Assignment maps each design-matrix column to the id of the model term it
// belongs to. A well-formed assignment is a non-decreasing sequence of
// positive ids in which each run of equal values is one term and ids are
// contiguous; the largest id equals the number of terms.
//
// The sequence may start at 2 instead of 1: that encodes a zero-width first
// term (a formula intercept that contributes no columns), whose vacuous
// table row the decomposer drops after the fact.
type Assignment []int

// Validate checks well-formedness and returns ErrBadAssignment on violation.
//
// Rules (staged, fail-fast):
//  1. Non-empty.
//  2. First id is 1 or 2 (2 ⇒ zero-width first term).
//  3. Non-decreasing, increments of at most one (contiguity).
func (a Assignment) Validate() error {
	if len(a) == 0 {
		return ErrBadAssignment
	}
	if a[0] != 1 && a[0] != 2 {
		return ErrBadAssignment
	}
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] || a[i] > a[i-1]+1 {
			return ErrBadAssignment
		}
	}

	return nil
}

// NumTerms reports the number of terms, i.e. the largest id (zero for an
// empty assignment). A zero-width first term counts as a term.
func (a Assignment) NumTerms() int {
	if len(a) == 0 {
		return 0
	}

	return a[len(a)-1]
}

// DF converts the assignment into per-term column counts, indexed by
// term id − 1. A zero-width first term yields DF()[0] == 0.
func (a Assignment) DF() []int {
	df := make([]int, a.NumTerms())
	for _, id := range a {
		df[id-1]++
	}

	return df
}

// TermColumns returns the design-column indices belonging to term id, in
// ascending order (empty for a zero-width term).
func (a Assignment) TermColumns(id int) []int {
	var cols []int
	for j, tid := range a {
		if tid == id {
			cols = append(cols, j)
		}
	}

	return cols
}

// maskExcluding builds the ColumnMask retaining every column whose term is
// not in the excluded set. The mask is freshly allocated per call so that
// concurrent SS evaluations never share state.
func (a Assignment) maskExcluding(excluded map[int]bool) lsq.ColumnMask {
	mask := make(lsq.ColumnMask, len(a))
	for j, id := range a {
		mask[j] = !excluded[id]
	}

	return mask
}
