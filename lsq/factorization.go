// Package lsq: factorization of the normal-equations matrix.
//
// Purpose:
//   - Declare the Factorization tagged variant (exact | pivoted) with a single
//     solve operation polymorphic over the variant.
//   - Implement the diagonal-pivoted Cholesky kernel with tolerance-based
//     numerical rank detection.
//
// Notes:
//   - The exact path delegates to gonum's mat.Cholesky.
//   - The pivoted path is an explicit outer-product kernel (dpstrf scheme):
//     gonum's pivoted solver completes the aliased subspace differently from
//     the contract required here (leading rank×rank triangular solve, exact
//     zeros on aliased coefficients, pivot order restored).

package lsq

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// factorKind tags the Factorization variant.
type factorKind int

const (
	factorExact factorKind = iota
	factorPivoted
)

// Factorization is the result of factorizing a normal-equations matrix X′X.
// It is either an exact Cholesky factorization (positive definite input) or
// a pivoted one carrying the detected numerical rank and pivot permutation.
// A Factorization is immutable after construction and safe for concurrent
// SolveVec calls.
type Factorization struct {
	kind factorKind
	p    int // matrix order

	// Exact variant.
	chol mat.Cholesky

	// Pivoted variant: row-major lower factor L (only entries i ≥ j within
	// the leading rank block are meaningful), pivot permutation and rank.
	l    []float64
	piv  []int
	rank int
}

// Factorize factorizes the symmetric normal-equations matrix xtx according
// to mode.
//
// Implementation:
//   - Stage 1 (Exact): mat.Cholesky.Factorize; failure maps to
//     ErrSingularDesign.
//   - Stage 2 (AllowRankDeficient): diagonal-pivoted Cholesky on a dense
//     working copy. At step k the largest remaining Schur-complement diagonal
//     is swapped into position k; the factorization stops when that pivot
//     falls below tol × max(initial diagonal), fixing the numerical rank.
//
// Errors:
//   - ErrSingularDesign — Exact mode on a non-positive-definite matrix.
//
// Complexity: O(p³) time, O(p²) space for the pivoted working copy.
func Factorize(xtx *mat.SymDense, mode RankMode, tol float64) (*Factorization, error) {
	p, _ := xtx.Dims()
	f := &Factorization{p: p}

	if mode == Exact {
		f.kind = factorExact
		if ok := f.chol.Factorize(xtx); !ok {
			return nil, ErrSingularDesign
		}

		return f, nil
	}

	f.kind = factorPivoted
	f.factorPivoted(xtx, tol)

	return f, nil
}

// Rank reports the detected numerical rank. For the exact variant this is
// the full order of the matrix (the factorization would have failed
// otherwise).
func (f *Factorization) Rank() int {
	if f.kind == factorExact {
		return f.p
	}

	return f.rank
}

// Pivots returns a copy of the pivot permutation, or nil for the exact
// variant. piv[k] is the original column index moved into position k.
func (f *Factorization) Pivots() []int {
	if f.kind == factorExact {
		return nil
	}
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// SolveVec solves X′X · β = b and returns a freshly allocated coefficient
// vector in the original column order.
//
// For the pivoted variant with rank < p: the right-hand side is permuted by
// the pivot order, only the leading rank×rank triangular block is solved,
// the trailing (p − rank) coefficients are set to exactly zero, and the
// permutation is inverted to restore original column order.
func (f *Factorization) SolveVec(b *mat.VecDense) (*mat.VecDense, error) {
	if f.kind == factorExact {
		beta := mat.NewVecDense(f.p, nil)
		if err := f.chol.SolveVecTo(beta, b); err != nil {
			return nil, ErrSingularDesign
		}

		return beta, nil
	}

	return f.solvePivoted(b), nil
}

// factorPivoted runs the diagonal-pivoted outer-product Cholesky on a dense
// working copy of xtx, recording the lower factor, the pivot permutation and
// the detected rank. The Schur complement is kept symmetric throughout so
// that full row/column swaps stay consistent.
func (f *Factorization) factorPivoted(xtx *mat.SymDense, tol float64) {
	p := f.p
	a := make([]float64, p*p)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			a[i*p+j] = xtx.At(i, j)
		}
	}

	f.piv = make([]int, p)
	maxDiag := 0.0
	for i := 0; i < p; i++ {
		f.piv[i] = i
		if d := a[i*p+i]; d > maxDiag {
			maxDiag = d
		}
	}
	threshold := tol * maxDiag

	f.rank = p
	for k := 0; k < p; k++ {
		// Select the largest remaining Schur-complement diagonal as pivot.
		q, best := k, a[k*p+k]
		for i := k + 1; i < p; i++ {
			if d := a[i*p+i]; d > best {
				q, best = i, d
			}
		}
		if best <= threshold || maxDiag == 0 {
			f.rank = k

			break
		}
		if q != k {
			swapRowCol(a, p, k, q)
			f.piv[k], f.piv[q] = f.piv[q], f.piv[k]
		}

		// Standard outer-product step: scale column k, update the Schur
		// complement on both triangles to keep it symmetric under swaps.
		akk := math.Sqrt(a[k*p+k])
		a[k*p+k] = akk
		for i := k + 1; i < p; i++ {
			a[i*p+k] /= akk
		}
		for j := k + 1; j < p; j++ {
			ajk := a[j*p+k]
			for i := k + 1; i < p; i++ {
				a[i*p+j] -= a[i*p+k] * ajk
			}
		}
	}

	f.l = a
}

// solvePivoted applies the permuted forward/backward substitution described
// on SolveVec. It never reads outside the leading rank×rank block of L.
func (f *Factorization) solvePivoted(b *mat.VecDense) *mat.VecDense {
	p, rnk := f.p, f.rank

	// Permute the right-hand side by the pivot order.
	bp := make([]float64, p)
	for k := 0; k < p; k++ {
		bp[k] = b.AtVec(f.piv[k])
	}

	// Forward solve L·z = bp on the leading rank block.
	z := make([]float64, rnk)
	for i := 0; i < rnk; i++ {
		s := bp[i]
		for j := 0; j < i; j++ {
			s -= f.l[i*p+j] * z[j]
		}
		z[i] = s / f.l[i*p+i]
	}

	// Backward solve L′·w = z on the same block.
	w := make([]float64, rnk)
	for i := rnk - 1; i >= 0; i-- {
		s := z[i]
		for j := i + 1; j < rnk; j++ {
			s -= f.l[j*p+i] * w[j]
		}
		w[i] = s / f.l[i*p+i]
	}

	// Aliased coefficients are exactly zero; invert the permutation.
	beta := mat.NewVecDense(p, nil)
	for k := 0; k < rnk; k++ {
		beta.SetVec(f.piv[k], w[k])
	}

	return beta
}

// swapRowCol symmetrically exchanges rows and columns k and q of the p×p
// row-major working array.
func swapRowCol(a []float64, p, k, q int) {
	for j := 0; j < p; j++ {
		a[k*p+j], a[q*p+j] = a[q*p+j], a[k*p+j]
	}
	for i := 0; i < p; i++ {
		a[i*p+k], a[i*p+q] = a[i*p+q], a[i*p+k]
	}
}
