// Package lsq: the restricted least-squares kernel.
//
// Purpose:
//   - Implement ExplainedSS and Coefficients on top of the Factorization
//     variant: restrict X to the masked columns, form the normal equations,
//     solve, and report β′X′y or β.
//
// Notes:
//   - Every call owns its scratch (restricted design, X′X, X′y, β); nothing
//     is shared across calls, so concurrent evaluations are safe.
//   - Inputs are borrowed read-only and never mutated.

package lsq

import (
	"gonum.org/v1/gonum/mat"
)

// ExplainedSS computes the explained sum of squares of the least-squares fit
// of y on the masked columns of x: β′X′y with β = (X′X)⁻¹X′y over the
// retained columns. Equivalently, it is the drop in residual SS relative to
// predicting y by zero.
//
// Contract:
//   - x is n×p, y has length n, mask has width p. A nil mask keeps all
//     columns. Zero retained columns yield SS = 0 without factorizing.
//   - mode selects the factorization: Exact fails with ErrSingularDesign on
//     collinear subsets; AllowRankDeficient solves the reduced-rank
//     projection instead (see Factorization.SolveVec).
//
// Errors:
//   - ErrNilInput, ErrEmptyDesign, ErrDimensionMismatch, ErrSingularDesign.
//
// Complexity: O(n·k² + k³) time, O(n·k) space, k = retained columns.
func ExplainedSS(x *mat.Dense, y *mat.VecDense, mask ColumnMask, mode RankMode, opts ...Option) (float64, error) {
	xk, xty, err := restrict(x, y, mask)
	if err != nil {
		return 0, err
	}
	if xk == nil { // empty mask: nothing to explain
		return 0, nil
	}

	beta, err := solveNormal(xk, xty, mode, gatherOptions(opts).Tolerance)
	if err != nil {
		return 0, err
	}

	return mat.Dot(beta, xty), nil
}

// Coefficients solves the same restricted problem as ExplainedSS and returns
// the coefficient vector expanded back to the full column width p: masked-out
// columns and (in AllowRankDeficient mode) aliased columns hold exactly zero.
// The returned vector is freshly allocated on every call.
func Coefficients(x *mat.Dense, y *mat.VecDense, mask ColumnMask, mode RankMode, opts ...Option) (*mat.VecDense, error) {
	xk, xty, err := restrict(x, y, mask)
	if err != nil {
		return nil, err
	}
	_, p := x.Dims()
	full := mat.NewVecDense(p, nil)
	if xk == nil {
		return full, nil
	}

	beta, err := solveNormal(xk, xty, mode, gatherOptions(opts).Tolerance)
	if err != nil {
		return nil, err
	}

	// Scatter the restricted solution back to original column positions.
	kept := keptIndices(x, mask)
	for i, j := range kept {
		full.SetVec(j, beta.AtVec(i))
	}

	return full, nil
}

// restrict validates shapes and builds the restricted design view X_k and
// right-hand side X_k′y. It returns (nil, nil, nil) for an empty mask.
func restrict(x *mat.Dense, y *mat.VecDense, mask ColumnMask) (*mat.Dense, *mat.VecDense, error) {
	if x == nil || y == nil {
		return nil, nil, ErrNilInput
	}
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return nil, nil, ErrEmptyDesign
	}
	if y.Len() != n {
		return nil, nil, ErrDimensionMismatch
	}
	if mask != nil && len(mask) != p {
		return nil, nil, ErrDimensionMismatch
	}

	kept := keptIndices(x, mask)
	k := len(kept)
	if k == 0 {
		return nil, nil, nil
	}

	xk := mat.NewDense(n, k, nil)
	for c, j := range kept {
		for i := 0; i < n; i++ {
			xk.Set(i, c, x.At(i, j))
		}
	}

	xty := mat.NewVecDense(k, nil)
	xty.MulVec(xk.T(), y)

	return xk, xty, nil
}

// solveNormal forms X_k′X_k, factorizes it per mode and solves for the
// restricted coefficient vector.
func solveNormal(xk *mat.Dense, xty *mat.VecDense, mode RankMode, tol float64) (*mat.VecDense, error) {
	var xtx mat.SymDense
	xtx.SymOuterK(1, xk.T())

	f, err := Factorize(&xtx, mode, tol)
	if err != nil {
		return nil, err
	}

	return f.SolveVec(xty)
}

// keptIndices resolves the mask (nil = keep all) to column indices.
func keptIndices(x *mat.Dense, mask ColumnMask) []int {
	_, p := x.Dims()
	if mask == nil {
		mask = KeepAll(p)
	}

	return mask.Indices()
}
