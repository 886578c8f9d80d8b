// Package lsq: sentinel error set.
// All kernels return these sentinels and tests check them via errors.Is.
// No kernel panics on user-triggered conditions; panics are reserved for
// programmer errors in option constructors.

package lsq

import "errors"

var (
	// ErrSingularDesign is returned by the exact (non-pivoted) path when the
	// normal-equations matrix X′X is not positive definite, i.e. the retained
	// columns are linearly dependent. Use AllowRankDeficient to proceed on
	// such designs instead.
	ErrSingularDesign = errors.New("lsq: singular design matrix")

	// ErrDimensionMismatch indicates incompatible shapes between the design
	// matrix, the response vector and/or the column mask.
	ErrDimensionMismatch = errors.New("lsq: dimension mismatch")

	// ErrEmptyDesign indicates a design matrix with zero rows or columns.
	ErrEmptyDesign = errors.New("lsq: empty design matrix")

	// ErrNilInput indicates a nil design matrix or response vector.
	ErrNilInput = errors.New("lsq: nil design or response")
)

// Panic message for the tolerance option constructor (programmer error).
const panicToleranceInvalid = "lsq: WithTolerance: tol must be finite, non-negative"
