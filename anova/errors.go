// Package anova: sentinel error set. Decomposition failures are
// caller-configuration errors raised synchronously; none are retried and
// there is no partial-result mode.

package anova

import "errors"

var (
	// ErrInvalidAnovaType is returned when the requested type is not one of
	// TypeI, TypeII, TypeIII.
	ErrInvalidAnovaType = errors.New("anova: invalid anova type")

	// ErrBadAssignment indicates a malformed term assignment: empty,
	// non-positive ids, decreasing runs, or gaps between term ids.
	ErrBadAssignment = errors.New("anova: malformed term assignment")

	// ErrMissingTermFactors is returned for Type II when ModelView.TermFactors
	// is absent or does not cover every term; the marginality rule cannot be
	// resolved from the assignment alone.
	ErrMissingTermFactors = errors.New("anova: term factors required for type II")

	// ErrDimensionMismatch indicates incompatible shapes between the design
	// matrix, response and assignment.
	ErrDimensionMismatch = errors.New("anova: dimension mismatch")

	// ErrNilModel indicates a ModelView with a nil design matrix or response.
	ErrNilModel = errors.New("anova: nil design or response")
)
