// Package mixed: sentinel error set.

package mixed

import "errors"

var (
	// ErrUnsupportedAnovaType is returned when Type II is requested for a
	// mixed model; only the sequential and orthogonal conventions are
	// defined here.
	ErrUnsupportedAnovaType = errors.New("mixed: anova type II unsupported for mixed models")

	// ErrMultipleRandomFactors is returned when more than one random-effect
	// grouping factor is supplied; only single random-factor designs are
	// supported.
	ErrMultipleRandomFactors = errors.New("mixed: multiple random factors unsupported")

	// ErrMissingGrouping indicates that no random-effect grouping incidence
	// matrix was supplied.
	ErrMissingGrouping = errors.New("mixed: missing random-effect grouping")

	// ErrCovarianceNotPD indicates that the fixed-effect covariance matrix is
	// not positive definite and cannot be whitened.
	ErrCovarianceNotPD = errors.New("mixed: covariance matrix not positive definite")

	// ErrDimensionMismatch indicates incompatible shapes among the design,
	// estimates, covariance, residuals, assignment or grouping incidence.
	ErrDimensionMismatch = errors.New("mixed: dimension mismatch")

	// ErrNilModel indicates a ModelView with a nil required field.
	ErrNilModel = errors.New("mixed: nil model component")
)
