package dsi

import (
	"errors"
	"fmt"
)

// Domain errors for statistic and analysis operations.
var (
	// ErrEmptySequence indicates a statistic requested on zero-length input.
	ErrEmptySequence = errors.New("dsi: empty sequence")

	// ErrDegenerateSequence indicates a constant sequence (MAD = 0), for
	// which the index is undefined.
	ErrDegenerateSequence = errors.New("dsi: degenerate sequence (mean absolute deviation is zero)")

	// ErrInvalidSampleSize indicates a sample size below 1.
	ErrInvalidSampleSize = errors.New("dsi: invalid sample size")

	// ErrInvalidFraction indicates a perturbation fraction outside [0, 1]
	// or a non-positive shift factor.
	ErrInvalidFraction = errors.New("dsi: invalid perturbation parameter")

	// ErrNonFinite indicates a NaN or Inf element in the input.
	ErrNonFinite = errors.New("dsi: non-finite value in sequence")
)

// DomainError wraps a domain error with the offending parameter.
type DomainError struct {
	Op      string
	Param   string
	Value   float64
	Wrapped error
}

func (e *DomainError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
	}
	return fmt.Sprintf("%s: %v (%s=%g)", e.Op, e.Wrapped, e.Param, e.Value)
}

func (e *DomainError) Unwrap() error {
	return e.Wrapped
}

func domainErr(op, param string, value float64, err error) error {
	return &DomainError{Op: op, Param: param, Value: value, Wrapped: err}
}
