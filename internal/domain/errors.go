package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// ErrGrossUpDivideByZero reflects an invalid business configuration, not
	// missing data: a gross-up percent of 100 or more under the advance
	// regime leaves no divider to back-solve the gross amount from.
	ErrGrossUpDivideByZero = errors.New("gross-up percent leaves no divider")

	// ErrRenderFailed marks presentation-layer failures. The computed invoice
	// stays valid and can be rendered again.
	ErrRenderFailed = errors.New("document rendering failed")
)
