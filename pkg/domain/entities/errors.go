package entities

import "errors"

var (
	// ErrInvalidInput marks raw input that could not be turned into a
	// demand series or cost parameters. It is recoverable at the boundary.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomainViolation marks numeric input outside the model's domain
	// (negative, NaN or infinite) that reached the cost engine.
	ErrDomainViolation = errors.New("domain violation")
)
