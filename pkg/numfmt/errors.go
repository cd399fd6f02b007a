package numfmt

import "errors"

var (
	// ErrInvalidInput is returned when a value cannot be represented as a finite decimal.
	ErrInvalidInput = errors.New("invalid numeric input")

	// ErrInvalidConfig is returned for digit limits or unit tables that cannot be applied.
	ErrInvalidConfig = errors.New("invalid number format config")

	// ErrMagnitudeOverflow is returned when more digit groups were removed than the unit table has suffixes for.
	ErrMagnitudeOverflow = errors.New("magnitude exceeds unit table")
)
