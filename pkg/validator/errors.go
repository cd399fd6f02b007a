package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPolicy is returned for password policies with negative requirements.
	ErrInvalidPolicy = errors.New("invalid password policy")
)
