package sanitizer

import "errors"

var (
	ErrInvalidURL          = errors.New("invalid url")
	ErrInvalidPhoneFormat  = errors.New("invalid phone format")
	ErrPhoneFormatMismatch = errors.New("phone number does not match format")
	ErrPhoneLength         = errors.New("phone number must have between 7 and 15 digits")
	ErrInvalidSeparator    = errors.New("separator must be a single non-word character")
)
