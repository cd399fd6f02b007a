package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrLanguageNotSupported = errors.New("language not supported")
	ErrInvalidCatalog       = errors.New("invalid translation catalog")
	ErrUnsupportedFormat    = errors.New("unsupported translation file format")

	ErrLoadingCanceled = errors.New("loading translations canceled")
	ErrReadingFile     = errors.New("failed to read translation file")
	ErrParsingFile     = errors.New("failed to parse translation file")
	ErrMarshalingJSON  = errors.New("failed to marshal translations to JSON")
)
