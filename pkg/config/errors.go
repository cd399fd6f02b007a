package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a concurrent load of the same type failed.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	ErrNilPointer = errors.New("nil pointer provided to config loader")

	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported settings file format")

	ErrReadingFile  = errors.New("failed to read settings file")
	ErrDecodingFile = errors.New("failed to decode settings file")

	// ErrInvalidSettings wraps validator.ValidationErrors returned by Settings.Validate.
	ErrInvalidSettings = errors.New("invalid settings")
)
