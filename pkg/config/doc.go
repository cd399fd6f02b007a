// Package config loads inputkit settings from environment variables and
// settings files.
//
// Environment loading wraps github.com/joho/godotenv and
// github.com/caarlos0/env/v11. Load parses any struct with `env` tags and
// caches the result per type, so each type is parsed once per process.
// LoadEnv reads .env files first, ResetCache and ForceReloadConfig discard
// cached values (mostly useful in tests).
//
//	var s config.Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
//
// LoadFile decodes YAML (gopkg.in/yaml.v3), TOML (github.com/BurntSushi/toml)
// or JSON by file extension onto an existing value, so a file only needs to
// name the keys it changes:
//
//	s := config.DefaultSettings()
//	if err := config.LoadFile(ctx, "inputkit.yaml", &s); err != nil {
//		return err
//	}
//
// Settings aggregates the options of every routine and converts them into
// the option types of pkg/numfmt, pkg/sanitizer and pkg/validator.
// Settings.Validate reports problems as validator.ValidationErrors joined
// with ErrInvalidSettings.
//
// Store keeps the active Settings behind a RWMutex. It implements
// numfmt.ConfigSource; numfmt.FromSource snapshots the limits held at call
// time, so rebuild the formatter after an update:
//
//	store, err := config.NewStore(s)
//	_ = store.Update(func(s *config.Settings) { s.Number.OverallDigitLimit = 4 })
//	f, err := numfmt.FromSource(store)
//
// # Error Handling
//
// Errors wrap the package sentinels (ErrParsingConfig, ErrLoadingEnvFile,
// ErrUnsupportedFormat, ErrReadingFile, ErrDecodingFile, ErrInvalidSettings,
// ErrNilPointer) and can be matched with errors.Is.
package config
