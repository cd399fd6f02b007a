// Package logger builds the slog.Logger used by the inputkit CLI.
//
// New takes functional options for the level, output format, destination,
// static attributes and ContextExtractor callbacks. The resulting handler is
// a LogHandlerDecorator that runs the extractors on every record before
// delegating to slog's text or JSON handler. Records go to stderr unless
// WithOutput says otherwise, so command output on stdout stays clean.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development),
//	    logger.WithLevelName(settings.LogLevel),
//	    logger.WithContextExtractors(logger.EnvironmentExtractor()),
//	)
//	log.DebugContext(ctx, "formatted number",
//	    logger.Command("number"),
//	    logger.Input(arg),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
