// Package logger provides a configured slog.Logger factory and attribute
// helpers with consistent keys for authorization events.
//
// Basic usage:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	)
//
//	log.Warn("access denied", logger.Role("ADMIN"), logger.Error(err))
//
// NewFromEnv builds a logger from LOG_LEVEL and LOG_FORMAT environment
// variables, for callers that configure logging outside of code.
package logger
