// Package log provides a structured logging interface for gbtree model decoding.
//
// This package defines a minimal, slog-compatible logging interface that allows for
// flexible implementation switching while providing decode-specific structured
// logging capabilities. The interface is designed to integrate seamlessly with Go's
// standard log/slog package and popular logging libraries like zerolog, logrus,
// and zap.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - Decode-specific structured attributes (operations, model shape, durations)
//   - Context-aware logging with field chaining
//   - Test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ModelPathKey, "model.json",
//	    log.ModelFormatKey, "json",
//	)
//	logger.Info("Decode finished",
//	    log.OperationKey, log.OperationDecode,
//	    log.NumTreesKey, 100,
//	    log.NumFeaturesKey, 28,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Decode components accept this interface rather than a concrete logger so
// tests can capture their output and services can plug in their own backend.
// With returns a contextual logger carrying pre-populated fields, typically
// the model path and format.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Debug logs are typically used for detailed diagnostic information,
	// such as per-tree decode progress.
	//
	// Example:
	//   logger.Debug("Tree decoded",
	//       log.TreeIDKey, 42,
	//       log.NodesKey, 31,
	//   )
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	// Info logs are used for general operational information about
	// the decoding flow.
	//
	// Example:
	//   logger.Info("Model loaded",
	//       log.ModelPathKey, "model.ubj",
	//       log.DataSizeKey, 183204,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Warning logs indicate potentially problematic situations that
	// don't prevent the operation from continuing.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// Error logs indicate error conditions that should be investigated.
	// If an error value is provided as the first field, stack trace
	// information may be automatically included.
	//
	// Example:
	//   logger.Error("Decode failed",
	//       err,
	//       log.OperationKey, log.OperationDecode,
	//       log.ModelPathKey, "model.json",
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	// This method enables creation of contextual loggers that automatically
	// include common fields in all subsequent log messages.
	//
	// Example:
	//   treeLogger := logger.With(log.TreeIDKey, 7)
	//   treeLogger.Debug("Categorical runs decoded")  // Includes tree id
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// This method can be used to avoid expensive operations when constructing
	// log messages that won't be emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level. The values match slog.Level so the two
// can be converted directly.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Per-tree and per-node decode detail
	LevelInfo  Level = 0  // Operational progress of a decode
	LevelWarn  Level = 4  // Suspicious but decodable documents
	LevelError Level = 8  // Failed operations
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. Components that need a
// logger take a provider so tests can hand them a capturing implementation.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component identifier,
	// such as "xgboost" or "document".
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
