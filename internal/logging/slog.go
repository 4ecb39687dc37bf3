package logging

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation  = "operation"
	KeyExpression = "expression"
	KeyTimezone   = "timezone"
	KeyStrategy   = "strategy"
	KeyDuration   = "duration"
	KeyStatus     = "status"
	KeyError      = "error"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// maxExpressionLen caps user-supplied input in log output.
const maxExpressionLen = 120

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Expression returns a slog attribute for a user-supplied expression,
// truncated and flattened so arbitrary input cannot distort log output.
func Expression(expr string) slog.Attr {
	return slog.String(KeyExpression, TruncateExpression(expr))
}

// Timezone returns a slog attribute for an IANA timezone name.
func Timezone(name string) slog.Attr {
	return slog.String(KeyTimezone, name)
}

// Strategy returns a slog attribute for the resolution strategy name.
func Strategy(name string) slog.Attr {
	return slog.String(KeyStrategy, name)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Warn("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// TruncateExpression flattens newlines and caps the length of a
// user-supplied expression for safe inclusion in log output.
func TruncateExpression(expr string) string {
	expr = strings.ReplaceAll(expr, "\n", " ")
	expr = strings.ReplaceAll(expr, "\r", " ")
	if utf8.RuneCountInString(expr) <= maxExpressionLen {
		return expr
	}
	runes := []rune(expr)
	return string(runes[:maxExpressionLen]) + "..."
}
