// Package logging provides structured logging utilities for naturaltime.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "parse")
//	logger.Warn("natural language parse failed",
//	    logging.Expression(text))
//
// User-supplied expressions are truncated before logging so a pathological
// input cannot flood the log stream.
package logging
