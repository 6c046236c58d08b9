// Package logging provides structured logging utilities for canvascal.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithService(slog.Default(), "canvas")
//	logger.Info("fetched assignments",
//	    logging.Operation("fetch_assignments"),
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("token loaded", "token", logging.SanitizeToken(token))
//
// Tokens are never logged directly; only a length indicator is recorded.
package logging
