// Package logger provides structured logging for akirakey.
//
// It wraps log/slog:
//
//   - logger.go: handler construction, level control and the default logger
//   - redact.go: masking of key material before it reaches any output
//
// Any string value carrying an AKIRA key prefix is reduced to
// prefix + first 3 + "..." + last 3 characters. Values logged under a
// sensitive-looking attribute name are replaced entirely.
package logger
