// Package logging provides a minimal logging facade for the adaptor
// signature library.
//
// The package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The core packages route their
// degenerate-input diagnostics through a Component logger built on
// slog.Default(); they offer no hook for substituting another Logger.
//
// Secret scalars (keys, tweaks, nonces, prover randomness) must never reach a
// log line. Use Redacted to record that a value was intentionally withheld:
//
//	logger.Warn(ctx, "witness extraction failed", logging.Redacted("witness"))
package logging
