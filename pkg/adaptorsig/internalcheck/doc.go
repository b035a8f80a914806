// Package internalcheck enforces source-level policies on the adaptor
// signature packages.
//
// The checks run as ordinary tests and inspect the package sources with
// golang.org/x/tools/go/packages: secret scalars must never be hex-formatted
// into log lines, and the core arithmetic must not reach for math/big, whose
// operations are variable-time.
//
// This package is part of the internal implementation and should not be
// imported by applications; use the public API under pkg/adaptorsig instead.
package internalcheck
