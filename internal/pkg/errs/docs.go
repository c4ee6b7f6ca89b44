// Package errs provides standardized error types for the POS application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the codebase.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for message formatting
//   - Unwrap() so errors.Is can classify against the sentinel
//
// Covered scenarios: missing required values, invalid values, values out of
// range, and objects that cannot be found by id.
package errs
