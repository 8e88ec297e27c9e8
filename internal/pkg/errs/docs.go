// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method targeting the sentinel, so callers classify
//     failures with errors.Is rather than string matching
//
// Domain-specific business errors (insufficient stock, infeasible
// allocation, container mismatch and the like) do not live here; they are
// declared next to the aggregate or service that raises them and wrap
// these foundations where a structured payload is not needed.
package errs
