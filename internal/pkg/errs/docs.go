// Package errs provides standardized error types for the order-tracking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//   - Domain guards: ValueIsRequiredError and ValueIsInvalidError, used by
//     value objects and aggregates during construction
//   - The request-facing taxonomy: ValidationError (an ordered list of
//     field-level violations), StorageUnavailableError, and StorageConflictError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValidationFailed)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The HTTP adapter relies on this classification to pick status codes and
// wire payloads; nothing outside this package defines new failure kinds.
package errs
