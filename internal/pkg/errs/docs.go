// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced entity does not exist at all
//   - StateConflictError: For when an entity exists but a concurrent actor moved it
//     out of the state a requested transition required
//   - ValueIsInvalidError: For when a caller-supplied value fails a domain rule
//   - ValueIsRequiredError: For when a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The kinds map directly onto the HTTP surface: ObjectNotFoundError to 404,
// StateConflictError to 409, and ValueIsInvalidError/ValueIsRequiredError to 400.
// Anything outside this taxonomy is treated as an infrastructure failure.
package errs
