// Package errs provides standardized error types for the storeops
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines the two error kinds the domain distinguishes:
//   - ValidationError: the caller supplied structurally invalid input
//   - StateError: the operation is illegal in the entity's current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (ErrValidation, ErrState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// "Not found" conditions are deliberately not an error kind: unknown ids are
// reported by callers as absent results or boolean false returns.
package errs
