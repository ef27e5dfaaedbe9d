// Package validate provides input validation helpers and the error types
// shared by all indicator packages.
//
// Every public indicator function validates its inputs through these helpers
// so callers see a consistent error taxonomy: EmptyInputError,
// InvalidPeriodError, MismatchedLengthError, InvalidValueError, and
// UnsupportedVariantError. All of them implement error and can be matched
// with errors.As.
package validate
