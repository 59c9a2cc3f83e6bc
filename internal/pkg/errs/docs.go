// Package errs provides the error types shared by the ordering flow.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsOutOfRange)
//   - a struct type carrying the offending parameter and value
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so callers classify with errors.Is
//
// The types in use:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation (unknown catalog name, short address)
//   - ValueIsOutOfRangeError: an index or number is outside its bounds (stale cart positions)
//   - ObjectNotFoundError: a session or other object does not exist
package errs
