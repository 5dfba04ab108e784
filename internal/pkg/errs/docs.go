// Package errs provides the error types shared by the order lifecycle and
// returns services.
//
// Every type follows the same shape: a sentinel error variable, a struct
// carrying details, constructors with and without a cause, Error() and an
// Unwrap() that returns the sentinel so callers can classify with errors.Is.
//
// Classification used at the API boundary:
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: validation
//     failures the caller can correct
//   - ObjectNotFoundError: a stale identifier, the caller should refresh
//   - ConflictError: the object is owned or claimed elsewhere, the caller must
//     re-select
package errs
