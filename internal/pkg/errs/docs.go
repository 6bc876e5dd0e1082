// Package errs provides the standardized error types shared by every layer of
// the back-office application.
//
// Each error scenario follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The taxonomy covers validation failures (ValueIsRequired, ValueIsInvalid,
// ValueIsOutOfRange), missing objects (ObjectNotFound), and rejected
// authorization on remote calls (Unauthorized). Domain-specific sentinels such
// as invalid lifecycle transitions live next to the domain types they guard.
package errs
