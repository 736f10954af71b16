// Package errs provides the typed validation errors shared by the domain model.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange)
//   - a struct carrying the offending parameter and an optional Cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so errors.Is works on joined errors
//
// Delivery eligibility rejections are not errors and never use this package;
// it is reserved for values that cannot be constructed at all.
package errs
