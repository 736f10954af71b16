// Package guard offers ConstructorGuard, a marker that separates values built by
// their constructor from zero values created with a struct literal.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects whose zero value is not usable.
// Only NewConstructorGuard produces a guard that validates.
//
// Example:
//
//	type Class struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c Class) Validate() error {
//	    return c.guard.Validate(ErrClassIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
