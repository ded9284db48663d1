// Package guard provides ConstructorGuard, a marker that distinguishes values
// built through their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, entities and commands so that a
// zero-value instance can be told apart from one produced by its constructor.
//
// Example usage:
//
//	var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")
//
//	type Address struct {
//	    building int
//	    room     int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (a Address) Validate() error {
//	    return a.guard.Validate(ErrAddressIsNotConstructed)
//	}
//
// The guard holds a single immutable flag, so it is safe to copy and to use
// from several goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only from
// the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
