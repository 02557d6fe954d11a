// Package guard enforces that value objects, commands and queries are created
// through their constructors rather than as zero-value struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set only by that struct's constructor.
// A zero-value guard fails validation, which catches `Foo{}` literals that skipped
// validation.
//
// Example usage:
//
//	var ErrQueryIsNotConstructed = errors.New("query must be created via NewQuery")
//
//	type Query struct {
//	    page  int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuery(page int) Query {
//	    return Query{page: page, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q Query) Validate() error {
//	    return q.guard.Validate(ErrQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
