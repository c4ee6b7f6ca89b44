package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied. Validation always fails with a meaningful message even when no
// specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only created
// through their designated constructor functions. A zero-value struct fails
// validation, which turns "object used outside its initialization scope" into a
// loud error instead of silent misbehavior.
//
// Embed a ConstructorGuard in a struct and set it with NewConstructorGuard inside
// the constructor:
//
//	type HoldOrderCommand struct {
//	    reason string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewHoldOrderCommand(reason string) (HoldOrderCommand, error) {
//	    ...
//	    return HoldOrderCommand{reason: reason, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c HoldOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrHoldOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object went through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
