package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value instances of types that must be created
// through a constructor. Embed it as a field and set it with NewConstructorGuard
// inside the constructor; Validate then fails for anything built as a literal.
//
// Example:
//
//	type NavigateCommand struct {
//	    action Action
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c NavigateCommand) Validate() error {
//	    return c.guard.Validate(ErrNavigateCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
