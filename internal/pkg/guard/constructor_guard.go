// Package guard provides a small helper for enforcing that domain objects,
// commands, and queries are created through their constructors rather than
// as zero-value struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard holder was
// not constructed and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as properly constructed. A zero-value guard
// fails validation, so embedding one in a struct with private fields makes
// bypassing the constructor detectable.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call this from the owning type's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// Otherwise it returns notConstructed, or ErrDefaultConstructorGuard when
// notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructed != nil {
		return notConstructed
	}
	return ErrDefaultConstructorGuard
}
