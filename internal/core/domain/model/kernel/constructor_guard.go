package kernel

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by
// ConstructorGuard.Validate when a nil error is passed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects value objects and entities that bypassed their
// constructor. A zero-value struct carries a zero-value guard, which fails
// validation; constructors set the guard through NewConstructorGuard.
//
// Domain types embed the guard as a private field:
//
//	type Task struct {
//	    id    UUID
//	    guard ConstructorGuard
//	}
//
//	func NewTask(id UUID) (*Task, error) {
//	    ...
//	    return &Task{id: id, guard: NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was set by a constructor, otherwise the
// provided error (or ErrDefaultConstructorGuard when err is nil).
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}

	if err == nil {
		return ErrDefaultConstructorGuard
	}

	return err
}
