package model

import "github.com/krotik/chronograph/identity"

/*
Ref is a lazily-resolvable reference to a T, called for by spec section 9
("Optional lazy/remote references"). Most of the in-memory core only ever
deals with Loaded refs; Ref exists so the public API does not preclude a
future backend from handing back a locator-only placeholder that is resolved
on demand through a loader function. Equality between two Refs is by locator
only, regardless of load state.
*/
type Ref[T any] struct {
	loaded   bool
	value    T
	locator  identity.Locator
	loader   func(identity.Locator) (T, error)
}

/*
Loaded creates a Ref that already holds its value.
*/
func Loaded[T any](locator identity.Locator, value T) Ref[T] {
	return Ref[T]{loaded: true, value: value, locator: locator}
}

/*
Unloaded creates a Ref that only holds a locator and a loader function to
resolve it on demand.
*/
func Unloaded[T any](locator identity.Locator, loader func(identity.Locator) (T, error)) Ref[T] {
	return Ref[T]{locator: locator, loader: loader}
}

/*
Locator returns the locator this Ref addresses, regardless of load state.
*/
func (r Ref[T]) Locator() identity.Locator {
	return r.locator
}

/*
IsLoaded returns true if the value is already resolved.
*/
func (r Ref[T]) IsLoaded() bool {
	return r.loaded
}

/*
Resolve returns the referenced value, loading it via the loader if needed.
*/
func (r Ref[T]) Resolve() (T, error) {
	if r.loaded {
		return r.value, nil
	}

	return r.loader(r.locator)
}

/*
Equal compares two Refs by locator only, per spec section 9.
*/
func (r Ref[T]) Equal(other Ref[T]) bool {
	return r.locator.Equal(other.locator)
}
