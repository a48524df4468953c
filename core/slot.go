package core

import "github.com/chriso345/clifford/schema"

// Slot holds an argument across both parsing phases: before parsing it is a
// Deferred builder of the argument's declaration, after decoding it is a
// Resolved value. A slot only ever moves from Deferred to Resolved.
//
// The set of implementations is closed; switch on the concrete type to
// inspect a slot.
type Slot[T any] interface {
	// Declaration returns the declaration for id. It panics on a resolved
	// slot.
	Declaration(id schema.PropertyID) schema.Declaration

	slot()
}

// Deferred is a slot that has not been decoded yet.
type Deferred[T any] struct {
	build schema.Builder
}

// Resolved is a slot holding a decoded value.
type Resolved[T any] struct {
	Value T
}

func NewDeferred[T any](build schema.Builder) Deferred[T] {
	return Deferred[T]{build: build}
}

func NewResolved[T any](value T) Resolved[T] {
	return Resolved[T]{Value: value}
}

func (d Deferred[T]) Declaration(id schema.PropertyID) schema.Declaration {
	return d.build(id)
}

// Declaration panics: a resolved slot only holds its value.
func (r Resolved[T]) Declaration(id schema.PropertyID) schema.Declaration {
	panic("clifford: declaration requested for resolved argument " + id.String())
}

func (Deferred[T]) slot() {}
func (Resolved[T]) slot() {}
