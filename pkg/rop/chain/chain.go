package chain

import (
	"github.com/ib-77/commons/pkg/rop"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[V any, E error] struct {
	result rop.Result[V, E]
}

// Start creates a new chain from a rop.Result
func Start[V any, E error](result rop.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[V any, E error](value V) Chain[V, E] {
	return Chain[V, E]{result: rop.Success[V, E](value)}
}

// FromError creates a new chain from a failure
func FromError[V any, E error](err E) Chain[V, E] {
	return Chain[V, E]{result: rop.Failure[V](err)}
}

// Result returns the underlying rop.Result
func (c Chain[V, E]) Result() rop.Result[V, E] {
	return c.result
}

// Then chains a function that returns rop.Result[V, E]
func (c Chain[V, E]) Then(onSuccess func(V) rop.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{result: rop.FlatMap(c.result, onSuccess)}
}

// Map chains a pure transformation function
func (c Chain[V, E]) Map(onSuccess func(V) V) Chain[V, E] {
	return Chain[V, E]{result: rop.Map(c.result, onSuccess)}
}

// Otherwise replaces a failure with the result of alternative
func (c Chain[V, E]) Otherwise(alternative func() rop.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{result: c.result.Otherwise(alternative)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[V, E]) Ensure(onSuccess func(V)) Chain[V, E] {
	return Chain[V, E]{result: rop.Tee(c.result, onSuccess)}
}

// OnFailure performs a side effect on failure without changing the result
func (c Chain[V, E]) OnFailure(onFailure func(E)) Chain[V, E] {
	return Chain[V, E]{result: rop.TeeErr(c.result, onFailure)}
}

// ThenTo chains a function that switches to rop.Result[U, E]
func ThenTo[V, U any, E error](c Chain[V, E], onSuccess func(V) rop.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{result: rop.FlatMap(c.result, onSuccess)}
}

// MapTo chains a transformation function changing the value type
func MapTo[V, U any, E error](c Chain[V, E], onSuccess func(V) U) Chain[U, E] {
	return Chain[U, E]{result: rop.Map(c.result, onSuccess)}
}

// Finally collapses the chain into a final value using rop.Fold
func Finally[V, U any, E error](c Chain[V, E], onSuccess func(V) U, onFailure func(E) U) U {
	return rop.Fold(c.result, onSuccess, onFailure)
}
