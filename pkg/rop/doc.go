// Package rop contains Result[V, E], the outcome of a computation that can
// fail, and the combinators used to compose such outcomes.
//
// Highlights:
// - Success/Failure: construct Result[V, E]
// - Of: capture a Go (value, error) pair as a Result
// - Map/FlatMap/MapErr: transform successful values or errors
// - ValueOrOther/Otherwise: lazily evaluated fallbacks
// - ValueOrThrow/MustValue: leave the Result world via error returns or panics
// - Fold: reduce to a concrete value via success/failure handlers
// - Handler: adapt a Result consumer to a (value, error) callback
//
// Combinators never invoke their function argument on a failure and never
// modify their receiver; Results are immutable values and can be shared
// between goroutines.
package rop
