// Package chain provides a fluent wrapper around rop.Result[V, E]
// for building Railway-Oriented chains.
//
// It composes rop.FlatMap, rop.Map, Otherwise, Tee and Fold behind a
// convenient Chain[V, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain from a Result, value or error
// - Then: switch to a new Result via a function
// - Map: transform the successful value
// - Otherwise: fall back to an alternative Result on failure
// - Ensure/OnFailure: run side effects without changing the result
// - ThenTo/MapTo: type-changing variants of Then and Map
// - Finally: collapse the chain into a final value via handlers
package chain
