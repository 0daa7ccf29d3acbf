// Package outcome gives service-layer code an explicit alternative to
// panics and sentinel errors: every fallible operation returns a Result[T]
// that is either a success carrying data or a failure carrying a typed
// Error. Callers inspect the value instead of recovering, and transform it
// with a small combinator set instead of branching.
//
// Core pieces:
// - Success/Fail and the per-category factories: construct Result[T]
// - Error/Category: the closed failure taxonomy
// - Map/FlatMap/Try: move between payload types, short-circuiting failures
// - Validate/Filter: turn a failed predicate into a validation failure
// - OnSuccess/OnFailure: side effects that leave the Result unchanged
// - OrElse/OrElseGet: fallbacks for the failure path
//
// Subpackages build on the value type: bulk combines sequences, future
// crosses the goroutine boundary, observe wraps operations with rollback
// and event side effects, respond translates a Result to the wire shape.
package outcome
