// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the value on the success track
// - Ensure: trigger side effects on success only
// - ValidateAll: run validators and join their failures into one error
// - Recover: splice an interception filter/handler into the chain
// - Finally: reduce to a concrete value via handlers
//
// Chains short-circuit on Err exactly as the underlying combinators do.
package chain
