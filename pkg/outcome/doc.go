// Package outcome provides the two core sum types for explicit fallible
// computation: Option[T] (Some/None) and Result[T] (Ok/Err), together with
// their monadic combinators and the error values shared by the interception
// subpackages.
//
// Highlights:
// - Some/None/Of/OfFunc: construct Option[T]
// - Ok/Err: construct Result[T]
// - MapOption/FlatMapOption/MapResult/FlatMapResult: transform without unwrapping
// - OkOr/ToOption: convert between the two types (one-directional, lossy)
// - Fault: structural error with a numeric code, matching platform errors
//
// Instances are immutable: every combinator returns a fresh value and never
// mutates its input. Asynchronous counterparts of the combinators live in
// the future subpackage; the interception wrapper lives in intercept.
package outcome

import "github.com/npillmayer/schuko/tracing"

// tracer writes package-level trace messages to the application-selected
// logging adapter.
func tracer() tracing.Trace {
	return tracing.Select("outcome")
}
