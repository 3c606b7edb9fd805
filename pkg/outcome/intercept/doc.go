// Package intercept wraps fallible callables so that synchronous failures
// (returned errors and panics) and asynchronous rejections of every
// recognized shape converge on a single caller-supplied recovery handler.
//
// Eligibility is decided by a Filter: MatchAny recovers every failure
// including non-error panic payloads, MatchErrors recovers genuine errors
// only, MatchAs narrows to a declared error type, MatchCode to a structural
// fault tag. Failures the filter does not match propagate unchanged; they
// are never silently absorbed. Platform-shaped faults (numeric code plus
// message) are eligible under every filter.
//
// Entry points:
// - Wrap/Catcher/DefaultCatcher/ErrorsCatcher: synchronous callables
// - WrapFuture: callables returning a canonical future
// - WrapAsync: callables whose return shape is only known at runtime
// - BindMethod: composition-time method wrapping with a diagnostic label
// - Try/TryCall: adapt a plain call into an outcome.Result
//
// The handler runs at most once per intercepted invocation; its own error
// or panic becomes the new outcome with no second recovery attempt.
package intercept
