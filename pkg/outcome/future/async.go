package future

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Async is the closed classification of a call's outcome: exactly one of
// Immediate (a plain value, nothing left to fail) or Pending (a future
// whose settlement is still outstanding).
type Async[T any] struct {
	value   T
	pending *Future[T]
}

// Immediate tags a plain value.
func Immediate[T any](v T) Async[T] {
	return Async[T]{value: v}
}

// Pending tags an outstanding future.
func Pending[T any](f *Future[T]) Async[T] {
	return Async[T]{pending: f}
}

// Classify converts an arbitrary return value into the closed variant:
// native futures stay as-is, platform pseudo-futures and generic thenables
// are bridged through the canonical future exactly once, and anything else
// is an immediate value of type T. Classification happens only here, at the
// boundary; downstream logic branches on the variant tag alone.
func Classify[T any](v any) Async[T] {
	switch t := v.(type) {
	case *Future[T]:
		return Pending(t)
	case PlatformFuture[T]:
		return Pending(FromPlatform(t))
	case Thenable[T]:
		return Pending(FromThenable(t))
	case nil:
		var zero T
		return Immediate(zero)
	default:
		return Immediate(v.(T))
	}
}

// IsPending reports whether the outcome is still outstanding.
func (a Async[T]) IsPending() bool {
	return a.pending != nil
}

// Value returns the immediate value and whether the outcome was immediate.
func (a Async[T]) Value() (T, bool) {
	return a.value, a.pending == nil
}

// Future returns the outcome as a future handle; an immediate value is
// lifted into an already-resolved future.
func (a Async[T]) Future() *Future[T] {
	if a.pending != nil {
		return a.pending
	}
	return Resolved(a.value)
}

// Await returns the settled result: immediately for the Immediate variant,
// otherwise by waiting on the pending future under ctx.
func (a Async[T]) Await(ctx context.Context) outcome.Result[T] {
	if a.pending == nil {
		return outcome.Ok(a.value)
	}
	return a.pending.Await(ctx)
}
