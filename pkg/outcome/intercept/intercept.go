package intercept

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/future"
)

// Handler is the recovery function: invoked at most once per intercepted
// invocation with the failure cause, the call context and the original
// argument. Its return becomes the substitute outcome; a non-nil error or a
// panic from the handler itself is the new failure, with no second recovery
// attempt.
type Handler[In, Out any] func(cause error, ctx context.Context, in In) (Out, error)

// Wrap returns a callable with fn's signature whose failures are routed to
// h when the filter matches. Both a returned error and a panic count as a
// synchronous failure; an unmatched error is returned unchanged and an
// unmatched panic is re-raised with its original payload.
func Wrap[In, Out any](fn func(context.Context, In) (Out, error), filter Filter,
	h Handler[In, Out]) func(context.Context, In) (Out, error) {

	return func(ctx context.Context, in In) (out Out, err error) {
		defer func() {
			if p := recover(); p != nil {
				cause := outcome.AsError(p)
				if !matched(filter, cause) {
					panic(p)
				}
				out, err = h(cause, ctx, in)
			}
		}()

		out, err = fn(ctx, in)
		if err != nil {
			if !matched(filter, err) {
				return out, err
			}
			return h(err, ctx, in)
		}
		return out, nil
	}
}

// WrapFuture wraps a callable returning a canonical future: synchronous
// failures are handled as in Wrap, and a recovery channel is attached to
// the returned future so a matched rejection settles with h's result while
// an unmatched rejection propagates as a rejection.
func WrapFuture[In, Out any](fn func(context.Context, In) *future.Future[Out], filter Filter,
	h Handler[In, Out]) func(context.Context, In) *future.Future[Out] {

	return func(ctx context.Context, in In) (out *future.Future[Out]) {
		defer func() {
			if p := recover(); p != nil {
				cause := outcome.AsError(p)
				if !matched(filter, cause) {
					panic(p)
				}
				out = recoverFuture(cause, ctx, in, h)
			}
		}()
		return guard(fn(ctx, in), ctx, in, filter, h)
	}
}

// WrapAsync is the heterogeneous form for callables whose return shape is
// only known at runtime. The return value is classified exactly once into
// the closed Async variant; a plain value comes back immediately with no
// recovery channel, every pending shape gets the same guarded channel as
// WrapFuture. Synchronous failures are handled as in Wrap.
func WrapAsync[In, Out any](fn func(context.Context, In) (any, error), filter Filter,
	h Handler[In, Out]) func(context.Context, In) (future.Async[Out], error) {

	return func(ctx context.Context, in In) (out future.Async[Out], err error) {
		defer func() {
			if p := recover(); p != nil {
				cause := outcome.AsError(p)
				if !matched(filter, cause) {
					panic(p)
				}
				var v Out
				v, err = h(cause, ctx, in)
				out = future.Immediate(v)
			}
		}()

		ret, ferr := fn(ctx, in)
		if ferr != nil {
			if !matched(filter, ferr) {
				return future.Async[Out]{}, ferr
			}
			v, herr := h(ferr, ctx, in)
			return future.Immediate(v), herr
		}

		a := future.Classify[Out](ret)
		if !a.IsPending() {
			return a, nil
		}
		return future.Pending(guard(a.Future(), ctx, in, filter, h)), nil
	}
}

// guard attaches the single recovery channel shared by every async shape.
func guard[In, Out any](src *future.Future[Out], ctx context.Context, in In,
	filter Filter, h Handler[In, Out]) *future.Future[Out] {

	return future.Catch(src, func(cause error) outcome.Result[Out] {
		if !matched(filter, cause) {
			return outcome.Err[Out](cause)
		}
		v, err := h(cause, ctx, in)
		if err != nil {
			return outcome.Err[Out](err)
		}
		return outcome.Ok(v)
	})
}

func recoverFuture[In, Out any](cause error, ctx context.Context, in In,
	h Handler[In, Out]) *future.Future[Out] {

	v, err := h(cause, ctx, in)
	if err != nil {
		return future.Rejected[Out](err)
	}
	return future.Resolved(v)
}

// Catcher wraps fn with an explicit filter; sugar for Wrap matching the
// direct function-wrapping entry point.
func Catcher[In, Out any](fn func(context.Context, In) (Out, error), filter Filter,
	h Handler[In, Out]) func(context.Context, In) (Out, error) {
	return Wrap(fn, filter, h)
}

// DefaultCatcher recovers any failure whatsoever, bypassing type checks
// entirely: even a panic with a plain string reaches the handler.
func DefaultCatcher[In, Out any](fn func(context.Context, In) (Out, error),
	h Handler[In, Out]) func(context.Context, In) (Out, error) {
	return Wrap(fn, MatchAny(), h)
}

// ErrorsCatcher recovers genuine error failures only; non-error panic
// payloads propagate unchanged.
func ErrorsCatcher[In, Out any](fn func(context.Context, In) (Out, error),
	h Handler[In, Out]) func(context.Context, In) (Out, error) {
	return Wrap(fn, MatchErrors(), h)
}

// MethodHandler is the recovery function for wrapped methods: it receives
// the method's diagnostic label and the receiver ahead of the context and
// argument.
type MethodHandler[In, Out any] func(cause error, label string, recv any,
	ctx context.Context, in In) (Out, error)

// BindMethod wraps a method implementation at composition time, forwarding
// the receiver and the method's declared name to the handler. The original
// implementation is captured once; the returned callable replaces it.
func BindMethod[In, Out any](label string, recv any,
	fn func(context.Context, In) (Out, error), filter Filter,
	h MethodHandler[In, Out]) func(context.Context, In) (Out, error) {

	return Wrap(fn, filter, func(cause error, ctx context.Context, in In) (Out, error) {
		return h(cause, label, recv, ctx, in)
	})
}
