package future

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Future is a one-shot container that eventually settles with an
// outcome.Result[T]. The zero value is not usable; construct with New,
// Resolved, Rejected or Go.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	res  outcome.Result[T]
}

// New returns an unsettled future together with its settle function. The
// first settle wins; later calls are ignored, so at most one of resolution
// and rejection is ever observed.
func New[T any]() (*Future[T], func(outcome.Result[T])) {
	f := &Future[T]{done: make(chan struct{})}
	settle := func(r outcome.Result[T]) {
		f.once.Do(func() {
			f.res = r
			close(f.done)
		})
	}
	return f, settle
}

// Resolved returns a future already settled with Ok(v).
func Resolved[T any](v T) *Future[T] {
	f, settle := New[T]()
	settle(outcome.Ok(v))
	return f
}

// Rejected returns a future already settled with Err(err).
func Rejected[T any](err error) *Future[T] {
	f, settle := New[T]()
	settle(outcome.Err[T](err))
	return f
}

// Go runs fn on its own goroutine and returns a future for its outcome.
// A panic inside fn rejects the future instead of crashing the process.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f, settle := New[T]()
	go func() {
		defer func() {
			if p := recover(); p != nil {
				settle(outcome.Err[T](outcome.AsError(p)))
			}
		}()
		v, err := fn(ctx)
		if err != nil {
			settle(outcome.Err[T](err))
			return
		}
		settle(outcome.Ok(v))
	}()
	return f
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future has already settled.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the future settles or ctx ends. Context expiry yields
// Err(ctx.Err()) without consuming the settlement; a later Await can still
// observe the real result.
func (f *Future[T]) Await(ctx context.Context) outcome.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return outcome.Err[T](ctx.Err())
	}
}

// Then derives a future that, once f resolves, settles with fn's result. A
// rejection of f passes through unchanged and fn is not invoked. A panic
// inside fn rejects the derived future.
func Then[In, Out any](f *Future[In], fn func(In) outcome.Result[Out]) *Future[Out] {
	out, settle := New[Out]()
	go func() {
		<-f.done
		r := f.res
		if r.IsErr() {
			settle(outcome.Err[Out](r.Err()))
			return
		}
		defer func() {
			if p := recover(); p != nil {
				settle(outcome.Err[Out](outcome.AsError(p)))
			}
		}()
		settle(fn(r.Value()))
	}()
	return out
}

// Catch derives a future with a recovery channel attached: a rejection of f
// is replaced by fn's result, a resolution passes through untouched. A panic
// inside fn becomes the new rejection; there is no second recovery attempt.
func Catch[T any](f *Future[T], fn func(error) outcome.Result[T]) *Future[T] {
	out, settle := New[T]()
	go func() {
		<-f.done
		r := f.res
		if r.IsOk() {
			settle(r)
			return
		}
		defer func() {
			if p := recover(); p != nil {
				settle(outcome.Err[T](outcome.AsError(p)))
			}
		}()
		settle(fn(r.Err()))
	}()
	return out
}

// MapFuture derives a future resolving with fn applied to f's resolution.
func MapFuture[In, Out any](f *Future[In], fn func(In) Out) *Future[Out] {
	return Then(f, func(v In) outcome.Result[Out] {
		return outcome.Ok(fn(v))
	})
}

// FlatMapOption is the asynchronous counterpart of outcome.FlatMapOption:
// a None input resolves immediately to None without invoking fn.
func FlatMapOption[In, Out any](ctx context.Context, o outcome.Option[In],
	fn func(ctx context.Context, v In) *Future[outcome.Option[Out]]) *Future[outcome.Option[Out]] {

	if o.IsNone() {
		return Resolved(outcome.None[Out]())
	}
	return fn(ctx, o.Unwrap())
}

// FlatMapResult is the asynchronous counterpart of outcome.FlatMapResult:
// an Err input rejects immediately without invoking fn.
func FlatMapResult[In, Out any](ctx context.Context, r outcome.Result[In],
	fn func(ctx context.Context, v In) *Future[Out]) *Future[Out] {

	if r.IsErr() {
		return Rejected[Out](r.Err())
	}
	return fn(ctx, r.Value())
}
