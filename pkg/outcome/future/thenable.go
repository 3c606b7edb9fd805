package future

import "github.com/ib-77/outcome/pkg/outcome"

// Thenable is the generic async-continuation contract: any value exposing a
// two-callback Then, regardless of origin. It has no separate rejection
// channel; failures are delivered through the second callback.
type Thenable[T any] interface {
	Then(resolve func(T), reject func(error))
}

// PlatformFuture is the pseudo-future protocol of third-party platforms
// that expose separate Then and Catch registration but are not futures of
// this package. Rejections typically carry outcome.Fault values.
type PlatformFuture[T any] interface {
	Then(resolve func(T))
	Catch(reject func(error))
}

// FromThenable coerces a generic thenable into a canonical future. The
// thenable's callbacks are registered exactly once; whichever fires first
// settles the future.
func FromThenable[T any](t Thenable[T]) *Future[T] {
	f, settle := New[T]()
	t.Then(
		func(v T) { settle(outcome.Ok(v)) },
		func(err error) { settle(outcome.Err[T](err)) },
	)
	return f
}

// FromPlatform bridges a platform pseudo-future into a canonical future so
// that recovery can be attached identically to the native case.
func FromPlatform[T any](p PlatformFuture[T]) *Future[T] {
	f, settle := New[T]()
	p.Then(func(v T) { settle(outcome.Ok(v)) })
	p.Catch(func(err error) { settle(outcome.Err[T](err)) })
	return f
}
