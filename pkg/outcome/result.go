package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant sum representing success (Ok) or failure (Err).
// Every instance carries a unique id and creation timestamp for tracing
// values through pipelines. Instances are immutable after construction.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the contained value, panicking with the contained error on
// the Err variant. Absence of a value at an unwrap site is a programming
// error and is never silently defaulted.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

// UnwrapOr returns the contained value or def on Err.
func (r Result[T]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the contained value, or derives one from the
// contained error on Err.
func (r Result[T]) UnwrapOrElse(def func(error) T) T {
	if r.ok {
		return r.value
	}
	return def(r.err)
}

// ToOption forgets the error: Ok(v) becomes Of(v) and Err becomes None.
// The conversion is lossy; recover a Result from an Option with OkOr.
func (r Result[T]) ToOption() Option[T] {
	if !r.ok {
		return Option[T]{}
	}
	return Of(r.value)
}

// MapResult applies f to an Ok value. A panic inside f is caught and
// converted to an Err of the recovered payload; the payload's type is
// erased to error in the process. On Err, f is not invoked.
func MapResult[In, Out any](r Result[In], f func(In) Out) (out Result[Out]) {
	if !r.ok {
		return Err[Out](r.err)
	}
	defer func() {
		if p := recover(); p != nil {
			out = Err[Out](AsError(p))
		}
	}()
	return Ok(f(r.value))
}

// FlatMapResult applies a result-returning f to an Ok value. On Err, f is
// not invoked and the error is carried over unchanged.
func FlatMapResult[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if !r.ok {
		return Err[Out](r.err)
	}
	return f(r.value)
}

// MatchResult dispatches to exactly one of the two branches.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}
