package outcome

import (
	"encoding/json"
	"fmt"
)

// Option is a two-variant sum representing presence (Some) or absence (None)
// of a value. The zero Option is None; there is no mutation API, so a None
// obtained anywhere is interchangeable with any other None of the same type.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a non-nil value. It panics with ErrNilSome when given nil or a
// typed nil; use Of when nil should classify to None instead.
func Some[T any](v T) Option[T] {
	if IsNil(v) {
		panic(ErrNilSome)
	}
	return Option[T]{value: v, some: true}
}

// None returns the absent variant. It is the zero Option[T], so
// Of(nil-ish) == None[T]() holds for comparable T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of is the smart constructor: nil and typed-nil values classify to None,
// everything else to Some.
func Of[T any](v T) Option[T] {
	if IsNil(v) {
		return Option[T]{}
	}
	return Option[T]{value: v, some: true}
}

// OfFunc invokes the producer and classifies its output through Of. A
// returned error or a panic inside the producer is treated as evidence of
// absence: it is logged through the package tracer and yields None rather
// than propagating. This is the only place the library absorbs a failure.
func OfFunc[T any](f func() (T, error)) (o Option[T]) {
	defer func() {
		if p := recover(); p != nil {
			tracer().Errorf("option producer panicked: %v", p)
			o = Option[T]{}
		}
	}()

	v, err := f()
	if err != nil {
		tracer().Errorf("option producer failed: %v", err)
		return Option[T]{}
	}
	return Of(v)
}

// Unwrap returns the contained value, panicking with ErrEmptyOption on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrEmptyOption)
	}
	return o.value
}

// UnwrapOr returns the contained value or def on None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or the producer's output on None.
func (o Option[T]) UnwrapOrElse(def func() T) T {
	if o.some {
		return o.value
	}
	return def()
}

// UnwrapOrZero returns the contained value or the zero value on None.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Contains reports whether o is a Some holding exactly v, avoiding the
// unwrap-then-compare dance. A None never contains anything.
func Contains[T comparable](o Option[T], v T) bool {
	return o.some && o.value == v
}

// MapOption applies f to a Some value and re-classifies the output through
// Of, so an f returning nil yields None. On None, f is not invoked.
func MapOption[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if !o.some {
		return Option[Out]{}
	}
	return Of(f(o.value))
}

// FlatMapOption applies an option-returning f to a Some value without
// double-wrapping. On None, f is not invoked.
func FlatMapOption[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	if !o.some {
		return Option[Out]{}
	}
	return f(o.value)
}

// MapOptionOr maps like MapOption but substitutes def (re-classified through
// Of) when the input is None or when f produced a nil-ish output.
func MapOptionOr[In, Out any](o Option[In], f func(In) Out, def Out) Option[Out] {
	if mapped := MapOption(o, f); mapped.some {
		return mapped
	}
	return Of(def)
}

// MapOptionOrElse is MapOptionOr with a default producer instead of a value.
func MapOptionOrElse[In, Out any](o Option[In], f func(In) Out, def func() Out) Option[Out] {
	if mapped := MapOption(o, f); mapped.some {
		return mapped
	}
	return Of(def())
}

// OkOr promotes the option to a Result, supplying err for the None case.
func (o Option[T]) OkOr(err error) Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](err)
}

// OkOrElse is OkOr with an error producer invoked only on None.
func (o Option[T]) OkOrElse(err func() error) Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](err())
}

// Flatten collapses one level of option nesting. Some(Some(v)) yields
// Some(v) and None yields None; Some(None) panics with ErrFlattenEmpty,
// since a present-but-empty inner option indicates a construction bug.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return Option[T]{}
	}
	if !o.value.some {
		panic(ErrFlattenEmpty)
	}
	return o.value
}

// ToSome replaces a None with Of(v); a nil-ish v therefore still yields
// None. On Some, the receiver is returned unchanged.
func (o Option[T]) ToSome(v T) Option[T] {
	if o.some {
		return o
	}
	return Of(v)
}

// Clone returns an option holding a structural deep copy of the contained
// value. None clones to None.
func (o Option[T]) Clone() Option[T] {
	if !o.some {
		return o
	}
	return Option[T]{value: Clone(o.value), some: true}
}

// MarshalJSON makes options transparent under JSON serialization: a Some
// serializes to its bare value and a None to null. The round-trip is lossy;
// a deserialized null cannot be told apart from a literal null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

func (o Option[T]) String() string {
	if !o.some {
		return "none"
	}
	if s, ok := any(o.value).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
