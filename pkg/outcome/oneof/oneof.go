// Package oneof provides a small labeled discriminated wrapper for ad hoc
// unions: a value paired with a string tag, with match/is/map/equals and
// JSON serialization. It carries no asynchronous or recovery logic.
package oneof

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// OneOf pairs a value with the tag naming which variant of an ad hoc union
// it belongs to. Immutable after construction.
type OneOf[T any] struct {
	tag   string
	value T
}

// New constructs a tagged value.
func New[T any](tag string, v T) OneOf[T] {
	return OneOf[T]{tag: tag, value: v}
}

func (o OneOf[T]) Tag() string {
	return o.tag
}

func (o OneOf[T]) Value() T {
	return o.value
}

// Is reports whether the value carries the given tag.
func (o OneOf[T]) Is(tag string) bool {
	return o.tag == tag
}

// Match dispatches to the handler registered for the value's tag and
// reports whether one was found; at most one handler runs.
func (o OneOf[T]) Match(handlers map[string]func(T)) bool {
	h, ok := handlers[o.tag]
	if !ok {
		return false
	}
	h(o.value)
	return true
}

// MatchOr dispatches like Match but falls back to otherwise when no handler
// is registered for the value's tag. Exactly one function runs.
func (o OneOf[T]) MatchOr(handlers map[string]func(T), otherwise func(T)) {
	if h, ok := handlers[o.tag]; ok {
		h(o.value)
		return
	}
	otherwise(o.value)
}

// Equals reports tag equality plus structural equality of the values.
func (o OneOf[T]) Equals(other OneOf[T]) bool {
	return o.tag == other.tag && reflect.DeepEqual(o.value, other.value)
}

// Map applies f to the value, keeping the tag.
func Map[In, Out any](o OneOf[In], f func(In) Out) OneOf[Out] {
	return OneOf[Out]{tag: o.tag, value: f(o.value)}
}

type oneOfJSON[T any] struct {
	Tag   string `json:"tag"`
	Value T      `json:"value"`
}

func (o OneOf[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(oneOfJSON[T]{Tag: o.tag, Value: o.value})
}

func (o *OneOf[T]) UnmarshalJSON(data []byte) error {
	var raw oneOfJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*o = OneOf[T]{tag: raw.Tag, value: raw.Value}
	return nil
}

func (o OneOf[T]) String() string {
	return fmt.Sprintf("%s(%v)", o.tag, o.value)
}
