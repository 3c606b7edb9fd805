package chain

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/intercept"
)

// Chain wraps an outcome.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result outcome.Result[T]
}

// Start creates a new chain from an outcome.Result
func Start[T any](ctx context.Context, result outcome.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: outcome.Ok(value),
	}
}

// Result returns the underlying outcome.Result
func (c *Chain[T]) Result() outcome.Result[T] {
	return c.result
}

// Then chains a function that returns outcome.Result[U]
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) outcome.Result[U]) *Chain[U] {
	if c.result.IsErr() {
		return &Chain[U]{ctx: c.ctx, result: outcome.Err[U](c.result.Err())}
	}
	return &Chain[U]{ctx: c.ctx, result: onOk(c.ctx, c.result.Value())}
}

// ThenTry chains a function that returns (U, error); its panic is caught
// and converted to Err like any other failure
func ThenTry[T, U any](c *Chain[T], tryOnOk func(context.Context, T) (U, error)) *Chain[U] {
	if c.result.IsErr() {
		return &Chain[U]{ctx: c.ctx, result: outcome.Err[U](c.result.Err())}
	}
	return &Chain[U]{
		ctx:    c.ctx,
		result: intercept.TryCall(c.ctx, c.result.Value(), tryOnOk),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: outcome.MapResult(c.result, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onOk func(context.Context, T)) *Chain[T] {
	if c.result.IsOk() {
		onOk(c.ctx, c.result.Value())
	}
	return c
}

// ValidateAll runs every validator against the current value on the success
// track and joins their failures into a single error; joined failures from a
// validator are flattened so the chain carries one flat list. With
// breakOnError set, validation stops at the first failing validator.
func (c *Chain[T]) ValidateAll(breakOnError bool,
	validators ...func(ctx context.Context, v T) error) *Chain[T] {

	if c.result.IsErr() {
		return c
	}
	var errs []error
	for _, validate := range validators {
		if err := validate(c.ctx, c.result.Value()); err != nil {
			errs = append(errs, outcome.GetErrors(err)...)
			if breakOnError {
				break
			}
		}
	}
	if len(errs) == 0 {
		return c
	}
	return &Chain[T]{ctx: c.ctx, result: outcome.Err[T](errors.Join(errs...))}
}

// Recover splices interception into the chain: a failed result whose error
// matches the filter is replaced by the handler's outcome, anything else
// passes through unchanged
func (c *Chain[T]) Recover(filter intercept.Filter,
	h func(cause error, ctx context.Context) (T, error)) *Chain[T] {

	if c.result.IsOk() {
		return c
	}
	wrapped := intercept.Wrap(
		func(context.Context, struct{}) (T, error) {
			var zero T
			return zero, c.result.Err()
		},
		filter,
		func(cause error, ctx context.Context, _ struct{}) (T, error) {
			return h(cause, ctx)
		},
	)
	v, err := wrapped(c.ctx, struct{}{})
	if err != nil {
		return &Chain[T]{ctx: c.ctx, result: outcome.Err[T](err)}
	}
	return &Chain[T]{ctx: c.ctx, result: outcome.Ok(v)}
}

// Finally collapses the chain into a final value using exhaustive dispatch
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U,
	onErr func(context.Context, error) U) U {

	return outcome.MatchResult(c.result,
		func(v T) U { return onOk(c.ctx, v) },
		func(err error) U { return onErr(c.ctx, err) },
	)
}
