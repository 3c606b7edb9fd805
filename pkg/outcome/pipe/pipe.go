package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/intercept"
)

type optionKey string

const workerOptionKey optionKey = "pipe_worker_options"

type workerOptions struct {
	maxCount int
}

// WithWorkers sets the worker count used by stages run under ctx.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: maxWorkers})
}

func workerCount(ctx context.Context, defaultWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok && options.maxCount > 0 {
		return options.maxCount
	}
	return defaultWorkers
}

// Source lifts plain values into a stream of Ok results. The stream closes
// after the last value or as soon as ctx ends.
func Source[T any](ctx context.Context, values ...T) <-chan outcome.Result[T] {
	out := make(chan outcome.Result[T])

	go func() {
		defer close(out)
		for _, v := range values {
			select {
			case out <- outcome.Ok(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Stage fans the input stream out over the ctx-configured number of workers
// (default 1), applying fn to every result. The output closes once the
// input is drained or ctx ends.
func Stage[In, Out any](ctx context.Context, in <-chan outcome.Result[In],
	fn func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out]) <-chan outcome.Result[Out] {

	out := make(chan outcome.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workerCount(ctx, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case r, ok := <-in:
					if !ok {
						return
					}
					select {
					case out <- fn(ctx, r):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Lift turns a fallible function into a stage function: an Err input is
// carried over without invoking fn, and fn's error or panic becomes Err.
func Lift[In, Out any](fn func(ctx context.Context, v In) (Out, error)) func(
	ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {

	return func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		if r.IsErr() {
			return outcome.Err[Out](r.Err())
		}
		return intercept.TryCall(ctx, r.Value(), fn)
	}
}

// Guard is Lift with interception spliced in: failures of fn that match the
// filter are replaced by the handler's outcome before entering the stream;
// unmatched failures continue down the failure track as Err. Cancellation
// errors are never recovered regardless of the filter, so a cancelled stage
// rides the failure track and the stream winds down.
func Guard[In, Out any](fn func(ctx context.Context, v In) (Out, error),
	filter intercept.Filter, h intercept.Handler[In, Out]) func(
	ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {

	return Lift(intercept.Wrap(fn, noCancelFilter{inner: filter}, h))
}

// noCancelFilter excludes cancellation errors from recovery before
// delegating to the stage's declared filter.
type noCancelFilter struct {
	inner intercept.Filter
}

func (f noCancelFilter) Matches(cause error) bool {
	if outcome.IsCancellationError(cause) {
		return false
	}
	if f.inner == nil {
		return true
	}
	return f.inner.Matches(cause)
}

// Collect drains the stream into a slice, stopping early when ctx ends.
func Collect[T any](ctx context.Context, in <-chan outcome.Result[T]) []outcome.Result[T] {
	res := make([]outcome.Result[T], 0)
	for {
		select {
		case r, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}

// Finally maps every result of the stream to a final value via exhaustive
// dispatch, closing the output once the input is drained.
func Finally[In, Out any](ctx context.Context, in <-chan outcome.Result[In],
	onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}
				final := outcome.MatchResult(r,
					func(v In) Out { return onOk(ctx, v) },
					func(err error) Out { return onErr(ctx, err) },
				)
				select {
				case out <- final:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
