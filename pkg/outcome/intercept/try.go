package intercept

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Try adapts a plain call into a Result: a returned error or a panic
// becomes Err, anything else Ok.
func Try[Out any](f func() (Out, error)) (res outcome.Result[Out]) {
	defer func() {
		if p := recover(); p != nil {
			res = outcome.Err[Out](outcome.AsError(p))
		}
	}()

	v, err := f()
	if err != nil {
		return outcome.Err[Out](err)
	}
	return outcome.Ok(v)
}

// TryCall is Try for context-taking callables.
func TryCall[In, Out any](ctx context.Context, in In,
	f func(context.Context, In) (Out, error)) outcome.Result[Out] {

	return Try(func() (Out, error) {
		return f(ctx, in)
	})
}
