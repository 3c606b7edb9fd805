package pipe

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/intercept"
)

func TestSourceAndCollect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	results := Collect(ctx, Source(ctx, 1, 2, 3))
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Value())
	}
}

func TestStage_SingleWorkerKeepsOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	doubled := Stage(ctx, Source(ctx, 1, 2, 3), Lift(
		func(_ context.Context, v int) (int, error) {
			return v * 2, nil
		}))

	results := Collect(ctx, doubled)
	require.Len(t, results, 3)
	assert.Equal(t, 2, results[0].Value())
	assert.Equal(t, 4, results[1].Value())
	assert.Equal(t, 6, results[2].Value())
}

func TestStage_FanOut(t *testing.T) {
	t.Parallel()
	ctx := WithWorkers(context.Background(), 4)

	squared := Stage(ctx, Source(ctx, 1, 2, 3, 4, 5), Lift(
		func(_ context.Context, v int) (int, error) {
			return v * v, nil
		}))

	got := make([]int, 0, 5)
	for _, r := range Collect(ctx, squared) {
		require.True(t, r.IsOk())
		got = append(got, r.Value())
	}
	sort.Ints(got)
	assert.Equal(t, []int{1, 4, 9, 16, 25}, got)
}

func TestLift_ErrPassthroughAndPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	stage := Lift(func(_ context.Context, v int) (int, error) {
		if v == 2 {
			panic("bad element")
		}
		return v, nil
	})

	r := stage(ctx, outcome.Err[int](boom))
	assert.ErrorIs(t, r.Err(), boom, "Err input must be carried over without invoking fn")

	r = stage(ctx, outcome.Ok(2))
	var p outcome.Panic
	require.ErrorAs(t, r.Err(), &p)
}

func TestGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	stage := Guard(
		func(_ context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		},
		intercept.MatchAs[*strconv.NumError](),
		func(cause error, _ context.Context, _ string) (int, error) {
			return -1, nil
		})

	assert.Equal(t, 5, stage(ctx, outcome.Ok("5")).Value())
	assert.Equal(t, -1, stage(ctx, outcome.Ok("bad")).Value(), "matched failure replaced by handler outcome")

	boom := errors.New("upstream")
	assert.ErrorIs(t, stage(ctx, outcome.Err[string](boom)).Err(), boom)
}

func TestGuard_CancellationNotRecovered(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	stage := Guard(
		func(ctx context.Context, v int) (int, error) {
			if v == 1 {
				return 0, context.Canceled
			}
			return 0, context.DeadlineExceeded
		},
		intercept.MatchAny(),
		func(cause error, _ context.Context, _ int) (int, error) {
			t.Fatal("handler must not run for cancellation errors")
			return 0, nil
		})

	assert.ErrorIs(t, stage(ctx, outcome.Ok(1)).Err(), context.Canceled)
	assert.ErrorIs(t, stage(ctx, outcome.Ok(2)).Err(), context.DeadlineExceeded)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan outcome.Result[int], 2)
	in <- outcome.Ok(1)
	in <- outcome.Err[int](errors.New("x"))
	close(in)

	out := Finally(ctx, in,
		func(_ context.Context, v int) string { return "ok" },
		func(_ context.Context, err error) string { return "err" })

	got := make([]string, 0, 2)
	for s := range out {
		got = append(got, s)
	}
	assert.Equal(t, []string{"ok", "err"}, got)
}

func TestSource_StopsOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Collect(context.Background(), Source(ctx, 1, 2, 3))
	assert.LessOrEqual(t, len(results), 3, "cancelled source must terminate")
}
