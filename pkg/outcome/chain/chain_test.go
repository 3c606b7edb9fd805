package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/intercept"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, outcome.Ok(5))

	out := c.Result()
	if !out.IsOk() || out.Value() != 5 {
		t.Fatalf("expected Ok(5), got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()
	if !out.IsOk() || out.Value() != 7 {
		t.Fatalf("expected Ok(7), got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	called := false
	out := Then(Start(ctx, outcome.Err[int](boom)), func(ctx context.Context, v int) outcome.Result[int] {
		called = true
		return outcome.Ok(v + 1)
	}).Result()

	if out.IsOk() || !errors.Is(out.Err(), boom) {
		t.Fatalf("expected Err(boom), got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
	if called {
		t.Fatalf("onOk must not run when the chain already failed")
	}
}

func TestThen_OkPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Then(FromValue(ctx, 3), func(ctx context.Context, v int) outcome.Result[int] {
		return outcome.Ok(v * 2)
	}).Result()

	if !out.IsOk() || out.Value() != 6 {
		t.Fatalf("expected Ok(6), got: ok=%v, val=%v", out.IsOk(), out.Value())
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, 4), func(ctx context.Context, v int) (int, error) {
		return v * v, nil
	}).Result()
	if !out.IsOk() || out.Value() != 16 {
		t.Fatalf("expected Ok(16), got: ok=%v, val=%v", out.IsOk(), out.Value())
	}

	out = ThenTry(FromValue(ctx, 10), func(ctx context.Context, v int) (int, error) {
		return 0, errors.New("try-error")
	}).Result()
	if out.IsOk() || out.Err().Error() != "try-error" {
		t.Fatalf("expected Err(try-error), got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
}

func TestThenTry_PanicBecomesErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, 1), func(ctx context.Context, v int) (int, error) {
		panic("stage exploded")
	}).Result()

	if out.IsOk() {
		t.Fatalf("panic must convert to Err")
	}
	var p outcome.Panic
	if !errors.As(out.Err(), &p) || p.Value != "stage exploded" {
		t.Fatalf("expected Panic payload, got: %v", out.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Map(FromValue(ctx, 5), func(ctx context.Context, v int) string {
		if v > 3 {
			return "big"
		}
		return "small"
	}).Result()

	if !out.IsOk() || out.Value() != "big" {
		t.Fatalf("expected Ok(big), got: ok=%v, val=%v", out.IsOk(), out.Value())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	FromValue(ctx, 9).Ensure(func(ctx context.Context, v int) { seen = v })
	if seen != 9 {
		t.Fatalf("side effect must run on Ok, got: %d", seen)
	}

	seen = 0
	Start(ctx, outcome.Err[int](errors.New("x"))).Ensure(func(ctx context.Context, v int) { seen = v })
	if seen != 0 {
		t.Fatalf("side effect must not run on Err")
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	positive := func(_ context.Context, v int) error {
		if v <= 0 {
			return errors.New("must be positive")
		}
		return nil
	}
	even := func(_ context.Context, v int) error {
		if v%2 != 0 {
			return errors.New("must be even")
		}
		return nil
	}

	out := FromValue(ctx, 4).ValidateAll(false, positive, even).Result()
	if !out.IsOk() || out.Value() != 4 {
		t.Fatalf("all validators pass, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}

	out = FromValue(ctx, -3).ValidateAll(false, positive, even).Result()
	if out.IsOk() {
		t.Fatal("failing validators must fail the chain")
	}
	if got := outcome.GetErrors(out.Err()); len(got) != 2 {
		t.Fatalf("expected both failures joined, got: %v", got)
	}

	out = FromValue(ctx, -3).ValidateAll(true, positive, even).Result()
	if got := outcome.GetErrors(out.Err()); len(got) != 1 {
		t.Fatalf("breakOnError must stop at the first failure, got: %v", got)
	}
}

func TestValidateAll_FlattensJoinedFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	joined := func(_ context.Context, _ string) error {
		return errors.Join(errors.New("too short"), errors.New("bad charset"))
	}
	out := FromValue(ctx, "x").ValidateAll(false, joined).Result()
	if got := outcome.GetErrors(out.Err()); len(got) != 2 {
		t.Fatalf("joined validator failures must flatten, got: %v", got)
	}
}

func TestValidateAll_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	out := Start(ctx, outcome.Err[int](boom)).
		ValidateAll(false, func(_ context.Context, _ int) error {
			t.Fatal("validators must not run when the chain already failed")
			return nil
		}).Result()
	if !errors.Is(out.Err(), boom) {
		t.Fatalf("expected Err(boom), got: %v", out.Err())
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, outcome.Err[int](outcome.Fault{Code: 7, Message: "flaky"})).
		Recover(intercept.MatchCode(7), func(cause error, ctx context.Context) (int, error) {
			return 100, nil
		}).Result()
	if !out.IsOk() || out.Value() != 100 {
		t.Fatalf("matched failure must be recovered, got: ok=%v, val=%v", out.IsOk(), out.Value())
	}

	boom := errors.New("boom")
	out = Start(ctx, outcome.Err[int](boom)).
		Recover(intercept.MatchCode(7), func(cause error, ctx context.Context) (int, error) {
			t.Fatal("handler must not run on filter mismatch")
			return 0, nil
		}).Result()
	if out.IsOk() || !errors.Is(out.Err(), boom) {
		t.Fatalf("unmatched failure must pass through, got: ok=%v, err=%v", out.IsOk(), out.Err())
	}

	out = FromValue(ctx, 1).
		Recover(intercept.MatchAny(), func(cause error, ctx context.Context) (int, error) {
			t.Fatal("handler must not run on Ok")
			return 0, nil
		}).Result()
	if out.Value() != 1 {
		t.Fatalf("Ok must pass through Recover, got: %v", out.Value())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(FromValue(ctx, 2),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "err" })
	if got != "ok" {
		t.Fatalf("expected ok branch, got: %q", got)
	}

	got = Finally(Start(ctx, outcome.Err[int](errors.New("x"))),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "err" })
	if got != "err" {
		t.Fatalf("expected err branch, got: %q", got)
	}
}
