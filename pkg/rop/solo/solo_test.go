package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/composable/pkg/rop"
)

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, Succeed(2), func(ctx context.Context, n int) rop.Result[string] {
		return rop.Success(strconv.Itoa(n * 10))
	})
	require.True(t, out.IsSuccess())
	assert.Equal(t, "20", out.Data())

	called := false
	failed := Switch(ctx, Fail[int](errors.New("boom")), func(ctx context.Context, n int) rop.Result[string] {
		called = true
		return rop.Success("x")
	})
	assert.False(t, called)
	require.True(t, failed.IsFailure())
	assert.EqualError(t, failed.Err(), "boom")
}

func TestMapAndTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := Map(ctx, Succeed(3), func(ctx context.Context, n int) int { return n + 1 })
	assert.Equal(t, 4, m.Data())

	tr := Try(ctx, Succeed("7"), func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	assert.Equal(t, 7, tr.Data())

	bad := Try(ctx, Succeed("x"), func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	assert.True(t, bad.IsFailure())

	skipped := Try(ctx, Fail[string](errors.New("before")), func(ctx context.Context, s string) (int, error) {
		t.Fatal("must not run on failure")
		return 0, nil
	})
	assert.EqualError(t, skipped.Err(), "before")
}

func TestTeeAndDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	Tee(ctx, Succeed(1), func(ctx context.Context, r rop.Result[int]) { seen = append(seen, "tee") })
	Tee(ctx, Fail[int](errors.New("x")), func(ctx context.Context, r rop.Result[int]) { seen = append(seen, "never") })
	DoubleTee(ctx, Fail[int](errors.New("y")), nil, func(ctx context.Context, errs []error) {
		seen = append(seen, errs[0].Error())
	})

	assert.Equal(t, []string{"tee", "y"}, seen)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := func(ctx context.Context, n int) string { return "ok" }
	fail := func(ctx context.Context, errs []error) string { return "fail:" + strconv.Itoa(len(errs)) }

	assert.Equal(t, "ok", Finally(ctx, Succeed(1), ok, fail))
	assert.Equal(t, "fail:2", Finally(ctx, Fail[int](errors.New("a"), errors.New("b")), ok, fail))
}

func TestConcat(t *testing.T) {
	t.Parallel()

	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")
	errs := Concat(Fail[int](a), Succeed(1), Fail[int](b, c))

	assert.Equal(t, []error{a, b, c}, errs)
	assert.Empty(t, Concat(Succeed(1), Succeed(2)))
}
