package composable

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ib-77/composable/pkg/rop"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	inc = Lift(func(_ context.Context, n int) int { return n + 1 })
	dbl = Lift(func(_ context.Context, n int) int { return n * 2 })
	str = Lift(func(_ context.Context, n int) string { return strconv.Itoa(n) })
)

func failing[In, Out any](msg string) Fn[In, Out] {
	return Of(func(context.Context, In) (Out, error) {
		var zero Out
		return zero, errors.New(msg)
	})
}

func TestOf_Success(t *testing.T) {
	t.Parallel()

	res := Of(func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) })(context.Background(), "12")

	require.True(t, res.IsSuccess())
	assert.Equal(t, 12, res.Data())
	assert.Empty(t, res.Errors())
}

func TestOf_ReturnedError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	res := Of(func(context.Context, int) (int, error) { return 0, boom })(context.Background(), 1)

	require.True(t, res.IsFailure())
	assert.Equal(t, []error{boom}, res.Errors())
}

func TestOf_PanicIsCaptured(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	withError := Of(func(context.Context, int) (int, error) { panic(errors.New("exploded")) })
	withString := Of(func(context.Context, int) (int, error) { panic("plain") })
	withValue := Of(func(context.Context, int) (int, error) { panic(map[string]int{"code": 1}) })

	assert.EqualError(t, withError(ctx, 1).Err(), "exploded")
	assert.EqualError(t, withString(ctx, 1).Err(), "plain")
	assert.EqualError(t, withValue(ctx, 1).Err(), `{"code":1}`)
}

func TestOf_ErrorListIsUnwrapped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, b := rop.NewInputError("a", "x"), rop.NewEnvironmentError("b")
	returned := Of(func(context.Context, int) (int, error) { return 0, rop.NewErrorList(a, b) })
	panicked := Of(func(context.Context, int) (int, error) { panic(rop.NewErrorList(a, b)) })

	assert.Equal(t, []error{a, b}, returned(ctx, 1).Errors())
	assert.Equal(t, []error{a, b}, panicked(ctx, 1).Errors())
}

func TestOf_OtherErrorsStayWhole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, b := errors.New("a"), errors.New("b")
	multiWrap := Of(func(context.Context, int) (int, error) {
		return 0, fmt.Errorf("save user 7: %w, %w", a, b)
	})
	wrappedList := Of(func(context.Context, int) (int, error) {
		return 0, fmt.Errorf("nested: %w", rop.NewErrorList(a, b))
	})

	res := multiWrap(ctx, 1)
	require.Len(t, res.Errors(), 1)
	assert.EqualError(t, res.Errors()[0], "save user 7: a, b")

	nested := wrappedList(ctx, 1)
	require.Len(t, nested.Errors(), 1)
	assert.EqualError(t, nested.Errors()[0], "nested: ErrorList: a; b")
}

func TestRun_ContainsPanicsOfRawUnits(t *testing.T) {
	t.Parallel()

	raw := Fn[int, int](func(context.Context, int) rop.Result[int] { panic("raw") })
	res := raw.Run(context.Background(), 1)
	assert.EqualError(t, res.Err(), "raw")

	var missing Fn[int, int]
	assert.True(t, missing.Run(context.Background(), 1).IsFailure())
}

func TestRun_EmptyFailureGetsAnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	zero := Fn[int, int](func(context.Context, int) rop.Result[int] {
		var r rop.Result[int]
		return r
	})

	res := zero.Run(ctx, 1)
	require.True(t, res.IsFailure())
	assert.Equal(t, []error{rop.ErrEmptyFailure}, res.Errors())

	piped := Pipe2(zero, inc)(ctx, 1)
	assert.Equal(t, []error{rop.ErrEmptyFailure}, piped.Errors())

	zero2 := Fn2[int, int, int](func(context.Context, int, int) rop.Result[int] { return rop.Result[int]{} })
	assert.Equal(t, []error{rop.ErrEmptyFailure}, zero2.Run(ctx, 1, 2).Errors())
}

func TestValueAndFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, "v", Value[int]("v")(ctx, 0).Data())

	e := errors.New("e")
	assert.Equal(t, []error{e}, Fail[int, string](e)(ctx, 0).Errors())
}

func TestOf2AndTupled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	add := Of2(func(_ context.Context, a, b int) (int, error) { return a + b, nil })
	assert.Equal(t, 5, add(ctx, 2, 3).Data())

	tupled := Tupled(add)
	assert.Equal(t, 7, tupled(ctx, Tuple2[int, int]{First: 3, Second: 4}).Data())

	back := Untupled(Pipe2(tupled, dbl))
	assert.Equal(t, 14, back(ctx, 3, 4).Data())
	assert.Equal(t, 14, back.Run(ctx, 3, 4).Data())
}

func TestFromSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v, err := FromSuccess(inc)(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	a, b := errors.New("a"), errors.New("b")
	multi := Fail[int, int](a, b)

	_, err = FromSuccess(multi)(ctx, 1)
	var list *rop.ErrorList
	require.ErrorAs(t, err, &list)
	assert.Equal(t, []error{a, b}, list.List)

	// errors cross the plain call boundary and come back as one failure
	outer := Of(func(ctx context.Context, n int) (int, error) {
		return FromSuccess(multi)(ctx, n)
	})
	assert.Equal(t, []error{a, b}, outer(ctx, 1).Errors())

	renamed := FromSuccess(multi, func(_ context.Context, errs []error) ([]error, error) {
		return []error{fmt.Errorf("%d errors", len(errs))}, nil
	})
	_, err = renamed(ctx, 1)
	require.ErrorAs(t, err, &list)
	require.Len(t, list.List, 1)
	assert.EqualError(t, list.List[0], "2 errors")
}

func TestUnits_NeverPanicOut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	panicky := Fn[int, int](func(context.Context, int) rop.Result[int] { panic("nope") })
	units := []Fn[int, int]{
		Pipe(inc, panicky),
		Map(panicky, func(_ context.Context, n int) (int, error) { return n, nil }),
		First(panicky),
		Trace[int, int](func(context.Context, rop.Result[int], int) error { panic("observer") })(inc),
	}

	for i, u := range units {
		assert.NotPanics(t, func() {
			res := u(ctx, 1)
			assert.True(t, res.IsFailure(), "unit %d", i)
		})
	}
}
