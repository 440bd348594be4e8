package composable

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/composable/pkg/rop"
)

func TestPipe_LastOutput(t *testing.T) {
	t.Parallel()

	res := Pipe(inc, dbl, inc)(context.Background(), 1)

	require.True(t, res.IsSuccess())
	assert.Equal(t, 5, res.Data())
}

func TestPipe_Identity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 9, Pipe[int]()(ctx, 9).Data())

	for _, in := range []int{-1, 0, 7} {
		assert.Equal(t, inc(ctx, in).Data(), Pipe(inc)(ctx, in).Data())
	}

	boom := errors.New("boom")
	assert.Equal(t, []error{boom}, Pipe(Fail[int, int](boom))(ctx, 1).Errors())
}

func TestPipe_Associative(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	left := Pipe(Pipe(inc, dbl), dbl)
	right := Pipe(inc, Pipe(dbl, dbl))
	for _, in := range []int{0, 1, 5} {
		assert.Equal(t, left(ctx, in).Data(), right(ctx, in).Data())
	}

	bad := failing[int, int]("bad")
	assert.Equal(t, Pipe(Pipe(inc, bad), dbl)(ctx, 1).Err().Error(), Pipe(inc, Pipe(bad, dbl))(ctx, 1).Err().Error())
}

func TestPipe_ShortCircuits(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := Lift(func(_ context.Context, n int) int {
		calls++
		return n
	})
	boom := errors.New("boom")

	res := Pipe(counting, Fail[int, int](boom), counting)(context.Background(), 1)

	require.True(t, res.IsFailure())
	assert.Equal(t, []error{boom}, res.Errors())
	assert.Equal(t, 1, calls)
}

func TestPipe_Typed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, "4", Pipe2(inc, Pipe2(dbl, str))(ctx, 1).Data())
	assert.Equal(t, "4", Pipe3(inc, dbl, str)(ctx, 1).Data())
	assert.Equal(t, "5", Pipe4(inc, dbl, inc, str)(ctx, 1).Data())

	res := Pipe3(inc, failing[int, int]("mid"), str)(ctx, 1)
	require.True(t, res.IsFailure())
	assert.EqualError(t, res.Err(), "mid")
}

func TestSequence_CollectsOutputs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Sequence(inc, dbl, inc)(ctx, 1)
	require.True(t, res.IsSuccess())
	if diff := cmp.Diff([]int{2, 4, 5}, res.Data()); diff != "" {
		t.Fatalf("unexpected outputs (-want +got):\n%s", diff)
	}

	assert.Equal(t, []int{}, Sequence[int]()(ctx, 1).Data())
}

func TestSequence_FirstFailureUntouched(t *testing.T) {
	t.Parallel()

	e1 := rop.NewInputError("first", "a")
	e2 := errors.New("second")
	res := Sequence(inc, Fail[int, int](e1, e2), Fail[int, int](errors.New("never")))(context.Background(), 1)

	require.True(t, res.IsFailure())
	assert.Equal(t, []error{e1, e2}, res.Errors())
}

func TestSequence_Typed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	two := Sequence2(inc, str)(ctx, 1)
	require.True(t, two.IsSuccess())
	assert.Equal(t, Tuple2[int, string]{First: 2, Second: "2"}, two.Data())

	// pipe keeps only the last element of the same chain
	assert.Equal(t, two.Data().Second, Pipe2(inc, str)(ctx, 1).Data())

	three := Sequence3(inc, dbl, str)(ctx, 1)
	assert.Equal(t, Tuple3[int, int, string]{First: 2, Second: 4, Third: "4"}, three.Data())

	bad := Sequence3(inc, dbl, failing[int, string]("last"))(ctx, 1)
	assert.EqualError(t, bad.Err(), "last")

	badFirst := Sequence2(failing[int, int]("first"), str)(ctx, 1)
	assert.EqualError(t, badFirst.Err(), "first")
}
