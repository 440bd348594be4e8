package composable

import (
	"context"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// Fn is a composable unit over a single input.
type Fn[In, Out any] func(ctx context.Context, in In) rop.Result[Out]

// Fn2 is a composable unit over two inputs, the shape of schema-backed units
// (input, environment).
type Fn2[A, B, Out any] func(ctx context.Context, a A, b B) rop.Result[Out]

type Tuple2[A, B any] struct {
	First  A
	Second B
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Of wraps fn into a unit. A returned error or a panic becomes a failure.
func Of[In, Out any](fn func(ctx context.Context, in In) (Out, error)) Fn[In, Out] {
	return func(ctx context.Context, in In) (res rop.Result[Out]) {
		defer recoverInto(&res)

		out, err := fn(ctx, in)
		if err != nil {
			return failWith[Out](err)
		}
		return rop.Success(out)
	}
}

// Lift wraps a function that cannot return an error. Panics still become
// failures.
func Lift[In, Out any](fn func(ctx context.Context, in In) Out) Fn[In, Out] {
	return Of(func(ctx context.Context, in In) (Out, error) {
		return fn(ctx, in), nil
	})
}

func Of2[A, B, Out any](fn func(ctx context.Context, a A, b B) (Out, error)) Fn2[A, B, Out] {
	return func(ctx context.Context, a A, b B) (res rop.Result[Out]) {
		defer recoverInto(&res)

		out, err := fn(ctx, a, b)
		if err != nil {
			return failWith[Out](err)
		}
		return rop.Success(out)
	}
}

// Value is a unit that ignores its input and succeeds with v.
func Value[In, Out any](v Out) Fn[In, Out] {
	return func(context.Context, In) rop.Result[Out] {
		return rop.Success(v)
	}
}

// Fail is a unit that ignores its input and fails with errs.
func Fail[In, Out any](errs ...error) Fn[In, Out] {
	return func(context.Context, In) rop.Result[Out] {
		return solo.Fail[Out](errs...)
	}
}

// Tupled adapts a binary unit to the unary combinators.
func Tupled[A, B, Out any](fn Fn2[A, B, Out]) Fn[Tuple2[A, B], Out] {
	return func(ctx context.Context, in Tuple2[A, B]) rop.Result[Out] {
		return call2(ctx, fn, in.First, in.Second)
	}
}

// Untupled is the inverse of Tupled.
func Untupled[A, B, Out any](fn Fn[Tuple2[A, B], Out]) Fn2[A, B, Out] {
	return func(ctx context.Context, a A, b B) rop.Result[Out] {
		return call(ctx, fn, Tuple2[A, B]{First: a, Second: b})
	}
}

// FromSuccess exposes a unit as a plain function. A failure is returned as
// an *rop.ErrorList holding every error, optionally rewritten by onError, so
// a surrounding Of reports all of them.
func FromSuccess[In, Out any](fn Fn[In, Out],
	onError ...func(ctx context.Context, errs []error) ([]error, error)) func(ctx context.Context, in In) (Out, error) {

	unit := fn
	if len(onError) > 0 && onError[0] != nil {
		unit = MapError(fn, onError[0])
	}

	return func(ctx context.Context, in In) (Out, error) {
		res := call(ctx, unit, in)
		if res.IsSuccess() {
			return res.Data(), nil
		}
		var zero Out
		return zero, rop.NewErrorList(res.Errors()...)
	}
}

// Run invokes the unit. Unlike a direct call it also contains panics raised
// by units that were not built with Of.
func (fn Fn[In, Out]) Run(ctx context.Context, in In) rop.Result[Out] {
	return call(ctx, fn, in)
}

func (fn Fn2[A, B, Out]) Run(ctx context.Context, a A, b B) rop.Result[Out] {
	return call2(ctx, fn, a, b)
}

// call runs fn, turning a nil unit or a panic inside a hand-written unit into
// a failure. A hand-written unit returning a failure without errors (such as
// the zero Result) gets rop.ErrEmptyFailure.
func call[In, Out any](ctx context.Context, fn Fn[In, Out], in In) (res rop.Result[Out]) {
	defer recoverInto(&res)
	return settle(fn(ctx, in))
}

func call2[A, B, Out any](ctx context.Context, fn Fn2[A, B, Out], a A, b B) (res rop.Result[Out]) {
	defer recoverInto(&res)
	return settle(fn(ctx, a, b))
}

func settle[Out any](res rop.Result[Out]) rop.Result[Out] {
	if res.IsFailure() && len(res.Errors()) == 0 {
		return rop.Failure[Out]()
	}
	return res
}

func recoverInto[Out any](res *rop.Result[Out]) {
	if r := recover(); r != nil {
		*res = failWith[Out](rop.ToError(r))
	}
}

// failWith expands a bare *rop.ErrorList into its members. Any other error,
// including one that wraps an ErrorList, stays a single error.
func failWith[Out any](err error) rop.Result[Out] {
	if list, ok := err.(*rop.ErrorList); ok && list != nil {
		return rop.Failure[Out](list.List...)
	}
	return rop.Fail[Out](err)
}
