package composable

import (
	"context"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// Observer looks at the outcome of a unit together with its input.
type Observer[In, Out any] func(ctx context.Context, res rop.Result[Out], in In) error

// Branch runs fn and hands its output to resolver, which picks the unit to
// continue with. A nil unit ends the branch with fn's output. Failures of
// fn, of resolver and of the chosen unit are all returned as failures.
func Branch[In, Out any](fn Fn[In, Out],
	resolver func(ctx context.Context, out Out) (Fn[Out, Out], error)) Fn[In, Out] {

	resolve := Of(resolver)

	return func(ctx context.Context, in In) rop.Result[Out] {
		res := call(ctx, fn, in)
		if res.IsFailure() {
			return res
		}

		next := resolve(ctx, res.Data())
		if next.IsFailure() {
			return rop.FailFrom[Fn[Out, Out], Out](next)
		}
		if next.Data() == nil {
			return res
		}
		return call(ctx, next.Data(), res.Data())
	}
}

// CatchError gives catcher a chance to recover from a failure of fn. The
// catcher gets the errors and the original input; its outcome replaces the
// failure, so recovery can fail too.
func CatchError[In, Out any](fn Fn[In, Out],
	catcher func(ctx context.Context, errs []error, in In) (Out, error)) Fn[In, Out] {

	return func(ctx context.Context, in In) rop.Result[Out] {
		res := call(ctx, fn, in)
		if res.IsSuccess() {
			return res
		}

		errs := res.Errors()
		return Of(func(ctx context.Context, in In) (Out, error) {
			return catcher(ctx, errs, in)
		})(ctx, in)
	}
}

// MapError rewrites the errors of a failed fn. If mapper itself fails, its
// errors replace the original ones.
func MapError[In, Out any](fn Fn[In, Out],
	mapper func(ctx context.Context, errs []error) ([]error, error)) Fn[In, Out] {

	mapErrors := Of(mapper)

	return func(ctx context.Context, in In) rop.Result[Out] {
		res := call(ctx, fn, in)
		if res.IsSuccess() {
			return res
		}

		mapped := mapErrors(ctx, res.Errors())
		if mapped.IsFailure() {
			return rop.FailFrom[[]error, Out](mapped)
		}
		return rop.Failure[Out](mapped.Data()...)
	}
}

// Trace returns a decorator that shows every outcome of a unit to observer.
// The outcome is returned unchanged unless the observer fails, in which case
// the observer's failure is returned instead.
func Trace[In, Out any](observer Observer[In, Out]) func(fn Fn[In, Out]) Fn[In, Out] {
	return func(fn Fn[In, Out]) Fn[In, Out] {
		return func(ctx context.Context, in In) rop.Result[Out] {
			res := call(ctx, fn, in)

			traced := Of(func(ctx context.Context, in In) (struct{}, error) {
				return struct{}{}, observer(ctx, res, in)
			})(ctx, in)
			if traced.IsFailure() {
				return rop.FailFrom[struct{}, Out](traced)
			}
			return res
		}
	}
}

// Map transforms the output of a successful fn.
func Map[In, A, B any](fn Fn[In, A], mapper func(ctx context.Context, a A) (B, error)) Fn[In, B] {
	return Pipe2(fn, Of(mapper))
}

// MapInput adapts the input before it reaches fn.
func MapInput[In0, In, Out any](fn Fn[In, Out], mapper func(ctx context.Context, in In0) (In, error)) Fn[In0, Out] {
	return Pipe2(Of(mapper), fn)
}

// Tap runs effect on a successful output without changing it. A failing
// effect turns the result into its failure.
func Tap[In, Out any](fn Fn[In, Out], effect func(ctx context.Context, out Out) error) Fn[In, Out] {
	return func(ctx context.Context, in In) rop.Result[Out] {
		return solo.Switch(ctx, call(ctx, fn, in), Of(func(ctx context.Context, out Out) (Out, error) {
			return out, effect(ctx, out)
		}).Run)
	}
}
