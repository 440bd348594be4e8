package solo

import (
	"context"

	"github.com/ib-77/composable/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](errs ...error) rop.Result[T] {
	return rop.Failure[T](errs...)
}

// Switch feeds a successful value into onSuccess; failures are re-typed and
// passed along untouched.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Data())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Data()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Data())
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, errs []error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.Data())
		}
	} else if onError != nil {
		onError(ctx, input.Errors())
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, errs []error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Data())
	}
	return onError(ctx, input.Errors())
}

// Concat returns the errors of every failed result, in the order given.
func Concat[T any](results ...rop.Result[T]) []error {
	errs := make([]error, 0)
	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Errors()...)
		}
	}
	return errs
}
