package chain

import (
	"context"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/composable"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rop.Success(value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then runs a composable on the current value
func Then[T, U any](c *Chain[T], fn composable.Fn[T, U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, fn.Run),
	}
}

// ThenTry chains a function that returns (U, error). A panic in it still
// becomes a failure.
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, composable.Fn[T, U](func(ctx context.Context, in T) rop.Result[U] {
		return solo.Try(ctx, solo.Succeed(in), tryOnSuccess)
	}))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Then(c, composable.Lift(onSuccess))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T]) {
				onSuccess(ctx, result.Data())
			}),
	}
}

// Recover replaces a failure with the outcome of onFailure
func (c *Chain[T]) Recover(onFailure func(context.Context, []error) (T, error)) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}

	errs := c.result.Errors()
	return &Chain[T]{
		ctx: c.ctx,
		result: composable.Of(func(ctx context.Context, _ struct{}) (T, error) {
			return onFailure(ctx, errs)
		}).Run(c.ctx, struct{}{}),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, []error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
