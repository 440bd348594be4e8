package composable

import (
	"context"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// Pipe passes the output of each unit to the next one and succeeds with the
// last output. The first failure is returned as is and later units do not
// run. Without units Pipe returns its input.
func Pipe[T any](fns ...Fn[T, T]) Fn[T, T] {
	return func(ctx context.Context, in T) rop.Result[T] {
		res := rop.Success(in)
		for _, fn := range fns {
			res = call(ctx, fn, res.Data())
			if res.IsFailure() {
				return res
			}
		}
		return res
	}
}

func Pipe2[A, B, C any](f Fn[A, B], g Fn[B, C]) Fn[A, C] {
	return func(ctx context.Context, in A) rop.Result[C] {
		return solo.Switch(ctx, call(ctx, f, in), g.Run)
	}
}

func Pipe3[A, B, C, D any](f Fn[A, B], g Fn[B, C], h Fn[C, D]) Fn[A, D] {
	return Pipe2(Pipe2(f, g), h)
}

func Pipe4[A, B, C, D, E any](f Fn[A, B], g Fn[B, C], h Fn[C, D], i Fn[D, E]) Fn[A, E] {
	return Pipe2(Pipe3(f, g, h), i)
}

// Sequence chains units like Pipe but succeeds with every intermediate
// output, in order.
func Sequence[T any](fns ...Fn[T, T]) Fn[T, []T] {
	return func(ctx context.Context, in T) rop.Result[[]T] {
		outputs := make([]T, 0, len(fns))
		current := in
		for _, fn := range fns {
			res := call(ctx, fn, current)
			if res.IsFailure() {
				return rop.FailFrom[T, []T](res)
			}
			current = res.Data()
			outputs = append(outputs, current)
		}
		return rop.Success(outputs)
	}
}

func Sequence2[In, A, B any](f Fn[In, A], g Fn[A, B]) Fn[In, Tuple2[A, B]] {
	return func(ctx context.Context, in In) rop.Result[Tuple2[A, B]] {
		return solo.Switch(ctx, call(ctx, f, in), func(ctx context.Context, a A) rop.Result[Tuple2[A, B]] {
			return solo.Map(ctx, call(ctx, g, a), func(_ context.Context, b B) Tuple2[A, B] {
				return Tuple2[A, B]{First: a, Second: b}
			})
		})
	}
}

func Sequence3[In, A, B, C any](f Fn[In, A], g Fn[A, B], h Fn[B, C]) Fn[In, Tuple3[A, B, C]] {
	return func(ctx context.Context, in In) rop.Result[Tuple3[A, B, C]] {
		return solo.Switch(ctx, call(ctx, Sequence2(f, g), in), func(ctx context.Context, ab Tuple2[A, B]) rop.Result[Tuple3[A, B, C]] {
			return solo.Map(ctx, call(ctx, h, ab.Second), func(_ context.Context, c C) Tuple3[A, B, C] {
				return Tuple3[A, B, C]{First: ab.First, Second: ab.Second, Third: c}
			})
		})
	}
}
