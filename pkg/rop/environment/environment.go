package environment

import (
	"context"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/composable"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// Pipe chains binary units. Data flows through the first argument while the
// environment given to the composite reaches every step unchanged.
func Pipe[T, E any](fns ...composable.Fn2[T, E, T]) composable.Fn2[T, E, T] {
	return func(ctx context.Context, in T, env E) rop.Result[T] {
		res := rop.Success(in)
		for _, fn := range fns {
			res = fn.Run(ctx, res.Data(), env)
			if !res.IsSuccess() {
				return res
			}
		}
		return res
	}
}

func Pipe2[A, B, C, E any](f composable.Fn2[A, E, B], g composable.Fn2[B, E, C]) composable.Fn2[A, E, C] {
	return func(ctx context.Context, in A, env E) rop.Result[C] {
		return solo.Switch(ctx, f.Run(ctx, in, env), func(ctx context.Context, b B) rop.Result[C] {
			return g.Run(ctx, b, env)
		})
	}
}

func Pipe3[A, B, C, D, E any](f composable.Fn2[A, E, B], g composable.Fn2[B, E, C],
	h composable.Fn2[C, E, D]) composable.Fn2[A, E, D] {
	return Pipe2(Pipe2(f, g), h)
}

// Sequence works like Pipe but keeps every step's output. An empty sequence
// succeeds with an empty slice.
func Sequence[T, E any](fns ...composable.Fn2[T, E, T]) composable.Fn2[T, E, []T] {
	return func(ctx context.Context, in T, env E) rop.Result[[]T] {
		outs := make([]T, 0, len(fns))
		next := in
		for _, fn := range fns {
			res := fn.Run(ctx, next, env)
			if !res.IsSuccess() {
				return rop.FailFrom[T, []T](res)
			}
			next = res.Data()
			outs = append(outs, next)
		}
		return rop.Success(outs)
	}
}

func Sequence2[In, A, B, E any](f composable.Fn2[In, E, A], g composable.Fn2[A, E, B]) composable.Fn2[In, E, composable.Tuple2[A, B]] {
	return func(ctx context.Context, in In, env E) rop.Result[composable.Tuple2[A, B]] {
		return solo.Switch(ctx, f.Run(ctx, in, env), func(ctx context.Context, a A) rop.Result[composable.Tuple2[A, B]] {
			return solo.Map(ctx, g.Run(ctx, a, env), func(_ context.Context, b B) composable.Tuple2[A, B] {
				return composable.Tuple2[A, B]{First: a, Second: b}
			})
		})
	}
}

// Branch picks the follow-up unit from fn's output. A nil follow-up keeps the
// output as is. The follow-up receives the same environment as fn.
func Branch[In, E, Out any](fn composable.Fn2[In, E, Out],
	resolver func(ctx context.Context, out Out) (composable.Fn2[Out, E, Out], error)) composable.Fn2[In, E, Out] {

	resolve := composable.Of(resolver)
	return func(ctx context.Context, in In, env E) rop.Result[Out] {
		res := fn.Run(ctx, in, env)
		if !res.IsSuccess() {
			return res
		}

		next := resolve.Run(ctx, res.Data())
		if !next.IsSuccess() {
			return rop.FailFrom[composable.Fn2[Out, E, Out], Out](next)
		}
		if next.Data() == nil {
			return res
		}
		return next.Data().Run(ctx, res.Data(), env)
	}
}

// Erase forgets the output type so differently typed units fit one Pipe.
func Erase[In, E, Out any](fn composable.Fn2[In, E, Out]) composable.Fn2[In, E, any] {
	return func(ctx context.Context, in In, env E) rop.Result[any] {
		return solo.Map(ctx, fn.Run(ctx, in, env), func(_ context.Context, out Out) any {
			return out
		})
	}
}
