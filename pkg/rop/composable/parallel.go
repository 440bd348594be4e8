package composable

import (
	"context"
	"errors"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/core"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// ErrNoUnits is the failure of First when it has nothing to run.
var ErrNoUnits = errors.New("no units to run")

// All runs every unit concurrently with the same input. It succeeds with the
// outputs in declaration order, or fails with the errors of every failed
// unit concatenated in declaration order.
func All[In, Out any](fns ...Fn[In, Out]) Fn[In, []Out] {
	return func(ctx context.Context, in In) rop.Result[[]Out] {
		results := runAll(ctx, fns, in)
		if errs := solo.Concat(results...); len(errs) > 0 {
			return rop.Failure[[]Out](errs...)
		}

		outputs := make([]Out, len(results))
		for i, r := range results {
			outputs[i] = r.Data()
		}
		return rop.Success(outputs)
	}
}

func All2[In, A, B any](f Fn[In, A], g Fn[In, B]) Fn[In, Tuple2[A, B]] {
	return func(ctx context.Context, in In) rop.Result[Tuple2[A, B]] {
		var ra rop.Result[A]
		var rb rop.Result[B]
		fanOut(ctx,
			func() { ra = call(ctx, f, in) },
			func() { rb = call(ctx, g, in) },
		)

		if ra.IsFailure() || rb.IsFailure() {
			return rop.Failure[Tuple2[A, B]](append(ra.Errors(), rb.Errors()...)...)
		}
		return rop.Success(Tuple2[A, B]{First: ra.Data(), Second: rb.Data()})
	}
}

func All3[In, A, B, C any](f Fn[In, A], g Fn[In, B], h Fn[In, C]) Fn[In, Tuple3[A, B, C]] {
	return func(ctx context.Context, in In) rop.Result[Tuple3[A, B, C]] {
		var ra rop.Result[A]
		var rb rop.Result[B]
		var rc rop.Result[C]
		fanOut(ctx,
			func() { ra = call(ctx, f, in) },
			func() { rb = call(ctx, g, in) },
			func() { rc = call(ctx, h, in) },
		)

		if ra.IsFailure() || rb.IsFailure() || rc.IsFailure() {
			errs := append(ra.Errors(), rb.Errors()...)
			return rop.Failure[Tuple3[A, B, C]](append(errs, rc.Errors()...)...)
		}
		return rop.Success(Tuple3[A, B, C]{First: ra.Data(), Second: rb.Data(), Third: rc.Data()})
	}
}

// Collect is All over named units. Its output maps every key to the output
// of its unit. Errors are reported in ascending key order.
func Collect[In, Out any](fns map[string]Fn[In, Out]) Fn[In, map[string]Out] {
	keys := slices.Sorted(maps.Keys(fns))
	units := make([]Fn[In, Out], len(keys))
	for i, k := range keys {
		units[i] = fns[k]
	}

	return func(ctx context.Context, in In) rop.Result[map[string]Out] {
		return solo.Map(ctx, call(ctx, All(units...), in), func(_ context.Context, outputs []Out) map[string]Out {
			collected := make(map[string]Out, len(keys))
			for i, k := range keys {
				collected[k] = outputs[i]
			}
			return collected
		})
	}
}

// Merge is All over units producing objects, shallow-merged left to right.
// A key produced by several units silently takes the value of the last one;
// prefer Collect or All when outputs may overlap.
func Merge[In any](fns ...Fn[In, map[string]any]) Fn[In, map[string]any] {
	return Map(All(fns...), func(_ context.Context, objs []map[string]any) (map[string]any, error) {
		return MergeObjects(objs...), nil
	})
}

// MergeObjects shallow-merges objs into a new map, later keys win.
func MergeObjects(objs ...map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, obj := range objs {
		maps.Copy(merged, obj)
	}
	return merged
}

// First runs every unit concurrently and succeeds with the output of the
// first successful unit in declaration order, regardless of which finished
// first. All units run to completion. If none succeeds it fails with all
// errors in declaration order.
func First[In, Out any](fns ...Fn[In, Out]) Fn[In, Out] {
	return func(ctx context.Context, in In) rop.Result[Out] {
		if len(fns) == 0 {
			return rop.Fail[Out](ErrNoUnits)
		}

		results := runAll(ctx, fns, in)
		for _, r := range results {
			if r.IsSuccess() {
				return r
			}
		}
		return rop.Failure[Out](solo.Concat(results...)...)
	}
}

func runAll[In, Out any](ctx context.Context, fns []Fn[In, Out], in In) []rop.Result[Out] {
	results := make([]rop.Result[Out], len(fns))
	tasks := make([]func(), len(fns))
	for i, fn := range fns {
		tasks[i] = func() { results[i] = call(ctx, fn, in) }
	}
	fanOut(ctx, tasks...)
	return results
}

// fanOut runs tasks concurrently, at most core.GetWorkerMaxCount at a time,
// and waits for all of them.
func fanOut(ctx context.Context, tasks ...func()) {
	var g errgroup.Group
	if limit := core.GetWorkerMaxCount(ctx, core.Unlimited); limit > 0 {
		g.SetLimit(limit)
	}
	for _, task := range tasks {
		g.Go(func() error {
			task()
			return nil
		})
	}
	_ = g.Wait()
}
