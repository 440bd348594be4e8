package lite

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/composable"
	"github.com/ib-77/composable/pkg/rop/core"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// FinallyHandlers turn a result into a plain value.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, in In) Out
	OnError   func(ctx context.Context, errs []error) Out
}

// Run drives fn over every value of inputCh with the given number of
// concurrent lines. The output channel closes once inputCh is drained or
// ctx is done. Results arrive in completion order.
func Run[In, Out any](ctx context.Context, inputCh <-chan In, fn composable.Fn[In, Out], lines int) <-chan rop.Result[Out] {
	return start(ctx, inputCh, fn.Run, lines)
}

// Turnout continues a stream of results with fn. Failures skip fn and are
// passed along re-typed.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], fn composable.Fn[In, Out],
	lines int) <-chan rop.Result[Out] {

	return start(ctx, inputCh, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Switch(ctx, in, fn.Run)
	}, lines)
}

// Finally maps every result to a plain value.
func Finally[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}
				select {
				case out <- solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Collect runs fn over values and waits for every result.
func Collect[In, Out any](ctx context.Context, values []In, fn composable.Fn[In, Out], lines int) []rop.Result[Out] {
	return core.FromChanMany(ctx, Run(ctx, core.ToChanMany(ctx, values), fn, lines))
}

func start[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(ctx context.Context, in In) rop.Result[Out], lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}
	handlers := cancellationHandlers[In, Out]()

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func cancellationHandlers[In, Out any]() core.CancellationHandlers[In, Out] {
	return core.CancellationHandlers[In, Out]{
		OnCancelProcessed: func(ctx context.Context, _ In, processed rop.Result[Out]) {
			core.Logger(ctx).Debug("result dropped after cancellation",
				zap.Stringer("result_id", processed.Id()),
				zap.Bool("success", processed.IsSuccess()))
		},
	}
}
