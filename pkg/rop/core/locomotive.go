package core

import (
	"context"
	"sync"

	"github.com/ib-77/composable/pkg/rop"
)

type CancellationHandlers[In, Out any] struct {
	// OnCancel receives the not yet consumed inputs once ctx is done.
	OnCancel func(ctx context.Context, inputCh <-chan In, outCh chan<- rop.Result[Out])
	// OnCancelProcessed receives a result that was computed but could not be
	// delivered because ctx was done.
	OnCancelProcessed func(ctx context.Context, in In, processed rop.Result[Out])
}

// Locomotive pulls inputs from inputCh, runs engine on each and pushes the
// results to outCh until inputCh is closed or ctx is done. An engine call that
// has started always runs to completion.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- rop.Result[Out],
	engine func(ctx context.Context, input In) rop.Result[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- pr:
				if onSuccess != nil {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}
