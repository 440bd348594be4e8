package observe

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/composable"
	"github.com/ib-77/composable/pkg/rop/core"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// Log returns an observer for composable.Trace that writes one entry per
// run: debug on success, warn on failure with every error listed. A nil
// logger falls back to the one stored in the context.
func Log[In, Out any](logger *zap.Logger, name string) composable.Observer[In, Out] {
	return func(ctx context.Context, res rop.Result[Out], in In) error {
		l := logger
		if l == nil {
			l = core.Logger(ctx)
		}

		fields := []zap.Field{
			zap.String("unit", name),
			zap.Stringer("result_id", res.Id()),
			zap.Any("input", in),
		}
		solo.DoubleTee(ctx, res,
			func(_ context.Context, out Out) {
				l.Debug("unit succeeded", append(fields, zap.Any("output", out))...)
			},
			func(_ context.Context, errs []error) {
				l.Warn("unit failed", append(fields, zap.Array("errors", errorEntries(errs)))...)
			})
		return nil
	}
}

// Traced wraps fn with Log in one step.
func Traced[In, Out any](logger *zap.Logger, name string, fn composable.Fn[In, Out]) composable.Fn[In, Out] {
	return composable.Trace(Log[In, Out](logger, name))(fn)
}

type errorEntries []error

func (errs errorEntries) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, err := range errs {
		if err := enc.AppendObject(errorEntry{err}); err != nil {
			return err
		}
	}
	return nil
}

type errorEntry struct {
	err error
}

func (e errorEntry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", rop.ErrorName(e.err))
	enc.AddString("message", e.err.Error())
	if path := rop.ErrorPath(e.err); len(path) > 0 {
		enc.AddString("path", strings.Join(path, "."))
	}
	return nil
}
