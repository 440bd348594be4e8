package core

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	LoggerOptionKey OptionKey = "logger_options"
)

// Unlimited disables the fan-out cap.
const Unlimited = -1

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type LoggerOptions struct {
	Logger *zap.Logger
}

// WithWorkerOptions caps how many units a parallel combinator runs at once.
// Values below 1 mean unlimited.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		if options.MaxCount.Value < 1 {
			return Unlimited
		}
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// Logger returns the logger stored in ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}
