// Package runlog wraps a single program run with a run-scoped logger and a
// structured summary entry written when the run ends.
package runlog

import (
	"context"
	"naturals/pkg/logger"
	"naturals/pkg/serrors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CtxKey is a string-based type used for storing values in run contexts.
type CtxKey string

const (
	// RunIDKey is the context key under which the current run ID is stored.
	RunIDKey CtxKey = "run_id"
)

// RunID returns the run ID stored in ctx, or "" outside of Wrap.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)

	return id
}

// Wrap runs next with a context carrying a fresh run ID and a logger tagged
// with it, then logs a run summary. next's error is returned unchanged.
//
// Invalid input is an expected outcome and is only logged at debug level;
// any other error is logged at error level.
func Wrap(ctx context.Context, next func(ctx context.Context) error) error {
	runID := uuid.New().String()
	ctx = context.WithValue(ctx, RunIDKey, runID)
	ctx = logger.WithFields(ctx, zap.String(string(RunIDKey), runID))

	start := time.Now()
	err := next(ctx)

	fields := []zap.Field{zap.Float64("latency", time.Since(start).Seconds())}
	kind := serrors.KindOf(err)
	if kind != nil {
		fields = append(fields, zap.String("kind", kind.Error()))
	}

	switch {
	case err == nil:
		logger.Debug(ctx, "Run log", fields...)
	case kind == serrors.ErrInvalidInput:
		logger.Debug(ctx, "Run log", append(fields, zap.Error(err))...)
	default:
		logger.Error(ctx, "Run failed", append(fields, zap.Error(err))...)
	}

	return err
}
