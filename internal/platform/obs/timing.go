package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Attach a request id to ctx so timings and logs can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation at debug level, or at warn level
// when it failed. Use as: defer obs.Time(ctx, log, "op")(&err).
func Time(ctx context.Context, log *zap.SugaredLogger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Warnw("op failed", "req_id", RequestID(ctx), "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		log.Debugw("op done", "req_id", RequestID(ctx), "op", name, "dur_ms", dur.Milliseconds())
	}
}

const loggerKey ctxKey = "logger"

// Attach a request scoped logger to ctx.
func WithLogger(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// Logger returns the logger stored in ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.SugaredLogger {
	if log, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok && log != nil {
		return log
	}
	return zap.NewNop().Sugar()
}
