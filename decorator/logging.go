package decorator

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/chainkit"
	"github.com/dmitrymomot/chainkit/core/logger"
)

// Logging logs every invocation at debug level and genuine failures at error level.
// Control signals are logged at debug level: they are flow, not failures.
// Each invocation gets a random ID so start and end records can be correlated.
func Logging(log *slog.Logger) chainkit.Decorator {
	if log == nil {
		log = slog.Default()
	}

	return func(next chainkit.Invoker, info chainkit.Info) chainkit.Invoker {
		return func(ctx context.Context, args ...any) chainkit.Result {
			id := uuid.NewString()
			start := time.Now()

			log.DebugContext(ctx, "handler started",
				logger.Handler(info.Label()),
				logger.Position(info.Position),
				logger.Async(info.Async),
				logger.InvocationID(id),
			)

			return next(ctx, args...).Finally(ctx, func(_ any, err error) {
				duration := time.Since(start)

				if kind := chainkit.SignalKind(err); kind != "" {
					log.DebugContext(ctx, "handler signalled",
						logger.Handler(info.Label()),
						logger.InvocationID(id),
						logger.Signal(kind),
						logger.Duration(duration),
					)
					return
				}

				if err != nil {
					log.ErrorContext(ctx, "handler failed",
						logger.Handler(info.Label()),
						logger.Position(info.Position),
						logger.InvocationID(id),
						logger.Error(err),
						logger.Duration(duration),
					)
					return
				}

				log.DebugContext(ctx, "handler completed",
					logger.Handler(info.Label()),
					logger.InvocationID(id),
					logger.Duration(duration),
				)
			})
		}
	}
}

// SlowLog warns when an invocation takes longer than threshold.
// A non-positive threshold disables it.
func SlowLog(log *slog.Logger, threshold time.Duration) chainkit.Decorator {
	if log == nil {
		log = slog.Default()
	}

	return func(next chainkit.Invoker, info chainkit.Info) chainkit.Invoker {
		if threshold <= 0 {
			return next
		}
		return func(ctx context.Context, args ...any) chainkit.Result {
			start := time.Now()
			return next(ctx, args...).Finally(ctx, func(_ any, _ error) {
				if d := time.Since(start); d > threshold {
					log.WarnContext(ctx, "slow handler",
						logger.Handler(info.Label()),
						logger.Position(info.Position),
						logger.Duration(d),
						logger.Threshold(threshold),
					)
				}
			})
		}
	}
}
