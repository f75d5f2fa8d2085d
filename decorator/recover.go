package decorator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/chainkit"
	"github.com/dmitrymomot/chainkit/core/logger"
)

// Recover converts a panic raised while calling a handler into an error
// wrapping chainkit.ErrPanic. Asynchronous handlers built on pkg/async already
// report panics from their goroutines the same way.
func Recover(log *slog.Logger, withStack bool) chainkit.Decorator {
	if log == nil {
		log = slog.Default()
	}

	return func(next chainkit.Invoker, info chainkit.Info) chainkit.Invoker {
		return func(ctx context.Context, args ...any) (res chainkit.Result) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				err := fmt.Errorf("%w: %v", chainkit.ErrPanic, r)
				attrs := []slog.Attr{
					logger.Handler(info.Label()),
					logger.Position(info.Position),
					logger.Error(err),
				}
				if withStack {
					attrs = append(attrs, logger.Stack())
				}
				log.LogAttrs(ctx, slog.LevelError, "handler panicked", attrs...)

				res = chainkit.Err(err)
			}()

			return next(ctx, args...)
		}
	}
}
