package chainkit

import (
	"context"
	"errors"

	"github.com/dmitrymomot/chainkit/core/logger"
)

// interpret wraps inv so no control signal escapes it. Abort resolves to its
// value, Jump resolves to the result of its (already interpreted) target, and
// every other error is returned unchanged. Pending results are interpreted
// when they settle.
func (e *Engine) interpret(inv Invoker) Invoker {
	return func(ctx context.Context, args ...any) Result {
		return inv(ctx, args...).Catch(ctx, e.resolveSignal)
	}
}

func (e *Engine) resolveSignal(ctx context.Context, err error) Result {
	var abort *AbortSignal
	if errors.As(err, &abort) {
		e.logger.DebugContext(ctx, "abort signal resolved", logger.Signal("abort"))
		return Value(abort.Value)
	}

	var jump *JumpSignal
	if errors.As(err, &jump) {
		e.logger.DebugContext(ctx, "jump signal resolved", logger.Signal("jump"), logger.Handler(jump.Name))
		return jump.target(ctx, jump.Args...)
	}

	return Err(err)
}
