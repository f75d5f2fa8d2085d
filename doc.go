// Package chainkit composes handlers into pipelines with explicit control flow.
//
// A pipeline is an ordered chain of handlers. Each handler's return value
// becomes the sole argument of the next one, so a chain of plain handlers
// behaves like function composition. Handlers may be synchronous or
// asynchronous; callers read both through the same Result.
//
// # Package Organization
//
//	github.com/dmitrymomot/chainkit              - Engine, handlers, toolkit and control signals
//	github.com/dmitrymomot/chainkit/decorator    - Logging, recovery, metrics, tracing and slow-call decorators
//	github.com/dmitrymomot/chainkit/core/config  - Type-safe environment variable loading
//	github.com/dmitrymomot/chainkit/core/logger  - Structured logging built on slog
//	github.com/dmitrymomot/chainkit/pkg/async    - Future pattern used for asynchronous handlers
//
// # Building Pipelines
//
// An Engine owns the decorators applied to every handler and a registry of
// named handlers. SequenceOf builds a chain usable as a sub-handler;
// EntrySequenceOf builds the same chain and resolves control signals at the
// top, which makes it the form to call from application code:
//
//	engine := chainkit.New(chainkit.WithLogger(log))
//
//	checkout := engine.EntrySequenceOf(
//		chainkit.Sync(validateCart),
//		chainkit.Go(chargeCard),
//		chainkit.Sync(renderReceipt),
//	)
//
//	receipt, err := checkout.Run(ctx, cart)
//
// # Asynchronous Handlers
//
// Async wraps a function returning an *async.Future; Go runs a blocking
// function in its own goroutine. Once any handler of a chain is asynchronous,
// the whole chain returns a pending Result and every handler still observes
// the effects of all handlers before it.
//
// # Control Flow
//
// Handlers created with WithToolkit read a Toolkit from their context and
// take charge of the rest of the chain:
//
//	auth := chainkit.Sync(func(ctx context.Context, args ...any) (any, error) {
//		tk := chainkit.ToolkitFrom(ctx)
//		if !authorized(args[0]) {
//			return nil, tk.JumpTo("login", args[0])
//		}
//		return tk.Next()
//	}, chainkit.WithToolkit())
//
// The control signals are closed:
//
//   - AbortWith(v): the entry point resolves to v; remaining handlers never run
//   - Toolkit.JumpTo(name, args...): the handler registered as name replaces the rest of the chain
//   - StopPropagationWith(v), returned as a value: only the local chain resolves to v
//
// Every other error is genuine and reaches the caller unchanged. Jumping to a
// name nothing registered fails with ErrHandlerNotFound.
//
// # Decorators
//
// A Decorator wraps the invoker of every handler the Engine builds and
// receives the handler's Info. The first decorator is the outermost. Ready
// made decorators live in the decorator package.
//
// Build every pipeline before invoking any of them concurrently: named
// handlers are registered during construction.
package chainkit
