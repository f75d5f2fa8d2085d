package chainkit

import (
	"context"

	"github.com/dmitrymomot/chainkit/pkg/async"
)

// Handler is a composable unit of work. It is a value: the engine copies and
// wraps it but never mutates the original.
type Handler struct {
	name    string
	async   bool
	toolkit bool
	invoke  Invoker
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithName registers the handler under name so other handlers can jump to it.
func WithName(name string) HandlerOption {
	return func(h *Handler) {
		h.name = name
	}
}

// WithToolkit requests a Toolkit for every invocation. The handler reads it
// with ToolkitFrom and becomes responsible for continuing the chain itself.
func WithToolkit() HandlerOption {
	return func(h *Handler) {
		h.toolkit = true
	}
}

// Sync creates a synchronous handler.
// Panics with ErrNilHandler if fn is nil.
func Sync(fn Func, opts ...HandlerOption) Handler {
	if fn == nil {
		panic(ErrNilHandler)
	}
	h := Handler{
		invoke: func(ctx context.Context, args ...any) Result {
			v, err := fn(ctx, args...)
			if err != nil {
				return Err(err)
			}
			return Value(v)
		},
	}
	return h.with(opts)
}

// Async creates an asynchronous handler. A nil future is treated as a nil result.
// Panics with ErrNilHandler if fn is nil.
func Async(fn AsyncFunc, opts ...HandlerOption) Handler {
	if fn == nil {
		panic(ErrNilHandler)
	}
	h := Handler{
		async: true,
		invoke: func(ctx context.Context, args ...any) Result {
			f := fn(ctx, args...)
			if f == nil {
				return Value(nil)
			}
			return Pending(f)
		},
	}
	return h.with(opts)
}

// Go creates an asynchronous handler that runs the blocking fn in its own goroutine.
func Go(fn Func, opts ...HandlerOption) Handler {
	if fn == nil {
		panic(ErrNilHandler)
	}
	return Async(func(ctx context.Context, args ...any) *async.Future[any] {
		return async.Async(ctx, args, func(ctx context.Context, args []any) (any, error) {
			return fn(ctx, args...)
		})
	}, opts...)
}

func (h Handler) with(opts []HandlerOption) Handler {
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Name returns the registration name, empty for anonymous handlers.
func (h Handler) Name() string { return h.name }

// IsAsync reports whether the handler produces pending results.
func (h Handler) IsAsync() bool { return h.async }

// InjectsToolkit reports whether the handler requested a Toolkit.
func (h Handler) InjectsToolkit() bool { return h.toolkit }

// Named returns a copy of the handler registered under name.
func (h Handler) Named(name string) Handler {
	h.name = name
	return h
}

// Call invokes the handler. The result may be pending; use Await to read it.
// The zero Handler passes its first argument through.
func (h Handler) Call(ctx context.Context, args ...any) Result {
	if h.invoke == nil {
		return passthrough(ctx, args...)
	}
	return h.invoke(ctx, args...)
}

// Run invokes the handler and waits for its result.
func (h Handler) Run(ctx context.Context, args ...any) (any, error) {
	return h.Call(ctx, args...).Await()
}

func passthrough(_ context.Context, args ...any) Result {
	if len(args) == 0 {
		return Value(nil)
	}
	return Value(args[0])
}
