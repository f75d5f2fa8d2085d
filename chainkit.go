package chainkit

import (
	"context"

	"github.com/dmitrymomot/chainkit/pkg/async"
)

// Func is a synchronous unit of work. Its return value becomes the sole
// argument of the next handler in the chain.
type Func func(ctx context.Context, args ...any) (any, error)

// AsyncFunc is an asynchronous unit of work. The next handler runs only after
// the returned future completes.
type AsyncFunc func(ctx context.Context, args ...any) *async.Future[any]

// Invoker is the uniform call form shared by synchronous and asynchronous handlers.
type Invoker func(ctx context.Context, args ...any) Result

// Decorator wraps a handler to add cross-cutting functionality.
// The engine applies decorators to every handler it wraps; the first decorator
// in the list becomes the outermost wrapper. Handler metadata stays with the
// engine, so a decorator only has to return a working Invoker.
type Decorator func(next Invoker, info Info) Invoker

// Info describes the handler a decorator is applied to.
type Info struct {
	Name     string // empty for anonymous handlers
	Position int    // index within the chain
	Async    bool   // declared asynchronous
	Toolkit  bool   // requested toolkit injection
}

// Label returns the handler name or "anonymous".
func (i Info) Label() string {
	if i.Name == "" {
		return "anonymous"
	}
	return i.Name
}
