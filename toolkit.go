package chainkit

import (
	"context"
	"fmt"
)

// Toolkit gives a handler explicit control over its chain: continue, abort,
// or jump to a named handler. A fresh Toolkit is built for every invocation,
// so overlapping and recursive calls of the same handler never share one.
type Toolkit struct {
	ctx      context.Context
	args     []any
	next     Invoker
	registry *registry
}

// Args returns the arguments the handler was invoked with.
func (tk *Toolkit) Args() []any {
	return tk.args
}

// NextWith calls the next handler with args and waits for its result.
// Returns nil, nil when the handler is the last of its chain.
// Signals raised further down come back as the error; return it unchanged.
func (tk *Toolkit) NextWith(args ...any) (any, error) {
	if tk.next == nil {
		return nil, nil
	}
	return tk.next(tk.ctx, args...).Await()
}

// Next calls the next handler with the handler's own arguments.
func (tk *Toolkit) Next() (any, error) {
	return tk.NextWith(tk.args...)
}

// AbortWith returns an abort signal resolving the entry point to v.
func (tk *Toolkit) AbortWith(v any) error {
	return AbortWith(v)
}

// Abort aborts with the handler's first argument.
func (tk *Toolkit) Abort() error {
	if len(tk.args) == 0 {
		return AbortWith(nil)
	}
	return AbortWith(tk.args[0])
}

// JumpTo returns a jump signal to the handler registered as name.
// Returns an error wrapping ErrHandlerNotFound when name is unknown.
func (tk *Toolkit) JumpTo(name string, args ...any) error {
	target, ok := tk.registry.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrHandlerNotFound, name)
	}
	return &JumpSignal{Name: name, Args: args, target: target}
}
