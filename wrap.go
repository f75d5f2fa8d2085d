package chainkit

import "context"

// link is one handler bound to its position in a chain.
type link struct {
	engine  *Engine
	chain   []*link // shared by all links of the chain
	pos     int
	handler Handler
	invoke  Invoker // decorated handler

	// treatAsAsync is set when a later handler of the chain is asynchronous:
	// the successor then runs as a continuation, never inline.
	treatAsAsync bool
}

// wrap decorates the handler and registers the link when the handler is named.
func (e *Engine) wrap(l *link) {
	inv := l.handler.invoke
	if inv == nil {
		inv = passthrough
	}

	info := Info{
		Name:     l.handler.name,
		Position: l.pos,
		Async:    l.handler.async,
		Toolkit:  l.handler.toolkit,
	}
	l.invoke = applyDecorators(inv, info, e.decorators)

	if info.Name != "" {
		e.registry.register(info.Name, e.interpret(l.call))
	}
}

// next returns the successor, resolved at call time through the shared chain.
func (l *link) next() Invoker {
	if l.pos+1 >= len(l.chain) {
		return nil
	}
	return l.chain[l.pos+1].call
}

func (l *link) call(ctx context.Context, args ...any) Result {
	if sp, ok := stopped(args); ok {
		return Value(sp.Value)
	}

	if l.handler.toolkit {
		// The handler owns the rest of the chain, so whatever it returns ends it.
		return l.callWithToolkit(ctx, args).Then(ctx, unwrapStop)
	}

	res := l.invoke(withoutToolkit(ctx), args...)

	next := l.next()
	switch {
	case next == nil:
		return res.Then(ctx, unwrapStop)
	case l.treatAsAsync && !res.IsPending():
		return res.deferred(ctx, pipe(next))
	default:
		return res.Then(ctx, pipe(next))
	}
}

// callWithToolkit hands control to the handler: it decides whether and how
// the chain continues through its Toolkit.
func (l *link) callWithToolkit(ctx context.Context, args []any) Result {
	tk := &Toolkit{
		ctx:      withoutToolkit(ctx),
		args:     args,
		next:     l.next(),
		registry: l.engine.registry,
	}
	tctx := withToolkit(ctx, tk)

	if l.treatAsAsync && !l.handler.async {
		// A synchronous handler waiting on an asynchronous successor runs off
		// the caller's goroutine so the caller gets a pending result.
		return Value(args).deferred(tctx, func(ctx context.Context, _ any) Result {
			return l.invoke(ctx, args...)
		})
	}
	return l.invoke(tctx, args...)
}

func pipe(next Invoker) func(ctx context.Context, v any) Result {
	return func(ctx context.Context, v any) Result {
		return next(ctx, v)
	}
}

// unwrapStop resolves a StopPropagation that reached the end of its chain.
func unwrapStop(_ context.Context, v any) Result {
	if sp, ok := v.(StopPropagation); ok {
		return Value(sp.Value)
	}
	return Value(v)
}
