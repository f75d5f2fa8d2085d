package chainkit

import (
	"log/slog"

	"github.com/dmitrymomot/chainkit/core/logger"
)

// Engine composes handlers into pipelines. Every pipeline built by one Engine
// shares its decorators and its name registry, so a handler can jump to a
// named handler of any other pipeline from the same Engine.
//
// Build all pipelines before invoking them concurrently: the registry is meant
// to be written during construction and only read afterwards.
type Engine struct {
	registry   *registry
	decorators []Decorator
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDecorators appends decorators applied to every handler of every pipeline.
func WithDecorators(decorators ...Decorator) Option {
	return func(e *Engine) {
		e.decorators = append(e.decorators, decorators...)
	}
}

// WithLogger sets the logger used for build and signal events.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.logger = log
		}
	}
}

// New creates an Engine with its own registry.
func New(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logger.Component("chainkit"))
	e.registry = newRegistry(e.logger)
	return e
}

// SequenceOf composes handlers into a chain and returns its first link as a
// Handler. Control signals are not interpreted here; they propagate to the
// enclosing entry point, which makes the result suitable as a sub-handler.
func (e *Engine) SequenceOf(handlers ...Handler) Handler {
	first, async := e.build(handlers)
	return Handler{async: async, invoke: first}
}

// EntrySequenceOf composes handlers like SequenceOf and interprets control
// signals at the top, so the returned Handler is safe to call as an entry point.
func (e *Engine) EntrySequenceOf(handlers ...Handler) Handler {
	h := e.SequenceOf(handlers...)
	h.invoke = e.interpret(h.invoke)
	return h
}

// build wraps handlers in two passes: classification first, so every link
// knows whether anything after it is asynchronous, then composition.
func (e *Engine) build(handlers []Handler) (Invoker, bool) {
	if len(handlers) == 0 {
		return passthrough, false
	}

	links := make([]*link, len(handlers))

	tailAsync := false
	for i := len(handlers) - 1; i >= 0; i-- {
		links[i] = &link{
			engine:       e,
			chain:        links,
			pos:          i,
			handler:      handlers[i],
			treatAsAsync: tailAsync,
		}
		tailAsync = tailAsync || handlers[i].async
	}

	for _, l := range links {
		e.wrap(l)
	}

	e.logger.Debug("pipeline built",
		logger.Count("handlers", len(links)),
		logger.Async(tailAsync),
	)

	return links[0].call, tailAsync
}
