package chainkit

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/chainkit/core/logger"
)

// registry maps handler names to their wrapped entry points for one Engine.
// It is written while pipelines are built and read by jumps at call time.
type registry struct {
	mu      sync.RWMutex
	entries map[string]Invoker
	logger  *slog.Logger
}

func newRegistry(log *slog.Logger) *registry {
	return &registry{
		entries: make(map[string]Invoker),
		logger:  log,
	}
}

// register stores the interpreted entry point for name. Last write wins.
func (r *registry) register(name string, target Invoker) {
	r.mu.Lock()
	_, exists := r.entries[name]
	r.entries[name] = target
	r.mu.Unlock()

	if exists {
		r.logger.Debug("handler registration replaced", logger.Handler(name))
		return
	}
	r.logger.Debug("handler registered", logger.Handler(name))
}

func (r *registry) lookup(name string) (Invoker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	target, ok := r.entries[name]
	return target, ok
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
