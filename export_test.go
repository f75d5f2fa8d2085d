package chainkit

// RegisteredCount exposes the registry size to external tests.
func RegisteredCount(e *Engine) int {
	return e.registry.len()
}
