package chainkit

// applyDecorators builds a single invoker from a decorator stack and a handler.
func applyDecorators(inv Invoker, info Info, decorators []Decorator) Invoker {
	// Wrap in reverse order so the first decorator runs first
	for i := len(decorators) - 1; i >= 0; i-- {
		if decorated := decorators[i](inv, info); decorated != nil {
			inv = decorated
		}
	}
	return inv
}
