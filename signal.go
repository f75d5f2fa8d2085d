package chainkit

import (
	"errors"
	"fmt"
)

// The closed set of control signals understood by the engine:
//
//   - *AbortSignal: returned as an error, resolves the whole entry invocation to Value.
//   - *JumpSignal: returned as an error, transfers control to a registered handler.
//   - StopPropagation: returned as a value, resolves only the local chain to Value.
//
// Anything else a handler returns is a genuine value or error. Collaborating
// layers that need a distinct failure outcome return their own error type;
// there is no separate fail signal.

// AbortSignal discards the rest of the chain and resolves the entry point to Value.
type AbortSignal struct {
	Value any
}

// Error implements the error interface.
func (s *AbortSignal) Error() string {
	return "chainkit: abort signal"
}

// JumpSignal replaces the rest of the chain with the handler registered as Name,
// called with Args.
type JumpSignal struct {
	Name   string
	Args   []any
	target Invoker
}

// Error implements the error interface.
func (s *JumpSignal) Error() string {
	return fmt.Sprintf("chainkit: jump signal to %q", s.Name)
}

// StopPropagation is returned, not raised, by a handler that wants to finish
// its local chain early. The next handler in the same chain resolves to Value
// without running; at the end of a chain the chain itself resolves to Value.
type StopPropagation struct {
	Value any
}

// AbortWith returns an abort signal for the handler to return as its error.
//
//	return nil, chainkit.AbortWith(response)
func AbortWith(v any) error {
	return &AbortSignal{Value: v}
}

// StopPropagationWith wraps v so the local chain stops at the next handler.
//
//	return chainkit.StopPropagationWith(matched), nil
func StopPropagationWith(v any) StopPropagation {
	return StopPropagation{Value: v}
}

// IsSignal reports whether err carries an abort or jump signal.
func IsSignal(err error) bool {
	return SignalKind(err) != ""
}

// SignalKind returns "abort" or "jump" for control signals and "" otherwise.
func SignalKind(err error) string {
	if err == nil {
		return ""
	}
	var abort *AbortSignal
	if errors.As(err, &abort) {
		return "abort"
	}
	var jump *JumpSignal
	if errors.As(err, &jump) {
		return "jump"
	}
	return ""
}

// stopped reports whether the first argument is a StopPropagation value.
func stopped(args []any) (StopPropagation, bool) {
	if len(args) == 0 {
		return StopPropagation{}, false
	}
	sp, ok := args[0].(StopPropagation)
	return sp, ok
}
