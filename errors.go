package chainkit

import (
	"errors"

	"github.com/dmitrymomot/chainkit/pkg/async"
)

var (
	// ErrHandlerNotFound is returned by Toolkit.JumpTo for a name nothing registered.
	// It is a genuine error, never interpreted as a control signal.
	ErrHandlerNotFound = errors.New("chainkit: no handler registered with this name")

	// ErrNilHandler is the panic value for constructors given a nil function.
	ErrNilHandler = errors.New("chainkit: handler function cannot be nil")

	// ErrTimeout is returned by Result.AwaitTimeout when the Result is still pending.
	ErrTimeout = async.ErrTimeout

	// ErrPanic wraps a value recovered from a panicking handler.
	ErrPanic = async.ErrPanic
)
