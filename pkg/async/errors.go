package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the future is not complete in time.
	ErrTimeout = errors.New("async: operation timed out")

	// ErrPanic wraps a value recovered from a panicking asynchronous function.
	ErrPanic = errors.New("async: function panicked")
)
