package async

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// complete stores the outcome exactly once and releases all waiters.
func (f *Future[U]) complete(result U, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Await blocks until the computation finishes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the computation with a timeout.
// Returns ErrTimeout when the future has not completed in time.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the future completes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async executes fn in its own goroutine and returns a future for its result.
// A context canceled before fn starts completes the future with ctx.Err().
// A panic inside fn completes the future with an error wrapping ErrPanic.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		var zero U

		defer func() {
			if r := recover(); r != nil {
				f.complete(zero, fmt.Errorf("%w: %v", ErrPanic, r))
			}
		}()

		// Early exit prevents running work nobody waits for
		select {
		case <-ctx.Done():
			f.complete(zero, ctx.Err())
			return
		default:
		}

		result, err := fn(ctx, param)
		f.complete(result, err)
	}()

	return f
}

// Resolved returns an already completed future holding value.
func Resolved[U any](value U) *Future[U] {
	f := newFuture[U]()
	f.complete(value, nil)
	return f
}

// Rejected returns an already completed future holding err.
func Rejected[U any](err error) *Future[U] {
	f := newFuture[U]()
	var zero U
	f.complete(zero, err)
	return f
}

// Then schedules fn to run once f completes successfully.
// Errors from f skip fn and are passed through unchanged.
func Then[U, V any](ctx context.Context, f *Future[U], fn func(context.Context, U) (V, error)) *Future[V] {
	return Async(ctx, f, func(ctx context.Context, f *Future[U]) (V, error) {
		result, err := f.Await()
		if err != nil {
			var zero V
			return zero, err
		}
		return fn(ctx, result)
	})
}

// Settle schedules fn to run once f completes, whatever the outcome.
// fn receives the result and error of f and decides the outcome of the returned future.
func Settle[U, V any](ctx context.Context, f *Future[U], fn func(context.Context, U, error) (V, error)) *Future[V] {
	return Async(ctx, f, func(ctx context.Context, f *Future[U]) (V, error) {
		result, err := f.Await()
		return fn(ctx, result, err)
	})
}
