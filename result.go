package chainkit

import (
	"context"
	"time"

	"github.com/dmitrymomot/chainkit/pkg/async"
)

// Result is the outcome of an invocation: a value, an error, or a pending
// future resolving to one of those. Callers read every kind the same way
// with Await, so they never need to know whether the chain was asynchronous.
type Result struct {
	value  any
	err    error
	future *async.Future[any]
}

// Value returns a resolved Result.
func Value(v any) Result {
	return Result{value: v}
}

// Err returns a failed Result.
func Err(err error) Result {
	return Result{err: err}
}

// Pending returns a Result that resolves with f.
func Pending(f *async.Future[any]) Result {
	return Result{future: f}
}

// IsPending reports whether the Result is backed by a future.
// A pending Result stays pending even after its future completes.
func (r Result) IsPending() bool {
	return r.future != nil
}

// Await blocks until the Result is resolved and returns its value.
func (r Result) Await() (any, error) {
	if r.future != nil {
		return r.future.Await()
	}
	return r.value, r.err
}

// AwaitTimeout waits at most timeout for the Result and returns ErrTimeout
// when it is still pending. The chain keeps running; only the wait ends.
func (r Result) AwaitTimeout(timeout time.Duration) (any, error) {
	if r.future != nil {
		return r.future.AwaitWithTimeout(timeout)
	}
	return r.value, r.err
}

// Settled reports whether Await would return without blocking.
func (r Result) Settled() bool {
	return r.future == nil || r.future.IsComplete()
}

// Future returns the Result as a future; resolved Results become completed futures.
func (r Result) Future() *async.Future[any] {
	switch {
	case r.future != nil:
		return r.future
	case r.err != nil:
		return async.Rejected[any](r.err)
	default:
		return async.Resolved(r.value)
	}
}

// Then continues with fn after a successful resolution. Errors skip fn.
// Resolved Results run fn inline; pending Results schedule it on the future.
func (r Result) Then(ctx context.Context, fn func(ctx context.Context, v any) Result) Result {
	if r.future == nil {
		if r.err != nil {
			return r
		}
		return fn(ctx, r.value)
	}
	return Pending(async.Then(detached(ctx), r.future, func(_ context.Context, v any) (any, error) {
		return fn(ctx, v).Await()
	}))
}

// Catch lets fn replace a failed resolution. Successful Results pass through.
func (r Result) Catch(ctx context.Context, fn func(ctx context.Context, err error) Result) Result {
	if r.future == nil {
		if r.err == nil {
			return r
		}
		return fn(ctx, r.err)
	}
	return Pending(async.Settle(detached(ctx), r.future, func(_ context.Context, v any, err error) (any, error) {
		if err == nil {
			return v, nil
		}
		return fn(ctx, err).Await()
	}))
}

// Finally calls fn with the outcome once the Result resolves and returns an
// equivalent Result. fn only observes; it cannot change the outcome.
func (r Result) Finally(ctx context.Context, fn func(v any, err error)) Result {
	if r.future == nil {
		fn(r.value, r.err)
		return r
	}
	return Pending(async.Settle(detached(ctx), r.future, func(_ context.Context, v any, err error) (any, error) {
		fn(v, err)
		return v, err
	}))
}

// deferred schedules fn as a continuation after r, always producing a pending Result.
func (r Result) deferred(ctx context.Context, fn func(ctx context.Context, v any) Result) Result {
	return Pending(async.Settle(detached(ctx), r.Future(), func(_ context.Context, v any, err error) (any, error) {
		if err != nil {
			return nil, err
		}
		return fn(ctx, v).Await()
	}))
}

// detached keeps continuations running after ctx is canceled. The engine never
// cancels work; handlers still receive the caller's ctx and may stop on it.
func detached(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
