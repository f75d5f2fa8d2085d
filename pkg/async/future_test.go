package async_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chainkit/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns computed value", func(t *testing.T) {
		t.Parallel()

		future := async.Async(context.Background(), 21, func(_ context.Context, n int) (int, error) {
			time.Sleep(20 * time.Millisecond)
			return n * 2, nil
		})

		result, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("propagates error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("boom")
		future := async.Async(context.Background(), "x", func(_ context.Context, _ string) (string, error) {
			return "", expectedErr
		})

		_, err := future.Await()
		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("skips work for canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		future := async.Async(ctx, 1, func(_ context.Context, n int) (int, error) {
			called = true
			return n, nil
		})

		_, err := future.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("converts panic to error", func(t *testing.T) {
		t.Parallel()

		future := async.Async(context.Background(), 1, func(_ context.Context, _ int) (int, error) {
			panic("kaboom")
		})

		_, err := future.Await()
		require.ErrorIs(t, err, async.ErrPanic)
		assert.Contains(t, err.Error(), "kaboom")
	})
}

func TestFutureIsComplete(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
		<-release
		return 1, nil
	})

	assert.False(t, future.IsComplete())
	close(release)

	_, err := future.Await()
	require.NoError(t, err)
	assert.True(t, future.IsComplete())

	select {
	case <-future.Done():
	default:
		t.Fatal("expected Done channel to be closed")
	}
}

func TestFutureAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	fast := async.Async(context.Background(), 10, func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	})
	result, err := fast.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 10, result)

	slow := async.Async(context.Background(), 500, func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	})
	_, err = slow.AwaitWithTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
}

func TestResolvedAndRejected(t *testing.T) {
	t.Parallel()

	ok := async.Resolved("done")
	assert.True(t, ok.IsComplete())
	result, err := ok.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", result)

	expectedErr := errors.New("nope")
	failed := async.Rejected[string](expectedErr)
	assert.True(t, failed.IsComplete())
	_, err = failed.Await()
	assert.ErrorIs(t, err, expectedErr)
}

func TestThen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("runs after success", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var order []string

		first := async.Async(ctx, 1, func(_ context.Context, n int) (int, error) {
			time.Sleep(20 * time.Millisecond)
			mu.Lock()
			order = append(order, "first")
			mu.Unlock()
			return n + 1, nil
		})
		second := async.Then(ctx, first, func(_ context.Context, n int) (int, error) {
			mu.Lock()
			order = append(order, "second")
			mu.Unlock()
			return n * 10, nil
		})

		result, err := second.Await()
		require.NoError(t, err)
		assert.Equal(t, 20, result)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("skips continuation on error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("upstream")
		called := false
		next := async.Then(ctx, async.Rejected[int](expectedErr), func(_ context.Context, n int) (int, error) {
			called = true
			return n, nil
		})

		_, err := next.Await()
		assert.ErrorIs(t, err, expectedErr)
		assert.False(t, called)
	})
}

func TestSettle(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("upstream")
	recovered := async.Settle(context.Background(), async.Rejected[int](expectedErr),
		func(_ context.Context, _ int, err error) (string, error) {
			if errors.Is(err, expectedErr) {
				return "recovered", nil
			}
			return "", err
		})

	result, err := recovered.Await()
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
}
