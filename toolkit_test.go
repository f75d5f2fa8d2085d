package chainkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chainkit"
)

func TestToolkit(t *testing.T) {
	t.Parallel()

	t.Run("only requested handlers get a toolkit", func(t *testing.T) {
		t.Parallel()

		var outer, inner *chainkit.Toolkit
		engine := chainkit.New()
		h := engine.EntrySequenceOf(
			chainkit.Sync(func(ctx context.Context, _ ...any) (any, error) {
				outer = chainkit.ToolkitFrom(ctx)
				return outer.Next()
			}, chainkit.WithToolkit()),
			chainkit.Sync(func(ctx context.Context, args ...any) (any, error) {
				inner = chainkit.ToolkitFrom(ctx)
				return args[0], nil
			}),
		)

		v, err := h.Run(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, "x", v)
		assert.NotNil(t, outer)
		assert.Nil(t, inner)
		assert.Nil(t, chainkit.ToolkitFrom(context.Background()))
	})

	t.Run("args are the invocation arguments", func(t *testing.T) {
		t.Parallel()

		engine := chainkit.New()
		h := engine.EntrySequenceOf(chainkit.Sync(func(ctx context.Context, _ ...any) (any, error) {
			return chainkit.ToolkitFrom(ctx).Args(), nil
		}, chainkit.WithToolkit()))

		v, err := h.Run(context.Background(), 1, "two")
		require.NoError(t, err)
		assert.Equal(t, []any{1, "two"}, v)
	})

	t.Run("next with no successor returns nil", func(t *testing.T) {
		t.Parallel()

		engine := chainkit.New()
		h := engine.EntrySequenceOf(chainkit.Sync(func(ctx context.Context, _ ...any) (any, error) {
			v, err := chainkit.ToolkitFrom(ctx).Next()
			require.NoError(t, err)
			assert.Nil(t, v)
			return "last", nil
		}, chainkit.WithToolkit()))

		v, err := h.Run(context.Background(), "in")
		require.NoError(t, err)
		assert.Equal(t, "last", v)
	})

	t.Run("next with replaces successor arguments", func(t *testing.T) {
		t.Parallel()

		engine := chainkit.New()
		h := engine.EntrySequenceOf(
			chainkit.Sync(func(ctx context.Context, args ...any) (any, error) {
				v, err := chainkit.ToolkitFrom(ctx).NextWith(args[0].(int) + 1)
				if err != nil {
					return nil, err
				}
				return v.(int) * 10, nil
			}, chainkit.WithToolkit()),
			chainkit.Sync(mul(2)),
		)

		v, err := h.Run(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 40, v)
	})

	t.Run("handler may skip its successor", func(t *testing.T) {
		t.Parallel()

		engine := chainkit.New()
		h := engine.EntrySequenceOf(
			chainkit.Sync(func(context.Context, ...any) (any, error) {
				return "cached", nil
			}, chainkit.WithToolkit()),
			chainkit.Sync(func(context.Context, ...any) (any, error) {
				t.Error("must not run")
				return nil, nil
			}),
		)

		v, err := h.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "cached", v)
	})

	t.Run("next waits for asynchronous successors", func(t *testing.T) {
		t.Parallel()

		engine := chainkit.New()
		h := engine.EntrySequenceOf(
			chainkit.Sync(func(ctx context.Context, _ ...any) (any, error) {
				v, err := chainkit.ToolkitFrom(ctx).Next()
				if err != nil {
					return nil, err
				}
				return v.(int) + 1, nil
			}, chainkit.WithToolkit()),
			chainkit.Go(mul(3)),
		)

		res := h.Call(context.Background(), 2)
		assert.True(t, res.IsPending())

		v, err := res.Await()
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("signals from successors come back through next", func(t *testing.T) {
		t.Parallel()

		engine := chainkit.New()
		h := engine.EntrySequenceOf(
			chainkit.Sync(func(ctx context.Context, _ ...any) (any, error) {
				v, err := chainkit.ToolkitFrom(ctx).Next()
				assert.True(t, chainkit.IsSignal(err))
				return v, err
			}, chainkit.WithToolkit()),
			chainkit.Sync(func(context.Context, ...any) (any, error) {
				return nil, chainkit.AbortWith("denied")
			}),
		)

		v, err := h.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "denied", v)
	})

	t.Run("abort with explicit value", func(t *testing.T) {
		t.Parallel()

		engine := chainkit.New()
		h := engine.EntrySequenceOf(chainkit.Sync(func(ctx context.Context, _ ...any) (any, error) {
			return nil, chainkit.ToolkitFrom(ctx).AbortWith(map[string]int{"status": 403})
		}, chainkit.WithToolkit()))

		v, err := h.Run(context.Background(), "ignored")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"status": 403}, v)
	})

	t.Run("abort without arguments resolves to nil", func(t *testing.T) {
		t.Parallel()

		engine := chainkit.New()
		h := engine.EntrySequenceOf(chainkit.Sync(func(ctx context.Context, _ ...any) (any, error) {
			return nil, chainkit.ToolkitFrom(ctx).Abort()
		}, chainkit.WithToolkit()))

		v, err := h.Run(context.Background())
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
