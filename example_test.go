package chainkit_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/chainkit"
)

func ExampleEngine_EntrySequenceOf() {
	engine := chainkit.New()

	normalize := engine.EntrySequenceOf(
		chainkit.Sync(func(_ context.Context, args ...any) (any, error) {
			return strings.TrimSpace(args[0].(string)), nil
		}),
		chainkit.Go(func(_ context.Context, args ...any) (any, error) {
			return strings.ToUpper(args[0].(string)), nil
		}),
	)

	v, err := normalize.Run(context.Background(), "  hello ")
	fmt.Println(v, err)
	// Output: HELLO <nil>
}

func ExampleToolkit_JumpTo() {
	engine := chainkit.New()

	_ = engine.SequenceOf(chainkit.Sync(func(_ context.Context, args ...any) (any, error) {
		return fmt.Sprintf("login required for %s", args[0]), nil
	}, chainkit.WithName("login")))

	orders := engine.EntrySequenceOf(
		chainkit.Sync(func(ctx context.Context, args ...any) (any, error) {
			tk := chainkit.ToolkitFrom(ctx)
			if args[0] == "" {
				return nil, tk.JumpTo("login", "/orders")
			}
			return tk.Next()
		}, chainkit.WithToolkit()),
		chainkit.Sync(func(_ context.Context, args ...any) (any, error) {
			return "orders for " + args[0].(string), nil
		}),
	)

	for _, user := range []string{"alice", ""} {
		v, _ := orders.Run(context.Background(), user)
		fmt.Println(v)
	}
	// Output:
	// orders for alice
	// login required for /orders
}

func ExampleAbortWith() {
	engine := chainkit.New()

	h := engine.EntrySequenceOf(
		chainkit.Sync(func(_ context.Context, args ...any) (any, error) {
			if args[0].(int) > 10 {
				return nil, chainkit.AbortWith("too large")
			}
			return args[0], nil
		}),
		chainkit.Sync(func(_ context.Context, args ...any) (any, error) {
			return args[0].(int) * 100, nil
		}),
	)

	small, _ := h.Run(context.Background(), 3)
	large, _ := h.Run(context.Background(), 30)
	fmt.Println(small, large)
	// Output: 300 too large
}

func ExampleStopPropagationWith() {
	engine := chainkit.New()

	route := func(prefix string) chainkit.Handler {
		return chainkit.Sync(func(_ context.Context, args ...any) (any, error) {
			path := args[0].(string)
			if strings.HasPrefix(path, prefix) {
				return chainkit.StopPropagationWith("matched " + prefix), nil
			}
			return path, nil
		})
	}

	router := engine.SequenceOf(route("/users"), route("/orders"), chainkit.Sync(func(context.Context, ...any) (any, error) {
		return "not found", nil
	}))
	h := engine.EntrySequenceOf(router, chainkit.Sync(func(_ context.Context, args ...any) (any, error) {
		return "[" + args[0].(string) + "]", nil
	}))

	for _, path := range []string{"/orders/7", "/nope"} {
		v, _ := h.Run(context.Background(), path)
		fmt.Println(v)
	}
	// Output:
	// [matched /orders]
	// [not found]
}

func ExampleResult_AwaitTimeout() {
	engine := chainkit.New()

	release := make(chan struct{})
	report := engine.EntrySequenceOf(chainkit.Go(func(context.Context, ...any) (any, error) {
		<-release
		return "report ready", nil
	}))

	res := report.Call(context.Background())
	_, err := res.AwaitTimeout(10 * time.Millisecond)
	fmt.Println(errors.Is(err, chainkit.ErrTimeout), res.Settled())

	close(release)
	v, _ := res.Await()
	fmt.Println(v, res.Settled())
	// Output:
	// true false
	// report ready true
}
