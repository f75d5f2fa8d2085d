package chainkit

import "context"

type toolkitKey struct{}

// ToolkitFrom returns the Toolkit of the current invocation, or nil when the
// handler did not request one with WithToolkit.
func ToolkitFrom(ctx context.Context) *Toolkit {
	tk, _ := ctx.Value(toolkitKey{}).(*Toolkit)
	return tk
}

func withToolkit(ctx context.Context, tk *Toolkit) context.Context {
	return context.WithValue(ctx, toolkitKey{}, tk)
}

// withoutToolkit hides a toolkit inherited from an outer handler.
func withoutToolkit(ctx context.Context) context.Context {
	if ToolkitFrom(ctx) == nil {
		return ctx
	}
	return context.WithValue(ctx, toolkitKey{}, (*Toolkit)(nil))
}
