package decorator

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/chainkit"
)

// DefaultTracerName is the instrumentation name used when no tracer is given.
const DefaultTracerName = "github.com/dmitrymomot/chainkit"

// Tracing starts one span per handler invocation and ends it when the result
// resolves. Genuine errors mark the span as failed; control signals are
// recorded as the chainkit.signal attribute.
// A nil tracer uses the global provider.
func Tracing(tracer trace.Tracer) chainkit.Decorator {
	if tracer == nil {
		tracer = otel.Tracer(DefaultTracerName)
	}

	return func(next chainkit.Invoker, info chainkit.Info) chainkit.Invoker {
		spanName := "chainkit.handler " + info.Label()
		attrs := []attribute.KeyValue{
			attribute.String("chainkit.handler", info.Label()),
			attribute.Int("chainkit.position", info.Position),
			attribute.Bool("chainkit.async", info.Async),
			attribute.Bool("chainkit.toolkit", info.Toolkit),
		}

		return func(ctx context.Context, args ...any) chainkit.Result {
			ctx, span := tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))

			return next(ctx, args...).Finally(ctx, func(_ any, err error) {
				defer span.End()

				if kind := chainkit.SignalKind(err); kind != "" {
					span.SetAttributes(attribute.String("chainkit.signal", kind))
					return
				}
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				}
			})
		}
	}
}
