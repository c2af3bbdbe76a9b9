package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const tracerKey contextKey = "tracer"

// WithTracer stores an OpenTelemetry tracer in the context. Run only creates
// spans when it finds one.
//
//	ctx = spans.WithTracer(ctx, telemetry.Tracer())
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, tracerKey, tracer)
}

// TracerFromContext returns the tracer stored by WithTracer, if any.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	if ctx == nil {
		return nil, false
	}

	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)

	return tracer, ok && tracer != nil
}
