// Package spans runs functions inside OpenTelemetry spans when the context
// carries a tracer, and runs them plainly when it does not.
package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Run executes fn within a span named name if ctx carries a tracer (see
// WithTracer). Without one, fn still runs and the miss is counted in
// fastsort_spans_without_tracer_total.
//
//	err := spans.Run(ctx, "sortedlist.drain", func(ctx context.Context, span trace.Span) error {
//	    span.SetAttributes(attribute.Int("moved", n))
//	    return nil
//	})
func Run(
	ctx context.Context, name string,
	fn func(ctx context.Context, span trace.Span) error, opts ...Option,
) error {
	tracer, found := TracerFromContext(ctx)
	if !found {
		spanWithoutTracerCounter.WithLabelValues(name).Inc()

		return fn(ctx, trace.SpanFromContext(ctx))
	}

	return newRunner(tracer, name, opts...).runWithSpan(ctx, fn)
}
