package spans

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

var errBoom = errors.New("boom")

func newRecorder(t *testing.T) (context.Context, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	return WithTracer(t.Context(), provider.Tracer("spans-test")), recorder
}

func TestRun_WithoutTracer(t *testing.T) {
	t.Parallel()

	name := t.Name()
	called := false

	err := Run(t.Context(), name, func(_ context.Context, span trace.Span) error {
		called = true

		assert.False(t, span.IsRecording())

		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.InDelta(t, 1, testutil.ToFloat64(spanWithoutTracerCounter.WithLabelValues(name)), 0)
}

func TestRun_WithTracer(t *testing.T) {
	t.Parallel()

	t.Run("records a successful span", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := newRecorder(t)

		err := Run(ctx, "work", func(_ context.Context, span trace.Span) error {
			span.SetAttributes(attribute.Int("moved", 3))

			return nil
		}, WithAttribute("list", attribute.StringValue("orders")), WithSuccessMessage("drained"))
		require.NoError(t, err)

		ended := recorder.Ended()
		require.Len(t, ended, 1)

		span := ended[0]
		assert.Equal(t, "work", span.Name())
		assert.Equal(t, trace.SpanKindInternal, span.SpanKind())
		assert.Equal(t, codes.Ok, span.Status().Code)
		assert.Contains(t, span.Attributes(), attribute.String("list", "orders"))
		assert.Contains(t, span.Attributes(), attribute.Int("moved", 3))
	})

	t.Run("records errors", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := newRecorder(t)

		err := Run(ctx, "work", func(context.Context, trace.Span) error {
			return errBoom
		}, WithErrorMessage("drain failed"), WithSpanKind(trace.SpanKindConsumer))
		require.ErrorIs(t, err, errBoom)

		span := recorder.Ended()[0]
		assert.Equal(t, trace.SpanKindConsumer, span.SpanKind())
		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "drain failed: boom", span.Status().Description)
	})

	t.Run("records and re-raises panics", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := newRecorder(t)

		assert.PanicsWithValue(t, "kaboom", func() {
			_ = Run(ctx, "work", func(context.Context, trace.Span) error {
				panic("kaboom")
			})
		})

		span := recorder.Ended()[0]
		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Contains(t, span.Attributes(), attribute.Bool("panic", true))
	})
}
