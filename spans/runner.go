package spans

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrPanic wraps a panic that escaped the function run inside a span.
var ErrPanic = errors.New("panic inside span")

type runner struct {
	spanName string
	success  string
	failure  string
	spanKind trace.SpanKind
	tracer   trace.Tracer

	// sso are span start options passed to tracer.Start().
	sso []trace.SpanStartOption
}

func newRunner(tracer trace.Tracer, spanName string, opts ...Option) *runner {
	r := &runner{
		spanName: spanName,
		spanKind: trace.SpanKindInternal,
		tracer:   tracer,
	}

	for _, option := range opts {
		if option != nil {
			option(r)
		}
	}

	return r
}

// runWithSpan runs fn inside a new span. Errors set an Error status; a panic
// is recorded on the span and then re-raised.
func (r *runner) runWithSpan(ctx context.Context, fn func(ctx context.Context, span trace.Span) error) (errOut error) {
	opts := make([]trace.SpanStartOption, len(r.sso)+1)

	copy(opts, r.sso)
	opts[len(r.sso)] = trace.WithSpanKind(r.spanKind)

	ctx, span := r.tracer.Start(ctx, r.spanName, opts...)
	defer span.End()

	defer func() {
		if recovered := recover(); recovered != nil {
			span.SetAttributes(attribute.Bool("panic", true))

			err := fmt.Errorf("%w: %v\nstack trace:\n%s", ErrPanic, recovered, string(debug.Stack()))
			span.RecordError(err)
			r.setErrorStatus(span, err)

			panic(recovered)
		}
	}()

	err := fn(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setErrorStatus(span, err)
	} else {
		r.setSuccessStatus(span)
	}

	return err
}

func (r *runner) setErrorStatus(span trace.Span, err error) {
	if len(r.failure) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", r.failure, err.Error()))
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}

func (r *runner) setSuccessStatus(span trace.Span) {
	if len(r.success) > 0 {
		span.SetStatus(codes.Ok, r.success)
	} else {
		span.SetStatus(codes.Ok, "ok")
	}
}
