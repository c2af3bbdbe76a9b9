package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures the span created by Run.
type Option func(*runner)

// WithAttribute adds an attribute to the span when it is created.
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSpanKind sets the span kind. The default is SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithSuccessMessage sets the status description used when fn returns nil.
func WithSuccessMessage(msg string) Option {
	return func(r *runner) {
		r.success = msg
	}
}

// WithErrorMessage prefixes the status description used when fn fails.
func WithErrorMessage(msg string) Option {
	return func(r *runner) {
		r.failure = msg
	}
}
