package sortedlist

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type settings struct {
	ctx         context.Context //nolint:containedctx
	log         *slog.Logger
	tracer      trace.Tracer
	name        string
	joinTimeout time.Duration
	metrics     bool
}

func newSettings(opts []Option) settings {
	cfg := DefaultConfig()

	s := settings{
		ctx:         context.Background(),
		name:        cfg.Name,
		joinTimeout: cfg.JoinTimeout,
		metrics:     cfg.Metrics,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Option configures a List at construction.
type Option func(*settings)

// WithName labels the list in logs and metrics.
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithContext supplies the context used for logging (subsystem, values added
// with logger.With). It is not used for cancellation; use Close for that.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithLogger overrides the logger otherwise taken from the context.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithTracer traces every drain cycle of the background sorter as a
// "sortedlist.drain" span. A tracer already stored with spans.WithTracer on
// the WithContext context works too.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) {
		s.tracer = tracer
	}
}

// WithJoinTimeout bounds how long Close waits for the background sorter to exit.
func WithJoinTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.joinTimeout = timeout
		}
	}
}

// WithoutMetrics disables the Prometheus collectors for this list.
func WithoutMetrics() Option {
	return func(s *settings) {
		s.metrics = false
	}
}

// WithConfig applies a Config, typically from ConfigFromEnv or LoadConfig.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		WithName(cfg.Name)(s)
		WithJoinTimeout(cfg.JoinTimeout)(s)
		s.metrics = cfg.Metrics
	}
}
