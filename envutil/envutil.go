// Package envutil reads typed configuration values from environment variables,
// with per-context overrides so tests and embedded callers can supply values
// without touching the process environment.
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNonPositive     = errors.New("value must be positive")
)

// get returns a Reader for the given key. A context override wins over the
// process environment.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), strconv.ParseBool), opts)
}

func Int[I ~int | ~int32 | ~int64](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	rdr := Map(get(ctx, key), func(value string) (I, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)

		return I(n), err
	})

	return apply(rdr, opts)
}

func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), time.ParseDuration), opts)
}

// SlogLevel returns a Reader for the given environment variable key.
// Accepted values are debug, info, warn and error, in any case.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(ctx, key), func(value string) (slog.Level, error) {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "debug":
			return slog.LevelDebug, nil
		case "info":
			return slog.LevelInfo, nil
		case "warn":
			return slog.LevelWarn, nil
		case "error":
			return slog.LevelError, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
		}
	})

	return apply(rdr, opts)
}

// Positive is a validator for use with Validate.
func Positive[N ~int | ~int32 | ~int64 | ~float64](value N) error {
	if value <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositive, value)
	}

	return nil
}
