package sortedlist

import (
	"context"
	"errors"
	"time"

	"github.com/amp-labs/fastsort/envutil"
)

const (
	defaultName        = "default"
	defaultJoinTimeout = 100 * time.Millisecond
)

// Config holds the tunables that can come from the environment or a file.
type Config struct {
	// Name labels the list in logs and metrics.
	Name string

	// JoinTimeout bounds how long Close waits for the background sorter.
	JoinTimeout time.Duration

	// Metrics enables the Prometheus collectors for the list.
	Metrics bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Name:        defaultName,
		JoinTimeout: defaultJoinTimeout,
		Metrics:     true,
	}
}

// ConfigFromEnv reads SORTEDLIST_NAME, SORTEDLIST_JOIN_TIMEOUT and
// SORTEDLIST_METRICS. Unset variables keep their defaults; malformed ones are
// reported together.
func ConfigFromEnv(ctx context.Context) (Config, error) {
	cfg := DefaultConfig()

	name := envutil.String(ctx, "SORTEDLIST_NAME", envutil.Default(defaultName))
	joinTimeout := envutil.Duration(ctx, "SORTEDLIST_JOIN_TIMEOUT",
		envutil.Default(defaultJoinTimeout),
		envutil.Validate(envutil.Positive[time.Duration]))
	metrics := envutil.Bool(ctx, "SORTEDLIST_METRICS", envutil.Default(true))

	var errs []error

	if v, err := name.Value(); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Name = v
	}

	if v, err := joinTimeout.Value(); err != nil {
		errs = append(errs, err)
	} else {
		cfg.JoinTimeout = v
	}

	if v, err := metrics.Value(); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Metrics = v
	}

	return cfg, errors.Join(errs...)
}

// LoadConfig reads a .json or .yaml env file (see envutil.LoadFile) and
// resolves it like ConfigFromEnv. Values in the file take precedence over the
// process environment.
func LoadConfig(ctx context.Context, path string) (Config, error) {
	vars, err := envutil.LoadFile(path)
	if err != nil {
		return DefaultConfig(), err
	}

	return ConfigFromEnv(envutil.WithEnvOverrides(ctx, vars))
}
