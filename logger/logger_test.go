package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/amp-labs/fastsort/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("includes subsystem and values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		base := slog.New(slog.NewJSONHandler(&buf, nil))
		ctx := With(WithSubsystem(WithLogger(t.Context(), base), "sorter"), "list", "orders")

		Get(ctx).Info("drained")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "sorter", record["subsystem"])
		assert.Equal(t, "orders", record["list"])
		assert.Equal(t, "drained", record["msg"])
	})

	t.Run("muted context discards output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		ctx := WithMuted(WithLogger(t.Context(), slog.New(slog.NewTextHandler(&buf, nil))), true)

		Get(ctx).Error("should not appear")
		assert.Empty(t, buf.String())
	})

	t.Run("nil context falls back to default", func(t *testing.T) {
		t.Parallel()

		assert.NotNil(t, Get(nil)) //nolint:staticcheck
		assert.NotNil(t, Get())
	})

	t.Run("with does not alias parent values", func(t *testing.T) {
		t.Parallel()

		parent := With(t.Context(), "a", 1)
		left := With(parent, "b", 2)
		right := With(parent, "c", 3)

		assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
		assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	})
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest // mutates slog.Default
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer

	ctx := envutil.WithEnvOverrides(t.Context(), map[string]string{
		"LOG_JSON":  "true",
		"LOG_LEVEL": "debug",
	})

	log, err := ConfigureLogging(ctx, "fastsort-test", WithOutput(&buf))
	require.NoError(t, err)

	log.Debug("configured")
	assert.Contains(t, buf.String(), `"msg":"configured"`)
	assert.Equal(t, "fastsort-test", GetSubsystem(t.Context()))

	t.Run("custom handler", func(t *testing.T) {
		var custom bytes.Buffer

		log, err := ConfigureLogging(t.Context(), "fastsort-test",
			WithHandler(slog.NewTextHandler(&custom, nil)), WithHandler(nil))
		require.NoError(t, err)

		log.Info("routed")
		assert.Contains(t, custom.String(), "msg=routed")
	})

	t.Run("rejects unknown output", func(t *testing.T) {
		bad := envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "syslog")

		_, err := ConfigureLogging(bad, "fastsort-test")
		require.ErrorIs(t, err, ErrInvalidLogOutput)
	})
}
