package sortedlist_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amp-labs/fastsort/envutil"
	"github.com/amp-labs/fastsort/sortedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := sortedlist.ConfigFromEnv(t.Context())
		require.NoError(t, err)
		assert.Equal(t, sortedlist.DefaultConfig(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverrides(t.Context(), map[string]string{
			"SORTEDLIST_NAME":         "orders",
			"SORTEDLIST_JOIN_TIMEOUT": "250ms",
			"SORTEDLIST_METRICS":      "false",
		})

		cfg, err := sortedlist.ConfigFromEnv(ctx)
		require.NoError(t, err)
		assert.Equal(t, sortedlist.Config{
			Name:        "orders",
			JoinTimeout: 250 * time.Millisecond,
			Metrics:     false,
		}, cfg)
	})

	t.Run("malformed values are all reported", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverrides(t.Context(), map[string]string{
			"SORTEDLIST_JOIN_TIMEOUT": "soon",
			"SORTEDLIST_METRICS":      "maybe",
		})

		_, err := sortedlist.ConfigFromEnv(ctx)
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
		assert.Contains(t, err.Error(), "SORTEDLIST_JOIN_TIMEOUT")
		assert.Contains(t, err.Error(), "SORTEDLIST_METRICS")
	})

	t.Run("join timeout must be positive", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "SORTEDLIST_JOIN_TIMEOUT", "-1s")

		_, err := sortedlist.ConfigFromEnv(ctx)
		require.ErrorIs(t, err, envutil.ErrNonPositive)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sortedlist.yaml")
		require.NoError(t, os.WriteFile(path, []byte("env:\n  SORTEDLIST_NAME: ledger\n  SORTEDLIST_JOIN_TIMEOUT: 2s\n"), 0o600))

		cfg, err := sortedlist.LoadConfig(t.Context(), path)
		require.NoError(t, err)
		assert.Equal(t, "ledger", cfg.Name)
		assert.Equal(t, 2*time.Second, cfg.JoinTimeout)
		assert.True(t, cfg.Metrics)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sortedlist.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"env": {"SORTEDLIST_METRICS": "false"}}`), 0o600))

		cfg, err := sortedlist.LoadConfig(t.Context(), path)
		require.NoError(t, err)
		assert.False(t, cfg.Metrics)
	})

	t.Run("unknown extension", func(t *testing.T) {
		t.Parallel()

		cfg, err := sortedlist.LoadConfig(t.Context(), filepath.Join(t.TempDir(), "sortedlist.toml"))
		require.ErrorIs(t, err, envutil.ErrUnknownFileType)
		assert.Equal(t, sortedlist.DefaultConfig(), cfg)
	})

	t.Run("applied to a list", func(t *testing.T) {
		t.Parallel()

		cfg := sortedlist.DefaultConfig()
		cfg.Name = "configured"
		cfg.Metrics = false

		list := newIntList(t, sortedlist.WithConfig(cfg))
		list.AddAll(2, 1)
		assert.Equal(t, []int{1, 2}, list.OnceReady().Entries())
	})
}
