package sortedlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadiness(t *testing.T) {
	t.Parallel()

	t.Run("initially set does not block", func(t *testing.T) {
		t.Parallel()

		r := newReadiness(true)
		assert.True(t, r.IsSet())
		r.Wait()
	})

	t.Run("reset blocks until set", func(t *testing.T) {
		t.Parallel()

		r := newReadiness(true)
		r.Reset()
		r.Reset()
		assert.False(t, r.IsSet())

		released := make(chan struct{})

		go func() {
			r.Wait()
			close(released)
		}()

		select {
		case <-released:
			t.Fatal("waiter released before Set")
		case <-time.After(20 * time.Millisecond):
		}

		r.Set()
		r.Set()

		select {
		case <-released:
		case <-time.After(time.Second):
			t.Fatal("waiter not released by Set")
		}
	})

	t.Run("wait context honours cancellation", func(t *testing.T) {
		t.Parallel()

		r := newReadiness(false)

		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		require.ErrorIs(t, r.WaitContext(ctx), context.DeadlineExceeded)

		r.Set()
		require.NoError(t, r.WaitContext(t.Context()))
	})
}
