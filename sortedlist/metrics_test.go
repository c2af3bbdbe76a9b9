package sortedlist

import (
	"runtime"
	"testing"
	"time"

	"github.com/amp-labs/fastsort/logger"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSubsystem = "sortedlist-test"

func TestMetrics_Lifecycle(t *testing.T) {
	t.Parallel()

	name := t.Name()
	ctx := logger.WithSubsystem(t.Context(), testSubsystem)

	list := New[int](WithContext(ctx), WithName(name), WithLogger(slogt.New(t)))

	assert.InDelta(t, 1, testutil.ToFloat64(aliveLists.WithLabelValues(testSubsystem, name)), 0)

	list.AddAll(5, 4, 3, 2, 1)
	list.OnceReady()

	assert.InDelta(t, 5, testutil.ToFloat64(enqueuedItems.WithLabelValues(testSubsystem, name)), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(sortedItems.WithLabelValues(testSubsystem, name)), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(storedItems.WithLabelValues(testSubsystem, name)), 0)

	// The drain is counted just after readiness is signalled.
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(drainCycles.WithLabelValues(testSubsystem, name)) >= 1
	}, time.Second, time.Millisecond)

	require.True(t, list.Remove(3))
	assert.InDelta(t, 1, testutil.ToFloat64(removedItems.WithLabelValues(testSubsystem, name)), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(storedItems.WithLabelValues(testSubsystem, name)), 0)

	require.NoError(t, list.Close())
	assert.InDelta(t, 0, testutil.ToFloat64(storedItems.WithLabelValues(testSubsystem, name)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(aliveLists.WithLabelValues(testSubsystem, name)), 0)
}

func TestMetrics_WorkerPanics(t *testing.T) {
	t.Parallel()

	name := t.Name()
	ctx := logger.WithSubsystem(t.Context(), testSubsystem)

	list := NewWithComparator(func(a, b int) int {
		if a == 0 {
			panic("zero")
		}

		return a - b
	}, WithContext(ctx), WithName(name), WithLogger(slogt.New(t)))

	t.Cleanup(func() { _ = list.Close() })

	list.AddAll(1, 0)
	list.OnceReady()

	assert.InDelta(t, 1, testutil.ToFloat64(workerPanics.WithLabelValues(testSubsystem, name)), 0)
	assert.Equal(t, 2, list.Count())
}

func TestMetrics_Disabled(t *testing.T) {
	t.Parallel()

	list := New[int](WithName(t.Name()), WithoutMetrics(), WithLogger(slogt.New(t)))
	t.Cleanup(func() { _ = list.Close() })

	assert.Nil(t, list.core.metrics)

	list.AddAll(2, 1)
	assert.Equal(t, []int{1, 2}, list.OnceReady().Entries())
}

func TestCleanup_ReleasesAbandonedList(t *testing.T) {
	t.Parallel()

	name := t.Name()
	ctx := logger.WithSubsystem(logger.WithMuted(t.Context(), true), testSubsystem)
	alive := aliveLists.WithLabelValues(testSubsystem, name)

	func() {
		list := New[int](WithContext(ctx), WithName(name))
		list.AddAll(3, 2, 1)
		list.OnceReady()
	}()

	require.InDelta(t, 1, testutil.ToFloat64(alive), 0)

	assert.Eventually(t, func() bool {
		runtime.GC()

		return testutil.ToFloat64(alive) == 0
	}, 5*time.Second, 10*time.Millisecond)
}
