// Package bgworker runs a single long-lived background loop with cooperative
// shutdown and a bounded join.
package bgworker

import (
	"context"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/fastsort/logger"
	"go.uber.org/atomic"
)

// Worker owns one dedicated goroutine, backed by a private pond pool with a
// concurrency of one. It is never shared with other owners.
type Worker struct {
	ctx      context.Context //nolint:containedctx
	name     string
	pool     pond.Pool
	task     pond.Task
	stop     chan struct{}
	stopOnce sync.Once
	running  *atomic.Bool
}

// Start launches fn on a new dedicated worker. fn receives a channel that is
// closed when Stop is called; it must return soon after observing that. The
// worker does not preempt fn in any other way.
func Start(ctx context.Context, name string, fn func(stop <-chan struct{})) *Worker {
	if ctx == nil {
		ctx = context.Background()
	}

	worker := &Worker{
		ctx:     ctx,
		name:    name,
		pool:    pond.NewPool(1),
		stop:    make(chan struct{}),
		running: atomic.NewBool(true),
	}

	logger.Get(ctx).Debug("Starting background worker", "worker", name)

	worker.task = worker.pool.Submit(func() {
		defer worker.running.Store(false)

		fn(worker.stop)
	})

	return worker
}

// Stop asks the worker to exit. It does not wait. Safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
}

// Done is closed once fn has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.task.Done()
}

// Running reports whether fn has not yet returned.
func (w *Worker) Running() bool {
	return w.running.Load()
}

// Join waits at most timeout for fn to return and reports whether it did.
// A panic inside fn is logged here rather than propagated.
func (w *Worker) Join(timeout time.Duration) bool {
	if timeout <= 0 {
		select {
		case <-w.task.Done():
			w.logExit()

			return true
		default:
			return false
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-w.task.Done():
		w.logExit()

		return true
	case <-timer.C:
		logger.Get(w.ctx).Warn("Background worker did not stop in time",
			"worker", w.name, "timeout", timeout)

		return false
	}
}

// Release stops the underlying pool without waiting for fn. The goroutine
// exits on its own once fn returns.
func (w *Worker) Release() {
	w.Stop()
	w.pool.Stop()
}

func (w *Worker) logExit() {
	if err := w.task.Wait(); err != nil {
		logger.Get(w.ctx).Error("Background worker exited with error", "worker", w.name, "error", err)

		return
	}

	logger.Get(w.ctx).Debug("Background worker stopped", "worker", w.name)
}
