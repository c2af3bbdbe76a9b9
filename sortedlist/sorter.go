package sortedlist

import (
	"context"
	"runtime/debug"

	"github.com/amp-labs/fastsort/logger"
	"github.com/amp-labs/fastsort/spans"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// run is the background sorter. It drains the ingress queue whenever it is
// woken and exits once stop is closed. Disposal is only noticed between
// insertion steps, never in the middle of one.
func (c *core[T]) run(stop <-chan struct{}) {
	log := logger.Get(c.ctx)

	log.Debug("Sorter started")
	defer log.Debug("Sorter stopped")

	for {
		// An empty queue has already signalled readiness.
		if c.queue.pending() > 0 {
			c.traceDrain(stop)
		}

		select {
		case <-stop:
			return
		case <-c.wake:
		}
	}
}

func (c *core[T]) traceDrain(stop <-chan struct{}) {
	_ = spans.Run(c.ctx, "sortedlist.drain", func(_ context.Context, span trace.Span) error {
		moved := c.drain(stop)
		if moved > 0 {
			c.metrics.drained()
			logger.Get(c.ctx).Debug("Drained ingress queue", "moved", moved)
		}

		span.SetAttributes(attribute.Int("sortedlist.moved", moved))

		return nil
	}, spans.WithAttribute("sortedlist.name", attribute.StringValue(c.name)))
}

// drain merges queued items until the queue is empty or disposal starts.
// The readiness event is set by the queue itself when it is found empty.
func (c *core[T]) drain(stop <-chan struct{}) int {
	moved := 0

	for !c.disposing.Load() {
		select {
		case <-stop:
			return moved
		default:
		}

		if !c.step() {
			break
		}

		moved++
	}

	return moved
}

// step moves one item from the queue into sorted storage. It reports false
// when the queue was empty.
func (c *core[T]) step() (more bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer func() {
		if recovered := recover(); recovered != nil {
			c.metrics.panicked()

			logger.Get(c.ctx).Error("Sorter recovered from panic in comparator",
				"error", panicError(recovered, debug.Stack()))

			more = true
		}
	}()

	// The queue may have been emptied by Clear since the last step.
	item, pending, ok := c.queue.pop()
	if !ok {
		return false
	}

	index := c.storage.push(item)
	swaps := c.storage.settle(index, c.compare)

	c.metrics.inserted(swaps, pending, c.storage.size)

	return true
}
