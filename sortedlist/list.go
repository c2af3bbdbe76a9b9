// Package sortedlist provides List, a container that accepts unsorted items
// from any number of goroutines and sorts them incrementally on one dedicated
// background worker.
//
// Add never waits for sorting: it queues the item and returns. The worker
// moves queued items into sorted storage one at a time, each with a single
// insertion step. Reads (Contains, Remove, At, All) go straight to sorted
// storage, so an item may be queued but not yet visible. Call OnceReady (or
// WaitReady) first when a read must reflect every earlier Add.
//
// Readiness is a best-effort signal, not a barrier. A goroutine released by
// OnceReady may find new items queued by concurrent producers, and a steady
// stream of Add calls from other goroutines can keep a waiter blocked
// indefinitely.
//
// Equal elements have no defined relative order, and Remove deletes every
// element equal to its argument.
package sortedlist

import (
	"cmp"
	"context"
	"iter"
	"runtime"
	"sync"
	"time"

	"github.com/amp-labs/fastsort/bgworker"
	"github.com/amp-labs/fastsort/compare"
	"github.com/amp-labs/fastsort/logger"
	"github.com/amp-labs/fastsort/spans"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// List is a sorted container fed by a background worker. The zero value is
// not usable; construct one with New, NewWithComparator or NewSortable, and
// Close it when done.
type List[T any] struct {
	core    *core[T]
	cleanup runtime.Cleanup
}

// core holds everything the background worker touches. It never refers back
// to the List, so an abandoned List can still be reclaimed and cleaned up.
type core[T any] struct {
	ctx         context.Context //nolint:containedctx
	name        string
	compare     compare.Comparator[T]
	joinTimeout time.Duration
	metrics     *listMetrics

	// mu guards storage. Writers: the sorter, Remove, Clear. Lock order is
	// mu before the ingress mutex.
	mu      sync.RWMutex
	storage storage[T]

	queue *ingress[T]
	ready *readiness
	wake  chan struct{}

	disposing *atomic.Bool
	worker    *bgworker.Worker
}

// New returns a list ordered by the natural order of T.
func New[T cmp.Ordered](opts ...Option) *List[T] {
	return NewWithComparator(compare.Natural[T](), opts...)
}

// NewSortable returns a list ordered by T's own LessThan and Equals.
func NewSortable[T compare.Sortable[T]](opts ...Option) *List[T] {
	return NewWithComparator(compare.FromSortable[T](), opts...)
}

// From returns a naturally ordered list whose ingress queue is pre-seeded
// with items. Nothing is sorted until the worker gets to them.
func From[T cmp.Ordered](items []T, opts ...Option) *List[T] {
	return FromWithComparator(items, compare.Natural[T](), opts...)
}

// NewWithComparator returns a list ordered by c. It panics with
// ErrNilComparator if c is nil. c must not change for the list's lifetime.
func NewWithComparator[T any](c compare.Comparator[T], opts ...Option) *List[T] {
	return FromWithComparator(nil, c, opts...)
}

// FromWithComparator is NewWithComparator with a pre-seeded ingress queue.
func FromWithComparator[T any](items []T, c compare.Comparator[T], opts ...Option) *List[T] {
	if c == nil {
		panic(ErrNilComparator)
	}

	set := newSettings(opts)

	ctx := set.ctx
	if set.log != nil {
		ctx = logger.WithLogger(ctx, set.log)
	}

	if set.tracer != nil {
		ctx = spans.WithTracer(ctx, set.tracer)
	}

	ctx = logger.With(ctx, "list", set.name, "list_id", uuid.NewString())

	var metrics *listMetrics
	if set.metrics {
		metrics = newListMetrics(logger.GetSubsystem(ctx), set.name)
	}

	ready := newReadiness(true)

	inner := &core[T]{
		ctx:         ctx,
		name:        set.name,
		compare:     c,
		joinTimeout: set.joinTimeout,
		metrics:     metrics,
		queue:       newIngress[T](ready),
		ready:       ready,
		wake:        make(chan struct{}, 1),
		disposing:   atomic.NewBool(false),
	}

	if len(items) > 0 {
		inner.add(items...)
	}

	metrics.started()

	inner.worker = bgworker.Start(ctx, "sortedlist-sorter", inner.run)

	list := &List[T]{core: inner}
	list.cleanup = runtime.AddCleanup(list, func(c *core[T]) { c.dispose() }, inner)

	return list
}

// Add queues item for sorting. It never blocks on sorting and the queue is
// unbounded. Items added after Close are dropped.
func (l *List[T]) Add(item T) {
	l.core.add(item)
}

// AddAll queues every item, in order.
func (l *List[T]) AddAll(items ...T) {
	l.core.add(items...)
}

// Remove deletes every element equal to item from sorted storage and reports
// whether anything was removed. Items still queued are not considered.
func (l *List[T]) Remove(item T) bool {
	return l.core.remove(item)
}

// Contains reports whether sorted storage holds an element equal to item.
// It does not wait for queued items.
func (l *List[T]) Contains(item T) bool {
	c := l.core

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.storage.search(item, c.compare) >= 0
}

// Clear empties both the ingress queue and sorted storage.
func (l *List[T]) Clear() {
	l.core.clear()
}

// Count returns the number of elements in sorted storage.
func (l *List[T]) Count() int {
	c := l.core

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.storage.size
}

// Capacity returns the size of the array backing sorted storage.
func (l *List[T]) Capacity() int {
	c := l.core

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.storage.capacity()
}

// Pending returns the number of items queued but not yet sorted.
func (l *List[T]) Pending() int {
	return l.core.queue.pending()
}

// At returns the element at index, or ErrIndexOutOfRange.
func (l *List[T]) At(index int) (T, error) {
	c := l.core

	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.storage.at(index)
	if !ok {
		return item, indexError(index, c.storage.size)
	}

	return item, nil
}

// Entries returns a copy of sorted storage.
func (l *List[T]) Entries() []T {
	c := l.core

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, c.storage.size)
	copy(out, c.storage.items[:c.storage.size])

	return out
}

// IsReady reports, without blocking, whether the last drain left the queue empty.
func (l *List[T]) IsReady() bool {
	return l.core.ready.IsSet()
}

// OnceReady blocks until the background worker has drained the ingress
// queue, then returns the list so calls can be chained:
//
//	first, _ := list.OnceReady().At(0)
//
// There is no timeout; see WaitReady.
func (l *List[T]) OnceReady() *List[T] {
	l.core.ready.Wait()

	return l
}

// WaitReady is OnceReady with cancellation. It returns ctx.Err() if ctx ends first.
func (l *List[T]) WaitReady(ctx context.Context) error {
	return l.core.ready.WaitContext(ctx)
}

// All iterates sorted storage from the front. Each step reads one element
// under the lock, so the sequence reflects concurrent changes rather than a
// snapshot. It can be ranged over any number of times.
func (l *List[T]) All() iter.Seq[T] {
	c := l.core

	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			item, ok := c.get(i)
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Iterator returns an explicit cursor over sorted storage.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{core: l.core, index: notStarted}
}

// Close stops the background worker and empties the list. It waits at most
// the configured join timeout for the worker and always returns nil. Calling
// it again does nothing. The list must not be used afterwards.
func (l *List[T]) Close() error {
	l.cleanup.Stop()
	l.core.dispose()

	return nil
}

func (c *core[T]) get(index int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.storage.at(index)
}

func (c *core[T]) add(items ...T) {
	if len(items) == 0 || c.disposing.Load() {
		return
	}

	pending := c.queue.push(items...)
	c.metrics.added(len(items), pending)

	// Lost a race with Close: nobody will drain these.
	if c.disposing.Load() {
		c.queue.reset()

		return
	}

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *core[T]) remove(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	lo, hi, ok := c.storage.run(item, c.compare)
	if !ok {
		return false
	}

	removed := c.storage.cut(lo, hi)
	c.metrics.dropped(removed, c.storage.size)

	return true
}

func (c *core[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queue.reset()
	c.storage.reset()
	c.metrics.cleared()
}

func (c *core[T]) dispose() {
	if !c.disposing.CompareAndSwap(false, true) {
		return
	}

	c.clear()

	c.worker.Stop()

	if !c.worker.Join(c.joinTimeout) {
		logger.Get(c.ctx).Warn("Sorted list disposed while the sorter was still busy",
			"timeout", c.joinTimeout)
	}

	c.worker.Release()
	c.metrics.stopped()
}
