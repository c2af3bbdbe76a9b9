package sortedlist

import (
	"sync"
)

// ingress is the unbounded FIFO of items waiting to be sorted. Its emptiness
// and the readiness event change together under one mutex, so the event is
// never set while an item is queued.
type ingress[T any] struct {
	mu    sync.Mutex
	items []T
	head  int
	ready *readiness
}

func newIngress[T any](ready *readiness) *ingress[T] {
	return &ingress[T]{ready: ready}
}

// push appends items, re-arms the readiness event and returns the new length.
func (q *ingress[T]) push(items ...T) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, items...)
	q.ready.Reset()

	return len(q.items) - q.head
}

// pop removes the oldest item. When the queue is empty it sets the readiness
// event instead and reports false.
func (q *ingress[T]) pop() (T, int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T

	if q.head == len(q.items) {
		q.ready.Set()

		return zero, 0, false
	}

	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// Reclaim the consumed prefix once it dominates the slice.
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 64 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, len(q.items) - q.head, true
}

// reset drops everything queued and sets the readiness event.
func (q *ingress[T]) reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = nil
	q.head = 0
	q.ready.Set()
}

func (q *ingress[T]) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items) - q.head
}
