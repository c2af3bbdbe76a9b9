package sortedlist

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// readiness is a manual-reset event. Waiters block until Set; Reset re-arms it.
type readiness struct {
	mu   sync.Mutex
	done chan struct{}
	set  *atomic.Bool
}

func newReadiness(initial bool) *readiness {
	r := &readiness{
		done: make(chan struct{}),
		set:  atomic.NewBool(initial),
	}

	if initial {
		close(r.done)
	}

	return r
}

// Set releases every current and future waiter until the next Reset.
func (r *readiness) Set() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.set.Load() {
		close(r.done)
		r.set.Store(true)
	}
}

// Reset makes subsequent waiters block. Waiters already released stay released.
func (r *readiness) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.set.Load() {
		r.done = make(chan struct{})
		r.set.Store(false)
	}
}

func (r *readiness) IsSet() bool {
	return r.set.Load()
}

func (r *readiness) channel() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.done
}

// Wait blocks until the event is set.
func (r *readiness) Wait() {
	<-r.channel()
}

// WaitContext blocks until the event is set or ctx is done.
func (r *readiness) WaitContext(ctx context.Context) error {
	select {
	case <-r.channel():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
