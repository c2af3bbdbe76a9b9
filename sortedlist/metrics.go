package sortedlist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Every metric is labelled by "subsystem" (from the logging context) and
// "list" (the list name).
var (
	enqueuedItems = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_enqueued_total",
		Help: "The total number of items added to the ingress queue",
	}, []string{"subsystem", "list"})

	sortedItems = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_sorted_total",
		Help: "The total number of items merged into sorted storage",
	}, []string{"subsystem", "list"})

	removedItems = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_removed_total",
		Help: "The total number of items removed from sorted storage",
	}, []string{"subsystem", "list"})

	pendingItems = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_pending",
		Help: "The number of items waiting in the ingress queue",
	}, []string{"subsystem", "list"})

	storedItems = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_size",
		Help: "The number of items in sorted storage",
	}, []string{"subsystem", "list"})

	// insertionSwaps measures how far each new item travelled during its insertion step.
	insertionSwaps = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sortedlist_insertion_swaps",
		Help:    "The number of adjacent swaps needed to place one item",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"subsystem", "list"})

	drainCycles = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_drain_cycles_total",
		Help: "The total number of times the sorter emptied the ingress queue",
	}, []string{"subsystem", "list"})

	workerPanics = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_worker_panics_total",
		Help: "The total number of panics recovered on the background sorter",
	}, []string{"subsystem", "list"})

	aliveLists = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "sortedlist_alive",
		Help: "The number of lists whose background sorter has not been disposed",
	}, []string{"subsystem", "list"})
)

// listMetrics holds the label-bound collectors for one list. A nil
// *listMetrics is valid and records nothing.
type listMetrics struct {
	enqueued prometheus.Counter
	sorted   prometheus.Counter
	removed  prometheus.Counter
	pending  prometheus.Gauge
	size     prometheus.Gauge
	swaps    prometheus.Observer
	drains   prometheus.Counter
	panics   prometheus.Counter
	alive    prometheus.Gauge
}

func newListMetrics(subsystem, name string) *listMetrics {
	return &listMetrics{
		enqueued: enqueuedItems.WithLabelValues(subsystem, name),
		sorted:   sortedItems.WithLabelValues(subsystem, name),
		removed:  removedItems.WithLabelValues(subsystem, name),
		pending:  pendingItems.WithLabelValues(subsystem, name),
		size:     storedItems.WithLabelValues(subsystem, name),
		swaps:    insertionSwaps.WithLabelValues(subsystem, name),
		drains:   drainCycles.WithLabelValues(subsystem, name),
		panics:   workerPanics.WithLabelValues(subsystem, name),
		alive:    aliveLists.WithLabelValues(subsystem, name),
	}
}

func (m *listMetrics) added(count, pending int) {
	if m == nil {
		return
	}

	m.enqueued.Add(float64(count))
	m.pending.Set(float64(pending))
}

func (m *listMetrics) inserted(swaps, pending, size int) {
	if m == nil {
		return
	}

	m.sorted.Inc()
	m.swaps.Observe(float64(swaps))
	m.pending.Set(float64(pending))
	m.size.Set(float64(size))
}

func (m *listMetrics) dropped(count, size int) {
	if m == nil {
		return
	}

	m.removed.Add(float64(count))
	m.size.Set(float64(size))
}

func (m *listMetrics) cleared() {
	if m == nil {
		return
	}

	m.pending.Set(0)
	m.size.Set(0)
}

func (m *listMetrics) drained() {
	if m == nil {
		return
	}

	m.drains.Inc()
}

func (m *listMetrics) panicked() {
	if m == nil {
		return
	}

	m.panics.Inc()
}

func (m *listMetrics) started() {
	if m == nil {
		return
	}

	m.alive.Inc()
}

func (m *listMetrics) stopped() {
	if m == nil {
		return
	}

	m.alive.Dec()
}
