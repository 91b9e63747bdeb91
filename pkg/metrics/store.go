package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics counts store operations and absorbed failures.
type StoreMetrics struct {
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
	items      *prometheus.GaugeVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "Store operations, including no-ops.",
	}, []string{"store", "op"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_failures_total",
		Help: "Storage failures absorbed into no-ops.",
	}, []string{"store", "op"})
	items := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "store_items",
		Help: "Items in the persisted collection after the last mutation.",
	}, []string{"store"})
	reg.MustRegister(operations, failures, items)
	return &StoreMetrics{
		operations: operations,
		failures:   failures,
		items:      items,
	}
}

// IncOperation counts one public operation on the named store.
func (m *StoreMetrics) IncOperation(store, op string) {
	if m == nil || m.operations == nil {
		return
	}
	m.operations.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

// IncFailure counts one absorbed storage failure.
func (m *StoreMetrics) IncFailure(store, op string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

// SetItems records the post-mutation collection size.
func (m *StoreMetrics) SetItems(store string, count int) {
	if m == nil || m.items == nil {
		return
	}
	m.items.WithLabelValues(normalizeLabel(store)).Set(float64(count))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
