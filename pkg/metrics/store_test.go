package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStoreMetricsCounts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)

	m.IncOperation("cart", "add")
	m.IncOperation("cart", "add")
	m.IncFailure("cart", "add")
	m.SetItems("cart", 3)

	if got := testutil.ToFloat64(m.operations.WithLabelValues("cart", "add")); got != 2 {
		t.Fatalf("expected 2 operations, got %f", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("cart", "add")); got != 1 {
		t.Fatalf("expected 1 failure, got %f", got)
	}
	if got := testutil.ToFloat64(m.items.WithLabelValues("cart")); got != 3 {
		t.Fatalf("expected 3 items, got %f", got)
	}
}

func TestStoreMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *StoreMetrics
	m.IncOperation("cart", "add")
	m.IncFailure("wishlist", "")
	m.SetItems("", 0)

	unregistered := NewStoreMetrics(nil)
	unregistered.IncOperation("cart", "remove")
}

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	if normalizeLabel("") != "unknown" {
		t.Fatal("empty labels should normalize to unknown")
	}
	if normalizeLabel("cart") != "cart" {
		t.Fatal("labels should pass through unchanged")
	}
}
