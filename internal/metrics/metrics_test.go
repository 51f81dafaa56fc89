package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"orderflow/internal/apperr"
)

func TestObserve(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.Observe("payment", nil, 10*time.Millisecond)
	m.Observe("payment", apperr.ErrPaymentDeclined, 5*time.Millisecond)
	m.Observe("search", apperr.ErrNotFound, 2*time.Millisecond)

	if got := testutil.ToFloat64(m.Invocations.WithLabelValues("payment", "ok")); got != 1 {
		t.Fatalf("expected 1 ok payment, got %v", got)
	}
	if got := testutil.ToFloat64(m.Invocations.WithLabelValues("payment", "payment_declined")); got != 1 {
		t.Fatalf("expected 1 declined payment, got %v", got)
	}
	if got := testutil.ToFloat64(m.Invocations.WithLabelValues("search", "not_found")); got != 1 {
		t.Fatalf("expected 1 not_found search, got %v", got)
	}
}
