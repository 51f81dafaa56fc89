// Package metrics exposes prometheus instrumentation for the stage
// endpoints.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orderflow/internal/apperr"
)

// StageMetrics counts stage invocations by outcome and observes their
// latency.
type StageMetrics struct {
	Invocations *prometheus.CounterVec
	LatencyMS   *prometheus.HistogramVec
}

// New registers and returns the stage metrics.
func New(reg prometheus.Registerer) *StageMetrics {
	invocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderflow",
		Name:      "stage_invocations_total",
		Help:      "Total number of stage invocations by outcome.",
	}, []string{"stage", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orderflow",
		Name:      "stage_duration_ms",
		Help:      "Stage latency in milliseconds, artificial delay included.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"stage"})

	reg.MustRegister(invocations, latency)
	return &StageMetrics{Invocations: invocations, LatencyMS: latency}
}

// Observe records one stage invocation. The outcome label is "ok" for
// success, otherwise the error kind.
func (m *StageMetrics) Observe(stage string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = apperr.Kind(err)
	}
	m.Invocations.WithLabelValues(stage, outcome).Inc()
	m.LatencyMS.WithLabelValues(stage).Observe(float64(elapsed.Milliseconds()))
}

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
