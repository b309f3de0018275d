package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains the Prometheus collectors for the calc API. Each server
// carries its own registry so independent instances never collide.
type Metrics struct {
	registry *prometheus.Registry

	calculations *prometheus.CounterVec
	errors       *prometheus.CounterVec
	duration     prometheus.Histogram
	historySize  prometheus.Gauge
}

// NewMetrics creates a Metrics instance backed by a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_calculations_total",
				Help: "Total number of calculation requests by outcome",
			},
			[]string{"outcome"},
		),

		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_calculation_errors_total",
				Help: "Total number of failed calculations by error kind",
			},
			[]string{"kind"},
		),

		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "calc_calculation_duration_seconds",
				Help:    "Wall time spent evaluating expressions",
				Buckets: prometheus.DefBuckets,
			},
		),

		historySize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "calc_history_size",
				Help: "Number of entries currently retained in the history log",
			},
		),
	}
}

// Handler returns the exposition endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordSuccess counts a completed calculation.
func (m *Metrics) RecordSuccess(seconds float64) {
	m.calculations.WithLabelValues("ok").Inc()
	m.duration.Observe(seconds)
}

// RecordError counts a failed calculation by kind.
func (m *Metrics) RecordError(kind string, seconds float64) {
	m.calculations.WithLabelValues("error").Inc()
	m.errors.WithLabelValues(kind).Inc()
	m.duration.Observe(seconds)
}

// SetHistorySize updates the retained-entry gauge.
func (m *Metrics) SetHistorySize(n int) {
	m.historySize.Set(float64(n))
}
