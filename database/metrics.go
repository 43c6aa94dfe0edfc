package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records statement counts and latencies per database, table and
// verb. A nil *Metrics is valid and records nothing.
type Metrics struct {
	statements *prometheus.CounterVec
	errors     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics builds and registers the metric vectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	labels := []string{"database", "table", "verb"}

	m := &Metrics{
		statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "framekit_statements_total",
			Help: "Statements executed, by database, table and verb.",
		}, labels),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "framekit_statement_errors_total",
			Help: "Statements that returned an engine error.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "framekit_statement_duration_seconds",
			Help:    "Statement execution latency in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, labels),
	}

	reg.MustRegister(m.statements, m.errors, m.duration)
	return m
}

func (m *Metrics) observe(database, table, verb string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.statements.WithLabelValues(database, table, verb).Inc()
	m.duration.WithLabelValues(database, table, verb).Observe(d.Seconds())
	if err != nil {
		m.errors.WithLabelValues(database, table, verb).Inc()
	}
}
