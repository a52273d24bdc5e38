// Package metrics provides Prometheus metrics for the trip pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// Row disposition labels for RowsTotal
const (
	DispositionRaw              = "raw"
	DispositionClean            = "clean"
	DispositionDuplicate        = "duplicate"
	DispositionInvalidTimestamp = "invalid_timestamp"
	DispositionInvalidFare      = "invalid_fare"
	DispositionInvalidDistance  = "invalid_distance"
	DispositionZoneMismatch     = "zone_mismatch"
)

// Metrics holds all Prometheus metrics for the pipeline.
type Metrics struct {
	// Registry is the Prometheus registry for this metrics instance
	Registry *prometheus.Registry

	// RunsTotal counts pipeline runs by terminal status
	RunsTotal *prometheus.CounterVec

	// RowsTotal counts rows seen by the validator per disposition
	RowsTotal *prometheus.CounterVec

	// RunDuration observes full-refresh wall time
	RunDuration prometheus.Histogram
}

// New creates and registers all pipeline metrics with a new registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	runsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxi_pipeline_runs_total",
			Help: "Total number of pipeline runs by status",
		},
		[]string{"status"},
	)

	rowsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxi_pipeline_rows_total",
			Help: "Rows seen by the validator per disposition",
		},
		[]string{"disposition"},
	)

	runDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "taxi_pipeline_run_duration_seconds",
		Help:    "Full-refresh run duration",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	registry.MustRegister(runsTotal, rowsTotal, runDuration)

	return &Metrics{
		Registry:    registry,
		RunsTotal:   runsTotal,
		RowsTotal:   rowsTotal,
		RunDuration: runDuration,
	}
}

// ObserveRun records one finished run: its status, duration, and the
// validator diagnostics.
func (m *Metrics) ObserveRun(status string, diag models.Diagnostics, elapsed time.Duration) {
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDuration.Observe(elapsed.Seconds())

	m.RowsTotal.WithLabelValues(DispositionRaw).Add(float64(diag.RawRows))
	m.RowsTotal.WithLabelValues(DispositionClean).Add(float64(diag.CleanRows))
	m.RowsTotal.WithLabelValues(DispositionDuplicate).Add(float64(diag.DuplicatesRemoved))
	m.RowsTotal.WithLabelValues(DispositionInvalidTimestamp).Add(float64(diag.InvalidTimestamp))
	m.RowsTotal.WithLabelValues(DispositionInvalidFare).Add(float64(diag.InvalidFare))
	m.RowsTotal.WithLabelValues(DispositionInvalidDistance).Add(float64(diag.InvalidDistance))
	m.RowsTotal.WithLabelValues(DispositionZoneMismatch).Add(float64(diag.ZoneMismatch))
}
