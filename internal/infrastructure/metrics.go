package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RunMetrics collects per-run counters for the batch job. They are written
// once at the end of the run in the Prometheus text exposition format, for
// pickup by a node-exporter textfile collector.
type RunMetrics struct {
	registry *prometheus.Registry

	RowsRead       *prometheus.CounterVec
	RowsCleaned    *prometheus.CounterVec
	FilesWritten   *prometheus.CounterVec
	StepDuration   *prometheus.GaugeVec
	StepFailures   *prometheus.CounterVec
	LastSuccessful prometheus.Gauge
}

// NewRunMetrics registers the run metrics on a private registry
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		RowsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workpulse",
			Name:      "rows_read_total",
			Help:      "Rows read from each raw input table.",
		}, []string{"dataset"}),
		RowsCleaned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workpulse",
			Name:      "rows_cleaned_total",
			Help:      "Rows kept in each cleaned table.",
		}, []string{"dataset"}),
		FilesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workpulse",
			Name:      "files_written_total",
			Help:      "Output files written, by kind.",
		}, []string{"kind"}),
		StepDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "workpulse",
			Name:      "step_duration_seconds",
			Help:      "Wall time of each pipeline step in the last run.",
		}, []string{"step"}),
		StepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workpulse",
			Name:      "step_failures_total",
			Help:      "Pipeline steps that returned an error.",
		}, []string{"step"}),
		LastSuccessful: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "workpulse",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that completed every step.",
		}),
	}

	m.registry.MustRegister(
		m.RowsRead,
		m.RowsCleaned,
		m.FilesWritten,
		m.StepDuration,
		m.StepFailures,
		m.LastSuccessful,
	)
	return m
}

// ObserveStep records the duration of a finished step
func (m *RunMetrics) ObserveStep(step string, d time.Duration, err error) {
	m.StepDuration.WithLabelValues(step).Set(d.Seconds())
	if err != nil {
		m.StepFailures.WithLabelValues(step).Inc()
	}
}

// MarkSuccess stamps the completion time of a successful run
func (m *RunMetrics) MarkSuccess(at time.Time) {
	m.LastSuccessful.Set(float64(at.Unix()))
}

// Registry exposes the underlying registry, mainly for tests
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to path. An empty path is a no-op.
func (m *RunMetrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
