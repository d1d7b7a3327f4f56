package infrastructure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMetrics_WriteTextfile(t *testing.T) {
	m := NewRunMetrics()
	m.RowsRead.WithLabelValues("productivity").Add(5)
	m.RowsCleaned.WithLabelValues("productivity").Add(3)
	m.FilesWritten.WithLabelValues("figure").Inc()
	m.ObserveStep("clean_productivity", 1500*time.Millisecond, nil)
	m.ObserveStep("load_mental_health", time.Second, errors.New("boom"))
	m.MarkSuccess(time.Unix(1700000000, 0))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RowsCleaned.WithLabelValues("productivity")))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.StepDuration.WithLabelValues("clean_productivity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StepFailures.WithLabelValues("load_mental_health")))

	path := filepath.Join(t.TempDir(), "out", "workpulse.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `workpulse_rows_read_total{dataset="productivity"} 5`)
	assert.Contains(t, string(content), "workpulse_last_success_timestamp_seconds 1.7e+09")
}

func TestRunMetrics_EmptyPathIsNoop(t *testing.T) {
	assert.NoError(t, NewRunMetrics().WriteTextfile(""))
}

func TestInitTracing(t *testing.T) {
	ctx := context.Background()

	disabled, err := InitTracing("")
	require.NoError(t, err)
	_, span := disabled.Tracer().Start(ctx, "noop")
	span.End()
	assert.NoError(t, disabled.Shutdown(ctx))

	path := filepath.Join(t.TempDir(), "trace.json")
	tracing, err := InitTracing(path)
	require.NoError(t, err)

	_, span = tracing.Tracer().Start(ctx, "clean_productivity")
	span.End()
	require.NoError(t, tracing.Shutdown(ctx))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "clean_productivity")
}
