package operations

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "workpulse/internal/errors"
	"workpulse/internal/infrastructure"
	"workpulse/internal/shared/testutil"
)

func newTestManager(t *testing.T) (*Manager, *testutil.CaptureHandler, *infrastructure.RunMetrics, *tracetest.SpanRecorder) {
	t.Helper()
	logger, logs := testutil.NewCaptureLogger()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	metrics := infrastructure.NewRunMetrics()
	return NewManager(logger, provider.Tracer("test"), metrics), logs, metrics, recorder
}

func operationSummary(t *testing.T, logs *testutil.CaptureHandler) testutil.LogRecord {
	t.Helper()
	for _, r := range logs.Records() {
		if r.Message == "operation_complete" {
			return r
		}
	}
	require.FailNow(t, "no operation_complete record")
	return testutil.LogRecord{}
}

func summaryIDs(steps []stepSummary) []string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.Step
	}
	return ids
}

func TestManagerExecuteInDependencyOrder(t *testing.T) {
	manager, logs, metrics, recorder := newTestManager(t)

	var executed []string
	report := newMockStep("report", "analyze")
	analyze := newMockStep("analyze", "load")
	load := newMockStep("load")
	for _, s := range []*mockStep{report, analyze, load} {
		s.executed = &executed
	}

	ctx := infrastructure.WithRunID(context.Background(), "run-1")
	state, err := manager.Execute(ctx, report, analyze, load)
	require.NoError(t, err)

	assert.Equal(t, []string{"load", "analyze", "report"}, executed)
	assert.Equal(t, []string{"load", "analyze", "report"}, state.StepOrder())
	assert.Equal(t, OperationStatusCompleted, state.Status)
	assert.Equal(t, "run-1", state.ID)
	assert.False(t, state.HasFailures())
	for _, id := range executed {
		assert.Equal(t, StepStatusCompleted, state.GetStep(id).GetStatus())
	}

	summary := operationSummary(t, logs)
	assert.Equal(t, false, summary.Attrs["has_failures"])
	steps := summary.Attrs["steps"].([]stepSummary)
	assert.Equal(t, []string{"load", "analyze", "report"}, summaryIDs(steps))
	for _, s := range steps {
		assert.Equal(t, StepStatusCompleted, s.Status)
	}
	assert.True(t, logs.HasAttr("component", "operations"))
	testutil.AssertNoErrors(t, logs)

	assert.Greater(t, promtestutil.ToFloat64(metrics.LastSuccessful), 0.0)
	assert.Equal(t, 0.0, promtestutil.ToFloat64(metrics.StepFailures.WithLabelValues("load")))

	// one span per step plus the run span
	assert.Len(t, recorder.Ended(), 4)
}

func TestManagerAbortsOnFirstFailure(t *testing.T) {
	manager, logs, metrics, recorder := newTestManager(t)

	var executed []string
	load := newMockStep("load")
	clean := newMockStep("clean", "load")
	clean.executeErr = apperrors.NewAppValidationError("normalizing maximum is zero")
	persist := newMockStep("persist", "clean")
	for _, s := range []*mockStep{load, clean, persist} {
		s.executed = &executed
	}

	state, err := manager.Execute(context.Background(), load, clean, persist)
	require.Error(t, err)

	assert.Equal(t, []string{"load", "clean"}, executed)
	assert.Equal(t, ErrorTypeExecution, GetErrorType(err))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.NotEmpty(t, state.ID)

	assert.Equal(t, OperationStatusFailed, state.Status)
	assert.Equal(t, err, state.Error)
	assert.Equal(t, StepStatusFailed, state.GetStep("clean").GetStatus())
	assert.Equal(t, StepStatusSkipped, state.GetStep("persist").GetStatus())
	assert.Equal(t, "step clean failed", state.GetStep("persist").Message)
	assert.True(t, state.HasFailures())

	testutil.AssertLogContains(t, logs, slog.LevelError, "step_error")
	assert.True(t, logs.Contains("step_skipped"))

	summary := operationSummary(t, logs)
	assert.Equal(t, true, summary.Attrs["has_failures"])
	assert.Equal(t, string(OperationStatusFailed), summary.Attrs["status"])
	steps := summary.Attrs["steps"].([]stepSummary)
	require.Len(t, steps, 3)
	assert.Equal(t, StepStatusCompleted, steps[0].Status)
	assert.Equal(t, StepStatusFailed, steps[1].Status)
	assert.Equal(t, StepStatusSkipped, steps[2].Status)
	assert.Zero(t, steps[2].Duration)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(metrics.StepFailures.WithLabelValues("clean")))
	assert.Equal(t, 0.0, promtestutil.ToFloat64(metrics.LastSuccessful))

	// the skipped step gets no span
	assert.Len(t, recorder.Ended(), 3)
}

func TestManagerValidationFailure(t *testing.T) {
	manager, _, _, _ := newTestManager(t)

	var executed []string
	step := newMockStep("analyze")
	step.validateErr = errors.New("cleaned tables missing")
	step.executed = &executed

	state, err := manager.Execute(context.Background(), step)
	require.Error(t, err)
	assert.Empty(t, executed)
	assert.Equal(t, ErrorTypeValidation, GetErrorType(err))
	assert.Contains(t, err.Error(), "cleaned tables missing")
	assert.Equal(t, StepStatusFailed, state.GetStep("analyze").GetStatus())
}

func TestManagerRejectsBadStepSets(t *testing.T) {
	manager := NewManager(nil, nil, nil)

	state, err := manager.Execute(context.Background(), newMockStep("a"), newMockStep("a"))
	assert.ErrorContains(t, err, "already registered")
	assert.Equal(t, OperationStatusFailed, state.Status)

	state, err = manager.Execute(context.Background(), newMockStep("clean", "load"))
	assert.Equal(t, ErrorTypeDependency, GetErrorType(err))
	assert.Equal(t, OperationStatusFailed, state.Status)
}

func TestStepStateTransitions(t *testing.T) {
	s := NewStepState("load", "Data Loading")
	assert.Equal(t, StepStatusPending, s.GetStatus())
	assert.Zero(t, s.Duration())

	s.Start()
	assert.Equal(t, StepStatusActive, s.GetStatus())
	s.SetMetadata("rows", 12)
	s.Complete()
	assert.Equal(t, StepStatusCompleted, s.GetStatus())
	assert.NotNil(t, s.EndTime)
	assert.GreaterOrEqual(t, s.Duration().Nanoseconds(), int64(0))
	assert.Equal(t, 12, s.Metadata["rows"])

	failed := NewStepState("clean", "Data Cleaning")
	failed.Start()
	failed.Fail(errors.New("boom"))
	assert.Equal(t, StepStatusFailed, failed.GetStatus())
	assert.EqualError(t, failed.Error, "boom")
}
