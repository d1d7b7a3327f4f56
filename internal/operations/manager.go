package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"workpulse/internal/infrastructure"
)

// Manager orchestrates pipeline execution
type Manager struct {
	logger  *slog.Logger
	tracer  *OperationTracer
	metrics *infrastructure.RunMetrics
}

// NewManager creates a pipeline manager. A nil logger uses the default
// logger, a nil tracer disables tracing and nil metrics are not recorded.
func NewManager(logger *slog.Logger, tracer trace.Tracer, metrics *infrastructure.RunMetrics) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:  infrastructure.WithComponent(logger, "operations"),
		tracer:  NewOperationTracer(tracer),
		metrics: metrics,
	}
}

// Execute runs steps one at a time in dependency order. The first step
// that fails aborts the run and every later step is marked skipped. The
// returned state is never nil.
func (m *Manager) Execute(ctx context.Context, steps ...Step) (*OperationState, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	state := NewOperationState(infrastructure.GetRunID(ctx))

	registry := NewRegistry()
	for _, step := range steps {
		if err := registry.Register(step); err != nil {
			state.Fail(err)
			return state, err
		}
	}
	ordered, err := registry.GetDependencyOrder()
	if err != nil {
		state.Fail(err)
		return state, err
	}
	for _, step := range ordered {
		state.SetStep(step.ID(), NewStepState(step.ID(), step.Name()))
	}

	ctx, span := m.tracer.TraceOperationExecution(ctx, state.ID, len(ordered))
	defer span.End()

	state.Start()
	m.logOperationStart(ctx, state.ID, registry.ListIDs())

	err = m.executeSequential(ctx, state, ordered)
	if err == nil {
		err = m.publishOutputs(ctx, state)
	}
	if err != nil {
		state.Data.Discard()
		state.Fail(err)
		m.logOperationError(ctx, state.ID, err)
	} else {
		state.Complete()
		if m.metrics != nil {
			m.metrics.MarkSuccess(time.Now())
		}
	}

	m.recordDataMetrics(state)
	m.tracer.RecordOperationCompletion(span, state)
	m.logOperationComplete(ctx, state)
	return state, err
}

// executeSequential executes steps in order, stopping at the first failure
func (m *Manager) executeSequential(ctx context.Context, state *OperationState, steps []Step) error {
	for i, step := range steps {
		m.logger.InfoContext(ctx, "executing_step",
			slog.String("operation_id", state.ID),
			slog.String("step", step.ID()),
			slog.Int("step_number", i+1),
			slog.Int("total_steps", len(steps)))

		if err := m.executeStep(ctx, state, step); err != nil {
			m.skipRemaining(ctx, state, steps[i+1:], step.ID())
			return err
		}
	}
	m.logger.InfoContext(ctx, "all_steps_completed",
		slog.String("operation_id", state.ID))
	return nil
}

// executeStep validates and runs a single step
func (m *Manager) executeStep(ctx context.Context, state *OperationState, step Step) error {
	stepState := state.GetStep(step.ID())

	ctx, span := m.tracer.TraceStepExecution(ctx, state.ID, step.ID())
	defer span.End()

	stepState.Start()
	m.logStepStart(ctx, state.ID, step.ID())

	err := m.checkDependencies(state, step)
	if err == nil {
		if verr := step.Validate(state); verr != nil {
			err = NewValidationError(step.ID(), verr.Error())
		}
	}
	if err == nil {
		if xerr := step.Execute(ctx, state); xerr != nil {
			err = WrapError(xerr, step.ID(), "step execution failed")
		}
	}

	if err != nil {
		stepState.Fail(err)
		m.logStepError(ctx, state.ID, step.ID(), err)
	} else {
		stepState.Complete()
		m.logStepComplete(ctx, state.ID, step.ID(), stepState.Duration())
	}

	m.tracer.RecordStepCompletion(span, stepState.Duration(), err)
	if m.metrics != nil {
		m.metrics.ObserveStep(step.ID(), stepState.Duration(), err)
	}
	return err
}

// publishOutputs moves every staged file onto its final path. Nothing is
// published unless every step completed.
func (m *Manager) publishOutputs(ctx context.Context, state *OperationState) error {
	staged := state.Data.Staged()
	if err := state.Data.Publish(); err != nil {
		return err
	}
	if len(staged) > 0 {
		m.logger.InfoContext(ctx, "outputs_published",
			slog.String("operation_id", state.ID),
			slog.Int("files", len(staged)))
	}
	return nil
}

// checkDependencies verifies every dependency of step has completed
func (m *Manager) checkDependencies(state *OperationState, step Step) error {
	for _, dep := range step.GetDependencies() {
		depState := state.GetStep(dep)
		if depState == nil || depState.GetStatus() != StepStatusCompleted {
			return NewDependencyError(step.ID(), dep,
				fmt.Sprintf("dependency %s not completed", dep))
		}
	}
	return nil
}

// skipRemaining marks every step after a failure as skipped
func (m *Manager) skipRemaining(ctx context.Context, state *OperationState, steps []Step, failedStepID string) {
	for _, step := range steps {
		state.GetStep(step.ID()).Skip(fmt.Sprintf("step %s failed", failedStepID))
		m.logger.InfoContext(ctx, "step_skipped",
			slog.String("operation_id", state.ID),
			slog.String("step", step.ID()),
			slog.String("failed_step", failedStepID))
	}
}

// recordDataMetrics counts the rows and files the run produced
func (m *Manager) recordDataMetrics(state *OperationState) {
	if m.metrics == nil {
		return
	}
	for name, df := range state.Data.Raw {
		m.metrics.RowsRead.WithLabelValues(name).Add(float64(df.Nrow()))
	}
	for name, df := range state.Data.Clean {
		m.metrics.RowsCleaned.WithLabelValues(name).Add(float64(df.Nrow()))
	}
	for _, out := range state.Data.Outputs {
		m.metrics.FilesWritten.WithLabelValues(out.Kind).Inc()
	}
}
