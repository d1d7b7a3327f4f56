package operations

import (
	"context"
	"log/slog"
	"time"
)

// logOperationStart logs the start of a run
func (m *Manager) logOperationStart(ctx context.Context, operationID string, steps []string) {
	m.logger.InfoContext(ctx, "operation_start",
		slog.String("operation_id", operationID),
		slog.Any("steps", steps))
}

// stepSummary is one step's outcome in the operation_complete record
type stepSummary struct {
	Step     string        `json:"step"`
	Status   StepStatus    `json:"status"`
	Duration time.Duration `json:"duration"`
}

// logOperationComplete logs the end of a run with every step's outcome in
// execution order
func (m *Manager) logOperationComplete(ctx context.Context, state *OperationState) {
	order := state.StepOrder()
	steps := make([]stepSummary, 0, len(order))
	for _, id := range order {
		s := state.GetStep(id)
		steps = append(steps, stepSummary{Step: id, Status: s.GetStatus(), Duration: s.Duration()})
	}
	m.logger.InfoContext(ctx, "operation_complete",
		slog.String("operation_id", state.ID),
		slog.String("status", string(state.Status)),
		slog.Bool("has_failures", state.HasFailures()),
		slog.Duration("duration", state.Duration()),
		slog.Any("steps", steps))
}

// logOperationError logs a run failure
func (m *Manager) logOperationError(ctx context.Context, operationID string, err error) {
	m.logger.ErrorContext(ctx, "operation_error",
		slog.String("operation_id", operationID),
		slog.String("error", err.Error()))
}

// logStepStart logs the start of a step
func (m *Manager) logStepStart(ctx context.Context, operationID, stepID string) {
	m.logger.InfoContext(ctx, "step_start",
		slog.String("operation_id", operationID),
		slog.String("step", stepID))
}

// logStepComplete logs the completion of a step
func (m *Manager) logStepComplete(ctx context.Context, operationID, stepID string, duration time.Duration) {
	m.logger.InfoContext(ctx, "step_complete",
		slog.String("operation_id", operationID),
		slog.String("step", stepID),
		slog.Duration("duration", duration))
}

// logStepError logs a step failure
func (m *Manager) logStepError(ctx context.Context, operationID, stepID string, err error) {
	m.logger.ErrorContext(ctx, "step_error",
		slog.String("operation_id", operationID),
		slog.String("step", stepID),
		slog.String("error_type", string(GetErrorType(err))),
		slog.String("error", err.Error()))
}
