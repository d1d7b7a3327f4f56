package operations

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// OperationTracer wraps span creation for runs and steps
type OperationTracer struct {
	tracer trace.Tracer
}

// NewOperationTracer creates a tracer. A nil tracer disables tracing.
func NewOperationTracer(tracer trace.Tracer) *OperationTracer {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &OperationTracer{tracer: tracer}
}

// TraceOperationExecution creates a span for the whole run
func (pt *OperationTracer) TraceOperationExecution(ctx context.Context, operationID string, steps int) (context.Context, trace.Span) {
	return pt.tracer.Start(ctx, "operation.execute",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
			attribute.Int("operation.steps", steps),
		),
	)
}

// TraceStepExecution creates a span for a single step
func (pt *OperationTracer) TraceStepExecution(ctx context.Context, operationID, stepID string) (context.Context, trace.Span) {
	return pt.tracer.Start(ctx, fmt.Sprintf("operation.step.%s", stepID),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
			attribute.String("step.id", stepID),
		),
	)
}

// RecordStepCompletion sets the outcome attributes and status of a step span
func (pt *OperationTracer) RecordStepCompletion(span trace.Span, duration time.Duration, err error) {
	span.SetAttributes(attribute.Float64("step.duration_seconds", duration.Seconds()))
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("step.error_type", string(GetErrorType(err))))
		span.SetStatus(codes.Error, "step execution failed")
		return
	}
	span.SetStatus(codes.Ok, "step completed successfully")
}

// RecordOperationCompletion sets the outcome of the run span
func (pt *OperationTracer) RecordOperationCompletion(span trace.Span, state *OperationState) {
	span.SetAttributes(
		attribute.String("operation.status", string(state.Status)),
		attribute.Float64("operation.duration_seconds", state.Duration().Seconds()),
		attribute.Int("operation.outputs", len(state.Data.Outputs)),
	)
	if state.Error != nil {
		span.RecordError(state.Error)
		span.SetStatus(codes.Error, "operation failed")
		return
	}
	span.SetStatus(codes.Ok, "operation completed successfully")
}
