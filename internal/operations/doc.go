// Package operations runs the analysis batch as an explicit pipeline of
// steps.
//
// Core components:
//
// Step: a single unit of work (validate, load, clean, analyze, persist,
// report). Steps read and write the typed PipelineData carried by the
// OperationState instead of an untyped context map.
//
// Registry: holds the steps of one run and orders them by their declared
// dependencies, keeping registration order among independent steps.
//
// Manager: executes the ordered steps one at a time. The first failing
// step aborts the run and every later step is marked skipped. Each step is
// logged, traced and timed.
//
// Example usage:
//
//	steps := operations.BuildSteps(cfg, operations.StepOptions{Logger: logger})
//	manager := operations.NewManager(logger, tracing.Tracer(), metrics)
//	state, err := manager.Execute(ctx, steps...)
package operations
