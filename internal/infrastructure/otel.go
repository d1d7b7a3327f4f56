package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName identifies spans emitted by the pipeline
const TracerName = "workpulse.pipeline"

// Tracing owns the span exporter for one run. With no trace file it hands
// out a no-op tracer.
type Tracing struct {
	provider *sdktrace.TracerProvider
	file     *os.File
	tracer   trace.Tracer
}

// InitTracing writes spans as JSON to path. An empty path disables tracing.
func InitTracing(path string) (*Tracing, error) {
	if path == "" {
		return &Tracing{tracer: noop.NewTracerProvider().Tracer(TracerName)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create trace directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(file))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	return &Tracing{
		provider: provider,
		file:     file,
		tracer:   provider.Tracer(TracerName),
	}, nil
}

// Tracer returns the tracer for pipeline spans
func (t *Tracing) Tracer() trace.Tracer {
	return t.tracer
}

// Shutdown flushes spans and closes the trace file
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		t.file.Close()
		return fmt.Errorf("failed to shut down tracer provider: %w", err)
	}
	return t.file.Close()
}
