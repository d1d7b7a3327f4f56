// Command analyze runs the remote-work analysis batch: it loads the
// productivity and mental-health tables named in config.yaml, cleans them,
// prints and charts their statistics and writes the cleaned tables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"workpulse/internal/config"
	"workpulse/internal/infrastructure"
	"workpulse/internal/operations"
)

func main() {
	if err := run(context.Background(), "", os.Stdout); err != nil {
		slog.Error("Analysis failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}
	infrastructure.CloseLogFile()
}

// run executes one batch. An empty configPath searches the default
// configuration locations. Statistics tables are printed to stdout.
func run(ctx context.Context, configPath string, stdout io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	tracing, err := infrastructure.InitTracing(cfg.Observability.TraceFile)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if serr := tracing.Shutdown(shutdownCtx); serr != nil {
			logger.Warn("Failed to flush traces", slog.String("error", serr.Error()))
		}
	}()

	metrics := infrastructure.NewRunMetrics()
	defer func() {
		if merr := metrics.WriteTextfile(cfg.Observability.MetricsFile); merr != nil {
			logger.Warn("Failed to write metrics", slog.String("error", merr.Error()))
		}
	}()

	ctx = infrastructure.EnsureRunID(ctx)
	logger.InfoContext(ctx, "Starting remote-work analysis",
		slog.String("config", cfg.Source()),
		slog.Bool("strict", cfg.Cleaning.StrictMode()),
		slog.String("figures_dir", cfg.FiguresDir))

	manager := operations.NewManager(logger, tracing.Tracer(), metrics)
	state, err := manager.Execute(ctx, operations.BuildSteps(cfg, operations.StepOptions{
		Logger:  logger,
		Console: stdout,
	})...)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Analysis completed",
		slog.Int("files_written", len(state.Data.Outputs)),
		slog.Duration("duration", state.Duration()))
	return nil
}
