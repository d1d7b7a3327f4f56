package operations

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/charts"
	"workpulse/internal/cleaning"
	"workpulse/internal/config"
	"workpulse/internal/dataset"
	apperrors "workpulse/internal/errors"
	"workpulse/internal/exporter"
	"workpulse/internal/stats"
	"workpulse/internal/validation"
)

// StepOptions holds the collaborators shared by the pipeline steps
type StepOptions struct {
	Logger *slog.Logger
	// Console receives the printed statistics tables. Nil means stdout.
	Console io.Writer
}

func (o StepOptions) logger(stepID string) *slog.Logger {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("step", stepID))
}

// BuildSteps returns the full pipeline for cfg: validate, load, clean,
// analyze, persist and report.
func BuildSteps(cfg *config.Config, opts StepOptions) []Step {
	return []Step{
		NewValidateStep(cfg, opts),
		NewLoadStep(cfg, opts),
		NewCleanStep(cfg, opts),
		NewAnalyzeStep(opts),
		NewPersistStep(cfg, opts),
		NewReportStep(cfg, opts),
	}
}

// datasetPaths pairs each dataset name with its path in files
func datasetPaths(files config.DataFiles) [][2]string {
	return [][2]string{
		{DatasetProductivity, files.ProductivityFile},
		{DatasetMentalHealth, files.MentalHealthFile},
	}
}

// ValidateStep checks every input and output location before any data is
// read.
type ValidateStep struct {
	BaseStage
	cfg       *config.Config
	validator *validation.FileValidator
}

// NewValidateStep creates the path validation step
func NewValidateStep(cfg *config.Config, opts StepOptions) *ValidateStep {
	return &ValidateStep{
		BaseStage: NewBaseStage(StepIDValidate, StepNameValidate, nil),
		cfg:       cfg,
		validator: validation.NewFileValidator(opts.logger(StepIDValidate)),
	}
}

// Execute validates the configured paths
func (s *ValidateStep) Execute(ctx context.Context, state *OperationState) error {
	return s.validator.ValidateRun(
		[]string{s.cfg.InputData.ProductivityFile, s.cfg.InputData.MentalHealthFile},
		[]string{s.cfg.OutputData.ProductivityFile, s.cfg.OutputData.MentalHealthFile},
		s.cfg.FiguresDir,
		s.cfg.Report.WorkbookFile,
	)
}

// LoadStep reads both raw tables
type LoadStep struct {
	BaseStage
	cfg    *config.Config
	logger *slog.Logger
}

// NewLoadStep creates the data loading step
func NewLoadStep(cfg *config.Config, opts StepOptions) *LoadStep {
	return &LoadStep{
		BaseStage: NewBaseStage(StepIDLoad, StepNameLoad, []string{StepIDValidate}),
		cfg:       cfg,
		logger:    opts.logger(StepIDLoad),
	}
}

// Execute loads the productivity and mental-health CSV files
func (s *LoadStep) Execute(ctx context.Context, state *OperationState) error {
	stepState := state.GetStep(s.ID())
	for _, pair := range datasetPaths(s.cfg.InputData) {
		name, path := pair[0], pair[1]
		df, err := dataset.LoadCSV(path)
		if err != nil {
			return err
		}
		state.Data.Raw[name] = df
		if stepState != nil {
			stepState.SetMetadata(name+"_rows", df.Nrow())
		}
		s.logger.InfoContext(ctx, "Table loaded",
			slog.String("dataset", name),
			slog.String("file", path),
			slog.Int("rows", df.Nrow()),
			slog.Int("columns", df.Ncol()))
	}
	return nil
}

// CleanStep runs both cleaners
type CleanStep struct {
	BaseStage
	opts cleaning.Options
}

// NewCleanStep creates the cleaning step
func NewCleanStep(cfg *config.Config, opts StepOptions) *CleanStep {
	return &CleanStep{
		BaseStage: NewBaseStage(StepIDClean, StepNameClean, []string{StepIDLoad}),
		opts: cleaning.Options{
			Strict: cfg.Cleaning.StrictMode(),
			Logger: opts.logger(StepIDClean),
		},
	}
}

// Validate requires both raw tables
func (s *CleanStep) Validate(state *OperationState) error {
	return requireTables(state.Data.Raw, "raw")
}

// Execute cleans the raw tables
func (s *CleanStep) Execute(ctx context.Context, state *OperationState) error {
	cleaners := []struct {
		name  string
		clean func(dataframe.DataFrame, cleaning.Options) (dataframe.DataFrame, cleaning.Report, error)
	}{
		{DatasetProductivity, cleaning.CleanProductivity},
		{DatasetMentalHealth, cleaning.CleanMentalHealth},
	}

	stepState := state.GetStep(s.ID())
	for _, c := range cleaners {
		df, report, err := c.clean(state.Data.Raw[c.name], s.opts)
		if err != nil {
			return fmt.Errorf("clean %s: %w", c.name, err)
		}
		state.Data.Clean[c.name] = df
		state.Data.Reports[c.name] = report
		if stepState != nil {
			stepState.SetMetadata(c.name+"_rows", report.RowsOut)
		}
	}
	return nil
}

// AnalyzeStep computes every statistics table. It writes nothing.
type AnalyzeStep struct {
	BaseStage
	logger *slog.Logger
}

// NewAnalyzeStep creates the analysis step
func NewAnalyzeStep(opts StepOptions) *AnalyzeStep {
	return &AnalyzeStep{
		BaseStage: NewBaseStage(StepIDAnalyze, StepNameAnalyze, []string{StepIDClean}),
		logger:    opts.logger(StepIDAnalyze),
	}
}

// Validate requires both cleaned tables
func (s *AnalyzeStep) Validate(state *OperationState) error {
	return requireTables(state.Data.Clean, "cleaned")
}

// Execute runs the aggregators
func (s *AnalyzeStep) Execute(ctx context.Context, state *OperationState) error {
	prod, err := stats.AnalyzeProductivity(state.Data.Clean[DatasetProductivity])
	if err != nil {
		return fmt.Errorf("analyze %s: %w", DatasetProductivity, err)
	}
	mh, err := stats.AnalyzeMentalHealth(state.Data.Clean[DatasetMentalHealth])
	if err != nil {
		return fmt.Errorf("analyze %s: %w", DatasetMentalHealth, err)
	}
	state.Data.Productivity = &prod
	state.Data.MentalHealth = &mh

	s.logger.InfoContext(ctx, "Statistics computed",
		slog.Int("tables", len(state.Data.Tables())))
	return nil
}

// PersistStep writes the cleaned tables
type PersistStep struct {
	BaseStage
	cfg    *config.Config
	writer *exporter.CSVWriter
}

// NewPersistStep creates the cleaned data export step
func NewPersistStep(cfg *config.Config, opts StepOptions) *PersistStep {
	return &PersistStep{
		BaseStage: NewBaseStage(StepIDPersist, StepNamePersist, []string{StepIDAnalyze}),
		cfg:       cfg,
		writer:    exporter.NewCSVWriter(opts.logger(StepIDPersist)),
	}
}

// Validate requires the cleaned tables and the computed statistics, so
// nothing is written for a run whose analysis would fail.
func (s *PersistStep) Validate(state *OperationState) error {
	if err := requireTables(state.Data.Clean, "cleaned"); err != nil {
		return err
	}
	if state.Data.Productivity == nil || state.Data.MentalHealth == nil {
		return fmt.Errorf("statistics not computed")
	}
	return nil
}

// Execute stages one CSV per cleaned table
func (s *PersistStep) Execute(ctx context.Context, state *OperationState) error {
	for _, pair := range datasetPaths(s.cfg.OutputData) {
		name, path := pair[0], pair[1]
		temp := StagingPath(path)
		if err := s.writer.WriteTable(temp, state.Data.Clean[name]); err != nil {
			_ = os.Remove(temp)
			return err
		}
		state.Data.Stage(OutputKindCSV, temp, path)
	}
	return nil
}

// ReportStep prints the statistics, draws the charts and saves the
// optional workbook. Figures and the workbook are staged like the cleaned
// tables.
type ReportStep struct {
	BaseStage
	cfg     *config.Config
	console io.Writer
	logger  *slog.Logger
}

// NewReportStep creates the reporting step
func NewReportStep(cfg *config.Config, opts StepOptions) *ReportStep {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	return &ReportStep{
		BaseStage: NewBaseStage(StepIDReport, StepNameReport, []string{StepIDPersist}),
		cfg:       cfg,
		console:   console,
		logger:    opts.logger(StepIDReport),
	}
}

// Validate requires the computed statistics
func (s *ReportStep) Validate(state *OperationState) error {
	if state.Data.Productivity == nil || state.Data.MentalHealth == nil {
		return fmt.Errorf("statistics not computed")
	}
	return nil
}

// Execute writes every report output
func (s *ReportStep) Execute(ctx context.Context, state *OperationState) error {
	if err := exporter.NewConsole(s.console).PrintTables(state.Data.Tables()...); err != nil {
		return err
	}

	if err := s.renderCharts(state); err != nil {
		return err
	}

	if s.cfg.Report.WorkbookFile == "" {
		return nil
	}
	return s.saveWorkbook(ctx, state)
}

// renderCharts draws the productivity charts then the mental-health charts
// into a staging directory inside the figures directory
func (s *ReportStep) renderCharts(state *OperationState) error {
	if err := os.MkdirAll(s.cfg.FiguresDir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create figures directory", err).
			WithContext("directory", s.cfg.FiguresDir)
	}
	staging, err := os.MkdirTemp(s.cfg.FiguresDir, ".partial-")
	if err != nil {
		return apperrors.NewStorageError("failed to create staging directory", err).
			WithContext("directory", s.cfg.FiguresDir)
	}
	state.Data.StageDir(staging)

	renderer := charts.NewRenderer(staging, s.logger)
	prod := state.Data.Clean[DatasetProductivity]
	mh := state.Data.Clean[DatasetMentalHealth]

	draws := []func() (stats.Table, error){
		func() (stats.Table, error) { return renderer.WorkTypeDistribution(prod, cleaning.ColWorkType) },
		func() (stats.Table, error) { return renderer.WorkAndOvertimeHours(prod) },
		func() (stats.Table, error) { return renderer.AverageScores(prod, cleaning.ColWorkType) },
		func() (stats.Table, error) { return renderer.ScoreDistributions(prod) },
		func() (stats.Table, error) { return renderer.CorrelationHeatMap(prod) },
		func() (stats.Table, error) { return renderer.SatisfactionIsolation(mh) },
		func() (stats.Table, error) { return renderer.SatisfactionSupport(mh) },
		func() (stats.Table, error) { return renderer.HoursByWorkType(mh) },
	}
	for _, draw := range draws {
		table, err := draw()
		if err != nil {
			return err
		}
		state.Data.ChartTables = append(state.Data.ChartTables, table)
	}

	for _, temp := range renderer.Files() {
		state.Data.Stage(OutputKindFigure, temp, filepath.Join(s.cfg.FiguresDir, filepath.Base(temp)))
	}
	return nil
}

func (s *ReportStep) saveWorkbook(ctx context.Context, state *OperationState) error {
	wb := exporter.NewWorkbook()
	defer wb.Close()

	if err := wb.AddTables(state.Data.Tables()...); err != nil {
		return err
	}
	temp := StagingPath(s.cfg.Report.WorkbookFile)
	if err := wb.Save(temp); err != nil {
		_ = os.Remove(temp)
		return err
	}
	state.Data.Stage(OutputKindWorkbook, temp, s.cfg.Report.WorkbookFile)

	s.logger.InfoContext(ctx, "Workbook staged",
		slog.String("file", s.cfg.Report.WorkbookFile),
		slog.Int("sheets", len(wb.Sheets())))
	return nil
}

// requireTables checks that both datasets are present in tables
func requireTables(tables map[string]dataframe.DataFrame, kind string) error {
	for _, name := range []string{DatasetProductivity, DatasetMentalHealth} {
		if _, ok := tables[name]; !ok {
			return fmt.Errorf("%s %s table not available", kind, name)
		}
	}
	return nil
}
