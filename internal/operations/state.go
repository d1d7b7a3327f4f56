package operations

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/cleaning"
	apperrors "workpulse/internal/errors"
	"workpulse/internal/stats"
)

// OperationStatus represents the overall run status
type OperationStatus string

const (
	OperationStatusPending   OperationStatus = "pending"
	OperationStatusRunning   OperationStatus = "running"
	OperationStatusCompleted OperationStatus = "completed"
	OperationStatusFailed    OperationStatus = "failed"
)

// OperationState represents the complete state of one pipeline run
type OperationState struct {
	mu sync.RWMutex

	ID        string
	Status    OperationStatus
	StartTime time.Time
	EndTime   *time.Time

	// Step states, keyed by step ID, and their execution order
	Steps map[string]*StepState
	order []string

	// Data passed between steps
	Data *PipelineData

	Error error
}

// NewOperationState creates a new operation state
func NewOperationState(id string) *OperationState {
	return &OperationState{
		ID:        id,
		Status:    OperationStatusPending,
		StartTime: time.Now(),
		Steps:     make(map[string]*StepState),
		Data:      NewPipelineData(),
	}
}

// Start marks the run as running
func (p *OperationState) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Status = OperationStatusRunning
	p.StartTime = time.Now()
}

// Complete marks the run as completed
func (p *OperationState) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.EndTime = &now
	p.Status = OperationStatusCompleted
}

// Fail marks the run as failed
func (p *OperationState) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.EndTime = &now
	p.Status = OperationStatusFailed
	p.Error = err
}

// GetStep returns the state of a specific step
func (p *OperationState) GetStep(stepID string) *StepState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Steps[stepID]
}

// SetStep records the state of a step. Steps keep the order in which they
// were first set.
func (p *OperationState) SetStep(stepID string, state *StepState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.Steps[stepID]; !ok {
		p.order = append(p.order, stepID)
	}
	p.Steps[stepID] = state
}

// StepOrder returns the step IDs in execution order
func (p *OperationState) StepOrder() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, len(p.order))
	copy(ids, p.order)
	return ids
}

// Duration returns the duration of the run
func (p *OperationState) Duration() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.EndTime != nil {
		return p.EndTime.Sub(p.StartTime)
	}
	return time.Since(p.StartTime)
}

// HasFailures returns true if any step has failed
func (p *OperationState) HasFailures() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, step := range p.Steps {
		if step.GetStatus() == StepStatusFailed {
			return true
		}
	}
	return false
}

// Output is a file written by the run
type Output struct {
	Kind string
	Path string
}

// PipelineData carries the tables and aggregates between steps. Steps run
// one at a time, so it is not guarded.
type PipelineData struct {
	Raw     map[string]dataframe.DataFrame
	Clean   map[string]dataframe.DataFrame
	Reports map[string]cleaning.Report

	Productivity *stats.ProductivityStats
	MentalHealth *stats.MentalHealthStats

	// Tables drawn by the charts, in rendering order
	ChartTables []stats.Table

	// Outputs lists published files only
	Outputs []Output

	staged      []stagedFile
	stagingDirs []string
}

// stagedFile is an output written under a temporary name until the run
// succeeds
type stagedFile struct {
	Output
	temp string
}

// NewPipelineData creates empty pipeline data
func NewPipelineData() *PipelineData {
	return &PipelineData{
		Raw:     make(map[string]dataframe.DataFrame),
		Clean:   make(map[string]dataframe.DataFrame),
		Reports: make(map[string]cleaning.Report),
	}
}

// AddOutput records a written file
func (d *PipelineData) AddOutput(kind, path string) {
	d.Outputs = append(d.Outputs, Output{Kind: kind, Path: path})
}

// StagingPath returns the temporary name an output is written under before
// it is published. It sits next to path and keeps its extension.
func StagingPath(path string) string {
	return filepath.Join(filepath.Dir(path), ".partial-"+filepath.Base(path))
}

// Stage records temp as the pending content of the output at path
func (d *PipelineData) Stage(kind, temp, path string) {
	d.staged = append(d.staged, stagedFile{Output: Output{Kind: kind, Path: path}, temp: temp})
}

// StageDir records a temporary directory removed once the run ends
func (d *PipelineData) StageDir(dir string) {
	d.stagingDirs = append(d.stagingDirs, dir)
}

// Staged returns the final paths of every output waiting to be published
func (d *PipelineData) Staged() []string {
	paths := make([]string, len(d.staged))
	for i, f := range d.staged {
		paths[i] = f.Path
	}
	return paths
}

// Publish renames every staged file onto its final path in staging order
// and records it as an output.
func (d *PipelineData) Publish() error {
	defer d.removeStagingDirs()
	for i, f := range d.staged {
		if err := os.Rename(f.temp, f.Path); err != nil {
			d.staged = d.staged[i:]
			d.Discard()
			return apperrors.NewStorageError("failed to publish output", err).WithContext("file", f.Path)
		}
		d.AddOutput(f.Kind, f.Path)
	}
	d.staged = nil
	return nil
}

// Discard removes every staged file without publishing it
func (d *PipelineData) Discard() {
	for _, f := range d.staged {
		_ = os.Remove(f.temp)
	}
	d.staged = nil
	d.removeStagingDirs()
}

func (d *PipelineData) removeStagingDirs() {
	for _, dir := range d.stagingDirs {
		_ = os.RemoveAll(dir)
	}
	d.stagingDirs = nil
}

// OutputPaths returns the paths of every written file of the given kind
func (d *PipelineData) OutputPaths(kind string) []string {
	var paths []string
	for _, o := range d.Outputs {
		if o.Kind == kind {
			paths = append(paths, o.Path)
		}
	}
	return paths
}

// Tables returns every statistics table computed so far, productivity first
func (d *PipelineData) Tables() []stats.Table {
	var tables []stats.Table
	if d.Productivity != nil {
		tables = append(tables, d.Productivity.Tables()...)
	}
	if d.MentalHealth != nil {
		tables = append(tables, d.MentalHealth.Tables()...)
	}
	return tables
}
