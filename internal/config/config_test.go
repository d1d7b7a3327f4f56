package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workpulse/internal/errors"
)

const validYAML = `
input_data:
  productivity_file: raw/productivity.csv
  mental_health_file: /abs/raw/mental_health.csv
output_data:
  productivity_file: clean/productivity.csv
  mental_health_file: clean/mental_health.csv
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErrType errors.ErrorType
		wantKey     string
		validateCfg func(*testing.T, *Config, string)
	}{
		{
			name:    "valid configuration with defaults",
			content: validYAML,
			validateCfg: func(t *testing.T, cfg *Config, dir string) {
				assert.Equal(t, filepath.Join(dir, "raw/productivity.csv"), cfg.InputData.ProductivityFile)
				assert.Equal(t, "/abs/raw/mental_health.csv", cfg.InputData.MentalHealthFile)
				assert.Equal(t, filepath.Join(dir, "clean/productivity.csv"), cfg.OutputData.ProductivityFile)
				assert.Equal(t, filepath.Join(dir, DefaultFiguresDir), cfg.FiguresDir)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "console", cfg.Logging.Output)
				assert.True(t, cfg.Cleaning.StrictMode())
				assert.Empty(t, cfg.Report.WorkbookFile)
				assert.Empty(t, cfg.Observability.MetricsFile)
			},
		},
		{
			name: "lenient cleaning and optional sinks",
			content: validYAML + `
figures_dir: out/figures
cleaning:
  strict: false
report:
  workbook_file: out/report.xlsx
logging:
  level: debug
  format: text
observability:
  metrics_file: out/metrics.prom
`,
			validateCfg: func(t *testing.T, cfg *Config, dir string) {
				assert.False(t, cfg.Cleaning.StrictMode())
				assert.Equal(t, filepath.Join(dir, "out/figures"), cfg.FiguresDir)
				assert.Equal(t, filepath.Join(dir, "out/report.xlsx"), cfg.Report.WorkbookFile)
				assert.Equal(t, filepath.Join(dir, "out/metrics.prom"), cfg.Observability.MetricsFile)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "missing output key",
			content: `
input_data:
  productivity_file: a.csv
  mental_health_file: b.csv
output_data:
  productivity_file: c.csv
`,
			wantErrType: errors.ErrTypeConfig,
			wantKey:     "output_data.mental_health_file",
		},
		{
			name:        "empty file",
			content:     "",
			wantErrType: errors.ErrTypeConfig,
			wantKey:     "input_data.productivity_file",
		},
		{
			name:        "malformed yaml",
			content:     "input_data: [unterminated",
			wantErrType: errors.ErrTypeConfig,
		},
		{
			name:        "invalid logging level",
			content:     validYAML + "logging:\n  level: verbose\n",
			wantErrType: errors.ErrTypeConfig,
			wantKey:     "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			cfg, err := Load(path)
			if tt.wantErrType != "" {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, tt.wantErrType), "got %v", err)
				if tt.wantKey != "" {
					assert.Contains(t, err.Error(), tt.wantKey)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Source())
			tt.validateCfg(t, cfg, filepath.Dir(path))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeConfig))
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_SearchesDefaultLocations(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = Load("")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeConfig))
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))

	require.NoError(t, os.MkdirAll("configs", 0755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "config.yaml"), []byte(validYAML), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", "raw/productivity.csv"), cfg.InputData.ProductivityFile)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Cleaning.StrictMode())
	assert.Equal(t, DefaultFiguresDir, cfg.FiguresDir)
	assert.Equal(t, DefaultLogFile, cfg.Logging.FilePath)
}

func TestConfigKey(t *testing.T) {
	assert.Equal(t, "input_data.productivity_file", configKey("Config.input_data.productivity_file"))
	assert.Equal(t, "figures_dir", configKey("figures_dir"))
}

func TestLoad_ExampleConfig(t *testing.T) {
	path := filepath.Join("..", "..", "configs", "config.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)

	base := filepath.Dir(path)
	assert.Equal(t, filepath.Join(base, "../figures"), cfg.FiguresDir)
	assert.Equal(t, filepath.Join(base, "../reports/statistics.xlsx"), cfg.Report.WorkbookFile)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.True(t, cfg.Cleaning.StrictMode())
	assert.Empty(t, cfg.Observability.TraceFile)
}
