package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"workpulse/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	InputData     DataFiles           `yaml:"input_data"`
	OutputData    DataFiles           `yaml:"output_data"`
	FiguresDir    string              `yaml:"figures_dir"`
	Report        ReportConfig        `yaml:"report"`
	Cleaning      CleaningConfig      `yaml:"cleaning"`
	Logging       LoggingConfig       `yaml:"logging"`
	Observability ObservabilityConfig `yaml:"observability"`

	// path of the file the configuration was read from
	source string
}

// DataFiles groups the productivity and mental-health table paths.
type DataFiles struct {
	ProductivityFile string `yaml:"productivity_file" validate:"required"`
	MentalHealthFile string `yaml:"mental_health_file" validate:"required"`
}

// ReportConfig contains optional report outputs
type ReportConfig struct {
	WorkbookFile string `yaml:"workbook_file"`
}

// CleaningConfig selects strict or lenient handling of degenerate input.
type CleaningConfig struct {
	Strict *bool `yaml:"strict"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format      string `yaml:"format" validate:"omitempty,oneof=json text"`
	Output      string `yaml:"output" validate:"omitempty,oneof=console file both"`
	FilePath    string `yaml:"file_path"`
	Development bool   `yaml:"development"`
}

// ObservabilityConfig contains the optional batch-job telemetry sinks
type ObservabilityConfig struct {
	MetricsFile string `yaml:"metrics_file"`
	TraceFile   string `yaml:"trace_file"`
}

// StrictMode reports whether cleaning rejects zero normalizing maxima and
// out-of-domain values. Strict is the default.
func (c CleaningConfig) StrictMode() bool {
	if c.Strict == nil {
		return true
	}
	return *c.Strict
}

// Source returns the path the configuration was loaded from, if any.
func (c *Config) Source() string {
	return c.source
}

// Load reads the configuration file at path. An empty path searches the
// default locations. A missing or malformed file is a CONFIG error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = getConfigFilePath()
		if path == "" {
			return nil, errors.NewConfigError(
				fmt.Sprintf("no configuration file found (searched %s)", strings.Join(DefaultConfigLocations, ", ")),
				errors.NewNotFoundError("configuration file"))
		}
	}

	cfg, err := loadFromFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.resolvePaths(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError("configuration file not found", err).
				WithContext("path", filePath)
		}
		return nil, errors.NewConfigError("failed to read configuration file", err).
			WithContext("path", filePath)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError("malformed configuration file", err).
			WithContext("path", filePath)
	}
	cfg.source = filePath

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.FiguresDir == "" {
		c.FiguresDir = DefaultFiguresDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}
}

// resolvePaths makes every relative path relative to the configuration
// file's directory.
func (c *Config) resolvePaths(baseDir string) {
	for _, p := range []*string{
		&c.InputData.ProductivityFile,
		&c.InputData.MentalHealthFile,
		&c.OutputData.ProductivityFile,
		&c.OutputData.MentalHealthFile,
		&c.FiguresDir,
		&c.Report.WorkbookFile,
		&c.Logging.FilePath,
		&c.Observability.MetricsFile,
		&c.Observability.TraceFile,
	} {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		*p = filepath.Join(baseDir, *p)
	}
}

// Validate checks required keys and enumerated values. The first failing
// key is reported as a CONFIG error naming the key.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.NewConfigError("configuration validation failed", err)
	}

	fe := verrs[0]
	key := configKey(fe.Namespace())
	if fe.Tag() == "required" {
		return errors.NewMissingKeyError(key)
	}
	return errors.NewConfigError(
		fmt.Sprintf("invalid value %q for configuration key %q (allowed: %s)", fe.Value(), key, fe.Param()), nil).
		WithContext("key", key)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// configKey turns "Config.input_data.productivity_file" into the dotted
// YAML key "input_data.productivity_file".
func configKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// getConfigFilePath returns the first existing default configuration file
func getConfigFilePath() string {
	for _, location := range DefaultConfigLocations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns a configuration with every default applied and the
// example data layout used by configs/config.yaml.
func Default() *Config {
	strict := true
	cfg := &Config{
		InputData: DataFiles{
			ProductivityFile: "data/raw/Extended_Employee_Performance_and_Productivity_Data.csv",
			MentalHealthFile: "data/raw/Impact_of_Remote_Work_on_Mental_Health.csv",
		},
		OutputData: DataFiles{
			ProductivityFile: "data/clean/productivity_cleaned.csv",
			MentalHealthFile: "data/clean/mental_health_cleaned.csv",
		},
		Cleaning: CleaningConfig{Strict: &strict},
	}
	cfg.applyDefaults()
	return cfg
}
