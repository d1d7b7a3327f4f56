package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"workpulse/internal/errors"
)

// FileValidator checks the files and directories of a run before any work
// is done.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return errors.NewNotFoundError("file " + path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewStorageError("failed to stat file "+path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return errors.NewAppValidationError(path + " is a directory, not a file")
	}

	// Check if file is readable by opening it
	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewStorageError("file "+path+" is not readable", err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateCSVFile checks if a file is a readable CSV file
func (v *FileValidator) ValidateCSVFile(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}
	return v.checkExtension(path, ".csv")
}

// ValidateOutputFile checks that path has the expected extension and that
// its directory exists or can be created and is writable.
func (v *FileValidator) ValidateOutputFile(path, ext string) error {
	if err := v.checkExtension(path, ext); err != nil {
		return err
	}
	return v.ValidateOutputDirectory(filepath.Dir(path))
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	// Try to create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError("failed to create output directory "+dir, err)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError("output directory "+dir+" is not writable", err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

// ValidateRun checks every input CSV, every output CSV location and the
// figures directory. An empty workbook path skips the workbook check.
func (v *FileValidator) ValidateRun(inputs, outputs []string, figuresDir, workbook string) error {
	for _, path := range inputs {
		if err := v.ValidateCSVFile(path); err != nil {
			return err
		}
	}
	for _, path := range outputs {
		if err := v.ValidateOutputFile(path, ".csv"); err != nil {
			return err
		}
	}
	if err := v.ValidateOutputDirectory(figuresDir); err != nil {
		return err
	}
	if workbook != "" {
		if err := v.ValidateOutputFile(workbook, ".xlsx"); err != nil {
			return err
		}
	}

	v.logger.Info("Run files validated",
		slog.Int("inputs", len(inputs)),
		slog.Int("outputs", len(outputs)),
		slog.String("figures_dir", figuresDir))
	return nil
}

func (v *FileValidator) checkExtension(path, want string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != want {
		v.logger.Error("Unexpected file extension",
			slog.String("file", path),
			slog.String("extension", ext),
			slog.String("expected", want))
		return errors.NewAppValidationError("file " + path + " must have extension " + want).
			WithContext("file", path)
	}
	return nil
}
