package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workpulse/internal/errors"
	"workpulse/internal/shared/testutil"
)

func TestFileValidator_ValidateCSVFile(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		errType   errors.ErrorType
	}{
		{
			name: "valid csv file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "data.csv")
				require.NoError(t, os.WriteFile(file, []byte("a,b\n1,2\n"), 0644))
				return file
			},
		},
		{
			name: "upper-case extension",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "DATA.CSV")
				require.NoError(t, os.WriteFile(file, []byte("a\n"), 0644))
				return file
			},
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			errType: errors.ErrTypeNotFound,
		},
		{
			name: "directory instead of file",
			setupFunc: func(t *testing.T) string {
				dir := filepath.Join(t.TempDir(), "data.csv")
				require.NoError(t, os.Mkdir(dir, 0755))
				return dir
			},
			errType: errors.ErrTypeValidation,
		},
		{
			name: "wrong extension",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "data.xlsx")
				require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
				return file
			},
			errType: errors.ErrTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewFileValidator(testutil.NewTestLogger(t))
			err := validator.ValidateCSVFile(tt.setupFunc(t))

			if tt.errType == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	validator := NewFileValidator(nil)

	dir := filepath.Join(t.TempDir(), "nested", "figures")
	require.NoError(t, validator.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(filepath.Join(dir, ".write_test"))
	assert.True(t, os.IsNotExist(err), "write test file must be removed")

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	err = validator.ValidateOutputDirectory(filepath.Join(blocker, "sub"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeStorage))
}

func TestFileValidator_ValidateRun(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "raw.csv")
	require.NoError(t, os.WriteFile(input, []byte("a\n1\n"), 0644))

	logger, logs := testutil.NewCaptureLogger()
	validator := NewFileValidator(logger)

	err := validator.ValidateRun(
		[]string{input},
		[]string{filepath.Join(base, "out", "clean.csv")},
		filepath.Join(base, "figures"),
		filepath.Join(base, "reports", "stats.xlsx"),
	)
	require.NoError(t, err)
	assert.True(t, logs.Contains("Run files validated"))

	err = validator.ValidateRun([]string{input}, []string{filepath.Join(base, "out", "clean.txt")},
		filepath.Join(base, "figures"), "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

	err = validator.ValidateRun([]string{input}, nil, filepath.Join(base, "figures"),
		filepath.Join(base, "stats.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
}
