package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"workpulse/internal/dataset"
	"workpulse/internal/errors"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance. A nil logger uses the
// default logger.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers []string
	Records [][]string
}

// WriteTable writes df to filePath with a lower-case header row and no
// index column. Numbers use their shortest form and missing cells are left
// empty.
func (w *CSVWriter) WriteTable(filePath string, df dataframe.DataFrame) error {
	headers := make([]string, 0, df.Ncol())
	columns := make([][]string, 0, df.Ncol())
	for _, name := range df.Names() {
		cells, err := formatColumn(df, name)
		if err != nil {
			return err
		}
		headers = append(headers, strings.ToLower(name))
		columns = append(columns, cells)
	}

	records := make([][]string, df.Nrow())
	for i := range records {
		record := make([]string, len(columns))
		for j, cells := range columns {
			record[j] = cells[i]
		}
		records[i] = record
	}

	return w.WriteCSV(filePath, WriteOptions{Headers: headers, Records: records})
}

// WriteCSV writes data to a CSV file with the given options, replacing any
// existing file.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return errors.NewStorageError("failed to create directory", err).WithContext("file", filePath)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errors.NewStorageError("failed to open file", err).WithContext("file", filePath)
	}

	if err := writeRecords(file, options); err != nil {
		file.Close()
		return errors.NewStorageError("failed to write CSV", err).WithContext("file", filePath)
	}
	if err := file.Close(); err != nil {
		return errors.NewStorageError("failed to close file", err).WithContext("file", filePath)
	}
	return nil
}

func writeRecords(file *os.File, options WriteOptions) error {
	writer := csv.NewWriter(file)
	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// formatColumn renders every cell of a column as CSV text.
func formatColumn(df dataframe.DataFrame, name string) ([]string, error) {
	col := df.Col(name)
	switch col.Type() {
	case series.Int, series.Float:
		values, err := dataset.Numeric(df, name)
		if err != nil {
			return nil, err
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = formatFloat(v)
		}
		return cells, nil
	case series.Bool:
		cells := make([]string, col.Len())
		for i := range cells {
			e := col.Elem(i)
			if e.IsNA() {
				continue
			}
			b, err := e.Bool()
			if err != nil {
				return nil, errors.NewTypeMismatchError(name, err.Error())
			}
			cells[i] = formatBool(b)
		}
		return cells, nil
	default:
		return dataset.Strings(df, name)
	}
}
