package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/errors"
)

// LoadCSV reads the CSV file at path into a dataframe, detecting column
// types from the data.
func LoadCSV(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dataframe.DataFrame{}, errors.NewStorageError("input table not found", err).
				WithContext("path", path)
		}
		return dataframe.DataFrame{}, errors.NewStorageError("failed to open input table", err).
			WithContext("path", path)
	}
	defer file.Close()

	df, err := ReadCSV(file)
	if err != nil {
		return df, fmt.Errorf("read %s: %w", path, err)
	}
	return df, nil
}

// ReadCSV parses CSV data with a header row into a dataframe.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return df, errors.NewParsingError("failed to parse CSV table", df.Err)
	}
	return df, nil
}
