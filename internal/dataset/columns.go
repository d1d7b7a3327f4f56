package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"workpulse/internal/errors"
)

// HasColumn reports whether df has a column with the exact name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// RequireColumns returns a MISSING_FIELD error for the first absent column.
func RequireColumns(df dataframe.DataFrame, names ...string) error {
	for _, name := range names {
		if !HasColumn(df, name) {
			return errors.NewMissingFieldError(name)
		}
	}
	return nil
}

// IsNumeric reports whether the column was typed as int or float.
func IsNumeric(df dataframe.DataFrame, name string) bool {
	if !HasColumn(df, name) {
		return false
	}
	t := df.Col(name).Type()
	return t == series.Int || t == series.Float
}

// NumericColumns lists the int and float columns in table order.
func NumericColumns(df dataframe.DataFrame) []string {
	var cols []string
	for _, name := range df.Names() {
		if IsNumeric(df, name) {
			cols = append(cols, name)
		}
	}
	return cols
}

// Numeric returns the column as float64 values. Missing cells become NaN.
// A column holding anything that does not parse as a number is a
// TYPE_MISMATCH error naming the first offending value.
func Numeric(df dataframe.DataFrame, name string) ([]float64, error) {
	if err := RequireColumns(df, name); err != nil {
		return nil, err
	}

	col := df.Col(name)
	if col.Type() == series.Int || col.Type() == series.Float {
		return col.Float(), nil
	}

	records := col.Records()
	values := make([]float64, len(records))
	for i, rec := range records {
		v, err := ParseCell(name, rec, i+1)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// ParseCell parses one cell of column name. Missing cells are NaN; row is
// the 1-based row reported in a TYPE_MISMATCH error.
func ParseCell(name, rec string, row int) (float64, error) {
	rec = strings.TrimSpace(rec)
	if isMissing(rec) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(rec, 64)
	if err != nil {
		return 0, errors.NewTypeMismatchError(name, fmt.Sprintf("value %q in row %d", rec, row))
	}
	return v, nil
}

// Strings returns the column's cells as strings. Missing cells are "".
func Strings(df dataframe.DataFrame, name string) ([]string, error) {
	if err := RequireColumns(df, name); err != nil {
		return nil, err
	}
	records := df.Col(name).Records()
	out := make([]string, len(records))
	for i, rec := range records {
		if !isMissing(rec) {
			out[i] = rec
		}
	}
	return out, nil
}

func isMissing(rec string) bool {
	switch rec {
	case "", "NaN", "NA", "<nil>":
		return true
	}
	return false
}
