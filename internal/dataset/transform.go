package dataset

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DropColumns removes the named columns. Names that are not present are
// ignored.
func DropColumns(df dataframe.DataFrame, names ...string) dataframe.DataFrame {
	var present []string
	for _, name := range names {
		if HasColumn(df, name) {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return df
	}
	return df.Drop(present)
}

// DropRequired removes the named columns, failing on the first absent one.
func DropRequired(df dataframe.DataFrame, names ...string) (dataframe.DataFrame, error) {
	if err := RequireColumns(df, names...); err != nil {
		return df, err
	}
	return df.Drop(names), nil
}

// RenameColumn renames oldName to newName.
func RenameColumn(df dataframe.DataFrame, newName, oldName string) (dataframe.DataFrame, error) {
	if err := RequireColumns(df, oldName); err != nil {
		return df, err
	}
	out := df.Rename(newName, oldName)
	return out, out.Err
}

// LowerNames lower-cases every column name.
func LowerNames(df dataframe.DataFrame) dataframe.DataFrame {
	out := df
	for _, name := range df.Names() {
		lower := strings.ToLower(name)
		if lower != name {
			out = out.Rename(lower, name)
		}
	}
	return out
}

// SetStrings adds a string column, or replaces it in place if present.
func SetStrings(df dataframe.DataFrame, name string, values []string) dataframe.DataFrame {
	return df.Mutate(series.New(values, series.String, name))
}

// SetFloats adds a float column, or replaces it in place if present.
func SetFloats(df dataframe.DataFrame, name string, values []float64) dataframe.DataFrame {
	return df.Mutate(series.New(values, series.Float, name))
}

// Rows keeps the rows at the given indexes, in order. An empty selection
// yields a table with the same columns and no rows.
func Rows(df dataframe.DataFrame, idx []int) dataframe.DataFrame {
	if len(idx) == 0 {
		cols := make([]series.Series, 0, df.Ncol())
		for _, name := range df.Names() {
			col := df.Col(name)
			cols = append(cols, series.New([]string{}, col.Type(), name))
		}
		return dataframe.New(cols...)
	}
	return df.Subset(idx)
}
