package stats

import "math"

// Table is a small labelled result: one row per group, one column per
// statistic.
type Table struct {
	Name    string
	Index   string
	Rows    []string
	Columns []string
	Values  [][]float64
}

// NewTable returns a table of NaN cells with the given labels.
func NewTable(name, index string, rows, columns []string) Table {
	values := make([][]float64, len(rows))
	for i := range values {
		values[i] = make([]float64, len(columns))
		for j := range values[i] {
			values[i][j] = math.NaN()
		}
	}
	return Table{
		Name:    name,
		Index:   index,
		Rows:    append([]string(nil), rows...),
		Columns: append([]string(nil), columns...),
		Values:  values,
	}
}

// Get returns the cell at row and column, or NaN when either label is
// unknown.
func (t Table) Get(row, column string) float64 {
	i, j := indexOf(t.Rows, row), indexOf(t.Columns, column)
	if i < 0 || j < 0 {
		return math.NaN()
	}
	return t.Values[i][j]
}

// Row returns the values of the named row, or nil.
func (t Table) Row(row string) []float64 {
	i := indexOf(t.Rows, row)
	if i < 0 {
		return nil
	}
	return t.Values[i]
}

// Column returns the values of the named column in row order, or nil.
func (t Table) Column(column string) []float64 {
	j := indexOf(t.Columns, column)
	if j < 0 {
		return nil
	}
	out := make([]float64, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Values[i][j]
	}
	return out
}

func (t Table) set(row, column int, v float64) {
	t.Values[row][column] = v
}

func indexOf(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
