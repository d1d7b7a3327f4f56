package stats

import (
	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/dataset"
)

// DescribeByGroup summarises every numeric column of df per group of
// groupCol. It returns one table per observed group, named after the group,
// with a row per numeric column and the SummaryColumns as columns.
func DescribeByGroup(df dataframe.DataFrame, groupCol string, order []string) ([]Table, error) {
	g, err := groupBy(df, groupCol, order)
	if err != nil {
		return nil, err
	}

	var columns []string
	for _, name := range dataset.NumericColumns(df) {
		if name != groupCol {
			columns = append(columns, name)
		}
	}
	values, err := numericColumns(df, columns)
	if err != nil {
		return nil, err
	}

	tables := make([]Table, 0, len(g.labels))
	for _, label := range g.labels {
		t := NewTable(label, "column", columns, SummaryColumns)
		for i, name := range columns {
			t.Values[i] = Summarize(pick(values[name], g.rows[label])).values()
		}
		tables = append(tables, t)
	}
	return tables, nil
}
