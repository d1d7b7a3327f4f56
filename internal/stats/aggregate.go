package stats

import (
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/floats"

	"workpulse/internal/cleaning"
)

// PivotMeanMedian returns the mean and median of each value column per
// group. Columns are "mean <col>" for every value column, then
// "median <col>".
func PivotMeanMedian(df dataframe.DataFrame, groupCol string, order []string, valueCols ...string) (Table, error) {
	g, err := groupBy(df, groupCol, order)
	if err != nil {
		return Table{}, err
	}
	values, err := numericColumns(df, valueCols)
	if err != nil {
		return Table{}, err
	}

	columns := make([]string, 0, 2*len(valueCols))
	for _, agg := range []string{"mean", "median"} {
		for _, c := range valueCols {
			columns = append(columns, agg+" "+c)
		}
	}

	t := NewTable("mean_median_by_"+groupCol, groupCol, g.labels, columns)
	for i, label := range g.labels {
		for j, c := range valueCols {
			sample := pick(values[c], g.rows[label])
			t.set(i, j, mean(sample))
			t.set(i, len(valueCols)+j, Median(sample))
		}
	}
	return t, nil
}

// GroupMeans returns the mean of each column per group.
func GroupMeans(df dataframe.DataFrame, groupCol string, order []string, cols ...string) (Table, error) {
	return groupReduce(df, "mean", groupCol, order, cols, mean)
}

// GroupSums returns the total of each column per group.
func GroupSums(df dataframe.DataFrame, groupCol string, order []string, cols ...string) (Table, error) {
	return groupReduce(df, "sum", groupCol, order, cols, floats.Sum)
}

func groupReduce(df dataframe.DataFrame, agg, groupCol string, order, cols []string, reduce func([]float64) float64) (Table, error) {
	g, err := groupBy(df, groupCol, order)
	if err != nil {
		return Table{}, err
	}
	values, err := numericColumns(df, cols)
	if err != nil {
		return Table{}, err
	}

	t := NewTable(agg+"_by_"+groupCol, groupCol, g.labels, cols)
	for i, label := range g.labels {
		for j, c := range cols {
			t.set(i, j, reduce(pick(values[c], g.rows[label])))
		}
	}
	return t, nil
}

// ValueCounts counts the rows of each value of col, with its share of all
// counted rows as a percentage.
func ValueCounts(df dataframe.DataFrame, col string, order []string) (Table, error) {
	g, err := groupBy(df, col, order)
	if err != nil {
		return Table{}, err
	}

	total := 0
	for _, label := range g.labels {
		total += len(g.rows[label])
	}

	t := NewTable("counts_of_"+col, col, g.labels, []string{"count", "percent"})
	for i, label := range g.labels {
		n := len(g.rows[label])
		t.set(i, 0, float64(n))
		t.set(i, 1, float64(n)/float64(total)*100)
	}
	return t, nil
}

// SummaryStatColumns labels the GroupSummary columns.
var SummaryStatColumns = []string{"mean", "median", "min", "max"}

// GroupSummary returns the mean, median, min and max of col per group. The
// mean is rounded to two decimals.
func GroupSummary(df dataframe.DataFrame, groupCol string, order []string, col string) (Table, error) {
	g, err := groupBy(df, groupCol, order)
	if err != nil {
		return Table{}, err
	}
	values, err := numericColumns(df, []string{col})
	if err != nil {
		return Table{}, err
	}

	t := NewTable(col+"_by_"+groupCol, groupCol, g.labels, SummaryStatColumns)
	for i, label := range g.labels {
		s := Summarize(pick(values[col], g.rows[label]))
		t.set(i, 0, cleaning.Round2(s.Mean))
		t.set(i, 1, s.Median)
		t.set(i, 2, s.Min)
		t.set(i, 3, s.Max)
	}
	return t, nil
}
