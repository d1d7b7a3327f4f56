package stats

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/dataset"
)

// grouping maps each observed group label to its row indexes.
type grouping struct {
	labels []string
	rows   map[string][]int
}

// groupBy partitions the rows of df by the values of column. Labels listed
// in order come first, in that order; other observed labels follow sorted.
// Missing cells belong to no group.
func groupBy(df dataframe.DataFrame, column string, order []string) (grouping, error) {
	values, err := dataset.Strings(df, column)
	if err != nil {
		return grouping{}, err
	}

	g := grouping{rows: make(map[string][]int)}
	for i, v := range values {
		if v == "" {
			continue
		}
		g.rows[v] = append(g.rows[v], i)
	}
	g.labels = orderedLabels(g.rows, order)
	return g, nil
}

func orderedLabels(observed map[string][]int, order []string) []string {
	var labels []string
	seen := make(map[string]bool, len(observed))
	for _, l := range order {
		if _, ok := observed[l]; ok && !seen[l] {
			labels = append(labels, l)
			seen[l] = true
		}
	}
	var rest []string
	for l := range observed {
		if !seen[l] {
			rest = append(rest, l)
		}
	}
	sort.Strings(rest)
	return append(labels, rest...)
}

// pick returns values at idx with NaN cells removed.
func pick(values []float64, idx []int) []float64 {
	out := make([]float64, 0, len(idx))
	for _, i := range idx {
		if !math.IsNaN(values[i]) {
			out = append(out, values[i])
		}
	}
	return out
}

// numericColumns reads each column as float64 values.
func numericColumns(df dataframe.DataFrame, columns []string) (map[string][]float64, error) {
	out := make(map[string][]float64, len(columns))
	for _, name := range columns {
		values, err := dataset.Numeric(df, name)
		if err != nil {
			return nil, err
		}
		out[name] = values
	}
	return out, nil
}
