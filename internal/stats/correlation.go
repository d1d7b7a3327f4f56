package stats

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"

	"workpulse/internal/dataset"
)

// CorrelationMatrix returns the Pearson correlation of every pair of
// numeric columns of df. Each pair uses the rows where both cells are
// present; fewer than two such rows, or a constant column, gives NaN.
func CorrelationMatrix(df dataframe.DataFrame) (Table, error) {
	columns := dataset.NumericColumns(df)
	values, err := numericColumns(df, columns)
	if err != nil {
		return Table{}, err
	}

	t := NewTable("correlation", "column", columns, columns)
	for i, a := range columns {
		for j := i; j < len(columns); j++ {
			r := pearson(values[a], values[columns[j]])
			t.set(i, j, r)
			t.set(j, i, r)
		}
	}
	return t, nil
}

func pearson(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
