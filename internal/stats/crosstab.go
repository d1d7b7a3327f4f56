package stats

import (
	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/cleaning"
	"workpulse/internal/dataset"
)

// TotalColumn is the last column of a CrossTabPercent table.
const TotalColumn = "Total"

// CrossTabPercent tabulates rowCol against colCol as row-normalised
// percentages. Each row has a column per observed colCol value, labelled by
// that value and rounded to two decimals, then a Total column holding the sum
// of the rounded cells. Rows exist only for observed rowCol values.
// Rows with a missing cell in either column are not counted.
func CrossTabPercent(df dataframe.DataFrame, rowCol string, rowOrder []string, colCol string, colOrder []string) (Table, error) {
	rowValues, err := dataset.Strings(df, rowCol)
	if err != nil {
		return Table{}, err
	}
	colValues, err := dataset.Strings(df, colCol)
	if err != nil {
		return Table{}, err
	}

	counts := make(map[string]map[string]int)
	rowSeen := make(map[string][]int)
	colSeen := make(map[string][]int)
	for i := range rowValues {
		r, c := rowValues[i], colValues[i]
		if r == "" || c == "" {
			continue
		}
		if counts[r] == nil {
			counts[r] = make(map[string]int)
		}
		counts[r][c]++
		rowSeen[r] = append(rowSeen[r], i)
		colSeen[c] = append(colSeen[c], i)
	}

	rows := orderedLabels(rowSeen, rowOrder)
	cols := orderedLabels(colSeen, colOrder)

	t := NewTable(rowCol+"_by_"+colCol, rowCol, rows, append(cols, TotalColumn))
	for i, r := range rows {
		n := len(rowSeen[r])
		total := 0.0
		for j, c := range cols {
			pct := cleaning.Round2(float64(counts[r][c]) / float64(n) * 100)
			t.set(i, j, pct)
			total += pct
		}
		t.set(i, len(cols), cleaning.Round2(total))
	}
	return t, nil
}
