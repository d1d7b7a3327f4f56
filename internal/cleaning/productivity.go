package cleaning

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/dataset"
	"workpulse/internal/errors"
)

// productivityRequired are the columns filtering and scoring depend on.
var productivityRequired = []string{
	ColDepartment,
	ColRemoteWorkFrequency,
	ColPromotions,
	ColTrainingHours,
	ColSatisfactionScore,
	ColPerformanceScore,
}

// CleanProductivity returns the cleaned productivity table:
//   - Employee_ID, Hire_Date and Team_Size are dropped when present
//   - only IT rows with a remote-work frequency of 100, 50 or 0 are kept
//   - the frequency is replaced by its Remote/Hybrid/Onsite label
//   - Motivation_Score is the two-decimal mean of satisfaction, performance
//     and the rescaled promotions and training hours
//   - column names are lower-cased and remote_work_frequency becomes work_type
//
// The input dataframe is not modified.
func CleanProductivity(df dataframe.DataFrame, opts Options) (dataframe.DataFrame, Report, error) {
	log := opts.logger().With(slog.String("dataset", "productivity"))
	report := Report{Dataset: "productivity", RowsIn: df.Nrow(), Maxima: map[string]float64{}}

	for _, name := range ProductivityDropColumns {
		if dataset.HasColumn(df, name) {
			report.DroppedColumns = append(report.DroppedColumns, name)
		}
	}
	out := dataset.DropColumns(df, ProductivityDropColumns...)

	if err := dataset.RequireColumns(out, productivityRequired...); err != nil {
		return dataframe.DataFrame{}, report, err
	}

	keep, labels, err := filterProductivity(out, opts.Strict)
	if err != nil {
		return dataframe.DataFrame{}, report, err
	}
	if len(keep) == 0 {
		return dataframe.DataFrame{}, report, errors.NewAppValidationError(
			"no IT rows with a remote-work frequency of 0, 50 or 100")
	}
	log.Debug("Filtered productivity rows",
		slog.Int("rows_in", report.RowsIn),
		slog.Int("rows_kept", len(keep)))

	out = dataset.Rows(out, keep)
	out = dataset.SetStrings(out, ColRemoteWorkFrequency, labels)

	scores, err := motivationScores(out, opts.Strict, report.Maxima)
	if err != nil {
		return dataframe.DataFrame{}, report, err
	}
	out = dataset.SetFloats(out, ColMotivationScore, scores)

	out = dataset.LowerNames(out)
	out, err = dataset.RenameColumn(out, ColWorkType, strings.ToLower(ColRemoteWorkFrequency))
	if err != nil {
		return dataframe.DataFrame{}, report, err
	}

	report.RowsOut = out.Nrow()
	log.Info("Cleaned productivity table",
		slog.Int("rows_in", report.RowsIn),
		slog.Int("rows_out", report.RowsOut),
		slog.Any("dropped_columns", report.DroppedColumns),
		slog.Any("normalizing_maxima", report.Maxima))

	return out, report, nil
}

// filterProductivity returns the indexes of kept rows and their work type
// labels.
func filterProductivity(df dataframe.DataFrame, strict bool) ([]int, []string, error) {
	departments, err := dataset.Strings(df, ColDepartment)
	if err != nil {
		return nil, nil, err
	}
	freqs, err := dataset.Strings(df, ColRemoteWorkFrequency)
	if err != nil {
		return nil, nil, err
	}

	var keep []int
	var labels []string
	for i, dept := range departments {
		if dept != "IT" {
			continue
		}
		freq, err := dataset.ParseCell(ColRemoteWorkFrequency, freqs[i], i+1)
		if err != nil {
			return nil, nil, err
		}
		if strict && !knownFrequency(freq) {
			return nil, nil, errors.NewAppValidationError(
				fmt.Sprintf("column %q has out-of-domain value %v in row %d", ColRemoteWorkFrequency, freq, i+1)).
				WithContext("column", ColRemoteWorkFrequency)
		}
		label, ok := WorkTypeForFrequency(freq)
		if !ok {
			continue
		}
		keep = append(keep, i)
		labels = append(labels, string(label))
	}
	return keep, labels, nil
}

// motivationScores computes the per-row motivation score of the filtered
// table and records each normalizing maximum in maxima.
func motivationScores(df dataframe.DataFrame, strict bool, maxima map[string]float64) ([]float64, error) {
	satisfaction, err := dataset.Numeric(df, ColSatisfactionScore)
	if err != nil {
		return nil, err
	}
	performance, err := dataset.Numeric(df, ColPerformanceScore)
	if err != nil {
		return nil, err
	}
	if strict {
		for _, col := range []struct {
			name   string
			values []float64
		}{{ColSatisfactionScore, satisfaction}, {ColPerformanceScore, performance}} {
			if err := checkScoreRange(col.name, col.values); err != nil {
				return nil, err
			}
		}
	}

	promotions, err := dataset.Numeric(df, ColPromotions)
	if err != nil {
		return nil, err
	}
	training, err := dataset.Numeric(df, ColTrainingHours)
	if err != nil {
		return nil, err
	}

	promotionsScaled, promotionsMax, err := Rescale(ColPromotions, promotions, strict)
	if err != nil {
		return nil, err
	}
	trainingScaled, trainingMax, err := Rescale(ColTrainingHours, training, strict)
	if err != nil {
		return nil, err
	}
	maxima[ColPromotions] = promotionsMax
	maxima[ColTrainingHours] = trainingMax

	scores := make([]float64, len(satisfaction))
	for i := range scores {
		sum := satisfaction[i] + performance[i] + promotionsScaled[i] + trainingScaled[i]
		scores[i] = Round2(sum / 4)
	}
	return scores, nil
}

func checkScoreRange(column string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || v < 1 || v > 5 {
			return errors.NewAppValidationError(
				fmt.Sprintf("column %q has value %v outside 1-5 in row %d", column, v, i+1)).
				WithContext("column", column)
		}
	}
	return nil
}
