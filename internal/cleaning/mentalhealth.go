package cleaning

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/dataset"
	"workpulse/internal/errors"
)

// CleanMentalHealth returns the cleaned mental-health table:
//   - column names are lower-cased
//   - degree_of_remote_support, degree_of_social_isolation and
//     degree_of_work-life_balance bucket their 1-5 ratings
//   - the columns in MentalHealthDropColumns are dropped; each must exist
//   - work_location becomes work_type
//   - only Data Scientist, Software Engineer and Project Manager rows remain
//
// The input dataframe is not modified.
func CleanMentalHealth(df dataframe.DataFrame, opts Options) (dataframe.DataFrame, Report, error) {
	log := opts.logger().With(slog.String("dataset", "mental_health"))
	report := Report{Dataset: "mental_health", RowsIn: df.Nrow()}

	out := dataset.LowerNames(df)

	for _, b := range ratingBuckets {
		ratings, err := dataset.Numeric(out, b.source)
		if err != nil {
			return dataframe.DataFrame{}, report, err
		}
		degrees := make([]string, len(ratings))
		for i, r := range ratings {
			if opts.Strict && (math.IsNaN(r) || r < 1 || r > 5) {
				return dataframe.DataFrame{}, report, errors.NewAppValidationError(
					fmt.Sprintf("column %q has rating %v outside 1-5 in row %d", b.source, r, i+1)).
					WithContext("column", b.source)
			}
			degrees[i] = string(Bucket(r))
		}
		out = dataset.SetStrings(out, b.target, degrees)
	}

	out, err := dataset.DropRequired(out, MentalHealthDropColumns...)
	if err != nil {
		return dataframe.DataFrame{}, report, err
	}
	report.DroppedColumns = append([]string(nil), MentalHealthDropColumns...)

	out, err = dataset.RenameColumn(out, ColWorkType, ColWorkLocation)
	if err != nil {
		return dataframe.DataFrame{}, report, err
	}

	roles, err := dataset.Strings(out, ColJobRole)
	if err != nil {
		return dataframe.DataFrame{}, report, err
	}
	var keep []int
	for i, role := range roles {
		if allowedRole(role) {
			keep = append(keep, i)
		}
	}
	out = dataset.Rows(out, keep)

	report.RowsOut = out.Nrow()
	log.Info("Cleaned mental health table",
		slog.Int("rows_in", report.RowsIn),
		slog.Int("rows_out", report.RowsOut))

	return out, report, nil
}
