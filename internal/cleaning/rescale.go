package cleaning

import (
	"fmt"
	"math"

	"workpulse/internal/errors"
)

// Rescale maps values onto 1-5 relative to their own maximum:
// v/max*4 + 1. Zero maps to 1 and the maximum maps to 5.
//
// In strict mode a missing cell, a negative value or a zero maximum is a
// VALIDATION error. Otherwise NaN cells are skipped when looking for the
// maximum and the IEEE result (NaN or Inf) is returned.
func Rescale(column string, values []float64, strict bool) ([]float64, float64, error) {
	peak := math.NaN()
	for i, v := range values {
		if math.IsNaN(v) {
			if strict {
				return nil, 0, errors.NewAppValidationError(
					fmt.Sprintf("column %q is missing a value in row %d", column, i+1)).
					WithContext("column", column)
			}
			continue
		}
		if strict && v < 0 {
			return nil, 0, errors.NewAppValidationError(
				fmt.Sprintf("column %q has negative value %v in row %d", column, v, i+1)).
				WithContext("column", column)
		}
		if math.IsNaN(peak) || v > peak {
			peak = v
		}
	}

	if strict && (math.IsNaN(peak) || peak == 0) {
		return nil, peak, errors.NewAppValidationError(
			fmt.Sprintf("cannot rescale column %q: normalizing maximum is zero", column)).
			WithContext("column", column)
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v/peak*4 + 1
	}
	return out, peak, nil
}

// Round2 rounds half to even at two decimals.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
