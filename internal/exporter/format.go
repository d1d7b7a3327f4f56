package exporter

import (
	"math"
	"strconv"
)

// formatFloat formats a float64 value for CSV output in its shortest exact
// form. Missing values are written as empty cells.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatBool formats a boolean value the way the raw data spells it.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
