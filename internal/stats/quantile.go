package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the describe() statistics of one sample.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// SummaryColumns labels Summary fields in table order.
var SummaryColumns = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

func (s Summary) values() []float64 {
	return []float64{float64(s.Count), s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max}
}

// Summarize describes a sample with NaN cells already removed. The standard
// deviation is the sample one (n-1); a single value has an undefined
// deviation and an empty sample is all NaN with a zero count.
func Summarize(sample []float64) Summary {
	if len(sample) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}
	}

	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)

	s := Summary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Std:    math.NaN(),
		Min:    floats.Min(sorted),
		Q25:    Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q75:    Quantile(sorted, 0.75),
		Max:    floats.Max(sorted),
	}
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// Quantile returns the p-quantile of an ascending sample, interpolating
// linearly between the two closest ranks.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lower := int(math.Floor(h))
	upper := int(math.Ceil(h))
	if lower == upper {
		return sorted[lower]
	}
	weight := h - float64(lower)
	return sorted[lower] + weight*(sorted[upper]-sorted[lower])
}

// Median returns the median of a sample in any order.
func Median(sample []float64) float64 {
	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)
	return Quantile(sorted, 0.5)
}

func mean(sample []float64) float64 {
	if len(sample) == 0 {
		return math.NaN()
	}
	return stat.Mean(sample, nil)
}
