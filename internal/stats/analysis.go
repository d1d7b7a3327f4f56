package stats

import (
	"github.com/go-gota/gota/dataframe"

	"workpulse/internal/cleaning"
)

// Columns aggregated by the reports.
var (
	// ScoreColumns are the productivity scores compared across work types.
	ScoreColumns = []string{cleaning.ColPerformance, cleaning.ColSatisfaction, cleaning.ColMotivation}

	// PivotColumns are the scores of the mean/median pivot, in column order.
	PivotColumns = []string{cleaning.ColSatisfaction, cleaning.ColMotivation, cleaning.ColPerformance}

	// HoursColumns are stacked in the work hours chart.
	HoursColumns = []string{cleaning.ColWorkHoursPerWeek, cleaning.ColOvertimeHours}

	// GroupSummaryColumns are described per work type in the mental-health report.
	GroupSummaryColumns = []string{
		cleaning.ColHoursWorkedPerWeek,
		cleaning.ColVirtualMeetings,
		cleaning.ColWorkLifeBalance,
		cleaning.ColCompanySupport,
	}
)

// ProductivityStats holds every table reported for the productivity data.
type ProductivityStats struct {
	Describe    []Table
	Pivot       Table
	Counts      Table
	Hours       Table
	Scores      Table
	Correlation Table
}

// Tables lists the tables in report order.
func (s ProductivityStats) Tables() []Table {
	tables := make([]Table, 0, len(s.Describe)+5)
	for _, d := range s.Describe {
		d.Name = "describe_" + d.Name
		tables = append(tables, d)
	}
	return append(tables, s.Pivot, s.Counts, s.Hours, s.Scores, s.Correlation)
}

// AnalyzeProductivity computes the productivity report tables from the
// cleaned productivity table.
func AnalyzeProductivity(df dataframe.DataFrame) (ProductivityStats, error) {
	var s ProductivityStats
	var err error

	order := cleaning.WorkTypeOrder
	if s.Describe, err = DescribeByGroup(df, cleaning.ColWorkType, order); err != nil {
		return s, err
	}
	if s.Pivot, err = PivotMeanMedian(df, cleaning.ColWorkType, order, PivotColumns...); err != nil {
		return s, err
	}
	if s.Counts, err = ValueCounts(df, cleaning.ColWorkType, order); err != nil {
		return s, err
	}
	if s.Hours, err = GroupMeans(df, cleaning.ColWorkType, order, HoursColumns...); err != nil {
		return s, err
	}
	if s.Scores, err = GroupMeans(df, cleaning.ColWorkType, order, ScoreColumns...); err != nil {
		return s, err
	}
	if s.Correlation, err = CorrelationMatrix(df); err != nil {
		return s, err
	}
	return s, nil
}

// MentalHealthStats holds every table reported for the mental-health data.
type MentalHealthStats struct {
	Satisfaction   Table
	Productivity   Table
	HoursShare     Table
	StressWorkType Table
	StressJobRole  Table
	Summaries      []Table
}

// Tables lists the tables in report order.
func (s MentalHealthStats) Tables() []Table {
	tables := []Table{s.Satisfaction, s.Productivity, s.HoursShare, s.StressWorkType, s.StressJobRole}
	return append(tables, s.Summaries...)
}

// AnalyzeMentalHealth computes the mental-health report tables from the
// cleaned mental-health table.
func AnalyzeMentalHealth(df dataframe.DataFrame) (MentalHealthStats, error) {
	var s MentalHealthStats
	var err error

	order := cleaning.WorkTypeOrder
	if s.Satisfaction, err = GroupMeans(df, cleaning.ColSatisfactionRemote, nil,
		cleaning.ColCompanySupport, cleaning.ColSocialIsolation); err != nil {
		return s, err
	}
	if s.Productivity, err = GroupMeans(df, cleaning.ColWorkType, order,
		cleaning.ColVirtualMeetings, cleaning.ColHoursWorkedPerWeek); err != nil {
		return s, err
	}
	if s.HoursShare, err = GroupSums(df, cleaning.ColWorkType, order, cleaning.ColHoursWorkedPerWeek); err != nil {
		return s, err
	}
	if s.StressWorkType, err = CrossTabPercent(df, cleaning.ColStressLevel, cleaning.DegreeOrder,
		cleaning.ColWorkType, order); err != nil {
		return s, err
	}
	if s.StressJobRole, err = CrossTabPercent(df, cleaning.ColStressLevel, cleaning.DegreeOrder,
		cleaning.ColJobRole, nil); err != nil {
		return s, err
	}
	for _, col := range GroupSummaryColumns {
		t, err := GroupSummary(df, cleaning.ColWorkType, order, col)
		if err != nil {
			return s, err
		}
		s.Summaries = append(s.Summaries, t)
	}
	return s, nil
}
