package cleaning

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workpulse/internal/dataset"
	"workpulse/internal/errors"
)

const productivityHeader = "Employee_ID,Department,Gender,Age,Job_Title,Hire_Date,Years_At_Company,Education_Level," +
	"Performance_Score,Monthly_Salary,Work_Hours_Per_Week,Projects_Handled,Overtime_Hours,Sick_Days," +
	"Remote_Work_Frequency,Team_Size,Training_Hours,Promotions,Employee_Satisfaction_Score,Resigned\n"

// productivityFixture has five IT rows with frequencies 100, 50, 0, 75, 25
// and two rows from other departments.
const productivityFixture = productivityHeader +
	"1,IT,Male,30,Developer,2020-01-01,4,Bachelor,5,6000,40,20,10,2,100,5,0,0,5,False\n" +
	"2,IT,Female,41,Analyst,2019-03-12,5,Master,5,6500,45,24,12,5,50,8,50,2,5,False\n" +
	"3,IT,Male,52,Engineer,2015-07-30,9,PhD,5,7000,50,30,20,9,0,10,100,4,5,True\n" +
	"4,IT,Female,28,Developer,2021-11-02,2,Bachelor,5,5500,42,18,5,1,75,6,25,1,5,False\n" +
	"5,IT,Male,35,Analyst,2018-05-17,6,Master,5,6200,44,22,8,3,25,7,75,3,5,False\n" +
	"6,HR,Female,45,Manager,2012-02-20,12,Master,4,8000,48,15,14,6,100,4,99,9,4,False\n" +
	"7,Finance,Male,38,Analyst,2017-09-09,7,Bachelor,3,5800,46,21,11,4,0,9,10,0,2,False\n"

func readFixture(t *testing.T, data string) dataframe.DataFrame {
	t.Helper()
	df, err := dataset.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	return df
}

func TestCleanProductivity(t *testing.T) {
	raw := readFixture(t, productivityFixture)

	df, report, err := CleanProductivity(raw, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, 7, report.RowsIn)
	assert.Equal(t, 3, report.RowsOut)
	assert.Equal(t, []string{"Employee_ID", "Hire_Date", "Team_Size"}, report.DroppedColumns)
	assert.Equal(t, 4.0, report.Maxima[ColPromotions])
	assert.Equal(t, 100.0, report.Maxima[ColTrainingHours])

	workTypes, err := dataset.Strings(df, ColWorkType)
	require.NoError(t, err)
	assert.Equal(t, []string{"Remote", "Hybrid", "Onsite"}, workTypes)

	departments, err := dataset.Strings(df, "department")
	require.NoError(t, err)
	for _, d := range departments {
		assert.Equal(t, "IT", d)
	}

	scores, err := dataset.Numeric(df, "motivation_score")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, scores)

	for _, name := range df.Names() {
		assert.Equal(t, strings.ToLower(name), name)
	}
	for _, gone := range []string{"employee_id", "hire_date", "team_size", "remote_work_frequency"} {
		assert.False(t, dataset.HasColumn(df, gone), gone)
	}
	assert.Equal(t, "motivation_score", df.Names()[df.Ncol()-1])
}

func TestCleanProductivity_DoesNotModifyInput(t *testing.T) {
	raw := readFixture(t, productivityFixture)
	names := raw.Names()

	_, _, err := CleanProductivity(raw, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, names, raw.Names())
	assert.Equal(t, 7, raw.Nrow())
}

func TestCleanProductivity_MotivationWithinRange(t *testing.T) {
	raw := readFixture(t, productivityHeader+
		"1,IT,Male,30,Dev,2020-01-01,4,Bachelor,1,6000,40,20,10,2,100,5,13,1,2,False\n"+
		"2,IT,Male,30,Dev,2020-01-01,4,Bachelor,3,6000,40,20,10,2,0,5,87,0,5,False\n"+
		"3,IT,Male,30,Dev,2020-01-01,4,Bachelor,4,6000,40,20,10,2,50,5,42,7,1,False\n"+
		"4,IT,Male,30,Dev,2020-01-01,4,Bachelor,2,6000,40,20,10,2,100,5,99,3,3,False\n")

	df, _, err := CleanProductivity(raw, DefaultOptions())
	require.NoError(t, err)

	scores, err := dataset.Numeric(df, "motivation_score")
	require.NoError(t, err)
	require.Len(t, scores, 4)
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 1.0)
		assert.LessOrEqual(t, s, 5.0)
	}
}

func TestCleanProductivity_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		opts    Options
		errType errors.ErrorType
	}{
		{
			name:    "missing department",
			data:    "Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n100,1,1,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeMissingField,
		},
		{
			name: "non-numeric promotions",
			data: "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
				"IT,100,one,10,3,3\nIT,50,2,20,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeTypeMismatch,
		},
		{
			name: "zero promotions maximum",
			data: "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
				"IT,100,0,10,3,3\nIT,50,0,20,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeValidation,
		},
		{
			name: "no rows left",
			data: "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
				"HR,100,1,10,3,3\nIT,75,2,20,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeValidation,
		},
		{
			name: "frequency outside domain",
			data: "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
				"IT,100,1,10,3,3\nIT,60,2,20,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeValidation,
		},
		{
			name: "missing promotions",
			data: "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
				"IT,100,,10,3,3\nIT,0,2,10,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeValidation,
		},
		{
			name: "missing training hours",
			data: "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
				"IT,100,1,10,3,3\nIT,0,2,,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeValidation,
		},
		{
			name: "non-numeric frequency in an IT row",
			data: "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
				"IT,100,1,10,3,3\nIT,n/a,2,20,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeTypeMismatch,
		},
		{
			name: "satisfaction outside 1-5",
			data: "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
				"IT,100,1,10,7,3\nIT,50,2,20,3,3\n",
			opts:    DefaultOptions(),
			errType: errors.ErrTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := readFixture(t, tt.data)
			_, _, err := CleanProductivity(raw, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestCleanProductivity_Lenient(t *testing.T) {
	data := "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
		"IT,100,0,10,3,3\nIT,60,0,20,3,3\nIT,0,0,40,4,4\n"
	raw := readFixture(t, data)

	df, report, err := CleanProductivity(raw, Options{Strict: false})
	require.NoError(t, err)

	assert.Equal(t, 2, df.Nrow())
	assert.Empty(t, report.DroppedColumns)
	assert.Equal(t, 0.0, report.Maxima[ColPromotions])

	scores, err := dataset.Numeric(df, "motivation_score")
	require.NoError(t, err)
	for _, s := range scores {
		assert.True(t, math.IsNaN(s), "zero maximum yields NaN, got %v", s)
	}
}

func TestCleanProductivity_MissingPromotionsLenient(t *testing.T) {
	data := "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
		"IT,100,,10,3,3\nIT,0,2,10,3,3\n"
	raw := readFixture(t, data)

	df, _, err := CleanProductivity(raw, Options{Strict: false})
	require.NoError(t, err)

	scores, err := dataset.Numeric(df, "motivation_score")
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.True(t, math.IsNaN(scores[0]))
	assert.Equal(t, 4.0, scores[1])
}

func TestCleanProductivity_IgnoresOtherDepartments(t *testing.T) {
	data := "Department,Remote_Work_Frequency,Promotions,Training_Hours,Employee_Satisfaction_Score,Performance_Score\n" +
		"IT,100,1,10,3,3\nHR,n/a,2,20,3,3\nIT,0,2,20,3,3\n"
	raw := readFixture(t, data)

	df, report, err := CleanProductivity(raw, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, report.RowsIn)
	assert.Equal(t, 2, df.Nrow())
	workTypes, err := dataset.Strings(df, "work_type")
	require.NoError(t, err)
	assert.Equal(t, []string{"Remote", "Onsite"}, workTypes)
}

func TestRescale(t *testing.T) {
	values := []float64{0, 2, 4, 1, 3}
	out, peak, err := Rescale("promotions", values, true)
	require.NoError(t, err)

	assert.Equal(t, 4.0, peak)
	assert.Equal(t, []float64{1, 3, 5, 2, 4}, out)

	again, _, err := Rescale("promotions", []float64{0, 4}, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5}, again)
}

func TestRescale_SkipsNaN(t *testing.T) {
	out, peak, err := Rescale("training", []float64{math.NaN(), 50, 100}, false)
	require.NoError(t, err)

	assert.Equal(t, 100.0, peak)
	assert.True(t, math.IsNaN(out[0]))
	assert.Equal(t, 3.0, out[1])
	assert.Equal(t, 5.0, out[2])
}

func TestRescale_Degenerate(t *testing.T) {
	_, _, err := Rescale("promotions", []float64{0, 0}, true)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

	_, _, err = Rescale("promotions", []float64{-1, 3}, true)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

	_, _, err = Rescale("promotions", []float64{math.NaN()}, true)
	require.Error(t, err)

	_, _, err = Rescale("training", []float64{100, math.NaN(), 50}, true)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
	assert.Contains(t, err.Error(), "row 2")

	out, _, err := Rescale("promotions", []float64{0, 0}, false)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))

	out, _, err = Rescale("promotions", []float64{-2, 0, 2}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 1, 5}, out)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.12, Round2(3.125))
	assert.Equal(t, 3.5, Round2(3.5))
	assert.Equal(t, 2.67, Round2(8.0/3))
}

func TestBucket(t *testing.T) {
	tests := []struct {
		rating float64
		want   Degree
	}{
		{1, Low},
		{2, Low},
		{3, Medium},
		{4, High},
		{5, High},
		{0, Low},
		{2.5, High},
		{6, High},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bucket(tt.rating), "rating %v", tt.rating)
	}
}

func TestWorkTypeForFrequency(t *testing.T) {
	tests := []struct {
		freq float64
		want WorkType
		ok   bool
	}{
		{100, Remote, true},
		{50, Hybrid, true},
		{0, Onsite, true},
		{75, "", false},
		{25, "", false},
	}
	for _, tt := range tests {
		got, ok := WorkTypeForFrequency(tt.freq)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.ok, ok)
	}
	assert.True(t, knownFrequency(25))
	assert.False(t, knownFrequency(60))
}

const mentalHealthHeader = "Employee_ID,Age,Gender,Job_Role,Industry,Years_of_Experience,Work_Location," +
	"Hours_Worked_Per_Week,Number_of_Virtual_Meetings,Work_Life_Balance_Rating,Stress_Level," +
	"Mental_Health_Condition,Access_to_Mental_Health_Resources,Productivity_Change,Social_Isolation_Rating," +
	"Satisfaction_with_Remote_Work,Company_Support_for_Remote_Work,Physical_Activity,Sleep_Quality,Region\n"

const mentalHealthFixture = mentalHealthHeader +
	"EMP0001,32,Female,Data Scientist,IT,5,Remote,40,5,1,Low,None,Yes,Increase,2,Satisfied,3,Daily,Good,Europe\n" +
	"EMP0002,40,Male,Software Engineer,IT,10,Hybrid,45,8,3,Medium,Anxiety,No,Decrease,4,Neutral,1,Weekly,Poor,Asia\n" +
	"EMP0003,29,Female,HR,Finance,3,Onsite,38,2,4,High,Burnout,No,No Change,5,Unsatisfied,5,None,Average,Africa\n" +
	"EMP0004,51,Male,Project Manager,Healthcare,20,Onsite,50,12,5,High,Depression,Yes,Increase,1,Satisfied,2,Daily,Good,Oceania\n" +
	"EMP0005,44,Non-binary,Sales,Retail,12,Remote,42,6,2,Low,None,Yes,Decrease,3,Neutral,4,Weekly,Poor,Europe\n"

func TestCleanMentalHealth(t *testing.T) {
	raw := readFixture(t, mentalHealthFixture)

	df, report, err := CleanMentalHealth(raw, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, 5, report.RowsIn)
	assert.Equal(t, 3, report.RowsOut)
	assert.Equal(t, MentalHealthDropColumns, report.DroppedColumns)

	roles, err := dataset.Strings(df, ColJobRole)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Scientist", "Software Engineer", "Project Manager"}, roles)

	workTypes, err := dataset.Strings(df, ColWorkType)
	require.NoError(t, err)
	assert.Equal(t, []string{"Remote", "Hybrid", "Onsite"}, workTypes)

	support, err := dataset.Strings(df, ColDegreeRemoteSupport)
	require.NoError(t, err)
	assert.Equal(t, []string{"Medium", "Low", "Low"}, support)

	isolation, err := dataset.Strings(df, ColDegreeSocialIsolation)
	require.NoError(t, err)
	assert.Equal(t, []string{"Low", "High", "Low"}, isolation)

	balance, err := dataset.Strings(df, ColDegreeWorkLifeBalance)
	require.NoError(t, err)
	assert.Equal(t, []string{"Low", "Medium", "High"}, balance)

	for _, gone := range append([]string{ColWorkLocation}, MentalHealthDropColumns...) {
		assert.False(t, dataset.HasColumn(df, gone), gone)
	}
	assert.True(t, dataset.HasColumn(df, ColCompanySupport))
}

func TestCleanMentalHealth_Errors(t *testing.T) {
	t.Run("missing drop column", func(t *testing.T) {
		data := strings.Replace(mentalHealthFixture, "Region\n", "Area\n", 1)
		_, _, err := CleanMentalHealth(readFixture(t, data), DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeMissingField))
		assert.Contains(t, err.Error(), "region")
	})

	t.Run("rating outside 1-5", func(t *testing.T) {
		data := mentalHealthHeader +
			"EMP0001,32,Female,Data Scientist,IT,5,Remote,40,5,1,Low,None,Yes,Increase,2,Satisfied,7,Daily,Good,Europe\n"
		_, _, err := CleanMentalHealth(readFixture(t, data), DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

		df, _, err := CleanMentalHealth(readFixture(t, data), Options{Strict: false})
		require.NoError(t, err)
		support, err := dataset.Strings(df, ColDegreeRemoteSupport)
		require.NoError(t, err)
		assert.Equal(t, []string{"High"}, support)
	})

	t.Run("no matching roles", func(t *testing.T) {
		data := mentalHealthHeader +
			"EMP0003,29,Female,HR,Finance,3,Onsite,38,2,4,High,Burnout,No,No Change,5,Unsatisfied,5,None,Average,Africa\n"
		df, _, err := CleanMentalHealth(readFixture(t, data), DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 0, df.Nrow())
		assert.True(t, dataset.HasColumn(df, ColJobRole))
	})
}
