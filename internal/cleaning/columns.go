package cleaning

// Raw productivity columns
const (
	ColEmployeeID          = "Employee_ID"
	ColHireDate            = "Hire_Date"
	ColTeamSize            = "Team_Size"
	ColDepartment          = "Department"
	ColRemoteWorkFrequency = "Remote_Work_Frequency"
	ColPromotions          = "Promotions"
	ColTrainingHours       = "Training_Hours"
	ColSatisfactionScore   = "Employee_Satisfaction_Score"
	ColPerformanceScore    = "Performance_Score"
	ColMotivationScore     = "Motivation_Score"
)

// Cleaned column names shared by both tables
const (
	ColWorkType = "work_type"
)

// Cleaned productivity columns read by the reports
const (
	ColWorkHoursPerWeek = "work_hours_per_week"
	ColOvertimeHours    = "overtime_hours"
	ColPerformance      = "performance_score"
	ColSatisfaction     = "employee_satisfaction_score"
	ColMotivation       = "motivation_score"
)

// Mental-health columns, after lower-casing
const (
	ColJobRole               = "job_role"
	ColWorkLocation          = "work_location"
	ColCompanySupport        = "company_support_for_remote_work"
	ColSocialIsolation       = "social_isolation_rating"
	ColWorkLifeBalance       = "work_life_balance_rating"
	ColStressLevel           = "stress_level"
	ColSatisfactionRemote    = "satisfaction_with_remote_work"
	ColHoursWorkedPerWeek    = "hours_worked_per_week"
	ColVirtualMeetings       = "number_of_virtual_meetings"
	ColDegreeRemoteSupport   = "degree_of_remote_support"
	ColDegreeSocialIsolation = "degree_of_social_isolation"
	ColDegreeWorkLifeBalance = "degree_of_work-life_balance"
)

// ProductivityDropColumns are removed from the productivity table when present.
var ProductivityDropColumns = []string{ColEmployeeID, ColHireDate, ColTeamSize}

// MentalHealthDropColumns must all be present in the mental-health table.
var MentalHealthDropColumns = []string{
	"employee_id",
	"industry",
	"mental_health_condition",
	"access_to_mental_health_resources",
	"physical_activity",
	"sleep_quality",
	"region",
}

// ratingBuckets maps each rating column to its degree column, in output order.
var ratingBuckets = []struct {
	source string
	target string
}{
	{ColCompanySupport, ColDegreeRemoteSupport},
	{ColSocialIsolation, ColDegreeSocialIsolation},
	{ColWorkLifeBalance, ColDegreeWorkLifeBalance},
}
