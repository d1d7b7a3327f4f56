package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ProductivityCSV is a raw productivity table. Eight rows survive cleaning:
// three Remote, three Hybrid and two Onsite IT employees.
const ProductivityCSV = `Employee_ID,Department,Gender,Age,Job_Title,Hire_Date,Years_At_Company,Education_Level,Performance_Score,Monthly_Salary,Work_Hours_Per_Week,Projects_Handled,Overtime_Hours,Sick_Days,Remote_Work_Frequency,Team_Size,Training_Hours,Promotions,Employee_Satisfaction_Score,Resigned
1,IT,Male,30,Developer,2020-01-01 08:00:00,4,Bachelor,5,6000,40,20,10,2,100,5,0,0,4.5,False
2,IT,Female,41,Analyst,2019-03-12 08:00:00,5,Master,4,6500,45,24,12,5,50,8,50,2,3.2,False
3,IT,Male,52,Engineer,2015-07-30 08:00:00,9,PhD,3,7000,50,30,20,9,0,10,100,4,2.8,True
4,IT,Female,28,Developer,2021-11-02 08:00:00,2,Bachelor,2,5500,42,18,5,1,75,6,25,1,1.9,False
5,IT,Male,35,Analyst,2018-05-17 08:00:00,6,Master,1,6200,44,22,8,3,25,7,75,3,4.1,False
6,HR,Female,45,Manager,2012-02-20 08:00:00,12,Master,4,8000,48,15,14,6,100,4,99,9,4.0,False
7,IT,Male,38,Engineer,2017-09-09 08:00:00,7,Bachelor,3,5800,46,21,11,4,100,9,30,1,3.7,False
8,IT,Female,26,Developer,2022-04-18 08:00:00,1,High School,4,5100,39,12,3,0,50,3,80,0,2.5,False
9,Finance,Male,50,Analyst,2010-06-01 08:00:00,14,PhD,5,9000,41,19,7,2,0,12,60,2,3.3,True
10,IT,Male,44,Engineer,2016-08-23 08:00:00,8,Master,5,7600,47,28,18,8,0,6,65,3,4.8,False
11,IT,Female,33,Analyst,2020-10-10 08:00:00,4,Bachelor,2,5900,43,17,9,6,50,11,20,1,1.4,True
12,IT,Male,57,Developer,2011-01-30 08:00:00,13,PhD,4,8300,49,26,15,7,100,5,90,2,3.9,False
`

// MentalHealthCSV is a raw mental-health table. Eight rows survive cleaning
// and every stress level is present among them.
const MentalHealthCSV = `Employee_ID,Age,Gender,Job_Role,Industry,Years_of_Experience,Work_Location,Hours_Worked_Per_Week,Number_of_Virtual_Meetings,Work_Life_Balance_Rating,Stress_Level,Mental_Health_Condition,Access_to_Mental_Health_Resources,Productivity_Change,Social_Isolation_Rating,Satisfaction_with_Remote_Work,Company_Support_for_Remote_Work,Physical_Activity,Sleep_Quality,Region
EMP0001,32,Female,Data Scientist,IT,5,Remote,40,5,1,Low,None,Yes,Increase,2,Satisfied,3,Daily,Good,Europe
EMP0002,40,Male,Software Engineer,IT,10,Hybrid,45,8,3,Medium,Anxiety,No,Decrease,4,Neutral,1,Weekly,Poor,Asia
EMP0003,29,Female,HR,Finance,3,Onsite,38,2,4,High,Burnout,No,No Change,5,Unsatisfied,5,None,Average,Africa
EMP0004,51,Male,Project Manager,Healthcare,20,Onsite,50,12,5,High,Depression,Yes,Increase,1,Satisfied,2,Daily,Good,Oceania
EMP0005,44,Non-binary,Sales,Retail,12,Remote,42,6,2,Low,None,Yes,Decrease,3,Neutral,4,Weekly,Poor,Europe
EMP0006,36,Female,Data Scientist,Finance,8,Hybrid,52,10,2,High,Anxiety,No,Decrease,5,Unsatisfied,2,None,Poor,North America
EMP0007,27,Male,Software Engineer,IT,2,Remote,35,3,4,Low,None,Yes,Increase,2,Satisfied,4,Daily,Good,South America
EMP0008,48,Female,Project Manager,Consulting,18,Remote,47,9,3,Medium,Burnout,Yes,No Change,3,Neutral,3,Weekly,Average,Asia
EMP0009,39,Male,Software Engineer,Manufacturing,11,Onsite,44,4,1,Medium,None,No,Decrease,4,Unsatisfied,1,None,Poor,Europe
EMP0010,55,Female,Data Scientist,Education,25,Hybrid,41,7,5,Low,Depression,Yes,Increase,1,Satisfied,5,Daily,Good,Oceania
`

// Inputs are the paths of written raw fixtures.
type Inputs struct {
	Productivity string
	MentalHealth string
}

// WriteInputs writes both raw fixtures into dir.
func WriteInputs(t testing.TB, dir string) Inputs {
	t.Helper()
	return Inputs{
		Productivity: WriteFile(t, dir, "productivity.csv", ProductivityCSV),
		MentalHealth: WriteFile(t, dir, "mental_health.csv", MentalHealthCSV),
	}
}

// WriteFile writes content to dir/name, creating dir, and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
