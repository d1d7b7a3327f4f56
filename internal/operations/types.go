package operations

// Pipeline step identifiers
const (
	StepIDValidate = "validate"
	StepIDLoad     = "load"
	StepIDClean    = "clean"
	StepIDAnalyze  = "analyze"
	StepIDPersist  = "persist"
	StepIDReport   = "report"
)

// Pipeline step names
const (
	StepNameValidate = "Path Validation"
	StepNameLoad     = "Data Loading"
	StepNameClean    = "Data Cleaning"
	StepNameAnalyze  = "Statistical Analysis"
	StepNamePersist  = "Cleaned Data Export"
	StepNameReport   = "Reporting"
)

// Dataset names used in logs, metrics and the cleaning reports
const (
	DatasetProductivity = "productivity"
	DatasetMentalHealth = "mental_health"
)

// Output kinds counted by the files_written metric
const (
	OutputKindCSV      = "csv"
	OutputKindFigure   = "figure"
	OutputKindWorkbook = "workbook"
)
