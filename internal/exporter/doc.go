// Package exporter writes the results of a run.
//
// CSVWriter persists cleaned tables. Workbook collects the statistics tables
// into one spreadsheet with a sheet per table, and Console prints them as
// text tables.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(logger)
//	err := writer.WriteTable("data/cleaned_productivity.csv", df)
//
//	wb := exporter.NewWorkbook()
//	err = wb.AddTables(productivityStats.Tables()...)
//	err = wb.Save("reports/statistics.xlsx")
package exporter
