package exporter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"workpulse/internal/errors"
	"workpulse/internal/stats"
)

// maxSheetName is the longest sheet name a workbook accepts.
const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")",
)

// Workbook collects statistics tables into one spreadsheet, one sheet per
// table.
type Workbook struct {
	file   *excelize.File
	sheets []string
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// Sheets returns the sheet names in insertion order.
func (w *Workbook) Sheets() []string {
	return append([]string(nil), w.sheets...)
}

// AddTables adds one sheet per table.
func (w *Workbook) AddTables(tables ...stats.Table) error {
	for _, t := range tables {
		if err := w.AddTable(t); err != nil {
			return err
		}
	}
	return nil
}

// AddTable writes t to a new sheet named after it. The header row holds the
// index label then the column labels; missing values are left blank.
func (w *Workbook) AddTable(t stats.Table) error {
	sheet := w.uniqueName(t.Name)

	var err error
	if len(w.sheets) == 0 {
		err = w.file.SetSheetName(w.file.GetSheetName(0), sheet)
	} else {
		_, err = w.file.NewSheet(sheet)
	}
	if err != nil {
		return errors.NewStorageError("failed to create sheet", err).WithContext("sheet", sheet)
	}
	w.sheets = append(w.sheets, sheet)

	header := make([]interface{}, 0, len(t.Columns)+1)
	header = append(header, t.Index)
	for _, c := range t.Columns {
		header = append(header, c)
	}
	if err := w.file.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.NewStorageError("failed to write header", err).WithContext("sheet", sheet)
	}

	for i, label := range t.Rows {
		row := make([]interface{}, 0, len(t.Columns)+1)
		row = append(row, label)
		for _, v := range t.Values[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				row = append(row, nil)
				continue
			}
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError("failed to address row", err).WithContext("sheet", sheet)
		}
		if err := w.file.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.NewStorageError("failed to write row", err).WithContext("sheet", sheet)
		}
	}
	return nil
}

// Save writes the workbook to path, creating its directory.
func (w *Workbook) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory", err).WithContext("file", path)
	}
	if err := w.file.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err).WithContext("file", path)
	}
	return nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// uniqueName makes name a valid sheet name not used yet.
func (w *Workbook) uniqueName(name string) string {
	base := sheetNameReplacer.Replace(name)
	if base == "" {
		base = "table"
	}
	base = truncate(base, maxSheetName)

	candidate := base
	for n := 2; w.hasSheet(candidate); n++ {
		suffix := fmt.Sprintf("~%d", n)
		candidate = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	return candidate
}

func (w *Workbook) hasSheet(name string) bool {
	for _, s := range w.sheets {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
