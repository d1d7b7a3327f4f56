package exporter

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"workpulse/internal/stats"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Console prints statistics tables as bordered text tables.
type Console struct {
	w io.Writer
}

// NewConsole returns a console printing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// PrintTables prints each table under its name, separated by blank lines.
func (c *Console) PrintTables(tables ...stats.Table) error {
	for _, t := range tables {
		if err := c.PrintTable(t); err != nil {
			return err
		}
	}
	return nil
}

// PrintTable prints one table under its name.
func (c *Console) PrintTable(t stats.Table) error {
	_, err := fmt.Fprintf(c.w, "%s\n%s\n\n", titleStyle.Render(t.Name), Render(t))
	return err
}

// Render formats t as a bordered table. Values are shown with up to four
// decimals; missing values as NaN.
func Render(t stats.Table) string {
	headers := append([]string{t.Index}, t.Columns...)
	rows := make([][]string, len(t.Rows))
	for i, label := range t.Rows {
		row := make([]string, 0, len(t.Columns)+1)
		row = append(row, label)
		for _, v := range t.Values[i] {
			row = append(row, formatCell(v))
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func formatCell(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
