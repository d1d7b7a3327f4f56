package charts

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"workpulse/internal/cleaning"
	"workpulse/internal/dataset"
	"workpulse/internal/stats"
)

// WorkTypeDistribution charts the share of rows per value of col.
func (r *Renderer) WorkTypeDistribution(df dataframe.DataFrame, col string) (stats.Table, error) {
	counts, err := stats.ValueCounts(df, col, cleaning.WorkTypeOrder)
	if err != nil {
		return stats.Table{}, err
	}

	p := plot.New()
	p.Title.Text = "Distribution of Work Type"
	p.Y.Label.Text = "Share of employees (%)"

	percent := counts.Column("percent")
	bars, err := newBars(percent, seriesColor(0))
	if err != nil {
		return stats.Table{}, err
	}
	labels, err := barLabels(percent, "%.1f%%", false)
	if err != nil {
		return stats.Table{}, err
	}
	p.Add(bars, labels)
	p.NominalX(counts.Rows...)
	p.Y.Min = 0

	return counts, r.savePlot(p, WorkTypeDistributionFile, 6*vg.Inch, 6*vg.Inch)
}

// WorkAndOvertimeHours stacks mean overtime on mean weekly work hours per
// work type.
func (r *Renderer) WorkAndOvertimeHours(df dataframe.DataFrame) (stats.Table, error) {
	means, err := stats.GroupMeans(df, cleaning.ColWorkType, cleaning.WorkTypeOrder, stats.HoursColumns...)
	if err != nil {
		return stats.Table{}, err
	}

	p := plot.New()
	p.Title.Text = "Average Work and Overtime Hours by Work Type"
	p.X.Label.Text = "Work Type"
	p.Y.Label.Text = "Average Hours"

	work, err := newBars(means.Column(cleaning.ColWorkHoursPerWeek), color.RGBA{R: 135, G: 206, B: 235, A: 255})
	if err != nil {
		return stats.Table{}, err
	}
	overtime, err := newBars(means.Column(cleaning.ColOvertimeHours), color.RGBA{R: 250, G: 128, B: 114, A: 255})
	if err != nil {
		return stats.Table{}, err
	}
	overtime.StackOn(work)

	p.Add(work, overtime)
	p.Legend.Add("Work Hours", work)
	p.Legend.Add("Overtime Hours", overtime)
	p.Legend.Top = true
	p.NominalX(means.Rows...)

	return means, r.savePlot(p, WorkHoursFile, 10*vg.Inch, 6*vg.Inch)
}

// AverageScores groups the mean of each score by work type, one bar per
// work type within each score.
func (r *Renderer) AverageScores(df dataframe.DataFrame, groupCol string) (stats.Table, error) {
	means, err := stats.GroupMeans(df, groupCol, cleaning.WorkTypeOrder, stats.ScoreColumns...)
	if err != nil {
		return stats.Table{}, err
	}

	p := plot.New()
	p.Title.Text = "Average Scores of Performance, Satisfaction, and Motivation by Work Type"
	p.X.Label.Text = "Score Type"
	p.Y.Label.Text = "Average Score"

	n := len(means.Rows)
	for i, group := range means.Rows {
		bars, err := newBars(means.Row(group), seriesColor(i))
		if err != nil {
			return stats.Table{}, err
		}
		bars.Offset = vg.Points(barWidth) * vg.Length(2*i-(n-1)) / 2
		p.Add(bars)
		p.Legend.Add(group, bars)
	}
	p.Legend.Top = true
	p.NominalX(means.Columns...)
	p.Y.Min = 0

	return means, r.savePlot(p, AverageScoresFile, 10*vg.Inch, 6*vg.Inch)
}

// ScoreDistributions draws a box plot per work type for each score, side by
// side. The returned table has a row per "score/work type" pair with its
// five-number summary.
func (r *Renderer) ScoreDistributions(df dataframe.DataFrame) (stats.Table, error) {
	columns := []string{cleaning.ColSatisfaction, cleaning.ColMotivation, cleaning.ColPerformance}
	titles := []string{
		"Employee Satisfaction Score by Work Type",
		"Motivation Score by Work Type",
		"Performance Score by Work Type",
	}

	groups, err := stats.ValueCounts(df, cleaning.ColWorkType, cleaning.WorkTypeOrder)
	if err != nil {
		return stats.Table{}, err
	}
	labels, err := dataset.Strings(df, cleaning.ColWorkType)
	if err != nil {
		return stats.Table{}, err
	}

	var rows []string
	for _, c := range columns {
		for _, g := range groups.Rows {
			rows = append(rows, c+"/"+g)
		}
	}
	summary := stats.NewTable("score_distributions", "score/work_type", rows,
		[]string{"min", "25%", "50%", "75%", "max"})

	plots := make([]*plot.Plot, len(columns))
	row := 0
	for j, c := range columns {
		values, err := dataset.Numeric(df, c)
		if err != nil {
			return stats.Table{}, err
		}

		p := plot.New()
		p.Title.Text = titles[j]
		p.X.Label.Text = cleaning.ColWorkType
		p.Y.Label.Text = c

		for i, g := range groups.Rows {
			var sample []float64
			for k, l := range labels {
				if l == g {
					sample = append(sample, values[k])
				}
			}
			box := finiteSample(sample)
			s := stats.Summarize(box)
			summary.Values[row] = []float64{s.Min, s.Q25, s.Median, s.Q75, s.Max}
			row++
			if len(box) == 0 {
				continue
			}

			b, err := plotter.NewBoxPlot(vg.Points(barWidth*1.5), float64(i), box)
			if err != nil {
				return stats.Table{}, fmt.Errorf("failed to build box plot: %w", err)
			}
			b.FillColor = seriesColor(i)
			p.Add(b)
		}
		p.NominalX(groups.Rows...)
		plots[j] = p
	}

	tiles := draw.Tiles{Rows: 1, Cols: len(plots), PadX: vg.Millimeter * 4, PadTop: vg.Millimeter * 2}
	render := func(c draw.Canvas) {
		canvases := plot.Align([][]*plot.Plot{plots}, tiles, c)
		for j, p := range plots {
			p.Draw(canvases[0][j])
		}
	}
	return summary, r.save(ScoreBoxPlotsFile, 14*vg.Inch, 6*vg.Inch, render)
}

// CorrelationHeatMap draws the correlation matrix of the numeric columns
// with each coefficient printed in its cell.
func (r *Renderer) CorrelationHeatMap(df dataframe.DataFrame) (stats.Table, error) {
	corr, err := stats.CorrelationMatrix(df)
	if err != nil {
		return stats.Table{}, err
	}

	p := plot.New()
	p.Title.Text = "Correlation Heatmap of Numerical Values"
	if len(corr.Columns) == 0 {
		return corr, r.savePlot(p, HeatMapFile, 12*vg.Inch, 8*vg.Inch)
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)
	hm := plotter.NewHeatMap(matrixGrid{corr}, cmap.Palette(255))
	hm.Min, hm.Max = -1, 1
	p.Add(hm)

	var xys plotter.XYs
	var text []string
	for i := range corr.Rows {
		for j := range corr.Columns {
			v := corr.Values[i][j]
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(i)})
			text = append(text, fmt.Sprintf("%.2f", v))
		}
	}
	if len(xys) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
		if err != nil {
			return stats.Table{}, err
		}
		p.Add(labels)
	}

	p.NominalX(corr.Columns...)
	p.NominalY(corr.Rows...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	return corr, r.savePlot(p, HeatMapFile, 12*vg.Inch, 8*vg.Inch)
}

// matrixGrid exposes a square table as a heat map grid with cell (c, r)
// centred on (c, r).
type matrixGrid struct {
	t stats.Table
}

func (g matrixGrid) Dims() (c, r int)   { return len(g.t.Columns), len(g.t.Rows) }
func (g matrixGrid) Z(c, r int) float64 { return g.t.Values[r][c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }
