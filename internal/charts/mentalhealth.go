package charts

import (
	"image/color"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"workpulse/internal/cleaning"
	"workpulse/internal/stats"
)

var (
	isolationColors = []color.Color{
		color.RGBA{R: 0x4C, G: 0x73, B: 0xA8, A: 0xFF},
		color.RGBA{R: 0xA9, G: 0xCB, B: 0xA7, A: 0xFF},
		color.RGBA{R: 0xF4, G: 0xA6, B: 0xC4, A: 0xFF},
	}
	supportColors = []color.Color{
		color.RGBA{R: 0x6B, G: 0x9A, B: 0xC4, A: 0xFF},
		color.RGBA{R: 0x77, G: 0xB7, B: 0xB1, A: 0xFF},
		color.RGBA{R: 0xD6, G: 0xA6, B: 0x8C, A: 0xFF},
	}
	purples = []color.Color{
		color.RGBA{R: 0x9E, G: 0x9A, B: 0xC8, A: 0xFF},
		color.RGBA{R: 0x75, G: 0x6B, B: 0xB1, A: 0xFF},
		color.RGBA{R: 0x54, G: 0x27, B: 0x8F, A: 0xFF},
	}
)

// SatisfactionIsolation charts the mean social isolation rating per level
// of satisfaction with remote work.
func (r *Renderer) SatisfactionIsolation(df dataframe.DataFrame) (stats.Table, error) {
	means, err := stats.GroupMeans(df, cleaning.ColSatisfactionRemote, nil, cleaning.ColSocialIsolation)
	if err != nil {
		return stats.Table{}, err
	}
	err = r.horizontalBars(means, cleaning.ColSocialIsolation, isolationColors,
		"Social Isolation Rating by Satisfaction Level with Remote Work",
		"Average Social Isolation Rating", SatisfactionIsolationFile)
	return means, err
}

// SatisfactionSupport charts the mean company support for remote work per
// level of satisfaction with remote work.
func (r *Renderer) SatisfactionSupport(df dataframe.DataFrame) (stats.Table, error) {
	means, err := stats.GroupMeans(df, cleaning.ColSatisfactionRemote, nil, cleaning.ColCompanySupport)
	if err != nil {
		return stats.Table{}, err
	}
	err = r.horizontalBars(means, cleaning.ColCompanySupport, supportColors,
		"Company Support for Remote Work by Satisfaction Level",
		"Average Company Support for Remote Work", SatisfactionSupportFile)
	return means, err
}

// HoursByWorkType charts each work type's share of the total weekly hours
// worked. The returned table holds the total and the percentage share.
func (r *Renderer) HoursByWorkType(df dataframe.DataFrame) (stats.Table, error) {
	sums, err := stats.GroupSums(df, cleaning.ColWorkType, cleaning.WorkTypeOrder, cleaning.ColHoursWorkedPerWeek)
	if err != nil {
		return stats.Table{}, err
	}

	share := stats.NewTable(sums.Name, sums.Index, sums.Rows, []string{cleaning.ColHoursWorkedPerWeek, "percent"})
	hours := sums.Column(cleaning.ColHoursWorkedPerWeek)
	total := floats.Sum(hours)
	for i, v := range hours {
		share.Values[i][0] = v
		share.Values[i][1] = v / total * 100
	}

	p := plot.New()
	p.Title.Text = "Proportion of Total Hours Worked by Work Type"
	p.Y.Label.Text = "Share of hours worked (%)"

	percent := share.Column("percent")
	for i := range share.Rows {
		values := make([]float64, len(percent))
		values[i] = percent[i]
		bars, err := newBars(values, purples[i%len(purples)])
		if err != nil {
			return stats.Table{}, err
		}
		p.Add(bars)
	}
	if len(percent) > 0 {
		labels, err := barLabels(percent, "%.1f%%", false)
		if err != nil {
			return stats.Table{}, err
		}
		p.Add(labels)
	}
	p.NominalX(share.Rows...)
	p.Y.Min = 0

	return share, r.savePlot(p, HoursShareFile, 8*vg.Inch, 8*vg.Inch)
}

// horizontalBars draws one bar per row of t for column col.
func (r *Renderer) horizontalBars(t stats.Table, col string, palette []color.Color, title, xLabel, file string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Satisfaction with Remote Work"

	values := t.Column(col)
	for i := range t.Rows {
		row := make([]float64, len(values))
		row[i] = values[i]
		bars, err := newBars(row, palette[i%len(palette)])
		if err != nil {
			return err
		}
		bars.Horizontal = true
		p.Add(bars)
	}
	if len(values) > 0 {
		labels, err := barLabels(values, "%.2f", true)
		if err != nil {
			return err
		}
		p.Add(labels)
	}
	p.NominalY(t.Rows...)
	p.X.Min = 0

	return r.savePlot(p, file, 8*vg.Inch, 6*vg.Inch)
}
