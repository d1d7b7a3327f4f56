package charts

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"workpulse/internal/errors"
)

// File names of the rendered charts.
const (
	WorkTypeDistributionFile  = "distribution_of_work_type.jpeg"
	WorkHoursFile             = "work_hours.jpeg"
	AverageScoresFile         = "average_scores.jpeg"
	ScoreBoxPlotsFile         = "score_boxplots.jpeg"
	HeatMapFile               = "heat_map.jpeg"
	SatisfactionIsolationFile = "satisfaction_mentalhealth_barplots_1.jpeg"
	SatisfactionSupportFile   = "satisfaction_mentalhealth_barplots_2.jpeg"
	HoursShareFile            = "work_type_productivity_piechart.jpeg"
)

// DPI is the resolution of every chart.
const DPI = 300

const barWidth = 28

// Renderer writes charts into one directory.
type Renderer struct {
	dir     string
	logger  *slog.Logger
	written []string
}

// NewRenderer returns a renderer writing into dir. A nil logger uses the
// default logger.
func NewRenderer(dir string, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{dir: dir, logger: logger}
}

// Files returns the paths written so far, in order.
func (r *Renderer) Files() []string {
	return append([]string(nil), r.written...)
}

// savePlot renders a single plot.
func (r *Renderer) savePlot(p *plot.Plot, name string, width, height vg.Length) error {
	return r.save(name, width, height, p.Draw)
}

// save renders onto a fresh 300 dpi canvas and writes it as JPEG.
func (r *Renderer) save(name string, width, height vg.Length, render func(draw.Canvas)) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return errors.NewStorageError("failed to create figures directory", err).
			WithContext("dir", r.dir)
	}

	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(DPI))
	render(draw.New(img))

	path := filepath.Join(r.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create chart file", err).WithContext("file", path)
	}
	if _, err := (vgimg.JpegCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return errors.NewStorageError("failed to encode chart", err).WithContext("file", path)
	}
	if err := f.Close(); err != nil {
		return errors.NewStorageError("failed to close chart file", err).WithContext("file", path)
	}

	r.written = append(r.written, path)
	r.logger.Info("Chart written", slog.String("file", path))
	return nil
}

// finite replaces NaN and infinite values, which gonum/plot rejects, by
// zero.
func finite(values []float64) plotter.Values {
	out := make(plotter.Values, len(values))
	for i, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[i] = v
		}
	}
	return out
}

// finiteSample drops NaN and infinite values.
func finiteSample(values []float64) plotter.Values {
	out := make(plotter.Values, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// newBars builds one bar series.
func newBars(values []float64, fill color.Color) (*plotter.BarChart, error) {
	bars, err := plotter.NewBarChart(finite(values), vg.Points(barWidth))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = fill
	return bars, nil
}

// barLabels annotates bar tops, or bar ends when horizontal.
func barLabels(values []float64, format string, horizontal bool) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(values))
	labels := make([]string, len(values))
	for i, v := range values {
		v = finite([]float64{v})[0]
		if horizontal {
			xys[i] = plotter.XY{X: v, Y: float64(i)}
		} else {
			xys[i] = plotter.XY{X: float64(i), Y: v}
		}
		labels[i] = fmt.Sprintf(format, v)
	}
	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
}

func seriesColor(i int) color.Color {
	return plotutil.Color(i)
}
