package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rshade/heatpump-cop/internal/trend"
)

var (
	scatterColor = color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0x66}
	trendColor   = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
)

// ScatterChartConfig controls the field-data figure.
type ScatterChartConfig struct {
	// Title is the figure heading.
	Title string

	// WidthInch and HeightInch size the output image.
	WidthInch  float64
	HeightInch float64

	// YMin and YMax fix the COP axis.
	YMin float64
	YMax float64

	// TrendSamples is how finely the fitted trend line is sampled across
	// the observed temperature range.
	TrendSamples int
}

// DefaultScatterChartConfig matches the reference figure: 10x6 inches, COP
// axis fixed to [0.8, 6.0], trend sampled at 300 points.
func DefaultScatterChartConfig() ScatterChartConfig {
	return ScatterChartConfig{
		Title:        "Average Coefficient of Performance vs. Outside Temperature (Simulated)",
		WidthInch:    10,
		HeightInch:   6,
		YMin:         0.8,
		YMax:         6.0,
		TrendSamples: 300,
	}
}

// RenderFieldScatter draws synthetic hourly observations as a translucent
// scatter with the fitted trend dashed over it, and writes the figure to
// path. The temperature axis pads the observed range by half a degree.
func RenderFieldScatter(s *trend.Scatter, p trend.Polynomial, cfg ScatterChartConfig, path string) error {
	if s == nil || len(s.TempC) == 0 {
		return fmt.Errorf("field chart needs at least one observation")
	}
	if len(p.Coeffs) == 0 {
		return fmt.Errorf("field chart needs a fitted trend polynomial")
	}
	if cfg.WidthInch <= 0 || cfg.HeightInch <= 0 {
		return fmt.Errorf("chart size %.1fx%.1f inches is invalid", cfg.WidthInch, cfg.HeightInch)
	}
	if cfg.TrendSamples < 2 {
		return fmt.Errorf("trend line needs at least 2 samples, got %d", cfg.TrendSamples)
	}

	minTemp := floats.Min(s.TempC)
	maxTemp := floats.Max(s.TempC)

	pl := plot.New()
	pl.Title.Text = cfg.Title
	pl.X.Label.Text = "Average outside temperature (°C)"
	pl.Y.Label.Text = "Average Coefficient of Performance"
	pl.X.Min = minTemp - 0.5
	pl.X.Max = maxTemp + 0.5
	pl.Y.Min = cfg.YMin
	pl.Y.Max = cfg.YMax

	// Horizontal grid lines only, as in the reference figure.
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	obs := make(plotter.XYs, len(s.TempC))
	for i := range s.TempC {
		obs[i] = plotter.XY{X: s.TempC[i], Y: s.COP[i]}
	}
	scatter, err := plotter.NewScatter(obs)
	if err != nil {
		return fmt.Errorf("building observation scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = scatterColor
	pl.Add(scatter)
	pl.Legend.Add("Hourly data points", scatter)

	smooth := floats.Span(make([]float64, cfg.TrendSamples), minTemp, maxTemp)
	fit := make(plotter.XYs, len(smooth))
	for i, t := range smooth {
		fit[i] = plotter.XY{X: t, Y: p.Eval(t)}
	}
	trendLine, err := plotter.NewLine(fit)
	if err != nil {
		return fmt.Errorf("building trend line: %w", err)
	}
	trendLine.LineStyle.Width = vg.Points(2)
	trendLine.LineStyle.Color = trendColor
	trendLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	pl.Add(trendLine)
	pl.Legend.Add("Average trend line", trendLine)

	pl.Legend.Top = true
	pl.Legend.Left = true

	if err := pl.Save(vg.Length(cfg.WidthInch)*vg.Inch, vg.Length(cfg.HeightInch)*vg.Inch, path); err != nil {
		return fmt.Errorf("saving field chart: %w", err)
	}
	return nil
}
