// Package chart renders heat pump performance figures to image files:
// Carnot COP curves against ambient temperature, and field-measurement
// scatter with a fitted trend line.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rshade/heatpump-cop/internal/thermo"
)

// Curve palette: the first two series keep the colors of the reference
// figure (green for the low-lift target, red for the high-lift one).
var curveColors = []color.RGBA{
	{R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
}

var limitLineColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// CurveChartConfig controls the Carnot curve figure.
type CurveChartConfig struct {
	// Title is the figure heading.
	Title string

	// WidthInch and HeightInch size the output image.
	WidthInch  float64
	HeightInch float64

	// YMin and YMax fix the COP axis.
	YMin float64
	YMax float64

	// ShowLimit draws a vertical reference line at LimitC.
	ShowLimit bool
	LimitC    float64

	// Annotate marks each curve at the grid point nearest AnnotateAtC and
	// labels it with the COP value there.
	Annotate    bool
	AnnotateAtC float64
}

// DefaultCurveChartConfig matches the reference figure: 10x6 inches, COP
// axis fixed to [1, 9], cold-climate limit line at -20 °C, annotations at
// 0 °C ambient.
func DefaultCurveChartConfig() CurveChartConfig {
	return CurveChartConfig{
		Title:       "Theoretical Maximum COP (Carnot Efficiency) vs. Ambient Temperature",
		WidthInch:   10,
		HeightInch:  6,
		YMin:        1,
		YMax:        9,
		ShowLimit:   true,
		LimitC:      thermo.ColdClimateLimitC,
		Annotate:    true,
		AnnotateAtC: 0,
	}
}

// RenderCarnotCurves draws one COP curve per sweep target and writes the
// figure to path. The output format follows the file extension (.png, .svg,
// .pdf). NaN grid points (invalid heating configurations) are skipped; a
// series with no valid points is an error.
func RenderCarnotCurves(sweep *thermo.SweepResult, cfg CurveChartConfig, path string) error {
	if sweep == nil || len(sweep.Series) == 0 {
		return fmt.Errorf("carnot chart needs at least one sweep series")
	}
	if cfg.WidthInch <= 0 || cfg.HeightInch <= 0 {
		return fmt.Errorf("chart size %.1fx%.1f inches is invalid", cfg.WidthInch, cfg.HeightInch)
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "Ambient Temperature (Source, °C)"
	p.Y.Label.Text = "Coefficient of Performance (COP)"
	p.X.Min = sweep.AmbientC[0]
	p.X.Max = sweep.AmbientC[len(sweep.AmbientC)-1]
	p.Y.Min = cfg.YMin
	p.Y.Max = cfg.YMax

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)

	for i, series := range sweep.Series {
		xys := validPoints(sweep.AmbientC, series.COP)
		if len(xys) == 0 {
			return fmt.Errorf("target %.1f °C: no valid grid points to plot", series.TargetC)
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building curve for target %.1f °C: %w", series.TargetC, err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = curveColors[i%len(curveColors)]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Target heating temp: %.0f°C", series.TargetC), line)

		if cfg.Annotate {
			if err := annotateCurve(p, sweep, series, cfg.AnnotateAtC, curveColors[i%len(curveColors)]); err != nil {
				return err
			}
		}
	}

	if cfg.ShowLimit {
		limit, err := plotter.NewLine(plotter.XYs{
			{X: cfg.LimitC, Y: cfg.YMin},
			{X: cfg.LimitC, Y: cfg.YMax},
		})
		if err != nil {
			return fmt.Errorf("building cold-climate limit line: %w", err)
		}
		limit.LineStyle.Color = limitLineColor
		limit.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		p.Add(limit)
		p.Legend.Add(fmt.Sprintf("Cold-climate operation limit (%.0f°C)", cfg.LimitC), limit)
	}

	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(vg.Length(cfg.WidthInch)*vg.Inch, vg.Length(cfg.HeightInch)*vg.Inch, path); err != nil {
		return fmt.Errorf("saving carnot chart: %w", err)
	}
	return nil
}

// annotateCurve marks the grid point nearest annotateAtC with a glyph and a
// "COP ≈ x.x" label, mirroring the reference figure's 0 °C callouts.
func annotateCurve(p *plot.Plot, sweep *thermo.SweepResult, series thermo.TargetSeries, annotateAtC float64, c color.RGBA) error {
	idx := sweep.NearestIndex(annotateAtC)
	cop := series.COP[idx]
	if math.IsNaN(cop) {
		// Nothing to call out: the curve is invalid at the annotation point.
		return nil
	}

	marker, err := plotter.NewScatter(plotter.XYs{{X: sweep.AmbientC[idx], Y: cop}})
	if err != nil {
		return fmt.Errorf("building annotation marker for target %.1f °C: %w", series.TargetC, err)
	}
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	marker.GlyphStyle.Radius = vg.Points(3)
	marker.GlyphStyle.Color = c
	p.Add(marker)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: sweep.AmbientC[idx] + 1.5, Y: cop}},
		Labels: []string{fmt.Sprintf("COP ≈ %.1f at %.0f°C", cop, annotateAtC)},
	})
	if err != nil {
		return fmt.Errorf("building annotation label for target %.1f °C: %w", series.TargetC, err)
	}
	p.Add(labels)
	return nil
}

// validPoints drops NaN samples and pairs the rest into plot coordinates.
func validPoints(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(ys[i]) {
			continue
		}
		xys = append(xys, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return xys
}
