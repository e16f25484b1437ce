package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/heatpump-cop/internal/fielddata"
	"github.com/rshade/heatpump-cop/internal/trend"
)

var (
	trendDataset string
	trendDegree  int
	trendScatter bool
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Fit a polynomial trend to a field dataset",
	Long: `Fits a least-squares polynomial to the COP observations of an embedded
field dataset and prints the coefficients with the fitted values at the
dataset's temperature knots. With --scatter, also generates the synthetic
hourly observations around the trend and prints their summary statistics.`,
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&trendDataset, "dataset", "",
		"Field dataset name (default from config: field-trend)")
	trendCmd.Flags().IntVar(&trendDegree, "degree", 3,
		"Polynomial degree of the fitted trend")
	trendCmd.Flags().BoolVar(&trendScatter, "scatter", false,
		"Also generate synthetic observations and print their statistics")

	rootCmd.AddCommand(trendCmd)
}

type trendScatterResult struct {
	Points  int     `json:"points"`
	MeanCOP float64 `json:"mean_cop"`
	StdDev  float64 `json:"stddev_cop"`
	MinCOP  float64 `json:"min_cop"`
	MaxCOP  float64 `json:"max_cop"`
}

type trendKnot struct {
	TemperatureC float64 `json:"temperature_c"`
	Observed     float64 `json:"observed_cop"`
	Fitted       float64 `json:"fitted_cop"`
}

type trendResult struct {
	Dataset      string              `json:"dataset"`
	Degree       int                 `json:"degree"`
	Coefficients []float64           `json:"coefficients"`
	Knots        []trendKnot         `json:"knots"`
	Scatter      *trendScatterResult `json:"scatter,omitempty"`
}

func runTrend(cmd *cobra.Command, args []string) error {
	client, err := fielddata.NewClient(logger)
	if err != nil {
		return err
	}

	name := cfg.Dataset
	if cmd.Flags().Changed("dataset") {
		name = trendDataset
	}
	ds, ok := client.Dataset(name)
	if !ok {
		return fmt.Errorf("unknown dataset %q (available: %s)",
			name, strings.Join(client.Names(), ", "))
	}

	poly, err := trend.Fit(ds.Temperatures(), ds.MeanCOPs(), trendDegree)
	if err != nil {
		return fmt.Errorf("fitting %s: %w", ds.Name, err)
	}

	res := trendResult{
		Dataset:      ds.Name,
		Degree:       poly.Degree(),
		Coefficients: poly.Coeffs,
	}
	for _, pt := range ds.Points {
		res.Knots = append(res.Knots, trendKnot{
			TemperatureC: pt.TemperatureC,
			Observed:     pt.MeanCOP,
			Fitted:       poly.Eval(pt.TemperatureC),
		})
	}

	var scatter *trend.Scatter
	if trendScatter {
		sCfg := trend.DefaultScatterConfig()
		sCfg.MinTempC, sCfg.MaxTempC = ds.TemperatureRange()
		scatter, err = trend.GenerateScatter(poly, sCfg)
		if err != nil {
			return fmt.Errorf("generating scatter for %s: %w", ds.Name, err)
		}
		sum := scatter.Summarize()
		res.Scatter = &trendScatterResult{
			Points:  sum.Points,
			MeanCOP: sum.MeanCOP,
			StdDev:  sum.StdDev,
			MinCOP:  sum.MinCOP,
			MaxCOP:  sum.MaxCOP,
		}
	}

	logger.Debug().
		Str("dataset", res.Dataset).
		Int("degree", res.Degree).
		Msg("fitted field trend")

	if jsonOut {
		return encodeJSON(cmd, res)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Dataset: %s (%d points)\n", ds.Name, len(ds.Points))
	if ds.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", ds.Description)
	}
	fmt.Fprintf(w, "Trend: COP(t) = %s\n\n", poly)
	fmt.Fprintf(w, "%8s  %8s  %8s\n", "temp_c", "observed", "fitted")
	for _, knot := range res.Knots {
		fmt.Fprintf(w, "%8.1f  %8.2f  %8.2f\n", knot.TemperatureC, knot.Observed, knot.Fitted)
	}
	if res.Scatter != nil {
		fmt.Fprintf(w, "\nSynthetic observations: %d points, COP mean %.2f, stddev %.2f, range %.2f to %.2f\n",
			res.Scatter.Points, res.Scatter.MeanCOP, res.Scatter.StdDev,
			res.Scatter.MinCOP, res.Scatter.MaxCOP)
	}
	return nil
}
