package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/heatpump-cop/internal/chart"
	"github.com/rshade/heatpump-cop/internal/fielddata"
	"github.com/rshade/heatpump-cop/internal/thermo"
	"github.com/rshade/heatpump-cop/internal/trend"
)

var (
	chartOut     string
	chartTitle   string
	chartDataset string
	chartDegree  int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render COP charts as image files",
	Long: `Renders COP charts. The output format follows the file extension:
.png, .svg, or .pdf.

  carnot  Carnot COP curves across the ambient sweep, one per target
  field   synthetic field observations with the fitted trend line`,
}

var chartCarnotCmd = &cobra.Command{
	Use:   "carnot",
	Short: "Render Carnot COP curves across the ambient sweep",
	RunE:  runChartCarnot,
}

var chartFieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Render the field-data scatter with its fitted trend",
	RunE:  runChartField,
}

func init() {
	chartCmd.PersistentFlags().StringVar(&chartOut, "out", "",
		"Output image path (required)")
	chartCmd.PersistentFlags().StringVar(&chartTitle, "title", "",
		"Override the chart title")
	_ = chartCmd.MarkPersistentFlagRequired("out")

	chartFieldCmd.Flags().StringVar(&chartDataset, "dataset", "",
		"Field dataset name (default from config: field-trend)")
	chartFieldCmd.Flags().IntVar(&chartDegree, "degree", 3,
		"Polynomial degree of the fitted trend")

	chartCmd.AddCommand(chartCarnotCmd, chartFieldCmd)
	rootCmd.AddCommand(chartCmd)
}

func runChartCarnot(cmd *cobra.Command, args []string) error {
	res, err := thermo.Sweep(cfg.sweepConfig())
	if err != nil {
		return err
	}

	cCfg := chart.DefaultCurveChartConfig()
	cCfg.WidthInch = cfg.Chart.WidthInch
	cCfg.HeightInch = cfg.Chart.HeightInch
	if chartTitle != "" {
		cCfg.Title = chartTitle
	}

	if err := chart.RenderCarnotCurves(res, cCfg, chartOut); err != nil {
		return err
	}

	logger.Info().
		Str("path", chartOut).
		Floats64("targets_c", cfg.TargetsC).
		Msg("rendered carnot curve chart")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", chartOut)
	return nil
}

func runChartField(cmd *cobra.Command, args []string) error {
	client, err := fielddata.NewClient(logger)
	if err != nil {
		return err
	}

	name := cfg.Dataset
	if cmd.Flags().Changed("dataset") {
		name = chartDataset
	}
	ds, ok := client.Dataset(name)
	if !ok {
		return fmt.Errorf("unknown dataset %q (available: %s)",
			name, strings.Join(client.Names(), ", "))
	}

	poly, err := trend.Fit(ds.Temperatures(), ds.MeanCOPs(), chartDegree)
	if err != nil {
		return fmt.Errorf("fitting %s: %w", ds.Name, err)
	}

	sCfg := trend.DefaultScatterConfig()
	sCfg.MinTempC, sCfg.MaxTempC = ds.TemperatureRange()
	scatter, err := trend.GenerateScatter(poly, sCfg)
	if err != nil {
		return fmt.Errorf("generating scatter for %s: %w", ds.Name, err)
	}

	cCfg := chart.DefaultScatterChartConfig()
	cCfg.WidthInch = cfg.Chart.WidthInch
	cCfg.HeightInch = cfg.Chart.HeightInch
	if chartTitle != "" {
		cCfg.Title = chartTitle
	}

	if err := chart.RenderFieldScatter(scatter, poly, cCfg, chartOut); err != nil {
		return err
	}

	logger.Info().
		Str("path", chartOut).
		Str("dataset", ds.Name).
		Int("observations", len(scatter.TempC)).
		Msg("rendered field scatter chart")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", chartOut)
	return nil
}
