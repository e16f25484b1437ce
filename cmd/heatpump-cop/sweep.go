package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rshade/heatpump-cop/internal/thermo"
)

var (
	sweepFromC      float64
	sweepToC        float64
	sweepPoints     int
	sweepTargetsC   []float64
	sweepEfficiency float64
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the Carnot COP across an ambient temperature range",
	Long: `Evaluates the Carnot COP on an evenly spaced ambient temperature grid,
one series per target temperature. Grid points where the target does not
exceed the ambient have no defined COP and print as "-".`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().Float64Var(&sweepFromC, "from", thermo.DefaultSweepMinC,
		"Coldest ambient temperature in °C")
	sweepCmd.Flags().Float64Var(&sweepToC, "to", thermo.DefaultSweepMaxC,
		"Warmest ambient temperature in °C")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", thermo.DefaultSweepPoints,
		"Number of grid points, endpoints included")
	sweepCmd.Flags().Float64SliceVar(&sweepTargetsC, "targets", nil,
		"Target heating temperatures in °C (default from config: 35,65)")
	sweepCmd.Flags().Float64Var(&sweepEfficiency, "efficiency", 0,
		"Derate every COP by this practical fraction in (0, 1]")

	rootCmd.AddCommand(sweepCmd)
}

type sweepSeriesResult struct {
	TargetC float64    `json:"target_c"`
	COP     []*float64 `json:"cop"`
}

type sweepResult struct {
	FromC      float64             `json:"from_celsius"`
	ToC        float64             `json:"to_celsius"`
	Points     int                 `json:"points"`
	Efficiency float64             `json:"efficiency,omitempty"`
	AmbientC   []float64           `json:"ambient_c"`
	Series     []sweepSeriesResult `json:"series"`
}

func runSweep(cmd *cobra.Command, args []string) error {
	sc := cfg.sweepConfig()
	fl := cmd.Flags()
	if fl.Changed("from") {
		sc.MinAmbientC = sweepFromC
	}
	if fl.Changed("to") {
		sc.MaxAmbientC = sweepToC
	}
	if fl.Changed("points") {
		sc.Points = sweepPoints
	}
	if fl.Changed("targets") {
		sc.TargetsC = sweepTargetsC
	}

	res, err := thermo.Sweep(sc)
	if err != nil {
		return err
	}

	fraction := effectiveEfficiency(cmd, sweepEfficiency)
	if fraction < 0 || fraction > 1 {
		return fmt.Errorf("%w: %.3f must be in (0, 1]", thermo.ErrInvalidEfficiencyFraction, fraction)
	}

	logger.Debug().
		Float64("from_c", sc.MinAmbientC).
		Float64("to_c", sc.MaxAmbientC).
		Int("points", sc.Points).
		Floats64("targets_c", sc.TargetsC).
		Msg("swept ambient grid")

	if jsonOut {
		out := sweepResult{
			FromC:      sc.MinAmbientC,
			ToC:        sc.MaxAmbientC,
			Points:     sc.Points,
			Efficiency: fraction,
			AmbientC:   res.AmbientC,
		}
		for _, series := range res.Series {
			out.Series = append(out.Series, sweepSeriesResult{
				TargetC: series.TargetC,
				COP:     jsonCOPs(derate(series.COP, fraction)),
			})
		}
		return encodeJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%10s", "ambient_c")
	for _, series := range res.Series {
		fmt.Fprintf(w, "  %10s", fmt.Sprintf("cop@%g°C", series.TargetC))
	}
	fmt.Fprintln(w)
	for i, ambient := range res.AmbientC {
		fmt.Fprintf(w, "%10.2f", ambient)
		for _, series := range res.Series {
			cop := series.COP[i]
			if fraction > 0 {
				cop *= fraction
			}
			if math.IsNaN(cop) {
				fmt.Fprintf(w, "  %10s", "-")
			} else {
				fmt.Fprintf(w, "  %10.2f", cop)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

// derate scales a COP series by the practical fraction; 0 leaves it at the
// Carnot limit. NaN points stay NaN.
func derate(values []float64, fraction float64) []float64 {
	if fraction <= 0 {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * fraction
	}
	return out
}
