package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/heatpump-cop/internal/thermo"
)

var (
	calcColdC      float64
	calcHotC       float64
	calcEfficiency float64
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the COP for a single temperature pair",
	Long: `Computes the Carnot COP for one cold/hot temperature pair, with the
practical 40-60% band real systems achieve. Given --efficiency, it also
prints the derated practical COP at that fraction.

Example:
  heatpump-cop calc --cold-celsius -35 --hot-celsius 35  # prints 4.40`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().Float64Var(&calcColdC, "cold-celsius", 0,
		"Cold-side (ambient) temperature in °C (required)")
	calcCmd.Flags().Float64Var(&calcHotC, "hot-celsius", 0,
		"Hot-side (target) temperature in °C (required)")
	calcCmd.Flags().Float64Var(&calcEfficiency, "efficiency", 0,
		"Practical efficiency fraction in (0, 1]; 0 reports the Carnot limit only")
	_ = calcCmd.MarkFlagRequired("cold-celsius")
	_ = calcCmd.MarkFlagRequired("hot-celsius")

	rootCmd.AddCommand(calcCmd)
}

type calcResult struct {
	ColdC            float64 `json:"cold_celsius"`
	HotC             float64 `json:"hot_celsius"`
	LiftK            float64 `json:"lift_k"`
	CarnotCOP        float64 `json:"carnot_cop"`
	PracticalLowCOP  float64 `json:"practical_low_cop"`
	PracticalHighCOP float64 `json:"practical_high_cop"`
	Efficiency       float64 `json:"efficiency,omitempty"`
	PracticalCOP     float64 `json:"practical_cop,omitempty"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	coldK := thermo.CelsiusToKelvin(calcColdC)
	hotK := thermo.CelsiusToKelvin(calcHotC)

	carnot, err := thermo.CarnotCOP(coldK, hotK)
	if err != nil {
		return fmt.Errorf("cold %g°C against hot %g°C: %w", calcColdC, calcHotC, err)
	}

	res := calcResult{
		ColdC:            calcColdC,
		HotC:             calcHotC,
		LiftK:            thermo.Lift(coldK, hotK),
		CarnotCOP:        carnot,
		PracticalLowCOP:  carnot * thermo.MinPracticalFraction,
		PracticalHighCOP: carnot * thermo.MaxPracticalFraction,
	}

	if fraction := effectiveEfficiency(cmd, calcEfficiency); fraction > 0 {
		practical, err := thermo.PracticalCOP(coldK, hotK, fraction)
		if err != nil {
			return err
		}
		res.Efficiency = fraction
		res.PracticalCOP = practical
	}

	logger.Debug().
		Float64("cold_c", res.ColdC).
		Float64("hot_c", res.HotC).
		Float64("carnot_cop", res.CarnotCOP).
		Msg("computed single-point COP")

	if jsonOut {
		return encodeJSON(cmd, res)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Carnot COP: %.2f (cold %g°C, hot %g°C, lift %.2f K)\n",
		res.CarnotCOP, res.ColdC, res.HotC, res.LiftK)
	if res.Efficiency > 0 {
		fmt.Fprintf(w, "Practical COP: %.2f (fraction %.2f)\n", res.PracticalCOP, res.Efficiency)
	} else {
		fmt.Fprintf(w, "Practical band (40-60%%): %.2f to %.2f\n",
			res.PracticalLowCOP, res.PracticalHighCOP)
	}
	return nil
}
