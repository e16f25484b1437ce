package main

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// encodeJSON writes v to the command's stdout, indented.
func encodeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// jsonCOPs converts a COP series for JSON output: NaN grid points (invalid
// heating configurations) become null, which neither encoder accepts as a
// bare float.
func jsonCOPs(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		v := v
		out[i] = &v
	}
	return out
}

// effectiveEfficiency resolves the practical fraction: the command's
// --efficiency flag when given, otherwise the config file value. Zero
// means no derating.
func effectiveEfficiency(cmd *cobra.Command, flagValue float64) float64 {
	if cmd.Flags().Changed("efficiency") {
		return flagValue
	}
	return cfg.Efficiency
}
