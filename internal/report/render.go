package report

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/rshade/heatpump-cop/internal/thermo"
)

// Render formats the summary for a terminal, one block per ambient
// checkpoint.
func (s *Summary) Render() string {
	var b strings.Builder

	b.WriteString("--- Carnot COP Summary ---\n")
	b.WriteString("Targets: ")
	for i, t := range uniqueTargets(s.Rows) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s°C (%.2f K)", formatTemp(t), thermo.CelsiusToKelvin(t))
	}
	b.WriteString("\n")
	if s.Fraction > 0 {
		fmt.Fprintf(&b, "Efficiency fraction: %.2f\n", s.Fraction)
	}

	var lastAmbient float64
	first := true
	for _, row := range s.Rows {
		if first || row.AmbientC != lastAmbient {
			fmt.Fprintf(&b, "\nAmbient %s°C:\n", formatTemp(row.AmbientC))
			lastAmbient = row.AmbientC
			first = false
		}
		b.WriteString(renderRow(row, s.Fraction))
	}
	return b.String()
}

func renderRow(row Row, fraction float64) string {
	if !row.Valid {
		return fmt.Sprintf("  COP @ %s°C = invalid (target does not exceed ambient)\n", formatTemp(row.TargetC))
	}
	if fraction > 0 {
		return fmt.Sprintf("  COP @ %s°C = %.2f (practical %.2f at fraction %.2f)\n",
			formatTemp(row.TargetC), row.CarnotCOP, row.PracticalCOP, fraction)
	}
	return fmt.Sprintf("  COP @ %s°C = %.2f (practical %.2f to %.2f)\n",
		formatTemp(row.TargetC), row.CarnotCOP, row.PracticalLowCOP, row.PracticalHighCOP)
}

// EncodeJSON marshals the summary with indentation for log capture and
// downstream tooling.
func (s *Summary) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding summary: %w", err)
	}
	return data, nil
}

// formatTemp renders a temperature without trailing zeros, so whole
// degrees read as "35" rather than "35.000000".
func formatTemp(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

// uniqueTargets returns the distinct target temperatures in first-seen
// order.
func uniqueTargets(rows []Row) []float64 {
	seen := make(map[float64]bool, 2)
	var targets []float64
	for _, row := range rows {
		if !seen[row.TargetC] {
			seen[row.TargetC] = true
			targets = append(targets, row.TargetC)
		}
	}
	return targets
}
