// Package report builds checkpoint summaries of heat pump performance:
// Carnot COP at selected ambient/target pairs with the practical band, as
// text for terminals and JSON for machines.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rshade/heatpump-cop/internal/thermo"
)

// defaultGenerator identifies reports produced without an explicit
// generator string.
const defaultGenerator = "heatpump-cop"

// SummaryConfig selects the checkpoints a summary covers.
type SummaryConfig struct {
	// AmbientsC are the cold-side checkpoints, in °C.
	AmbientsC []float64

	// TargetsC are the hot-side targets, in °C.
	TargetsC []float64

	// Fraction optionally derates every row by a single practical
	// efficiency fraction in (0, 1]. Zero leaves rows with the standard
	// 0.40-0.60 practical band instead.
	Fraction float64

	// Generator names the producing tool in the report envelope.
	Generator string
}

// DefaultSummaryConfig covers the standard checkpoints: extreme cold,
// freezing point, and mild ambient against both default targets.
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		AmbientsC: []float64{-35, 0, 15},
		TargetsC:  []float64{thermo.FloorHeatingTargetC, thermo.RadiatorTargetC},
	}
}

// Row is one ambient/target checkpoint.
type Row struct {
	AmbientC float64 `json:"ambient_c"`
	TargetC  float64 `json:"target_c"`

	// Valid is false when the target does not exceed the ambient; such
	// rows carry no COP values.
	Valid bool `json:"valid"`

	CarnotCOP float64 `json:"carnot_cop,omitempty"`

	// PracticalLowCOP and PracticalHighCOP bound the COP real systems
	// achieve (0.40 and 0.60 of Carnot).
	PracticalLowCOP  float64 `json:"practical_low_cop,omitempty"`
	PracticalHighCOP float64 `json:"practical_high_cop,omitempty"`

	// PracticalCOP is set when the summary was built with a fixed
	// efficiency fraction.
	PracticalCOP float64 `json:"practical_cop,omitempty"`
}

// Summary is a full report with provenance envelope.
type Summary struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Generator   string    `json:"generator"`
	Fraction    float64   `json:"efficiency_fraction,omitempty"`
	Rows        []Row     `json:"rows"`
}

// BuildSummary evaluates every ambient/target pair. Pairs where the target
// does not exceed the ambient become invalid rows rather than failing the
// whole report; genuinely bad configuration (no checkpoints, fraction out
// of range) is an error.
func BuildSummary(cfg SummaryConfig) (*Summary, error) {
	if len(cfg.AmbientsC) == 0 {
		return nil, fmt.Errorf("summary needs at least one ambient checkpoint")
	}
	if len(cfg.TargetsC) == 0 {
		return nil, fmt.Errorf("summary needs at least one target temperature")
	}
	if cfg.Fraction < 0 || cfg.Fraction > 1 {
		return nil, fmt.Errorf("%w: fraction %.3f must be in (0, 1]",
			thermo.ErrInvalidEfficiencyFraction, cfg.Fraction)
	}

	generator := cfg.Generator
	if generator == "" {
		generator = defaultGenerator
	}

	s := &Summary{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Generator:   generator,
		Fraction:    cfg.Fraction,
		Rows:        make([]Row, 0, len(cfg.AmbientsC)*len(cfg.TargetsC)),
	}

	for _, ambientC := range cfg.AmbientsC {
		for _, targetC := range cfg.TargetsC {
			row := Row{AmbientC: ambientC, TargetC: targetC}

			cop, err := thermo.CarnotCOP(thermo.CelsiusToKelvin(ambientC), thermo.CelsiusToKelvin(targetC))
			if err == nil {
				row.Valid = true
				row.CarnotCOP = cop
				row.PracticalLowCOP = cop * thermo.MinPracticalFraction
				row.PracticalHighCOP = cop * thermo.MaxPracticalFraction
				if cfg.Fraction > 0 {
					row.PracticalCOP = cop * cfg.Fraction
				}
			}

			s.Rows = append(s.Rows, row)
		}
	}
	return s, nil
}
