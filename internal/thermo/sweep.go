package thermo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SweepConfig describes an ambient-temperature sweep for one or more
// condenser targets. Temperatures are in Celsius.
type SweepConfig struct {
	// MinAmbientC and MaxAmbientC bound the cold-side (ambient) axis.
	MinAmbientC float64
	MaxAmbientC float64

	// Points is the number of samples across the ambient range, endpoints
	// included. Must be at least 2.
	Points int

	// TargetsC lists the hot-side targets to sweep, one series each.
	TargetsC []float64
}

// DefaultSweepConfig returns the standard performance-curve sweep:
// -35..15 °C ambient at 100 points against the floor-heating and
// radiator targets.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		MinAmbientC: DefaultSweepMinC,
		MaxAmbientC: DefaultSweepMaxC,
		Points:      DefaultSweepPoints,
		TargetsC:    []float64{FloorHeatingTargetC, RadiatorTargetC},
	}
}

// Validate checks the sweep configuration.
func (c SweepConfig) Validate() error {
	if c.Points < 2 {
		return fmt.Errorf("sweep needs at least 2 points, got %d", c.Points)
	}
	if c.MinAmbientC >= c.MaxAmbientC {
		return fmt.Errorf("ambient range [%.2f, %.2f] °C is empty", c.MinAmbientC, c.MaxAmbientC)
	}
	if CelsiusToKelvin(c.MinAmbientC) <= 0 {
		return fmt.Errorf("%w: ambient %.2f °C is below absolute zero",
			ErrInvalidTemperatureRange, c.MinAmbientC)
	}
	if len(c.TargetsC) == 0 {
		return fmt.Errorf("sweep needs at least one target temperature")
	}
	for _, t := range c.TargetsC {
		if CelsiusToKelvin(t) <= 0 {
			return fmt.Errorf("%w: target %.2f °C is below absolute zero",
				ErrInvalidTemperatureRange, t)
		}
	}
	return nil
}

// TargetSeries is the COP curve for a single hot-side target across the
// ambient axis. Grid points where the target does not exceed the ambient
// temperature carry NaN rather than a value.
type TargetSeries struct {
	TargetC float64
	COP     []float64
}

// SweepResult pairs the ambient axis with one COP series per target.
type SweepResult struct {
	AmbientC []float64
	Series   []TargetSeries
}

// Sweep computes Carnot COP curves over an evenly spaced ambient grid.
func Sweep(cfg SweepConfig) (*SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ambient := floats.Span(make([]float64, cfg.Points), cfg.MinAmbientC, cfg.MaxAmbientC)

	result := &SweepResult{
		AmbientC: ambient,
		Series:   make([]TargetSeries, 0, len(cfg.TargetsC)),
	}
	for _, targetC := range cfg.TargetsC {
		hotK := CelsiusToKelvin(targetC)
		cops := make([]float64, len(ambient))
		for i, ambientC := range ambient {
			cop, err := CarnotCOP(CelsiusToKelvin(ambientC), hotK)
			if err != nil {
				cops[i] = math.NaN()
				continue
			}
			cops[i] = cop
		}
		result.Series = append(result.Series, TargetSeries{TargetC: targetC, COP: cops})
	}
	return result, nil
}

// NearestIndex returns the grid index closest to the given ambient
// temperature. Used to place annotations on rendered curves.
func (r *SweepResult) NearestIndex(ambientC float64) int {
	best := 0
	bestDist := math.Abs(r.AmbientC[0] - ambientC)
	for i, a := range r.AmbientC[1:] {
		if d := math.Abs(a - ambientC); d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best
}

// SeriesFor returns the COP series for the given target temperature.
func (r *SweepResult) SeriesFor(targetC float64) (TargetSeries, bool) {
	for _, s := range r.Series {
		if s.TargetC == targetC {
			return s, true
		}
	}
	return TargetSeries{}, false
}
