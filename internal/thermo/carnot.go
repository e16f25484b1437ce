package thermo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTemperatureRange reports reservoir temperatures that cannot
	// drive a heating cycle: non-positive absolute temperatures, or a hot
	// side that does not exceed the cold side.
	ErrInvalidTemperatureRange = errors.New("invalid temperature range")

	// ErrInvalidEfficiencyFraction reports a derating fraction outside (0, 1].
	ErrInvalidEfficiencyFraction = errors.New("invalid efficiency fraction")
)

// CarnotCOP calculates the theoretical maximum coefficient of performance for
// a heat pump in heating mode, set by the second law of thermodynamics:
//
//	COP = hotK / (hotK - coldK)
//
// Both temperatures are absolute (Kelvin). The result is dimensionless and
// always exceeds 1 for a valid heating configuration. It falls as the
// temperature lift (hotK - coldK) grows and rises as coldK approaches hotK.
//
// Returns ErrInvalidTemperatureRange when either temperature is non-positive
// or hotK does not exceed coldK.
func CarnotCOP(coldK, hotK float64) (float64, error) {
	if coldK <= 0 || hotK <= 0 {
		return 0, fmt.Errorf("%w: temperatures must be above absolute zero (cold %.2f K, hot %.2f K)",
			ErrInvalidTemperatureRange, coldK, hotK)
	}
	if hotK <= coldK {
		return 0, fmt.Errorf("%w: hot side %.2f K must exceed cold side %.2f K",
			ErrInvalidTemperatureRange, hotK, coldK)
	}
	return hotK / (hotK - coldK), nil
}

// PracticalCOP derates the Carnot limit by the fraction of theoretical
// performance a real system achieves. Installed systems typically reach
// MinPracticalFraction to MaxPracticalFraction of the Carnot COP.
//
// The fraction must lie in (0, 1]; otherwise ErrInvalidEfficiencyFraction is
// returned. Temperature validation errors from CarnotCOP propagate unchanged.
func PracticalCOP(coldK, hotK, fraction float64) (float64, error) {
	if fraction <= 0 || fraction > 1 {
		return 0, fmt.Errorf("%w: fraction %.3f must be in (0, 1]",
			ErrInvalidEfficiencyFraction, fraction)
	}
	cop, err := CarnotCOP(coldK, hotK)
	if err != nil {
		return 0, err
	}
	return cop * fraction, nil
}

// Lift returns the temperature lift hotK - coldK in Kelvin.
func Lift(coldK, hotK float64) float64 {
	return hotK - coldK
}
