// Package thermo provides Carnot-cycle Coefficient of Performance (COP)
// calculations for heat pumps operating in heating mode.
package thermo

const (
	// KelvinOffset converts between Celsius and Kelvin (K = °C + 273.15).
	// Source: SI definition of the Celsius scale.
	KelvinOffset = 273.15

	// MinPracticalFraction is the low end of the efficiency range real heat
	// pump systems achieve relative to the Carnot limit (40%).
	// Source: field studies of installed air-source heat pumps.
	MinPracticalFraction = 0.40

	// MaxPracticalFraction is the high end of the practical efficiency range
	// relative to the Carnot limit (60%).
	MaxPracticalFraction = 0.60

	// ColdClimateLimitC is the ambient temperature below which typical
	// air-source units shut down or fall back to resistive heating.
	ColdClimateLimitC = -20.0

	// FloorHeatingTargetC is the default condenser target for low-temperature
	// distribution (underfloor loops, fan coils).
	FloorHeatingTargetC = 35.0

	// RadiatorTargetC is the default condenser target for domestic hot water
	// and conventional radiators.
	RadiatorTargetC = 65.0

	// DefaultSweepMinC and DefaultSweepMaxC bound the standard ambient
	// temperature sweep for performance curves.
	DefaultSweepMinC = -35.0
	DefaultSweepMaxC = 15.0

	// DefaultSweepPoints is the sample count for a smooth performance curve.
	DefaultSweepPoints = 100
)
