package thermo

// CelsiusToKelvin converts a Celsius temperature to Kelvin.
func CelsiusToKelvin(c float64) float64 {
	return c + KelvinOffset
}

// KelvinToCelsius converts a Kelvin temperature to Celsius.
func KelvinToCelsius(k float64) float64 {
	return k - KelvinOffset
}
