// Package fielddata provides embedded field-measurement datasets of seasonal
// heat pump performance: average delivered COP keyed by average outside
// temperature, as reported by monitoring campaigns of installed systems.
package fielddata

// Point is a single aggregated field measurement.
type Point struct {
	// TemperatureC is the average outside temperature for the bucket, in °C.
	TemperatureC float64 `json:"temperature_c"`

	// MeanCOP is the average delivered coefficient of performance observed
	// at that outside temperature.
	MeanCOP float64 `json:"cop_avg"`
}

// Dataset is a named series of field measurements with provenance metadata.
type Dataset struct {
	// Name identifies the dataset for lookups (e.g. "field-trend").
	Name string `json:"name"`

	// Description says what was measured and how it was aggregated.
	Description string `json:"description"`

	// Source records where the numbers came from.
	Source string `json:"source"`

	// TemperatureUnit is always "celsius" for v1 data files.
	TemperatureUnit string `json:"temperature_unit"`

	// Points holds the measurements ordered by ascending temperature.
	Points []Point `json:"points"`
}

// Temperatures returns the temperature column in dataset order.
func (d Dataset) Temperatures() []float64 {
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.TemperatureC
	}
	return out
}

// MeanCOPs returns the COP column in dataset order.
func (d Dataset) MeanCOPs() []float64 {
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.MeanCOP
	}
	return out
}

// TemperatureRange returns the lowest and highest bucket temperatures.
func (d Dataset) TemperatureRange() (minC, maxC float64) {
	if len(d.Points) == 0 {
		return 0, 0
	}
	return d.Points[0].TemperatureC, d.Points[len(d.Points)-1].TemperatureC
}
