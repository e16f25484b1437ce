package trend

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultSeed makes synthetic runs reproducible across invocations.
	DefaultSeed = 42

	// DefaultScatterPoints approximates one winter of hourly observations.
	DefaultScatterPoints = 1200

	// DefaultBaseSigma is the noise floor of observed COP around the trend.
	DefaultBaseSigma = 0.2

	// DefaultSigmaRamp is the extra spread added linearly across the
	// temperature range; field data scatters more at milder temperatures.
	DefaultSigmaRamp = 0.1

	// DefaultFloorCOP clips implausible observations; a running heat pump
	// does not deliver less than half the input work as heat.
	DefaultFloorCOP = 0.5
)

// ScatterConfig controls synthetic observation generation.
type ScatterConfig struct {
	// Seed drives the random source; equal seeds give identical output.
	Seed uint64

	// Points is the number of observations to generate.
	Points int

	// MinTempC and MaxTempC bound the uniform temperature draw.
	MinTempC float64
	MaxTempC float64

	// BaseSigma and SigmaRamp set the noise: sigma at a temperature t is
	// BaseSigma + SigmaRamp * (t - MinTempC) / (MaxTempC - MinTempC).
	BaseSigma float64
	SigmaRamp float64

	// FloorCOP clips generated observations from below.
	FloorCOP float64
}

// DefaultScatterConfig matches the reference synthetic dataset: 1200 points
// across -20..10 °C at seed 42.
func DefaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		Seed:      DefaultSeed,
		Points:    DefaultScatterPoints,
		MinTempC:  -20,
		MaxTempC:  10,
		BaseSigma: DefaultBaseSigma,
		SigmaRamp: DefaultSigmaRamp,
		FloorCOP:  DefaultFloorCOP,
	}
}

// Validate checks the scatter configuration.
func (c ScatterConfig) Validate() error {
	if c.Points < 1 {
		return fmt.Errorf("scatter needs at least 1 point, got %d", c.Points)
	}
	if c.MinTempC >= c.MaxTempC {
		return fmt.Errorf("temperature range [%.2f, %.2f] °C is empty", c.MinTempC, c.MaxTempC)
	}
	if c.BaseSigma < 0 || c.SigmaRamp < 0 {
		return fmt.Errorf("noise parameters must be non-negative (base %.3f, ramp %.3f)",
			c.BaseSigma, c.SigmaRamp)
	}
	return nil
}

// Scatter holds paired synthetic observations.
type Scatter struct {
	TempC []float64
	COP   []float64
}

// GenerateScatter draws synthetic hourly observations around the trend
// polynomial: temperatures uniform across the configured range, COP values
// normally distributed around the trend with temperature-dependent sigma,
// clipped at the configured floor.
func GenerateScatter(p Polynomial, cfg ScatterConfig) (*Scatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := rand.NewSource(cfg.Seed)
	temps := distuv.Uniform{Min: cfg.MinTempC, Max: cfg.MaxTempC, Src: src}
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	span := cfg.MaxTempC - cfg.MinTempC

	s := &Scatter{
		TempC: make([]float64, cfg.Points),
		COP:   make([]float64, cfg.Points),
	}
	for i := 0; i < cfg.Points; i++ {
		t := temps.Rand()
		sigma := cfg.BaseSigma + cfg.SigmaRamp*(t-cfg.MinTempC)/span
		cop := p.Eval(t) + sigma*unit.Rand()
		if cop < cfg.FloorCOP {
			cop = cfg.FloorCOP
		}
		s.TempC[i] = t
		s.COP[i] = cop
	}
	return s, nil
}

// ScatterSummary aggregates a generated scatter for reporting.
type ScatterSummary struct {
	Points  int
	MeanCOP float64
	StdDev  float64
	MinCOP  float64
	MaxCOP  float64
}

// Summarize computes summary statistics over the observations.
func (s *Scatter) Summarize() ScatterSummary {
	return ScatterSummary{
		Points:  len(s.COP),
		MeanCOP: stat.Mean(s.COP, nil),
		StdDev:  stat.StdDev(s.COP, nil),
		MinCOP:  floats.Min(s.COP),
		MaxCOP:  floats.Max(s.COP),
	}
}
