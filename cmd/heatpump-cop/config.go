package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/heatpump-cop/internal/fielddata"
	"github.com/rshade/heatpump-cop/internal/thermo"
)

const (
	// envConfigPath points at the YAML config file when --config is not given.
	envConfigPath = "HEATPUMP_COP_CONFIG"
	// envLogLevel overrides the config file's log level.
	envLogLevel = "HEATPUMP_COP_LOG_LEVEL"

	defaultLogLevel = "info"
)

// Config is the optional YAML configuration file. Every field has a
// default, so an absent file and an empty file behave the same.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// Efficiency derates Carnot COP everywhere a fixed practical fraction
	// applies; 0 leaves outputs at the Carnot limit with the 40-60% band.
	Efficiency float64 `yaml:"efficiency"`

	// TargetsC are the hot-side target temperatures for sweeps, tables,
	// and curve charts.
	TargetsC []float64 `yaml:"targets_celsius"`

	Sweep   SweepFileConfig `yaml:"sweep"`
	Dataset string          `yaml:"dataset"`
	Chart   ChartFileConfig `yaml:"chart"`
}

// SweepFileConfig bounds the ambient temperature grid.
type SweepFileConfig struct {
	FromC  float64 `yaml:"from_celsius"`
	ToC    float64 `yaml:"to_celsius"`
	Points int     `yaml:"points"`
}

// ChartFileConfig sizes rendered charts.
type ChartFileConfig struct {
	WidthInch  float64 `yaml:"width_inch"`
	HeightInch float64 `yaml:"height_inch"`
}

func defaultChartConfig() ChartFileConfig {
	return ChartFileConfig{WidthInch: 10, HeightInch: 6}
}

// DefaultConfig returns the configuration used when no file, environment,
// or flags override it.
func DefaultConfig() Config {
	return Config{
		LogLevel: defaultLogLevel,
		TargetsC: []float64{thermo.FloorHeatingTargetC, thermo.RadiatorTargetC},
		Sweep: SweepFileConfig{
			FromC:  thermo.DefaultSweepMinC,
			ToC:    thermo.DefaultSweepMaxC,
			Points: thermo.DefaultSweepPoints,
		},
		Dataset: fielddata.DefaultName,
		Chart:   defaultChartConfig(),
	}
}

// loadConfig resolves the effective configuration: defaults, then the YAML
// file (explicit path or HEATPUMP_COP_CONFIG), then environment overrides.
// Flag overrides happen at the command layer, where flag state lives.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		// Unmarshal over the defaults so absent keys keep them.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if level := os.Getenv(envLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid value, naming the offending key.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config key log_level: %w", err)
	}
	if c.Efficiency < 0 || c.Efficiency > 1 {
		return fmt.Errorf("config key efficiency: %w: %.3f must be in (0, 1]",
			thermo.ErrInvalidEfficiencyFraction, c.Efficiency)
	}
	if len(c.TargetsC) == 0 {
		return fmt.Errorf("config key targets_celsius: need at least one target temperature")
	}
	if c.Sweep.FromC >= c.Sweep.ToC {
		return fmt.Errorf("config key sweep: from_celsius %.1f must be below to_celsius %.1f",
			c.Sweep.FromC, c.Sweep.ToC)
	}
	if c.Sweep.Points < 2 {
		return fmt.Errorf("config key sweep.points: %d must be at least 2", c.Sweep.Points)
	}
	if c.Dataset == "" {
		return fmt.Errorf("config key dataset: must not be empty")
	}
	if c.Chart.WidthInch <= 0 || c.Chart.HeightInch <= 0 {
		return fmt.Errorf("config key chart: %gx%g inches must be positive",
			c.Chart.WidthInch, c.Chart.HeightInch)
	}
	return nil
}

// sweepConfig translates the file config plus any flag overrides into the
// engine's sweep configuration.
func (c Config) sweepConfig() thermo.SweepConfig {
	return thermo.SweepConfig{
		MinAmbientC: c.Sweep.FromC,
		MaxAmbientC: c.Sweep.ToC,
		Points:      c.Sweep.Points,
		TargetsC:    c.TargetsC,
	}
}
