// Command heatpump-cop estimates heat pump performance from the Carnot
// limit: single-point COP calculations, ambient temperature sweeps,
// checkpoint summary tables, field-data trend fits, and PNG charts.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is overridden by the release build via -ldflags.
var version = "dev"

var (
	// Global flags
	cfgPath  string
	logLevel string
	jsonOut  bool

	// Resolved per invocation in PersistentPreRunE
	cfg    Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "heatpump-cop",
	Version: version,
	Short:   "Carnot-limit heat pump COP calculator",
	Long: `heatpump-cop estimates how the coefficient of performance (COP) of a
heat pump varies with outdoor temperature, using the Carnot limit as the
physical ceiling and a 40-60% practical band for real systems.

Subcommands cover single-point calculations (calc), ambient temperature
sweeps (sweep), checkpoint summary tables (table), polynomial fits of
field data (trend), and PNG chart rendering (chart).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cfgPath)
		if err != nil {
			return err
		}
		// Flags win over environment and file values.
		if cmd.Root().PersistentFlags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
		}

		out := zerolog.NewConsoleWriter()
		out.Out = cmd.ErrOrStderr()
		logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"Path to YAML config file (or set HEATPUMP_COP_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel,
		"Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false,
		"Emit JSON instead of text where applicable")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
