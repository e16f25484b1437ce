package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/heatpump-cop/internal/thermo"
)

// newTestCmd resets the command globals and returns a command whose output
// is captured in the buffer. Run functions read flag values from package
// globals, so tests set those directly.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cfg = DefaultConfig()
	logger = zerolog.Nop()
	jsonOut = false

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func TestRunCalc(t *testing.T) {
	cmd, buf := newTestCmd(t)
	calcColdC, calcHotC = -35, 35

	require.NoError(t, runCalc(cmd, nil))
	out := buf.String()
	assert.Contains(t, out, "Carnot COP: 4.40")
	assert.Contains(t, out, "Practical band (40-60%): 1.76 to 2.64")
}

func TestRunCalcEfficiencyFromConfig(t *testing.T) {
	cmd, buf := newTestCmd(t)
	cfg.Efficiency = 0.5
	calcColdC, calcHotC = -35, 35

	require.NoError(t, runCalc(cmd, nil))
	assert.Contains(t, buf.String(), "Practical COP: 2.20 (fraction 0.50)")
}

func TestRunCalcInvalidPair(t *testing.T) {
	cmd, _ := newTestCmd(t)
	calcColdC, calcHotC = 35, 35

	err := runCalc(cmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, thermo.ErrInvalidTemperatureRange)
}

func TestRunCalcJSON(t *testing.T) {
	cmd, buf := newTestCmd(t)
	jsonOut = true
	calcColdC, calcHotC = 0, 35

	require.NoError(t, runCalc(cmd, nil))

	var res calcResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.InDelta(t, 8.80, res.CarnotCOP, 0.01)
	assert.InDelta(t, 35.0, res.LiftK, 1e-9)
	assert.Zero(t, res.PracticalCOP)
}

func TestRunSweepText(t *testing.T) {
	cmd, buf := newTestCmd(t)

	require.NoError(t, runSweep(cmd, nil))
	out := buf.String()
	assert.Contains(t, out, "cop@35°C")
	assert.Contains(t, out, "cop@65°C")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, thermo.DefaultSweepPoints+1, "header plus one line per grid point")
	assert.True(t, strings.HasPrefix(lines[1], "    -35.00"), "grid starts at the sweep floor: %q", lines[1])
}

func TestRunSweepJSONInvalidPointsAreNull(t *testing.T) {
	cmd, buf := newTestCmd(t)
	jsonOut = true
	cfg.Sweep.FromC, cfg.Sweep.ToC, cfg.Sweep.Points = 30, 40, 3
	cfg.TargetsC = []float64{35}

	require.NoError(t, runSweep(cmd, nil))

	var res sweepResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res.Series, 1)
	require.Len(t, res.Series[0].COP, 3)
	assert.NotNil(t, res.Series[0].COP[0], "30°C ambient against 35°C target is valid")
	assert.Nil(t, res.Series[0].COP[1], "35°C ambient equals the target")
	assert.Nil(t, res.Series[0].COP[2], "40°C ambient exceeds the target")
}

func TestRunTableText(t *testing.T) {
	cmd, buf := newTestCmd(t)

	require.NoError(t, runTable(cmd, nil))
	out := buf.String()
	assert.Contains(t, out, "--- Carnot COP Summary ---")
	assert.Contains(t, out, "Ambient -35°C:")
	assert.Contains(t, out, "COP @ 35°C = 4.40")
}

func TestRunTableJSON(t *testing.T) {
	cmd, buf := newTestCmd(t)
	jsonOut = true

	require.NoError(t, runTable(cmd, nil))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded["generator"], "heatpump-cop/")

	rows, ok := decoded["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 6, "3 ambients x 2 targets")
}

func TestRunTrend(t *testing.T) {
	cmd, buf := newTestCmd(t)

	require.NoError(t, runTrend(cmd, nil))
	out := buf.String()
	assert.Contains(t, out, "Dataset: field-trend (7 points)")
	assert.Contains(t, out, "Trend: COP(t) =")
	assert.Contains(t, out, "fitted")
	assert.NotContains(t, out, "Synthetic observations", "scatter not requested")
}

func TestRunTrendWithScatter(t *testing.T) {
	cmd, buf := newTestCmd(t)
	trendScatter = true
	defer func() { trendScatter = false }()

	require.NoError(t, runTrend(cmd, nil))
	assert.Contains(t, buf.String(), "Synthetic observations: 1200 points")
}

func TestRunTrendUnknownDataset(t *testing.T) {
	cmd, _ := newTestCmd(t)
	cfg.Dataset = "no-such-dataset"

	err := runTrend(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dataset "no-such-dataset"`)
	assert.Contains(t, err.Error(), "field-trend", "error names the available datasets")
}

func TestRunChartCarnot(t *testing.T) {
	cmd, buf := newTestCmd(t)
	chartOut = filepath.Join(t.TempDir(), "carnot.png")
	defer func() { chartOut = "" }()

	require.NoError(t, runChartCarnot(cmd, nil))
	assert.Contains(t, buf.String(), "Wrote ")

	info, err := os.Stat(chartOut)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunChartField(t *testing.T) {
	cmd, _ := newTestCmd(t)
	chartOut = filepath.Join(t.TempDir(), "field.png")
	defer func() { chartOut = "" }()

	require.NoError(t, runChartField(cmd, nil))

	info, err := os.Stat(chartOut)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestExecuteLogLevelPrecedence drives the real root command to cover the
// flag > environment > config file chain resolved in PersistentPreRunE.
func TestExecuteLogLevelPrecedence(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	jsonOut = false
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		levelFlag := rootCmd.PersistentFlags().Lookup("log-level")
		levelFlag.Changed = false
		_ = levelFlag.Value.Set(defaultLogLevel)
	}()

	path := writeConfigFile(t, "log_level: warn\n")
	t.Setenv(envConfigPath, path)
	t.Setenv(envLogLevel, "error")

	// Environment beats the config file.
	rootCmd.SetArgs([]string{"calc", "--cold-celsius", "0", "--hot-celsius", "35"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "error", cfg.LogLevel)

	// The flag beats both.
	rootCmd.SetArgs([]string{"calc", "--cold-celsius", "0", "--hot-celsius", "35", "--log-level", "debug"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "debug", cfg.LogLevel)
}
