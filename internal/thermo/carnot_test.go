package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarnotCOP_WorkedExamples(t *testing.T) {
	tests := []struct {
		name    string
		coldK   float64
		hotK    float64
		wantCOP float64
	}{
		{
			name:    "extreme cold to floor heating (-35°C to 35°C)",
			coldK:   238.15,
			hotK:    308.15,
			wantCOP: 4.40,
		},
		{
			name:    "extreme cold to hot water (-35°C to 65°C)",
			coldK:   238.15,
			hotK:    338.15,
			wantCOP: 3.38,
		},
		{
			name:    "freezing point to floor heating (0°C to 35°C)",
			coldK:   273.15,
			hotK:    308.15,
			wantCOP: 8.80,
		},
		{
			name:    "mild ambient to hot water (15°C to 65°C)",
			coldK:   288.15,
			hotK:    338.15,
			wantCOP: 6.76,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CarnotCOP(tt.coldK, tt.hotK)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantCOP, got, 0.01)
		})
	}
}

func TestCarnotCOP_AlwaysAboveOne(t *testing.T) {
	// COP = hot/(hot-cold) > 1 whenever 0 < cold < hot.
	for coldC := -40.0; coldC <= 30.0; coldC += 5.0 {
		for _, lift := range []float64{1, 10, 50, 120} {
			coldK := CelsiusToKelvin(coldC)
			got, err := CarnotCOP(coldK, coldK+lift)
			require.NoError(t, err)
			assert.Greater(t, got, 1.0, "cold %.2f K lift %.0f K", coldK, lift)
		}
	}
}

func TestCarnotCOP_MonotonicInColdSide(t *testing.T) {
	// For a fixed hot side, lowering the cold side strictly lowers the COP.
	hotK := CelsiusToKelvin(35)
	prev := 0.0
	for i, coldC := range []float64{-35, -20, -10, 0, 10, 15} {
		got, err := CarnotCOP(CelsiusToKelvin(coldC), hotK)
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, got, prev, "COP must rise as ambient warms toward the target")
		}
		prev = got
	}
}

func TestCarnotCOP_InvalidRanges(t *testing.T) {
	tests := []struct {
		name  string
		coldK float64
		hotK  float64
	}{
		{"equal temperatures", 293.15, 293.15},
		{"hot below cold", 308.15, 273.15},
		{"zero cold side", 0, 308.15},
		{"negative cold side", -5, 308.15},
		{"zero hot side", 273.15, 0},
		{"negative hot side", 273.15, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CarnotCOP(tt.coldK, tt.hotK)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTemperatureRange)
			assert.Equal(t, 0.0, got)
		})
	}
}

func TestPracticalCOP_ExactHalf(t *testing.T) {
	coldK := CelsiusToKelvin(0)
	hotK := CelsiusToKelvin(35)

	carnot, err := CarnotCOP(coldK, hotK)
	require.NoError(t, err)

	practical, err := PracticalCOP(coldK, hotK, 0.5)
	require.NoError(t, err)

	// Exact, not approximate: a single multiplication by the fraction.
	assert.Equal(t, 0.5*carnot, practical)
}

func TestPracticalCOP_DocumentedBand(t *testing.T) {
	coldK := CelsiusToKelvin(0)
	hotK := CelsiusToKelvin(35)

	carnot, err := CarnotCOP(coldK, hotK)
	require.NoError(t, err)

	low, err := PracticalCOP(coldK, hotK, MinPracticalFraction)
	require.NoError(t, err)
	high, err := PracticalCOP(coldK, hotK, MaxPracticalFraction)
	require.NoError(t, err)

	assert.InDelta(t, carnot*0.40, low, 1e-12)
	assert.InDelta(t, carnot*0.60, high, 1e-12)
	assert.Less(t, low, high)
}

func TestPracticalCOP_InvalidFraction(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
	}{
		{"zero", 0},
		{"negative", -0.2},
		{"above one", 1.01},
		{"far above one", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PracticalCOP(263.15, 308.15, tt.fraction)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEfficiencyFraction)
			assert.Equal(t, 0.0, got)
		})
	}
}

func TestPracticalCOP_FullFractionMatchesCarnot(t *testing.T) {
	carnot, err := CarnotCOP(263.15, 308.15)
	require.NoError(t, err)

	practical, err := PracticalCOP(263.15, 308.15, 1.0)
	require.NoError(t, err)
	assert.Equal(t, carnot, practical)
}

func TestPracticalCOP_PropagatesTemperatureError(t *testing.T) {
	_, err := PracticalCOP(308.15, 308.15, 0.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTemperatureRange)
}

func TestLift(t *testing.T) {
	assert.Equal(t, 35.0, Lift(273.15, 308.15))
	assert.Equal(t, -10.0, Lift(283.15, 273.15))
}
