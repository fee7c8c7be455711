package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNoiseGateLevelTable verifies the (threshold, ratio) pair selected
// at every suppression level.
func TestNoiseGateLevelTable(t *testing.T) {
	tests := []struct {
		level     NoiseLevel
		threshold float32
		ratio     float32
	}{
		{NoiseLevelLow, 0.05, 0.8},
		{NoiseLevelModerate, 0.03, 0.6},
		{NoiseLevelHigh, 0.02, 0.4},
		{NoiseLevelVeryHigh, 0.01, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			g := NewNoiseGate(tt.level)

			// A sample just inside the threshold is scaled by the ratio.
			quiet := tt.threshold / 2
			assert.InDelta(t, float64(quiet*tt.ratio), float64(g.Apply(quiet)), 1e-7)

			// A sample above the threshold passes unchanged.
			loud := tt.threshold * 2
			assert.Equal(t, loud, g.Apply(loud))
		})
	}
}

// TestNoiseGateVeryHighReference checks the reference behavior: at the
// VeryHigh level an amplitude of 0.005 is attenuated to 0.001 while an
// amplitude of 0.5 passes through unchanged.
func TestNoiseGateVeryHighReference(t *testing.T) {
	g := NewNoiseGate(NoiseLevelVeryHigh)

	assert.InDelta(t, 0.001, float64(g.Apply(0.005)), 1e-6)
	assert.Equal(t, float32(0.5), g.Apply(0.5))
}

// TestNoiseGateNegativeSamples verifies the gate is symmetric: it acts
// on magnitude, not sign.
func TestNoiseGateNegativeSamples(t *testing.T) {
	g := NewNoiseGate(NoiseLevelVeryHigh)

	assert.InDelta(t, -0.001, float64(g.Apply(-0.005)), 1e-6)
	assert.Equal(t, float32(-0.5), g.Apply(-0.5))
}

// TestNoiseGateLevelClamp verifies out-of-range levels are clamped to
// the nearest valid level rather than rejected.
func TestNoiseGateLevelClamp(t *testing.T) {
	g := NewNoiseGate(NoiseLevel(-3))
	assert.Equal(t, NoiseLevelLow, g.Level())

	g.SetLevel(NoiseLevel(17))
	assert.Equal(t, NoiseLevelVeryHigh, g.Level())
}

// TestNoiseLevelString covers the level names used in logs.
func TestNoiseLevelString(t *testing.T) {
	assert.Equal(t, "low", NoiseLevelLow.String())
	assert.Equal(t, "moderate", NoiseLevelModerate.String())
	assert.Equal(t, "high", NoiseLevelHigh.String())
	assert.Equal(t, "very_high", NoiseLevelVeryHigh.String())
	assert.Equal(t, "unknown", NoiseLevel(99).String())
}
