package audioproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/audioproc/dsp"
)

// TestDefaultConfig verifies the default configuration matches a fresh
// processor's state.
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.True(t, config.EchoCanceller.Enabled)
	assert.False(t, config.EchoCanceller.MobileMode)
	assert.True(t, config.NoiseSuppression.Enabled)
	assert.Equal(t, dsp.NoiseLevelHigh, config.NoiseSuppression.Level)
	assert.True(t, config.GainController.Enabled)
	assert.Equal(t, GainModeAdaptiveAnalog, config.GainController.Mode)
	assert.True(t, config.HighPassFilter.Enabled)
}

// TestConfigApplyTo verifies a mixed configuration lands on the
// processor flags exactly as given.
func TestConfigApplyTo(t *testing.T) {
	p := NewProcessor()

	Config{
		EchoCanceller:    EchoCancellerConfig{Enabled: false},
		NoiseSuppression: NoiseSuppressionConfig{Enabled: true, Level: dsp.NoiseLevelLow},
		GainController:   GainControllerConfig{Enabled: false},
		HighPassFilter:   HighPassFilterConfig{Enabled: true},
	}.ApplyTo(p)

	assert.False(t, p.IsEchoCancellationEnabled())
	assert.True(t, p.IsNoiseSuppressionEnabled())
	assert.Equal(t, dsp.NoiseLevelLow, p.NoiseSuppressionLevel())
	assert.False(t, p.IsGainControlEnabled())
	assert.True(t, p.IsHighPassFilterEnabled())
}

// TestConfigApplyClampsLevel verifies an out-of-range noise level is
// clamped instead of rejected.
func TestConfigApplyClampsLevel(t *testing.T) {
	p := NewProcessor()

	Config{
		NoiseSuppression: NoiseSuppressionConfig{Enabled: true, Level: dsp.NoiseLevel(42)},
	}.ApplyTo(p)

	assert.Equal(t, dsp.NoiseLevelVeryHigh, p.NoiseSuppressionLevel())
}

// TestConfigReapplyIsPureStateMutation verifies re-applying a
// configuration never touches statistics or stage history.
func TestConfigReapplyIsPureStateMutation(t *testing.T) {
	p := NewProcessor()

	buffer := make([]float32, 160)
	for i := range buffer {
		buffer[i] = 0.5
	}
	_, err := p.ProcessStream(buffer, SampleRate16kHz, 1)
	require.NoError(t, err)

	before := p.GetStatistics()
	DefaultConfig().ApplyTo(p)
	assert.Equal(t, before, p.GetStatistics())
}
