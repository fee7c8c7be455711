package audioproc

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/audioproc/dsp"
)

// Conventionally supported sample rates. The core accepts any positive
// rate; callers that need strict conformance should validate against
// this set at their own boundary.
const (
	SampleRate8kHz  = 8000
	SampleRate16kHz = 16000
	SampleRate32kHz = 32000
	SampleRate48kHz = 48000
)

// GainControllerMode selects the AGC operating mode. Only adaptive
// analog influences behavior today (via the analog level bookkeeping);
// the other modes are carried for configuration compatibility.
type GainControllerMode int

// AGC operating modes.
const (
	GainModeAdaptiveAnalog GainControllerMode = iota
	GainModeAdaptiveDigital
	GainModeFixedDigital
)

// EchoCancellerConfig controls the echo suppression stage.
type EchoCancellerConfig struct {
	Enabled bool

	// MobileMode is accepted for configuration compatibility; the
	// level-gated suppressor behaves identically in both modes.
	MobileMode bool
}

// NoiseSuppressionConfig controls the noise gate stage.
type NoiseSuppressionConfig struct {
	Enabled bool
	Level   dsp.NoiseLevel
}

// GainControllerConfig controls the AGC stage.
type GainControllerConfig struct {
	Enabled bool
	Mode    GainControllerMode
}

// HighPassFilterConfig controls the high-pass filter stage.
type HighPassFilterConfig struct {
	Enabled bool
}

// Config aggregates the per-stage configuration of a Processor.
//
// Applying a Config is a pure state mutation with no processing side
// effects and it always succeeds: boolean flags are copied verbatim and
// numeric fields are clamped to their valid ranges.
type Config struct {
	EchoCanceller    EchoCancellerConfig
	NoiseSuppression NoiseSuppressionConfig
	GainController   GainControllerConfig
	HighPassFilter   HighPassFilterConfig
}

// DefaultConfig returns the configuration a fresh Processor starts
// with: every stage enabled, high noise suppression, adaptive analog
// gain control.
func DefaultConfig() Config {
	return Config{
		EchoCanceller:    EchoCancellerConfig{Enabled: true},
		NoiseSuppression: NoiseSuppressionConfig{Enabled: true, Level: dsp.NoiseLevelHigh},
		GainController:   GainControllerConfig{Enabled: true, Mode: GainModeAdaptiveAnalog},
		HighPassFilter:   HighPassFilterConfig{Enabled: true},
	}
}

// ApplyTo pushes this configuration into the processor.
//
// Parameters:
//   - p: processor to configure
func (c Config) ApplyTo(p *Processor) {
	logrus.WithFields(logrus.Fields{
		"function":          "Config.ApplyTo",
		"echo_cancellation": c.EchoCanceller.Enabled,
		"echo_mobile_mode":  c.EchoCanceller.MobileMode,
		"noise_suppression": c.NoiseSuppression.Enabled,
		"noise_level":       c.NoiseSuppression.Level.String(),
		"gain_control":      c.GainController.Enabled,
		"gain_mode":         int(c.GainController.Mode),
		"high_pass_filter":  c.HighPassFilter.Enabled,
	}).Info("Applying processor configuration")

	p.SetEchoCancellationEnabled(c.EchoCanceller.Enabled)
	p.SetNoiseSuppressionEnabled(c.NoiseSuppression.Enabled)
	p.SetNoiseSuppressionLevel(c.NoiseSuppression.Level)
	p.SetGainControlEnabled(c.GainController.Enabled)
	p.SetHighPassFilterEnabled(c.HighPassFilter.Enabled)
}
