package dsp

import (
	"math"

	"github.com/sirupsen/logrus"
)

// HighPassCutoffHz is the fixed cutoff frequency of the capture-path
// high-pass filter. 120 Hz removes DC offset and low-frequency rumble
// while leaving voice fundamentals intact.
const HighPassCutoffHz = 120.0

// HighPass implements a single-pole IIR high-pass filter.
//
// The filter keeps one input and one output sample of history so that
// consecutive buffers are processed without discontinuities. History
// persists across coefficient changes; it is only cleared by Reset.
type HighPass struct {
	a  float32 // feedback coefficient, exp(-2*pi*fc)
	b  float32 // feedforward coefficient, (1+a)/2
	x1 float32 // previous input sample
	y1 float32 // previous output sample
}

// NewHighPass creates a high-pass filter with coefficients derived from
// the given sample rate.
//
// Parameters:
//   - sampleRate: stream sample rate in Hz (must be positive)
//
// Returns:
//   - *HighPass: new filter with zeroed history
func NewHighPass(sampleRate int) *HighPass {
	hp := &HighPass{}
	hp.SetSampleRate(sampleRate)

	logrus.WithFields(logrus.Fields{
		"function":    "NewHighPass",
		"sample_rate": sampleRate,
		"cutoff_hz":   HighPassCutoffHz,
	}).Debug("High-pass filter created")

	return hp
}

// SetSampleRate recomputes the filter coefficients for a new sample
// rate. History is intentionally left untouched so the filter stays
// continuous across a stream reconfiguration.
func (hp *HighPass) SetSampleRate(sampleRate int) {
	fc := HighPassCutoffHz / float64(sampleRate)
	alpha := float32(math.Exp(-2.0 * math.Pi * fc))
	hp.a = alpha
	hp.b = (1.0 + alpha) / 2.0

	logrus.WithFields(logrus.Fields{
		"function":    "HighPass.SetSampleRate",
		"sample_rate": sampleRate,
		"coeff_a":     hp.a,
		"coeff_b":     hp.b,
	}).Debug("High-pass coefficients recomputed")
}

// Apply filters a single sample and updates the filter history.
func (hp *HighPass) Apply(sample float32) float32 {
	out := hp.b*(sample-hp.x1) + hp.a*hp.y1
	hp.x1 = sample
	hp.y1 = out
	return out
}

// Coefficients returns the current (a, b) coefficient pair.
func (hp *HighPass) Coefficients() (a, b float32) {
	return hp.a, hp.b
}

// Reset clears the filter history. Coefficients are preserved.
func (hp *HighPass) Reset() {
	hp.x1 = 0
	hp.y1 = 0

	logrus.WithFields(logrus.Fields{
		"function": "HighPass.Reset",
	}).Debug("High-pass filter history cleared")
}
