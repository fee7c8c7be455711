package dsp

import (
	"math"

	"github.com/sirupsen/logrus"
)

// AGC tuning constants. Attack is deliberately faster than release
// (standard limiter ballistics) so the gain ducks quickly on loud
// onsets and recovers smoothly afterwards.
const (
	// DefaultTargetLevel is the output level the AGC steers toward,
	// roughly 30% of full scale for comfortable voice listening.
	DefaultTargetLevel = 0.3

	// AttackTimeSeconds is the envelope attack time constant.
	AttackTimeSeconds = 0.1

	// ReleaseTimeSeconds is the envelope release time constant.
	ReleaseTimeSeconds = 0.5

	// MinGain and MaxGain bound the makeup gain so a near-silent or
	// clipped envelope can never drive the output to extremes.
	MinGain = 0.1
	MaxGain = 10.0

	// envelopeFloor is the level below which the signal is treated as
	// silence and unity gain is applied.
	envelopeFloor = 0.001
)

// AutoGain implements an automatic gain control stage built on an
// asymmetric envelope follower.
//
// The envelope is a smoothed running estimate of signal magnitude,
// updated on every sample. Gain is recomputed per sample as
// target/envelope, clamped to [MinGain, MaxGain], so the output settles
// near the target level without hard limiting.
type AutoGain struct {
	targetLevel  float32
	attackCoeff  float32
	releaseCoeff float32
	envelope     float32
	lastGain     float32
}

// NewAutoGain creates an AGC stage with default voice-tuned ballistics
// for the given sample rate.
//
// Parameters:
//   - sampleRate: stream sample rate in Hz (must be positive)
//
// Returns:
//   - *AutoGain: new stage with a zero envelope and unity gain
func NewAutoGain(sampleRate int) *AutoGain {
	a := &AutoGain{
		targetLevel: DefaultTargetLevel,
		lastGain:    1.0,
	}
	a.SetSampleRate(sampleRate)

	logrus.WithFields(logrus.Fields{
		"function":     "NewAutoGain",
		"sample_rate":  sampleRate,
		"target_level": a.targetLevel,
		"attack_s":     AttackTimeSeconds,
		"release_s":    ReleaseTimeSeconds,
	}).Debug("Auto gain stage created")

	return a
}

// SetSampleRate recomputes the attack and release coefficients for a
// new sample rate. The running envelope is preserved so reconfiguration
// does not cause a gain jump.
func (a *AutoGain) SetSampleRate(sampleRate int) {
	attackSamples := AttackTimeSeconds * float64(sampleRate)
	releaseSamples := ReleaseTimeSeconds * float64(sampleRate)
	a.attackCoeff = float32(math.Exp(-1.0 / attackSamples))
	a.releaseCoeff = float32(math.Exp(-1.0 / releaseSamples))

	logrus.WithFields(logrus.Fields{
		"function":      "AutoGain.SetSampleRate",
		"sample_rate":   sampleRate,
		"attack_coeff":  a.attackCoeff,
		"release_coeff": a.releaseCoeff,
	}).Debug("AGC coefficients recomputed")
}

// Apply processes one sample: updates the envelope, derives the clamped
// makeup gain, and returns the scaled sample.
func (a *AutoGain) Apply(sample float32) float32 {
	abs := sample
	if abs < 0 {
		abs = -abs
	}

	if abs > a.envelope {
		a.envelope = a.attackCoeff*a.envelope + (1.0-a.attackCoeff)*abs
	} else {
		a.envelope = a.releaseCoeff*a.envelope + (1.0-a.releaseCoeff)*abs
	}

	gain := float32(1.0)
	if a.envelope > envelopeFloor {
		gain = a.targetLevel / a.envelope
		if gain < MinGain {
			gain = MinGain
		} else if gain > MaxGain {
			gain = MaxGain
		}
	}
	a.lastGain = gain

	return sample * gain
}

// Envelope returns the current smoothed magnitude estimate.
func (a *AutoGain) Envelope() float32 {
	return a.envelope
}

// LastGain returns the gain applied to the most recently processed
// sample. Before any sample has been processed this is unity.
func (a *AutoGain) LastGain() float32 {
	return a.lastGain
}

// Coefficients returns the current (attack, release) coefficient pair.
func (a *AutoGain) Coefficients() (attack, release float32) {
	return a.attackCoeff, a.releaseCoeff
}

// TargetLevel returns the configured target output level.
func (a *AutoGain) TargetLevel() float32 {
	return a.targetLevel
}
