package dsp

import (
	"github.com/sirupsen/logrus"
)

// NoiseLevel selects how aggressively the noise gate attenuates
// low-amplitude samples.
type NoiseLevel int

// Noise gate aggressiveness levels, ordered from most transparent to
// most aggressive.
const (
	NoiseLevelLow NoiseLevel = iota
	NoiseLevelModerate
	NoiseLevelHigh
	NoiseLevelVeryHigh
)

// String returns a human-readable name for the noise level.
func (l NoiseLevel) String() string {
	switch l {
	case NoiseLevelLow:
		return "low"
	case NoiseLevelModerate:
		return "moderate"
	case NoiseLevelHigh:
		return "high"
	case NoiseLevelVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// gateParams is the (threshold, ratio) pair applied at a given level.
type gateParams struct {
	threshold float32
	ratio     float32
}

// gateTable maps each noise level to its gate parameters. Lower
// thresholds with stronger ratios trade transparency for suppression.
var gateTable = map[NoiseLevel]gateParams{
	NoiseLevelLow:      {threshold: 0.05, ratio: 0.8},
	NoiseLevelModerate: {threshold: 0.03, ratio: 0.6},
	NoiseLevelHigh:     {threshold: 0.02, ratio: 0.4},
	NoiseLevelVeryHigh: {threshold: 0.01, ratio: 0.2},
}

// NoiseGate attenuates samples whose magnitude falls below a level-
// dependent threshold.
//
// This is a static hard gate, not a frequency-domain suppressor. It
// will produce audible gating artifacts at threshold crossings; that is
// the accepted trade-off for a zero-latency, allocation-free stage.
type NoiseGate struct {
	level     NoiseLevel
	threshold float32
	ratio     float32
}

// NewNoiseGate creates a noise gate at the given suppression level.
// Out-of-range levels are clamped to the nearest valid level.
func NewNoiseGate(level NoiseLevel) *NoiseGate {
	g := &NoiseGate{}
	g.SetLevel(level)

	logrus.WithFields(logrus.Fields{
		"function":  "NewNoiseGate",
		"level":     g.level.String(),
		"threshold": g.threshold,
		"ratio":     g.ratio,
	}).Debug("Noise gate created")

	return g
}

// SetLevel selects the (threshold, ratio) pair for the given level.
//
// Levels outside [NoiseLevelLow, NoiseLevelVeryHigh] are clamped, not
// rejected: numeric configuration follows the lenient clamp lane.
func (g *NoiseGate) SetLevel(level NoiseLevel) {
	clamped := level
	if clamped < NoiseLevelLow {
		clamped = NoiseLevelLow
	} else if clamped > NoiseLevelVeryHigh {
		clamped = NoiseLevelVeryHigh
	}
	if clamped != level {
		logrus.WithFields(logrus.Fields{
			"function":  "NoiseGate.SetLevel",
			"requested": int(level),
			"clamped":   clamped.String(),
		}).Warn("Noise suppression level out of range, clamped")
	}

	params := gateTable[clamped]
	g.level = clamped
	g.threshold = params.threshold
	g.ratio = params.ratio

	logrus.WithFields(logrus.Fields{
		"function":  "NoiseGate.SetLevel",
		"level":     g.level.String(),
		"threshold": g.threshold,
		"ratio":     g.ratio,
	}).Debug("Noise gate level updated")
}

// Level returns the current suppression level.
func (g *NoiseGate) Level() NoiseLevel {
	return g.level
}

// Apply gates a single sample: samples below the threshold are scaled
// by the gate ratio, everything else passes through unchanged.
func (g *NoiseGate) Apply(sample float32) float32 {
	abs := sample
	if abs < 0 {
		abs = -abs
	}
	if abs < g.threshold {
		return sample * g.ratio
	}
	return sample
}
