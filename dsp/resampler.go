package dsp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Resampler converts normalized float32 audio between sample rates
// using linear interpolation.
//
// Linear interpolation is a deliberate simplicity trade-off: it is
// allocation-light, O(n), and good enough for a voice reference path.
// The resampler keeps the last frame of each batch so consecutive
// batches interpolate across the boundary without clicks.
type Resampler struct {
	inputRate  int
	outputRate int
	channels   int
	lastFrame  []float32
	position   float64
}

// ResamplerConfig holds configuration for creating a Resampler.
type ResamplerConfig struct {
	InputRate  int // input sample rate in Hz
	OutputRate int // output sample rate in Hz
	Channels   int // interleaved channel count (1=mono, 2=stereo)
}

// NewResampler creates a resampler converting audio from
// config.InputRate to config.OutputRate.
//
// Parameters:
//   - config: resampler configuration
//
// Returns:
//   - *Resampler: new resampler instance
//   - error: validation error for non-positive rates or unsupported
//     channel counts
func NewResampler(config ResamplerConfig) (*Resampler, error) {
	logrus.WithFields(logrus.Fields{
		"function":    "NewResampler",
		"input_rate":  config.InputRate,
		"output_rate": config.OutputRate,
		"channels":    config.Channels,
	}).Debug("Creating resampler")

	if config.InputRate <= 0 || config.OutputRate <= 0 {
		logrus.WithFields(logrus.Fields{
			"function":    "NewResampler",
			"input_rate":  config.InputRate,
			"output_rate": config.OutputRate,
			"error":       "invalid sample rates",
		}).Error("Resampler validation failed")
		return nil, fmt.Errorf("invalid sample rates: input=%d, output=%d",
			config.InputRate, config.OutputRate)
	}

	if config.Channels < 1 || config.Channels > 2 {
		logrus.WithFields(logrus.Fields{
			"function": "NewResampler",
			"channels": config.Channels,
			"error":    "unsupported channel count",
		}).Error("Resampler validation failed")
		return nil, fmt.Errorf("unsupported channel count: %d (must be 1 or 2)", config.Channels)
	}

	return &Resampler{
		inputRate:  config.InputRate,
		outputRate: config.OutputRate,
		channels:   config.Channels,
		lastFrame:  make([]float32, config.Channels),
	}, nil
}

// Resample converts a batch of interleaved samples from the input rate
// to the output rate.
//
// Parameters:
//   - input: interleaved float32 samples at the input rate
//
// Returns:
//   - []float32: resampled interleaved samples at the output rate
//   - error: validation error on empty or channel-misaligned input
func (r *Resampler) Resample(input []float32) ([]float32, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("empty input samples")
	}
	if len(input)%r.channels != 0 {
		return nil, fmt.Errorf("input samples (%d) not aligned to channel count (%d)",
			len(input), r.channels)
	}

	// Same-rate fast path: return a copy, interpolation state untouched.
	if r.inputRate == r.outputRate {
		out := make([]float32, len(input))
		copy(out, input)
		return out, nil
	}

	ratio := float64(r.inputRate) / float64(r.outputRate)
	inputFrames := len(input) / r.channels
	outputFrames := int(float64(inputFrames)/ratio + 0.5)
	output := make([]float32, 0, outputFrames*r.channels)

	for frame := 0; frame < outputFrames; frame++ {
		index := int(r.position)
		frac := float32(r.position - float64(index))

		for ch := 0; ch < r.channels; ch++ {
			output = append(output, r.interpolate(input, index, frac, ch, inputFrames))
		}

		r.position += ratio
	}

	// Carry position and the final frame into the next batch.
	r.position -= float64(inputFrames)
	copy(r.lastFrame, input[len(input)-r.channels:])

	logrus.WithFields(logrus.Fields{
		"function":      "Resampler.Resample",
		"input_frames":  inputFrames,
		"output_frames": len(output) / r.channels,
		"ratio":         ratio,
	}).Debug("Resampled audio batch")

	return output, nil
}

// interpolate produces one output sample for the given channel,
// reaching into the previous batch's final frame when the position
// precedes the current batch.
func (r *Resampler) interpolate(input []float32, index int, frac float32, ch, inputFrames int) float32 {
	if index < 0 {
		return r.lastFrame[ch]
	}
	if index >= inputFrames-1 {
		return input[(inputFrames-1)*r.channels+ch]
	}
	s1 := input[index*r.channels+ch]
	s2 := input[(index+1)*r.channels+ch]
	return s1*(1.0-frac) + s2*frac
}

// InputRate returns the configured input sample rate.
func (r *Resampler) InputRate() int {
	return r.inputRate
}

// OutputRate returns the configured output sample rate.
func (r *Resampler) OutputRate() int {
	return r.outputRate
}

// Channels returns the configured channel count.
func (r *Resampler) Channels() int {
	return r.channels
}

// Reset clears the interpolation state. Useful after a discontinuity in
// the source stream.
func (r *Resampler) Reset() {
	r.position = 0
	for i := range r.lastFrame {
		r.lastFrame[i] = 0
	}

	logrus.WithFields(logrus.Fields{
		"function": "Resampler.Reset",
	}).Debug("Resampler state reset")
}
