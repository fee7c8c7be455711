package audioproc

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/audioproc/dsp"
)

// Version identifies the processing pipeline implementation.
const Version = "2.1.0"

// Analog level bounds for the external hardware-gain recommendation
// knob. Values outside the range are clamped, never rejected.
const (
	MinAnalogLevel = 0
	MaxAnalogLevel = 255
)

// Default stream geometry for a freshly created processor.
const (
	defaultSampleRate = SampleRate16kHz
	defaultChannels   = 1
)

// Processor is the stream controller of the enhancement pipeline.
//
// It owns all stage state (filter history, gate parameters, AGC
// envelope, echo reference ring), applies configuration, recomputes
// coefficients when the stream geometry changes, and drives the two
// processing entry points. A Processor is created once per audio
// session, mutated in place by every call, and discarded when the
// session ends.
//
// Processor is not safe for concurrent use; serialize access
// externally or use one instance per session.
type Processor struct {
	sampleRate int
	channels   int

	echoCancellationEnabled bool
	noiseSuppressionEnabled bool
	gainControlEnabled      bool
	highPassEnabled         bool

	highPass *dsp.HighPass
	gate     *dsp.NoiseGate
	agc      *dsp.AutoGain
	echo     *dsp.EchoSuppressor

	analogLevel int
	targetGain  float32

	stats Statistics

	// Call bookkeeping, reported in logs only.
	forwardFrames uint64
	reverseFrames uint64
}

// NewProcessor creates a processor with the default configuration:
// 16 kHz mono, every stage enabled, high noise suppression, analog
// level centered at 128.
//
// Returns:
//   - *Processor: new processor ready for ProcessStream calls
func NewProcessor() *Processor {
	p := &Processor{
		sampleRate:              defaultSampleRate,
		channels:                defaultChannels,
		echoCancellationEnabled: true,
		noiseSuppressionEnabled: true,
		gainControlEnabled:      true,
		highPassEnabled:         true,
		highPass:                dsp.NewHighPass(defaultSampleRate),
		gate:                    dsp.NewNoiseGate(dsp.NoiseLevelHigh),
		agc:                     dsp.NewAutoGain(defaultSampleRate),
		echo:                    dsp.NewEchoSuppressor(defaultSampleRate),
		analogLevel:             128,
		targetGain:              1.0,
		stats:                   defaultStatistics(),
	}

	logrus.WithFields(logrus.Fields{
		"function":    "NewProcessor",
		"sample_rate": p.sampleRate,
		"channels":    p.channels,
		"version":     Version,
	}).Info("Audio processor created")

	return p
}

// SetEchoCancellationEnabled toggles the echo suppression stage. While
// disabled the forward path leaves samples untouched; the reference
// ring keeps recording either way.
func (p *Processor) SetEchoCancellationEnabled(enabled bool) {
	p.echoCancellationEnabled = enabled
}

// SetNoiseSuppressionEnabled toggles the noise gate stage.
func (p *Processor) SetNoiseSuppressionEnabled(enabled bool) {
	p.noiseSuppressionEnabled = enabled
}

// SetNoiseSuppressionLevel selects the gate aggressiveness.
// Out-of-range levels are clamped to the nearest valid level.
func (p *Processor) SetNoiseSuppressionLevel(level dsp.NoiseLevel) {
	p.gate.SetLevel(level)
}

// SetGainControlEnabled toggles the AGC stage.
func (p *Processor) SetGainControlEnabled(enabled bool) {
	p.gainControlEnabled = enabled
}

// SetHighPassFilterEnabled toggles the high-pass filter stage. While
// disabled the filter history is frozen, so re-enabling resumes from
// the last state seen while active.
func (p *Processor) SetHighPassFilterEnabled(enabled bool) {
	p.highPassEnabled = enabled
}

// IsEchoCancellationEnabled reports whether echo suppression is active.
func (p *Processor) IsEchoCancellationEnabled() bool {
	return p.echoCancellationEnabled
}

// IsNoiseSuppressionEnabled reports whether the noise gate is active.
func (p *Processor) IsNoiseSuppressionEnabled() bool {
	return p.noiseSuppressionEnabled
}

// IsGainControlEnabled reports whether the AGC is active.
func (p *Processor) IsGainControlEnabled() bool {
	return p.gainControlEnabled
}

// IsHighPassFilterEnabled reports whether the high-pass filter is
// active.
func (p *Processor) IsHighPassFilterEnabled() bool {
	return p.highPassEnabled
}

// NoiseSuppressionLevel returns the current gate aggressiveness.
func (p *Processor) NoiseSuppressionLevel() dsp.NoiseLevel {
	return p.gate.Level()
}

// SampleRate returns the current stream sample rate in Hz.
func (p *Processor) SampleRate() int {
	return p.sampleRate
}

// Channels returns the current interleaved channel count.
func (p *Processor) Channels() int {
	return p.channels
}

// validateStream checks a processing call's buffer shape.
//
// The rules mirror the original array surface: a buffer must be a
// non-empty 1-D (mono) or 2-D (interleaved stereo) frame, so channel
// counts outside {1, 2} and ragged interleaving are rejected. The
// processor state is never touched on a validation failure.
func validateStream(buffer []float32, sampleRate, channels int) error {
	if len(buffer) == 0 {
		return ErrEmptyBuffer
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels < 1 || channels > 2 {
		return fmt.Errorf("%w: %d channels (must be 1 or 2)", ErrInvalidShape, channels)
	}
	if len(buffer)%channels != 0 {
		return fmt.Errorf("%w: %d samples not aligned to %d channels",
			ErrInvalidShape, len(buffer), channels)
	}
	return nil
}

// reconfigure recomputes stage coefficients for a new stream geometry.
//
// Filter and AGC histories survive the change so audio stays continuous
// across a rate switch; only the echo reference ring is resized, which
// discards its history (the old reference is at the wrong rate anyway).
func (p *Processor) reconfigure(sampleRate, channels int) {
	logrus.WithFields(logrus.Fields{
		"function":        "Processor.reconfigure",
		"old_sample_rate": p.sampleRate,
		"new_sample_rate": sampleRate,
		"old_channels":    p.channels,
		"new_channels":    channels,
	}).Info("Stream geometry changed, recomputing coefficients")

	p.sampleRate = sampleRate
	p.channels = channels

	p.highPass.SetSampleRate(sampleRate)
	p.agc.SetSampleRate(sampleRate)
	p.echo.Resize(sampleRate)
}

// ProcessStream enhances one forward (capture) buffer.
//
// If the sample rate or channel count differ from the current stream
// geometry, filter and AGC coefficients are recomputed and the echo
// reference ring is resized before processing. Every sample then flows
// through high-pass → noise gate → AGC → echo suppression → clamp,
// channel-agnostic: stereo interleaving is not special-cased. Disabled
// stages are identity pass-throughs.
//
// Parameters:
//   - buffer: interleaved float32 samples in [-1, 1]
//   - sampleRate: buffer sample rate in Hz
//   - channels: interleaved channel count (1 or 2)
//
// Returns:
//   - []float32: enhanced buffer of identical length, clamped to [-1, 1]
//   - error: validation error on malformed shape; no partial output
func (p *Processor) ProcessStream(buffer []float32, sampleRate, channels int) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "Processor.ProcessStream",
		"sample_count": len(buffer),
		"sample_rate":  sampleRate,
		"channels":     channels,
	}).Debug("Processing forward stream")

	if err := validateStream(buffer, sampleRate, channels); err != nil {
		logrus.WithFields(logrus.Fields{
			"function":     "Processor.ProcessStream",
			"sample_count": len(buffer),
			"channels":     channels,
			"error":        err.Error(),
		}).Error("Forward stream validation failed")
		return nil, err
	}

	if sampleRate != p.sampleRate || channels != p.channels {
		p.reconfigure(sampleRate, channels)
	}

	output := make([]float32, len(buffer))
	for i, sample := range buffer {
		if p.highPassEnabled {
			sample = p.highPass.Apply(sample)
		}
		if p.noiseSuppressionEnabled {
			sample = p.gate.Apply(sample)
		}
		if p.gainControlEnabled {
			sample = p.agc.Apply(sample)
		}
		if p.echoCancellationEnabled {
			sample = p.echo.Suppress(sample, p.echo.RecentReference(i, len(buffer)))
		}

		if sample > 1.0 {
			sample = 1.0
		} else if sample < -1.0 {
			sample = -1.0
		}
		output[i] = sample
	}

	p.stats.Envelope = p.agc.Envelope()
	p.stats.CurrentGain = p.agc.LastGain()
	p.forwardFrames++

	logrus.WithFields(logrus.Fields{
		"function":       "Processor.ProcessStream",
		"sample_count":   len(output),
		"envelope":       p.stats.Envelope,
		"current_gain":   p.stats.CurrentGain,
		"forward_frames": p.forwardFrames,
	}).Debug("Forward stream processed")

	return output, nil
}

// ProcessReverseStream records one reverse (render) buffer as the echo
// reference.
//
// Every sample is pushed into the reference ring buffer oldest-first;
// the returned buffer is an unmodified copy of the input, because the
// reverse path is recorded, not denoised. The reverse path never
// triggers a geometry reconfiguration: resizing the ring here would
// discard the very history it is recording.
//
// Parameters:
//   - buffer: interleaved float32 samples in [-1, 1]
//   - sampleRate: buffer sample rate in Hz
//   - channels: interleaved channel count (1 or 2)
//
// Returns:
//   - []float32: unmodified copy of the input
//   - error: validation error on malformed shape; no partial output
func (p *Processor) ProcessReverseStream(buffer []float32, sampleRate, channels int) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "Processor.ProcessReverseStream",
		"sample_count": len(buffer),
		"sample_rate":  sampleRate,
		"channels":     channels,
	}).Debug("Recording reverse stream reference")

	if err := validateStream(buffer, sampleRate, channels); err != nil {
		logrus.WithFields(logrus.Fields{
			"function":     "Processor.ProcessReverseStream",
			"sample_count": len(buffer),
			"channels":     channels,
			"error":        err.Error(),
		}).Error("Reverse stream validation failed")
		return nil, err
	}

	for _, sample := range buffer {
		p.echo.PushReference(sample)
	}

	output := make([]float32, len(buffer))
	copy(output, buffer)
	p.reverseFrames++

	logrus.WithFields(logrus.Fields{
		"function":       "Processor.ProcessReverseStream",
		"sample_count":   len(output),
		"reverse_frames": p.reverseFrames,
	}).Debug("Reverse stream reference recorded")

	return output, nil
}

// SetStreamDelayMs reports the capture/render delay measured by the
// caller. The value is accepted as-is and surfaces in the statistics
// snapshot as DelayMedianMs.
func (p *Processor) SetStreamDelayMs(delayMs int) {
	logrus.WithFields(logrus.Fields{
		"function": "Processor.SetStreamDelayMs",
		"delay_ms": delayMs,
	}).Debug("Stream delay updated")

	p.stats.DelayMedianMs = delayMs
}

// SetStreamAnalogLevel records the current hardware input level.
//
// Levels outside [0, 255] are clamped, never rejected. The level also
// implies a diagnostic target gain of level/128, independent of the
// AGC's own internal gain.
func (p *Processor) SetStreamAnalogLevel(level int) {
	clamped := level
	if clamped < MinAnalogLevel {
		clamped = MinAnalogLevel
	} else if clamped > MaxAnalogLevel {
		clamped = MaxAnalogLevel
	}
	if clamped != level {
		logrus.WithFields(logrus.Fields{
			"function":  "Processor.SetStreamAnalogLevel",
			"requested": level,
			"clamped":   clamped,
		}).Warn("Analog level out of range, clamped")
	}

	p.analogLevel = clamped
	p.targetGain = float32(clamped) / 128.0

	logrus.WithFields(logrus.Fields{
		"function":     "Processor.SetStreamAnalogLevel",
		"analog_level": p.analogLevel,
		"target_gain":  p.targetGain,
	}).Debug("Analog level updated")
}

// RecommendedStreamAnalogLevel returns a hardware-gain recommendation
// derived from the current AGC envelope, scaled into [0, 255].
func (p *Processor) RecommendedStreamAnalogLevel() int {
	level := int(p.agc.Envelope() * 255.0)
	if level < MinAnalogLevel {
		level = MinAnalogLevel
	} else if level > MaxAnalogLevel {
		level = MaxAnalogLevel
	}
	return level
}

// TargetGain returns the diagnostic gain implied by the analog level
// (level/128). This knob tracks an external hardware-gain
// recommendation and is independent of the gain the AGC applies.
func (p *Processor) TargetGain() float32 {
	return p.targetGain
}

// GetStatistics returns a read-only snapshot of the processor's
// diagnostic state as of the most recent forward-stream call.
func (p *Processor) GetStatistics() Statistics {
	return p.stats
}
