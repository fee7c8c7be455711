// Package codec adapts encoded far-end audio onto the audioproc
// reference path.
//
// A render signal usually arrives as Opus frames from the transport
// layer. ReferenceDecoder turns such frames into normalized float32 PCM
// at the processor's sample rate so the result can be fed directly to
// Processor.ProcessReverseStream.
package codec

import (
	"fmt"

	"github.com/pion/opus"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/audioproc/dsp"
)

// maxFrameSamples bounds the decode buffer: 40 ms at 48 kHz covers
// every standard Opus frame duration.
const maxFrameSamples = 1920

// ReferenceDecoder decodes far-end Opus frames into reference PCM.
//
// The decoder is stateful (Opus frames depend on decoder history) and
// keeps a lazily created resampler for converting the decoded 48 kHz
// family rates to the processing rate. Use one ReferenceDecoder per
// far-end stream.
type ReferenceDecoder struct {
	decoder    opus.Decoder
	resampler  *dsp.Resampler
	targetRate int
}

// NewReferenceDecoder creates a decoder that produces reference PCM at
// the given target sample rate.
//
// Parameters:
//   - targetRate: the processor's stream sample rate in Hz
//
// Returns:
//   - *ReferenceDecoder: new decoder instance
//   - error: validation error for a non-positive target rate
func NewReferenceDecoder(targetRate int) (*ReferenceDecoder, error) {
	logrus.WithFields(logrus.Fields{
		"function":    "NewReferenceDecoder",
		"target_rate": targetRate,
	}).Info("Creating reference decoder")

	if targetRate <= 0 {
		logrus.WithFields(logrus.Fields{
			"function":    "NewReferenceDecoder",
			"target_rate": targetRate,
			"error":       "invalid target rate",
		}).Error("Reference decoder validation failed")
		return nil, fmt.Errorf("invalid target rate: %d", targetRate)
	}

	return &ReferenceDecoder{
		decoder:    opus.NewDecoder(),
		targetRate: targetRate,
	}, nil
}

// DecodeFrame decodes one Opus frame into normalized float32 PCM at the
// decoder's target rate.
//
// Stereo frames are downmixed by dropping the second channel: the
// reference path is channel-agnostic, so one channel of far-end energy
// is enough to drive the suppression decision.
//
// Parameters:
//   - frame: one encoded Opus frame
//
// Returns:
//   - []float32: decoded reference samples at the target rate
//   - error: decode or resampling failure
func (d *ReferenceDecoder) DecodeFrame(frame []byte) ([]float32, error) {
	logrus.WithFields(logrus.Fields{
		"function":   "ReferenceDecoder.DecodeFrame",
		"frame_size": len(frame),
	}).Debug("Decoding far-end frame")

	if len(frame) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "ReferenceDecoder.DecodeFrame",
			"error":    "empty frame",
		}).Error("Frame validation failed")
		return nil, fmt.Errorf("empty opus frame")
	}

	output := make([]byte, maxFrameSamples*2)
	bandwidth, isStereo, err := d.decoder.Decode(frame, output)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "ReferenceDecoder.DecodeFrame",
			"error":    err.Error(),
		}).Error("Opus decode failed")
		return nil, fmt.Errorf("opus decode failed: %w", err)
	}

	samples := BytesToFloat32(output)
	if isStereo {
		mono := make([]float32, len(samples)/2)
		for i := range mono {
			mono[i] = samples[i*2]
		}
		samples = mono
	}

	sourceRate := bandwidth.SampleRate()

	logrus.WithFields(logrus.Fields{
		"function":    "ReferenceDecoder.DecodeFrame",
		"bandwidth":   bandwidth.String(),
		"is_stereo":   isStereo,
		"source_rate": sourceRate,
		"target_rate": d.targetRate,
		"samples":     len(samples),
	}).Debug("Far-end frame decoded")

	if sourceRate == d.targetRate {
		return samples, nil
	}

	if d.resampler == nil || d.resampler.InputRate() != sourceRate {
		resampler, err := dsp.NewResampler(dsp.ResamplerConfig{
			InputRate:  sourceRate,
			OutputRate: d.targetRate,
			Channels:   1,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "ReferenceDecoder.DecodeFrame",
				"error":    err.Error(),
			}).Error("Failed to create reference resampler")
			return nil, fmt.Errorf("failed to create resampler: %w", err)
		}
		d.resampler = resampler
	}

	resampled, err := d.resampler.Resample(samples)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "ReferenceDecoder.DecodeFrame",
			"error":    err.Error(),
		}).Error("Reference resampling failed")
		return nil, fmt.Errorf("reference resampling failed: %w", err)
	}

	return resampled, nil
}

// TargetRate returns the sample rate the decoder produces.
func (d *ReferenceDecoder) TargetRate() int {
	return d.targetRate
}
