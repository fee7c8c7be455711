package audioproc

import "errors"

// Sentinel errors for audioproc package operations.
// These errors enable reliable error classification using errors.Is().
//
// Only buffer-shape problems are surfaced as errors. Out-of-range
// numeric configuration (analog level, noise suppression level) is
// silently clamped instead; the two policies are intentionally
// separate lanes and must not be unified.

// Stream validation errors.
var (
	// ErrEmptyBuffer indicates a processing call received no samples.
	ErrEmptyBuffer = errors.New("empty audio buffer")

	// ErrInvalidShape indicates the buffer/channel combination does not
	// describe a valid mono or interleaved-stereo frame.
	ErrInvalidShape = errors.New("invalid buffer shape")

	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
