// Package audioproc implements a real-time, stateful audio-enhancement
// pipeline for voice capture.
//
// The pipeline takes interleaved float32 PCM buffers from a capture
// path (microphone) and a render/reference path (speaker) and produces
// cleaned, level-normalized capture audio suitable for transmission or
// recording.
//
// # Architecture Overview
//
// Forward (capture) samples flow through the processing chain:
//
//	Capture: PCM Input → High-Pass → Noise Gate → AGC → Echo Suppression → Clamp → PCM Output
//	Render:  PCM Input → Reference Ring Buffer (recorded, not modified)
//
// Reverse (render) samples are recorded into a 100 ms reference ring
// buffer that drives the echo-suppression decision on the forward path.
// The reverse stream for a given time window must be pushed before the
// corresponding forward stream is processed; that ordering is a
// caller-enforced protocol.
//
// # Getting Started
//
// Create a processor, optionally apply a configuration, and feed it
// buffers:
//
//	processor := audioproc.NewProcessor()
//
//	config := audioproc.DefaultConfig()
//	config.NoiseSuppression.Level = dsp.NoiseLevelVeryHigh
//	config.ApplyTo(processor)
//
//	// Record the far-end reference first, then enhance the capture.
//	_, err := processor.ProcessReverseStream(farEnd, 16000, 1)
//	cleaned, err := processor.ProcessStream(nearEnd, 16000, 1)
//
//	stats := processor.GetStatistics()
//	fmt.Printf("envelope=%.3f gain=%.2f\n", stats.Envelope, stats.CurrentGain)
//
// # Concurrency
//
// A Processor is a single-threaded, call-and-return object: every
// operation runs to completion on the calling goroutine and all mutable
// state (filter history, AGC envelope, echo ring) is owned exclusively
// by one instance. Concurrent calls into the same instance must be
// serialized externally; use one Processor per audio session.
//
// # Error Handling
//
// Processing calls fail only on malformed buffer shape (empty buffer,
// invalid channel layout, non-positive sample rate) and leave the
// processor state untouched. Out-of-range numeric configuration is
// clamped silently instead of rejected; the two policies are distinct
// on purpose.
package audioproc
