// Package dsp provides the per-sample signal processing stages used by
// the audioproc capture pipeline.
//
// Each stage is a small mutable struct owned by exactly one processing
// session. Stages keep their own history (filter taps, envelope,
// reference ring) across calls so that buffer boundaries are inaudible;
// none of them hold global state.
//
// # Stages
//
//   - HighPass: single-pole IIR high-pass removing DC and sub-120 Hz rumble
//   - NoiseGate: static amplitude gate with four suppression levels
//   - AutoGain: asymmetric envelope follower driving a clamped makeup gain
//   - EchoSuppressor: reference ring buffer with a level-gated attenuator
//   - Resampler: linear-interpolation sample rate converter for the
//     reference path
//
// All stages operate on single-precision samples normalized to [-1, 1],
// one sample at a time, with no notion of channel position. Processing
// order and enable/disable policy are owned by the audioproc.Processor.
package dsp
