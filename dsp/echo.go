package dsp

import (
	"github.com/sirupsen/logrus"
)

// Echo suppressor tuning constants.
const (
	// ReferenceWindowDivisor sizes the reference ring buffer: the ring
	// holds sampleRate/ReferenceWindowDivisor samples, i.e. 100 ms of
	// far-end audio.
	ReferenceWindowDivisor = 10

	// referenceActiveThreshold is the far-end magnitude above which the
	// near-end signal is considered contaminated by echo.
	referenceActiveThreshold = 0.1

	// suppressionFactor is applied to the near-end signal while the
	// far-end reference is active.
	suppressionFactor = 0.3
)

// EchoSuppressor attenuates capture audio while the render (far-end)
// reference signal is active.
//
// The most recent 100 ms of reference audio is kept in a fixed-capacity
// ring buffer overwritten oldest-first. Suppression is a level gate on
// the reference: there is no delay alignment, double-talk detection, or
// adaptive filtering, so genuine near-end speech is attenuated whenever
// the far end is loud. That limitation is inherent to the design and
// preserved deliberately; replacing it means a real adaptive canceller.
type EchoSuppressor struct {
	reference  []float32
	writeIndex int
}

// NewEchoSuppressor creates an echo suppressor with a reference ring
// sized to 100 ms at the given sample rate.
//
// Parameters:
//   - sampleRate: stream sample rate in Hz (must be positive)
//
// Returns:
//   - *EchoSuppressor: new suppressor with a silent reference ring
func NewEchoSuppressor(sampleRate int) *EchoSuppressor {
	e := &EchoSuppressor{}
	e.Resize(sampleRate)
	return e
}

// Resize reallocates the reference ring for a new sample rate. The ring
// always holds exactly sampleRate/10 slots; previous reference history
// is discarded.
func (e *EchoSuppressor) Resize(sampleRate int) {
	capacity := sampleRate / ReferenceWindowDivisor
	if capacity < 1 {
		capacity = 1
	}
	e.reference = make([]float32, capacity)
	e.writeIndex = 0

	logrus.WithFields(logrus.Fields{
		"function":    "EchoSuppressor.Resize",
		"sample_rate": sampleRate,
		"capacity":    capacity,
	}).Debug("Echo reference ring resized, history discarded")
}

// PushReference records one far-end sample into the ring buffer,
// overwriting the oldest slot.
func (e *EchoSuppressor) PushReference(sample float32) {
	e.reference[e.writeIndex] = sample
	e.writeIndex = (e.writeIndex + 1) % len(e.reference)
}

// ReferenceAt returns the i-th reference sample counted oldest-first
// from the current write position. The index wraps modulo the ring
// capacity.
func (e *EchoSuppressor) ReferenceAt(i int) float32 {
	return e.reference[(e.writeIndex+i)%len(e.reference)]
}

// RecentReference returns the i-th sample of the most recent n pushed
// reference samples (i in [0, n)). This is the alignment used on the
// forward path: the caller pushes the reverse window first, so forward
// sample i pairs with the i-th sample of that window.
func (e *EchoSuppressor) RecentReference(i, n int) float32 {
	idx := (e.writeIndex - n + i) % len(e.reference)
	if idx < 0 {
		idx += len(e.reference)
	}
	return e.reference[idx]
}

// Capacity returns the number of slots in the reference ring.
func (e *EchoSuppressor) Capacity() int {
	return len(e.reference)
}

// Suppress gates one near-end sample against a reference sample: while
// the reference magnitude exceeds the activity threshold the near-end
// sample is attenuated, otherwise it passes through unchanged.
func (e *EchoSuppressor) Suppress(sample, reference float32) float32 {
	abs := reference
	if abs < 0 {
		abs = -abs
	}
	if abs > referenceActiveThreshold {
		return sample * suppressionFactor
	}
	return sample
}
