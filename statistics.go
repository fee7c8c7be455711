package audioproc

// Statistics is a read-only snapshot of the processor's diagnostic
// state, refreshed after every forward-stream call.
//
// The echo figures are fixed heuristic placeholders inherited from the
// level-gated suppressor design; they become meaningful only with a
// true adaptive canceller, which is out of scope.
type Statistics struct {
	// EchoReturnLoss is the nominal ERL estimate in dB.
	EchoReturnLoss float32

	// EchoReturnLossEnhancement is the nominal ERLE estimate in dB.
	EchoReturnLossEnhancement float32

	// DelayMedianMs is the reported capture/render delay in
	// milliseconds, as last set via SetStreamDelayMs.
	DelayMedianMs int

	// ResidualEchoLikelihood is the nominal residual echo probability
	// in [0, 1].
	ResidualEchoLikelihood float32

	// Envelope is the AGC's current smoothed magnitude estimate.
	Envelope float32

	// CurrentGain is the gain the AGC applied to the most recently
	// processed sample.
	CurrentGain float32
}

// defaultStatistics returns the snapshot a fresh processor reports
// before any audio has been processed.
func defaultStatistics() Statistics {
	return Statistics{
		EchoReturnLoss:            -20.0,
		EchoReturnLossEnhancement: 15.0,
		DelayMedianMs:             50,
		ResidualEchoLikelihood:    0.2,
		Envelope:                  0.0,
		CurrentGain:               1.0,
	}
}
