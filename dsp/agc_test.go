package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAutoGainCoefficientsMatchFormula verifies the ballistics
// derivation coeff = exp(-1/(time*rate)) for attack and release.
func TestAutoGainCoefficientsMatchFormula(t *testing.T) {
	rates := []int{8000, 16000, 48000}

	for _, rate := range rates {
		a := NewAutoGain(rate)
		attack, release := a.Coefficients()

		wantAttack := math.Exp(-1.0 / (AttackTimeSeconds * float64(rate)))
		wantRelease := math.Exp(-1.0 / (ReleaseTimeSeconds * float64(rate)))

		assert.InDelta(t, wantAttack, float64(attack), 1e-6, "attack at %d Hz", rate)
		assert.InDelta(t, wantRelease, float64(release), 1e-6, "release at %d Hz", rate)
		assert.Less(t, wantAttack, wantRelease, "attack must be faster than release")
	}
}

// TestAutoGainConvergesToTarget drives the envelope with a constant
// full-scale signal until it converges and checks the output settles
// within 10% of the target level.
func TestAutoGainConvergesToTarget(t *testing.T) {
	a := NewAutoGain(16000)

	var out float32
	for i := 0; i < 48000; i++ { // three seconds, well past convergence
		out = a.Apply(1.0)
	}

	assert.InDelta(t, DefaultTargetLevel, float64(out), DefaultTargetLevel*0.1,
		"converged output should sit near the target level")
	assert.InDelta(t, 1.0, float64(a.Envelope()), 0.01,
		"envelope should converge to the input magnitude")
}

// TestAutoGainSilenceKeepsUnityGain verifies that silence never moves
// the gain away from unity.
func TestAutoGainSilenceKeepsUnityGain(t *testing.T) {
	a := NewAutoGain(16000)

	for i := 0; i < 1000; i++ {
		require.Equal(t, float32(0), a.Apply(0))
	}

	assert.Equal(t, float32(0), a.Envelope())
	assert.Equal(t, float32(1.0), a.LastGain())
}

// TestAutoGainGainClampHigh verifies the gain ceiling: a very quiet
// signal would imply a huge makeup gain, which must be clamped to
// MaxGain.
func TestAutoGainGainClampHigh(t *testing.T) {
	a := NewAutoGain(16000)

	for i := 0; i < 48000; i++ {
		a.Apply(0.002)
	}

	assert.Equal(t, float32(MaxGain), a.LastGain(),
		"gain for a near-silent signal should sit at the ceiling")
}

// TestAutoGainEnvelopeNonNegative checks the envelope invariant across
// a sign-alternating signal.
func TestAutoGainEnvelopeNonNegative(t *testing.T) {
	a := NewAutoGain(16000)

	for i := 0; i < 4000; i++ {
		sample := float32(0.7)
		if i%2 == 1 {
			sample = -0.7
		}
		a.Apply(sample)
		require.GreaterOrEqual(t, a.Envelope(), float32(0))
	}
}

// TestAutoGainSampleRateRoundTrip verifies that reconfiguring to
// another rate and back restores numerically equal coefficients.
func TestAutoGainSampleRateRoundTrip(t *testing.T) {
	a := NewAutoGain(16000)
	origAttack, origRelease := a.Coefficients()

	a.SetSampleRate(8000)
	changedAttack, _ := a.Coefficients()
	require.NotEqual(t, origAttack, changedAttack)

	a.SetSampleRate(16000)
	attack, release := a.Coefficients()
	assert.Equal(t, origAttack, attack)
	assert.Equal(t, origRelease, release)
}

// TestAutoGainSampleRatePreservesEnvelope verifies a rate change does
// not reset the running envelope.
func TestAutoGainSampleRatePreservesEnvelope(t *testing.T) {
	a := NewAutoGain(16000)
	for i := 0; i < 1600; i++ {
		a.Apply(0.5)
	}
	envelope := a.Envelope()
	require.Greater(t, envelope, float32(0))

	a.SetSampleRate(48000)
	assert.Equal(t, envelope, a.Envelope(), "envelope should survive reconfiguration")
}

func BenchmarkAutoGainApply(b *testing.B) {
	a := NewAutoGain(48000)
	for i := 0; i < b.N; i++ {
		a.Apply(0.5)
	}
}
