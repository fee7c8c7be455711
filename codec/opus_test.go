package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewReferenceDecoderValidation covers target-rate validation.
func TestNewReferenceDecoderValidation(t *testing.T) {
	_, err := NewReferenceDecoder(0)
	assert.Error(t, err, "zero target rate should be rejected")

	_, err = NewReferenceDecoder(-16000)
	assert.Error(t, err, "negative target rate should be rejected")

	d, err := NewReferenceDecoder(16000)
	require.NoError(t, err)
	assert.Equal(t, 16000, d.TargetRate())
}

// TestDecodeFrameEmpty verifies an empty frame is rejected before
// touching the decoder state.
func TestDecodeFrameEmpty(t *testing.T) {
	d, err := NewReferenceDecoder(16000)
	require.NoError(t, err)

	_, err = d.DecodeFrame(nil)
	assert.Error(t, err)

	_, err = d.DecodeFrame([]byte{})
	assert.Error(t, err)
}
