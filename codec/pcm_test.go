package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBytesToFloat32KnownValues checks the int16 little-endian
// normalization against hand-computed values.
func TestBytesToFloat32KnownValues(t *testing.T) {
	data := []byte{
		0x00, 0x00, // 0
		0x00, 0x80, // -32768 -> -1.0
		0xFF, 0x7F, // 32767 -> ~0.99997
		0x00, 0x40, // 16384 -> 0.5
	}

	samples := BytesToFloat32(data)
	require.Len(t, samples, 4)

	assert.Equal(t, float32(0), samples[0])
	assert.Equal(t, float32(-1.0), samples[1])
	assert.InDelta(t, 1.0, float64(samples[2]), 1e-4)
	assert.Equal(t, float32(0.5), samples[3])
}

// TestBytesToFloat32OddTail verifies a trailing odd byte is ignored.
func TestBytesToFloat32OddTail(t *testing.T) {
	samples := BytesToFloat32([]byte{0x00, 0x40, 0xAB})
	require.Len(t, samples, 1)
	assert.Equal(t, float32(0.5), samples[0])
}

// TestFloat32ToBytesClamps verifies out-of-range samples clamp to the
// int16 limits instead of wrapping.
func TestFloat32ToBytesClamps(t *testing.T) {
	data := Float32ToBytes([]float32{2.0, -2.0})
	require.Len(t, data, 4)

	high := int16(data[0]) | int16(data[1])<<8
	low := int16(data[2]) | int16(data[3])<<8
	assert.Equal(t, int16(32767), high)
	assert.Equal(t, int16(-32768), low)
}

// TestPCMConversionRoundTrip verifies in-range samples survive a
// float → bytes → float round trip within quantization error.
func TestPCMConversionRoundTrip(t *testing.T) {
	input := []float32{0, 0.25, -0.25, 0.9, -0.9}

	out := BytesToFloat32(Float32ToBytes(input))
	require.Len(t, out, len(input))
	for i := range input {
		assert.InDelta(t, float64(input[i]), float64(out[i]), 1.0/32768.0, "sample %d", i)
	}
}
