package codec

// int16 PCM conversion helpers for the boundary between codecs (which
// speak little-endian int16) and the processing core (which speaks
// normalized float32).

const pcmScale = 32768.0

// BytesToFloat32 converts little-endian int16 PCM bytes to normalized
// float32 samples in [-1, 1). Trailing odd bytes are ignored.
func BytesToFloat32(data []byte) []float32 {
	sampleCount := len(data) / 2
	samples := make([]float32, sampleCount)
	for i := 0; i < sampleCount; i++ {
		v := int16(data[i*2]) | int16(data[i*2+1])<<8
		samples[i] = float32(v) / pcmScale
	}
	return samples
}

// Float32ToBytes converts normalized float32 samples to little-endian
// int16 PCM bytes, clamping each sample to the int16 range.
func Float32ToBytes(samples []float32) []byte {
	data := make([]byte, len(samples)*2)
	for i, sample := range samples {
		scaled := sample * pcmScale
		if scaled > 32767.0 {
			scaled = 32767.0
		} else if scaled < -32768.0 {
			scaled = -32768.0
		}
		v := int16(scaled)
		data[i*2] = byte(v)
		data[i*2+1] = byte(v >> 8)
	}
	return data
}
