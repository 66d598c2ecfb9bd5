// SPDX-License-Identifier: EPL-2.0

package utils

// IntToFloat32 normalizes a signed PCM sample of the given bit depth to
// [-1, 1). Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// FullScale returns 2^(bitDepth-1), the magnitude of the most negative
// sample at that depth.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		if bitDepth > 0 && bitDepth < 32 {
			return float32(int64(1) << (bitDepth - 1))
		}
		return 32768.0 // Default to 16-bit
	}
}
