// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767. The product
// is truncated toward zero, so 1.0 maps to 32767 and -1.0 to -32767.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToInt16Block converts src into dst and returns dst[:len(src)].
// dst is grown when it is too small.
func Float32ToInt16Block(dst []int16, src []float32) []int16 {
	if cap(dst) < len(src) {
		dst = make([]int16, len(src))
	}
	dst = dst[:len(src)]

	for i, x := range src {
		dst[i] = Float32ToInt16(x)
	}

	return dst
}
