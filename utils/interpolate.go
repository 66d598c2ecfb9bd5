// SPDX-License-Identifier: EPL-2.0

package utils

// CubicAt samples s at the fractional index pos with a Catmull-Rom spline
// through s[i-1..i+2], i = floor(pos). Indices outside s repeat the nearest
// edge sample. s must not be empty.
func CubicAt(s []float32, pos float64) float32 {
	i := int(pos)
	if pos < 0 {
		i = 0
		pos = 0
	}
	frac := float32(pos - float64(i))

	return catmullRom(clampedAt(s, i-1), clampedAt(s, i), clampedAt(s, i+1), clampedAt(s, i+2), frac)
}

func clampedAt(s []float32, i int) float32 {
	switch {
	case i < 0:
		return s[0]
	case i >= len(s):
		return s[len(s)-1]
	default:
		return s[i]
	}
}

// catmullRom returns y1 at x=0 and y2 at x=1.
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
