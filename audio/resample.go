// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audtrim/utils"

// Resample converts buf to dstRate using Catmull-Rom cubic interpolation.
// Edge samples are repeated where the interpolation window runs past the
// start or end of a channel. When downsampling a one-pole low-pass filter
// is applied first to reduce aliasing.
func Resample(buf *Buffer, dstRate int) (*Buffer, error) {
	if dstRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if dstRate == buf.sampleRate {
		return buf, nil
	}

	ratio := float64(buf.sampleRate) / float64(dstRate)
	dstFrames := int(int64(buf.Frames()) * int64(dstRate) / int64(buf.sampleRate))

	data := make([][]float32, len(buf.data))
	for c, src := range buf.data {
		if ratio > 1.0 {
			src = lowPass(src, 0.5)
		}

		out := make([]float32, dstFrames)
		for i := range dstFrames {
			out[i] = utils.CubicAt(src, float64(i)*ratio)
		}
		data[c] = out
	}

	return &Buffer{sampleRate: dstRate, data: data}, nil
}

// lowPass is y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0] to
// avoid a warm-up transient.
func lowPass(src []float32, alpha float32) []float32 {
	out := make([]float32, len(src))
	if len(src) == 0 {
		return out
	}

	state := src[0]
	for i, x := range src {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}
