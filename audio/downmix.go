// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages all channels of buf into a single channel.
// A mono buffer is returned as is.
func Downmix(buf *Buffer) *Buffer {
	channels := buf.Channels()
	if channels == 1 {
		return buf
	}

	frames := buf.Frames()
	mono := make([]float32, frames)
	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2: // Stereo (most common)
		left, right := buf.data[0], buf.data[1]
		for f := range frames {
			mono[f] = (left[f] + right[f]) * 0.5
		}
	default:
		for f := range frames {
			var sum float32
			for c := range channels {
				sum += buf.data[c][f]
			}
			mono[f] = sum * inv
		}
	}

	return &Buffer{sampleRate: buf.sampleRate, data: [][]float32{mono}}
}
