// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// TimeRange is a [Start, End) span in seconds.
type TimeRange struct {
	Start float64
	End   float64
}

// Validate checks that the range is finite, non-negative, non-empty and
// ends no later than duration.
func (r TimeRange) Validate(duration float64) error {
	fail := func(reason string) error {
		return &InvalidRangeError{Start: r.Start, End: r.End, Duration: duration, Reason: reason}
	}

	switch {
	case math.IsNaN(r.Start) || math.IsInf(r.Start, 0):
		return fail("start is not a finite number")
	case math.IsNaN(r.End) || math.IsInf(r.End, 0):
		return fail("end is not a finite number")
	case r.Start < 0:
		return fail("start is negative")
	case r.Start >= r.End:
		return fail("start must be before end")
	case r.End > duration:
		return fail("end is past the end of the audio")
	}

	return nil
}

// Frames returns the number of whole frames the range covers at
// sampleRate. The partial frame at the boundary is dropped.
func (r TimeRange) Frames(sampleRate int) int {
	return int(math.Floor((r.End - r.Start) * float64(sampleRate)))
}

// Offset returns the index of the first frame of the range.
func (r TimeRange) Offset(sampleRate int) int {
	return int(math.Floor(r.Start * float64(sampleRate)))
}

// Extract returns a new buffer holding the samples of buf in [start, end).
// The frame count is floor((end-start)*rate) and copying starts at
// floor(start*rate) on every channel. buf is not modified.
func Extract(buf *Buffer, start, end float64) (*Buffer, error) {
	r := TimeRange{Start: start, End: end}
	if err := r.Validate(buf.Duration()); err != nil {
		return nil, err
	}

	offset := r.Offset(buf.sampleRate)
	frames := r.Frames(buf.sampleRate)

	// floor(start*rate)+floor((end-start)*rate) can overshoot by one frame
	// when end lands exactly on the buffer end.
	if rest := buf.Frames() - offset; frames > rest {
		frames = max(rest, 0)
	}

	data := make([][]float32, len(buf.data))
	for c, src := range buf.data {
		data[c] = make([]float32, frames)
		copy(data[c], src[offset:offset+frames])
	}

	return &Buffer{sampleRate: buf.sampleRate, data: data}, nil
}
