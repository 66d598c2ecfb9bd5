// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds fully decoded planar PCM audio. A Buffer is never modified
// after construction; operations such as Extract return a new Buffer.
type Buffer struct {
	sampleRate int
	data       [][]float32
}

// NewBuffer builds a Buffer from per-channel sample slices. The slices are
// owned by the Buffer afterwards and must not be modified by the caller.
func NewBuffer(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrChannelLength
		}
	}

	return &Buffer{sampleRate: sampleRate, data: channels}, nil
}

// NewSilentBuffer allocates a zeroed buffer of the given shape.
func NewSilentBuffer(sampleRate, channels, frames int) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if frames < 0 {
		frames = 0
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return NewBuffer(sampleRate, data)
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return len(b.data) }
func (b *Buffer) Frames() int     { return len(b.data[0]) }

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.sampleRate)
}

// Channel returns the samples of channel c. The slice is shared with the
// buffer and must be treated as read-only.
func (b *Buffer) Channel(c int) []float32 { return b.data[c] }

// Interleave writes frames [offset, offset+n) into dst as interleaved
// samples and returns the number of float32 values written.
func (b *Buffer) Interleave(dst []float32, offset, n int) int {
	channels := len(b.data)
	if rest := b.Frames() - offset; n > rest {
		n = rest
	}
	if room := len(dst) / channels; n > room {
		n = room
	}
	if n <= 0 {
		return 0
	}

	for f := range n {
		base := f * channels
		for c := range channels {
			dst[base+c] = b.data[c][offset+f]
		}
	}

	return n * channels
}

// Source exposes the buffer as an interleaved stream.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.buf.Channels() != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= s.buf.Frames() {
		return 0, io.EOF
	}

	n := s.buf.Interleave(dst, s.pos, len(dst)/s.buf.Channels())
	s.pos += n / s.buf.Channels()

	if s.pos >= s.buf.Frames() {
		return n, io.EOF
	}

	return n, nil
}

const maxEmptyReads = 100

// ReadAll drains src into a Buffer, splitting the interleaved stream into
// channels. A trailing partial frame is dropped. src is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	data := make([][]float32, channels)
	buf := make([]float32, 4096*channels)
	// pending carries samples of a frame split across two reads
	pending := make([]float32, 0, channels)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n == 0 && err == nil {
			empty++
			if empty > maxEmptyReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		empty = 0

		if n > 0 {
			samples := buf[:n]
			if len(pending) > 0 {
				need := channels - len(pending)
				if need > len(samples) {
					need = len(samples)
				}
				pending = append(pending, samples[:need]...)
				samples = samples[need:]
				if len(pending) == channels {
					for c := range channels {
						data[c] = append(data[c], pending[c])
					}
					pending = pending[:0]
				}
			}

			frames := len(samples) / channels
			for f := range frames {
				base := f * channels
				for c := range channels {
					data[c] = append(data[c], samples[base+c])
				}
			}
			pending = append(pending, samples[frames*channels:]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	for c := range data {
		if data[c] == nil {
			data[c] = []float32{}
		}
	}

	return NewBuffer(src.SampleRate(), data)
}
