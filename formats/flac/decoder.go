// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameReader is the part of flac.Stream the source needs, to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source interleaves the per-channel subframes of each FLAC frame.
type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	bitDepth   int

	// pending holds interleaved samples of the last frame not yet returned
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("closing flac stream: %w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.nextFrame(); err != nil {
				if err == io.EOF {
					s.eof = true
					break
				}
				return written, err
			}
			continue
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if s.eof && len(s.pending) == 0 {
		return written, io.EOF
	}

	return written, nil
}

func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("flac frame has %d subframes, stream has %d channels",
			len(f.Subframes), s.channels)
	}

	bitDepth := s.bitDepth
	if f.BitsPerSample != 0 {
		bitDepth = int(f.BitsPerSample)
	}

	frames := len(f.Subframes[0].Samples)
	out := s.pending[:0]
	if cap(out) < frames*s.channels {
		out = make([]float32, 0, frames*s.channels)
	}

	for i := range frames {
		for _, sub := range f.Subframes {
			out = append(out, utils.IntToFloat32(int(sub.Samples[i]), bitDepth))
		}
	}
	s.pending = out

	return nil
}

// Decoder reads FLAC streams through mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("opening flac stream: %w", err)
	}

	if stream.Info.NChannels == 0 {
		stream.Close()
		return nil, ErrNoChannels
	}

	return &source{
		stream:     stream,
		sampleRate: int(stream.Info.SampleRate),
		channels:   int(stream.Info.NChannels),
		bitDepth:   int(stream.Info.BitsPerSample),
	}, nil
}
