// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audtrim/audio"
)

// go-mp3 always produces 16-bit little-endian stereo
const decodedChannels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	odd        []byte // a dangling byte from a read that split a sample
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return decodedChannels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst)*2 - len(s.odd)
	if cap(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}
	s.buf = s.buf[:len(dst)*2]
	copy(s.buf, s.odd)

	n, err := s.dec.Read(s.buf[len(s.odd) : len(s.odd)+bytesNeeded])
	n += len(s.odd)
	s.odd = s.odd[:0]

	samples := n / 2
	if n%2 == 1 {
		s.odd = append(s.odd, s.buf[n-1])
	}

	for i := range samples {
		val := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(val) / 32768.0
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
	if err == io.EOF && samples == 0 {
		return 0, io.EOF
	}

	return samples, err
}

// Decoder reads MPEG-1/2 layer III streams through go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
		odd:        make([]byte, 0, 1),
	}, nil
}
