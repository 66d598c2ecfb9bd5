// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/utils"
)

// SamplesPerFrame is the layer III frame granularity; blocks submitted to
// the encoder hold this many frames (the last one may be shorter).
const SamplesPerFrame = 1152

// BlockEncoder turns 16-bit PCM blocks into MP3 bytes. EncodeBlock must
// not retain block after it returns. Either method may return an empty
// slice when no complete MP3 frame is available yet.
type BlockEncoder interface {
	EncodeBlock(block []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// Layout selects how the channels of a buffer are fed to the encoder.
type Layout int

const (
	// Interleaved submits frames as ch0, ch1, ... per time index, which is
	// what multi-channel PCM encoders expect.
	Interleaved Layout = iota
	// ChannelSequential submits all of channel 0, then all of channel 1,
	// and so on. Only useful to reproduce files produced that way.
	ChannelSequential
)

func (l Layout) String() string {
	switch l {
	case Interleaved:
		return "interleaved"
	case ChannelSequential:
		return "sequential"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout is the inverse of Layout.String.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "", "interleaved":
		return Interleaved, nil
	case "sequential":
		return ChannelSequential, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

// Encode converts buf to 16-bit PCM blocks of SamplesPerFrame frames,
// feeds them to enc in layout order and flushes it. Every non-empty chunk
// enc returns is kept in submission order, the flush output last. A
// buffer without frames yields an empty Blob and enc is not used.
func Encode(buf *audio.Buffer, enc BlockEncoder, layout Layout) (*Blob, error) {
	blob := &Blob{}
	if buf.Frames() == 0 {
		return blob, nil
	}

	var err error
	switch layout {
	case Interleaved:
		err = encodeInterleaved(buf, enc, blob)
	case ChannelSequential:
		err = encodeSequential(buf, enc, blob)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownLayout, layout)
	}
	if err != nil {
		return nil, err
	}

	out, err := enc.Flush()
	if err != nil {
		return nil, &EncodingError{Block: -1, Err: err}
	}
	blob.Append(out)

	return blob, nil
}

func encodeInterleaved(buf *audio.Buffer, enc BlockEncoder, blob *Blob) error {
	channels := buf.Channels()
	floats := make([]float32, SamplesPerFrame*channels)
	pcm := make([]int16, 0, SamplesPerFrame*channels)

	block := 0
	for offset := 0; offset < buf.Frames(); offset += SamplesPerFrame {
		n := buf.Interleave(floats, offset, SamplesPerFrame)
		pcm = utils.Float32ToInt16Block(pcm, floats[:n])

		if err := submit(enc, blob, pcm, block); err != nil {
			return err
		}
		block++
	}

	return nil
}

func encodeSequential(buf *audio.Buffer, enc BlockEncoder, blob *Blob) error {
	pcm := make([]int16, 0, SamplesPerFrame)

	block := 0
	for c := range buf.Channels() {
		samples := buf.Channel(c)
		for i := 0; i < len(samples); i += SamplesPerFrame {
			end := min(i+SamplesPerFrame, len(samples))
			pcm = utils.Float32ToInt16Block(pcm, samples[i:end])

			if err := submit(enc, blob, pcm, block); err != nil {
				return err
			}
			block++
		}
	}

	return nil
}

func submit(enc BlockEncoder, blob *Blob, pcm []int16, block int) error {
	out, err := enc.EncodeBlock(pcm)
	if err != nil {
		return &EncodingError{Block: block, Err: err}
	}
	blob.Append(out)
	return nil
}

// closeEncoder releases enc if it holds resources.
func closeEncoder(enc BlockEncoder) {
	if c, ok := enc.(io.Closer); ok {
		_ = c.Close()
	}
}
