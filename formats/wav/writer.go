// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/utils"
)

const writeChunkFrames = 8192

// Write encodes buf as a 16-bit PCM WAV file through go-audio/wav. The
// header sizes are patched on close, which is why w must be seekable; use
// WriteWAV16 for pipes.
func Write(w io.WriteSeeker, buf *audio.Buffer) error {
	channels := buf.Channels()
	enc := gowav.NewEncoder(w, buf.SampleRate(), 16, channels, formatPCM)

	interleaved := make([]float32, writeChunkFrames*channels)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  buf.SampleRate(),
		},
		Data:           make([]int, 0, len(interleaved)),
		SourceBitDepth: 16,
	}

	for offset := 0; offset < buf.Frames(); offset += writeChunkFrames {
		n := buf.Interleave(interleaved, offset, writeChunkFrames)

		intBuf.Data = intBuf.Data[:n]
		for i, x := range interleaved[:n] {
			intBuf.Data[i] = int(utils.Float32ToInt16(x))
		}

		if err := enc.Write(intBuf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// WriteWAV16 writes interleaved 16-bit PCM samples as a WAV stream. The
// sizes are known up front so w does not need to seek.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 || len(samples)%channels != 0 {
		return ErrInvalidChannels
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	buf := make([]byte, min(len(samples), writeChunkFrames)*2)
	for i := 0; i < len(samples); i += writeChunkFrames {
		chunk := samples[i:min(i+writeChunkFrames, len(samples))]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	return nil
}

// Encode converts buf to interleaved 16-bit samples and writes it with
// WriteWAV16.
func Encode(w io.Writer, buf *audio.Buffer) error {
	channels := buf.Channels()
	interleaved := make([]float32, buf.Frames()*channels)
	buf.Interleave(interleaved, 0, buf.Frames())

	return WriteWAV16(w, buf.SampleRate(), channels, utils.Float32ToInt16Block(nil, interleaved))
}
