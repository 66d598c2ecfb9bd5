// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// Decoding goes through github.com/go-audio/wav and accepts 16, 24 and
// 32-bit integer PCM. Readers that cannot seek are buffered in memory
// first, since the RIFF chunks are located by seeking.
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Write stores an audio.Buffer as 16-bit PCM with the go-audio encoder and
// needs an io.WriteSeeker. WriteWAV16 and Encode write the header up front
// and work with any io.Writer, including pipes and HTTP responses.
package wav
