// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams and encodes audio buffers to MP3.
//
// # Decoding
//
// Decoder wraps github.com/hajimehoshi/go-mp3. The decoded stream is always
// 16-bit stereo, so the returned audio.Source reports two channels even for
// mono files.
//
//	src, err := mp3.Decoder{}.Decode(file)
//
// # Encoding
//
// Encode is the adapter between a planar float buffer and a block based
// MP3 encoder. Samples are clamped to [-1, 1], scaled by 32767 and
// truncated, then submitted in blocks of SamplesPerFrame frames:
//
//	enc, _ := mp3.NewLameEncoder(ctx, mp3.LameConfig{
//	    SampleRate:  buf.SampleRate(),
//	    Channels:    buf.Channels(),
//	    BitrateKbps: 128,
//	})
//	defer enc.Close()
//	blob, err := mp3.Encode(buf, enc, mp3.Interleaved)
//
// EncodeBuffer does the same in one call. LameEncoder runs ffmpeg with
// libmp3lame as a child process, so ffmpeg must be installed.
//
// Every block encoder failure is returned as an *EncodingError, which
// matches ErrEncoding with errors.Is.
//
// # Channel layout
//
// Interleaved is the default and the one encoders expect. ChannelSequential
// feeds every channel one after another; it exists to reproduce files made
// that way and produces garbled audio for more than one channel.
package mp3
