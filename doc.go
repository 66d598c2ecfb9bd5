// SPDX-License-Identifier: EPL-2.0

// Package audtrim cuts a time range out of an audio file and exports the
// result as MP3 or WAV.
//
// # Supported Formats
//
// NewRegistry wires the decoders under formats/:
//   - WAV (16, 24 and 32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (8 to 32-bit PCM) via formats/aiff
//   - FLAC via formats/flac
//
// # Quick Start
//
// A Session holds the buffer being edited:
//
//	s := audtrim.NewSession(audtrim.WithLogger(logger))
//
//	file, _ := os.Open("talk.wav")
//	if err := s.Load(ctx, file.Name(), file); err != nil {
//	    return err
//	}
//
//	// keep seconds 2 to 5
//	if _, err := s.Trim(2, 5); err != nil {
//	    return err
//	}
//
//	out, _ := os.Create("audio_edite.mp3")
//	_, err := s.Export(ctx, out, audtrim.ExportOptions{BitrateKbps: 128})
//
// Trim validates the range against the current duration and leaves the
// buffer untouched when it is rejected. Ranges are in seconds and the cut
// starts at floor(start × rate) for floor((end-start) × rate) frames.
//
// # Decoding
//
// Load is built on Decode, which runs the decoder in its own goroutine and
// delivers a DecodeResult on a channel. When several loads overlap, only
// the one started last installs its buffer; earlier ones return
// ErrSuperseded.
//
// # Exporting
//
// MP3 export goes through mp3.Encode and an EncoderFactory, by default an
// ffmpeg process running libmp3lame. ExportOptions can also downmix to
// mono, resample, or switch to WAV which needs no external tools.
//
// # Observing Sessions
//
// WithRecorder reports every Load, Trim and Export with its outcome. The
// audtrim command feeds them to Prometheus collectors.
//
// # Lower Level API
//
// The audio package works on buffers directly:
//
//	buf, _ := audio.ReadAll(src)
//	cut, err := audio.Extract(buf, 2, 5)
//	blob, err := mp3.Encode(cut, encoder, mp3.Interleaved)
package audtrim
