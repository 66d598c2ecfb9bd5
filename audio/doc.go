// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio model and the operations on it.
//
// This package contains the core building blocks:
//   - Source interface for streamed, interleaved decoder output
//   - Buffer, an immutable planar PCM buffer
//   - Extract, the time range trimmer
//   - Resample and Downmix for sample rate and channel conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// Decoders produce a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// ReadAll drains a Source into a Buffer:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src)
//
// # Trimming
//
// Extract copies the frames of a [start, end) range, in seconds, into a new
// Buffer. The frame count is floor((end-start)*rate); the partial frame at
// the boundary is dropped, not rounded:
//
//	trimmed, err := audio.Extract(buf, 2.0, 5.0)
//	if errors.Is(err, audio.ErrInvalidRange) {
//	    // start >= end, end past the duration, negative or non-finite bounds
//	}
//
// The input buffer is never modified.
//
// # Resampling and Mixing
//
//	resampled, _ := audio.Resample(buf, 16000) // cubic interpolation
//	mono := audio.Downmix(buf)                 // channel average
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForFile("take.wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other errors
// indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
