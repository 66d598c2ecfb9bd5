// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"context"
	"io"

	"github.com/ik5/audtrim/audio"
)

// DecodeResult is the outcome of Decode. Exactly one of Buffer and Err is
// set.
type DecodeResult struct {
	Buffer *audio.Buffer
	Err    error
}

// Decode picks a decoder for name from reg and decodes r into a Buffer in
// a separate goroutine. The returned channel receives exactly one result
// and is then closed. Cancelling ctx stops the decode between reads.
//
// Failures are reported as *DecodeError, including an unknown extension.
func Decode(ctx context.Context, reg *audio.Registry, name string, r io.Reader) <-chan DecodeResult {
	out := make(chan DecodeResult, 1)

	go func() {
		defer close(out)

		buf, err := decode(ctx, reg, name, r)
		if err != nil {
			out <- DecodeResult{Err: &DecodeError{Name: name, Err: err}}
			return
		}
		out <- DecodeResult{Buffer: buf}
	}()

	return out
}

func decode(ctx context.Context, reg *audio.Registry, name string, r io.Reader) (*audio.Buffer, error) {
	dec, err := reg.ForFile(name)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return audio.ReadAll(&ctxSource{Source: src, ctx: ctx})
}

// ctxSource fails reads once ctx is done.
type ctxSource struct {
	audio.Source
	ctx context.Context
}

func (s *ctxSource) ReadSamples(dst []float32) (int, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}
	return s.Source.ReadSamples(dst)
}
