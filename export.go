// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/formats/mp3"
	"github.com/ik5/audtrim/formats/wav"
)

const (
	FormatMP3 = "mp3"
	FormatWAV = "wav"

	// formatUnknown is reported to the Recorder for unsupported formats.
	formatUnknown = "unknown"
)

// EncoderFactory creates the block encoder used for an MP3 export.
type EncoderFactory = mp3.NewEncoderFunc

// ExportOptions control Session.Export. The zero value exports 128 kbps
// interleaved MP3 at the buffer's own rate and channel count.
type ExportOptions struct {
	// Format is FormatMP3 (default) or FormatWAV.
	Format      string
	BitrateKbps int
	Layout      mp3.Layout
	// Mono downmixes to a single channel before encoding.
	Mono bool
	// SampleRate resamples before encoding when set.
	SampleRate int
	FFmpegPath string
	// NewEncoder defaults to mp3.NewLameBlockEncoder.
	NewEncoder EncoderFactory
}

// Export encodes the current buffer and writes it to w. It returns the
// number of bytes written. An MP3 export of an empty buffer writes nothing.
func (s *Session) Export(ctx context.Context, w io.Writer, opts ExportOptions) (n int64, err error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatMP3
	}

	supported := format == FormatMP3 || format == FormatWAV

	started := time.Now()
	defer func() {
		label := format
		if !supported {
			label = formatUnknown
		}
		s.rec.ExportDone(label, n, time.Since(started), err)
	}()

	buf := s.Buffer()
	if buf == nil {
		return 0, ErrNoBuffer
	}
	if !supported {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedExport, opts.Format)
	}

	buf, err = prepare(buf, opts)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("exporting",
		"format", format,
		"frames", buf.Frames(),
		"sample_rate", buf.SampleRate(),
		"channels", buf.Channels(),
	)

	if format == FormatMP3 {
		n, err = exportMP3(ctx, w, buf, opts)
	} else {
		cw := &countingWriter{w: w}
		err = wav.Encode(cw, buf)
		n = cw.n
	}
	if err != nil {
		s.logger.Error("export failed", "format", format, "error", err)
		return n, err
	}

	s.logger.Info("audio exported", "format", format, "bytes", n)

	return n, nil
}

func prepare(buf *audio.Buffer, opts ExportOptions) (*audio.Buffer, error) {
	if opts.Mono {
		buf = audio.Downmix(buf)
	}
	if opts.SampleRate > 0 && opts.SampleRate != buf.SampleRate() {
		out, err := audio.Resample(buf, opts.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("resampling to %d Hz: %w", opts.SampleRate, err)
		}
		buf = out
	}
	return buf, nil
}

func exportMP3(ctx context.Context, w io.Writer, buf *audio.Buffer, opts ExportOptions) (int64, error) {
	blob, err := mp3.EncodeBuffer(ctx, buf, mp3.Options{
		BitrateKbps: opts.BitrateKbps,
		Layout:      opts.Layout,
		FFmpegPath:  opts.FFmpegPath,
		NewEncoder:  opts.NewEncoder,
	})
	if err != nil {
		return 0, err
	}

	return blob.WriteTo(w)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
