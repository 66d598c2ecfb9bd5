// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/ik5/audtrim/audio"
)

// DefaultFFmpegPath is looked up in PATH when LameConfig.FFmpegPath is empty.
const DefaultFFmpegPath = "ffmpeg"

// LameConfig describes the PCM fed to a LameEncoder and the MP3 it emits.
type LameConfig struct {
	FFmpegPath  string
	SampleRate  int
	Channels    int
	BitrateKbps int
}

func (c LameConfig) args() []string {
	return []string{
		"-hide_banner",
		"-f", "s16le",
		"-ar", strconv.Itoa(c.SampleRate),
		"-ac", strconv.Itoa(c.Channels),
		"-i", "pipe:0",
		"-codec:a", "libmp3lame",
		"-b:a", strconv.Itoa(c.BitrateKbps) + "k",
		"-f", "mp3",
		"-id3v2_version", "0",
		"-write_xing", "0",
		"-loglevel", "error",
		"pipe:1",
	}
}

// LameEncoder is a BlockEncoder backed by an ffmpeg child process using
// libmp3lame. PCM goes in through stdin; whatever MP3 data ffmpeg has
// produced so far is handed back on each call.
type LameEncoder struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	out    *drainBuffer
	stderr bytes.Buffer

	pcm      []byte
	finished bool
}

// NewLameEncoder starts ffmpeg. The process is killed when ctx is done.
func NewLameEncoder(ctx context.Context, cfg LameConfig) (*LameEncoder, error) {
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrEncoding, cfg.SampleRate, cfg.Channels)
	}
	if err := ValidBitrate(cfg.BitrateKbps); err != nil {
		return nil, err
	}

	path := cfg.FFmpegPath
	if path == "" {
		path = DefaultFFmpegPath
	}

	e := &LameEncoder{out: &drainBuffer{}}
	e.cmd = exec.CommandContext(ctx, path, cfg.args()...)
	e.cmd.Stdout = e.out
	e.cmd.Stderr = &e.stderr

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: ffmpeg stdin pipe: %w", ErrEncoding, err)
	}
	e.stdin = stdin

	if err := e.cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: starting ffmpeg: %w", ErrEncoding, err)
	}

	return e, nil
}

func (e *LameEncoder) EncodeBlock(block []int16) ([]byte, error) {
	if e.finished {
		return nil, ErrEncoderFinished
	}

	e.pcm = e.pcm[:0]
	for _, s := range block {
		e.pcm = binary.LittleEndian.AppendUint16(e.pcm, uint16(s))
	}

	if _, err := e.stdin.Write(e.pcm); err != nil {
		// ffmpeg went away; its exit status and stderr explain why
		if waitErr := e.wait(); waitErr != nil {
			return nil, waitErr
		}
		return nil, fmt.Errorf("writing to ffmpeg: %w", err)
	}

	return e.out.Drain(), nil
}

func (e *LameEncoder) Flush() ([]byte, error) {
	if e.finished {
		return nil, ErrEncoderFinished
	}

	if err := e.wait(); err != nil {
		return nil, err
	}

	return e.out.Drain(), nil
}

// Close stops ffmpeg if it is still running. It is safe to call after
// Flush. A killed process is not reported as an error.
func (e *LameEncoder) Close() error {
	if e.finished {
		return nil
	}
	if e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
	}
	_ = e.wait()
	return nil
}

func (e *LameEncoder) wait() error {
	e.finished = true
	_ = e.stdin.Close()

	if err := e.cmd.Wait(); err != nil {
		msg := strings.TrimSpace(e.stderr.String())
		if msg == "" {
			return fmt.Errorf("ffmpeg: %w", err)
		}
		return fmt.Errorf("ffmpeg: %w: %s", err, msg)
	}

	return nil
}

// drainBuffer collects process output written from exec's copy goroutine.
type drainBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (d *drainBuffer) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Drain returns and clears everything written so far, or nil.
func (d *drainBuffer) Drain() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}
	out := bytes.Clone(d.buf.Bytes())
	d.buf.Reset()
	return out
}

// bitrates are the MPEG-1 layer III bitrates in kbps.
var bitrates = []int{32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320}

// ValidBitrate reports whether kbps is a MPEG-1 layer III bitrate.
func ValidBitrate(kbps int) error {
	for _, b := range bitrates {
		if b == kbps {
			return nil
		}
	}
	return fmt.Errorf("%w: %d kbps", ErrInvalidBitrate, kbps)
}

// NewEncoderFunc creates the block encoder for one EncodeBuffer call.
type NewEncoderFunc func(ctx context.Context, cfg LameConfig) (BlockEncoder, error)

// NewLameBlockEncoder is a NewEncoderFunc starting a LameEncoder.
func NewLameBlockEncoder(ctx context.Context, cfg LameConfig) (BlockEncoder, error) {
	enc, err := NewLameEncoder(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return enc, nil
}

// Options control EncodeBuffer.
type Options struct {
	BitrateKbps int
	Layout      Layout
	FFmpegPath  string
	// NewEncoder defaults to NewLameBlockEncoder.
	NewEncoder NewEncoderFunc
}

// DefaultBitrateKbps is used when Options.BitrateKbps is zero.
const DefaultBitrateKbps = 128

// EncodeBuffer validates opts, creates an encoder for the shape of buf and
// runs Encode with it. The encoder is closed afterwards when it is an
// io.Closer. No encoder is created for a buffer without frames.
func EncodeBuffer(ctx context.Context, buf *audio.Buffer, opts Options) (*Blob, error) {
	if opts.BitrateKbps == 0 {
		opts.BitrateKbps = DefaultBitrateKbps
	}
	if err := ValidBitrate(opts.BitrateKbps); err != nil {
		return nil, err
	}
	if buf.Frames() == 0 {
		return &Blob{}, nil
	}

	newEncoder := opts.NewEncoder
	if newEncoder == nil {
		newEncoder = NewLameBlockEncoder
	}

	enc, err := newEncoder(ctx, LameConfig{
		FFmpegPath:  opts.FFmpegPath,
		SampleRate:  buf.SampleRate(),
		Channels:    buf.Channels(),
		BitrateKbps: opts.BitrateKbps,
	})
	if err != nil {
		return nil, err
	}
	defer closeEncoder(enc)

	return Encode(buf, enc, opts.Layout)
}
