// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/utils"
)

// Session holds the buffer being edited. Loading replaces it, trimming
// narrows it and exporting encodes it. All methods are safe for
// concurrent use.
type Session struct {
	id     uuid.UUID
	logger *slog.Logger
	reg    *audio.Registry
	rec    Recorder

	mtx  sync.Mutex
	buf  *audio.Buffer
	name string
	cut  *audio.TimeRange
	// gen is bumped by every Load; only the newest one may install its buffer
	gen uint64
}

// Option configures a Session created by NewSession.
type Option func(*Session)

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry replaces the decoders returned by NewRegistry.
func WithRegistry(reg *audio.Registry) Option {
	return func(s *Session) {
		if reg != nil {
			s.reg = reg
		}
	}
}

// NewSession returns an empty session with a fresh id. Without options it
// logs nothing, records nothing and decodes with NewRegistry.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:     uuid.New(),
		logger: slog.New(slog.DiscardHandler),
		reg:    NewRegistry(),
		rec:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id.String())

	return s
}

// ID identifies the session in log records.
func (s *Session) ID() string { return s.id.String() }

// Load decodes r, picking the decoder from the extension of name, and makes
// the result the current buffer. When another Load starts before this one
// finishes, this one returns ErrSuperseded and leaves the buffer alone. A
// failed decode also keeps the previous buffer.
func (s *Session) Load(ctx context.Context, name string, r io.Reader) (err error) {
	started := time.Now()
	defer func() { s.rec.LoadDone(formatOf(name), time.Since(started), err) }()

	s.mtx.Lock()
	s.gen++
	gen := s.gen
	s.mtx.Unlock()

	s.logger.Debug("decoding", "file", name, "load", gen)

	var res DecodeResult
	select {
	case res = <-Decode(ctx, s.reg, name, r):
	case <-ctx.Done():
		return ctx.Err()
	}

	if res.Err != nil {
		s.logger.Warn("decode failed", "file", name, "error", res.Err)
		return res.Err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if gen != s.gen {
		s.logger.Debug("discarding stale decode", "file", name, "load", gen, "latest", s.gen)
		return ErrSuperseded
	}

	s.buf = res.Buffer
	s.name = name
	s.cut = nil

	s.logger.Info("audio loaded",
		"file", name,
		"duration", utils.FormatSeconds(res.Buffer.Duration()),
		"sample_rate", res.Buffer.SampleRate(),
		"channels", res.Buffer.Channels(),
	)

	return nil
}

// Trim keeps only [start, end) of the current buffer, in seconds. On error
// the current buffer is unchanged.
func (s *Session) Trim(start, end float64) (*audio.Buffer, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.buf == nil {
		s.rec.TrimDone(0, ErrNoBuffer)
		return nil, ErrNoBuffer
	}

	out, err := audio.Extract(s.buf, start, end)
	s.rec.TrimDone(durationOf(out), err)
	if err != nil {
		s.logger.Warn("trim rejected", "start", start, "end", end, "error", err)
		return nil, err
	}

	s.buf = out
	s.cut = &audio.TimeRange{Start: start, End: end}

	s.logger.Info("audio trimmed",
		"start", utils.FormatSeconds(start),
		"end", utils.FormatSeconds(end),
		"duration", utils.FormatSeconds(out.Duration()),
	)

	return out, nil
}

func durationOf(buf *audio.Buffer) float64 {
	if buf == nil {
		return 0
	}
	return buf.Duration()
}

// Buffer returns the current buffer, or nil.
func (s *Session) Buffer() *audio.Buffer {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.buf
}

// Duration of the current buffer in seconds, 0 when nothing is loaded.
func (s *Session) Duration() float64 {
	return durationOf(s.Buffer())
}

// Status is a snapshot of the session for display.
type Status struct {
	Name       string
	Loaded     bool
	Duration   float64
	SampleRate int
	Channels   int
	// Cut is the last applied trim, nil when the buffer is as loaded.
	Cut *audio.TimeRange
}

// Status returns a snapshot of the current buffer and the last trim.
func (s *Session) Status() Status {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.buf == nil {
		return Status{}
	}

	st := Status{
		Name:       s.name,
		Loaded:     true,
		Duration:   s.buf.Duration(),
		SampleRate: s.buf.SampleRate(),
		Channels:   s.buf.Channels(),
	}
	if s.cut != nil {
		cut := *s.cut
		st.Cut = &cut
	}

	return st
}

func (st Status) String() string {
	if !st.Loaded {
		return "No audio loaded"
	}

	var sb strings.Builder
	if st.Cut == nil {
		fmt.Fprintf(&sb, "Total duration: %s s", utils.FormatSeconds(st.Duration))
	} else {
		fmt.Fprintf(&sb, "New duration: %s s\n", utils.FormatSeconds(st.Duration))
		fmt.Fprintf(&sb, "Cut from %s s to %s s",
			utils.FormatSeconds(st.Cut.Start), utils.FormatSeconds(st.Cut.End))
	}

	return sb.String()
}
