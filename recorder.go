// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"path/filepath"
	"strings"
	"time"
)

// Recorder is told the outcome of every Load, Trim and Export of a
// Session. err is nil on success. Implementations must be safe for
// concurrent use.
type Recorder interface {
	LoadDone(format string, elapsed time.Duration, err error)
	TrimDone(duration float64, err error)
	ExportDone(format string, bytes int64, elapsed time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) LoadDone(string, time.Duration, error)          {}
func (nopRecorder) TrimDone(float64, error)                        {}
func (nopRecorder) ExportDone(string, int64, time.Duration, error) {}

// WithRecorder reports session activity to r.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.rec = r
		}
	}
}

// formatOf is the lower case extension of name without the dot.
func formatOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
