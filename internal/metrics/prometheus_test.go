// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ik5/audtrim"
)

func TestResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, ResultOK},
		{errors.New("boom"), ResultError},
		{audtrim.ErrSuperseded, ResultSuperseded},
		{fmt.Errorf("load: %w", context.Canceled), ResultCancelled},
		{context.DeadlineExceeded, ResultCancelled},
		{&audtrim.DecodeError{Name: "a.wav", Err: errors.New("bad")}, ResultError},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := Result(tt.err); got != tt.want {
				t.Errorf("Result(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()
	boom := errors.New("boom")

	m.LoadDone("wav", 20*time.Millisecond, nil)
	m.LoadDone("wav", time.Millisecond, boom)
	m.LoadDone("", time.Millisecond, boom)
	m.TrimDone(3, nil)
	m.TrimDone(0, boom)
	m.ExportDone("mp3", 48000, time.Second, nil)
	m.ExportDone("mp3", 0, time.Second, boom)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"wav ok", testutil.ToFloat64(m.Loads.WithLabelValues("wav", ResultOK)), 1},
		{"wav error", testutil.ToFloat64(m.Loads.WithLabelValues("wav", ResultError)), 1},
		{"unknown error", testutil.ToFloat64(m.Loads.WithLabelValues("unknown", ResultError)), 1},
		{"trim ok", testutil.ToFloat64(m.Trims.WithLabelValues(ResultOK)), 1},
		{"trim error", testutil.ToFloat64(m.Trims.WithLabelValues(ResultError)), 1},
		{"export ok", testutil.ToFloat64(m.Exports.WithLabelValues("mp3", ResultOK)), 1},
		{"export error", testutil.ToFloat64(m.Exports.WithLabelValues("mp3", ResultError)), 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if n := testutil.CollectAndCount(m.Loads); n != 3 {
		t.Errorf("load series = %d, want 3", n)
	}
}

func TestMetrics_SessionWiring(t *testing.T) {
	t.Parallel()

	m := New()
	s := audtrim.NewSession(audtrim.WithRecorder(m))

	if _, err := s.Trim(0, 1); !errors.Is(err, audtrim.ErrNoBuffer) {
		t.Fatalf("Trim() error = %v, want ErrNoBuffer", err)
	}
	if err := s.Load(context.Background(), "song.opus", strings.NewReader("")); err == nil {
		t.Fatal("Load() of unknown format succeeded")
	}

	if got := testutil.ToFloat64(m.Trims.WithLabelValues(ResultError)); got != 1 {
		t.Errorf("trim errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Loads.WithLabelValues("opus", ResultError)); got != 1 {
		t.Errorf("opus load errors = %v, want 1", got)
	}
}

func TestMetrics_UnsupportedExportLabel(t *testing.T) {
	t.Parallel()

	m := New()
	s := audtrim.NewSession(audtrim.WithRecorder(m))

	for _, format := range []string{"foo", "Opus", "bar"} {
		if _, err := s.Export(context.Background(), io.Discard, audtrim.ExportOptions{Format: format}); err == nil {
			t.Fatalf("Export(%q) succeeded", format)
		}
	}

	if n := testutil.CollectAndCount(m.Exports); n != 1 {
		t.Errorf("export series = %d, want 1", n)
	}
	if got := testutil.ToFloat64(m.Exports.WithLabelValues("unknown", ResultError)); got != 3 {
		t.Errorf("unknown export errors = %v, want 3", got)
	}
}

func TestMetrics_WriteTextfile(t *testing.T) {
	t.Parallel()

	m := New()
	m.ExportDone("wav", 1024, time.Second, nil)

	path := filepath.Join(t.TempDir(), "audtrim.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	for _, want := range []string{
		"# TYPE audtrim_exports_total counter",
		`audtrim_exports_total{format="wav",result="ok"} 1`,
		"audtrim_export_size_bytes_count 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q:\n%s", want, data)
		}
	}
}
