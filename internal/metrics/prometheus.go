// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ik5/audtrim"
)

const (
	ResultOK         = "ok"
	ResultError      = "error"
	ResultCancelled  = "cancelled"
	ResultSuperseded = "superseded"
)

// Metrics implements audtrim.Recorder. Each Metrics owns its registry so
// several can live in one process.
type Metrics struct {
	reg *prometheus.Registry

	Loads          *prometheus.CounterVec
	LoadDuration   prometheus.Histogram
	Trims          *prometheus.CounterVec
	TrimmedSeconds prometheus.Histogram
	Exports        *prometheus.CounterVec
	ExportBytes    prometheus.Histogram
	ExportDuration prometheus.Histogram
}

var _ audtrim.Recorder = (*Metrics)(nil)

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		Loads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audtrim_loads_total",
			Help: "Audio files decoded, by input format and result",
		}, []string{"format", "result"}),
		LoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audtrim_load_duration_seconds",
			Help:    "Time spent decoding input files",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		}),
		Trims: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audtrim_trims_total",
			Help: "Trim requests, by result",
		}, []string{"result"}),
		TrimmedSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audtrim_trimmed_audio_seconds",
			Help:    "Length of the audio kept by successful trims",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~34 minutes
		}),
		Exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audtrim_exports_total",
			Help: "Exports, by output format and result",
		}, []string{"format", "result"}),
		ExportBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audtrim_export_size_bytes",
			Help:    "Size of successfully exported files",
			Buckets: prometheus.ExponentialBuckets(16*1024, 2, 12), // 16KB to ~32MB
		}),
		ExportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audtrim_export_duration_seconds",
			Help:    "Time spent encoding and writing exports",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}
}

// Registry exposes the collectors, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Result classifies err for the result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, audtrim.ErrSuperseded):
		return ResultSuperseded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCancelled
	default:
		return ResultError
	}
}

func (m *Metrics) LoadDone(format string, elapsed time.Duration, err error) {
	if format == "" {
		format = "unknown"
	}
	m.Loads.WithLabelValues(format, Result(err)).Inc()
	if err == nil {
		m.LoadDuration.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) TrimDone(duration float64, err error) {
	m.Trims.WithLabelValues(Result(err)).Inc()
	if err == nil {
		m.TrimmedSeconds.Observe(duration)
	}
}

func (m *Metrics) ExportDone(format string, bytes int64, elapsed time.Duration, err error) {
	m.Exports.WithLabelValues(format, Result(err)).Inc()
	if err == nil {
		m.ExportBytes.Observe(float64(bytes))
		m.ExportDuration.Observe(elapsed.Seconds())
	}
}

// WriteTextfile writes every collected metric to path in the text
// exposition format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
