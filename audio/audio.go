// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys such as "wav" or "mp3" to decoders. Keys are
// case insensitive and a leading dot is ignored, so "MP3" and ".mp3" name
// the same entry. A Registry is safe for concurrent use.
type Registry struct {
	mtx     sync.RWMutex
	decoder map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{decoder: map[string]Decoder{}}
}

func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}

// Register binds d to format, replacing any previous binding.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	r.decoder[formatKey(format)] = d
	r.mtx.Unlock()
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.decoder[formatKey(format)]
	return d, ok
}

// ForFile picks a decoder from the extension of name.
func (r *Registry) ForFile(name string) (Decoder, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return nil, ErrUnknownFormat
	}

	d, ok := r.Get(ext)
	if !ok {
		return nil, ErrUnknownFormat
	}

	return d, nil
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return slices.Sorted(maps.Keys(r.decoder))
}
