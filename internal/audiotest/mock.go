// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Waveform generates the value of sample at frame index for channel.
type Waveform func(frame int, channel int) float32

// Silence is a Waveform of zeros.
func Silence(int, int) float32 { return 0 }

// Ramp encodes the frame index and channel into the sample value so tests
// can check exactly which samples ended up where. Values stay well inside
// [-1, 1] for buffers of up to a few million frames.
func Ramp(frame int, channel int) float32 {
	return float32(frame)/1e7 + float32(channel)/10
}

// Sine returns a Waveform producing a sine wave at frequency.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Constant returns a Waveform producing value for every sample.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// ChannelData builds planar sample data for channels x frames.
func ChannelData(channels, frames int, waveform Waveform) [][]float32 {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for f := range frames {
			data[c][f] = waveform(f, c)
		}
	}
	return data
}

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	maxRead     int // Upper bound on samples returned per read, 0 = unlimited
	readErr     error
	closed      bool
	waveform    Waveform
}

// NewMockSource creates a new mock audio source that yields totalFrames
// frames of waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, Silence)
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, Sine(sampleRate, frequency))
}

// WithMaxRead limits every ReadSamples call to n samples. n need not be a
// multiple of the channel count, which lets tests split frames across
// reads the way some decoders do.
func (m *MockSource) WithMaxRead(n int) *MockSource {
	m.maxRead = n
	return m
}

// WithError makes ReadSamples fail with err once all frames are produced.
func (m *MockSource) WithError(err error) *MockSource {
	m.readErr = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	total := m.totalFrames * m.channels
	if m.generated >= total {
		if m.readErr != nil {
			return 0, m.readErr
		}
		return 0, io.EOF
	}

	n := len(dst)
	if m.maxRead > 0 && n > m.maxRead {
		n = m.maxRead
	}
	if rest := total - m.generated; n > rest {
		n = rest
	}

	for i := range n {
		idx := m.generated + i
		dst[i] = m.waveform(idx/m.channels, idx%m.channels)
	}
	m.generated += n

	if m.generated >= total && m.readErr == nil {
		return n, io.EOF
	}

	return n, nil
}

// RecordingEncoder is a block encoder that keeps a copy of every block it
// receives. Each block is "encoded" as one byte per sample so the output
// length mirrors the input. The flush output is FlushBytes.
type RecordingEncoder struct {
	Blocks     [][]int16
	Flushed    bool
	FlushBytes []byte

	// FailAfter makes EncodeBlock fail once this many blocks were accepted.
	// Zero disables the failure.
	FailAfter int
	Err       error
	FlushErr  error
}

func (r *RecordingEncoder) EncodeBlock(block []int16) ([]byte, error) {
	if r.FailAfter > 0 && len(r.Blocks) >= r.FailAfter {
		return nil, r.Err
	}

	cp := make([]int16, len(block))
	copy(cp, block)
	r.Blocks = append(r.Blocks, cp)

	return make([]byte, len(block)), nil
}

func (r *RecordingEncoder) Flush() ([]byte, error) {
	r.Flushed = true
	if r.FlushErr != nil {
		return nil, r.FlushErr
	}
	return r.FlushBytes, nil
}

// Samples returns all recorded samples in submission order.
func (r *RecordingEncoder) Samples() []int16 {
	var out []int16
	for _, b := range r.Blocks {
		out = append(out, b...)
	}
	return out
}
