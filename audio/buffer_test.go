// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audtrim/internal/audiotest"
)

func TestNewBuffer_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels [][]float32
		wantErr  error
	}{
		{"ok mono", 8000, [][]float32{{0, 0.5}}, nil},
		{"ok empty frames", 8000, [][]float32{{}, {}}, nil},
		{"zero rate", 0, [][]float32{{0}}, ErrInvalidSampleRate},
		{"negative rate", -44100, [][]float32{{0}}, ErrInvalidSampleRate},
		{"no channels", 8000, nil, ErrNoChannels},
		{"ragged channels", 8000, [][]float32{{0, 1}, {0}}, ErrChannelLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBuffer(tt.rate, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBuffer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuffer_Metadata(t *testing.T) {
	t.Parallel()

	buf, err := NewSilentBuffer(44100, 2, 441000)
	if err != nil {
		t.Fatalf("NewSilentBuffer() error = %v", err)
	}

	if buf.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", buf.SampleRate())
	}
	if buf.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", buf.Channels())
	}
	if buf.Frames() != 441000 {
		t.Errorf("Frames() = %d, want 441000", buf.Frames())
	}
	if buf.Duration() != 10 {
		t.Errorf("Duration() = %v, want 10", buf.Duration())
	}
}

func TestBuffer_SourceInterleaves(t *testing.T) {
	t.Parallel()

	buf, _ := NewBuffer(8000, [][]float32{{1, 2, 3}, {-1, -2, -3}})
	src := buf.Source()

	if src.SampleRate() != 8000 || src.Channels() != 2 {
		t.Fatalf("source metadata = %d Hz, %d ch", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("first read = %d, %v; want 4, nil", n, err)
	}
	want := []float32{1, -1, 2, -2}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if err != io.EOF || n != 2 {
		t.Fatalf("second read = %d, %v; want 2, EOF", n, err)
	}
	if dst[0] != 3 || dst[1] != -3 {
		t.Errorf("last frame = %v, want [3 -3]", dst[:2])
	}

	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("odd dst error = %v, want ErrInvalidDstSize", err)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		frames   int
		maxRead  int
	}{
		{"mono", 1, 10000, 0},
		{"stereo", 2, 10000, 0},
		{"stereo split frames", 2, 5001, 7},
		{"surround split frames", 6, 999, 5},
		{"empty", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(16000, tt.channels, tt.frames, audiotest.Ramp).
				WithMaxRead(tt.maxRead)

			buf, err := ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			if buf.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", buf.Channels(), tt.channels)
			}
			if buf.Frames() != tt.frames {
				t.Fatalf("Frames() = %d, want %d", buf.Frames(), tt.frames)
			}

			for c := range tt.channels {
				ch := buf.Channel(c)
				for f := range tt.frames {
					if want := audiotest.Ramp(f, c); ch[f] != want {
						t.Fatalf("channel %d frame %d = %v, want %v", c, f, ch[f], want)
					}
				}
			}
		})
	}
}

func TestReadAll_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.NewSilentSource(8000, 1, 10).WithError(boom)

	if _, err := ReadAll(src); !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want %v", err, boom)
	}
}

func TestReadAll_RoundTrip(t *testing.T) {
	t.Parallel()

	orig, _ := NewBuffer(22050, audiotest.ChannelData(2, 3000, audiotest.Ramp))

	got, err := ReadAll(orig.Source())
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if got.Frames() != orig.Frames() || got.SampleRate() != orig.SampleRate() {
		t.Fatalf("got %d frames @ %d Hz, want %d @ %d",
			got.Frames(), got.SampleRate(), orig.Frames(), orig.SampleRate())
	}
	for c := range 2 {
		for f := range orig.Frames() {
			if got.Channel(c)[f] != orig.Channel(c)[f] {
				t.Fatalf("channel %d frame %d differs", c, f)
			}
		}
	}
}

// BenchmarkReadAll drains ten seconds of stereo audio.
func BenchmarkReadAll(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		src := audiotest.NewSilentSource(44100, 2, 441000)
		if _, err := ReadAll(src); err != nil {
			b.Fatal(err)
		}
	}
}
