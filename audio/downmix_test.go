// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/ik5/audtrim/internal/audiotest"
)

func TestDownmix_MonoPassThrough(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 8000, 1, 100)
	if got := Downmix(buf); got != buf {
		t.Error("Downmix() of a mono buffer should return the same buffer")
	}
}

func TestDownmix_Stereo(t *testing.T) {
	t.Parallel()

	buf, _ := NewBuffer(8000, [][]float32{
		{1.0, 0.5, -1.0, 0.0},
		{0.0, 0.5, 1.0, -0.5},
	})

	got := Downmix(buf)
	if got.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", got.Channels())
	}
	if got.SampleRate() != 8000 || got.Frames() != 4 {
		t.Fatalf("got %d frames @ %d Hz", got.Frames(), got.SampleRate())
	}

	want := []float32{0.5, 0.5, 0.0, -0.25}
	for i, w := range want {
		if got.Channel(0)[i] != w {
			t.Errorf("frame %d = %v, want %v", i, got.Channel(0)[i], w)
		}
	}
}

func TestDownmix_ManyChannels(t *testing.T) {
	t.Parallel()

	buf, _ := NewBuffer(48000, audiotest.ChannelData(6, 50, func(_ int, c int) float32 {
		return float32(c) * 0.1 // 0.0 .. 0.5, average 0.25
	}))

	got := Downmix(buf)
	for f, v := range got.Channel(0) {
		if math.Abs(float64(v-0.25)) > 1e-6 {
			t.Fatalf("frame %d = %v, want 0.25", f, v)
		}
	}
}
