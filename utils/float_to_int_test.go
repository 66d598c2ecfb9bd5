// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},   // 16383.5 truncated
		{name: "half negative", input: -0.5, want: -16383}, // truncated toward zero
		{name: "quarter positive", input: 0.25, want: 8191},
		{name: "small positive", input: 0.001, want: 32},
		{name: "small negative", input: -0.001, want: -32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp over min", input: -1.5, want: -math.MaxInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16Range tests full range conversion
func TestFloat32ToInt16Range(t *testing.T) {
	t.Parallel()

	for f := -1.0; f <= 1.0; f += 0.01 {
		result := int32(Float32ToInt16(float32(f)))

		if result < -math.MaxInt16 || result > math.MaxInt16 {
			t.Errorf("Float32ToInt16(%v) = %v, outside [-32767, 32767]", f, result)
		}

		expected := int32(f * 32767.0)
		diff := math.Abs(float64(result - expected))

		if diff > 1 {
			t.Errorf("Float32ToInt16(%v) = %v, want ≈%v (diff %v)",
				f, result, expected, diff)
		}
	}
}

func TestFloat32ToInt16Block(t *testing.T) {
	t.Parallel()

	src := []float32{1.0, -1.0, 0.0, 0.5, 2.0}
	want := []int16{32767, -32767, 0, 16383, 32767}

	got := Float32ToInt16Block(nil, src)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFloat32ToInt16Block_ReusesDst(t *testing.T) {
	t.Parallel()

	dst := make([]int16, 0, 16)
	got := Float32ToInt16Block(dst, []float32{0.25, -0.25})

	if &got[0] != &dst[:1][0] {
		t.Error("Float32ToInt16Block() reallocated although dst had enough capacity")
	}
	if got[0] != 8191 || got[1] != -8191 {
		t.Errorf("got %v, want [8191 -8191]", got)
	}
}

// TestFloat32ToInt16Symmetry tests that conversion is symmetric
func TestFloat32ToInt16Symmetry(t *testing.T) {
	t.Parallel()

	testVals := []float32{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0}

	for _, val := range testVals {
		pos := Float32ToInt16(val)
		neg := Float32ToInt16(-val)

		if pos != -neg {
			t.Errorf("Float32ToInt16 not symmetric: +%v=%v, -%v=%v",
				val, pos, val, neg)
		}
	}
}

// TestFloat32ToInt16Monotonic tests that function is monotonic
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32ToInt16Block_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	src := make([]float32, 1152*2)
	dst := make([]int16, 0, len(src))

	allocs := testing.AllocsPerRun(100, func() {
		dst = Float32ToInt16Block(dst, src)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16Block allocated %v times with a large enough dst", allocs)
	}
}

// BenchmarkFloat32ToInt16Block converts one stereo MP3 frame worth of a sine.
func BenchmarkFloat32ToInt16Block(b *testing.B) {
	src := make([]float32, 1152*2)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.1))
	}
	dst := make([]int16, 0, len(src))

	b.ReportAllocs()

	for b.Loop() {
		dst = Float32ToInt16Block(dst, src)
	}
}
